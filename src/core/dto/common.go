// Package dto holds the request and response data carriers crossing the API
// boundary, their validators, and the converters between DTOs and persisted
// entities.
package dto

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"assetregistry/src/core/domain"
)

// Validatable is implemented by every request DTO. Attribute validation runs
// first; relationship validation is skipped if it fails.
type Validatable interface {
	// ValidateAttributes checks the DTO's own fields and embedded values.
	ValidateAttributes() domain.ValidationResult

	// ValidateRelationships checks references to other entities. No entity
	// currently references another, so implementations return success, but
	// the phase is kept as an extension hook.
	ValidateRelationships() domain.ValidationResult
}

// PerformValidation runs both validation phases in order, short-circuiting
// on an attribute failure.
func PerformValidation(v Validatable) domain.ValidationResult {
	if res := v.ValidateAttributes(); !res.IsSuccess() {
		return res
	}
	return v.ValidateRelationships()
}

// validate is the shared validator instance. Field names in results follow
// the json tags so messages match the wire format.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("json")
		if name == "" {
			return fld.Name
		}
		if i := strings.IndexByte(name, ','); i >= 0 {
			return name[:i]
		}
		return name
	})
	return v
}

// missingFields returns the json names of all blank mandatory fields of the
// DTO, in declaration order.
func missingFields(s any) []string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	var fields []string
	for _, e := range verrs {
		if e.Tag() == "required" {
			fields = append(fields, e.Field())
		}
	}
	return fields
}

// mandatoryFieldsResult builds the BAD_REQUEST result listing the missing
// mandatory fields.
func mandatoryFieldsResult(fields []string) domain.ValidationResult {
	msg := domain.ErrCodeMandatoryFieldsMissing.Message() + ": " + strings.Join(fields, ", ")
	return domain.InvalidResult(msg, domain.ErrCodeMandatoryFieldsMissing)
}
