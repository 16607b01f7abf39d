package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used between the repository layer and the services.
// Repositories translate store-level failures into these; the services map
// them onto result codes and error-code wrappers.

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateName is returned when the store's uniqueness constraint on
	// the name column rejects an insert or update.
	ErrDuplicateName = errors.New("duplicate name")

	// ErrInvalidArgument signals a programmer error: a blank identifier or
	// nil value passed to an internal constructor or converter. It is meant
	// to be fixed at the call site, not recovered from at runtime.
	ErrInvalidArgument = errors.New("invalid argument")
)

// DomainError wraps a base error with additional context.
type DomainError struct {
	// Base is the underlying error type (e.g., ErrNotFound)
	Base error

	// Message provides human-readable context
	Message string

	// Field indicates which argument or field caused the error
	Field string
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (field: %s)", e.Base.Error(), e.Message, e.Field)
	}
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Base.Error(), e.Message)
	}
	return e.Base.Error()
}

// Unwrap returns the base error for errors.Is/As support.
func (e *DomainError) Unwrap() error {
	return e.Base
}

// NewNotFoundError creates a not found error naming the missing record.
func NewNotFoundError(record string) *DomainError {
	return &DomainError{
		Base:    ErrNotFound,
		Message: record,
	}
}

// NewDuplicateNameError creates a duplicate-name error with context.
func NewDuplicateNameError(message string) *DomainError {
	return &DomainError{
		Base:    ErrDuplicateName,
		Message: message,
	}
}

// NewInvalidArgumentError creates a programmer-error value for a specific
// argument or field.
func NewInvalidArgumentError(field, message string) *DomainError {
	return &DomainError{
		Base:    ErrInvalidArgument,
		Message: message,
		Field:   field,
	}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateName checks if an error is a duplicate-name error.
func IsDuplicateName(err error) bool {
	return errors.Is(err, ErrDuplicateName)
}

// IsInvalidArgument checks if an error is a programmer error.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}
