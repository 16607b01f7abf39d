// Package usecase contains the per-entity services orchestrating the
// validate-convert-persist pipeline between the HTTP handlers and the
// repositories.
package usecase

import (
	"assetregistry/src/core/domain"
)

// errorWrapper builds a failure envelope for a single-item operation. The
// wrapper constructor only rejects programmer errors (success codes, blank
// messages); should that ever happen the result degrades to a generic
// internal error rather than panicking.
func errorWrapper[T any](code domain.ResultCode, message string, errorCode domain.ErrorCode) domain.Wrapper[T] {
	w, err := domain.NewErrorWrapper[T](code, message, errorCode)
	if err != nil {
		return domain.Wrapper[T]{
			Code:      domain.ResultError,
			Message:   domain.ErrCodeInternalServerError.Message(),
			ErrorCode: domain.ErrCodeInternalServerError,
		}
	}
	return w
}

// codeWrapper builds a failure envelope carrying the error code's default message.
func codeWrapper[T any](code domain.ResultCode, errorCode domain.ErrorCode) domain.Wrapper[T] {
	return errorWrapper[T](code, errorCode.Message(), errorCode)
}

// errorCollection builds a failure envelope for a collection operation.
func errorCollection[T any](code domain.ResultCode, message string, errorCode domain.ErrorCode) domain.CollectionWrapper[T] {
	w, err := domain.NewErrorCollectionWrapper[T](code, message, errorCode)
	if err != nil {
		return domain.CollectionWrapper[T]{
			Code:      domain.ResultError,
			Message:   domain.ErrCodeInternalServerError.Message(),
			ErrorCode: domain.ErrCodeInternalServerError,
		}
	}
	return w
}

// codeCollection builds a failure collection envelope with the code's default message.
func codeCollection[T any](code domain.ResultCode, errorCode domain.ErrorCode) domain.CollectionWrapper[T] {
	return errorCollection[T](code, errorCode.Message(), errorCode)
}

// validationWrapper translates a failed validation result into the entity's
// single-item envelope, preserving the validator's message and error code.
func validationWrapper[T any](res domain.ValidationResult) domain.Wrapper[T] {
	return errorWrapper[T](res.Code, res.Message, res.ErrorCode)
}
