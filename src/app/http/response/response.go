// Package response renders the domain response wrappers over HTTP.
// Every endpoint returns the same envelope shape (code, message, optional
// error code, optional payload or items plus pagination); only the HTTP
// status varies with the result code.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"assetregistry/src/core/domain"
)

// statusFor maps a result code onto an HTTP status. successStatus lets the
// handler pick 200, 201 or 204 for successful results.
func statusFor(code domain.ResultCode, successStatus int) int {
	switch code {
	case domain.ResultSuccess:
		return successStatus
	case domain.ResultBadRequest:
		return http.StatusBadRequest
	case domain.ResultNotFound:
		return http.StatusNotFound
	case domain.ResultConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Render writes a single-item wrapper. A 204 success is written without a
// body, as required by the status.
func Render[T any](c *gin.Context, w domain.Wrapper[T], successStatus int) {
	status := statusFor(w.Code, successStatus)
	if status == http.StatusNoContent {
		c.Status(status)
		return
	}
	c.JSON(status, w)
}

// RenderCollection writes a collection wrapper.
func RenderCollection[T any](c *gin.Context, w domain.CollectionWrapper[T], successStatus int) {
	c.JSON(statusFor(w.Code, successStatus), w)
}

// InvalidParameters writes a BAD_REQUEST envelope for failures detected at
// the HTTP boundary, such as a malformed body or non-numeric query values.
func InvalidParameters(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, domain.Wrapper[struct{}]{
		Code:      domain.ResultBadRequest,
		Message:   message,
		ErrorCode: domain.ErrCodeInvalidParameters,
	})
}

// InternalError writes a generic ERROR envelope without exposing details.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, domain.Wrapper[struct{}]{
		Code:      domain.ResultError,
		Message:   domain.ErrCodeInternalServerError.Message(),
		ErrorCode: domain.ErrCodeInternalServerError,
	})
}
