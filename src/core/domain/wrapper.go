package domain

// SuccessMessage is the canonical message carried by every SUCCESS wrapper.
// The constructors enforce it regardless of the message passed in.
const SuccessMessage = "request successful"

// ValidationResult is the payload-free wrapper produced by validators.
type ValidationResult = Wrapper[struct{}]

// ValidResult returns a SUCCESS validation result.
func ValidResult() ValidationResult {
	return NewWrapper[struct{}](ResultSuccess, SuccessMessage, nil)
}

// InvalidResult returns a BAD_REQUEST validation result with the given
// message and error code.
func InvalidResult(message string, errorCode ErrorCode) ValidationResult {
	return ValidationResult{
		Code:      ResultBadRequest,
		Message:   message,
		ErrorCode: errorCode,
	}
}

// PaginationInfo describes the slice of a collection a wrapper carries.
type PaginationInfo struct {
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalCount int64 `json:"total_count"`
}

// Wrapper is the envelope returned by every single-item operation.
type Wrapper[T any] struct {
	Code      ResultCode `json:"code"`
	Message   string     `json:"message"`
	ErrorCode ErrorCode  `json:"error_code,omitempty"`
	Payload   *T         `json:"payload,omitempty"`
}

// CollectionWrapper is the envelope returned by collection operations.
type CollectionWrapper[T any] struct {
	Code       ResultCode      `json:"code"`
	Message    string          `json:"message"`
	ErrorCode  ErrorCode       `json:"error_code,omitempty"`
	Items      []T             `json:"items,omitempty"`
	Pagination *PaginationInfo `json:"pagination,omitempty"`
}

// IsSuccess reports whether the wrapper carries a successful result.
func (w Wrapper[T]) IsSuccess() bool { return w.Code == ResultSuccess }

// IsSuccess reports whether the wrapper carries a successful result.
func (w CollectionWrapper[T]) IsSuccess() bool { return w.Code == ResultSuccess }

// NewSuccessWrapper builds a SUCCESS envelope around a payload.
func NewSuccessWrapper[T any](payload *T) Wrapper[T] {
	return Wrapper[T]{
		Code:    ResultSuccess,
		Message: SuccessMessage,
		Payload: payload,
	}
}

// NewWrapper builds an envelope with the given code and message. A SUCCESS
// code overrides the message with the canonical success string.
func NewWrapper[T any](code ResultCode, message string, payload *T) Wrapper[T] {
	if code == ResultSuccess {
		message = SuccessMessage
	}
	return Wrapper[T]{
		Code:    code,
		Message: message,
		Payload: payload,
	}
}

// NewErrorWrapper builds a failure envelope with no payload. Passing SUCCESS
// or UNDEFINED as the code, or a blank message, is a programmer error and is
// reported via the explicit error return.
func NewErrorWrapper[T any](code ResultCode, message string, errorCode ErrorCode) (Wrapper[T], error) {
	if code == ResultSuccess || code == ResultUndefined {
		return Wrapper[T]{}, NewInvalidArgumentError("code", "error wrappers require a failure result code")
	}
	if message == "" {
		return Wrapper[T]{}, NewInvalidArgumentError("message", "error wrappers require a message")
	}
	return Wrapper[T]{
		Code:      code,
		Message:   message,
		ErrorCode: errorCode,
	}, nil
}

// NewCollectionWrapper builds a SUCCESS envelope around a non-empty list of
// items and its pagination info. Zero results are signaled at the service
// layer, never through an empty collection wrapper.
func NewCollectionWrapper[T any](items []T, pagination *PaginationInfo) (CollectionWrapper[T], error) {
	if len(items) == 0 {
		return CollectionWrapper[T]{}, NewInvalidArgumentError("items", "collection wrappers require at least one item")
	}
	if pagination == nil {
		return CollectionWrapper[T]{}, NewInvalidArgumentError("pagination", "collection wrappers require pagination info")
	}
	return CollectionWrapper[T]{
		Code:       ResultSuccess,
		Message:    SuccessMessage,
		Items:      items,
		Pagination: pagination,
	}, nil
}

// NewErrorCollectionWrapper builds a failure envelope with no items, under
// the same rules as NewErrorWrapper.
func NewErrorCollectionWrapper[T any](code ResultCode, message string, errorCode ErrorCode) (CollectionWrapper[T], error) {
	if code == ResultSuccess || code == ResultUndefined {
		return CollectionWrapper[T]{}, NewInvalidArgumentError("code", "error wrappers require a failure result code")
	}
	if message == "" {
		return CollectionWrapper[T]{}, NewInvalidArgumentError("message", "error wrappers require a message")
	}
	return CollectionWrapper[T]{
		Code:      code,
		Message:   message,
		ErrorCode: errorCode,
	}, nil
}
