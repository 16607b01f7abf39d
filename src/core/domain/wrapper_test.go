package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWrapperForcesSuccessMessage(t *testing.T) {
	payload := "hello"
	w := NewWrapper(ResultSuccess, "something else entirely", &payload)
	assert.Equal(t, ResultSuccess, w.Code)
	assert.Equal(t, SuccessMessage, w.Message)
	require.NotNil(t, w.Payload)
	assert.Equal(t, "hello", *w.Payload)
}

func TestNewWrapperPreservesFailureMessage(t *testing.T) {
	w := NewWrapper[string](ResultNotFound, "nothing here", nil)
	assert.Equal(t, ResultNotFound, w.Code)
	assert.Equal(t, "nothing here", w.Message)
	assert.Nil(t, w.Payload)
	assert.False(t, w.IsSuccess())
}

func TestNewErrorWrapperRejectsSuccessCodes(t *testing.T) {
	for _, code := range []ResultCode{ResultSuccess, ResultUndefined} {
		_, err := NewErrorWrapper[string](code, "boom", ErrCodeInternalServerError)
		require.Error(t, err)
		assert.True(t, IsInvalidArgument(err))
	}
}

func TestNewErrorWrapperRejectsBlankMessage(t *testing.T) {
	_, err := NewErrorWrapper[string](ResultBadRequest, "", ErrCodeInvalidParameters)
	require.Error(t, err)
	assert.True(t, IsInvalidArgument(err))
}

func TestNewErrorWrapperCarriesErrorCode(t *testing.T) {
	w, err := NewErrorWrapper[string](ResultConflict, "taken", ErrCodeVendorNameConflict)
	require.NoError(t, err)
	assert.Equal(t, ResultConflict, w.Code)
	assert.Equal(t, "taken", w.Message)
	assert.Equal(t, ErrCodeVendorNameConflict, w.ErrorCode)
	assert.Nil(t, w.Payload)
}

func TestNewCollectionWrapperRejectsEmptyItems(t *testing.T) {
	_, err := NewCollectionWrapper([]string(nil), &PaginationInfo{Page: 0, Size: 10, TotalCount: 0})
	require.Error(t, err)
	assert.True(t, IsInvalidArgument(err))
}

func TestNewCollectionWrapperRejectsMissingPagination(t *testing.T) {
	_, err := NewCollectionWrapper([]string{"a"}, nil)
	require.Error(t, err)
	assert.True(t, IsInvalidArgument(err))
}

func TestNewCollectionWrapperSuccess(t *testing.T) {
	w, err := NewCollectionWrapper([]string{"a", "b"}, &PaginationInfo{Page: 0, Size: 10, TotalCount: 2})
	require.NoError(t, err)
	assert.True(t, w.IsSuccess())
	assert.Equal(t, SuccessMessage, w.Message)
	assert.Len(t, w.Items, 2)
	require.NotNil(t, w.Pagination)
	assert.EqualValues(t, 2, w.Pagination.TotalCount)
}

func TestValidResultAndInvalidResult(t *testing.T) {
	ok := ValidResult()
	assert.True(t, ok.IsSuccess())
	assert.Equal(t, SuccessMessage, ok.Message)

	bad := InvalidResult("missing name", ErrCodeMandatoryFieldsMissing)
	assert.Equal(t, ResultBadRequest, bad.Code)
	assert.Equal(t, "missing name", bad.Message)
	assert.Equal(t, ErrCodeMandatoryFieldsMissing, bad.ErrorCode)
}
