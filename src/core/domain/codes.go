package domain

// ResultCode classifies the outcome of an operation.
type ResultCode string

const (
	ResultSuccess    ResultCode = "SUCCESS"
	ResultBadRequest ResultCode = "BAD_REQUEST"
	ResultNotFound   ResultCode = "NOT_FOUND"
	ResultConflict   ResultCode = "CONFLICT"
	ResultError      ResultCode = "ERROR"
	ResultUndefined  ResultCode = "UNDEFINED"
)

// ErrorCode is a stable, machine-readable error identifier carried alongside
// the result code in error wrappers.
type ErrorCode string

// Shared error codes.
const (
	ErrCodeMandatoryFieldsMissing  ErrorCode = "MANDATORY_FIELDS_MISSING"
	ErrCodeInvalidLocation         ErrorCode = "INVALID_LOCATION"
	ErrCodeDuplicateParameterValue ErrorCode = "DUPLICATE_PARAMETER_VALUE"
	ErrCodeInvalidParameterFormat  ErrorCode = "INVALID_PARAMETER_FORMAT"
	ErrCodeInvalidParameters       ErrorCode = "INVALID_PARAMETERS"
	ErrCodeExceededPageLimit       ErrorCode = "EXCEEDED_PAGE_LIMIT"
	ErrCodeInternalServerError     ErrorCode = "INTERNAL_SERVER_ERROR"
)

// Vendor error codes.
const (
	ErrCodeVendorNotFound       ErrorCode = "VENDOR_NOT_FOUND"
	ErrCodeNoVendorsFound       ErrorCode = "NO_VENDORS_FOUND"
	ErrCodeVendorNameConflict   ErrorCode = "VENDOR_NAME_CONFLICT"
	ErrCodeVendorRetrievalError ErrorCode = "VENDOR_RETRIEVAL_ERROR"
	ErrCodeVendorCreationError  ErrorCode = "VENDOR_CREATION_ERROR"
	ErrCodeVendorUpdateError    ErrorCode = "VENDOR_UPDATE_ERROR"
	ErrCodeVendorDeletionError  ErrorCode = "VENDOR_DELETION_ERROR"
)

// AssetCategory error codes.
const (
	ErrCodeAssetCategoryNotFound       ErrorCode = "ASSET_CATEGORY_NOT_FOUND"
	ErrCodeNoAssetCategoriesFound      ErrorCode = "NO_ASSET_CATEGORIES_FOUND"
	ErrCodeAssetCategoryNameConflict   ErrorCode = "ASSET_CATEGORY_NAME_CONFLICT"
	ErrCodeAssetCategoryRetrievalError ErrorCode = "ASSET_CATEGORY_RETRIEVAL_ERROR"
	ErrCodeAssetCategoryCreationError  ErrorCode = "ASSET_CATEGORY_CREATION_ERROR"
	ErrCodeAssetCategoryUpdateError    ErrorCode = "ASSET_CATEGORY_UPDATE_ERROR"
	ErrCodeAssetCategoryDeletionError  ErrorCode = "ASSET_CATEGORY_DELETION_ERROR"
)

// System error codes.
const (
	ErrCodeSystemNotFound       ErrorCode = "SYSTEM_NOT_FOUND"
	ErrCodeNoSystemsFound       ErrorCode = "NO_SYSTEMS_FOUND"
	ErrCodeSystemNameConflict   ErrorCode = "SYSTEM_NAME_CONFLICT"
	ErrCodeSystemRetrievalError ErrorCode = "SYSTEM_RETRIEVAL_ERROR"
	ErrCodeSystemCreationError  ErrorCode = "SYSTEM_CREATION_ERROR"
	ErrCodeSystemUpdateError    ErrorCode = "SYSTEM_UPDATE_ERROR"
	ErrCodeSystemDeletionError  ErrorCode = "SYSTEM_DELETION_ERROR"
)

var errorCodeMessages = map[ErrorCode]string{
	ErrCodeMandatoryFieldsMissing:  "mandatory fields missing",
	ErrCodeInvalidLocation:         "a location may carry coordinates or a virtual location, not both",
	ErrCodeDuplicateParameterValue: "parameter values within a group must have unique names",
	ErrCodeInvalidParameterFormat:  "parameter has an invalid format",
	ErrCodeInvalidParameters:       "invalid parameters",
	ErrCodeExceededPageLimit:       "requested page exceeds the available range",
	ErrCodeInternalServerError:     "internal server error",

	ErrCodeVendorNotFound:       "vendor not found",
	ErrCodeNoVendorsFound:       "no vendors found",
	ErrCodeVendorNameConflict:   "a vendor with this name already exists",
	ErrCodeVendorRetrievalError: "vendor retrieval failed",
	ErrCodeVendorCreationError:  "vendor creation failed",
	ErrCodeVendorUpdateError:    "vendor update failed",
	ErrCodeVendorDeletionError:  "vendor deletion failed",

	ErrCodeAssetCategoryNotFound:       "asset category not found",
	ErrCodeNoAssetCategoriesFound:      "no asset categories found",
	ErrCodeAssetCategoryNameConflict:   "an asset category with this name already exists",
	ErrCodeAssetCategoryRetrievalError: "asset category retrieval failed",
	ErrCodeAssetCategoryCreationError:  "asset category creation failed",
	ErrCodeAssetCategoryUpdateError:    "asset category update failed",
	ErrCodeAssetCategoryDeletionError:  "asset category deletion failed",

	ErrCodeSystemNotFound:       "system not found",
	ErrCodeNoSystemsFound:       "no systems found",
	ErrCodeSystemNameConflict:   "a system with this name already exists",
	ErrCodeSystemRetrievalError: "system retrieval failed",
	ErrCodeSystemCreationError:  "system creation failed",
	ErrCodeSystemUpdateError:    "system update failed",
	ErrCodeSystemDeletionError:  "system deletion failed",
}

// Message returns the default human-readable message for the code.
func (c ErrorCode) Message() string {
	if msg, ok := errorCodeMessages[c]; ok {
		return msg
	}
	return string(c)
}
