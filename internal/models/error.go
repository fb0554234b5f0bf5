package models

import "errors"

// ErrNotFound is returned when a recipe or invoice id does not exist
var ErrNotFound = errors.New("not found")

// APIError represents a standardized error response for the API
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error code constants
const (
	// General errors
	ErrBadRequest       = "BAD_REQUEST"
	ErrNotFoundCode     = "NOT_FOUND"
	ErrInternalServer   = "INTERNAL_SERVER_ERROR"
	ErrValidationFailed = "VALIDATION_FAILED"
	ErrTooManyRequests  = "TOO_MANY_REQUESTS"
	ErrStateLoading     = "STATE_LOADING"
	ErrPayloadTooLarge  = "PAYLOAD_TOO_LARGE"

	// Recipe-specific errors
	ErrRecipeNotFound = "RECIPE_NOT_FOUND"

	// Invoice-specific errors
	ErrInvoiceNotFound     = "INVOICE_NOT_FOUND"
	ErrInvoiceImageInvalid = "INVOICE_IMAGE_INVALID"
)

// NewAPIError creates a new API error with the given code and message
func NewAPIError(code, message string, details ...map[string]interface{}) APIError {
	err := APIError{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}

// NewValidationError wraps per-field validation messages in an APIError
func NewValidationError(fields map[string]string) APIError {
	details := make(map[string]interface{}, len(fields))
	for field, msg := range fields {
		details[field] = msg
	}
	return NewAPIError(ErrValidationFailed, "Submission has invalid fields", details)
}
