package errors

import (
	"errors"
)

func HTTPStatusCode(err error) int {
	if err == nil {
		return StatusInternalServerError
	}

	switch GetErrorType(err) {
	case ErrorTypeValidation, ErrorTypeInvalidRequest:
		return StatusBadRequest
	case ErrorTypeDuplicateEmail:
		return StatusConflict
	case ErrorTypeMethodNotAllowed:
		return StatusMethodNotAllowed
	case ErrorTypeRequestTimeout:
		return StatusRequestTimeout
	case ErrorTypeConfiguration, ErrorTypeBackendFailure:
		return StatusInternalServerError
	default:
		return StatusInternalServerError
	}
}

func GetHumanReadableMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}

	// SECURITY: avoid leaking internal error strings (driver errors, stack messages, etc.)
	return "Internal server error"
}

// BackendDetails returns the backend-native code and detail attached to err, if any.
func BackendDetails(err error) (code string, detail string) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, appErr.Detail
	}
	return "", ""
}
