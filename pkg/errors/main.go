package errors

import (
	"errors"
	"fmt"
	"strings"
)

const (
	StatusOK                  = 200
	StatusNoContent           = 204
	StatusBadRequest          = 400
	StatusNotFound            = 404
	StatusMethodNotAllowed    = 405
	StatusRequestTimeout      = 408
	StatusConflict            = 409
	StatusInternalServerError = 500
)

const (
	ErrorTypeValidation       = "VALIDATION_ERROR"
	ErrorTypeConfiguration    = "CONFIGURATION_ERROR"
	ErrorTypeDuplicateEmail   = "DUPLICATE_EMAIL"
	ErrorTypeBackendFailure   = "BACKEND_FAILURE"
	ErrorTypeInvalidRequest   = "INVALID_REQUEST"
	ErrorTypeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrorTypeRequestTimeout   = "REQUEST_TIMEOUT"
	ErrorTypeUnknown          = "UNKNOWN_ERROR"
)

// AppError is the error shape every handler boundary speaks. Code and Detail
// carry a storage backend's native error code and message verbatim.
type AppError struct {
	Type    string
	Message string
	Code    string
	Detail  string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(errType, message string, err error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Err:     err,
	}
}

func NewValidationError(message string, err error) *AppError {
	return NewAppError(ErrorTypeValidation, message, err)
}

func NewConfigurationError(message string, err error) *AppError {
	return NewAppError(ErrorTypeConfiguration, message, err)
}

func NewDuplicateEmailError(message string, err error) *AppError {
	return NewAppError(ErrorTypeDuplicateEmail, message, err)
}

// NewBackendFailureError keeps the backend's own code and message so callers
// see what the storage service reported rather than a reinterpretation.
func NewBackendFailureError(message, code, detail string, err error) *AppError {
	appErr := NewAppError(ErrorTypeBackendFailure, message, err)
	appErr.Code = code
	appErr.Detail = detail
	return appErr
}

func NewInvalidRequestError(message string, err error) *AppError {
	return NewAppError(ErrorTypeInvalidRequest, message, err)
}

func GetErrorType(err error) string {
	if err == nil {
		return ""
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}

	return ErrorTypeUnknown
}

// IsType reports whether err is an AppError of the given type.
func IsType(err error, errType string) bool {
	return err != nil && GetErrorType(err) == errType
}

func IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "23505")
}
