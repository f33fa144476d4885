package router

import (
	"net/http"

	"github.com/akeren/waitlist-foundry/internal/log"
	apperrors "github.com/akeren/waitlist-foundry/pkg/errors"
)

func GetLogger(ctx *RequestContext) *log.Logger {
	if logger := ctx.Request.Context().Value(log.LoggerKeyForContext); logger != nil {
		if l, ok := logger.(*log.Logger); ok {
			return l
		}
	}

	baseLogger := log.NewLoggerWithJSONOutput()
	return baseLogger.WithCorrelationID(ctx.Request.Context())
}

func OKResult(data any, message string) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusOK,
		Data:       data,
		Message:    message,
	}
}

func BadRequestResult(message string, details any) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusBadRequest,
		Message:    message,
		Details:    details,
	}
}

func NotFoundResult(message string) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusNotFound,
		Message:    message,
	}
}

func MethodNotAllowedResult() *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusMethodNotAllowed,
		Message:    "Method not allowed",
	}
}

func InternalServerErrorResult(message string) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusInternalServerError,
		Message:    message,
	}
}

func ErrorResult(statusCode int, message string, details any) *ServiceResult {
	return &ServiceResult{
		StatusCode: statusCode,
		Message:    message,
		Details:    details,
	}
}

// ErrorResultFrom renders any error through the application error taxonomy.
// Only AppError messages reach the client; anything else becomes a generic 500.
func ErrorResultFrom(err error) *ServiceResult {
	result := &ServiceResult{
		StatusCode: apperrors.HTTPStatusCode(err),
		Message:    apperrors.GetHumanReadableMessage(err),
	}

	code, detail := apperrors.BackendDetails(err)
	if detail != "" {
		result.Details = detail
	}
	result.Code = code

	return result
}

func PayloadTooLargeResult() *ServiceResult {
	return ErrorResult(http.StatusRequestEntityTooLarge, "Request payload too large", nil)
}
