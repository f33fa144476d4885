package router

import (
	"github.com/gin-gonic/gin"
)

type RequestContext = gin.Context

type MiddlewareFunc = gin.HandlerFunc

// ServiceResult is what every handler returns. Successful results render as
// {success, message, data}; failures render as {error, details, code}.
type ServiceResult struct {
	StatusCode int
	Data       any
	Message    string
	Details    any
	Code       string
}

type HandlerFunction func(*RequestContext) *ServiceResult

type RESTController struct {
	name         string
	mountPoint   string
	handlerCount int
	prepare      func(*RouterService, *RESTController)
}

func (result *ServiceResult) ToJSON() gin.H {
	if result.IsSuccess() {
		body := gin.H{
			"success": true,
			"message": result.Message,
		}
		if result.Data != nil {
			body["data"] = result.Data
		}
		return body
	}

	body := gin.H{"error": result.Message}
	if result.Details != nil {
		body["details"] = result.Details
	}
	if result.Code != "" {
		body["code"] = result.Code
	}
	return body
}

func (result *ServiceResult) IsSuccess() bool {
	return result.StatusCode >= 200 && result.StatusCode < 300
}
