package waitlist

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/akeren/waitlist-foundry/config/router"
	"github.com/akeren/waitlist-foundry/internal/backend"
	"github.com/akeren/waitlist-foundry/internal/log"
	"github.com/akeren/waitlist-foundry/pkg/constants"
	apperrors "github.com/akeren/waitlist-foundry/pkg/errors"
)

// NewWaitlistController mounts the submission endpoint under both paths the
// landing page has historically posted to.
func NewWaitlistController(b backend.Backend, logger *log.Logger) *router.RESTController {
	return router.NewRESTController(
		"WaitlistController",
		"/api",
		func(rs *router.RouterService, c *router.RESTController) {
			observer := NewPrometheusObserver(rs.MetricsRegisterer())
			service := NewWaitlistService(logger, b, observer)

			handler := submitWaitlistHandler(service)
			rs.AddPostHandler(c, "submit-waitlist", handler)
			rs.AddPostHandler(c, "add-waitlist-entry", handler)
		},
	)
}

func submitWaitlistHandler(service WaitlistService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req SubmitWaitlistRequest

		// An empty body is treated as missing fields rather than malformed JSON.
		if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			logger.Warn("Failed to bind request", "error", err)

			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				return router.PayloadTooLargeResult()
			}

			validationErrors := apperrors.FormatValidationErrors(err, &req)
			if len(validationErrors) > 0 {
				return router.BadRequestResult("Invalid request payload", validationErrors)
			}

			return router.ErrorResultFrom(apperrors.NewInvalidRequestError("Invalid request body", err))
		}

		response, err := service.Submit(ctx.Request.Context(), &req, clientMetaFrom(ctx))
		if err != nil {
			return router.ErrorResultFrom(err)
		}

		return router.OKResult(response, MsgSubmitted)
	}
}

func clientMetaFrom(ctx *router.RequestContext) ClientMeta {
	var ip string
	if forwarded := ctx.GetHeader("X-Forwarded-For"); forwarded != "" {
		ip = strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	if ip == "" {
		ip = ctx.RemoteIP()
	}

	userAgent := strings.TrimSpace(ctx.Request.UserAgent())
	if userAgent == "" {
		userAgent = constants.UnknownUserAgent
	}

	return ClientMeta{IPAddress: ip, UserAgent: userAgent}
}
