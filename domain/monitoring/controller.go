package monitoring

import (
	"context"
	"time"

	"github.com/akeren/waitlist-foundry/config/router"
	"github.com/akeren/waitlist-foundry/internal/backend"
	"github.com/akeren/waitlist-foundry/internal/log"
	"github.com/akeren/waitlist-foundry/pkg/constants"
	"github.com/akeren/waitlist-foundry/pkg/utils"
)

const (
	statusHealthy  = "healthy"
	statusDegraded = "degraded"

	probeTimeout = 5 * time.Second
)

type HealthStatus struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
	Backend     string `json:"backend"`
	Ready       bool   `json:"ready"`
	Reachable   bool   `json:"reachable"`
	Uptime      int    `json:"uptime"` // seconds
}

type MonitoringController struct {
	backend   backend.Backend
	logger    *log.Logger
	startTime time.Time
	now       func() time.Time
}

func NewMonitoringController(b backend.Backend, logger *log.Logger) *router.RESTController {
	ctrl := &MonitoringController{
		backend:   b,
		logger:    logger,
		startTime: time.Now(),
		now:       time.Now,
	}

	return router.NewRESTController(
		"MonitoringController",
		"/",
		func(routerService *router.RouterService, controller *router.RESTController) {
			routerService.AddGetHandler(controller, "health", func(c *router.RequestContext) *router.ServiceResult {
				return ctrl.healthCheck(routerService, c)
			})

			routerService.AddGetHandler(controller, "api/health", func(c *router.RequestContext) *router.ServiceResult {
				return ctrl.healthCheck(routerService, c)
			})
		},
	)
}

func (ctrl *MonitoringController) healthCheck(
	routerService *router.RouterService,
	c *router.RequestContext,
) *router.ServiceResult {
	logger := routerService.GetLogger(c)
	logger.Info("Health check endpoint called")

	healthStatus := ctrl.performHealthChecks(c.Request.Context(), logger)

	return router.OKResult(healthStatus, "API is working correctly")
}

func (ctrl *MonitoringController) performHealthChecks(ctx context.Context, logger *log.Logger) HealthStatus {
	status := HealthStatus{
		Status:      statusDegraded,
		Timestamp:   ctrl.now().UTC().Format(constants.ISO8601MillisFormat),
		Environment: utils.GetEnvTrimmedOrDefault("APP_ENV", "development"),
		Uptime:      int(time.Since(ctrl.startTime).Seconds()),
	}

	if ctrl.backend == nil {
		logger.Error("No waitlist backend wired into health check")
		return status
	}

	status.Backend = ctrl.backend.Kind().String()

	checkBackendReadiness(ctrl, &status, logger)
	if status.Ready {
		checkBackendConnectivity(ctx, ctrl, &status, logger)
	}

	if status.Ready && status.Reachable {
		status.Status = statusHealthy
	}

	return status
}

func checkBackendReadiness(ctrl *MonitoringController, status *HealthStatus, logger *log.Logger) {
	if err := ctrl.backend.Ready(); err != nil {
		status.Ready = false
		logger.Error("Backend not configured", "backend", status.Backend, "error", err)
		return
	}
	status.Ready = true
}

func checkBackendConnectivity(ctx context.Context, ctrl *MonitoringController, status *HealthStatus, logger *log.Logger) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	if err := ctrl.backend.Ping(ctx); err != nil {
		status.Reachable = false
		logger.Error("Backend health check failed", "backend", status.Backend, "error", err)
		return
	}

	status.Reachable = true
	logger.Info("Backend health check passed", "backend", status.Backend)
}
