package monitoring

import (
	"github.com/akeren/waitlist-foundry/config/router"
	"github.com/akeren/waitlist-foundry/internal/backend"
	"github.com/akeren/waitlist-foundry/internal/log"
)

type MonitoringControllerFactory interface {
	CreateController() *router.RESTController
}

type DefaultMonitoringControllerFactory struct {
	backend backend.Backend
	logger  *log.Logger
}

func NewMonitoringControllerFactory(b backend.Backend, logger *log.Logger) MonitoringControllerFactory {
	return &DefaultMonitoringControllerFactory{
		backend: b,
		logger:  logger,
	}
}

func (f *DefaultMonitoringControllerFactory) CreateController() *router.RESTController {
	return NewMonitoringController(f.backend, f.logger)
}
