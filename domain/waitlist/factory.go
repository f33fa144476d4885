package waitlist

import (
	"github.com/akeren/waitlist-foundry/config/router"
	"github.com/akeren/waitlist-foundry/internal/backend"
	"github.com/akeren/waitlist-foundry/internal/log"
)

type WaitlistServiceFactory interface {
	CreateService(observer Observer) WaitlistService
	CreateController() *router.RESTController
}

type DefaultWaitlistServiceFactory struct {
	backend backend.Backend
	logger  *log.Logger
}

func NewWaitlistServiceFactory(b backend.Backend, logger *log.Logger) WaitlistServiceFactory {
	return &DefaultWaitlistServiceFactory{
		backend: b,
		logger:  logger,
	}
}

func (f *DefaultWaitlistServiceFactory) CreateService(observer Observer) WaitlistService {
	return NewWaitlistService(f.logger, f.backend, observer)
}

func (f *DefaultWaitlistServiceFactory) CreateController() *router.RESTController {
	return NewWaitlistController(f.backend, f.logger)
}
