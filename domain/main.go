package domain

import (
	"github.com/akeren/waitlist-foundry/config"
	"github.com/akeren/waitlist-foundry/domain/monitoring"
	"github.com/akeren/waitlist-foundry/domain/waitlist"
)

func SetupCoreDomain(appConfig *config.ApplicationConfig) {
	appConfig.RouterService.MountController(monitoring.NewMonitoringControllerFactory(appConfig.Backend, appConfig.Logger).CreateController())
	appConfig.RouterService.MountController(waitlist.NewWaitlistServiceFactory(appConfig.Backend, appConfig.Logger).CreateController())
}
