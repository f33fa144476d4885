package config

import (
	"context"
	"fmt"
	"time"

	"github.com/akeren/waitlist-foundry/config/router"
	"github.com/akeren/waitlist-foundry/internal/backend"
	"github.com/akeren/waitlist-foundry/internal/log"
	"github.com/akeren/waitlist-foundry/internal/models"
	"github.com/caarlos0/env/v10"
	"gorm.io/gorm"
)

type ApplicationConfig struct {
	DB              *gorm.DB
	Backend         backend.Backend
	RouterService   *router.RouterService
	Logger          *log.Logger
	Config          *AppConfig
	TracingShutdown func(context.Context) error
}

type AppConfig struct {
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	Backend        *BackendConfig
}

func NewAppConfig() (*AppConfig, error) {
	config := &AppConfig{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if config.RequestTimeout <= 0 {
		config.RequestTimeout = 30 * time.Second
	}

	backendCfg, err := LoadBackendConfig()
	if err != nil {
		return nil, err
	}
	config.Backend = backendCfg

	return config, nil
}

func (ac *ApplicationConfig) Cleanup() {
	if ac.TracingShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := ac.TracingShutdown(ctx); err != nil {
			ac.Logger.Error("Failed to shutdown tracer provider", "error", err)
		}
	}

	if ac.DB != nil {
		CloseDatabase(ac.DB, ac.Logger)
	}

	if ac.RouterService != nil {
		ac.RouterService.Cleanup()
	}

	ac.Logger.Info("Application cleanup completed")
}

func LoadApplicationConfiguration(logger *log.Logger, autoMigrate bool) (*ApplicationConfig, error) {
	InitializeEnvFile(logger)

	if autoMigrate {
		appEnv := GetAppEnv()
		if err := ValidateAutoMigrateAllowed(appEnv); err != nil {
			return nil, err
		}
		if appEnv == "" {
			logger.Warn("APP_ENV not set; allowing --auto-migrate as development")
		}
	}

	appConfig, err := NewAppConfig()
	if err != nil {
		return nil, err
	}

	kind, err := appConfig.Backend.ResolveKind()
	if err != nil {
		return nil, err
	}

	tracingShutdown, err := SetupTracing(logger)
	if err != nil {
		return nil, err
	}

	// Only the direct Postgres backend needs a connection pool.
	var db *gorm.DB
	if kind == backend.KindPostgres {
		db, err = NewDatabase(logger, nil)
		if err != nil {
			logger.Error("Postgres backend selected but database is unreachable", "error", err)
			db = nil
		}

		if autoMigrate && db != nil {
			if err := AutoMigrate(logger, db, models.ModelRegistry...); err != nil {
				return nil, err
			}
		}
	} else if autoMigrate {
		logger.Warn("--auto-migrate ignored; backend does not own a database", "backend", kind.String())
	}

	waitlistBackend, err := NewBackend(context.Background(), logger, appConfig.Backend, db)
	if err != nil {
		return nil, err
	}

	routerService := router.CreateRouterService(logger, &router.RouterConfig{
		RequestTimeout: appConfig.RequestTimeout,
	})

	logger.Info("Application configuration loaded successfully")

	return &ApplicationConfig{
		DB:              db,
		Backend:         waitlistBackend,
		RouterService:   routerService,
		Logger:          logger,
		Config:          appConfig,
		TracingShutdown: tracingShutdown,
	}, nil
}
