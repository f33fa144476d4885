package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/akeren/waitlist-foundry/config"
	"github.com/akeren/waitlist-foundry/internal/backend"
	"github.com/akeren/waitlist-foundry/internal/log"
	"github.com/akeren/waitlist-foundry/pkg/migrations"
	"github.com/akeren/waitlist-foundry/pkg/utils"
	"gorm.io/gorm"
)

func main() {
	logger := log.NewLoggerWithJSONOutput()

	config.InitializeEnvFile(logger) // Load envs early for CLI consistency

	args := os.Args[1:]
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	switch args[0] {
	case "migrate":
		if err := runMigrations(logger, migrations.Up); err != nil {
			os.Exit(1)
		}
		return

	case "migrate-down":
		if err := config.ValidateAutoMigrateAllowed(config.GetAppEnv()); err != nil {
			logger.Error("Refusing to roll back migrations", "error", err.Error())
			os.Exit(1)
		}
		if err := runMigrations(logger, migrations.Down); err != nil {
			os.Exit(1)
		}
		return

	case "backend":
		if err := describeBackend(os.Stdout, log.NewDiscardLogger()); err != nil {
			logger.Error("Failed to resolve waitlist backend", "error", err.Error())
			os.Exit(1)
		}
		return

	case "help", "-h", "--help":
		printUsage()
		return

	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

func runMigrations(logger *log.Logger, apply func(context.Context, *sql.DB, migrations.Config) error) error {
	db, err := config.NewDatabase(logger, nil)
	if err != nil {
		logger.Error("Failed to connect to database for migration", "error", err.Error())
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Failed to get SQL DB instance for migration", "error", err.Error())
		return err
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			logger.Warn("Failed to close SQL DB after migration", "error", err.Error())
		}
	}()

	migrationsDir := utils.GetEnvTrimmedOrDefault("MIGRATIONS_DIR", "migrations")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := apply(ctx, sqlDB, migrations.Config{Dir: migrationsDir, Logger: logger}); err != nil {
		logger.Error("Database migration failed", "error", err.Error())
		return err
	}

	logger.Info("Database migrations completed")
	return nil
}

// describeBackend prints which backend the environment resolves to. No
// credential values are printed.
func describeBackend(w io.Writer, logger *log.Logger) error {
	cfg, err := config.LoadBackendConfig()
	if err != nil {
		return err
	}

	kind, err := cfg.ResolveKind()
	if err != nil {
		return err
	}

	var db *gorm.DB
	if kind == backend.KindPostgres {
		db, err = config.NewDatabase(logger, nil)
		if err != nil {
			db = nil
		}
		defer config.CloseDatabase(db, logger)
	}

	b, err := config.NewBackend(context.Background(), logger, cfg, db)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "requested: %s\n", cfg.Backend)
	fmt.Fprintf(w, "resolved:  %s\n", kind)

	if err := b.Ready(); err != nil {
		fmt.Fprintf(w, "ready:     no (%s)\n", reason(err))
		return nil
	}

	fmt.Fprintln(w, "ready:     yes")
	return nil
}

func reason(err error) string {
	var cfgErr *backend.ConfigError
	if errors.As(err, &cfgErr) && cfgErr.Reason != "" {
		return cfgErr.Reason
	}
	return "Waitlist backend not configured"
}

func printUsage() {
	fmt.Println("Usage: cli <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  migrate       Run database migrations and exit")
	fmt.Println("  migrate-down  Roll back all migrations (development environments only)")
	fmt.Println("  backend       Show which waitlist backend the environment selects and whether it is ready")
}
