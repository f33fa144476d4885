package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/akeren/waitlist-foundry/internal/log"
	"github.com/caarlos0/env/v10"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DBConfig describes the connection used by the direct Postgres backend and
// the migration CLI. APP_DATABASE_URL wins over the discrete POSTGRES_* vars.
type DBConfig struct {
	DatabaseURL string `env:"APP_DATABASE_URL"`

	Host     string `env:"POSTGRES_HOST"`
	Port     string `env:"POSTGRES_PORT"`
	User     string `env:"POSTGRES_USER"`
	Password string `env:"POSTGRES_PASSWORD"`
	DBName   string `env:"POSTGRES_DB_NAME"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"require"`

	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"10"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"100"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"1m"`
}

func LoadDBConfig() (*DBConfig, error) {
	cfg := &DBConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	cfg.DatabaseURL = sanitizeEnv(cfg.DatabaseURL)
	cfg.Host = sanitizeEnv(cfg.Host)
	cfg.Port = sanitizeEnv(cfg.Port)
	cfg.User = sanitizeEnv(cfg.User)
	cfg.Password = sanitizeEnv(cfg.Password)
	cfg.DBName = sanitizeEnv(cfg.DBName)
	cfg.SSLMode = sanitizeEnv(cfg.SSLMode)
	if cfg.SSLMode == "" {
		cfg.SSLMode = "require"
	}

	return cfg, nil
}

// DSN reports every missing POSTGRES_* variable at once before it looks at
// the port value.
func (c *DBConfig) DSN() (string, error) {
	if c.DatabaseURL != "" {
		return c.DatabaseURL, nil
	}

	var missing []string
	if c.Host == "" {
		missing = append(missing, "POSTGRES_HOST")
	}
	if c.Port == "" {
		missing = append(missing, "POSTGRES_PORT")
	}
	if c.User == "" {
		missing = append(missing, "POSTGRES_USER")
	}
	if c.DBName == "" {
		missing = append(missing, "POSTGRES_DB_NAME")
	}
	if len(missing) > 0 {
		return "", fmt.Errorf("missing required database env vars: %s", strings.Join(missing, ", "))
	}

	port, err := strconv.Atoi(c.Port)
	if err != nil || port <= 0 || port > 65535 {
		return "", fmt.Errorf("invalid POSTGRES_PORT %q", c.Port)
	}

	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, port, c.User, c.Password, c.DBName, c.SSLMode,
	), nil
}

// NewDatabase opens and pings the pool. A nil cfg is loaded from the
// environment.
func NewDatabase(logger *log.Logger, cfg *DBConfig) (*gorm.DB, error) {
	if cfg == nil {
		loaded, err := LoadDBConfig()
		if err != nil {
			logger.Error("Invalid database configuration", "error", err)
			return nil, err
		}
		cfg = loaded
	}

	dsn, err := cfg.DSN()
	if err != nil {
		logger.Error("Invalid database configuration", "error", err)
		return nil, err
	}

	if cfg.DatabaseURL != "" {
		logger.Info("Using APP_DATABASE_URL for database connection")
	} else {
		logger.Info("Connecting to database",
			"host", cfg.Host,
			"port", cfg.Port,
			"user", cfg.User,
			"dbname", cfg.DBName,
			"sslmode", cfg.SSLMode,
		)
	}

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		logger.Error("Failed to get database instance", "error", err)
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		logger.Error("Database ping failed", "error", err)
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	logger.Info("Database connection established successfully")
	return gdb, nil
}

func sanitizeEnv(v string) string {
	s := strings.TrimSpace(v)

	if len(s) >= 2 && ((s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'')) {
		s = s[1 : len(s)-1]
	}

	return s
}

func AutoMigrate(logger *log.Logger, db *gorm.DB, models ...interface{}) error {
	if db == nil {
		logger.Error("Cannot migrate: db is empty")
		return fmt.Errorf("cannot migrate: db is empty")
	}

	if err := db.AutoMigrate(models...); err != nil {
		logger.Error("Database migration failed", "error", err)
		return fmt.Errorf("auto-migrate failed: %w", err)
	}

	logger.Info("Database migration completed successfully")

	return nil
}

func CloseDatabase(db *gorm.DB, logger *log.Logger) {
	if db == nil {
		return
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Failed to get SQL DB instance", "error", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("Failed to close database", "error", err)
	} else {
		logger.Info("Database closed successfully")
	}
}
