package config

import (
	"testing"
	"time"

	"github.com/akeren/waitlist-foundry/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dbEnvKeys = []string{
	"APP_DATABASE_URL", "POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_USER", "POSTGRES_PASSWORD",
	"POSTGRES_DB_NAME", "POSTGRES_SSLMODE", "DB_MAX_IDLE_CONNS", "DB_MAX_OPEN_CONNS", "DB_CONN_MAX_LIFETIME",
}

func TestLoadDBConfig_Defaults(t *testing.T) {
	unsetEnv(t, dbEnvKeys...)
	t.Setenv("POSTGRES_HOST", ` "db.internal" `)

	cfg, err := LoadDBConfig()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Host)
	assert.Equal(t, "require", cfg.SSLMode)
	assert.Equal(t, 10, cfg.MaxIdleConns)
	assert.Equal(t, 100, cfg.MaxOpenConns)
	assert.Equal(t, time.Minute, cfg.ConnMaxLifetime)
}

func TestLoadDBConfig_BadPoolSetting(t *testing.T) {
	unsetEnv(t, dbEnvKeys...)
	t.Setenv("DB_MAX_OPEN_CONNS", "many")

	_, err := LoadDBConfig()
	assert.Error(t, err)
}

func TestDBConfigDSN(t *testing.T) {
	t.Run("database url wins", func(t *testing.T) {
		cfg := &DBConfig{DatabaseURL: "postgres://u:p@h:5432/db", Host: "ignored"}

		dsn, err := cfg.DSN()
		require.NoError(t, err)
		assert.Equal(t, "postgres://u:p@h:5432/db", dsn)
	})

	t.Run("discrete fields", func(t *testing.T) {
		cfg := &DBConfig{Host: "h", Port: "5433", User: "u", Password: "p", DBName: "waitlist", SSLMode: "disable"}

		dsn, err := cfg.DSN()
		require.NoError(t, err)
		assert.Equal(t, "host=h port=5433 user=u password=p dbname=waitlist sslmode=disable", dsn)
	})

	t.Run("nothing set lists every missing var", func(t *testing.T) {
		_, err := (&DBConfig{}).DSN()
		require.Error(t, err)
		assert.Equal(t, "missing required database env vars: POSTGRES_HOST, POSTGRES_PORT, POSTGRES_USER, POSTGRES_DB_NAME", err.Error())
	})

	t.Run("missing vars reported before port parsing", func(t *testing.T) {
		_, err := (&DBConfig{Port: "5432"}).DSN()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "POSTGRES_HOST, POSTGRES_USER, POSTGRES_DB_NAME")
	})

	t.Run("bad port", func(t *testing.T) {
		for _, port := range []string{"abc", "0", "70000"} {
			_, err := (&DBConfig{Host: "h", Port: port, User: "u", DBName: "d"}).DSN()
			assert.ErrorContains(t, err, "invalid POSTGRES_PORT", port)
		}
	})
}

func TestNewDatabase_UnconfiguredFailsWithoutDialing(t *testing.T) {
	unsetEnv(t, dbEnvKeys...)

	db, err := NewDatabase(log.NewDiscardLogger(), nil)
	assert.Nil(t, db)
	assert.ErrorContains(t, err, "missing required database env vars")
}
