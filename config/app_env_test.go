package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/akeren/waitlist-foundry/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAutoMigrateAllowed(t *testing.T) {
	for _, env := range []string{"", "dev", "development", "local", "test", "testing", "DEV", "  Local  "} {
		assert.NoError(t, ValidateAutoMigrateAllowed(env), env)
	}

	for _, env := range []string{"prod", "production", "staging", "preprod", " Production ", "qa"} {
		assert.ErrorContains(t, ValidateAutoMigrateAllowed(env), "--auto-migrate is not allowed", env)
	}
}

func TestGetAppEnv(t *testing.T) {
	t.Setenv(AppEnvKey, "  Production ")
	assert.Equal(t, "production", GetAppEnv())
}

func TestDotenvFiles(t *testing.T) {
	assert.Equal(t, []string{".env"}, dotenvFiles(""))
	assert.Equal(t, []string{".env"}, dotenvFiles(" , "))
	assert.Equal(t, []string{".env.local", ".env"}, dotenvFiles(".env.local, .env"))
}

func TestInitializeEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "waitlist.env")
	require.NoError(t, os.WriteFile(path, []byte("WAITLIST_DOTENV_A=from-file\nWAITLIST_DOTENV_B=from-file\n"), 0o600))

	t.Run("does not override the process environment", func(t *testing.T) {
		unsetEnv(t, "SKIP_DOTENV", "WAITLIST_DOTENV_A")
		t.Setenv("WAITLIST_DOTENV_B", "from-process")
		t.Setenv("DOTENV_FILES", path)

		InitializeEnvFile(log.NewDiscardLogger())

		assert.Equal(t, "from-file", os.Getenv("WAITLIST_DOTENV_A"))
		assert.Equal(t, "from-process", os.Getenv("WAITLIST_DOTENV_B"))
	})

	t.Run("skipped", func(t *testing.T) {
		unsetEnv(t, "WAITLIST_DOTENV_A")
		t.Setenv("SKIP_DOTENV", "true")
		t.Setenv("DOTENV_FILES", path)

		InitializeEnvFile(log.NewDiscardLogger())

		_, ok := os.LookupEnv("WAITLIST_DOTENV_A")
		assert.False(t, ok)
	})

	t.Run("missing file is tolerated", func(t *testing.T) {
		unsetEnv(t, "SKIP_DOTENV")
		t.Setenv("DOTENV_FILES", filepath.Join(dir, "absent.env"))

		assert.NotPanics(t, func() { InitializeEnvFile(log.NewDiscardLogger()) })
	})
}
