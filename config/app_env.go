package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/akeren/waitlist-foundry/internal/log"
	"github.com/akeren/waitlist-foundry/pkg/utils"
	"github.com/joho/godotenv"
)

const AppEnvKey = "APP_ENV"

// Environments in which schema changes may be applied from the binary.
var devEnvironments = map[string]bool{
	"":            true,
	"dev":         true,
	"development": true,
	"local":       true,
	"test":        true,
	"testing":     true,
}

// InitializeEnvFile loads .env files into the process environment without
// overriding variables that are already set. DOTENV_FILES may name a
// comma-separated list of files; the default is ".env".
func InitializeEnvFile(logger *log.Logger) {
	if utils.GetEnvBool("SKIP_DOTENV", false) {
		logger.Info("Skipping .env file load (SKIP_DOTENV=true)")
		return
	}

	files := dotenvFiles(utils.GetEnvTrimmed("DOTENV_FILES"))

	err := godotenv.Load(files...)
	switch {
	case err == nil:
		logger.Info("Environment variables loaded from file", "files", strings.Join(files, ","))
	case errors.Is(err, fs.ErrNotExist):
		logger.Info("No .env file found; using process environment", "files", strings.Join(files, ","))
	default:
		logger.Warn("Failed to load .env file", "files", strings.Join(files, ","), "error", err.Error())
	}
}

func dotenvFiles(raw string) []string {
	var files []string
	for _, f := range strings.Split(raw, ",") {
		if f = strings.TrimSpace(f); f != "" {
			files = append(files, f)
		}
	}
	if len(files) == 0 {
		return []string{".env"}
	}
	return files
}

func GetAppEnv() string {
	return strings.ToLower(utils.GetEnvTrimmed(AppEnvKey))
}

func ValidateAutoMigrateAllowed(appEnv string) error {
	env := strings.ToLower(strings.TrimSpace(appEnv))
	if devEnvironments[env] {
		return nil
	}
	return fmt.Errorf("--auto-migrate is not allowed when %s=%q (allowed: \"\", dev, development, local, test, testing)", AppEnvKey, env)
}
