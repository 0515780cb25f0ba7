package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DatabaseConfig locates the local database file.
type DatabaseConfig struct {
	Path        string
	BusyTimeout time.Duration
}

// Config is the application configuration.
type Config struct {
	Database DatabaseConfig

	Log struct {
		Level  string
		Format string
	}

	Metrics struct {
		// TextfilePath, when set, receives the operation counters on exit.
		TextfilePath string
	}

	Auth struct {
		Username string
		Password string
	}
}

// Load reads the configuration from the environment, after merging an optional
// .env file from the working directory. Variables already set win over .env.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	cfg := &Config{}

	cfg.Database.Path = getEnv("HMS_DB_PATH", "hospital.db")
	cfg.Database.BusyTimeout = 5 * time.Second
	if v, err := strconv.Atoi(getEnv("HMS_DB_BUSY_TIMEOUT_MS", "")); err == nil && v >= 0 {
		cfg.Database.BusyTimeout = time.Duration(v) * time.Millisecond
	}

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "console")

	cfg.Metrics.TextfilePath = getEnv("HMS_METRICS_FILE", "")

	cfg.Auth.Username = getEnv("HMS_USERNAME", "")
	cfg.Auth.Password = getEnv("HMS_PASSWORD", "")

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
