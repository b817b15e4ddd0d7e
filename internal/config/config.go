package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/alexanderramin/goaltrack/internal/analytics"
	"github.com/joho/godotenv"
)

// Config holds process-wide settings for the CLI and the HTTP server.
type Config struct {
	DBPath          string
	UserID          string
	HTTPAddr        string
	ShutdownTimeout time.Duration
	LogUseCases     bool
	// Engine defaults applied when a request does not choose its own.
	StreakType    analytics.StreakType
	SuccessMetric analytics.SuccessMetric
}

// DefaultConfig stores data under ~/.goaltrack and reports for the "local" user.
func DefaultConfig() Config {
	dbPath := "goaltrack.db"
	if home, err := os.UserHomeDir(); err == nil {
		dbPath = filepath.Join(home, ".goaltrack", "goaltrack.db")
	}
	return Config{
		DBPath:          dbPath,
		UserID:          "local",
		HTTPAddr:        ":8080",
		ShutdownTimeout: 10 * time.Second,
		StreakType:      analytics.StreakTargetMet,
		SuccessMetric:   analytics.MetricDaysTracked,
	}
}

// LoadConfig reads configuration from environment variables, falling back
// to defaults for unset or unparseable values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("GOALTRACK_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("GOALTRACK_USER"); v != "" {
		cfg.UserID = v
	}
	if v := os.Getenv("GOALTRACK_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("GOALTRACK_SHUTDOWN_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ShutdownTimeout = time.Duration(n) * time.Millisecond
		}
	}
	if v := os.Getenv("GOALTRACK_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("GOALTRACK_STREAK_TYPE"); v != "" {
		if st, err := analytics.ParseStreakType(v); err == nil {
			cfg.StreakType = st
		}
	}
	if v := os.Getenv("GOALTRACK_SUCCESS_METRIC"); v != "" {
		if m, err := analytics.ParseSuccessMetric(v); err == nil {
			cfg.SuccessMetric = m
		}
	}
	return cfg
}

// LoadDotEnv copies variables from the given files (default ".env") into the
// environment without overriding ones already set. Missing files are not
// an error.
func LoadDotEnv(files ...string) error {
	err := godotenv.Load(files...)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
