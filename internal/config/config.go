// Package config reads server settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// Default is 8111 to avoid clashing with the usual 8080 dev servers.
	defaultPort         = "8111"
	defaultProjectID    = "cuentas-app"
	defaultAlgoliaIndex = "movements"
	defaultReminderDays = 3
	defaultTimezone     = "America/Argentina/Buenos_Aires"
)

var defaultOrigins = []string{
	"http://localhost:1234",
	"http://127.0.0.1:1234",
}

// Config is the resolved server configuration.
type Config struct {
	Port           string
	UseMemoryStore bool
	SkipAuth       bool
	ProjectID      string

	AlgoliaAppID  string
	AlgoliaAPIKey string
	AlgoliaIndex  string

	ExportBucket    string
	SchedulerSecret string
	ReminderDays    int

	AllowedOrigins []string
	LogLevel       string
	Location       *time.Location
}

// AlgoliaEnabled reports whether both Algolia credentials are present.
func (c *Config) AlgoliaEnabled() bool {
	return c.AlgoliaAppID != "" && c.AlgoliaAPIKey != ""
}

// Load reads .env files (when present) and then the environment. Values
// already set in the environment win over the files.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Port:            valueOr(getenv("PORT"), defaultPort),
		UseMemoryStore:  getenv("USE_MEMORY_STORE") == "true" || getenv("ENV") == "local",
		SkipAuth:        getenv("SKIP_AUTH") == "true",
		ProjectID:       valueOr(getenv("GOOGLE_CLOUD_PROJECT"), defaultProjectID),
		AlgoliaAppID:    getenv("ALGOLIA_APP_ID"),
		AlgoliaAPIKey:   getenv("ALGOLIA_API_KEY"),
		AlgoliaIndex:    valueOr(getenv("ALGOLIA_INDEX"), defaultAlgoliaIndex),
		ExportBucket:    getenv("EXPORT_BUCKET"),
		SchedulerSecret: getenv("SCHEDULER_SECRET"),
		ReminderDays:    defaultReminderDays,
		AllowedOrigins:  defaultOrigins,
		LogLevel:        valueOr(getenv("LOG_LEVEL"), "info"),
	}

	if v := getenv("REMINDER_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid REMINDER_DAYS %q", v)
		}
		cfg.ReminderDays = n
	}

	if v := getenv("ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = splitList(v)
	}

	loc, err := time.LoadLocation(valueOr(getenv("TIMEZONE"), defaultTimezone))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}
	cfg.Location = loc

	return cfg, nil
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
