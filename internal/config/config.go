// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string `envconfig:"PORT" default:"8080"`

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// CORSOrigins is a comma-separated list of allowed cross-origin request origins.
	// Use Origins for the parsed list.
	CORSOrigins string `envconfig:"CORS_ORIGINS" default:"http://localhost:5173"`

	// HealthMessage prefixes the visit count in the /health response.
	HealthMessage string `envconfig:"HEALTH_MESSAGE" default:"I'm good, you have asked already"`

	// MaxBodyBytes caps request body size.
	MaxBodyBytes int64 `envconfig:"MAX_BODY_BYTES" default:"1048576"`

	// MigrateOnStart applies pending migrations before the server starts.
	MigrateOnStart bool `envconfig:"MIGRATE_ON_START" default:"false"`
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error naming the variable that is missing or malformed.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}

	// envconfig accepts a variable that is set but empty.
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		return Config{}, fmt.Errorf("config.Load: required environment variable not set: DATABASE_URL")
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("config.Load: LOG_LEVEL: %w", err)
	}
	if cfg.MaxBodyBytes <= 0 {
		return Config{}, fmt.Errorf("config.Load: MAX_BODY_BYTES must be positive, got %d", cfg.MaxBodyBytes)
	}
	return cfg, nil
}

// Origins returns CORSOrigins split into a trimmed slice, ignoring empty entries.
func (c Config) Origins() []string {
	var out []string
	for _, part := range strings.Split(c.CORSOrigins, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Level returns LogLevel as a slog.Level. Load has already rejected bad values.
func (c Config) Level() slog.Level {
	l, _ := parseLevel(c.LogLevel)
	return l
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, err
	}
	return l, nil
}
