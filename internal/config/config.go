// Package config reads service settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the API server settings.
type Config struct {
	Addr             string        `env:"CALC_ADDR"              envDefault:":8080"`
	ServiceName      string        `env:"OTEL_SERVICE_NAME"      envDefault:"keypad-calc"`
	LogLevel         string        `env:"CALC_LOG_LEVEL"         envDefault:"info"`
	TelemetryEnabled bool          `env:"CALC_TELEMETRY_ENABLED" envDefault:"true"`
	ShutdownTimeout  time.Duration `env:"CALC_SHUTDOWN_TIMEOUT"  envDefault:"5s"`
	SessionTTL       time.Duration `env:"CALC_SESSION_TTL"       envDefault:"30m"`
	MaxSessions      int           `env:"CALC_MAX_SESSIONS"      envDefault:"10000"`
}

// Load parses Config from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.MaxSessions <= 0 {
		return Config{}, fmt.Errorf("CALC_MAX_SESSIONS must be positive, got %d", cfg.MaxSessions)
	}
	if cfg.SessionTTL <= 0 {
		return Config{}, fmt.Errorf("CALC_SESSION_TTL must be positive, got %s", cfg.SessionTTL)
	}
	return cfg, nil
}
