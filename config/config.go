// Package config reads runtime settings from the environment.
package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds settings for one run. Command-line flags override these.
type Config struct {
	Seed       int64      `env:"ECOHERO_SEED"`
	LogLevel   slog.Level `env:"ECOHERO_LOG_LEVEL" envDefault:"INFO"`
	LogFormat  string     `env:"ECOHERO_LOG_FORMAT" envDefault:"text"`
	LogFile    string     `env:"ECOHERO_LOG_FILE"`
	ContentDir string     `env:"ECOHERO_CONTENT_DIR"`
	PlayerName string     `env:"ECOHERO_PLAYER_NAME"`
	Plain      bool       `env:"ECOHERO_PLAIN"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects unsupported values.
func (c *Config) Validate() error {
	switch c.LogFormat {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("ECOHERO_LOG_FORMAT must be %q or %q, got %q", FormatText, FormatJSON, c.LogFormat)
	}
	return nil
}

// Seeded reports whether a fixed seed was requested.
func (c *Config) Seeded() bool { return c.Seed != 0 }
