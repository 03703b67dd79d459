package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the demo configuration loaded from environment variables.
type Config struct {
	LogLevel string `env:"REDUX_DEMO_LOG_LEVEL" envDefault:"info"` // debug, info, warn, error

	// Simulated backend
	Latency time.Duration `env:"REDUX_DEMO_LATENCY" envDefault:"50ms"`
	Sources []string      `env:"REDUX_DEMO_SOURCES" envDefault:"inbox,work" envSeparator:","`
}

// LoadConfig loads configuration from environment variables.
// It loads a .env file if present (silent fail if not found).
func LoadConfig() (*Config, error) {
	godotenv.Load() // Load .env file if present

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Latency < 0 {
		return fmt.Errorf("REDUX_DEMO_LATENCY must not be negative, got %s", c.Latency)
	}
	if len(c.Sources) == 0 {
		return fmt.Errorf("REDUX_DEMO_SOURCES must name at least one source")
	}
	return nil
}

// Level returns the configured log level.
func (c *Config) Level() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level: %s (must be debug, info, warn, or error)", s)
}
