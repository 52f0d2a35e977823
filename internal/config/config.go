// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/abhisek/batball/internal/logging"
)

// Config holds the game's runtime settings.
type Config struct {
	// DBPath overrides the default database location.
	DBPath string `env:"BATBALL_DB"`

	// ComboWindow is how soon a win must follow the previous one to grow
	// the combo multiplier.
	ComboWindow time.Duration `env:"BATBALL_COMBO_WINDOW" envDefault:"2s"`

	// RevealDelay is the pause between submitting a move and seeing the
	// result in the interactive arcade.
	RevealDelay time.Duration `env:"BATBALL_REVEAL_DELAY" envDefault:"600ms"`

	// Seed fixes the opponent's random source; 0 picks a random seed.
	Seed int64 `env:"BATBALL_SEED"`

	LogLevel  string `env:"BATBALL_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"BATBALL_LOG_FORMAT" envDefault:"text"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings that cannot be used.
func (c Config) Validate() error {
	var errs []error
	if c.ComboWindow <= 0 {
		errs = append(errs, fmt.Errorf("BATBALL_COMBO_WINDOW must be positive, got %s", c.ComboWindow))
	}
	if c.RevealDelay < 0 {
		errs = append(errs, fmt.Errorf("BATBALL_REVEAL_DELAY must not be negative, got %s", c.RevealDelay))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("BATBALL_LOG_LEVEL: %w", err))
	}
	switch c.LogFormat {
	case logging.FormatText, logging.FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("BATBALL_LOG_FORMAT must be %q or %q, got %q", logging.FormatText, logging.FormatJSON, c.LogFormat))
	}
	return errors.Join(errs...)
}
