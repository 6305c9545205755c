package main

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix scopes every variable: DISTANCE_FORMAT, DISTANCE_PRECISION, ...
const envPrefix = "distance"

// ErrBadFormat is returned for a number format other than g, f or e.
var ErrBadFormat = errors.New("distance: format must be one of g, f, e")

// Config holds the CLI defaults. Environment variables provide them and
// command-line flags override them.
type Config struct {
	Format    string `envconfig:"FORMAT" default:"g"`
	Precision int    `envconfig:"PRECISION" default:"-1"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"warn"`
	LogDev    bool   `envconfig:"LOG_DEV" default:"false"`
}

// DefaultConfig returns the configuration used when no variable is set.
func DefaultConfig() Config {
	return Config{
		Format:    "g",
		Precision: -1,
		LogLevel:  "warn",
	}
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("distance: load config: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate checks the fields that flags and variables can get wrong.
func (c Config) Validate() error {
	switch c.Format {
	case "g", "f", "e":
		return nil
	default:
		return fmt.Errorf("%w: got %q", ErrBadFormat, c.Format)
	}
}
