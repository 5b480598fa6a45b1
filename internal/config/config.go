// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/caarlos0/env/v9"

	"freelance-pricing/internal/errors"
	"freelance-pricing/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version" env:"PRICING_CONFIG_VERSION"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Tuning contains pricing tuning configuration
	Tuning TuningConfig `json:"tuning"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json)
	DefaultFormat string `json:"default_format" env:"PRICING_OUTPUT_FORMAT"`

	// ShowStrategies renders the pricing-posture reference table
	ShowStrategies bool `json:"show_strategies" env:"PRICING_SHOW_STRATEGIES"`

	// ShowBand renders the market band context
	ShowBand bool `json:"show_band" env:"PRICING_SHOW_BAND"`
}

// TuningConfig contains pricing tuning settings
type TuningConfig struct {
	// File is the path to an HCL tuning override file, empty for defaults
	File string `json:"file" env:"PRICING_TUNING_FILE"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Output: OutputConfig{
			DefaultFormat:  "cli",
			ShowStrategies: true,
			ShowBand:       true,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load reads configuration from a JSON file, then applies PRICING_*
// environment overrides on top.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(errors.TypeConfig, "reading config file", err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(errors.TypeConfig, "parsing config file", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(errors.TypeConfig, "applying environment overrides", err)
	}
	return cfg, nil
}

var (
	mu      sync.RWMutex
	current = DefaultConfig()
)

// Get returns the active configuration
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Set replaces the active configuration
func Set(cfg *Config) {
	mu.Lock()
	defer mu.Unlock()
	current = cfg
}
