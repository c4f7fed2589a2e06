// Package config loads salesmetrics settings from a config file, .env and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// EnvPrefix prefixes every environment variable, e.g. SALESMETRICS_SHEET.
const EnvPrefix = "SALESMETRICS"

// DefaultConfigFile is read from the working directory when present.
const DefaultConfigFile = "salesmetrics.yaml"

// Config represents the application configuration.
type Config struct {
	// CurrencySymbols are stripped from numeric cells.
	CurrencySymbols []string `yaml:"currency_symbols" envconfig:"CURRENCY_SYMBOLS" default:"£,$,€" validate:"min=1,dive,required"`
	// SampleSize is the number of raw values kept per column in diagnostics.
	SampleSize int `yaml:"sample_size" envconfig:"SAMPLE_SIZE" default:"5" validate:"min=1,max=100"`
	// Sheet selects the worksheet. Empty means the first sheet.
	Sheet string `yaml:"sheet" envconfig:"SHEET"`
	// ReportTop limits the groups charted per category in reports; 0 charts all.
	ReportTop int `yaml:"report_top" envconfig:"REPORT_TOP" default:"10" validate:"min=0"`
	// DisplayCurrency prefixes amounts in text output.
	DisplayCurrency string `yaml:"display_currency" envconfig:"DISPLAY_CURRENCY" default:"$"`
	Logging         LoggingConfig `yaml:"logging" envconfig:"LOG"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" default:"warn" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" envconfig:"FORMAT" default:"text" validate:"oneof=text json"`
}

// Load applies defaults and SALESMETRICS_* variables (after reading .env, if
// any), then overlays the config file named by SALESMETRICS_CONFIG or
// salesmetrics.yaml when it exists. Keys set in the file win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	path := os.Getenv(EnvPrefix + "_CONFIG")
	if path == "" {
		path = DefaultConfigFile
	}
	if _, err := os.Stat(path); err == nil {
		if err := loadFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// loadFile overlays the YAML file at path onto cfg.
func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}
