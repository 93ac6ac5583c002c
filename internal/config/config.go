// Package config provides configuration loading and validation for tamscout.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the dashboard.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Store   StoreConfig   `yaml:"store"`
	Logging LoggingConfig `yaml:"logging"`
}

// APIConfig holds the TAMS store endpoint settings.
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Token   string        `yaml:"token"`
	Timeout time.Duration `yaml:"timeout"`
}

// StoreConfig holds local persistence settings.
type StoreConfig struct {
	HistoryPath string `yaml:"history_path"` // SQLite file for event history
	MaxEvents   int    `yaml:"max_events"`   // history rows kept after pruning
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // log file path, empty = stderr
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		API: APIConfig{
			Timeout: 30 * time.Second,
		},
		Store: StoreConfig{
			HistoryPath: "tamscout.db",
			MaxEvents:   5000,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the config file at path, applies environment overrides, and
// validates the result. A missing file is not an error; defaults plus
// environment are used instead.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("failed to read config file: %w", err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnv overrides file values with TAMSCOUT_* environment variables.
func applyEnv(cfg *Config) {
	if v := os.Getenv("TAMSCOUT_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("TAMSCOUT_TOKEN"); v != "" {
		cfg.API.Token = v
	}
	if v := os.Getenv("TAMSCOUT_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("TAMSCOUT_DB"); v != "" {
		cfg.Store.HistoryPath = v
	}
}

// Validate checks the configuration is usable.
func (c Config) Validate() error {
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level %q", c.Logging.Level)
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("api timeout must not be negative")
	}
	if c.Store.MaxEvents < 0 {
		return fmt.Errorf("store max_events must not be negative")
	}
	return nil
}
