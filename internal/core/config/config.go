// Package config handles configuration loading and validation for taskline.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration. It only shapes the
// presentation layer; task semantics are fixed and take nothing from here.
type Config struct {
	// Theme selects the color palette used by the console renderer.
	Theme string `yaml:"theme"`
	// ConfirmDelete controls whether the menu asks before deleting a task.
	ConfirmDelete *bool `yaml:"confirm_delete"`
	// LogLevel is the default log level, overridable by the --log-level flag.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	confirm := true
	return Config{
		Theme:         "tokyo-night",
		ConfirmDelete: &confirm,
		LogLevel:      "info",
	}
}

// DefaultPath returns the default config file location using XDG_CONFIG_HOME.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "taskline", "config.yaml")
}

// Load reads the config file at configPath, falling back to defaults when
// the file does not exist. A file that exists but fails to parse or
// validate is an error.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.ConfirmDelete == nil {
		c.ConfirmDelete = defaults.ConfirmDelete
	}
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
}
