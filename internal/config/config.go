// Package config defines termfolio's configuration and its loading rules.
package config

import (
	"fmt"
)

// Config is the root configuration.
type Config struct {
	TUI     TUIConfig     `mapstructure:"tui"`
	Logging LoggingConfig `mapstructure:"logging"`
	Content ContentConfig `mapstructure:"content"`
}

// TUIConfig controls the simulated terminal's appearance.
type TUIConfig struct {
	// Theme names a palette: default, high-contrast, matrix.
	Theme string `mapstructure:"theme"`

	// User and Host appear in the prompt as user@host.
	User string `mapstructure:"user"`
	Host string `mapstructure:"host"`
}

// LoggingConfig controls structured logging.
type LoggingConfig struct {
	Level        string `mapstructure:"level"`
	Format       string `mapstructure:"format"`
	File         string `mapstructure:"file"`
	EnableCaller bool   `mapstructure:"enable_caller"`
}

// ContentConfig points at an optional portfolio content override.
type ContentConfig struct {
	// File is a YAML content file replacing the built-in portfolio.
	// Empty means use the embedded one.
	File string `mapstructure:"file"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		TUI: TUIConfig{
			Theme: "default",
			User:  "visitor",
			Host:  "dadayev.dev",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			File:   "", // empty: discard while the TUI owns the terminal
		},
	}
}

// Validate checks field values that have a closed set.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return fmt.Errorf("invalid logging level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid logging format %q", c.Logging.Format)
	}
	// Theme names are validated by the TUI against its palette table.
	return nil
}
