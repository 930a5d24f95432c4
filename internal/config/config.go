// Package config loads the docdiff command's settings from a YAML file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Output formats understood by the compare command.
const (
	FormatText = "text"
	FormatHTML = "html"
	FormatJSON = "json"
)

// Config holds settings for the docdiff command.
type Config struct {
	// Window fixes the lookahead window. 0 selects it from the input size.
	Window int `yaml:"window"`

	Format    string `yaml:"format"`
	Reference bool   `yaml:"reference"`

	// PageSeparator splits an input file into pages.
	PageSeparator string `yaml:"page_separator"`

	LogLevel string `yaml:"log_level"`
	LogJSON  bool   `yaml:"log_json"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Window:        0,
		Format:        FormatText,
		PageSeparator: "\f",
		LogLevel:      "warn",
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides reads DOCDIFF_WINDOW and DOCDIFF_LOG_LEVEL.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("DOCDIFF_WINDOW"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid DOCDIFF_WINDOW %q: %w", v, err)
		}
		c.Window = n
	}
	if v := os.Getenv("DOCDIFF_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	return nil
}

// Validate checks values that cannot be caught later with a clear message.
func (c *Config) Validate() error {
	if c.Window < 0 {
		return fmt.Errorf("window must not be negative, got %d", c.Window)
	}
	switch c.Format {
	case FormatText, FormatHTML, FormatJSON:
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	if c.PageSeparator == "" {
		return fmt.Errorf("page_separator must not be empty")
	}
	return nil
}
