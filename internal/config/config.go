// Package config loads and validates the dhash CLI configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	defaultThreshold = 10
	defaultOutput    = "decimal"
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
)

// Config holds the CLI settings.
type Config struct {
	// Threshold is the largest Hamming distance at which two images are
	// still reported as likely the same.
	Threshold int `toml:"threshold"`

	// Output selects how signatures are rendered, "decimal" or "hex".
	Output string `toml:"output"`

	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Threshold: defaultThreshold,
		Output:    defaultOutput,
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
	}
}

// DefaultPath returns the default configuration file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "dhash", "config.toml"), nil
}

// Load reads the TOML configuration at path. An empty path means the
// default location, where a missing file silently falls back to defaults.
// An explicitly given path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		defaultPath, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = defaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Threshold < 0 || c.Threshold > 64 {
		return fmt.Errorf("threshold: must be between 0 and 64, got %d", c.Threshold)
	}
	switch c.Output {
	case "decimal", "hex":
	default:
		return fmt.Errorf("output: unsupported value %q", c.Output)
	}
	return nil
}
