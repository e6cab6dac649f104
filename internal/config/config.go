// Package config manages the ps1 configuration file. Configuration is
// optional: a missing file yields the defaults, and a broken one must
// never keep the prompt from rendering.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const (
	ConfigDir  = "ps1"
	ConfigFile = "config.toml"
)

// Defaults.
const (
	DefaultTheme      = "dark"
	DefaultGitTimeout = 3.0 // seconds
	DefaultMaxCwdLen  = 30
	DefaultMaxHeadLen = 15
)

// Config holds the user-tunable settings.
type Config struct {
	Theme      string  `toml:"theme"`
	GitTimeout float64 `toml:"git_timeout"` // seconds
	MaxCwdLen  int     `toml:"max_cwd_len"`
	MaxHeadLen int     `toml:"max_head_len"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Theme:      DefaultTheme,
		GitTimeout: DefaultGitTimeout,
		MaxCwdLen:  DefaultMaxCwdLen,
		MaxHeadLen: DefaultMaxHeadLen,
	}
}

// Path returns the configuration file location, typically
// ~/.config/ps1/config.toml.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot locate config directory: %w", err)
	}
	return filepath.Join(dir, ConfigDir, ConfigFile), nil
}

// Load reads the configuration file, filling unset keys with defaults.
// A missing file is not an error.
func Load() (Config, error) {
	cfg := Default()

	path, err := Path()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// GitTimeoutDuration converts the configured timeout to a duration.
func (c Config) GitTimeoutDuration() time.Duration {
	return time.Duration(c.GitTimeout * float64(time.Second))
}
