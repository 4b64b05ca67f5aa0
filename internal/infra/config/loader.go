// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFileName is the name of the configuration file.
const ConfigFileName = "config.toml"

// Config is the application configuration.
type Config struct {
	Storage StorageConfig `toml:"storage"`
	Limits  LimitsConfig  `toml:"limits"`
	Log     LogConfig     `toml:"log"`
}

// StorageConfig selects and locates the persistence backend.
type StorageConfig struct {
	Backend string `toml:"backend"` // "json" (default) or "sqlite"
	Path    string `toml:"path"`    // custom data file path (empty = default)
}

// LimitsConfig tunes the add-todo rate limiter.
type LimitsConfig struct {
	MaxActions    int `toml:"max_actions"`
	WindowSeconds int `toml:"window_seconds"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{Backend: "json"},
		Limits:  LimitsConfig{MaxActions: 20, WindowSeconds: 60},
		Log:     LogConfig{Level: "info"},
	}
}

// Loader loads configuration from a TOML file.
type Loader struct {
	configDir string
}

// NewLoader creates a Loader. An empty configDir resolves to the
// default per-user config directory.
func NewLoader(configDir string) *Loader {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}
	return &Loader{configDir: configDir}
}

// DefaultConfigDir returns the per-user configuration directory,
// honoring XDG_CONFIG_HOME.
func DefaultConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "tododeck")
}

// DefaultDataDir returns the per-user data directory, honoring
// XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "tododeck")
}

// Load returns the merged configuration: defaults overlaid with
// whatever the config file provides. A missing file is not an error.
func (l *Loader) Load() (*Config, error) {
	cfg := Default()
	if l.configDir == "" {
		return cfg, nil
	}

	path := filepath.Join(l.configDir, ConfigFileName)
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var fileCfg Config
	if err := toml.Unmarshal(content, &fileCfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	merge(cfg, &fileCfg)
	return cfg, nil
}

// merge overlays non-zero file values onto the defaults.
func merge(base, overlay *Config) {
	if overlay.Storage.Backend != "" {
		base.Storage.Backend = overlay.Storage.Backend
	}
	if overlay.Storage.Path != "" {
		base.Storage.Path = overlay.Storage.Path
	}
	if overlay.Limits.MaxActions > 0 {
		base.Limits.MaxActions = overlay.Limits.MaxActions
	}
	if overlay.Limits.WindowSeconds > 0 {
		base.Limits.WindowSeconds = overlay.Limits.WindowSeconds
	}
	if overlay.Log.Level != "" {
		base.Log.Level = overlay.Log.Level
	}
}
