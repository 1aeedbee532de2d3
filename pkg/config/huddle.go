package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

const (
	DefaultConfigPath      = "config/huddle.json"
	defaultWindowWidth     = 900
	defaultWindowHeight    = 640
	defaultLogLevel        = "info"
	defaultReloadHoldoffMs = 500
)

// Config controls the HUDDLE desktop app. All fields are optional in the
// file; zero values fall back to defaults.
type Config struct {
	WindowWidth  int    `json:"window_width"`
	WindowHeight int    `json:"window_height"`
	LogLevel     string `json:"log_level"`

	// StartupCSV overrides the bundled sample dataset at launch.
	StartupCSV string `json:"startup_csv,omitempty"`

	// WatchImported re-imports the active CSV when it changes on disk.
	WatchImported bool `json:"watch_imported"`
	// ReloadHoldoffMs caps auto-reloads to one per this many milliseconds.
	// An explicit 0 reloads on every change; omitted means the default.
	ReloadHoldoffMs *int `json:"reload_holdoff_ms,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		WindowWidth:   defaultWindowWidth,
		WindowHeight:  defaultWindowHeight,
		LogLevel:      defaultLogLevel,
		WatchImported: true,
	}
}

func ResolveConfigPath() string {
	if fromEnv := os.Getenv("HUDDLE_CONFIG"); fromEnv != "" {
		return fromEnv
	}
	return DefaultConfigPath
}

// LoadConfig reads the config file at path. A missing file is not an error;
// defaults are returned.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return DefaultConfig(), err
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.WindowWidth == 0 {
		c.WindowWidth = defaultWindowWidth
	}
	if c.WindowHeight == 0 {
		c.WindowHeight = defaultWindowHeight
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
}

// ReloadHoldoff resolves the configured holdoff, defaulting when the field
// was omitted. Zero means reload on every change.
func (c Config) ReloadHoldoff() time.Duration {
	if c.ReloadHoldoffMs == nil {
		return defaultReloadHoldoffMs * time.Millisecond
	}
	return time.Duration(*c.ReloadHoldoffMs) * time.Millisecond
}

func (c Config) Validate() error {
	if c.WindowWidth < 320 || c.WindowHeight < 240 {
		return fmt.Errorf("window size too small: %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if c.ReloadHoldoffMs != nil && *c.ReloadHoldoffMs < 0 {
		return fmt.Errorf("reload_holdoff_ms must be >= 0")
	}
	return nil
}
