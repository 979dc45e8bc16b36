// Package config loads application configuration from a TOML file with
// environment variable overrides, and watches the file for live reload.
package config

import (
	"os"
	"path/filepath"
)

// Config holds application settings.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// LogFile is where logs are written. The terminal is in raw mode, so
	// logging to stderr would corrupt the display.
	LogFile string `toml:"log_file"`

	// KeymapPath is the user keymap YAML file.
	KeymapPath string `toml:"keymap"`

	// FoldPlaceholder is drawn on the header line of a closed fold.
	FoldPlaceholder string `toml:"fold_placeholder"`

	// TabWidth is the display width of a tab character.
	TabWidth int `toml:"tab_width"`

	// ScrollMargin is the number of context lines kept visible above and
	// below the cursor when scrolling.
	ScrollMargin int `toml:"scroll_margin"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:        "info",
		FoldPlaceholder: "···",
		TabWidth:        4,
		ScrollMargin:    2,
	}
}

// DefaultPath returns the conventional config file location, or "" when
// no config directory can be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "blocknav", "config.toml")
}

// normalize fills invalid values from the defaults.
func (c *Config) normalize() {
	def := Default()
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		c.LogLevel = def.LogLevel
	}
	if c.TabWidth < 1 || c.TabWidth > 16 {
		c.TabWidth = def.TabWidth
	}
	if c.ScrollMargin < 0 {
		c.ScrollMargin = def.ScrollMargin
	}
	if c.FoldPlaceholder == "" {
		c.FoldPlaceholder = def.FoldPlaceholder
	}
}
