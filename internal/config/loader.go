package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Environment variable names recognized by applyEnv.
const (
	envLogLevel = "BLOCKNAV_LOG_LEVEL"
	envLogFile  = "BLOCKNAV_LOG_FILE"
	envKeymap   = "BLOCKNAV_KEYMAP"
	envTabWidth = "BLOCKNAV_TAB_WIDTH"
)

// Load reads configuration from path, applies environment overrides, and
// normalizes the result. An empty path uses the conventional location; a
// missing file yields the defaults. Only a malformed file is an error.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return Config{}, err
			}
		}
	}

	applyEnv(&cfg)
	cfg.normalize()
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// applyEnv overrides file settings from the environment.
// Empty values are treated as set; unset variables leave the field alone.
func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv(envLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv(envLogFile); ok {
		cfg.LogFile = v
	}
	if v, ok := os.LookupEnv(envKeymap); ok {
		cfg.KeymapPath = v
	}
	if v, ok := os.LookupEnv(envTabWidth); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TabWidth = n
		}
	}
}
