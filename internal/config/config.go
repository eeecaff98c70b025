// Package config loads optional user defaults from
// $XDG_CONFIG_HOME/xwinctl/config.yaml. Flags always win over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds defaults loaded from the user config file.
type Config struct {
	Format  string `yaml:"format,omitempty"`  // yaml or json
	Display string `yaml:"display,omitempty"` // X display, e.g. ":1"
	Verbose bool   `yaml:"verbose,omitempty"` // debug logging
}

// Path returns the config file location, honoring XDG_CONFIG_HOME.
func Path() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "xwinctl", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return filepath.Join(home, ".config", "xwinctl", "config.yaml"), nil
}

// Load reads the config file at path. A missing file is not an error and
// yields the zero config.
func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Format != "" && cfg.Format != "yaml" && cfg.Format != "json" {
		return cfg, fmt.Errorf("config %s: unsupported format %q (use yaml or json)", path, cfg.Format)
	}
	return cfg, nil
}

// LoadDefault loads the config from the standard location.
func LoadDefault() (Config, error) {
	path, err := Path()
	if err != nil {
		return Config{}, err
	}
	return Load(path)
}
