// Package config loads the tool's YAML configuration.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	// DBPath is the SQLite database location.
	DBPath string `yaml:"db"`

	// HomeCountry is the default home country code used by presentation
	// until one is stored.
	HomeCountry string `yaml:"home_country"`
}

// DefaultPath returns the per-user config location.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".trip-map", "config.yaml")
}

// Default returns an in-memory default configuration.
func Default() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		DBPath:      filepath.Join(home, ".trip-map", "visits.db"),
		HomeCountry: "GB",
	}
}

// Normalize fills missing values so partially-filled configs behave.
func (c *Config) Normalize() {
	def := Default()
	if c.DBPath == "" {
		c.DBPath = def.DBPath
	}
	if c.HomeCountry == "" {
		c.HomeCountry = def.HomeCountry
	}
}

// Load reads the config at path, creating it with defaults on first run.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := Default()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()
	return &cfg, nil
}

// Save writes the configuration to path with user-only permissions.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
