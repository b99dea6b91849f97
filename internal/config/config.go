// ABOUTME: fitlog configuration management with environment overrides.
// ABOUTME: JSON config at the XDG config path; FITLOG_* variables win over the file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/philturner/fitlog/internal/storage"
)

// Config stores fitlog configuration.
type Config struct {
	// DefaultUser is the user logs are recorded under when --user is not
	// given. Must name a user present in the plan catalog.
	DefaultUser string `json:"default_user,omitempty" env:"FITLOG_USER"`

	// DataDir is the root directory for data storage; fitlog.db lives
	// here. Supports ~ expansion. Defaults to ~/.local/share/fitlog.
	DataDir string `json:"data_dir,omitempty" env:"FITLOG_DATA_DIR"`

	// SyncOnWrite mirrors every successful write into Charm KV when a
	// charm account is linked.
	SyncOnWrite bool `json:"sync_on_write,omitempty" env:"FITLOG_SYNC_ON_WRITE"`
}

// GetDefaultUser returns the configured user, defaulting to "phil".
func (c *Config) GetDefaultUser() string {
	if c.DefaultUser == "" {
		return "phil"
	}
	return c.DefaultUser
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage opens the SQLite store under the configured data directory.
func (c *Config) OpenStorage() (storage.Repository, error) {
	dbPath := filepath.Join(c.GetDataDir(), "fitlog.db")
	return storage.Open(dbPath)
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "fitlog", "config.json")
}

// Load reads config from disk, then applies FITLOG_* environment
// overrides on top.
func Load() (*Config, error) {
	path := GetConfigPath()
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
