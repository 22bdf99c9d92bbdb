// ABOUTME: Ledger configuration management with backend selection.
// ABOUTME: JSON config file plus LEDGER_* environment overrides.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"

	"github.com/mtendies/ledger/internal/charm"
	"github.com/mtendies/ledger/internal/storage"
)

// Config stores ledger tool configuration.
type Config struct {
	// Backend selects the storage backend: "file" (default), "sqlite",
	// or "charm".
	Backend string `json:"backend,omitempty" env:"LEDGER_BACKEND"`

	// DataDir is the root directory for data storage. Supports ~
	// expansion for home directory. Defaults to ~/.local/share/ledger.
	DataDir string `json:"data_dir,omitempty" env:"LEDGER_DATA_DIR"`
}

// GetBackend returns the configured backend, defaulting to "file".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "file"
	}
	return c.Backend
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

// OpenStore creates a DocumentStore implementation based on the
// configured backend.
func (c *Config) OpenStore() (storage.DocumentStore, error) {
	switch backend := c.GetBackend(); backend {
	case "file":
		return storage.NewFileStore(c.GetDataDir())
	case "sqlite":
		return storage.NewSQLiteStore(c.GetDataDir())
	case "charm":
		return charm.InitStore()
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "ledger", "config.json")
}

// Load reads config from disk, then applies environment overrides.
func Load() (*Config, error) {
	path := GetConfigPath()
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else if err := json.Unmarshal(data, cfg); err != nil {
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
