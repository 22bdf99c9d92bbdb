// ABOUTME: Tests for config defaults, path expansion, and env overrides.
// ABOUTME: Exercises load/save round-trip against a temp XDG config home.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetBackendDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetBackend(); got != "file" {
		t.Errorf("GetBackend = %q, want file default", got)
	}

	cfg.Backend = "sqlite"
	if got := cfg.GetBackend(); got != "sqlite" {
		t.Errorf("GetBackend = %q, want sqlite", got)
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/data", filepath.Join(home, "data")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoadMissingConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.GetBackend() != "file" {
		t.Errorf("backend = %q, want file default", cfg.GetBackend())
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("LEDGER_BACKEND", "sqlite")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.GetBackend() != "sqlite" {
		t.Errorf("backend = %q, want env override sqlite", cfg.GetBackend())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := &Config{Backend: "sqlite", DataDir: "~/ledger-data"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Backend != "sqlite" || loaded.DataDir != "~/ledger-data" {
		t.Errorf("loaded = %+v", loaded)
	}
}

func TestOpenStoreUnknownBackend(t *testing.T) {
	cfg := &Config{Backend: "redis"}
	if _, err := cfg.OpenStore(); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestOpenStoreFile(t *testing.T) {
	cfg := &Config{Backend: "file", DataDir: t.TempDir()}
	store, err := cfg.OpenStore()
	if err != nil {
		t.Fatalf("OpenStore failed: %v", err)
	}
	defer store.Close()

	if err := store.Save([]byte("[]")); err != nil {
		t.Errorf("Save through opened store failed: %v", err)
	}
}
