package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if !cfg.UI.Emoji {
		t.Error("default emoji should be true")
	}
	if !cfg.UI.Color {
		t.Error("default color should be true")
	}
	if cfg.Cache.Capacity != 0 {
		t.Errorf("default cache capacity should be unbounded (0), got %d", cfg.Cache.Capacity)
	}
	if cfg.History.Limit != 0 {
		t.Errorf("default history limit should be unlimited (0), got %d", cfg.History.Limit)
	}
}

func TestConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/test-xdg")
	if dir := ConfigDir(); dir != "/tmp/test-xdg/easel" {
		t.Errorf("expected /tmp/test-xdg/easel, got %q", dir)
	}

	t.Setenv("XDG_CONFIG_HOME", "")
	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".config", "easel")
	if dir := ConfigDir(); dir != expected {
		t.Errorf("expected %q, got %q", expected, dir)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Load()
	if cfg.Cache.Capacity != Default().Cache.Capacity {
		t.Error("missing config file should yield defaults")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.Cache.Capacity = 16
	cfg.History.Limit = 50
	cfg.UI.Color = false

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got := Load()
	if got.Cache.Capacity != 16 {
		t.Errorf("cache capacity = %d, want 16", got.Cache.Capacity)
	}
	if got.History.Limit != 50 {
		t.Errorf("history limit = %d, want 50", got.History.Limit)
	}
	if got.UI.Color {
		t.Error("color should round-trip as false")
	}
}
