package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds easel configuration.
type Config struct {
	UI      UIConfig      `toml:"ui"`
	Cache   CacheConfig   `toml:"cache"`
	History HistoryConfig `toml:"history"`
}

// UIConfig controls display options.
type UIConfig struct {
	Emoji bool `toml:"emoji"`
	Color bool `toml:"color"`
}

// CacheConfig controls the shared figure cache. Capacity 0 keeps the
// cache unbounded, growing one entry per distinct figure style for the
// process lifetime. A positive capacity makes overflow an explicit
// error rather than an eviction.
type CacheConfig struct {
	Capacity int `toml:"capacity"`
}

// HistoryConfig controls the undo history. Limit 0 keeps every
// executed command for the session.
type HistoryConfig struct {
	Limit int `toml:"limit"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		UI:      UIConfig{Emoji: true, Color: true},
		Cache:   CacheConfig{Capacity: 0},
		History: HistoryConfig{Limit: 0},
	}
}

// ConfigDir returns the easel config directory path.
func ConfigDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "easel")
}

func configPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() *Config {
	cfg := Default()

	data, err := os.ReadFile(configPath())
	if err != nil {
		return cfg
	}

	_ = toml.Unmarshal(data, cfg)
	return cfg
}

// Save writes the config to disk.
func Save(cfg *Config) error {
	path := configPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
