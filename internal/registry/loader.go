package registry

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/msalah0e/easel/internal/config"
)

// Builders the graph factory actually knows how to drive. Plugin
// styles naming anything else are rejected at load.
var knownBuilders = map[string]bool{
	"bar":  true,
	"line": true,
}

// LoadAll merges the embedded registry with external plugin files from
// the config directory's plugins/ subdirectory.
func LoadAll(fsys fs.FS, dir string) (*Registry, error) {
	reg, err := LoadFromFS(fsys, dir)
	if err != nil {
		return nil, err
	}
	styles := reg.All()

	pluginDir := filepath.Join(config.ConfigDir(), "plugins")
	entries, err := os.ReadDir(pluginDir)
	if err != nil {
		// No plugins directory is fine
		return New(styles), nil
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(pluginDir, entry.Name()))
		if err != nil {
			continue
		}
		var sf styleFile
		if err := toml.Unmarshal(data, &sf); err != nil {
			continue
		}
		for _, s := range sf.Styles {
			if err := validate(s); err != nil {
				continue
			}
			styles = append(styles, s)
		}
	}

	return New(dedup(styles)), nil
}

// LoadFromFS reads every TOML file under dir in fsys.
func LoadFromFS(fsys fs.FS, dir string) (*Registry, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read registry dir %q: %w", dir, err)
	}

	var styles []Style
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		data, err := fs.ReadFile(fsys, filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read registry file %q: %w", entry.Name(), err)
		}
		var sf styleFile
		if err := toml.Unmarshal(data, &sf); err != nil {
			return nil, fmt.Errorf("parse registry file %q: %w", entry.Name(), err)
		}
		for _, s := range sf.Styles {
			if err := validate(s); err != nil {
				return nil, fmt.Errorf("registry file %q: %w", entry.Name(), err)
			}
			styles = append(styles, s)
		}
	}

	return New(styles), nil
}

func validate(s Style) error {
	if s.Name == "" {
		return fmt.Errorf("style without a name")
	}
	switch s.Kind {
	case KindGraph:
		if !knownBuilders[s.Builder] {
			return fmt.Errorf("style %q: unknown builder %q", s.Name, s.Builder)
		}
	case KindFigure:
		if s.Palette != "color" && s.Palette != "bw" {
			return fmt.Errorf("style %q: unknown palette %q", s.Name, s.Palette)
		}
	default:
		return fmt.Errorf("style %q: unknown kind %q", s.Name, s.Kind)
	}
	return nil
}

// dedup removes duplicate styles by name, keeping the last occurrence
// so external plugin files override embedded styles.
func dedup(styles []Style) []Style {
	last := make(map[string]int, len(styles))
	for i, s := range styles {
		last[s.Name] = i
	}
	result := make([]Style, 0, len(last))
	for i, s := range styles {
		if last[s.Name] == i {
			result = append(result, s)
		}
	}
	return result
}
