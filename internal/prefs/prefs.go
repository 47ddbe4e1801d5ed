// Package prefs persists the pane toggles a user changes at runtime.
// Preferences are stored in ~/.config/msgcue/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/msgcue/internal/config"
	"github.com/five82/msgcue/internal/message"
)

// Prefs holds runtime toggles. Empty or nil fields leave the config value alone.
type Prefs struct {
	MinLevel    string  `toml:"min_level,omitempty"`
	LevelFormat string  `toml:"level_format,omitempty"`
	ShowTime    *bool   `toml:"show_time,omitempty"`
	Border      *string `toml:"border,omitempty"`
}

const defaultPrefsPath = "~/.config/msgcue/prefs.toml"

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from the given path. Missing or unreadable files
// yield empty preferences.
func Load(path string) Prefs {
	resolved, err := resolvePath(path)
	if err != nil {
		return Prefs{}
	}

	file, err := os.Open(resolved)
	if err != nil {
		return Prefs{}
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Prefs{}
	}

	var p Prefs
	if err := toml.Unmarshal(bytes, &p); err != nil {
		return Prefs{}
	}
	return p
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

// FromWindow captures the toggles of w.
func FromWindow(w config.WindowConfig) Prefs {
	showTime := w.ShowTime
	border := w.Border
	return Prefs{
		MinLevel:    w.MinLevel.String(),
		LevelFormat: w.LevelFormat.String(),
		ShowTime:    &showTime,
		Border:      &border,
	}
}

// Apply overlays p onto w. Values that no longer parse are skipped.
func (p Prefs) Apply(w config.WindowConfig) config.WindowConfig {
	if strings.TrimSpace(p.MinLevel) != "" {
		if level, err := message.ParseLevel(p.MinLevel); err == nil {
			w.MinLevel = level
		}
	}
	if strings.TrimSpace(p.LevelFormat) != "" {
		if format, err := message.ParseLevelFormat(p.LevelFormat); err == nil {
			w.LevelFormat = format
		}
	}
	if p.ShowTime != nil {
		w.ShowTime = *p.ShowTime
	}
	if p.Border != nil {
		w.Border = *p.Border
	}
	return w
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
