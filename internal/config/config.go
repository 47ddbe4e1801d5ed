package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/msgcue/internal/cue"
	"github.com/five82/msgcue/internal/message"
)

// Config holds msgcue settings.
type Config struct {
	Capacity  int
	Follow    string // log file to follow; empty reads piped stdin
	Backlog   int    // lines of Follow loaded on startup
	PollEvery time.Duration
	PauseOn   []message.Level
	Window    WindowConfig
}

// WindowConfig describes the pane. Zero Width or Height means "fill the terminal".
type WindowConfig struct {
	Width       int
	Height      int
	Border      string
	LevelFormat message.LevelFormat
	ShowTime    bool
	MinLevel    message.Level
}

const (
	defaultConfigPath = "~/.config/msgcue/config.toml"
	defaultBacklog    = 200
	defaultPollEvery  = time.Second
)

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		Capacity:  cue.DefaultCapacity,
		Backlog:   defaultBacklog,
		PollEvery: defaultPollEvery,
		Window: WindowConfig{
			LevelFormat: message.FormatLong,
			ShowTime:    true,
			MinLevel:    message.Debug,
		},
	}
}

type rawConfig struct {
	Capacity    int      `toml:"capacity"`
	Follow      string   `toml:"follow"`
	Backlog     *int     `toml:"backlog"`
	PollSeconds float64  `toml:"poll_seconds"`
	PauseOn     []string `toml:"pause_on"`
	Window      struct {
		Width       int     `toml:"width"`
		Height      int     `toml:"height"`
		Border      string  `toml:"border"`
		LevelFormat *string `toml:"level_format"`
		ShowTime    *bool   `toml:"show_time"`
		MinLevel    string  `toml:"min_level"`
	} `toml:"window"`
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.apply(raw); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) apply(raw rawConfig) error {
	if raw.Capacity > 0 {
		c.Capacity = raw.Capacity
	}
	if follow := strings.TrimSpace(raw.Follow); follow != "" {
		c.Follow = mustExpand(follow)
	}
	if raw.Backlog != nil && *raw.Backlog >= 0 {
		c.Backlog = *raw.Backlog
	}
	if raw.PollSeconds > 0 {
		c.PollEvery = time.Duration(raw.PollSeconds * float64(time.Second))
	}
	for _, name := range raw.PauseOn {
		level, err := message.ParseLevel(name)
		if err != nil {
			return fmt.Errorf("pause_on: %w", err)
		}
		c.PauseOn = append(c.PauseOn, level)
	}

	w := raw.Window
	c.Window.Width = max(w.Width, 0)
	c.Window.Height = max(w.Height, 0)
	c.Window.Border = w.Border
	if w.LevelFormat != nil {
		format, err := message.ParseLevelFormat(*w.LevelFormat)
		if err != nil {
			return fmt.Errorf("window.level_format: %w", err)
		}
		c.Window.LevelFormat = format
	}
	if w.ShowTime != nil {
		c.Window.ShowTime = *w.ShowTime
	}
	if strings.TrimSpace(w.MinLevel) != "" {
		level, err := message.ParseLevel(w.MinLevel)
		if err != nil {
			return fmt.Errorf("window.min_level: %w", err)
		}
		c.Window.MinLevel = level
	}
	return nil
}

// Overrides are command-line settings layered over the config file. Zero
// values keep the file's setting.
type Overrides struct {
	Follow      string
	PollSeconds int
	Capacity    int
}

// Override applies o to c.
func (c *Config) Override(o Overrides) {
	if follow := strings.TrimSpace(o.Follow); follow != "" {
		c.Follow = mustExpand(follow)
	}
	if o.PollSeconds > 0 {
		c.PollEvery = time.Duration(o.PollSeconds) * time.Second
	}
	if o.Capacity > 0 {
		c.Capacity = o.Capacity
	}
}

// ShouldPause reports whether messages at level pause the pane.
func (c Config) ShouldPause(level message.Level) bool {
	for _, l := range c.PauseOn {
		if l == level {
			return true
		}
	}
	return false
}

// Resolve builds the render window, filling zero dimensions from the
// available terminal size.
func (w WindowConfig) Resolve(termWidth, termHeight int) cue.Window {
	win := cue.Window{
		Width:       w.Width,
		Height:      w.Height,
		Border:      w.Border,
		LevelFormat: w.LevelFormat,
		ShowTime:    w.ShowTime,
		MinLevel:    w.MinLevel,
	}
	if win.Width == 0 {
		win.Width = termWidth
	}
	if win.Height == 0 {
		win.Height = termHeight
	}
	return win
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
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
