package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/msgcue/internal/cue"
	"github.com/five82/msgcue/internal/message"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Capacity != cue.DefaultCapacity {
		t.Fatalf("Capacity = %d, want %d", cfg.Capacity, cue.DefaultCapacity)
	}
	if cfg.Backlog != defaultBacklog {
		t.Fatalf("Backlog = %d, want %d", cfg.Backlog, defaultBacklog)
	}
	if cfg.PollEvery != defaultPollEvery {
		t.Fatalf("PollEvery = %v, want %v", cfg.PollEvery, defaultPollEvery)
	}
	if cfg.Window.LevelFormat != message.FormatLong || !cfg.Window.ShowTime || cfg.Window.MinLevel != message.Debug {
		t.Fatalf("Window = %+v, want long tags, time shown, Debug", cfg.Window)
	}
}

func TestLoad_DefaultPathUnderHome(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if _, err := Load(""); err != nil {
		t.Fatalf("Load(\"\") returned error: %v", err)
	}
}

func TestLoad_ParsesConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
capacity = 50
follow = "  ~/logs/app.log  "
backlog = 0
poll_seconds = 0.5
pause_on = ["error", "Warning"]

[window]
width = 60
height = 12
border = "="
level_format = "short"
show_time = false
min_level = "STATUS"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Capacity != 50 {
		t.Fatalf("Capacity = %d, want 50", cfg.Capacity)
	}
	if cfg.Follow != filepath.Join(home, "logs/app.log") {
		t.Fatalf("Follow = %q, want it under HOME %q", cfg.Follow, home)
	}
	if cfg.Backlog != 0 {
		t.Fatalf("Backlog = %d, want 0", cfg.Backlog)
	}
	if cfg.PollEvery != 500*time.Millisecond {
		t.Fatalf("PollEvery = %v, want 500ms", cfg.PollEvery)
	}
	if !cfg.ShouldPause(message.Error) || !cfg.ShouldPause(message.Warning) || cfg.ShouldPause(message.Status) {
		t.Fatalf("PauseOn = %v, want [Error Warning]", cfg.PauseOn)
	}

	want := WindowConfig{
		Width:       60,
		Height:      12,
		Border:      "=",
		LevelFormat: message.FormatShort,
		ShowTime:    false,
		MinLevel:    message.Status,
	}
	if cfg.Window != want {
		t.Fatalf("Window = %+v, want %+v", cfg.Window, want)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := writeConfig(t, `
capacity = 0
follow = "   "
[window]
min_level = ""
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Capacity != cue.DefaultCapacity || cfg.Follow != "" || cfg.Window.MinLevel != message.Debug {
		t.Fatalf("Load = %+v, want defaults", cfg)
	}
}

func TestLoad_LevelFormatNone(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[window]\nlevel_format = \"\"\n"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Window.LevelFormat != message.FormatNone {
		t.Fatalf("LevelFormat = %v, want none", cfg.Window.LevelFormat)
	}
}

func TestLoad_InvalidLevelFails(t *testing.T) {
	_, err := Load(writeConfig(t, "[window]\nmin_level = \"loud\"\n"))
	var invalid *message.InvalidLevelError
	if !errors.As(err, &invalid) {
		t.Fatalf("Load error = %v, want *InvalidLevelError", err)
	}
	if !strings.Contains(err.Error(), "window.min_level") {
		t.Fatalf("Load error = %q, want it to name window.min_level", err.Error())
	}

	if _, err := Load(writeConfig(t, "pause_on = [\"info\"]\n")); !errors.As(err, &invalid) {
		t.Fatalf("Load pause_on error = %v, want *InvalidLevelError", err)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	_, err := Load(writeConfig(t, `capacity = [`))
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestWindowConfig_Resolve(t *testing.T) {
	w := WindowConfig{Height: 10, Border: "-", MinLevel: message.Warning}
	win := w.Resolve(120, 40)
	if win.Width != 120 || win.Height != 10 {
		t.Fatalf("Resolve = %dx%d, want 120x10", win.Width, win.Height)
	}
	if win.Border != "-" || win.MinLevel != message.Warning {
		t.Fatalf("Resolve = %+v, want border and level carried over", win)
	}
}

func TestOverride(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := Default()
	cfg.Override(Overrides{Follow: "~/app.log", PollSeconds: 3, Capacity: 42})
	if want := filepath.Join(home, "app.log"); cfg.Follow != want {
		t.Fatalf("Follow = %q, want %q", cfg.Follow, want)
	}
	if cfg.PollEvery != 3*time.Second {
		t.Fatalf("PollEvery = %v, want 3s", cfg.PollEvery)
	}
	if cfg.Capacity != 42 {
		t.Fatalf("Capacity = %d, want 42", cfg.Capacity)
	}

	cfg.Override(Overrides{})
	if cfg.Capacity != 42 || cfg.PollEvery != 3*time.Second {
		t.Fatalf("zero Overrides changed config: %+v", cfg)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	if want := filepath.Join(home, "a/b"); got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
