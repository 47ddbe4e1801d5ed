package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/five82/msgcue/internal/config"
	"github.com/five82/msgcue/internal/message"
)

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	p := Load("")
	if p.MinLevel != "" || p.LevelFormat != "" || p.ShowTime != nil || p.Border != nil {
		t.Fatalf("Load = %+v, want empty prefs", p)
	}
}

func TestLoad_ReadsDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	prefsDir := filepath.Join(home, ".config", "msgcue")
	if err := os.MkdirAll(prefsDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	body := "min_level = \"warning\"\nshow_time = false\n"
	if err := os.WriteFile(filepath.Join(prefsDir, "prefs.toml"), []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := Load("")
	if p.MinLevel != "warning" {
		t.Fatalf("MinLevel = %q, want warning", p.MinLevel)
	}
	if p.ShowTime == nil || *p.ShowTime {
		t.Fatalf("ShowTime = %v, want false", p.ShowTime)
	}
}

func TestSave_RoundTripsWindow(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "subdir", "prefs.toml")

	w := config.WindowConfig{
		Border:      "#",
		LevelFormat: message.FormatShort,
		ShowTime:    false,
		MinLevel:    message.Verbose,
	}
	if err := Save(prefsFile, FromWindow(w)); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	base := config.Default().Window
	got := Load(prefsFile).Apply(base)
	if got.Border != "#" || got.LevelFormat != message.FormatShort || got.ShowTime || got.MinLevel != message.Verbose {
		t.Fatalf("Apply(Load) = %+v, want saved toggles", got)
	}
}

func TestApply_SkipsInvalidValues(t *testing.T) {
	base := config.Default().Window
	got := Prefs{MinLevel: "loud", LevelFormat: "tiny"}.Apply(base)
	if got != base {
		t.Fatalf("Apply = %+v, want base %+v unchanged", got, base)
	}
}

func TestLoad_InvalidTOMLIsEmpty(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("not valid toml {{{\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if p := Load(prefsFile); p.MinLevel != "" || p.ShowTime != nil {
		t.Fatalf("Load = %+v, want empty prefs", p)
	}
}
