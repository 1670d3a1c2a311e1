package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want fs.ErrNotExist", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("config = %+v, want defaults", cfg)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "window:\n  width: 640\nlayout:\n  seed: 42\nengine:\n  headless: true\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.Width != 640 || cfg.Window.Height != 720 {
		t.Errorf("window = %dx%d, want 640x720", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Layout.Seed != 42 || !cfg.Engine.Headless || cfg.Engine.TickRate != 60 {
		t.Errorf("config = %+v", cfg)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("window: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err == nil {
		t.Fatal("malformed config accepted")
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("config = %+v, want defaults", cfg)
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	want := DefaultConfig()
	want.Layout.Seed = 7
	want.Assets.Root = "/srv/haunted"

	if err := SaveConfig(want, path); err != nil {
		t.Fatal(err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if *got != *want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}
