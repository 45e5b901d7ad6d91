package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
	if cfg.UI.DefaultView != "week" {
		t.Errorf("default view = %q, want week", cfg.UI.DefaultView)
	}
}

func TestLoadFromMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Drag.MoveThreshold != 5 || cfg.Drag.DateThreshold != 30 {
		t.Errorf("drag defaults = %+v", cfg.Drag)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[storage]
db_path = "/tmp/events.db"

[calendar]
ics_files = ["~/cal/work.ics"]

[ui]
theme = "latte"
default_view = "day"

[drag]
date_threshold = 40
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Storage.DBPath != "/tmp/events.db" {
		t.Errorf("db_path = %q", cfg.Storage.DBPath)
	}
	if cfg.UI.Theme != "latte" || cfg.UI.DefaultView != "day" {
		t.Errorf("ui = %+v", cfg.UI)
	}
	// Unset fields keep their defaults.
	if cfg.Drag.MoveThreshold != 5 || cfg.Drag.DateThreshold != 40 {
		t.Errorf("drag = %+v", cfg.Drag)
	}
	// ~ expansion applies to ICS paths.
	home, _ := os.UserHomeDir()
	if cfg.Calendar.ICSFiles[0] != filepath.Join(home, "cal", "work.ics") {
		t.Errorf("ics path = %q", cfg.Calendar.ICSFiles[0])
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SCHEDULE_DB_PATH", "/tmp/env.db")
	t.Setenv("SCHEDULE_UI_VIEW", "day")
	t.Setenv("SCHEDULE_DRAG_MOVE_THRESHOLD", "8")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Storage.DBPath != "/tmp/env.db" {
		t.Errorf("db_path = %q", cfg.Storage.DBPath)
	}
	if cfg.UI.DefaultView != "day" {
		t.Errorf("view = %q", cfg.UI.DefaultView)
	}
	if cfg.Drag.MoveThreshold != 8 {
		t.Errorf("move threshold = %d", cfg.Drag.MoveThreshold)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty db path", func(c *Config) { c.Storage.DBPath = "" }},
		{"bad view", func(c *Config) { c.UI.DefaultView = "month" }},
		{"bad color", func(c *Config) { c.UI.DefaultColor = "blue" }},
		{"zero move threshold", func(c *Config) { c.Drag.MoveThreshold = 0 }},
		{"date threshold too small", func(c *Config) { c.Drag.DateThreshold = 3 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	cfg := Default()
	cfg.UI.Theme = "mocha"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if loaded.UI.Theme != "mocha" {
		t.Errorf("theme = %q, want mocha", loaded.UI.Theme)
	}
}
