package theme

import (
	"strings"
	"testing"
)

func TestLoadKnownThemes(t *testing.T) {
	for _, name := range Available() {
		t.Run(name, func(t2 *testing.T) {
			th, err := Load(name)
			if err != nil {
				t2.Fatalf("Load(%q): %v", name, err)
			}
			if th.Name != name {
				t2.Errorf("name = %q, want %q", th.Name, name)
			}
			if th.Bg == "" || th.Fg == "" || th.Accent == "" {
				t2.Errorf("theme %q has empty base colors", name)
			}
		})
	}
}

func TestLoadUnknownFallsBack(t *testing.T) {
	th, err := Load("solarized")
	if err != nil {
		t.Fatalf("Load fallback: %v", err)
	}
	if th.Name != "mocha" {
		t.Errorf("fallback theme = %q, want mocha", th.Name)
	}
}

func TestApplyDefaults(t *testing.T) {
	th := &Theme{Bg: "#000000", Fg: "#ffffff", Accent: "#ff0000"}
	th.applyDefaults()
	if th.ModalBorder != "#ff0000" {
		t.Errorf("modal border = %q, want accent", th.ModalBorder)
	}
	if th.Event == "" || th.Draft == "" {
		t.Error("event and draft colors need defaults")
	}
}

func TestLighten(t *testing.T) {
	got := Lighten("#000000", 1)
	if !strings.EqualFold(got, "#ffffff") {
		t.Errorf("full lighten = %q, want #ffffff", got)
	}
	if got := Lighten("#3b82f6", 0); !strings.EqualFold(got, "#3b82f6") {
		t.Errorf("zero lighten = %q, want unchanged", got)
	}
	// A malformed color passes through.
	if got := Lighten("blue", 0.5); got != "blue" {
		t.Errorf("bad input = %q, want passthrough", got)
	}
}

func TestTextOn(t *testing.T) {
	if got := TextOn("#ffffff", "#ffffff", "#000000"); got != "#000000" {
		t.Errorf("text on white = %q, want dark", got)
	}
	if got := TextOn("#1e1e2e", "#ffffff", "#000000"); got != "#ffffff" {
		t.Errorf("text on dark = %q, want light", got)
	}
}

func TestNewPaletteNilTheme(t *testing.T) {
	p := NewPalette(nil)
	if p.Bg == "" {
		t.Error("nil theme should fall back to mocha")
	}
}
