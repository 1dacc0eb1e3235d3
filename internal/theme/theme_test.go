package theme

import (
	"image/color"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `
// night scheme
Name: night
Background: #101010
Outline: #F0F0F0
Highlight: #30303080
UnknownKey: #123456
`
	th, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if th.Name != "night" {
		t.Errorf("Name = %q", th.Name)
	}
	if th.Background != (color.RGBA{0x10, 0x10, 0x10, 255}) {
		t.Errorf("Background = %+v", th.Background)
	}
	if th.Highlight != (color.RGBA{0x30, 0x30, 0x30, 0x80}) {
		t.Errorf("Highlight = %+v (8-digit hex)", th.Highlight)
	}
	// Unspecified keys keep their defaults.
	if th.Readout != Default().Readout {
		t.Errorf("Readout = %+v, want default", th.Readout)
	}
}

func TestParseKeysCaseInsensitive(t *testing.T) {
	input := `
name: shouty
BACKGROUND: #112233
multiselect: #445566
`
	th, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if th.Name != "shouty" {
		t.Errorf("Name = %q", th.Name)
	}
	if th.Background != (color.RGBA{0x11, 0x22, 0x33, 255}) {
		t.Errorf("Background = %+v", th.Background)
	}
	if th.MultiSelect != (color.RGBA{0x44, 0x55, 0x66, 255}) {
		t.Errorf("MultiSelect = %+v", th.MultiSelect)
	}
}

func TestParseInvalidColor(t *testing.T) {
	if _, err := Parse(strings.NewReader("Background: red")); err == nil {
		t.Error("expected error for non-hex color")
	}
	if _, err := Parse(strings.NewReader("Background: #12")); err == nil {
		t.Error("expected error for short hex")
	}
}

func TestEmbeddedThemesLoad(t *testing.T) {
	l := NewLoader()
	for _, name := range []string{"default", "dark", "paper"} {
		th, err := l.Load(name)
		if err != nil {
			t.Fatalf("Load(%q) failed: %v", name, err)
		}
		if th.Name != name {
			t.Errorf("Load(%q).Name = %q", name, th.Name)
		}
	}
}

func TestLoadMissingTheme(t *testing.T) {
	l := &Loader{ConfigDir: t.TempDir(), SystemDir: t.TempDir()}
	if _, err := l.Load("no_such_theme"); err == nil {
		t.Error("expected error for unknown theme")
	}
}

func TestLoadEmptyNameFallsBackToDefault(t *testing.T) {
	l := NewLoader()
	th, err := l.Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if th.Name != "Default" {
		t.Errorf("Name = %q", th.Name)
	}
}
