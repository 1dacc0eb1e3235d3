package main

import (
	"image/color"
	"testing"

	"github.com/example/sketchpad/internal/config"
	"github.com/example/sketchpad/internal/surface"
	"github.com/example/sketchpad/internal/theme"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
	}{
		{"black", color.RGBA{0, 0, 0, 255}},
		{"Red", color.RGBA{255, 0, 0, 255}},
		{"#00ff00", color.RGBA{0, 255, 0, 255}},
		{"#11223344", color.RGBA{0x11, 0x22, 0x33, 0x44}},
		{" steelblue ", color.RGBA{70, 130, 180, 255}},
	}
	for _, tc := range cases {
		got, err := parseColor(tc.in)
		if err != nil {
			t.Fatalf("parseColor(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("parseColor(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	for _, bad := range []string{"", "nosuchcolor", "#12", "#zzzzzz"} {
		if _, err := parseColor(bad); err == nil {
			t.Errorf("parseColor(%q): expected error", bad)
		}
	}
}

func TestParseShapeKind(t *testing.T) {
	cases := []struct {
		in   string
		want surface.Kind
	}{
		{"oval", surface.Oval},
		{"Rect", surface.Rectangle},
		{"rectangle", surface.Rectangle},
		{"arc", surface.Arc},
	}
	for _, tc := range cases {
		got, err := parseShapeKind(tc.in)
		if err != nil {
			t.Fatalf("parseShapeKind(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("parseShapeKind(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if _, err := parseShapeKind("blob"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func TestCanvasConfigLineColorPrecedence(t *testing.T) {
	cfg := config.New()
	th := theme.Default()

	// No flag, no config entry: theme outline wins.
	cc, err := canvasConfig(cfg, th, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cc.LineColor != th.Outline {
		t.Errorf("line color = %v, want theme outline %v", cc.LineColor, th.Outline)
	}

	// Config entry beats the theme.
	cfg.Draw.LineColor = "red"
	cc, err = canvasConfig(cfg, th, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cc.LineColor != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("line color = %v, want red", cc.LineColor)
	}

	// The CLI flag beats both.
	cc, err = canvasConfig(cfg, th, "#0000ff")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cc.LineColor != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("line color = %v, want blue", cc.LineColor)
	}
}

func TestCanvasConfigFoldsShapeSizes(t *testing.T) {
	cfg := config.New()
	cfg.Shapes.OvalWidth = 60
	cfg.Shapes.OvalHeight = 30
	cc, err := canvasConfig(cfg, theme.Default(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cc.OvalHalf.X != 30 || cc.OvalHalf.Y != 15 {
		t.Errorf("oval half extents = %v", cc.OvalHalf)
	}
}

func TestNewSketchBoardLayout(t *testing.T) {
	cc, err := canvasConfig(config.New(), theme.Default(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := newSketchBoard(cc, theme.Default().Background, surface.Oval)
	if got := len(b.Panels()); got != 3 {
		t.Fatalf("expected 3 panels, got %d", got)
	}
	if got, want := b.Bounds().Dx(), 3*cc.Width; got != want {
		t.Errorf("board width = %d, want %d", got, want)
	}
	names := []string{"freehand", "lines", "shapes"}
	for i, p := range b.Panels() {
		if p.Name != names[i] {
			t.Errorf("panel %d = %q, want %q", i, p.Name, names[i])
		}
		if p.Origin.X != i*cc.Width {
			t.Errorf("panel %q origin = %v", p.Name, p.Origin)
		}
	}
}
