package config

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `
theme = my_custom_theme
width = 400
height = 500

[draw]
mode = freehand
line_width = 2
line_color = navy

[shapes]
halo = 30
flash_ms = 250
oval_width = 44

[theme.my_custom_theme]
Background = #111111
Outline = #FFFFFF
`
	r := strings.NewReader(input)
	cfg, err := Parse(r)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Theme != "my_custom_theme" {
		t.Errorf("Expected theme 'my_custom_theme', got '%s'", cfg.Theme)
	}
	if cfg.Width != 400 || cfg.Height != 500 {
		t.Errorf("Expected 400x500, got %dx%d", cfg.Width, cfg.Height)
	}

	if cfg.Draw.Mode != "freehand" {
		t.Errorf("Expected draw mode 'freehand', got '%s'", cfg.Draw.Mode)
	}
	if cfg.Draw.LineWidth != 2 {
		t.Errorf("Expected line_width 2, got %d", cfg.Draw.LineWidth)
	}
	if cfg.Draw.LineColor != "navy" {
		t.Errorf("Expected line_color 'navy', got '%s'", cfg.Draw.LineColor)
	}

	if cfg.Shapes.Halo != 30 {
		t.Errorf("Expected halo 30, got %d", cfg.Shapes.Halo)
	}
	if cfg.Shapes.FlashMs != 250 {
		t.Errorf("Expected flash_ms 250, got %d", cfg.Shapes.FlashMs)
	}
	if cfg.Shapes.OvalWidth != 44 {
		t.Errorf("Expected oval_width 44, got %d", cfg.Shapes.OvalWidth)
	}
	// Unset keys keep their defaults.
	if cfg.Shapes.RectWidth != 50 {
		t.Errorf("Expected default rect_width 50, got %d", cfg.Shapes.RectWidth)
	}

	th, ok := cfg.Themes["my_custom_theme"]
	if !ok {
		t.Fatal("Expected theme 'my_custom_theme' to be loaded")
	}
	if th.Background.R != 0x11 || th.Background.G != 0x11 || th.Background.B != 0x11 {
		t.Errorf("Unexpected Background color: %+v", th.Background)
	}
}

func TestParseRejectsBadValues(t *testing.T) {
	if _, err := Parse(strings.NewReader("[draw]\nmode = scribble\n")); err == nil {
		t.Error("expected error for unknown draw mode")
	}
	if _, err := Parse(strings.NewReader("width = ten\n")); err == nil {
		t.Error("expected error for non-integer width")
	}
	if _, err := Parse(strings.NewReader("[theme.x]\nBackground = notacolor\n")); err == nil {
		t.Error("expected error for invalid theme color")
	}
}

func TestCircular(t *testing.T) {
	input := `theme = dark
width = 640
height = 480

[draw]
mode = freehand
line_width = 3
line_color = #336699

[shapes]
halo = 20
flash_ms = 750

[theme.custom]
Name = custom
Background = #000000
Outline = #FFFFFF
`
	// 1. Parse initial input
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Initial parse failed: %v", err)
	}

	// 2. Generate string representation
	generated := cfg.String()

	// 3. Parse generated string
	cfg2, err := Parse(strings.NewReader(generated))
	if err != nil {
		t.Fatalf("Circular parse failed: %v", err)
	}

	// 4. Compare relevant fields
	if cfg.Theme != cfg2.Theme {
		t.Errorf("Theme mismatch: %q vs %q", cfg.Theme, cfg2.Theme)
	}
	if cfg.Width != cfg2.Width || cfg.Height != cfg2.Height {
		t.Errorf("Size mismatch: %dx%d vs %dx%d", cfg.Width, cfg.Height, cfg2.Width, cfg2.Height)
	}
	if cfg.Draw != cfg2.Draw {
		t.Errorf("Draw mismatch: %+v vs %+v", cfg.Draw, cfg2.Draw)
	}
	if cfg.Shapes != cfg2.Shapes {
		t.Errorf("Shapes mismatch: %+v vs %+v", cfg.Shapes, cfg2.Shapes)
	}

	// Check theme persistence
	t1 := cfg.Themes["custom"]
	t2 := cfg2.Themes["custom"]
	if t1 == nil || t2 == nil {
		t.Fatalf("Custom theme missing in one config")
	}
	if t1.Background != t2.Background {
		t.Errorf("Theme background mismatch: %v vs %v", t1.Background, t2.Background)
	}
}
