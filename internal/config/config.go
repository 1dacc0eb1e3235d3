package config

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/example/sketchpad/internal/theme"
)

// Draw holds the drawing canvas settings.
type Draw struct {
	Mode      string // "freehand" or "polyline"
	LineWidth int
	LineColor string // color name or #RRGGBB
}

// Shapes holds the shape canvas settings.
type Shapes struct {
	Halo       int
	FlashMs    int
	OvalWidth  int
	OvalHeight int
	RectWidth  int
	RectHeight int
	ArcWidth   int
	ArcHeight  int
}

// Config holds the application configuration.
type Config struct {
	Theme  string
	Width  int
	Height int
	Draw   Draw
	Shapes Shapes
	Themes map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Theme:  "", // Default to empty to allow fallback to Env/Default
		Width:  320,
		Height: 320,
		Draw: Draw{
			Mode:      "polyline",
			LineWidth: 1,
			LineColor: "", // Empty means the theme's outline color
		},
		Shapes: Shapes{
			Halo:       25,
			FlashMs:    500,
			OvalWidth:  40,
			OvalHeight: 50,
			RectWidth:  50,
			RectHeight: 40,
			ArcWidth:   60,
			ArcHeight:  50,
		},
		Themes: make(map[string]*theme.Theme),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	// Root section
	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	fmt.Fprintf(&sb, "width = %d\n", c.Width)
	fmt.Fprintf(&sb, "height = %d\n", c.Height)
	sb.WriteString("\n")

	// Draw section
	sb.WriteString("[draw]\n")
	fmt.Fprintf(&sb, "mode = %s\n", c.Draw.Mode)
	fmt.Fprintf(&sb, "line_width = %d\n", c.Draw.LineWidth)
	if c.Draw.LineColor != "" {
		fmt.Fprintf(&sb, "line_color = %s\n", c.Draw.LineColor)
	}
	sb.WriteString("\n")

	// Shapes section
	sb.WriteString("[shapes]\n")
	fmt.Fprintf(&sb, "halo = %d\n", c.Shapes.Halo)
	fmt.Fprintf(&sb, "flash_ms = %d\n", c.Shapes.FlashMs)
	fmt.Fprintf(&sb, "oval_width = %d\n", c.Shapes.OvalWidth)
	fmt.Fprintf(&sb, "oval_height = %d\n", c.Shapes.OvalHeight)
	fmt.Fprintf(&sb, "rect_width = %d\n", c.Shapes.RectWidth)
	fmt.Fprintf(&sb, "rect_height = %d\n", c.Shapes.RectHeight)
	fmt.Fprintf(&sb, "arc_width = %d\n", c.Shapes.ArcWidth)
	fmt.Fprintf(&sb, "arc_height = %d\n", c.Shapes.ArcHeight)
	sb.WriteString("\n")

	// Themes sections
	// Sort keys for deterministic output
	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		fmt.Fprintf(&sb, "Background: %s\n", toHex(t.Background))
		fmt.Fprintf(&sb, "Outline: %s\n", toHex(t.Outline))
		fmt.Fprintf(&sb, "Highlight: %s\n", toHex(t.Highlight))
		fmt.Fprintf(&sb, "MultiSelect: %s\n", toHex(t.MultiSelect))
		fmt.Fprintf(&sb, "Readout: %s\n", toHex(t.Readout))
		sb.WriteString("\n")
	}

	return sb.String()
}

func toHex(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
