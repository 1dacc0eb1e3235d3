// Package theme defines named color schemes for the sketchpad canvases.
package theme

import (
	"image/color"
)

// Theme is the color palette a board is drawn with.
type Theme struct {
	Name string

	// Background fills each canvas behind the primitives.
	Background color.RGBA
	// Outline is the default color for lines and shape outlines.
	Outline color.RGBA
	// Highlight fills a shape while the selection flash is on.
	Highlight color.RGBA
	// MultiSelect outlines shapes while they sit in the multi-selection.
	MultiSelect color.RGBA
	// Readout colors the cursor position text.
	Readout color.RGBA
}

// Default returns the hardcoded fallback theme.
func Default() *Theme {
	return &Theme{
		Name:        "Default",
		Background:  color.RGBA{0, 255, 255, 255},
		Outline:     color.RGBA{0, 0, 0, 255},
		Highlight:   color.RGBA{255, 255, 170, 255},
		MultiSelect: color.RGBA{128, 128, 128, 255},
		Readout:     color.RGBA{0, 0, 255, 255},
	}
}
