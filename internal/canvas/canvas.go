// Package canvas implements the interaction core: drawing canvases that turn
// pointer and keyboard events into primitives on a surface, a shape canvas
// with selection, drag, resize and editing operations, and a broker
// coordinating erase commands across sibling canvases.
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/example/sketchpad/internal/surface"
)

// Readout tags used for the surface text overlays.
const (
	cursorReadout = "cursor"
	centerReadout = "center"
)

// Config carries the tunables shared by the canvas controllers. Zero values
// are not usable; start from DefaultConfig.
type Config struct {
	Width  int
	Height int

	LineWidth int
	LineColor color.RGBA

	// Halo is how far a secondary click may land from a shape and still
	// select it.
	Halo int
	// FlashDuration is how long the selection highlight fill stays on.
	FlashDuration time.Duration
	HighlightFill color.RGBA
	MultiSelect   color.RGBA
	ReadoutColor  color.RGBA

	// Half-extents of newly created shapes around the click point.
	OvalHalf image.Point
	RectHalf image.Point
	ArcHalf  image.Point

	// DuplicateOffset displaces a duplicated shape from its source.
	DuplicateOffset image.Point
}

// DefaultConfig mirrors the historical defaults of the interaction model.
func DefaultConfig() Config {
	return Config{
		Width:           320,
		Height:          320,
		LineWidth:       1,
		LineColor:       color.RGBA{A: 255},
		Halo:            25,
		FlashDuration:   500 * time.Millisecond,
		HighlightFill:   color.RGBA{R: 255, G: 255, B: 170, A: 255},
		MultiSelect:     color.RGBA{R: 128, G: 128, B: 128, A: 255},
		ReadoutColor:    color.RGBA{B: 255, A: 255},
		OvalHalf:        image.Pt(20, 25),
		RectHalf:        image.Pt(25, 20),
		ArcHalf:         image.Pt(30, 25),
		DuplicateOffset: image.Pt(20, 20),
	}
}

// base holds what every canvas controller needs: its surface, its config,
// the click-sequence tracker and the last observed pointer position.
type base struct {
	sfc         surface.Surface
	cfg         Config
	ptr         pointerState
	lastPointer image.Point
}

// Surface exposes the canvas's drawing surface to the host.
func (b *base) Surface() surface.Surface { return b.sfc }

// trackPointer remembers the position and keeps the cursor readout at the
// lower-right corner current.
func (b *base) trackPointer(p image.Point) {
	b.lastPointer = p
	b.sfc.SetText(cursorReadout,
		image.Pt(b.cfg.Width-28, b.cfg.Height-10),
		fmt.Sprintf("%d,%d", p.X, p.Y),
		b.cfg.ReadoutColor)
}

// Leave clears the cursor readout when the pointer exits the canvas.
func (b *base) Leave() {
	b.sfc.ClearText(cursorReadout)
}
