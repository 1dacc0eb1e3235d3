// Package surface defines the drawing surface the canvas controllers draw on:
// a retained set of primitives addressed by id, with hit testing, text
// readouts and deferred callbacks. Image is the in-memory implementation.
package surface

import (
	"image"
	"image/color"
	"time"
)

// ID identifies a primitive on a surface.
type ID string

// Kind enumerates the closed set of shape primitives.
type Kind int

const (
	Oval Kind = iota
	Rectangle
	Arc
)

func (k Kind) String() string {
	switch k {
	case Oval:
		return "oval"
	case Rectangle:
		return "rectangle"
	case Arc:
		return "arc"
	}
	return "unknown"
}

// Surface is the capability set the canvas controllers consume. Implementations
// retain primitives in creation order; later primitives sit above earlier ones.
type Surface interface {
	// CreateLine adds a line segment and returns its id.
	CreateLine(a, b image.Point, outline color.RGBA, width int) ID
	// CreateShape adds an outlined shape occupying bounds and returns its id.
	CreateShape(k Kind, bounds image.Rectangle, outline color.RGBA, width int) ID
	// Delete removes the primitive. Unknown ids are ignored.
	Delete(id ID)
	// DeleteAll removes every primitive.
	DeleteAll()
	// Exists reports whether id still names a primitive.
	Exists(id ID) bool

	// MoveBy translates the primitive by whole pixels.
	MoveBy(id ID, dx, dy int)
	// Bounds reports the primitive's current bounding rectangle.
	Bounds(id ID) (image.Rectangle, bool)
	// SetBounds replaces the primitive's bounding rectangle.
	SetBounds(id ID, r image.Rectangle)
	// Scale stretches the primitive about anchor by the given factors.
	// Fractional results accumulate across calls.
	Scale(id ID, anchor image.Point, fx, fy float64)

	// SetOutline recolors the primitive's outline.
	SetOutline(id ID, outline color.RGBA)
	// SetFill paints the primitive's interior; ClearFill removes it again.
	SetFill(id ID, fill color.RGBA)
	ClearFill(id ID)

	// Closest returns the topmost primitive within halo pixels of p.
	Closest(p image.Point, halo int) (ID, bool)

	// SetText places a named text readout centred at p, replacing any
	// previous readout with the same tag. ClearText removes it.
	SetText(tag string, p image.Point, text string, col color.RGBA)
	ClearText(tag string)

	// After schedules fn to run once after d. How time passes is up to the
	// implementation.
	After(d time.Duration, fn func())
}
