// Package board lays canvases out as panels and routes raw window events to
// them: it translates coordinates to panel space, tracks which button is
// held across motion events, synthesizes double-clicks, and fans keyboard
// events out to the canvases.
package board

import (
	"image"
	"time"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/sketchpad/internal/canvas"
	"github.com/example/sketchpad/internal/surface"
)

const (
	doubleClickWindow = 400 * time.Millisecond
	doubleClickSlop   = 3
)

// Canvas is what a panel hosts.
type Canvas interface {
	Dispatch(canvas.MouseEvent)
	HandleKey(key.Event)
	Leave()
	Surface() surface.Surface
}

// Panel places a canvas at an origin within the board.
type Panel struct {
	Name   string
	Canvas Canvas
	Origin image.Point
	Size   image.Point
}

func (p *Panel) rect() image.Rectangle {
	return image.Rectangle{Min: p.Origin, Max: p.Origin.Add(p.Size)}
}

// Board routes window-level events to its panels.
type Board struct {
	panels []*Panel
	broker *canvas.Broker

	held         mouse.Button
	active       int
	lastPress    time.Time
	lastPressPos image.Point
	lastPanel    int

	now func() time.Time
}

// New builds an empty board. brk may be nil when no drawing canvases take
// part.
func New(brk *canvas.Broker) *Board {
	return &Board{broker: brk, active: -1, lastPanel: -1, now: time.Now}
}

// SetClock replaces the time source used for double-click detection.
func (b *Board) SetClock(now func() time.Time) { b.now = now }

// AddPanel registers a canvas at origin with the given size.
func (b *Board) AddPanel(name string, c Canvas, origin, size image.Point) {
	b.panels = append(b.panels, &Panel{Name: name, Canvas: c, Origin: origin, Size: size})
}

// Panels returns the registered panels in layout order.
func (b *Board) Panels() []*Panel { return b.panels }

// Panel looks a panel up by name.
func (b *Board) Panel(name string) (*Panel, bool) {
	for _, p := range b.panels {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// Bounds is the union of all panel rectangles.
func (b *Board) Bounds() image.Rectangle {
	var r image.Rectangle
	for _, p := range b.panels {
		r = r.Union(p.rect())
	}
	return r
}

func (b *Board) panelAt(p image.Point) int {
	for i, pn := range b.panels {
		if p.In(pn.rect()) {
			return i
		}
	}
	return -1
}

// HandleMouse routes one window-level mouse event. Motion events carry the
// held button so canvases can distinguish drag strokes; the second press of
// a quick same-place primary click pair is delivered as a Double gesture
// only.
func (b *Board) HandleMouse(ev mouse.Event) {
	pos := image.Pt(int(ev.X), int(ev.Y))
	idx := b.panelAt(pos)
	if idx != b.active {
		if b.active >= 0 {
			b.panels[b.active].Canvas.Leave()
		}
		b.active = idx
	}
	if idx < 0 {
		return
	}
	pn := b.panels[idx]

	me := canvas.MouseEvent{
		Pos:    pos.Sub(pn.Origin),
		Button: ev.Button,
		Dir:    ev.Direction,
		Mods:   ev.Modifiers,
	}
	switch ev.Direction {
	case mouse.DirPress:
		if ev.Button == mouse.ButtonLeft {
			if idx == b.lastPanel &&
				!b.lastPress.IsZero() &&
				b.now().Sub(b.lastPress) <= doubleClickWindow &&
				near(pos, b.lastPressPos) {
				me.Double = true
				// A third quick press starts over rather than
				// chaining doubles.
				b.lastPress = time.Time{}
			} else {
				b.lastPress = b.now()
				b.lastPressPos = pos
				b.lastPanel = idx
			}
		}
		b.held = ev.Button
	case mouse.DirNone:
		if ev.Button == mouse.ButtonNone {
			me.Button = b.held
		}
	}
	pn.Canvas.Dispatch(me)
	if ev.Direction == mouse.DirRelease {
		b.held = mouse.ButtonNone
	}
}

// HandleKey offers the event to the broker's erase chords first, then fans
// it out to every panel.
func (b *Board) HandleKey(ev key.Event) {
	if b.broker != nil && b.broker.HandleKey(ev) {
		return
	}
	for _, p := range b.panels {
		p.Canvas.HandleKey(ev)
	}
}

// Render paints every panel's surface into dst at its board position.
func (b *Board) Render(dst *image.RGBA) {
	for _, p := range b.panels {
		if s, ok := p.Canvas.Surface().(*surface.Image); ok {
			s.Render(dst, p.Origin)
		}
	}
}

// Image renders the whole board into a fresh image.
func (b *Board) Image() *image.RGBA {
	r := b.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, r.Max.X, r.Max.Y))
	b.Render(dst)
	return dst
}

func near(a, c image.Point) bool {
	d := a.Sub(c)
	if d.X < 0 {
		d.X = -d.X
	}
	if d.Y < 0 {
		d.Y = -d.Y
	}
	return d.X <= doubleClickSlop && d.Y <= doubleClickSlop
}
