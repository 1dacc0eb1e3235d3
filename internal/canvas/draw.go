package canvas

import (
	"image"
	"log"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/sketchpad/internal/surface"
)

// Mode selects which gesture set a DrawCanvas uses.
type Mode int

const (
	// Freehand draws a segment for every motion step while the primary
	// button is held.
	Freehand Mode = iota
	// Polyline draws a segment per primary click, closing or terminating
	// the run on double-click or Control-click.
	Polyline
)

func (m Mode) String() string {
	if m == Freehand {
		return "freehand"
	}
	return "polyline"
}

// modeBindings is the sealed set of drawing sub-controllers. Each installs
// its gesture table into the canvas at construction; the mode never changes
// afterwards.
type modeBindings interface {
	install(*DrawCanvas)
}

type freehand struct{}
type polyline struct{}

// DrawCanvas turns pointer gestures into line segments on its surface. The
// open run's segment ids live in segments; when a run completes they move to
// lastRun, the single completed-run memory the erase commands operate on.
type DrawCanvas struct {
	base
	mode     Mode
	bindings mouseBindings
	segments []surface.ID
	lastRun  []surface.ID
}

// NewDrawCanvas builds a drawing canvas in the given mode and, when brk is
// non-nil, registers it for broker-driven erase commands.
func NewDrawCanvas(sfc surface.Surface, cfg Config, mode Mode, brk *Broker) *DrawCanvas {
	d := &DrawCanvas{
		base:     base{sfc: sfc, cfg: cfg},
		mode:     mode,
		bindings: mouseBindings{},
	}
	var mb modeBindings
	switch mode {
	case Freehand:
		mb = freehand{}
	default:
		mb = polyline{}
	}
	mb.install(d)
	if brk != nil {
		brk.register(d)
	}
	return d
}

func (freehand) install(d *DrawCanvas) {
	d.bindings[gesture{Button: mouse.ButtonLeft, Dir: mouse.DirPress}] = d.anchor
	d.bindings[gesture{Button: mouse.ButtonLeft, Dir: mouse.DirNone}] = d.segmentTo
	d.bindings[gesture{Button: mouse.ButtonLeft, Dir: mouse.DirRelease}] = d.finishRun
}

func (polyline) install(d *DrawCanvas) {
	d.bindings[gesture{Button: mouse.ButtonLeft, Dir: mouse.DirPress}] = d.segmentClick
	d.bindings[gesture{Button: mouse.ButtonLeft, Dir: mouse.DirPress, Mods: key.ModControl}] = d.segmentClickEnd
	d.bindings[gesture{Button: mouse.ButtonLeft, Dir: mouse.DirPress, Double: true}] = d.closeRun
	d.bindings[gesture{Button: mouse.ButtonRight, Dir: mouse.DirPress}] = d.undoSegment
}

// Mode reports which gesture set this canvas was built with.
func (d *DrawCanvas) Mode() Mode { return d.mode }

// Dispatch routes one canvas-local mouse event.
func (d *DrawCanvas) Dispatch(ev MouseEvent) {
	if ev.Dir == mouse.DirNone {
		d.trackPointer(ev.Pos)
	}
	if fn, ok := d.bindings.lookup(ev); ok {
		fn(ev)
	}
}

// HandleKey is a no-op; drawing canvases have no direct key bindings. Their
// erase commands arrive through the Broker.
func (d *DrawCanvas) HandleKey(key.Event) {}

func (d *DrawCanvas) anchor(ev MouseEvent) {
	d.ptr.recordClick(ev.Pos)
}

func (d *DrawCanvas) segmentTo(ev MouseEvent) {
	if !d.ptr.active() {
		d.ptr.recordClick(ev.Pos)
		return
	}
	d.segment(d.ptr.start, ev.Pos)
	d.ptr.recordClick(ev.Pos)
}

func (d *DrawCanvas) segmentClick(ev MouseEvent) {
	if !d.ptr.active() {
		d.ptr.recordClick(ev.Pos)
		return
	}
	d.segment(d.ptr.start, ev.Pos)
	d.ptr.recordClick(ev.Pos)
}

// segmentClickEnd draws the clicked segment like segmentClick and then
// terminates the open run without closing it back to the anchor. A
// Control-click that starts a run just starts it.
func (d *DrawCanvas) segmentClickEnd(ev MouseEvent) {
	wasActive := d.ptr.active()
	d.segmentClick(ev)
	if !wasActive {
		return
	}
	d.complete()
}

// closeRun joins the run back to its anchor point and completes it.
func (d *DrawCanvas) closeRun(ev MouseEvent) {
	if !d.ptr.active() {
		return
	}
	d.segment(ev.Pos, d.ptr.first)
	d.complete()
}

// finishRun completes a freehand stroke on release. The pointer anchor is
// left where the stroke ended; the next press re-anchors.
func (d *DrawCanvas) finishRun(MouseEvent) {
	d.lastRun = d.segments
	d.segments = nil
}

// undoSegment removes the most recent segment and click of the open run.
// When the run empties, the click sequence ends with it.
func (d *DrawCanvas) undoSegment(MouseEvent) {
	if !d.ptr.active() {
		log.Printf("draw canvas (%s): undo with no open run", d.mode)
		return
	}
	if n := len(d.segments); n > 0 {
		d.sfc.Delete(d.segments[n-1])
		d.segments = d.segments[:n-1]
	}
	d.ptr.undo()
}

func (d *DrawCanvas) segment(from, to image.Point) {
	id := d.sfc.CreateLine(from, to, d.cfg.LineColor, d.cfg.LineWidth)
	d.segments = append(d.segments, id)
}

func (d *DrawCanvas) complete() {
	d.lastRun = d.segments
	d.segments = nil
	d.ptr.reset()
}

// EraseLastRun deletes the most recently completed run.
func (d *DrawCanvas) EraseLastRun() {
	for _, id := range d.lastRun {
		d.sfc.Delete(id)
	}
	d.lastRun = nil
}

// EraseAll deletes every primitive on the canvas and forgets all run state.
func (d *DrawCanvas) EraseAll() {
	d.sfc.DeleteAll()
	d.segments = nil
	d.lastRun = nil
	d.ptr.reset()
}
