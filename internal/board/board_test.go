package board

import (
	"image"
	"image/color"
	"testing"
	"time"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/sketchpad/internal/canvas"
	"github.com/example/sketchpad/internal/surface"
)

// recorder captures what the board delivers to a panel.
type recorder struct {
	sfc    *surface.Image
	events []canvas.MouseEvent
	keys   []key.Event
	leaves int
}

func newRecorder() *recorder {
	return &recorder{sfc: surface.NewImage(100, 100, color.RGBA{255, 255, 255, 255})}
}

func (r *recorder) Dispatch(ev canvas.MouseEvent) { r.events = append(r.events, ev) }
func (r *recorder) HandleKey(ev key.Event)        { r.keys = append(r.keys, ev) }
func (r *recorder) Leave()                        { r.leaves++ }
func (r *recorder) Surface() surface.Surface      { return r.sfc }

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func mouseAt(x, y int, btn mouse.Button, dir mouse.Direction) mouse.Event {
	return mouse.Event{X: float32(x), Y: float32(y), Button: btn, Direction: dir}
}

func twoPanelBoard() (*Board, *recorder, *recorder, *fakeClock) {
	b := New(nil)
	clk := &fakeClock{t: time.Unix(1000, 0)}
	b.SetClock(clk.now)
	left := newRecorder()
	right := newRecorder()
	b.AddPanel("left", left, image.Pt(0, 0), image.Pt(100, 100))
	b.AddPanel("right", right, image.Pt(100, 0), image.Pt(100, 100))
	return b, left, right, clk
}

func TestRoutingTranslatesToPanelCoordinates(t *testing.T) {
	b, left, right, _ := twoPanelBoard()

	b.HandleMouse(mouseAt(150, 40, mouse.ButtonLeft, mouse.DirPress))
	if len(right.events) != 1 || len(left.events) != 0 {
		t.Fatalf("events: left=%d right=%d", len(left.events), len(right.events))
	}
	if got := right.events[0].Pos; got != image.Pt(50, 40) {
		t.Errorf("panel-local position = %v, want (50,40)", got)
	}
}

func TestRoutingOutsideAllPanels(t *testing.T) {
	b, left, _, _ := twoPanelBoard()
	b.HandleMouse(mouseAt(50, 50, mouse.ButtonNone, mouse.DirNone))
	b.HandleMouse(mouseAt(50, 500, mouse.ButtonNone, mouse.DirNone))
	if left.leaves != 1 {
		t.Errorf("leave count = %d, want 1", left.leaves)
	}
	if len(left.events) != 1 {
		t.Errorf("outside event still delivered: %d", len(left.events))
	}
}

func TestCrossingPanelsLeavesTheOldOne(t *testing.T) {
	b, left, right, _ := twoPanelBoard()
	b.HandleMouse(mouseAt(90, 50, mouse.ButtonNone, mouse.DirNone))
	b.HandleMouse(mouseAt(110, 50, mouse.ButtonNone, mouse.DirNone))
	if left.leaves != 1 {
		t.Errorf("left leave count = %d", left.leaves)
	}
	if right.leaves != 0 {
		t.Errorf("right leave count = %d", right.leaves)
	}
}

func TestMotionCarriesHeldButton(t *testing.T) {
	b, left, _, _ := twoPanelBoard()
	b.HandleMouse(mouseAt(10, 10, mouse.ButtonLeft, mouse.DirPress))
	b.HandleMouse(mouseAt(20, 10, mouse.ButtonNone, mouse.DirNone))
	b.HandleMouse(mouseAt(20, 10, mouse.ButtonLeft, mouse.DirRelease))
	b.HandleMouse(mouseAt(30, 10, mouse.ButtonNone, mouse.DirNone))

	if got := left.events[1].Button; got != mouse.ButtonLeft {
		t.Errorf("held-motion button = %v, want left", got)
	}
	if got := left.events[3].Button; got != mouse.ButtonNone {
		t.Errorf("post-release motion button = %v, want none", got)
	}
}

func TestDoubleClickSynthesis(t *testing.T) {
	b, left, _, clk := twoPanelBoard()
	b.HandleMouse(mouseAt(10, 10, mouse.ButtonLeft, mouse.DirPress))
	clk.advance(150 * time.Millisecond)
	b.HandleMouse(mouseAt(11, 11, mouse.ButtonLeft, mouse.DirPress))

	if left.events[0].Double {
		t.Error("first press marked double")
	}
	if !left.events[1].Double {
		t.Error("second quick press not marked double")
	}

	// A third quick press starts a new pair.
	clk.advance(150 * time.Millisecond)
	b.HandleMouse(mouseAt(11, 11, mouse.ButtonLeft, mouse.DirPress))
	if left.events[2].Double {
		t.Error("triple press chained a second double")
	}
}

func TestDoubleClickRejectsSlowOrFarPresses(t *testing.T) {
	b, left, _, clk := twoPanelBoard()
	b.HandleMouse(mouseAt(10, 10, mouse.ButtonLeft, mouse.DirPress))
	clk.advance(time.Second)
	b.HandleMouse(mouseAt(10, 10, mouse.ButtonLeft, mouse.DirPress))
	if left.events[1].Double {
		t.Error("slow second press marked double")
	}

	b.HandleMouse(mouseAt(10, 10, mouse.ButtonLeft, mouse.DirPress))
	clk.advance(100 * time.Millisecond)
	b.HandleMouse(mouseAt(50, 50, mouse.ButtonLeft, mouse.DirPress))
	if left.events[3].Double {
		t.Error("distant second press marked double")
	}
}

func TestDoubleClickDoesNotCrossPanels(t *testing.T) {
	b, _, right, clk := twoPanelBoard()
	b.HandleMouse(mouseAt(99, 10, mouse.ButtonLeft, mouse.DirPress))
	clk.advance(100 * time.Millisecond)
	b.HandleMouse(mouseAt(101, 10, mouse.ButtonLeft, mouse.DirPress))
	if right.events[0].Double {
		t.Error("double-click crossed a panel boundary")
	}
}

func TestKeyFanOut(t *testing.T) {
	b, left, right, _ := twoPanelBoard()
	b.HandleKey(key.Event{Rune: 'd', Modifiers: key.ModControl, Direction: key.DirPress})
	if len(left.keys) != 1 || len(right.keys) != 1 {
		t.Errorf("key fan-out: left=%d right=%d", len(left.keys), len(right.keys))
	}
}

func TestBrokerConsumesEraseChordsBeforeFanOut(t *testing.T) {
	brk := canvas.NewBroker()
	d := canvas.NewDrawCanvas(surface.NewImage(100, 100, color.RGBA{255, 255, 255, 255}), canvas.DefaultConfig(), canvas.Polyline, brk)
	b := New(brk)
	rec := newRecorder()
	b.AddPanel("lines", d, image.Pt(0, 0), image.Pt(100, 100))
	b.AddPanel("shapes", rec, image.Pt(100, 0), image.Pt(100, 100))

	b.HandleKey(key.Event{Rune: 'l', Modifiers: key.ModControl, Direction: key.DirPress})
	if len(rec.keys) != 0 {
		t.Error("erase chord leaked past the broker")
	}
	b.HandleKey(key.Event{Rune: 'x', Modifiers: key.ModControl, Direction: key.DirPress})
	if len(rec.keys) != 1 {
		t.Error("ordinary chord not fanned out")
	}
}

func TestBoardBoundsAndRender(t *testing.T) {
	b, left, _, _ := twoPanelBoard()
	if got, want := b.Bounds(), image.Rect(0, 0, 200, 100); got != want {
		t.Errorf("Bounds = %v, want %v", got, want)
	}
	left.sfc.CreateShape(surface.Rectangle, image.Rect(10, 10, 20, 20), color.RGBA{A: 255}, 1)
	img := b.Image()
	if img.Bounds() != image.Rect(0, 0, 200, 100) {
		t.Errorf("Image bounds = %v", img.Bounds())
	}
	if img.RGBAAt(10, 10) != (color.RGBA{A: 255}) {
		t.Error("panel content not rendered at its origin")
	}
}
