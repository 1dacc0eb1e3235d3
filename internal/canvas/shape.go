package canvas

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/sketchpad/internal/surface"
)

// ShapeCanvas creates and edits shapes of one kind. Selection is a single
// shape id plus an insertion-ordered multi-selection; editing operations act
// on the multi-selection when it is non-empty, otherwise on the selected
// shape.
type ShapeCanvas struct {
	base
	kind     surface.Kind
	reg      *Registry
	bindings mouseBindings
	keys     keyBindings

	selected surface.ID
	multi    []surface.ID

	// prev and motion are the reference points for drag deltas and resize
	// direction, each updated by its own gesture.
	prev   image.Point
	motion image.Point
}

// NewShapeCanvas builds a shape canvas producing shapes of kind k.
func NewShapeCanvas(sfc surface.Surface, cfg Config, k surface.Kind) *ShapeCanvas {
	s := &ShapeCanvas{
		base: base{sfc: sfc, cfg: cfg},
		kind: k,
		reg:  NewRegistry(),
	}
	s.bindings = mouseBindings{
		{Button: mouse.ButtonLeft, Dir: mouse.DirPress}:                          s.create,
		{Button: mouse.ButtonRight, Dir: mouse.DirPress}:                         s.selectNearest,
		{Button: mouse.ButtonRight, Dir: mouse.DirPress, Mods: key.ModShift}:     s.unselect,
		{Button: mouse.ButtonRight, Dir: mouse.DirPress, Mods: key.ModControl}:   s.toggleMulti,
		{Button: mouse.ButtonNone, Dir: mouse.DirNone, Mods: key.ModShift}:       func(ev MouseEvent) { s.drag(ev, false) },
		{Button: mouse.ButtonNone, Dir: mouse.DirNone, Mods: key.ModAlt}:         func(ev MouseEvent) { s.drag(ev, true) },
		{Button: mouse.ButtonNone, Dir: mouse.DirNone, Mods: key.ModControl}:     s.resize,
	}
	s.keys = keyBindings{
		{Mods: key.ModShift, Code: key.CodeUpArrow}:      func() { s.nudge(0, -1) },
		{Mods: key.ModShift, Code: key.CodeDownArrow}:    func() { s.nudge(0, 1) },
		{Mods: key.ModShift, Code: key.CodeLeftArrow}:    func() { s.nudge(-1, 0) },
		{Mods: key.ModShift, Code: key.CodeRightArrow}:   func() { s.nudge(1, 0) },
		{Mods: key.ModControl, Code: key.CodeUpArrow}:    func() { s.nudgeSize(1) },
		{Mods: key.ModControl, Code: key.CodeDownArrow}:  func() { s.nudgeSize(-1) },
		{Mods: key.ModControl, Rune: 'd'}:                s.duplicate,
		{Mods: key.ModControl, Rune: 'x'}:                s.deleteSelected,
		{Mods: key.ModControl, Rune: 'r'}:                s.releaseMulti,
		{Mods: key.ModAlt, Rune: 'b'}:                    s.recolorNearest,
		{Mods: key.ModAlt, Rune: 'r'}:                    s.reveal,
	}
	return s
}

// Kind reports which shape kind this canvas creates.
func (s *ShapeCanvas) Kind() surface.Kind { return s.kind }

// Registry exposes the shape records for host introspection.
func (s *ShapeCanvas) Registry() *Registry { return s.reg }

// Selected reports the currently selected shape id, empty when none.
func (s *ShapeCanvas) Selected() surface.ID { return s.selected }

// MultiSelected returns the multi-selection in insertion order.
func (s *ShapeCanvas) MultiSelected() []surface.ID { return s.multi }

// Dispatch routes one canvas-local mouse event.
func (s *ShapeCanvas) Dispatch(ev MouseEvent) {
	if ev.Dir == mouse.DirNone {
		s.trackPointer(ev.Pos)
	}
	if fn, ok := s.bindings.lookup(ev); ok {
		fn(ev)
	}
}

// HandleKey routes a key press through the canvas's chord table.
func (s *ShapeCanvas) HandleKey(ev key.Event) {
	if ev.Direction != key.DirPress {
		return
	}
	chord := chordFor(ev)
	if fn, ok := s.keys[chord]; ok {
		fn()
		return
	}
	if chord.Mods != 0 {
		log.Printf("shape canvas: unhandled chord mods=%v rune=%q code=%v", chord.Mods, chord.Rune, chord.Code)
	}
}

func (s *ShapeCanvas) halfExtents() image.Point {
	switch s.kind {
	case surface.Rectangle:
		return s.cfg.RectHalf
	case surface.Arc:
		return s.cfg.ArcHalf
	default:
		return s.cfg.OvalHalf
	}
}

// create places a new shape of the canvas's kind centred on the click. The
// new shape becomes the selection and any multi-selection is dropped.
func (s *ShapeCanvas) create(ev MouseEvent) {
	s.ptr.recordClick(ev.Pos)
	s.prev = ev.Pos
	s.motion = ev.Pos
	id := s.createAt(ev.Pos, s.cfg.LineColor)
	s.clearMulti()
	s.selected = id
	s.reportCenter(id)
}

func (s *ShapeCanvas) createAt(c image.Point, outline color.RGBA) surface.ID {
	h := s.halfExtents()
	r := image.Rect(c.X-h.X, c.Y-h.Y, c.X+h.X, c.Y+h.Y)
	id := s.sfc.CreateShape(s.kind, r, outline, s.cfg.LineWidth)
	s.reg.Add(&Shape{ID: id, Kind: s.kind, Center: c, Outline: outline})
	return id
}

// selectNearest selects the shape nearest the click within the halo and
// flashes it.
func (s *ShapeCanvas) selectNearest(ev MouseEvent) {
	id, ok := s.sfc.Closest(ev.Pos, s.cfg.Halo)
	if !ok {
		log.Printf("shape canvas: nothing within %dpx of %v to select", s.cfg.Halo, ev.Pos)
		return
	}
	s.selected = id
	s.flash(id)
	s.reportCenter(id)
}

// unselect reverts the selection to the most recently created shape and
// flashes it.
func (s *ShapeCanvas) unselect(MouseEvent) {
	last, ok := s.reg.Last()
	if !ok {
		log.Printf("shape canvas: unselect with no shapes")
		s.selected = ""
		return
	}
	s.selected = last.ID
	s.flash(last.ID)
	s.reportCenter(last.ID)
}

// toggleMulti adds the nearest shape to the multi-selection, or removes it
// and restores its outline. The single selection is left untouched.
func (s *ShapeCanvas) toggleMulti(ev MouseEvent) {
	id, ok := s.sfc.Closest(ev.Pos, s.cfg.Halo)
	if !ok {
		log.Printf("shape canvas: nothing within %dpx of %v to multi-select", s.cfg.Halo, ev.Pos)
		return
	}
	for i, m := range s.multi {
		if m == id {
			s.multi = append(s.multi[:i], s.multi[i+1:]...)
			if sh, ok := s.reg.ByID(id); ok {
				s.sfc.SetOutline(id, sh.Outline)
			}
			return
		}
	}
	s.multi = append(s.multi, id)
	s.sfc.SetOutline(id, s.cfg.MultiSelect)
}

// targets returns the ids an editing operation applies to: the whole
// multi-selection when present, otherwise the single selection.
func (s *ShapeCanvas) targets() []surface.ID {
	if len(s.multi) > 0 {
		return s.multi
	}
	if s.selected != "" && s.sfc.Exists(s.selected) {
		return []surface.ID{s.selected}
	}
	return nil
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// drag moves the targets one pixel per motion step toward the pointer. The
// constrained variant follows only the dominant axis, with a one pixel
// hysteresis band in which nothing moves.
func (s *ShapeCanvas) drag(ev MouseEvent, constrain bool) {
	ids := s.targets()
	if len(ids) == 0 {
		log.Printf("shape canvas: drag with no selection")
		return
	}
	dx := sign(ev.Pos.X - s.prev.X)
	dy := sign(ev.Pos.Y - s.prev.Y)
	if constrain {
		ax := abs(ev.Pos.X - s.prev.X)
		ay := abs(ev.Pos.Y - s.prev.Y)
		switch {
		case ax > ay+1:
			dy = 0
		case ay > ax+1:
			dx = 0
		default:
			dx, dy = 0, 0
		}
	}
	s.prev = ev.Pos
	if dx == 0 && dy == 0 {
		return
	}
	s.moveTargets(ids, dx, dy)
}

// nudge moves the targets by exactly one pixel.
func (s *ShapeCanvas) nudge(dx, dy int) {
	ids := s.targets()
	if len(ids) == 0 {
		log.Printf("shape canvas: nudge with no selection")
		return
	}
	s.moveTargets(ids, dx, dy)
}

func (s *ShapeCanvas) moveTargets(ids []surface.ID, dx, dy int) {
	for _, id := range ids {
		s.sfc.MoveBy(id, dx, dy)
		if sh, ok := s.reg.ByID(id); ok {
			sh.Center = sh.Center.Add(image.Pt(dx, dy))
		}
	}
	// The primary shape's centre is reported: the last multi member when a
	// multi-selection is being dragged, otherwise the single selection.
	primary := s.selected
	if len(s.multi) > 0 {
		primary = s.multi[len(s.multi)-1]
	}
	if primary != "" && s.sfc.Exists(primary) {
		s.reportCenter(primary)
	}
}

// resize scales each target about its own centre: upward motion grows by
// 1%, downward motion shrinks by 1%. Motion with no vertical component
// leaves the targets alone.
func (s *ShapeCanvas) resize(ev MouseEvent) {
	ids := s.targets()
	if len(ids) == 0 {
		log.Printf("shape canvas: resize with no selection")
		return
	}
	var factor float64
	switch {
	case ev.Pos.Y < s.motion.Y:
		factor = 1.01
	case ev.Pos.Y > s.motion.Y:
		factor = 0.99
	default:
		s.motion = ev.Pos
		return
	}
	for _, id := range ids {
		if sh, ok := s.reg.ByID(id); ok {
			s.sfc.Scale(id, sh.Center, factor, factor)
		}
	}
	s.motion = ev.Pos
}

// nudgeSize grows (delta 1) or shrinks (delta -1) each target by one pixel
// per edge, keeping its centre fixed.
func (s *ShapeCanvas) nudgeSize(delta int) {
	ids := s.targets()
	if len(ids) == 0 {
		log.Printf("shape canvas: size nudge with no selection")
		return
	}
	for _, id := range ids {
		if r, ok := s.sfc.Bounds(id); ok {
			s.sfc.SetBounds(id, r.Inset(-delta))
		}
	}
}

// duplicate copies the selected shape at a fixed offset. If the offset lands
// exactly on the last-created shape's centre it is doubled so the copy stays
// visible. Like create, duplication drops the multi-selection.
func (s *ShapeCanvas) duplicate() {
	sh, ok := s.reg.ByID(s.selected)
	if !ok {
		log.Printf("shape canvas: duplicate with no selection")
		return
	}
	c := sh.Center.Add(s.cfg.DuplicateOffset)
	if last, ok := s.reg.Last(); ok && last.Center == c {
		c = c.Add(s.cfg.DuplicateOffset)
	}
	id := s.createAt(c, sh.Outline)
	s.clearMulti()
	s.selected = id
	s.reportCenter(id)
}

// deleteSelected removes the multi-selection when present, otherwise the
// selected shape, then falls back to the most recent survivor as selection.
func (s *ShapeCanvas) deleteSelected() {
	if len(s.multi) > 0 {
		for _, id := range s.multi {
			s.sfc.Delete(id)
			s.reg.Remove(id)
		}
		s.multi = nil
	} else {
		if s.selected == "" || !s.sfc.Exists(s.selected) {
			log.Printf("shape canvas: delete with no selection")
			return
		}
		s.sfc.Delete(s.selected)
		s.reg.Remove(s.selected)
	}
	if last, ok := s.reg.Last(); ok {
		s.selected = last.ID
		s.reportCenter(last.ID)
	} else {
		s.selected = ""
		s.sfc.ClearText(centerReadout)
	}
}

// releaseMulti empties the multi-selection, restoring every member's
// outline, and reverts the selection to the most recently created shape.
func (s *ShapeCanvas) releaseMulti() {
	if len(s.multi) == 0 {
		log.Printf("shape canvas: release with no multi-selection")
		return
	}
	s.clearMulti()
	if last, ok := s.reg.Last(); ok {
		s.selected = last.ID
		s.reportCenter(last.ID)
	}
}

func (s *ShapeCanvas) clearMulti() {
	for _, id := range s.multi {
		if sh, ok := s.reg.ByID(id); ok {
			s.sfc.SetOutline(id, sh.Outline)
		}
	}
	s.multi = nil
}

// recolorNearest paints the shape nearest the last pointer position black.
func (s *ShapeCanvas) recolorNearest() {
	id, ok := s.sfc.Closest(s.lastPointer, s.cfg.Halo)
	if !ok {
		log.Printf("shape canvas: nothing within %dpx of %v to recolor", s.cfg.Halo, s.lastPointer)
		return
	}
	black := color.RGBA{A: 255}
	s.sfc.SetOutline(id, black)
	if sh, ok := s.reg.ByID(id); ok {
		sh.Outline = black
	}
}

// reveal re-flashes the selected shape so it can be spotted.
func (s *ShapeCanvas) reveal() {
	if s.selected == "" || !s.sfc.Exists(s.selected) {
		log.Printf("shape canvas: reveal with no selection")
		return
	}
	s.flash(s.selected)
}

// flash fills the shape with the highlight color and schedules the fill to
// clear. The shape may be deleted before the timer fires, so existence is
// re-checked at callback time.
func (s *ShapeCanvas) flash(id surface.ID) {
	s.sfc.SetFill(id, s.cfg.HighlightFill)
	s.sfc.After(s.cfg.FlashDuration, func() {
		if s.sfc.Exists(id) {
			s.sfc.ClearFill(id)
		}
	})
}

// reportCenter shows the shape's centre at the canvas upper-left, in the
// shape's own outline color.
func (s *ShapeCanvas) reportCenter(id surface.ID) {
	sh, ok := s.reg.ByID(id)
	if !ok {
		return
	}
	s.sfc.SetText(centerReadout, image.Pt(10, 12),
		fmt.Sprintf("%d,%d", sh.Center.X, sh.Center.Y), sh.Outline)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
