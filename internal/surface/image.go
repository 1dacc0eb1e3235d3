package surface

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/example/sketchpad/internal/render"
)

// Arc primitives cover the upper-left quarter of their ellipse.
const (
	arcStart  = 90.0
	arcExtent = 90.0
)

type primKind int

const (
	primLine primKind = iota
	primShape
)

// primitive coordinates are kept as floats so repeated fractional scaling
// accumulates instead of rounding away.
type primitive struct {
	id      ID
	kind    primKind
	shape   Kind
	x0, y0  float64
	x1, y1  float64
	outline color.RGBA
	fill    color.RGBA
	filled  bool
	width   int
}

type text struct {
	tag string
	pos image.Point
	str string
	col color.RGBA
}

type timer struct {
	due time.Duration
	fn  func()
}

// Image is a retained-mode surface rendering to an RGBA image on demand.
// It is not safe for concurrent use; callers drive it from a single event
// loop.
type Image struct {
	size  image.Point
	bg    color.RGBA
	prims []*primitive
	index map[ID]*primitive
	texts []*text

	// Defer, when set, takes over scheduling for After. The interactive
	// host points it at real timers that post back to the event loop;
	// when unset, timers fire from Advance on a logical clock.
	Defer func(d time.Duration, fn func())

	now    time.Duration
	timers []timer
}

// NewImage returns an empty surface of the given size and background color.
func NewImage(w, h int, bg color.RGBA) *Image {
	return &Image{
		size:  image.Pt(w, h),
		bg:    bg,
		index: make(map[ID]*primitive),
	}
}

// Size reports the surface dimensions.
func (s *Image) Size() image.Point { return s.size }

// Background reports the fill color used behind the primitives.
func (s *Image) Background() color.RGBA { return s.bg }

func (s *Image) add(p *primitive) ID {
	p.id = ID(uuid.NewString())
	s.prims = append(s.prims, p)
	s.index[p.id] = p
	return p.id
}

func (s *Image) CreateLine(a, b image.Point, outline color.RGBA, width int) ID {
	return s.add(&primitive{
		kind:    primLine,
		x0:      float64(a.X),
		y0:      float64(a.Y),
		x1:      float64(b.X),
		y1:      float64(b.Y),
		outline: outline,
		width:   width,
	})
}

func (s *Image) CreateShape(k Kind, bounds image.Rectangle, outline color.RGBA, width int) ID {
	bounds = bounds.Canon()
	return s.add(&primitive{
		kind:    primShape,
		shape:   k,
		x0:      float64(bounds.Min.X),
		y0:      float64(bounds.Min.Y),
		x1:      float64(bounds.Max.X),
		y1:      float64(bounds.Max.Y),
		outline: outline,
		width:   width,
	})
}

func (s *Image) Delete(id ID) {
	if _, ok := s.index[id]; !ok {
		return
	}
	delete(s.index, id)
	for i, p := range s.prims {
		if p.id == id {
			s.prims = append(s.prims[:i], s.prims[i+1:]...)
			break
		}
	}
}

func (s *Image) DeleteAll() {
	s.prims = nil
	s.index = make(map[ID]*primitive)
}

func (s *Image) Exists(id ID) bool {
	_, ok := s.index[id]
	return ok
}

// IDs returns every primitive id in z-order, bottom first.
func (s *Image) IDs() []ID {
	out := make([]ID, len(s.prims))
	for i, p := range s.prims {
		out[i] = p.id
	}
	return out
}

func (s *Image) MoveBy(id ID, dx, dy int) {
	p, ok := s.index[id]
	if !ok {
		return
	}
	p.x0 += float64(dx)
	p.y0 += float64(dy)
	p.x1 += float64(dx)
	p.y1 += float64(dy)
}

func (s *Image) Bounds(id ID) (image.Rectangle, bool) {
	p, ok := s.index[id]
	if !ok {
		return image.Rectangle{}, false
	}
	return p.rect(), true
}

func (s *Image) SetBounds(id ID, r image.Rectangle) {
	p, ok := s.index[id]
	if !ok {
		return
	}
	r = r.Canon()
	p.x0 = float64(r.Min.X)
	p.y0 = float64(r.Min.Y)
	p.x1 = float64(r.Max.X)
	p.y1 = float64(r.Max.Y)
}

func (s *Image) Scale(id ID, anchor image.Point, fx, fy float64) {
	p, ok := s.index[id]
	if !ok {
		return
	}
	ax := float64(anchor.X)
	ay := float64(anchor.Y)
	p.x0 = ax + (p.x0-ax)*fx
	p.x1 = ax + (p.x1-ax)*fx
	p.y0 = ay + (p.y0-ay)*fy
	p.y1 = ay + (p.y1-ay)*fy
}

func (s *Image) SetOutline(id ID, outline color.RGBA) {
	if p, ok := s.index[id]; ok {
		p.outline = outline
	}
}

func (s *Image) SetFill(id ID, fill color.RGBA) {
	if p, ok := s.index[id]; ok {
		p.fill = fill
		p.filled = true
	}
}

func (s *Image) ClearFill(id ID) {
	if p, ok := s.index[id]; ok {
		p.filled = false
	}
}

// Closest scans bottom to top so that of equally near primitives the topmost
// wins, and returns the nearest primitive within halo pixels of p.
func (s *Image) Closest(p image.Point, halo int) (ID, bool) {
	best := ID("")
	bestDist := math.Inf(1)
	for _, pr := range s.prims {
		d := pr.distance(p)
		if d <= float64(halo) && d <= bestDist {
			best = pr.id
			bestDist = d
		}
	}
	return best, best != ""
}

func (s *Image) SetText(tag string, p image.Point, str string, col color.RGBA) {
	for _, t := range s.texts {
		if t.tag == tag {
			t.pos = p
			t.str = str
			t.col = col
			return
		}
	}
	s.texts = append(s.texts, &text{tag: tag, pos: p, str: str, col: col})
}

func (s *Image) ClearText(tag string) {
	for i, t := range s.texts {
		if t.tag == tag {
			s.texts = append(s.texts[:i], s.texts[i+1:]...)
			return
		}
	}
}

// Text reports the current string for a readout tag, if present.
func (s *Image) Text(tag string) (string, bool) {
	for _, t := range s.texts {
		if t.tag == tag {
			return t.str, true
		}
	}
	return "", false
}

func (s *Image) After(d time.Duration, fn func()) {
	if s.Defer != nil {
		s.Defer(d, fn)
		return
	}
	s.timers = append(s.timers, timer{due: s.now + d, fn: fn})
}

// Advance moves the logical clock forward and fires any timers that come due,
// in the order they were scheduled. Callbacks may schedule further timers.
func (s *Image) Advance(d time.Duration) {
	s.now += d
	for {
		fired := false
		for i, t := range s.timers {
			if t.due <= s.now {
				s.timers = append(s.timers[:i], s.timers[i+1:]...)
				t.fn()
				fired = true
				break
			}
		}
		if !fired {
			return
		}
	}
}

// Render paints the surface into dst with the top-left corner at offset.
func (s *Image) Render(dst *image.RGBA, offset image.Point) {
	render.FillRect(dst, image.Rectangle{Min: offset, Max: offset.Add(s.size)}, s.bg)
	for _, p := range s.prims {
		p.render(dst, offset)
	}
	for _, t := range s.texts {
		w := render.TextWidth(t.str)
		render.Text(dst, offset.X+t.pos.X-w/2, offset.Y+t.pos.Y-6, t.str, t.col)
	}
}

// Image renders the surface into a fresh RGBA image.
func (s *Image) Image() *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, s.size.X, s.size.Y))
	s.Render(dst, image.Point{})
	return dst
}

func (p *primitive) rect() image.Rectangle {
	r := image.Rect(
		int(math.Round(p.x0)), int(math.Round(p.y0)),
		int(math.Round(p.x1)), int(math.Round(p.y1)),
	)
	return r.Canon()
}

func (p *primitive) render(dst *image.RGBA, offset image.Point) {
	r := p.rect().Add(offset)
	switch p.kind {
	case primLine:
		x0 := int(math.Round(p.x0)) + offset.X
		y0 := int(math.Round(p.y0)) + offset.Y
		x1 := int(math.Round(p.x1)) + offset.X
		y1 := int(math.Round(p.y1)) + offset.Y
		render.Line(dst, x0, y0, x1, y1, p.outline, p.width)
	case primShape:
		cx := (r.Min.X + r.Max.X) / 2
		cy := (r.Min.Y + r.Max.Y) / 2
		rx := r.Dx() / 2
		ry := r.Dy() / 2
		switch p.shape {
		case Oval:
			if p.filled {
				render.FillEllipse(dst, cx, cy, rx, ry, p.fill)
			}
			render.Ellipse(dst, cx, cy, rx, ry, p.outline, p.width)
		case Rectangle:
			if p.filled {
				render.FillRect(dst, r, p.fill)
			}
			render.Rect(dst, r, p.outline, p.width)
		case Arc:
			if p.filled {
				render.FillArc(dst, cx, cy, rx, ry, arcStart, arcExtent, p.fill)
			}
			render.Arc(dst, cx, cy, rx, ry, arcStart, arcExtent, p.outline, p.width)
		}
	}
}

// distance reports how far p is from the primitive, zero when inside it.
func (p *primitive) distance(pt image.Point) float64 {
	if p.kind == primLine {
		return segmentDistance(float64(pt.X), float64(pt.Y), p.x0, p.y0, p.x1, p.y1)
	}
	r := p.rect()
	dx := 0
	if pt.X < r.Min.X {
		dx = r.Min.X - pt.X
	} else if pt.X > r.Max.X {
		dx = pt.X - r.Max.X
	}
	dy := 0
	if pt.Y < r.Min.Y {
		dy = r.Min.Y - pt.Y
	} else if pt.Y > r.Max.Y {
		dy = pt.Y - r.Max.Y
	}
	return math.Hypot(float64(dx), float64(dy))
}

func segmentDistance(px, py, x0, y0, x1, y1 float64) float64 {
	dx := x1 - x0
	dy := y1 - y0
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(px-x0, py-y0)
	}
	t := ((px-x0)*dx + (py-y0)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return math.Hypot(px-(x0+t*dx), py-(y0+t*dy))
}
