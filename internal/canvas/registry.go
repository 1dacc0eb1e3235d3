package canvas

import (
	"image"
	"image/color"

	"github.com/example/sketchpad/internal/surface"
)

// Shape is the registry's record of one shape on the surface: its primitive
// id, kind, authoritative centre and outline color. Every move applies the
// same integer delta to the primitive and the centre, and resizes anchor at
// the centre, so the two never drift apart.
type Shape struct {
	ID      surface.ID
	Kind    surface.Kind
	Center  image.Point
	Outline color.RGBA
}

// Registry keeps every shape ever created on a canvas, in creation order.
type Registry struct {
	order []*Shape
	byID  map[surface.ID]*Shape
}

func NewRegistry() *Registry {
	return &Registry{byID: make(map[surface.ID]*Shape)}
}

// Add appends a new shape record.
func (r *Registry) Add(s *Shape) {
	r.order = append(r.order, s)
	r.byID[s.ID] = s
}

// ByID looks a shape up by primitive id.
func (r *Registry) ByID(id surface.ID) (*Shape, bool) {
	s, ok := r.byID[id]
	return s, ok
}

// Remove deletes the record for id, if present.
func (r *Registry) Remove(id surface.ID) {
	if _, ok := r.byID[id]; !ok {
		return
	}
	delete(r.byID, id)
	for i, s := range r.order {
		if s.ID == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Last returns the most recently created shape still registered.
func (r *Registry) Last() (*Shape, bool) {
	if len(r.order) == 0 {
		return nil, false
	}
	return r.order[len(r.order)-1], true
}

// Len reports how many shapes are registered.
func (r *Registry) Len() int { return len(r.order) }

// Shapes returns the records in creation order. The slice is shared; callers
// must not modify it.
func (r *Registry) Shapes() []*Shape { return r.order }
