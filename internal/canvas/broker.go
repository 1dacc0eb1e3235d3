package canvas

import (
	"golang.org/x/mobile/event/key"
)

// Broker fans erase commands out to drawing canvases. Canvases register at
// construction; commands address every registered canvas of the matching
// mode, so sibling canvases in the same mode erase together.
type Broker struct {
	canvases []*DrawCanvas
}

func NewBroker() *Broker { return &Broker{} }

func (b *Broker) register(d *DrawCanvas) {
	b.canvases = append(b.canvases, d)
}

// EraseLast erases the most recently completed run on every canvas of the
// given mode.
func (b *Broker) EraseLast(mode Mode) {
	for _, c := range b.canvases {
		if c.Mode() == mode {
			c.EraseLastRun()
		}
	}
}

// EraseAll clears every canvas of the given mode.
func (b *Broker) EraseAll(mode Mode) {
	for _, c := range b.canvases {
		if c.Mode() == mode {
			c.EraseAll()
		}
	}
}

// HandleKey consumes the erase chords and reports whether the event was one
// of them.
func (b *Broker) HandleKey(ev key.Event) bool {
	if ev.Direction != key.DirPress {
		return false
	}
	switch chordFor(ev) {
	case keyChord{Mods: key.ModControl, Rune: 'f'}:
		b.EraseLast(Freehand)
	case keyChord{Mods: key.ModControl, Rune: 'l'}:
		b.EraseLast(Polyline)
	case keyChord{Mods: key.ModControl | key.ModShift, Rune: 'f'}:
		b.EraseAll(Freehand)
	case keyChord{Mods: key.ModControl | key.ModShift, Rune: 'l'}:
		b.EraseAll(Polyline)
	default:
		return false
	}
	return true
}
