package canvas

import (
	"image"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"
)

// MouseEvent is a pointer event in canvas-local coordinates. For motion
// events (DirNone) Button carries the button currently held, or ButtonNone.
// Double marks the second press of a double-click; the router delivers that
// press as Double only, so handlers never see it twice.
type MouseEvent struct {
	Pos    image.Point
	Button mouse.Button
	Dir    mouse.Direction
	Mods   key.Modifiers
	Double bool
}

// gesture is the lookup key for mouse binding tables. Bindings match
// exactly: button, direction, normalized modifiers and double-click flag
// all have to line up.
type gesture struct {
	Button mouse.Button
	Dir    mouse.Direction
	Mods   key.Modifiers
	Double bool
}

type mouseBindings map[gesture]func(MouseEvent)

// behaviorMods are the modifiers that distinguish gestures. Lock-style
// modifiers (caps lock arrives as an extra bit on some platforms) are
// masked out so they never change what a chord means.
const behaviorMods = key.ModShift | key.ModControl | key.ModAlt

func normalizeMods(m key.Modifiers) key.Modifiers {
	return m & behaviorMods
}

// lookup finds the handler for ev, if any. Motion gestures may be bound
// with ButtonNone to match regardless of which button is held.
func (b mouseBindings) lookup(ev MouseEvent) (func(MouseEvent), bool) {
	g := gesture{
		Button: ev.Button,
		Dir:    ev.Dir,
		Mods:   normalizeMods(ev.Mods),
		Double: ev.Double,
	}
	if fn, ok := b[g]; ok {
		return fn, true
	}
	if ev.Dir == mouse.DirNone && ev.Button != mouse.ButtonNone {
		g.Button = mouse.ButtonNone
		if fn, ok := b[g]; ok {
			return fn, true
		}
	}
	return nil, false
}
