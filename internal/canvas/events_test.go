package canvas

import (
	"image"
	"testing"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"
)

func TestNormalizeModsMasksLockBits(t *testing.T) {
	tests := []struct {
		name string
		in   key.Modifiers
		want key.Modifiers
	}{
		{"plain", 0, 0},
		{"shift", key.ModShift, key.ModShift},
		{"ctrl+alt", key.ModControl | key.ModAlt, key.ModControl | key.ModAlt},
		{"meta stripped", key.ModMeta | key.ModControl, key.ModControl},
		{"unknown high bits stripped", key.Modifiers(1<<7) | key.ModShift, key.ModShift},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeMods(tt.in); got != tt.want {
				t.Errorf("normalizeMods(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLookupExactMatch(t *testing.T) {
	called := ""
	b := mouseBindings{
		{Button: mouse.ButtonLeft, Dir: mouse.DirPress}:                       func(MouseEvent) { called = "plain" },
		{Button: mouse.ButtonLeft, Dir: mouse.DirPress, Mods: key.ModControl}: func(MouseEvent) { called = "ctrl" },
	}
	ev := MouseEvent{Pos: image.Pt(1, 1), Button: mouse.ButtonLeft, Dir: mouse.DirPress, Mods: key.ModControl}
	fn, ok := b.lookup(ev)
	if !ok {
		t.Fatal("no handler found")
	}
	fn(ev)
	if called != "ctrl" {
		t.Errorf("dispatched to %q", called)
	}
	ev.Mods |= key.ModMeta // lock-style contamination must not change the match
	if fn, ok = b.lookup(ev); !ok {
		t.Fatal("contaminated modifiers broke the match")
	}
	fn(ev)
	if called != "ctrl" {
		t.Errorf("dispatched to %q", called)
	}
}

func TestLookupMotionFallsBackToButtonNone(t *testing.T) {
	called := false
	b := mouseBindings{
		{Button: mouse.ButtonNone, Dir: mouse.DirNone, Mods: key.ModShift}: func(MouseEvent) { called = true },
	}
	// Motion with the left button held still matches the ButtonNone binding.
	ev := MouseEvent{Button: mouse.ButtonLeft, Dir: mouse.DirNone, Mods: key.ModShift}
	fn, ok := b.lookup(ev)
	if !ok {
		t.Fatal("held-button motion did not fall back")
	}
	fn(ev)
	if !called {
		t.Error("handler not invoked")
	}
	// But a press never falls back.
	if _, ok := b.lookup(MouseEvent{Button: mouse.ButtonLeft, Dir: mouse.DirPress, Mods: key.ModShift}); ok {
		t.Error("press matched a motion binding")
	}
}

func TestChordForPrintableAndCode(t *testing.T) {
	c := chordFor(key.Event{Rune: 'D', Modifiers: key.ModControl})
	if c != (keyChord{Mods: key.ModControl, Rune: 'd'}) {
		t.Errorf("printable chord = %+v", c)
	}
	c = chordFor(key.Event{Rune: -1, Code: key.CodeUpArrow, Modifiers: key.ModShift})
	if c != (keyChord{Mods: key.ModShift, Code: key.CodeUpArrow}) {
		t.Errorf("code chord = %+v", c)
	}
}
