package canvas

import (
	"unicode"

	"golang.org/x/mobile/event/key"
)

// keyChord identifies a keyboard shortcut. Printable keys are identified by
// their lowercased rune with a zero code; non-printable keys (arrows) by
// their code with a zero rune. Modifiers are normalized before lookup so
// caps lock never changes which chord an event matches.
type keyChord struct {
	Mods key.Modifiers
	Rune rune
	Code key.Code
}

type keyBindings map[keyChord]func()

// chordFor maps an incoming key event to its chord.
func chordFor(ev key.Event) keyChord {
	c := keyChord{Mods: normalizeMods(ev.Modifiers)}
	if ev.Rune > 0 {
		c.Rune = unicode.ToLower(ev.Rune)
	} else {
		c.Code = ev.Code
	}
	return c
}
