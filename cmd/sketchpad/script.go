package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"
)

// Gap between scripted ops on the synthetic clock. Large enough that two
// separate click ops never merge into a double-click.
const interOpDelay = 500 * time.Millisecond

// Gap between the two presses a dblclick op emits.
const doublePressDelay = 100 * time.Millisecond

type op struct {
	kind string // click, dblclick, rclick, press, release, move, key, wait
	mods key.Modifiers
	pos  image.Point
	ev   key.Event
	d    time.Duration
}

type scriptCmd struct {
	*root
	fs        *flag.FlagSet
	output    string
	shape     string
	lineColor string
	ops       []op
}

func parseScriptCmd(args []string, r *root) (*scriptCmd, error) {
	fs := flag.NewFlagSet("script", flag.ExitOnError)
	c := &scriptCmd{root: r, fs: fs}
	fs.StringVar(&c.output, "output", "", "path of the PNG to write (required)")
	fs.StringVar(&c.shape, "shape", "oval", "shape kind for the shape canvas (oval, rect, arc)")
	fs.StringVar(&c.lineColor, "line-color", "", "ink color (name or #RRGGBB); overrides config and theme")
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if c.output == "" {
		return nil, fmt.Errorf("output file is required")
	}
	ops, err := parseOps(fs.Args())
	if err != nil {
		return nil, err
	}
	if len(ops) == 0 {
		return nil, &UsageError{of: c}
	}
	c.ops = ops
	return c, nil
}

func (c *scriptCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

var pointerOps = map[string]bool{
	"click": true, "dblclick": true, "rclick": true,
	"press": true, "release": true, "move": true,
}

// parseOps turns script tokens into ops. Pointer ops may carry modifier
// prefixes joined with '+', e.g. ctrl+click or shift+move.
func parseOps(args []string) ([]op, error) {
	var ops []op
	for i := 0; i < len(args); i++ {
		token := strings.ToLower(args[i])

		parts := strings.Split(token, "+")
		base := parts[len(parts)-1]
		mods, err := parseMods(parts[:len(parts)-1])
		if err != nil {
			return nil, fmt.Errorf("op %q: %w", token, err)
		}

		switch {
		case pointerOps[base]:
			if i+2 >= len(args) {
				return nil, fmt.Errorf("op %q needs X and Y arguments", token)
			}
			x, err := strconv.Atoi(args[i+1])
			if err != nil {
				return nil, fmt.Errorf("op %q: invalid X %q", token, args[i+1])
			}
			y, err := strconv.Atoi(args[i+2])
			if err != nil {
				return nil, fmt.Errorf("op %q: invalid Y %q", token, args[i+2])
			}
			i += 2
			ops = append(ops, op{kind: base, mods: mods, pos: image.Pt(x, y)})
		case base == "key" && len(parts) == 1:
			if i+1 >= len(args) {
				return nil, fmt.Errorf("op key needs a chord argument")
			}
			ev, err := parseChord(args[i+1])
			if err != nil {
				return nil, err
			}
			i++
			ops = append(ops, op{kind: "key", ev: ev})
		case base == "wait" && len(parts) == 1:
			if i+1 >= len(args) {
				return nil, fmt.Errorf("op wait needs a millisecond argument")
			}
			ms, err := strconv.Atoi(args[i+1])
			if err != nil || ms < 0 {
				return nil, fmt.Errorf("op wait: invalid duration %q", args[i+1])
			}
			i++
			ops = append(ops, op{kind: "wait", d: time.Duration(ms) * time.Millisecond})
		default:
			return nil, fmt.Errorf("unknown op %q", token)
		}
	}
	return ops, nil
}

func parseMods(names []string) (key.Modifiers, error) {
	var mods key.Modifiers
	for _, n := range names {
		switch n {
		case "ctrl", "control":
			mods |= key.ModControl
		case "shift":
			mods |= key.ModShift
		case "alt":
			mods |= key.ModAlt
		default:
			return 0, fmt.Errorf("unknown modifier %q", n)
		}
	}
	return mods, nil
}

// parseChord parses a key chord such as ctrl+d, shift+up or alt+b into a
// key press event.
func parseChord(s string) (key.Event, error) {
	parts := strings.Split(strings.ToLower(s), "+")
	mods, err := parseMods(parts[:len(parts)-1])
	if err != nil {
		return key.Event{}, fmt.Errorf("chord %q: %w", s, err)
	}
	ev := key.Event{Modifiers: mods, Direction: key.DirPress}
	switch last := parts[len(parts)-1]; last {
	case "up":
		ev.Rune = -1
		ev.Code = key.CodeUpArrow
	case "down":
		ev.Rune = -1
		ev.Code = key.CodeDownArrow
	case "left":
		ev.Rune = -1
		ev.Code = key.CodeLeftArrow
	case "right":
		ev.Rune = -1
		ev.Code = key.CodeRightArrow
	default:
		if len([]rune(last)) != 1 {
			return key.Event{}, fmt.Errorf("chord %q: unknown key %q", s, last)
		}
		ev.Rune = []rune(last)[0]
	}
	return ev, nil
}

func (c *scriptCmd) Run() error {
	kind, err := parseShapeKind(c.shape)
	if err != nil {
		return err
	}
	cc, err := canvasConfig(c.config, c.activeTheme, c.lineColor)
	if err != nil {
		return fmt.Errorf("failed to resolve ink color: %w", err)
	}
	b := newSketchBoard(cc, c.activeTheme.Background, kind)

	// Time is synthetic: the board's double-click clock and the surfaces'
	// flash timers both run off the script's schedule.
	now := time.Unix(0, 0)
	b.SetClock(func() time.Time { return now })
	step := func(d time.Duration) {
		now = now.Add(d)
		b.advance(d)
	}

	send := func(pos image.Point, btn mouse.Button, dir mouse.Direction, mods key.Modifiers) {
		b.HandleMouse(mouse.Event{
			X:         float32(pos.X),
			Y:         float32(pos.Y),
			Button:    btn,
			Direction: dir,
			Modifiers: mods,
		})
	}

	for _, o := range c.ops {
		step(interOpDelay)
		switch o.kind {
		case "move":
			send(o.pos, mouse.ButtonNone, mouse.DirNone, o.mods)
		case "press":
			send(o.pos, mouse.ButtonLeft, mouse.DirPress, o.mods)
		case "release":
			send(o.pos, mouse.ButtonLeft, mouse.DirRelease, o.mods)
		case "click":
			send(o.pos, mouse.ButtonLeft, mouse.DirPress, o.mods)
			send(o.pos, mouse.ButtonLeft, mouse.DirRelease, o.mods)
		case "rclick":
			send(o.pos, mouse.ButtonRight, mouse.DirPress, o.mods)
			send(o.pos, mouse.ButtonRight, mouse.DirRelease, o.mods)
		case "dblclick":
			send(o.pos, mouse.ButtonLeft, mouse.DirPress, o.mods)
			send(o.pos, mouse.ButtonLeft, mouse.DirRelease, o.mods)
			step(doublePressDelay)
			send(o.pos, mouse.ButtonLeft, mouse.DirPress, o.mods)
			send(o.pos, mouse.ButtonLeft, mouse.DirRelease, o.mods)
		case "key":
			b.HandleKey(o.ev)
		case "wait":
			step(o.d)
		}
	}

	f, err := os.Create(c.output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, b.Image()); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
