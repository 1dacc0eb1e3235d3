package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"log"
	"time"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/sketchpad/internal/clipboard"
)

// deferredFunc carries a surface timer callback back onto the event loop.
type deferredFunc struct{ fn func() }

type boardCmd struct {
	*root
	fs        *flag.FlagSet
	shape     string
	lineColor string
}

func parseBoardCmd(args []string, r *root) (*boardCmd, error) {
	fs := flag.NewFlagSet("board", flag.ExitOnError)
	c := &boardCmd{root: r, fs: fs}
	fs.StringVar(&c.shape, "shape", "oval", "shape kind for the shape canvas (oval, rect, arc)")
	fs.StringVar(&c.lineColor, "line-color", "", "ink color (name or #RRGGBB); overrides config and theme")
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (c *boardCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *boardCmd) Run() error {
	kind, err := parseShapeKind(c.shape)
	if err != nil {
		return err
	}
	cc, err := canvasConfig(c.config, c.activeTheme, c.lineColor)
	if err != nil {
		return fmt.Errorf("failed to resolve ink color: %w", err)
	}
	b := newSketchBoard(cc, c.activeTheme.Background, kind)
	bounds := b.Bounds()

	driver.Main(func(s screen.Screen) {
		w, err := s.NewWindow(&screen.NewWindowOptions{
			Width:  bounds.Dx(),
			Height: bounds.Dy(),
			Title:  "sketchpad",
		})
		if err != nil {
			log.Printf("failed to create window: %v", err)
			return
		}
		defer w.Release()

		// Surface timers become real timers posted back onto this loop.
		for _, sfc := range b.surfaces {
			sfc.Defer = func(d time.Duration, fn func()) {
				time.AfterFunc(d, func() { w.Send(deferredFunc{fn: fn}) })
			}
		}

		for {
			switch e := w.NextEvent().(type) {
			case lifecycle.Event:
				if e.To == lifecycle.StageDead {
					return
				}
			case deferredFunc:
				e.fn()
				w.Send(paint.Event{})
			case mouse.Event:
				b.HandleMouse(e)
				w.Send(paint.Event{})
			case key.Event:
				if e.Direction == key.DirPress && e.Code == key.CodeEscape {
					return
				}
				if e.Direction == key.DirPress && e.Modifiers == key.ModControl && e.Rune == 'c' {
					if err := clipboard.WriteImage(b.Image()); err != nil {
						log.Printf("copy: %v", err)
					}
					continue
				}
				b.HandleKey(e)
				w.Send(paint.Event{})
			case size.Event:
				w.Send(paint.Event{})
			case paint.Event:
				buf, err := s.NewBuffer(bounds.Size())
				if err != nil {
					log.Printf("failed to allocate buffer: %v", err)
					continue
				}
				draw.Draw(buf.RGBA(), buf.Bounds(), b.Image(), image.Point{}, draw.Src)
				w.Upload(image.Point{}, buf, buf.Bounds())
				buf.Release()
				w.Publish()
			case error:
				log.Printf("window event error: %v", e)
			}
		}
	})
	return nil
}
