package main

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"
	"time"

	"golang.org/x/image/colornames"

	"github.com/example/sketchpad/internal/board"
	"github.com/example/sketchpad/internal/canvas"
	"github.com/example/sketchpad/internal/config"
	"github.com/example/sketchpad/internal/surface"
	"github.com/example/sketchpad/internal/theme"
)

// parseColor accepts SVG 1.1 color names and #RRGGBB / #RRGGBBAA hex.
func parseColor(s string) (color.RGBA, error) {
	spec := strings.ToLower(strings.TrimSpace(s))
	if spec == "" {
		return color.RGBA{}, fmt.Errorf("color cannot be empty")
	}
	if c, ok := colornames.Map[spec]; ok {
		return c, nil
	}
	if strings.HasPrefix(spec, "#") {
		hex := strings.TrimPrefix(spec, "#")
		switch len(hex) {
		case 6:
			v, err := strconv.ParseUint(hex, 16, 32)
			if err != nil {
				return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
			}
			return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
		case 8:
			v, err := strconv.ParseUint(hex, 16, 32)
			if err != nil {
				return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
			}
			return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
		}
	}
	return color.RGBA{}, fmt.Errorf("unknown color %q", s)
}

func parseShapeKind(s string) (surface.Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "oval":
		return surface.Oval, nil
	case "rect", "rectangle":
		return surface.Rectangle, nil
	case "arc":
		return surface.Arc, nil
	}
	return surface.Oval, fmt.Errorf("unknown shape kind %q (want oval, rect or arc)", s)
}

// canvasConfig folds the file config and active theme into the canvas
// tunables. lineColor may be empty, in which case the config's line color
// applies, falling back to the theme's outline color.
func canvasConfig(cfg *config.Config, th *theme.Theme, lineColor string) (canvas.Config, error) {
	cc := canvas.DefaultConfig()
	cc.Width = cfg.Width
	cc.Height = cfg.Height
	cc.LineWidth = cfg.Draw.LineWidth
	cc.Halo = cfg.Shapes.Halo
	cc.FlashDuration = time.Duration(cfg.Shapes.FlashMs) * time.Millisecond
	cc.HighlightFill = th.Highlight
	cc.MultiSelect = th.MultiSelect
	cc.ReadoutColor = th.Readout
	cc.OvalHalf = image.Pt(cfg.Shapes.OvalWidth/2, cfg.Shapes.OvalHeight/2)
	cc.RectHalf = image.Pt(cfg.Shapes.RectWidth/2, cfg.Shapes.RectHeight/2)
	cc.ArcHalf = image.Pt(cfg.Shapes.ArcWidth/2, cfg.Shapes.ArcHeight/2)

	spec := lineColor
	if spec == "" {
		spec = cfg.Draw.LineColor
	}
	if spec == "" {
		cc.LineColor = th.Outline
		return cc, nil
	}
	col, err := parseColor(spec)
	if err != nil {
		return cc, err
	}
	cc.LineColor = col
	return cc, nil
}

// sketchBoard is the standard layout both the interactive window and the
// script runner drive: freehand, polyline and shape canvases side by side.
type sketchBoard struct {
	*board.Board
	surfaces []*surface.Image
}

func newSketchBoard(cc canvas.Config, bg color.RGBA, kind surface.Kind) *sketchBoard {
	brk := canvas.NewBroker()
	b := &sketchBoard{Board: board.New(brk)}
	sz := image.Pt(cc.Width, cc.Height)

	names := []string{"freehand", "lines", "shapes"}
	for i, name := range names {
		sfc := surface.NewImage(cc.Width, cc.Height, bg)
		b.surfaces = append(b.surfaces, sfc)
		var c board.Canvas
		switch name {
		case "freehand":
			c = canvas.NewDrawCanvas(sfc, cc, canvas.Freehand, brk)
		case "lines":
			c = canvas.NewDrawCanvas(sfc, cc, canvas.Polyline, brk)
		default:
			c = canvas.NewShapeCanvas(sfc, cc, kind)
		}
		b.AddPanel(name, c, image.Pt(i*cc.Width, 0), sz)
	}
	return b
}

// advance moves every surface's logical clock forward.
func (b *sketchBoard) advance(d time.Duration) {
	for _, s := range b.surfaces {
		s.Advance(d)
	}
}
