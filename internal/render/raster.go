// Package render provides the raster primitives the drawing surface is
// composed from: lines, rectangles, ellipses, quarter arcs and text, all
// drawn directly onto an *image.RGBA.
package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

func setThickPixel(img *image.RGBA, x, y, thick int, col color.Color) {
	r := thick / 2
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			px := x + dx
			py := y + dy
			if image.Pt(px, py).In(img.Bounds()) {
				img.Set(px, py, col)
			}
		}
	}
}

// Line draws a straight segment from (x0,y0) to (x1,y1) using Bresenham's
// algorithm, widened to thick pixels.
func Line(img *image.RGBA, x0, y0, x1, y1 int, col color.Color, thick int) {
	if thick < 1 {
		thick = 1
	}
	dx := math.Abs(float64(x1 - x0))
	dy := math.Abs(float64(y1 - y0))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		setThickPixel(img, x0, y0, thick, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Rect outlines rect with thick edges.
func Rect(img *image.RGBA, rect image.Rectangle, col color.Color, thick int) {
	Line(img, rect.Min.X, rect.Min.Y, rect.Max.X-1, rect.Min.Y, col, thick)
	Line(img, rect.Max.X-1, rect.Min.Y, rect.Max.X-1, rect.Max.Y-1, col, thick)
	Line(img, rect.Max.X-1, rect.Max.Y-1, rect.Min.X, rect.Max.Y-1, col, thick)
	Line(img, rect.Min.X, rect.Max.Y-1, rect.Min.X, rect.Min.Y, col, thick)
}

// FillRect fills rect, clipped to the image bounds.
func FillRect(img *image.RGBA, rect image.Rectangle, col color.Color) {
	rect = rect.Intersect(img.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			img.Set(x, y, col)
		}
	}
}

// Ellipse outlines the ellipse centred at (cx,cy) with radii rx, ry. It walks
// the perimeter in short segments so arbitrary radii render without gaps.
func Ellipse(img *image.RGBA, cx, cy, rx, ry int, col color.Color, thick int) {
	steps := perimeterSteps(rx, ry)
	var prevX, prevY int
	for i := 0; i <= steps; i++ {
		angle := 2 * math.Pi * float64(i) / float64(steps)
		x := cx + int(math.Cos(angle)*float64(rx))
		y := cy + int(math.Sin(angle)*float64(ry))
		if i > 0 {
			Line(img, prevX, prevY, x, y, col, thick)
		} else {
			setThickPixel(img, x, y, thick, col)
		}
		prevX, prevY = x, y
	}
}

// FillEllipse fills the ellipse centred at (cx,cy) with radii rx, ry.
func FillEllipse(img *image.RGBA, cx, cy, rx, ry int, col color.Color) {
	if rx <= 0 || ry <= 0 {
		return
	}
	for dy := -ry; dy <= ry; dy++ {
		span := int(float64(rx) * math.Sqrt(1.0-float64(dy*dy)/float64(ry*ry)))
		for dx := -span; dx <= span; dx++ {
			px := cx + dx
			py := cy + dy
			if image.Pt(px, py).In(img.Bounds()) {
				img.Set(px, py, col)
			}
		}
	}
}

// Arc draws the section of the ellipse perimeter starting at startDeg and
// sweeping extentDeg counter-clockwise. Angles are in degrees with 0 at the
// positive x axis and y pointing up, matching the usual canvas convention.
func Arc(img *image.RGBA, cx, cy, rx, ry int, startDeg, extentDeg float64, col color.Color, thick int) {
	steps := perimeterSteps(rx, ry)
	steps = int(float64(steps) * math.Abs(extentDeg) / 360)
	if steps < 4 {
		steps = 4
	}
	var prevX, prevY int
	for i := 0; i <= steps; i++ {
		angle := (startDeg + extentDeg*float64(i)/float64(steps)) * math.Pi / 180
		x := cx + int(math.Cos(angle)*float64(rx))
		y := cy - int(math.Sin(angle)*float64(ry))
		if i > 0 {
			Line(img, prevX, prevY, x, y, col, thick)
		} else {
			setThickPixel(img, x, y, thick, col)
		}
		prevX, prevY = x, y
	}
}

// FillArc fills the pie slice of the ellipse covered by the same angular
// range Arc outlines.
func FillArc(img *image.RGBA, cx, cy, rx, ry int, startDeg, extentDeg float64, col color.Color) {
	if rx <= 0 || ry <= 0 {
		return
	}
	lo := startDeg
	hi := startDeg + extentDeg
	if hi < lo {
		lo, hi = hi, lo
	}
	for dy := -ry; dy <= ry; dy++ {
		span := int(float64(rx) * math.Sqrt(1.0-float64(dy*dy)/float64(ry*ry)))
		for dx := -span; dx <= span; dx++ {
			deg := math.Atan2(float64(-dy), float64(dx)) * 180 / math.Pi
			if !angleWithin(deg, lo, hi) {
				continue
			}
			px := cx + dx
			py := cy + dy
			if image.Pt(px, py).In(img.Bounds()) {
				img.Set(px, py, col)
			}
		}
	}
}

func angleWithin(deg, lo, hi float64) bool {
	for deg < lo {
		deg += 360
	}
	for deg > hi && deg-360 >= lo {
		deg -= 360
	}
	return deg >= lo && deg <= hi
}

func perimeterSteps(rx, ry int) int {
	steps := int(math.Ceil(2 * math.Pi * math.Sqrt(float64(rx*rx+ry*ry))))
	if steps < 8 {
		steps = 8
	}
	return steps
}

// Text draws s with its baseline-left origin adjusted so the string's top-left
// corner sits at (x,y), using the fixed 7x13 face.
func Text(img *image.RGBA, x, y int, s string, col color.Color) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
	}
	d.Dot = fixed.P(x, y+face.Metrics().Ascent.Ceil())
	d.DrawString(s)
}

// TextWidth reports the advance width of s in pixels under the face Text uses.
func TextWidth(s string) int {
	d := &font.Drawer{Face: basicfont.Face7x13}
	return d.MeasureString(s).Ceil()
}
