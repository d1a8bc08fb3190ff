// Package canvas defines the two collaborators the chart engine draws and
// measures through: a Sink receiving pixel space drawing commands and a
// Measurer reporting rendered text extents.
//
// Pixel space has its origin in the top-left corner with y growing
// downwards. Implementations are provided on top of gonum/plot's draw.Canvas
// (PNG, SVG, PDF through vgimg, vgsvg, ...), on top of ajstarks/svgo and as a
// plain Recorder useful for hit testing and tests.
package canvas

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/vg/draw"
)

// A Sink receives the primitive drawing operations of a render pass.
// Styles are passed by value with every call; a Sink must not rely on
// styles staying valid after the call returns.
type Sink interface {
	// Line strokes the segment from (x0,y0) to (x1,y1).
	Line(sty draw.LineStyle, x0, y0, x1, y1 float64)

	// RoundedRect fills r with fill (if non-nil) and strokes its border.
	// A zero radius yields a plain rectangle.
	RoundedRect(fill color.Color, border draw.LineStyle, r Rect, radius float64)

	// Ellipse fills and strokes the ellipse centred at (cx,cy).
	Ellipse(fill color.Color, border draw.LineStyle, cx, cy, rx, ry float64)

	// Text draws s with its bounding box's top-left corner at (x,y).
	// The font size is sty.Font.Size.
	Text(sty draw.TextStyle, x, y float64, s string)
}

// A Measurer reports how large a string renders at a given font size.
type Measurer interface {
	Width(s string, size float64) float64
	Height(s string, size float64) float64
}

// Rect is an axis-aligned rectangle in pixel space.
type Rect struct {
	X, Y float64 // top-left corner
	W, H float64
}

// Contains reports whether (x,y) lies inside or on the border of r.
// r is canonicalised first.
func (r Rect) Contains(x, y float64) bool {
	r = Canonic(r)
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Right returns the x coordinate of the right edge of r.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge of r.
func (r Rect) Bottom() float64 { return r.Y + r.H }

func (r Rect) String() string {
	return fmt.Sprintf("[%.2f,%.2f %.2fx%.2f]", r.X, r.Y, r.W, r.H)
}

// Canonic returns the canonical form of r, i.e. with non-negative width
// and height covering the same area.
func Canonic(r Rect) Rect {
	if r.W < 0 {
		r.X, r.W = r.X+r.W, -r.W
	}
	if r.H < 0 {
		r.Y, r.H = r.Y+r.H, -r.H
	}
	return r
}
