package geom

import (
	"math"

	"github.com/vdobler/boxchart/canvas"
)

// Box is one box plot item in data space.
type Box struct {
	X float64 // position on the X axis

	Max, Min float64
	Q1, Q3   float64

	Median    float64
	HasMedian bool

	Outliers []float64
}

// BoxSize contains the pixel sizes of a box plot glyph.
type BoxSize struct {
	Box           float64 // width of the quartile box
	MaxLine       float64 // width of the max whisker
	MinLine       float64 // width of the min whisker
	OutlierRadius float64
}

// DefaultBoxSize returns the default glyph sizes.
func DefaultBoxSize() BoxSize {
	return BoxSize{Box: 16, MaxLine: 16, MinLine: 16, OutlierRadius: 4}
}

// packGap is the space reserved next to each glyph when packing.
const packGap = 8

// Pack shrinks bs so that n glyphs fit into width pixels, i.e.
// n*(size+8) <= width. The box width is decremented one pixel at a time
// but never below 1; whisker widths and the outlier radius which do not
// fit fall back to the packed box width.
func (bs BoxSize) Pack(n int, width float64) BoxSize {
	if n <= 0 {
		return bs
	}
	fits := func(d float64) bool {
		return float64(n)*(d+packGap) <= width
	}

	p := bs
	for !fits(p.Box) && p.Box > 1 {
		p.Box--
	}
	p.Box = math.Max(p.Box, 1)
	if !fits(p.MaxLine) {
		p.MaxLine = p.Box
	}
	if !fits(p.MinLine) {
		p.MinLine = p.Box
	}
	if !fits(p.OutlierRadius) {
		p.OutlierRadius = p.Box
	}
	return p
}

// DrawBox draws b centred at m.PixelX(b.X) and returns its hit bounds,
// which span the whiskers vertically and the box horizontally.
//
// Quartiles given in the wrong order (Q3 < Q1) still yield a box of
// non-negative size between the two.
func DrawBox(s canvas.Sink, m Mapper, b Box, size BoxSize, sty BoxStyle) canvas.Rect {
	cx := m.PixelX(b.X)
	ymax, ymin := m.PixelY(b.Max), m.PixelY(b.Min)
	y3, y1 := m.PixelY(b.Q3), m.PixelY(b.Q1)
	half := size.Box / 2

	// Whiskers and their connectors.
	s.Line(sty.Whisker, cx-size.MaxLine/2, ymax, cx+size.MaxLine/2, ymax)
	s.Line(sty.Whisker, cx-size.MinLine/2, ymin, cx+size.MinLine/2, ymin)
	s.Line(sty.Whisker, cx, ymax, cx, y3)
	s.Line(sty.Whisker, cx, ymin, cx, y1)

	box := canvas.Rect{X: cx - half, Y: math.Min(y3, y1), W: size.Box, H: math.Abs(y3 - y1)}
	s.RoundedRect(sty.Fill, sty.Border, box, sty.CornerRadius)

	if b.HasMedian {
		ym := m.PixelY(b.Median)
		s.Line(sty.Median, cx-half, ym, cx+half, ym)
	}

	r := size.OutlierRadius
	for _, o := range b.Outliers {
		s.Ellipse(sty.OutlierFill, sty.OutlierBorder, cx, m.PixelY(o), r, r)
	}

	return canvas.Canonic(canvas.Rect{X: cx - half, Y: ymax, W: size.Box, H: ymin - ymax})
}
