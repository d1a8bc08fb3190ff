package boxchart

import (
	"fmt"
	"math"

	"github.com/vdobler/boxchart/canvas"
)

// Insets are the paddings around the chart area, in pixels.
type Insets struct {
	Left   float64 `yaml:"left" toml:"left"`
	Top    float64 `yaml:"top" toml:"top"`
	Right  float64 `yaml:"right" toml:"right"`
	Bottom float64 `yaml:"bottom" toml:"bottom"`
}

// Viewport is the pixel area a chart is laid out in.
type Viewport struct {
	Width, Height float64
	Padding       Insets
}

// LayoutStyle contains the sizes the layout solver starts from.
type LayoutStyle struct {
	GutterWidth  float64 // initial width of the Y axis label gutter
	GutterHeight float64 // height of the X axis label gutter
	FontSize     float64 // preferred axis label font size
	MinFontSize  float64 // labels are not shrunk below this size
	TickLength   float64 // length of a major tick
	LabelPad     float64 // space between gutter border and label
}

// DefaultLayoutStyle returns the default layout sizes.
func DefaultLayoutStyle() LayoutStyle {
	return LayoutStyle{
		GutterWidth:  40,
		GutterHeight: 40,
		FontSize:     12,
		MinFontSize:  10,
		TickLength:   10,
		LabelPad:     2,
	}
}

// Geometry is the pixel layout of one render pass. The chart area starts
// at (Left, Top); the Y gutter occupies its left GutterWidth pixels and the
// X gutter its bottom GutterHeight pixels; the rest is the graph.
type Geometry struct {
	Left, Top                 float64
	ChartWidth, ChartHeight   float64
	GutterWidth, GutterHeight float64
	GraphWidth, GraphHeight   float64
	ScaleX, ScaleY            float64 // pixels per data unit

	// LabelSize is the font size the Y axis labels fit in.
	LabelSize float64
}

func (g Geometry) String() string {
	return fmt.Sprintf("chart %gx%g+%g+%g gutter %gx%g graph %gx%g scale %g/%g label %g",
		g.ChartWidth, g.ChartHeight, g.Left, g.Top, g.GutterWidth, g.GutterHeight,
		g.GraphWidth, g.GraphHeight, g.ScaleX, g.ScaleY, g.LabelSize)
}

// Graph returns the graph area in pixel space.
func (g Geometry) Graph() canvas.Rect {
	return canvas.Rect{X: g.Left + g.GutterWidth, Y: g.Top, W: g.GraphWidth, H: g.GraphHeight}
}

// Chart returns the whole chart area including the gutters.
func (g Geometry) Chart() canvas.Rect {
	return canvas.Rect{X: g.Left, Y: g.Top, W: g.ChartWidth, H: g.ChartHeight}
}

// Solve lays out a chart of the rounded range ar in vp.
//
// The wider of the formatted Y max and Y min label must fit into the Y
// gutter minus tick length and label padding. The label font is shrunk one
// unit at a time down to ls.MinFontSize; if the label still does not fit the
// gutter grows by the overflow plus padding. Scales are computed from the
// final graph size; a span which is not positive counts as 1.
//
// Solve only calls m and is otherwise pure.
func Solve(vp Viewport, ar AxisRange, format Formatter, m canvas.Measurer, ls LayoutStyle) Geometry {
	format = safe(format)
	g := Geometry{
		Left:         vp.Padding.Left,
		Top:          vp.Padding.Top,
		ChartWidth:   math.Max(0, vp.Width-vp.Padding.Left-vp.Padding.Right),
		ChartHeight:  math.Max(0, vp.Height-vp.Padding.Top-vp.Padding.Bottom),
		GutterWidth:  ls.GutterWidth,
		GutterHeight: ls.GutterHeight,
	}

	hi, lo := format(ar.Y.Max), format(ar.Y.Min)
	widest := func(size float64) float64 {
		return math.Max(m.Width(hi, size), m.Width(lo, size))
	}
	avail := func() float64 { return g.GutterWidth - ls.TickLength - ls.LabelPad }

	size := ls.FontSize
	w := widest(size)
	for w > avail() && size > ls.MinFontSize && size > 1 {
		size--
		w = widest(size)
	}
	g.LabelSize = size
	if over := w - avail(); over > 0 {
		logger.Debug("growing Y gutter", "label", hi, "width", w, "overflow", over)
		g.GutterWidth += over + ls.LabelPad
	}

	g.GraphWidth = g.ChartWidth - g.GutterWidth
	g.GraphHeight = g.ChartHeight - g.GutterHeight

	spanX, spanY := ar.X.Span(), ar.Y.Span()
	if !(spanX > 0) {
		spanX = 1
	}
	if !(spanY > 0) {
		spanY = 1
	}
	g.ScaleX = g.GraphWidth / spanX
	g.ScaleY = g.GraphHeight / spanY

	logger.Debug("layout solved", "gutter", g.GutterWidth, "labelSize", g.LabelSize,
		"scaleX", g.ScaleX, "scaleY", g.ScaleY)
	return g
}
