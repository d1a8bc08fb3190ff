package boxchart

import (
	"math"

	"github.com/vdobler/boxchart/canvas"
	"github.com/vdobler/boxchart/data"
	"github.com/vdobler/boxchart/geom"
	"gonum.org/v1/plot/vg/draw"
)

// Frame is the result of one render pass. It is never modified after
// Render returns; a new pass yields a new Frame.
type Frame struct {
	Layout

	// Regions holds the hit region of every drawn glyph in drawing order.
	Regions []geom.HitRegion

	opts    Options
	m       canvas.Measurer
	sorted  bool
	tooltip func(int) string
}

func newFrame(l Layout, opts Options, m canvas.Measurer) *Frame {
	return &Frame{
		Layout: l,
		opts:   opts,
		m:      m,
		sorted: data.Sorted(l.Scan.Samples),
	}
}

// Nearest returns the recorded sample whose x is closest to the data x
// coordinate qx. Samples which are not sorted by x, as in categorical
// charts with interleaved categories, are searched linearly.
func (f *Frame) Nearest(qx float64) (x, y float64, ok bool) {
	if f.sorted {
		return data.Nearest(f.Scan.Samples, qx)
	}
	return data.NearestLinear(f.Scan.Samples, qx)
}

// HitTest returns the record index of the first region containing the
// pixel (px,py).
func (f *Frame) HitTest(px, py float64) (int, bool) {
	for _, r := range f.Regions {
		if r.Bounds.Contains(px, py) {
			return r.Index, true
		}
	}
	return -1, false
}

// Tooltip returns the tooltip text of record i or "" if the chart has no
// tooltips.
func (f *Frame) Tooltip(i int) string {
	if f.tooltip == nil {
		return ""
	}
	return f.tooltip(i)
}

var crossFormat = PlainFormat(4)

// Crosshair snaps the pixel x coordinate px to the nearest sample and draws
// a crosshair through it with a label showing its coordinates. It returns
// the sample and false if there is nothing to snap to.
func (f *Frame) Crosshair(s canvas.Sink, px float64) (x, y float64, ok bool) {
	if f.Range.Empty() || f.ScaleX == 0 {
		return 0, 0, false
	}
	x, y, ok = f.Nearest(f.DataX(px))
	if !ok {
		return 0, 0, false
	}

	ch := f.opts.Style.Crosshair
	cx, cy, r := f.PixelX(x), f.PixelY(y), ch.Radius
	s.Line(ch.LineStyle, cx, 0, cx, cy-r)
	s.Line(ch.LineStyle, cx, cy+r, cx, f.Viewport.Height)
	s.Line(ch.LineStyle, 0, cy, cx-r, cy)
	s.Line(ch.LineStyle, cx+r, cy, f.Viewport.Width, cy)

	xLabel, yLabel := "X: "+f.crossX(x), "Y: "+crossFormat(y)
	size := float64(ch.Text.Font.Size)
	w := 66.0
	if f.m != nil {
		w = math.Max(w, math.Max(f.m.Width(xLabel, size), f.m.Width(yLabel, size))+8)
	}
	s.RoundedRect(ch.Backdrop, draw.LineStyle{}, canvas.Rect{X: cx + 4, Y: cy - 3*size, W: w, H: 3*size - 3}, 0)
	s.Ellipse(nil, ch.LineStyle, cx, cy, r, r)
	s.Text(ch.Text, cx+8, cy-2.75*size, xLabel)
	s.Text(ch.Text, cx+8, cy-1.5*size, yLabel)
	return x, y, true
}

// crossX labels the crosshair x value, using the category label in
// categorical charts.
func (f *Frame) crossX(x float64) string {
	if f.Mode == Categorical {
		if i := int(x); float64(i) == x && i >= 0 && i < f.Scan.Categories.Len() {
			return f.Scan.Categories.Labels[i]
		}
	}
	return crossFormat(x)
}
