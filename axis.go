package boxchart

import (
	"image/color"

	"github.com/vdobler/boxchart/canvas"
)

// axes draws the chart frame, the gutters and both axes of one render pass.
type axes struct {
	t          Transform
	mode       Mode
	categories []string
	format     Formatter
	m          canvas.Measurer
	sty        *Style
}

// fitSize shrinks size one unit at a time until s fits into avail pixels,
// but not below floor and not below 1.
func fitSize(m canvas.Measurer, s string, size, floor, avail float64) float64 {
	for m.Width(s, size) > avail && size > floor && size > 1 {
		size--
	}
	return size
}

func (a axes) draw(s canvas.Sink) {
	t, sty := a.t, a.sty

	s.RoundedRect(nil, sty.Border, t.Chart(), 0)
	s.RoundedRect(sty.GutterFill, sty.Border,
		canvas.Rect{X: t.Left, Y: t.Top, W: t.GutterWidth, H: t.ChartHeight}, 0)
	s.RoundedRect(sty.GutterFill, sty.Border,
		canvas.Rect{X: t.Left + t.GutterWidth, Y: t.Top + t.GraphHeight, W: t.GraphWidth, H: t.GutterHeight}, 0)

	a.drawY(s)
	if a.mode == Categorical {
		a.drawCategories(s)
	} else {
		a.drawX(s)
	}
}

func (a axes) drawY(s canvas.Sink) {
	t, sty := a.t, a.sty
	x0, x1 := t.Left+t.GutterWidth, t.Left+t.ChartWidth
	ticker := IntervalTicks{Step: t.Range.IntervalY, Minor: sty.MinorTicks, Format: a.format}

	hasZero := false
	for _, tick := range ticker.Ticks(t.Range.Y.Min, t.Range.Y.Max) {
		y := t.PixelY(tick.Value)
		if tick.IsMinor() {
			s.Line(sty.MinorTick, x0-sty.MinorTickLength, y, x0, y)
			continue
		}
		if sty.ShowHorizontalGrid {
			s.Line(sty.Grid, x0, y, x1, y)
		}
		s.Line(sty.MajorTick, x0-sty.Layout.TickLength, y, x0, y)
		a.yLabel(s, tick.Label, y, sty.Label.Color)
		if tick.Value == 0 {
			hasZero = true
		}
	}

	// Zero gets a dashed line if it is inside the axis but not on a tick.
	if !hasZero && t.Range.Y.Min < 0 && t.Range.Y.Max > 0 {
		y := t.PixelY(0)
		s.Line(sty.Grid, x0-sty.Layout.TickLength, y, x0, y)
		if sty.ShowHorizontalGrid {
			s.Line(sty.ZeroLine, x0, y, x1, y)
		}
		a.yLabel(s, a.format(0), y, sty.Grid.Color)
	}
}

func (a axes) yLabel(s canvas.Sink, label string, y float64, col color.Color) {
	ls := a.sty.Layout
	avail := a.t.GutterWidth - ls.TickLength - ls.LabelPad
	size := fitSize(a.m, label, a.t.LabelSize, ls.MinFontSize, avail)
	ts := a.sty.labelStyle(size)
	if col != nil {
		ts.Color = col
	}
	s.Text(ts, a.t.Left+ls.LabelPad, y-a.m.Height(label, size)/2, label)
}

func (a axes) drawX(s canvas.Sink) {
	t, sty := a.t, a.sty
	y0 := t.Top + t.GraphHeight
	size := sty.Layout.FontSize
	ts := sty.labelStyle(size)
	ticker := IntervalTicks{Step: t.Range.IntervalX, Minor: sty.MinorTicks, Format: a.format}

	first := true
	for _, tick := range ticker.Ticks(t.Range.X.Min, t.Range.X.Max) {
		x := t.PixelX(tick.Value)
		if tick.IsMinor() {
			s.Line(sty.MinorTick, x, y0, x, y0+sty.MinorTickLength)
			continue
		}
		s.Line(sty.MajorTick, x, y0, x, y0+sty.Layout.TickLength)

		// The leftmost label would overlap the Y gutter if centred.
		lx := x + sty.Layout.LabelPad
		if !first {
			lx = x - a.m.Width(tick.Label, size)/2
		}
		first = false
		s.Text(ts, lx, y0+sty.Layout.TickLength, tick.Label)

		if sty.ShowVerticalGrid {
			s.Line(sty.Grid, x, t.Top, x, y0)
		}
	}
}

func (a axes) drawCategories(s canvas.Sink) {
	t, sty := a.t, a.sty
	y0 := t.Top + t.GraphHeight
	slot := t.PixelX(1) - t.PixelX(0)

	for i, label := range a.categories {
		size := fitSize(a.m, label, sty.Layout.FontSize, 1, slot)
		w, h := a.m.Width(label, size), a.m.Height(label, size)
		s.Text(sty.labelStyle(size), t.PixelX(float64(i)+0.5)-w/2, y0+(t.GutterHeight-h)/2, label)

		if sty.ShowVerticalGrid {
			x := t.PixelX(float64(i + 1))
			s.Line(sty.Grid, x, t.Top, x, y0)
		}
	}
}
