package boxchart

import (
	"fmt"
	"strings"

	"github.com/vdobler/boxchart/canvas"
	"github.com/vdobler/boxchart/geom"
)

// Options are the settings shared by all chart types.
type Options struct {
	Mode Mode
	Pins Pins

	// Format produces axis labels. It is used both when measuring labels
	// during layout and when drawing them.
	Format Formatter

	Style Style
}

// DefaultOptions returns continuous mode, no pins, plain labels with up to
// six decimals and the default style.
func DefaultOptions() Options {
	return Options{
		Mode:   Continuous,
		Format: PlainFormat(6),
		Style:  DefaultStyle(),
	}
}

// Layout is the result of the layout pass: the scan of the records, the
// planned axis range and the solved geometry. Its Transform maps between
// data and pixel space.
type Layout struct {
	Mode     Mode
	Viewport Viewport
	Scan     Scan
	Transform
}

func (o *Options) layout(s Scan, vp Viewport, m canvas.Measurer) (Layout, bool) {
	l := Layout{Mode: o.Mode, Viewport: vp, Scan: s}
	l.Range = PlanRange(s, o.Mode, o.Pins)
	if l.Range.Empty() {
		logger.Debug("nothing to lay out", "records", s.Count())
		return l, false
	}
	l.Geometry = Solve(vp, l.Range, o.Format, m, o.Style.Layout)
	return l, true
}

// drawable reports whether l leaves any room for the graph.
func (l Layout) drawable() bool {
	if l.GraphWidth <= 0 || l.GraphHeight <= 0 {
		logger.Debug("viewport too small", "geometry", l.Geometry.String())
		return false
	}
	return true
}

func (o *Options) drawAxes(s canvas.Sink, l Layout, m canvas.Measurer) {
	a := axes{
		t:          l.Transform,
		mode:       o.Mode,
		categories: l.Scan.Categories.Labels,
		format:     safe(o.Format),
		m:          m,
		sty:        &o.Style,
	}
	a.draw(s)
}

// ----------------------------------------------------------------------------
// BoxChart

// BoxChart draws one box plot glyph per record.
type BoxChart[T any] struct {
	Records   []T
	Accessors BoxAccessors[T]
	Options
}

// NewBoxChart returns a box chart of records with the default options.
func NewBoxChart[T any](records []T, acc BoxAccessors[T]) *BoxChart[T] {
	return &BoxChart[T]{Records: records, Accessors: acc, Options: DefaultOptions()}
}

// Validate reports ErrIncomplete if an accessor required in the chart's
// mode is unset and ErrNoRecords if there are no records.
func (c *BoxChart[T]) Validate() error {
	if !c.Accessors.Complete(c.Mode) {
		return fmt.Errorf("box chart in %s mode: %w", c.Mode, ErrIncomplete)
	}
	if len(c.Records) == 0 {
		return ErrNoRecords
	}
	return nil
}

// Layout scans the records and lays out the chart in vp. It reports false
// if there is nothing to render, e.g. because there are no records or an
// accessor is missing; the returned Layout then carries the empty range.
func (c *BoxChart[T]) Layout(vp Viewport, m canvas.Measurer) (Layout, bool) {
	return c.layout(ScanBoxes(c.Records, c.Accessors, c.Mode), vp, m)
}

// Render lays out the chart and draws it to s. The returned Frame holds
// the hit region of every drawn box. Nothing is drawn if Layout reports
// false.
func (c *BoxChart[T]) Render(s canvas.Sink, vp Viewport, m canvas.Measurer) *Frame {
	l, ok := c.Layout(vp, m)
	f := newFrame(l, c.Options, m)
	f.tooltip = c.Tooltip
	if !ok || !l.drawable() {
		return f
	}
	c.drawAxes(s, l, m)

	acc := c.Accessors
	size := c.Style.BoxSize.Pack(len(c.Records), l.ChartWidth)
	if c.Mode != Categorical {
		for i, r := range c.Records {
			bounds := geom.DrawBox(s, l.Transform, c.box(r, acc.X(r)), size, c.Style.Box)
			f.Regions = append(f.Regions, geom.HitRegion{Bounds: bounds, Index: i})
		}
		return f
	}

	groups := l.Scan.Categories.Group(len(c.Records), func(i int) string {
		return acc.Category(c.Records[i])
	})
	for k, members := range groups {
		cluster := geom.Cluster{Center: l.PixelX(float64(k) + 0.5), Width: size.Box, Count: len(members)}
		for j, i := range members {
			sty := c.Style.Box
			sty.Fill = sty.FillFor(j)
			x := l.DataX(cluster.Offset(j))
			bounds := geom.DrawBox(s, l.Transform, c.box(c.Records[i], x), size, sty)
			f.Regions = append(f.Regions, geom.HitRegion{Bounds: bounds, Index: i})
		}
	}
	return f
}

func (c *BoxChart[T]) box(r T, x float64) geom.Box {
	acc := c.Accessors
	b := geom.Box{
		X:   x,
		Max: acc.Max(r), Min: acc.Min(r),
		Q1: acc.Q1(r), Q3: acc.Q3(r),
	}
	if acc.Median != nil {
		b.Median, b.HasMedian = acc.Median(r)
	}
	if acc.Outliers != nil {
		b.Outliers = acc.Outliers(r)
	}
	return b
}

// Tooltip returns the tooltip text of record i: its five numbers, followed
// by its category and description if present.
func (c *BoxChart[T]) Tooltip(i int) string {
	if i < 0 || i >= len(c.Records) || !c.Accessors.Complete(c.Mode) {
		return ""
	}
	format := PlainFormat(6)
	b := c.box(c.Records[i], 0)
	med := ""
	if b.HasMedian {
		med = format(b.Median)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Max:\t%s\nQ3:\t%s\nMed:\t%s\nQ1:\t%s\nMin:\t%s",
		format(b.Max), format(b.Q3), med, format(b.Q1), format(b.Min))
	if acc := c.Accessors; acc.Category != nil {
		if cat := acc.Category(c.Records[i]); cat != "" {
			// Indent the second line of a multi-line category.
			fmt.Fprintf(&sb, "\nCat:\t%s", strings.Replace(cat, "\n", "\n\t", 1))
		}
	}
	if acc := c.Accessors; acc.Description != nil {
		if descr := acc.Description(c.Records[i]); descr != "" {
			fmt.Fprintf(&sb, "\nDescr:\t%s", descr)
		}
	}
	return sb.String()
}

// ----------------------------------------------------------------------------
// LineChart

// LineChart draws a polyline through the (x,y) values of its records in
// source order.
type LineChart[T any] struct {
	Records   []T
	Accessors Accessors[T]
	Options
}

// NewLineChart returns a line chart of records with the default options.
func NewLineChart[T any](records []T, acc Accessors[T]) *LineChart[T] {
	return &LineChart[T]{Records: records, Accessors: acc, Options: DefaultOptions()}
}

// Validate reports ErrIncomplete if an accessor required in the chart's
// mode is unset and ErrNoRecords if there are no records.
func (c *LineChart[T]) Validate() error {
	if !c.Accessors.Complete(c.Mode) {
		return fmt.Errorf("line chart in %s mode: %w", c.Mode, ErrIncomplete)
	}
	if len(c.Records) == 0 {
		return ErrNoRecords
	}
	return nil
}

// Layout scans the records and lays out the chart in vp.
func (c *LineChart[T]) Layout(vp Viewport, m canvas.Measurer) (Layout, bool) {
	return c.layout(ScanSeries(c.Records, c.Accessors, c.Mode), vp, m)
}

// Render lays out the chart and draws axes and line to s. A line chart has
// no hit regions; its Frame supports nearest point lookup.
func (c *LineChart[T]) Render(s canvas.Sink, vp Viewport, m canvas.Measurer) *Frame {
	l, ok := c.Layout(vp, m)
	f := newFrame(l, c.Options, m)
	if !ok || !l.drawable() {
		return f
	}
	c.drawAxes(s, l, m)
	n := geom.Line(s, l.Transform, l.Scan.Samples, c.Style.Line)
	logger.Debug("line drawn", "segments", n)
	return f
}
