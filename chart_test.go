package boxchart

import (
	"errors"
	"image/color"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"

	"github.com/vdobler/boxchart/canvas"
)

var testItems = []item{
	{x: 1, max: 10, q3: 8, median: 5.5, hasMed: true, q1: 3, min: 1, outliers: []float64{12, -2}},
	{x: 2, max: 9, q3: 7, q1: 4, min: 2},
	{x: 3, max: 11, q3: 9, median: 6.5, hasMed: true, q1: 5, min: 4, outliers: []float64{0}},
}

// axisRects is the number of rectangles drawn for frame and gutters.
const axisRects = 3

func TestBoxChartRender(t *testing.T) {
	rec := &canvas.Recorder{}
	chart := NewBoxChart(testItems, itemAccessors())
	require.NoError(t, chart.Validate())

	f := chart.Render(rec, testViewport, canvas.BasicMeasurer{})
	require.Len(t, f.Regions, len(testItems))

	rects := rec.Filter(canvas.OpRect)
	assert.Len(t, rects, axisRects+len(testItems))
	assert.Len(t, rec.Filter(canvas.OpEllipse), 3)

	for i, it := range testItems {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			reg := f.Regions[i]
			assert.Equal(t, i, reg.Index)

			cx := f.PixelX(it.x)
			assert.InDelta(t, cx-8, reg.Bounds.X, 1e-9)
			assert.Equal(t, 16.0, reg.Bounds.W)
			assert.InDelta(t, f.PixelY(it.max), reg.Bounds.Y, 1e-9)
			assert.InDelta(t, f.PixelY(it.min), reg.Bounds.Bottom(), 1e-9)

			got, ok := f.HitTest(cx, f.PixelY((it.max+it.min)/2))
			assert.True(t, ok)
			assert.Equal(t, i, got)

			// Quartile box.
			box := rects[axisRects+i].Rect
			assert.InDelta(t, f.PixelY(it.q3), box.Y, 1e-9)
			assert.InDelta(t, f.PixelY(it.q1), box.Bottom(), 1e-9)

			assert.Equal(t, it.hasMed, hasLine(rec, cx-8, cx+8, f.PixelY(it.median)))
		})
	}

	_, ok := f.HitTest(0, 0)
	assert.False(t, ok)
}

func hasLine(rec *canvas.Recorder, x0, x1, y float64) bool {
	for _, c := range rec.Filter(canvas.OpLine) {
		if c.X0 == x0 && c.X1 == x1 && c.Y0 == y && c.Y1 == y {
			return true
		}
	}
	return false
}

func TestBoxChartRangeCoversOutliers(t *testing.T) {
	chart := NewBoxChart(testItems, itemAccessors())
	l, ok := chart.Layout(testViewport, canvas.BasicMeasurer{})
	require.True(t, ok)
	assert.Equal(t, Interval{-2, 12}, l.Range.RawY)
	assert.Less(t, l.Range.Y.Min, -2.0)
	assert.Greater(t, l.Range.Y.Max, 12.0)
}

func TestBoxChartEmpty(t *testing.T) {
	rec := &canvas.Recorder{}

	chart := NewBoxChart[item](nil, itemAccessors())
	assert.ErrorIs(t, chart.Validate(), ErrNoRecords)
	_, ok := chart.Layout(testViewport, canvas.BasicMeasurer{})
	assert.False(t, ok)
	f := chart.Render(rec, testViewport, canvas.BasicMeasurer{})
	assert.Empty(t, f.Regions)
	assert.Empty(t, rec.Commands)
	_, _, ok = f.Crosshair(rec, 100)
	assert.False(t, ok)
	assert.Empty(t, rec.Commands)

	acc := itemAccessors()
	acc.Max = nil
	chart = NewBoxChart(testItems, acc)
	err := chart.Validate()
	assert.True(t, errors.Is(err, ErrIncomplete))
	assert.Contains(t, err.Error(), "continuous")
	f = chart.Render(rec, testViewport, canvas.BasicMeasurer{})
	assert.Empty(t, f.Regions)
	assert.Empty(t, rec.Commands)
	assert.Equal(t, "", chart.Tooltip(0))
}

func TestBoxChartTinyViewport(t *testing.T) {
	rec := &canvas.Recorder{}
	chart := NewBoxChart(testItems, itemAccessors())
	f := chart.Render(rec, Viewport{Width: 30, Height: 30}, canvas.BasicMeasurer{})
	assert.Empty(t, f.Regions)
	assert.Empty(t, rec.Commands)
}

func TestBoxChartCategorical(t *testing.T) {
	var items []item
	for i, c := range []string{"A", "B", "A", "C"} {
		items = append(items, item{cat: c, max: float64(10 + i), q3: 8, q1: 3, min: 1})
	}
	red := color.RGBA{R: 0xff, A: 0xff}

	rec := &canvas.Recorder{}
	chart := NewBoxChart(items, itemAccessors())
	chart.Mode = Categorical
	chart.Style.Box.SeriesFills = []color.Color{red}
	f := chart.Render(rec, testViewport, canvas.BasicMeasurer{})

	assert.Equal(t, []string{"A", "B", "C"}, f.Scan.Categories.Labels)
	assert.Equal(t, Interval{0, 3}, f.Range.X)
	texts := rec.Texts()
	for _, l := range []string{"A", "B", "C"} {
		assert.Contains(t, texts, l)
	}

	// Regions are drawn cluster by cluster.
	require.Len(t, f.Regions, 4)
	var order []int
	for _, r := range f.Regions {
		order = append(order, r.Index)
	}
	assert.Equal(t, []int{0, 2, 1, 3}, order)

	// Both A boxes sit side by side, centred in the A slot.
	center := f.PixelX(0.5)
	assert.InDelta(t, center-16, f.Regions[0].Bounds.X, 1e-9)
	assert.InDelta(t, center, f.Regions[1].Bounds.X, 1e-9)
	assert.InDelta(t, f.PixelX(1.5)-8, f.Regions[2].Bounds.X, 1e-9)

	rects := rec.Filter(canvas.OpRect)[axisRects:]
	require.Len(t, rects, 4)
	assert.Equal(t, red, rects[0].Fill)
	assert.Equal(t, colornames.Gainsboro, rects[1].Fill)
	assert.Equal(t, red, rects[2].Fill)
	assert.Equal(t, red, rects[3].Fill)

	// Crosshair snaps to the nearest category and labels it.
	rec.Reset()
	x, y, ok := f.Crosshair(rec, f.PixelX(1.2))
	require.True(t, ok)
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 11.0, y)
	assert.Equal(t, []string{"X: B", "Y: 11"}, rec.Texts())
}

func TestBoxChartTooltip(t *testing.T) {
	items := []item{
		{max: 10, q3: 8, median: 5.5, hasMed: true, q1: 3, min: 1, cat: "A\nsub", descr: "d"},
		{max: 0.30000000000000004, q3: 0.2, q1: 0.1, min: -1e-9},
	}
	chart := NewBoxChart(items, itemAccessors())
	f := chart.Render(&canvas.Recorder{}, testViewport, canvas.BasicMeasurer{})

	assert.Equal(t, "Max:\t10\nQ3:\t8\nMed:\t5.5\nQ1:\t3\nMin:\t1\nCat:\tA\n\tsub\nDescr:\td", f.Tooltip(0))
	assert.Equal(t, "Max:\t0.3\nQ3:\t0.2\nMed:\t\nQ1:\t0.1\nMin:\t0", f.Tooltip(1))
	assert.Equal(t, "", f.Tooltip(2))
	assert.Equal(t, "", f.Tooltip(-1))
}

var linePoints = [][2]float64{{1, 3}, {2, -1}, {4, 8}}

func lineChart() *LineChart[[2]float64] {
	return NewLineChart(linePoints, Accessors[[2]float64]{
		X: func(p [2]float64) float64 { return p[0] },
		Y: func(p [2]float64) float64 { return p[1] },
	})
}

func TestLineChartRender(t *testing.T) {
	rec := &canvas.Recorder{}
	chart := lineChart()
	require.NoError(t, chart.Validate())
	f := chart.Render(rec, testViewport, canvas.BasicMeasurer{})
	assert.Empty(t, f.Regions)

	lines := rec.Filter(canvas.OpLine)
	require.True(t, len(lines) > 2)
	segs := lines[len(lines)-2:]
	for i, s := range segs {
		a, b := linePoints[i], linePoints[i+1]
		assert.InDelta(t, f.PixelX(a[0]), s.X0, 1e-9)
		assert.InDelta(t, f.PixelY(a[1]), s.Y0, 1e-9)
		assert.InDelta(t, f.PixelX(b[0]), s.X1, 1e-9)
		assert.InDelta(t, f.PixelY(b[1]), s.Y1, 1e-9)
	}
}

func TestLineChartCrosshair(t *testing.T) {
	rec := &canvas.Recorder{}
	f := lineChart().Render(rec, testViewport, canvas.BasicMeasurer{})

	rec.Reset()
	x, y, ok := f.Crosshair(rec, f.PixelX(2.2))
	require.True(t, ok)
	assert.Equal(t, 2.0, x)
	assert.Equal(t, -1.0, y)

	assert.Len(t, rec.Filter(canvas.OpLine), 4)
	assert.Len(t, rec.Filter(canvas.OpEllipse), 1)
	assert.Equal(t, []string{"X: 2", "Y: -1"}, rec.Texts())

	cx, cy := f.PixelX(2), f.PixelY(-1)
	backdrop := rec.Filter(canvas.OpRect)
	require.Len(t, backdrop, 1)
	assert.Equal(t, canvas.Rect{X: cx + 4, Y: cy - 39, W: 66, H: 36}, backdrop[0].Rect)

	// Hair lines stop at the ring around the point.
	hairs := rec.Filter(canvas.OpLine)
	assert.Equal(t, cy-5, hairs[0].Y1)
	assert.Equal(t, cy+5, hairs[1].Y0)
	assert.Equal(t, testViewport.Height, hairs[1].Y1)
	assert.Equal(t, testViewport.Width, hairs[3].X1)

	// Beyond the last point it snaps to the last point.
	_, y, _ = f.Crosshair(rec, f.PixelX(100))
	assert.Equal(t, 8.0, y)
}

func TestLineChartIncomplete(t *testing.T) {
	chart := lineChart()
	chart.Mode = Categorical
	assert.ErrorIs(t, chart.Validate(), ErrIncomplete)
	rec := &canvas.Recorder{}
	chart.Render(rec, testViewport, canvas.BasicMeasurer{})
	assert.Empty(t, rec.Commands)
}
