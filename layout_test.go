package boxchart

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vdobler/boxchart/canvas"
)

var testViewport = Viewport{
	Width: 400, Height: 300,
	Padding: Insets{Left: 10, Top: 10, Right: 10, Bottom: 10},
}

func yRange(min, max float64) AxisRange {
	return AxisRange{
		X: Interval{0, 10}, Y: Interval{min, max},
		IntervalX: 1, IntervalY: 1,
	}
}

// With the 7x13 basic face a label of n characters at size s is 7*n*s/13
// pixels wide. The default gutter leaves 40-10-2 = 28 pixels for labels.
var solveTests = []struct {
	min, max   float64
	wantSize   float64
	wantGutter float64
}{
	{-2, 14, 12, 40},        // "14" fits
	{0, 1000, 12, 40},       // "1000" is 25.8 wide
	{0, 10000, 10, 40},      // "10000" fits only at 10
	{-1000, 0, 10, 40},      // so does "-1000"
	{0, 123456, 10, 46.31},  // 32.31 at size 10, overflow plus padding
	{0, 1234567, 10, 51.69}, // 37.69 at size 10
}

func TestSolve(t *testing.T) {
	m := canvas.BasicMeasurer{}
	ls := DefaultLayoutStyle()
	for i, tc := range solveTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			g := Solve(testViewport, yRange(tc.min, tc.max), PlainFormat(6), m, ls)
			assert.Equal(t, tc.wantSize, g.LabelSize)
			assert.InDelta(t, tc.wantGutter, g.GutterWidth, 0.01)

			// The widest label always fits after solving.
			w := m.Width(PlainFormat(6)(tc.max), g.LabelSize)
			if lw := m.Width(PlainFormat(6)(tc.min), g.LabelSize); lw > w {
				w = lw
			}
			assert.LessOrEqual(t, w, g.GutterWidth-ls.TickLength-ls.LabelPad+1e-9)

			assert.Equal(t, 380.0, g.ChartWidth)
			assert.Equal(t, 280.0, g.ChartHeight)
			assert.InDelta(t, g.ChartWidth-g.GutterWidth, g.GraphWidth, 1e-9)
			assert.Equal(t, 240.0, g.GraphHeight)
			assert.InDelta(t, g.GraphHeight/(tc.max-tc.min), g.ScaleY, 1e-12)
		})
	}
}

func TestSolveDegenerate(t *testing.T) {
	ar := AxisRange{X: Interval{3, 3}, Y: EmptyInterval()}
	g := Solve(testViewport, ar, nil, canvas.BasicMeasurer{}, DefaultLayoutStyle())
	assert.Equal(t, g.GraphWidth, g.ScaleX)
	assert.Equal(t, g.GraphHeight, g.ScaleY)

	tiny := Viewport{Width: 30, Height: 5, Padding: Insets{Left: 10, Right: 30}}
	g = Solve(tiny, yRange(0, 1), PlainFormat(6), canvas.BasicMeasurer{}, DefaultLayoutStyle())
	assert.Zero(t, g.ChartWidth)
	assert.Less(t, g.GraphWidth, 0.0)
	assert.Less(t, g.GraphHeight, 0.0)
}

func TestSolveMinFontSize(t *testing.T) {
	ls := DefaultLayoutStyle()
	ls.MinFontSize = 4
	g := Solve(testViewport, yRange(0, 123456), PlainFormat(6), canvas.BasicMeasurer{}, ls)
	// 42*s/13 <= 28 first holds for s = 8.
	assert.Equal(t, 8.0, g.LabelSize)
	assert.Equal(t, 40.0, g.GutterWidth)
}

func TestGeometryRects(t *testing.T) {
	g := Solve(testViewport, yRange(0, 10), PlainFormat(6), canvas.BasicMeasurer{}, DefaultLayoutStyle())
	assert.Equal(t, canvas.Rect{X: 10, Y: 10, W: 380, H: 280}, g.Chart())
	assert.Equal(t, canvas.Rect{X: 50, Y: 10, W: 340, H: 240}, g.Graph())
}
