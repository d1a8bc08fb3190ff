package geom

import (
	"math"

	"github.com/vdobler/boxchart/canvas"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
)

// Line draws the polyline through the points of xys in order. A point with
// a NaN coordinate breaks the line. Line returns the number of segments
// drawn.
func Line(s canvas.Sink, m Mapper, xys plotter.XYer, sty draw.LineStyle) int {
	n := 0
	havePrev := false
	var px, py float64
	for i := 0; i < xys.Len(); i++ {
		x, y := xys.XY(i)
		if math.IsNaN(x) || math.IsNaN(y) {
			havePrev = false
			continue
		}
		cx, cy := m.PixelX(x), m.PixelY(y)
		if havePrev {
			s.Line(sty, px, py, cx, cy)
			n++
		}
		px, py, havePrev = cx, cy, true
	}
	return n
}
