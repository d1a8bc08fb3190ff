// Package data contains the sample sequences recorded during a scan and the
// nearest point lookup used to snap a pointer to real data.
package data

import (
	"math"
	"sort"

	"gonum.org/v1/plot/plotter"
)

// Nearest returns the sample in xys whose x value is closest to qx.
//
// The samples must be sorted by ascending x. The first sample with x >= qx
// and the last x <= qx are the candidates; the earlier one wins only if it
// is strictly closer. Among samples sharing an x the first one is
// returned. Unsorted input never panics but the result
// is then just some sample. Nearest reports ok == false for empty input
// and for a NaN query.
func Nearest(xys plotter.XYer, qx float64) (x, y float64, ok bool) {
	n := xys.Len()
	if n == 0 || math.IsNaN(qx) {
		return 0, 0, false
	}
	xAt := func(i int) float64 {
		x, _ := xys.XY(i)
		return x
	}

	// after: first x >= qx; before: last x <= qx.
	after := sort.Search(n, func(i int) bool { return xAt(i) >= qx })
	before := sort.Search(n, func(i int) bool { return xAt(i) > qx }) - 1
	if before >= 0 {
		bx := xAt(before)
		if first := sort.Search(n, func(i int) bool { return xAt(i) >= bx }); first < before {
			before = first
		}
	}

	switch {
	case after >= n && before < 0:
		// Only possible for unsorted input.
		x, y = xys.XY(0)
		return x, y, true
	case after >= n:
		x, y = xys.XY(before)
		return x, y, true
	case before < 0:
		x, y = xys.XY(after)
		return x, y, true
	}

	ax, ay := xys.XY(after)
	bx, by := xys.XY(before)
	if math.Abs(bx-qx) < math.Abs(ax-qx) {
		return bx, by, true
	}
	return ax, ay, true
}

// NearestLinear is the linear scan fallback of Nearest for samples which
// are not sorted by x. It picks the same sample Nearest would pick on the
// sorted samples: on equal distance the larger x wins and among samples
// with equal x the first in source order.
func NearestLinear(xys plotter.XYer, qx float64) (x, y float64, ok bool) {
	if math.IsNaN(qx) {
		return 0, 0, false
	}
	best := math.Inf(1)
	for i := 0; i < xys.Len(); i++ {
		sx, sy := xys.XY(i)
		if d := math.Abs(sx - qx); d < best || (d == best && sx > x) {
			best, x, y, ok = d, sx, sy, true
		}
	}
	return x, y, ok
}

// Sorted reports whether the samples are in non-decreasing x order.
func Sorted(xys plotter.XYer) bool {
	prev := math.Inf(-1)
	for i := 0; i < xys.Len(); i++ {
		x, _ := xys.XY(i)
		if x < prev {
			return false
		}
		prev = x
	}
	return true
}
