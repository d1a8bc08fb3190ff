package boxchart

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
)

// NiceInterval returns a tick interval from {1,2,5}×10^k for a range of
// size r such that r/NiceInterval(r) lies in [5, 50). Degenerate input
// (r <= 0, NaN or Inf) is treated as r = 1.
func NiceInterval(r float64) float64 {
	if !(r > 0) || math.IsInf(r, 0) {
		r = 1
	}
	m := math.Pow(10, math.Floor(math.Log10(r)))
	// Log10 may be off by one ulp near powers of ten.
	if r/m >= 10 {
		m *= 10
	} else if r/m < 1 {
		m /= 10
	}
	switch {
	case r/m >= 5:
		return m
	case r/(m/2) >= 5:
		return m / 2
	default:
		return m / 5
	}
}

// DivisionFactor returns the smallest power of ten f >= 1e-10 with
// |v|/f <= 10. It is the tick step of a continuous X axis.
func DivisionFactor(v float64) float64 {
	v = math.Abs(v)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 1
	}
	for k := -10; k < 308; k++ {
		if f := math.Pow10(k); v/f <= 10 {
			return f
		}
	}
	return math.Pow10(308)
}

// RoundMax rounds v up to the next multiple of iv strictly above v and adds
// one more interval as top margin.
func RoundMax(v, iv float64) float64 {
	return math.Floor(v/iv)*iv + iv + iv
}

// RoundMin rounds v down to a multiple of iv and subtracts one interval as
// bottom margin.
func RoundMin(v, iv float64) float64 {
	return math.Floor(v/iv)*iv - iv
}

// ----------------------------------------------------------------------------
// Pins

// Pins fix the rounded axis bounds to explicit values. A nil, NaN or
// infinite pin is unset and the bound is computed from the data.
type Pins struct {
	XMin, XMax *float64
	YMin, YMax *float64
}

// Pin returns a pin for v.
func Pin(v float64) *float64 { return &v }

func pinned(p *float64) (float64, bool) {
	if p == nil || math.IsNaN(*p) || math.IsInf(*p, 0) {
		return 0, false
	}
	return *p, true
}

// ----------------------------------------------------------------------------
// AxisRange

// AxisRange is the output of interval planning: the raw data ranges, the
// rounded axis bounds and the tick intervals of both axes.
type AxisRange struct {
	RawX, RawY Interval
	X, Y       Interval // rounded

	IntervalX, IntervalY float64
}

// EmptyRange returns the range of an empty data source.
func EmptyRange() AxisRange {
	return AxisRange{
		RawX: EmptyInterval(), RawY: EmptyInterval(),
		X: EmptyInterval(), Y: EmptyInterval(),
		IntervalX: 1, IntervalY: 1,
	}
}

// Empty reports whether there is nothing to render.
func (ar AxisRange) Empty() bool {
	return ar.X.Empty() || ar.Y.Empty()
}

func (ar AxisRange) String() string {
	return fmt.Sprintf("X=%v (raw %v, step %g) Y=%v (raw %v, step %g)",
		ar.X, ar.RawX, ar.IntervalX, ar.Y, ar.RawY, ar.IntervalY)
}

// maxXTicks limits the number of major ticks on a continuous X axis before
// the division factor is replaced by a nice interval.
const maxXTicks = 100

// PlanRange turns the raw ranges of s into rounded axis bounds and tick
// intervals. An empty scan yields EmptyRange.
//
// The Y axis gets a full interval of margin on both sides. The X axis in
// Continuous mode gets 5% of its span as margin on the right and its left
// edge floored to the division factor. In Categorical mode X covers
// [0, number of categories] with unit steps.
func PlanRange(s Scan, mode Mode, pins Pins) AxisRange {
	ar := EmptyRange()
	ar.RawX, ar.RawY = s.X, s.Y
	if s.Empty() {
		return ar
	}

	// Y axis.
	lo, hi := s.Y.Min, s.Y.Max
	pmin, hasMin := pinned(pins.YMin)
	pmax, hasMax := pinned(pins.YMax)
	if hasMin {
		lo = pmin
	}
	if hasMax {
		hi = pmax
	}
	span := hi - lo
	if !(span > 0) {
		logger.Debug("degenerate Y range", "min", lo, "max", hi)
		span = 1
	}
	ar.IntervalY = NiceInterval(span)
	ar.Y.Min, ar.Y.Max = RoundMin(s.Y.Min, ar.IntervalY), RoundMax(s.Y.Max, ar.IntervalY)
	if hasMin {
		ar.Y.Min = pmin
	}
	if hasMax {
		ar.Y.Max = pmax
	}

	// X axis.
	if mode == Categorical {
		ar.X = Interval{0, float64(s.Categories.Len())}
		ar.IntervalX = 1
		return ar
	}

	// The step comes from the raw range; the margin must not push it
	// into the next decade.
	f := DivisionFactor(math.Max(math.Abs(s.X.Min), math.Abs(s.X.Max)))
	lo = s.X.Min
	hi = s.X.Max + 0.05*(s.X.Max-s.X.Min)
	if math.Mod(lo, f) != 0 {
		lo = math.Floor(lo/f) * f
	}
	if v, ok := pinned(pins.XMin); ok {
		lo = v
	}
	if v, ok := pinned(pins.XMax); ok {
		hi = v
	}
	if !(hi > lo) {
		logger.Debug("degenerate X range", "min", lo, "max", hi)
		hi = lo + 1
	}
	ar.X = Interval{lo, hi}
	ar.IntervalX = f
	if n := (hi - lo) / f; n > maxXTicks || n < 1 {
		ar.IntervalX = NiceInterval(hi - lo)
	}
	return ar
}

// ----------------------------------------------------------------------------
// Ticks

// IntervalTicks is a plot.Ticker placing major ticks every Step starting at
// the axis minimum and Minor minor ticks between two majors. The axis
// maximum itself gets no major tick.
type IntervalTicks struct {
	Step   float64
	Minor  int
	Format Formatter
}

var _ plot.Ticker = IntervalTicks{}

// maxTicks bounds the number of major ticks produced.
const maxTicks = 1000

// Ticks implements plot.Ticker.
func (it IntervalTicks) Ticks(min, max float64) []plot.Tick {
	step := it.Step
	if !(step > 0) || math.IsInf(step, 0) || !(max >= min) {
		return nil
	}
	format := it.Format
	if format == nil {
		format = PlainFormat(6)
	}
	eps := step * 1e-9
	snap := func(v float64) float64 {
		if math.Abs(v) < eps {
			return 0
		}
		return v
	}

	var ticks []plot.Tick
	for k := 0; k < maxTicks; k++ {
		v := snap(min + float64(k)*step)
		if v >= max-eps {
			break
		}
		ticks = append(ticks, plot.Tick{Value: v, Label: format(v)})
		for j := 1; j <= it.Minor; j++ {
			m := snap(v + float64(j)*step/float64(it.Minor+1))
			if m > max+eps {
				break
			}
			ticks = append(ticks, plot.Tick{Value: m})
		}
	}
	return ticks
}
