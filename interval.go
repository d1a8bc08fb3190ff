package boxchart

import (
	"fmt"
	"math"
)

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval.
// The empty interval is [+Inf, -Inf]; updating it with any finite value x
// yields the degenerate interval [x, x].
type Interval struct {
	Min, Max float64
}

// EmptyInterval returns the empty sentinel interval [+Inf, -Inf].
func EmptyInterval() Interval {
	return Interval{math.Inf(1), math.Inf(-1)}
}

// Update expands i to include x. NaN and infinite values are ignored.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v < i.Min {
			i.Min = v
		}
		if v > i.Max {
			i.Max = v
		}
	}
}

// Empty reports whether i contains no value at all.
func (i Interval) Empty() bool {
	return !(i.Min <= i.Max)
}

// Span returns Max-Min or 0 for an empty interval.
func (i Interval) Span() float64 {
	if i.Empty() {
		return 0
	}
	return i.Max - i.Min
}

// Contains reports whether x lies in i.
func (i Interval) Contains(x float64) bool {
	return x >= i.Min && x <= i.Max
}

// Equal reports whether i and j are the same interval. All empty intervals
// are equal.
func (i Interval) Equal(j Interval) bool {
	if i.Empty() || j.Empty() {
		return i.Empty() && j.Empty()
	}
	return i.Min == j.Min && i.Max == j.Max
}

func (i Interval) String() string {
	if i.Empty() {
		return "[empty]"
	}
	return fmt.Sprintf("[%g:%g]", i.Min, i.Max)
}
