package boxchart

import (
	"math"
	"strconv"
	"testing"
)

var (
	nan   = math.NaN()
	inf   = math.Inf(1)
	empty = EmptyInterval()
)

var intervalUpdateTests = []struct {
	old  Interval
	x    float64
	want Interval
}{
	{Interval{3, 6}, 4, Interval{3, 6}},
	{Interval{3, 6}, 2, Interval{2, 6}},
	{Interval{3, 6}, 7, Interval{3, 7}},
	{empty, nan, empty},
	{empty, inf, empty},
	{empty, -inf, empty},
	{empty, 5, Interval{5, 5}},
	{empty, -0.5, Interval{-0.5, -0.5}},
	{Interval{5, 5}, nan, Interval{5, 5}},
}

func TestIntervalUpdate(t *testing.T) {
	for i, tc := range intervalUpdateTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := tc.old
			got.Update(tc.x)
			if !got.Equal(tc.want) {
				t.Errorf("%v update %v = %v, want %v",
					tc.old, tc.x, got, tc.want)
			}
		})
	}
}

func TestIntervalEmpty(t *testing.T) {
	if !empty.Empty() || empty.Span() != 0 || empty.Contains(0) {
		t.Errorf("empty interval %v: Empty=%t Span=%g Contains(0)=%t",
			empty, empty.Empty(), empty.Span(), empty.Contains(0))
	}
	i := empty
	i.Update(1, nan, 3, -2)
	if i.Empty() || i.Span() != 5 || !i.Contains(0) || i.Contains(4) {
		t.Errorf("interval %v: Empty=%t Span=%g", i, i.Empty(), i.Span())
	}
	if got := i.String(); got != "[-2:3]" {
		t.Errorf("String = %q", got)
	}
	if got := empty.String(); got != "[empty]" {
		t.Errorf("String = %q", got)
	}
}
