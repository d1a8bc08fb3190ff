package boxchart

import (
	"fmt"

	"gonum.org/v1/plot/plotter"
)

// Mode selects between a continuous numeric X axis and a categorical one.
type Mode int

const (
	Continuous Mode = iota
	Categorical
)

// String returns the name of m.
func (m Mode) String() string {
	switch m {
	case Continuous:
		return "continuous"
	case Categorical:
		return "categorical"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Accessors extract a plain (x,y) series from records of type T.
// In Continuous mode X and Y are required, in Categorical mode Category
// and Y are.
type Accessors[T any] struct {
	X        func(T) float64
	Y        func(T) float64
	Category func(T) string
}

// BoxAccessors extract one box-plot item from a record of type T.
// Max, Min, Q1 and Q3 are always required; X is required in Continuous
// mode and Category in Categorical mode. Median, Outliers and Description
// are optional.
type BoxAccessors[T any] struct {
	X           func(T) float64
	Category    func(T) string
	Description func(T) string

	Max, Min func(T) float64
	Q1, Q3   func(T) float64

	// Median returns the median and whether the record has one.
	Median   func(T) (float64, bool)
	Outliers func(T) []float64
}

// Complete reports whether all accessors required in mode are set.
func (a Accessors[T]) Complete(mode Mode) bool {
	if a.Y == nil {
		return false
	}
	if mode == Categorical {
		return a.Category != nil
	}
	return a.X != nil
}

// Complete reports whether all accessors required in mode are set.
func (a BoxAccessors[T]) Complete(mode Mode) bool {
	if a.Max == nil || a.Min == nil || a.Q1 == nil || a.Q3 == nil {
		return false
	}
	if mode == Categorical {
		return a.Category != nil
	}
	return a.X != nil
}

// Scan is the result of one pass over the records.
type Scan struct {
	X, Y Interval // raw data ranges

	// Categories in first-seen order (Categorical mode only).
	Categories *Categories

	// Samples holds one (x,y) pair per record in source order: (x, max) for
	// box plots, (x, y) for plain series. In Categorical mode x is the
	// category index.
	Samples plotter.XYs
}

// EmptyScan returns the scan of an empty data source.
func EmptyScan() Scan {
	return Scan{X: EmptyInterval(), Y: EmptyInterval(), Categories: NewCategories()}
}

// Empty reports whether s found nothing to render.
func (s Scan) Empty() bool {
	return s.X.Empty() || s.Y.Empty()
}

// Count returns the number of scanned records.
func (s Scan) Count() int { return len(s.Samples) }

func (s *Scan) record(x, y float64) {
	s.Samples = append(s.Samples, struct{ X, Y float64 }{x, y})
}

// ScanSeries scans records once using acc. Incomplete accessors yield the
// empty scan.
func ScanSeries[T any](records []T, acc Accessors[T], mode Mode) Scan {
	s := EmptyScan()
	if !acc.Complete(mode) {
		logger.Debug("incomplete accessors, nothing to scan", "mode", mode)
		return s
	}
	for _, r := range records {
		var x float64
		if mode == Categorical {
			x = float64(s.Categories.Add(acc.Category(r)))
		} else {
			x = acc.X(r)
		}
		y := acc.Y(r)
		s.X.Update(x)
		s.Y.Update(y)
		s.record(x, y)
	}
	return s
}

// ScanBoxes scans the box-plot items in records once using acc. The Y range
// absorbs max, min, both quartiles, the median and all outliers of each
// item. Incomplete accessors yield the empty scan.
func ScanBoxes[T any](records []T, acc BoxAccessors[T], mode Mode) Scan {
	s := EmptyScan()
	if !acc.Complete(mode) {
		logger.Debug("incomplete box accessors, nothing to scan", "mode", mode)
		return s
	}
	for _, r := range records {
		var x float64
		if mode == Categorical {
			x = float64(s.Categories.Add(acc.Category(r)))
		} else {
			x = acc.X(r)
		}
		max := acc.Max(r)
		s.X.Update(x)
		s.Y.Update(max, acc.Min(r), acc.Q1(r), acc.Q3(r))
		if acc.Median != nil {
			if m, ok := acc.Median(r); ok {
				s.Y.Update(m)
			}
		}
		if acc.Outliers != nil {
			s.Y.Update(acc.Outliers(r)...)
		}
		s.record(x, max)
	}
	return s
}
