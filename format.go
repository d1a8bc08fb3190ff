package boxchart

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// A Formatter turns an axis or crosshair value into its label.
// The same Formatter must be used for measuring and drawing labels.
type Formatter func(float64) string

// PlainFormat formats values with at most digits decimal places and no
// trailing zeros, e.g. 2.5, 10 or 0.125.
func PlainFormat(digits int) Formatter {
	return func(v float64) string {
		return zero(humanize.FtoaWithDigits(v, digits))
	}
}

// SIFormat formats values with an SI prefix, e.g. 1.5k or 20µ.
func SIFormat(digits int) Formatter {
	return func(v float64) string {
		s := strings.TrimSpace(humanize.SIWithDigits(v, digits, ""))
		return zero(strings.Replace(s, " ", "", 1))
	}
}

// CommaFormat formats values with thousands separators, e.g. 12,500.5.
func CommaFormat(digits int) Formatter {
	return func(v float64) string {
		return zero(humanize.CommafWithDigits(v, digits))
	}
}

// zero normalises negative zero.
func zero(s string) string {
	if s == "-0" {
		return "0"
	}
	return s
}

// ParseFormat returns the Formatter named by name: "plain", "si" or
// "comma". The empty name selects "plain".
func ParseFormat(name string, digits int) (Formatter, error) {
	if digits < 0 {
		digits = 0
	}
	switch strings.ToLower(name) {
	case "", "plain":
		return PlainFormat(digits), nil
	case "si":
		return SIFormat(digits), nil
	case "comma":
		return CommaFormat(digits), nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownFormat, name)
}

// safe wraps f so that non-finite values yield an empty label.
func safe(f Formatter) Formatter {
	if f == nil {
		f = PlainFormat(6)
	}
	return func(v float64) string {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ""
		}
		return f(v)
	}
}
