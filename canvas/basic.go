package canvas

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// BasicMeasurer measures text with the fixed 7x13 bitmap face, scaled
// linearly to the requested size. It needs no font files and its results
// are exact, which makes layouts reproducible.
type BasicMeasurer struct{}

// nominal is the size at which basicfont.Face7x13 renders unscaled.
const nominal = 13

// Width implements Measurer. For multi-line strings the widest line counts.
func (BasicMeasurer) Width(s string, size float64) float64 {
	widest := 0.0
	for _, line := range strings.Split(s, "\n") {
		adv := font.MeasureString(basicfont.Face7x13, line)
		if w := float64(adv) / 64; w > widest {
			widest = w
		}
	}
	return widest * size / nominal
}

// Height implements Measurer.
func (BasicMeasurer) Height(s string, size float64) float64 {
	lines := strings.Count(s, "\n") + 1
	h := float64(basicfont.Face7x13.Metrics().Height) / 64
	return float64(lines) * h * size / nominal
}
