package geom

import (
	"image/color"

	"gonum.org/v1/plot/vg/draw"
)

// BoxStyle controls the appearance of a box plot glyph.
type BoxStyle struct {
	// Fill and Border of the quartile box.
	Fill         color.Color
	Border       draw.LineStyle
	CornerRadius float64

	Whisker draw.LineStyle // max and min lines and their connectors
	Median  draw.LineStyle

	OutlierFill   color.Color
	OutlierBorder draw.LineStyle

	// SeriesFills overrides Fill for the n'th box inside a category
	// cluster. Missing or nil entries use Fill.
	SeriesFills []color.Color
}

// FillFor returns the box fill of the item with the given ordinal inside
// its category cluster.
func (s BoxStyle) FillFor(ordinal int) color.Color {
	if ordinal >= 0 && ordinal < len(s.SeriesFills) && s.SeriesFills[ordinal] != nil {
		return s.SeriesFills[ordinal]
	}
	return s.Fill
}
