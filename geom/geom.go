// Package geom draws the glyphs of a chart in pixel space: box plots,
// clusters of box plots sharing a category and line series.
//
// Geoms never know the chart's axes. They map data values through a
// Mapper and emit primitive drawing commands to a canvas.Sink. Every glyph
// which can be hovered returns its hit region.
package geom

import "github.com/vdobler/boxchart/canvas"

// A Mapper maps data coordinates to pixel coordinates.
type Mapper interface {
	PixelX(x float64) float64
	PixelY(y float64) float64
}

// HitRegion associates a pixel rectangle with the record it was drawn for.
// Index is the position of the record in the data source.
type HitRegion struct {
	Bounds canvas.Rect
	Index  int
}
