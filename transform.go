package boxchart

// Transform maps between data space and pixel space. Pixel y grows
// downwards, so larger data values map to smaller pixel y.
type Transform struct {
	Geometry
	Range AxisRange
}

// PixelX maps the data x coordinate v to pixel space.
func (t Transform) PixelX(v float64) float64 {
	return t.Left + t.GutterWidth + (v-t.Range.X.Min)*t.ScaleX
}

// PixelY maps the data y coordinate v to pixel space.
func (t Transform) PixelY(v float64) float64 {
	return t.Top + t.ChartHeight - t.GutterHeight - (v-t.Range.Y.Min)*t.ScaleY
}

// DataX is the inverse of PixelX.
func (t Transform) DataX(p float64) float64 {
	return (p-t.Left-t.GutterWidth)/t.ScaleX + t.Range.X.Min
}

// DataY is the inverse of PixelY.
func (t Transform) DataY(p float64) float64 {
	return (t.Top+t.ChartHeight-t.GutterHeight-p)/t.ScaleY + t.Range.Y.Min
}
