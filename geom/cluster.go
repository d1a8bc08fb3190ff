package geom

// Cluster lays out Count glyphs of Width pixels side by side so that the
// group is centred on Center. All values are in pixel space.
type Cluster struct {
	Center float64
	Width  float64
	Count  int
}

// Start returns the left edge of the cluster.
func (c Cluster) Start() float64 {
	return c.Center - float64(c.Count)*c.Width/2
}

// Offset returns the centre of the j'th glyph in the cluster.
func (c Cluster) Offset(j int) float64 {
	return c.Center + float64(2*j-c.Count+1)*c.Width/2
}
