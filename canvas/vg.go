package canvas

import (
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// VG is a Sink drawing onto a gonum/plot draw.Canvas. Pixel coordinates are
// relative to the canvas' top-left corner; one pixel is one vg.Point.
type VG struct {
	draw.Canvas
}

// NewVG wraps c.
func NewVG(c draw.Canvas) *VG {
	return &VG{Canvas: c}
}

// NewImage returns a raster canvas of w x h pixels and a Sink drawing on it.
// The canvas uses 72 dpi so that one pixel is one point.
func NewImage(w, h float64) (*vgimg.Canvas, *VG) {
	img := vgimg.NewWith(vgimg.UseWH(vg.Length(w), vg.Length(h)), vgimg.UseDPI(72))
	return img, NewVG(draw.New(img))
}

// WritePNG encodes img as PNG to w.
func WritePNG(w io.Writer, img *vgimg.Canvas) error {
	png := vgimg.PngCanvas{Canvas: img}
	_, err := png.WriteTo(w)
	return err
}

// NewVectorSVG returns a gonum SVG canvas of w x h pixels and a Sink
// drawing on it. Use its WriteTo method to emit the document.
func NewVectorSVG(w, h float64) (*vgsvg.Canvas, *VG) {
	c := vgsvg.New(vg.Length(w), vg.Length(h))
	return c, NewVG(draw.New(c))
}

// NewPDF returns a single page PDF canvas of w x h points and a Sink
// drawing on it. Use its WriteTo method to emit the document.
func NewPDF(w, h float64) (*vgpdf.Canvas, *VG) {
	c := vgpdf.New(vg.Length(w), vg.Length(h))
	return c, NewVG(draw.New(c))
}

// pt maps the pixel coordinate (x,y) to a point on the canvas.
func (v *VG) pt(x, y float64) vg.Point {
	return vg.Point{
		X: v.Min.X + vg.Length(x),
		Y: v.Max.Y - vg.Length(y),
	}
}

func visible(sty draw.LineStyle) bool {
	return sty.Color != nil && sty.Width > 0
}

// Line implements Sink.
func (v *VG) Line(sty draw.LineStyle, x0, y0, x1, y1 float64) {
	if !visible(sty) {
		return
	}
	a, b := v.pt(x0, y0), v.pt(x1, y1)
	v.StrokeLine2(sty, a.X, a.Y, b.X, b.Y)
}

// RoundedRect implements Sink.
func (v *VG) RoundedRect(fill color.Color, border draw.LineStyle, r Rect, radius float64) {
	r = Canonic(r)
	rad := math.Min(radius, math.Min(r.W, r.H)/2)
	if rad < 0 {
		rad = 0
	}
	tl := v.pt(r.X, r.Y)
	br := v.pt(r.X+r.W, r.Y+r.H)
	x0, x1 := tl.X, br.X
	yb, yt := br.Y, tl.Y
	rd := vg.Length(rad)

	var p vg.Path
	p.Move(vg.Point{X: x0 + rd, Y: yb})
	p.Line(vg.Point{X: x1 - rd, Y: yb})
	if rd > 0 {
		p.Arc(vg.Point{X: x1 - rd, Y: yb + rd}, rd, -math.Pi/2, math.Pi/2)
	}
	p.Line(vg.Point{X: x1, Y: yt - rd})
	if rd > 0 {
		p.Arc(vg.Point{X: x1 - rd, Y: yt - rd}, rd, 0, math.Pi/2)
	}
	p.Line(vg.Point{X: x0 + rd, Y: yt})
	if rd > 0 {
		p.Arc(vg.Point{X: x0 + rd, Y: yt - rd}, rd, math.Pi/2, math.Pi/2)
	}
	p.Line(vg.Point{X: x0, Y: yb + rd})
	if rd > 0 {
		p.Arc(vg.Point{X: x0 + rd, Y: yb + rd}, rd, math.Pi, math.Pi/2)
	}
	p.Close()

	if fill != nil {
		v.SetColor(fill)
		v.Fill(p)
	}
	if visible(border) {
		v.SetLineStyle(border)
		v.Stroke(p)
	}
}

// Ellipse implements Sink. Ellipses which are not circles are drawn as a
// scaled circle, which also scales the border width.
func (v *VG) Ellipse(fill color.Color, border draw.LineStyle, cx, cy, rx, ry float64) {
	if rx <= 0 || ry <= 0 {
		return
	}
	c := v.pt(cx, cy)
	v.Push()
	defer v.Pop()
	v.Translate(c)
	if rx != ry {
		v.Scale(1, ry/rx)
	}
	var p vg.Path
	p.Move(vg.Point{X: vg.Length(rx)})
	p.Arc(vg.Point{}, vg.Length(rx), 0, 2*math.Pi)
	p.Close()
	if fill != nil {
		v.SetColor(fill)
		v.Fill(p)
	}
	if visible(border) {
		v.SetLineStyle(border)
		v.Stroke(p)
	}
}

// Text implements Sink.
func (v *VG) Text(sty draw.TextStyle, x, y float64, s string) {
	if sty.Color == nil {
		sty.Color = color.Black
	}
	sty.XAlign = draw.XLeft
	sty.YAlign = draw.YTop
	v.FillText(sty, v.pt(x, y), s)
}

// FontMeasurer measures text with a gonum vg.Font.
type FontMeasurer struct {
	Font vg.Font
}

// NewFontMeasurer loads the named font, e.g. "Helvetica".
func NewFontMeasurer(name string) (FontMeasurer, error) {
	f, err := vg.MakeFont(name, 12)
	if err != nil {
		return FontMeasurer{}, err
	}
	return FontMeasurer{Font: f}, nil
}

func (m FontMeasurer) style(size float64) draw.TextStyle {
	f := m.Font
	f.Size = vg.Length(size)
	return draw.TextStyle{Font: f}
}

// Width implements Measurer.
func (m FontMeasurer) Width(s string, size float64) float64 {
	return float64(m.style(size).Width(s))
}

// Height implements Measurer.
func (m FontMeasurer) Height(s string, size float64) float64 {
	return float64(m.style(size).Height(s))
}
