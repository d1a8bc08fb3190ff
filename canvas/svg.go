package canvas

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"
	"gonum.org/v1/plot/vg/draw"
)

// SVG is a Sink writing SVG elements directly through ajstarks/svgo.
// Coordinates are rounded to whole pixels.
type SVG struct {
	*svg.SVG
	FontFamily string
}

// NewSVG starts an SVG document of w x h pixels on out. Call End when done.
func NewSVG(out io.Writer, w, h int) *SVG {
	s := svg.New(out)
	s.Start(w, h)
	return &SVG{SVG: s, FontFamily: "Helvetica,Arial,sans-serif"}
}

func px(v float64) int { return int(math.Round(v)) }

func cssColor(c color.Color) string {
	if c == nil {
		return "none"
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return "none"
	}
	if a == 0xffff {
		return fmt.Sprintf("rgb(%d,%d,%d)", r>>8, g>>8, b>>8)
	}
	// Un-premultiply for CSS.
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)",
		r*0xffff/a>>8, g*0xffff/a>>8, b*0xffff/a>>8, float64(a)/0xffff)
}

func strokeAttr(sty draw.LineStyle) string {
	if !visible(sty) {
		return "stroke:none"
	}
	s := fmt.Sprintf("stroke:%s;stroke-width:%g", cssColor(sty.Color), float64(sty.Width))
	if len(sty.Dashes) > 0 {
		dashes := make([]string, len(sty.Dashes))
		for i, d := range sty.Dashes {
			dashes[i] = fmt.Sprintf("%g", float64(d))
		}
		s += ";stroke-dasharray:" + strings.Join(dashes, ",")
	}
	return s
}

// Line implements Sink.
func (s *SVG) Line(sty draw.LineStyle, x0, y0, x1, y1 float64) {
	if !visible(sty) {
		return
	}
	s.SVG.Line(px(x0), px(y0), px(x1), px(y1), strokeAttr(sty))
}

// RoundedRect implements Sink.
func (s *SVG) RoundedRect(fill color.Color, border draw.LineStyle, r Rect, radius float64) {
	r = Canonic(r)
	style := "fill:" + cssColor(fill) + ";" + strokeAttr(border)
	if radius <= 0 {
		s.Rect(px(r.X), px(r.Y), px(r.W), px(r.H), style)
		return
	}
	s.Roundrect(px(r.X), px(r.Y), px(r.W), px(r.H), px(radius), px(radius), style)
}

// Ellipse implements Sink.
func (s *SVG) Ellipse(fill color.Color, border draw.LineStyle, cx, cy, rx, ry float64) {
	style := "fill:" + cssColor(fill) + ";" + strokeAttr(border)
	s.SVG.Ellipse(px(cx), px(cy), px(rx), px(ry), style)
}

// Text implements Sink. Multi-line strings are drawn line by line.
func (s *SVG) Text(sty draw.TextStyle, x, y float64, txt string) {
	size := float64(sty.Font.Size)
	col := sty.Color
	if col == nil {
		col = color.Black
	}
	style := fmt.Sprintf("font-family:%s;font-size:%gpx;fill:%s", s.FontFamily, size, cssColor(col))
	for i, line := range strings.Split(txt, "\n") {
		// svgo positions text at its baseline.
		base := y + size*(0.8+float64(i))
		s.SVG.Text(px(x), px(base), line, style)
	}
}
