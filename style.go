package boxchart

import (
	"image/color"

	"github.com/vdobler/boxchart/geom"
	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Style controls how a chart is drawn. It is owned by the caller and
// only read during a render pass.
type Style struct {
	Layout LayoutStyle

	Border     draw.LineStyle // around the chart area
	GutterFill color.Color    // background of both axis gutters

	Grid               draw.LineStyle
	ShowHorizontalGrid bool
	ShowVerticalGrid   bool
	ZeroLine           draw.LineStyle

	MajorTick       draw.LineStyle // length is Layout.TickLength
	MinorTick       draw.LineStyle
	MinorTickLength float64
	MinorTicks      int // number of minor ticks between two major ticks

	// Label is used for all axis labels. Its size is replaced by the
	// size found during layout.
	Label draw.TextStyle

	Box     geom.BoxStyle
	BoxSize geom.BoxSize

	Line draw.LineStyle // line series

	Crosshair struct {
		draw.LineStyle
		Radius   float64 // of the ring around the snapped point
		Text     draw.TextStyle
		Backdrop color.Color
	}
}

// DefaultStyle returns a Style using the Helvetica font. It panics if the
// font cannot be loaded.
func DefaultStyle() Style {
	sty, err := NewStyle("Helvetica")
	if err != nil {
		panic(err)
	}
	return sty
}

// NewStyle returns the default style with axis and crosshair labels set in
// the named font.
func NewStyle(font string) (Style, error) {
	ls := DefaultLayoutStyle()
	labelFont, err := vg.MakeFont(font, vg.Length(ls.FontSize))
	if err != nil {
		return Style{}, err
	}
	crossFont, err := vg.MakeFont(font, 13)
	if err != nil {
		return Style{}, err
	}

	s := Style{Layout: ls}
	s.Border = draw.LineStyle{Color: color.Black, Width: 1}
	s.GutterFill = colornames.Ghostwhite

	s.Grid = draw.LineStyle{Color: colornames.Darkgray, Width: 0.5}
	s.ShowHorizontalGrid = true
	s.ShowVerticalGrid = true
	s.ZeroLine = draw.LineStyle{Color: colornames.Darkgray, Width: 0.5, Dashes: []vg.Length{32, 32}}

	s.MajorTick = draw.LineStyle{Color: color.Black, Width: 0.5}
	s.MinorTick = draw.LineStyle{Color: color.Black, Width: 0.5}
	s.MinorTickLength = 4
	s.MinorTicks = 9

	s.Label.Color = color.Black
	s.Label.Font = labelFont

	s.Box = geom.BoxStyle{
		Fill:          colornames.Gainsboro,
		Border:        draw.LineStyle{Color: color.Black, Width: 1},
		CornerRadius:  6,
		Whisker:       draw.LineStyle{Color: color.Black, Width: 1},
		Median:        draw.LineStyle{Color: color.Black, Width: 1},
		OutlierFill:   colornames.Gainsboro,
		OutlierBorder: draw.LineStyle{Color: color.Black, Width: 1},
	}
	s.BoxSize = geom.DefaultBoxSize()

	s.Line = draw.LineStyle{Color: color.Black, Width: 1}

	s.Crosshair.Color = colornames.Darkgreen
	s.Crosshair.Width = 0.8
	s.Crosshair.Radius = 5
	s.Crosshair.Text.Color = colornames.Darkgreen
	s.Crosshair.Text.Font = crossFont
	s.Crosshair.Backdrop = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xb9}

	return s, nil
}

// labelStyle returns the axis label style at the given font size.
func (s *Style) labelStyle(size float64) draw.TextStyle {
	ts := s.Label
	ts.Font.Size = vg.Length(size)
	return ts
}

// SeriesPalette returns n box fills taken evenly from a smooth blue-red
// color map, e.g. for Style.Box.SeriesFills.
func SeriesPalette(n int) []color.Color {
	if n <= 0 {
		return nil
	}
	cm := moreland.SmoothBlueRed()
	cm.SetMin(0)
	cm.SetMax(1)
	fills := make([]color.Color, n)
	for i := range fills {
		col, err := cm.At((float64(i) + 0.5) / float64(n))
		if err != nil {
			col = nil
		}
		fills[i] = col
	}
	return fills
}
