package boxchart

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/vdobler/boxchart/geom"
	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"
)

// Config is the file representation of the options of a chart and the
// viewport it is rendered in. Unset fields keep their DefaultConfig value.
type Config struct {
	Width   float64 `yaml:"width" toml:"width"`
	Height  float64 `yaml:"height" toml:"height"`
	Padding Insets  `yaml:"padding" toml:"padding"`

	Categorical bool `yaml:"categorical" toml:"categorical"`

	// Pins fix axis bounds; a missing pin is computed from the data.
	Pins struct {
		XMin *float64 `yaml:"xmin" toml:"xmin"`
		XMax *float64 `yaml:"xmax" toml:"xmax"`
		YMin *float64 `yaml:"ymin" toml:"ymin"`
		YMax *float64 `yaml:"ymax" toml:"ymax"`
	} `yaml:"pins" toml:"pins"`

	Format string `yaml:"format" toml:"format"` // plain, si or comma
	Digits int    `yaml:"digits" toml:"digits"`

	Font        string  `yaml:"font" toml:"font"`
	FontSize    float64 `yaml:"font_size" toml:"font_size"`
	MinFontSize float64 `yaml:"min_font_size" toml:"min_font_size"`

	GutterWidth     float64 `yaml:"gutter_width" toml:"gutter_width"`
	GutterHeight    float64 `yaml:"gutter_height" toml:"gutter_height"`
	TickLength      float64 `yaml:"tick_length" toml:"tick_length"`
	MinorTickLength float64 `yaml:"minor_tick_length" toml:"minor_tick_length"`

	Grid struct {
		Horizontal bool `yaml:"horizontal" toml:"horizontal"`
		Vertical   bool `yaml:"vertical" toml:"vertical"`
	} `yaml:"grid" toml:"grid"`

	Box struct {
		Width         float64 `yaml:"width" toml:"width"`
		MaxLine       float64 `yaml:"max_line" toml:"max_line"`
		MinLine       float64 `yaml:"min_line" toml:"min_line"`
		OutlierRadius float64 `yaml:"outlier_radius" toml:"outlier_radius"`
		CornerRadius  float64 `yaml:"corner_radius" toml:"corner_radius"`
	} `yaml:"box" toml:"box"`

	// Colors are color names like "gainsboro" or hex values like "#d8d8d8".
	// Empty values keep the default color.
	Colors struct {
		BoxFill   string `yaml:"box_fill" toml:"box_fill"`
		Stroke    string `yaml:"stroke" toml:"stroke"`
		Outlier   string `yaml:"outlier" toml:"outlier"`
		Grid      string `yaml:"grid" toml:"grid"`
		Gutter    string `yaml:"gutter" toml:"gutter"`
		Line      string `yaml:"line" toml:"line"`
		Crosshair string `yaml:"crosshair" toml:"crosshair"`
	} `yaml:"colors" toml:"colors"`

	// SeriesFills are the box fills of the 1st, 2nd, ... box inside a
	// category cluster. If empty and SeriesPalette is positive that many
	// fills are taken from a blue-red palette.
	SeriesFills   []string `yaml:"series_fills" toml:"series_fills"`
	SeriesPalette int      `yaml:"series_palette" toml:"series_palette"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	ls := DefaultLayoutStyle()
	bs := geom.DefaultBoxSize()
	c := &Config{
		Width:           640,
		Height:          400,
		Padding:         Insets{Left: 4, Top: 4, Right: 4, Bottom: 4},
		Format:          "plain",
		Digits:          6,
		Font:            "Helvetica",
		FontSize:        ls.FontSize,
		MinFontSize:     ls.MinFontSize,
		GutterWidth:     ls.GutterWidth,
		GutterHeight:    ls.GutterHeight,
		TickLength:      ls.TickLength,
		MinorTickLength: 4,
	}
	c.Grid.Horizontal, c.Grid.Vertical = true, true
	c.Box.Width = bs.Box
	c.Box.MaxLine = bs.MaxLine
	c.Box.MinLine = bs.MinLine
	c.Box.OutlierRadius = bs.OutlierRadius
	c.Box.CornerRadius = 6
	return c
}

// LoadConfig reads a YAML (.yaml, .yml) or TOML (.toml) configuration file.
// Fields missing in the file keep their default value; unknown fields are
// an error.
func LoadConfig(path string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	c := DefaultConfig()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(buf))
		dec.KnownFields(true)
		if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(buf)).DisallowUnknownFields()
		if err := dec.Decode(c); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	default:
		return nil, &ConfigError{Path: path, Field: "(file)", Err: fmt.Errorf("unsupported extension %q", ext)}
	}
	if err := c.Validate(); err != nil {
		var ce *ConfigError
		if errors.As(err, &ce) {
			ce.Path = path
		}
		return nil, err
	}
	return c, nil
}

// Validate checks c for values no chart can be drawn with.
func (c *Config) Validate() error {
	positive := []struct {
		field string
		v     float64
	}{
		{"width", c.Width},
		{"height", c.Height},
		{"font_size", c.FontSize},
		{"min_font_size", c.MinFontSize},
		{"box.width", c.Box.Width},
	}
	for _, p := range positive {
		if !(p.v > 0) {
			return &ConfigError{Field: p.field, Err: fmt.Errorf("must be positive, got %g", p.v)}
		}
	}
	if c.MinFontSize > c.FontSize {
		return &ConfigError{Field: "min_font_size",
			Err: fmt.Errorf("%g exceeds font_size %g", c.MinFontSize, c.FontSize)}
	}
	if c.Digits < 0 || c.Digits > 15 {
		return &ConfigError{Field: "digits", Err: fmt.Errorf("%d not in [0,15]", c.Digits)}
	}
	if _, err := ParseFormat(c.Format, c.Digits); err != nil {
		return &ConfigError{Field: "format", Err: err}
	}
	if _, err := c.Style(); err != nil {
		return err
	}
	return nil
}

// Viewport returns the configured viewport.
func (c *Config) Viewport() Viewport {
	return Viewport{Width: c.Width, Height: c.Height, Padding: c.Padding}
}

// Mode returns the configured axis mode.
func (c *Config) Mode() Mode {
	if c.Categorical {
		return Categorical
	}
	return Continuous
}

// AxisPins returns the configured axis pins.
func (c *Config) AxisPins() Pins {
	return Pins{XMin: c.Pins.XMin, XMax: c.Pins.XMax, YMin: c.Pins.YMin, YMax: c.Pins.YMax}
}

// Formatter returns the configured label formatter.
func (c *Config) Formatter() (Formatter, error) {
	f, err := ParseFormat(c.Format, c.Digits)
	if err != nil {
		return nil, &ConfigError{Field: "format", Err: err}
	}
	return f, nil
}

// Style returns the default style modified by c.
func (c *Config) Style() (Style, error) {
	s, err := NewStyle(c.Font)
	if err != nil {
		return Style{}, &ConfigError{Field: "font", Err: err}
	}

	s.Layout.FontSize = c.FontSize
	s.Layout.MinFontSize = c.MinFontSize
	s.Layout.GutterWidth = c.GutterWidth
	s.Layout.GutterHeight = c.GutterHeight
	s.Layout.TickLength = c.TickLength
	s.MinorTickLength = c.MinorTickLength
	s.Label.Font.Size = vg.Length(c.FontSize)
	s.ShowHorizontalGrid = c.Grid.Horizontal
	s.ShowVerticalGrid = c.Grid.Vertical

	s.BoxSize = geom.BoxSize{
		Box:           c.Box.Width,
		MaxLine:       c.Box.MaxLine,
		MinLine:       c.Box.MinLine,
		OutlierRadius: c.Box.OutlierRadius,
	}
	s.Box.CornerRadius = c.Box.CornerRadius

	colors := []struct {
		field string
		value string
		set   func(color.Color)
	}{
		{"colors.box_fill", c.Colors.BoxFill, func(col color.Color) { s.Box.Fill = col }},
		{"colors.stroke", c.Colors.Stroke, func(col color.Color) {
			s.Box.Border.Color = col
			s.Box.Whisker.Color = col
			s.Box.Median.Color = col
			s.Box.OutlierBorder.Color = col
		}},
		{"colors.outlier", c.Colors.Outlier, func(col color.Color) { s.Box.OutlierFill = col }},
		{"colors.grid", c.Colors.Grid, func(col color.Color) {
			s.Grid.Color = col
			s.ZeroLine.Color = col
		}},
		{"colors.gutter", c.Colors.Gutter, func(col color.Color) { s.GutterFill = col }},
		{"colors.line", c.Colors.Line, func(col color.Color) { s.Line.Color = col }},
		{"colors.crosshair", c.Colors.Crosshair, func(col color.Color) {
			s.Crosshair.Color = col
			s.Crosshair.Text.Color = col
		}},
	}
	for _, cc := range colors {
		if cc.value == "" {
			continue
		}
		col, err := ParseColor(cc.value)
		if err != nil {
			return Style{}, &ConfigError{Field: cc.field, Err: err}
		}
		cc.set(col)
	}

	if len(c.SeriesFills) == 0 {
		s.Box.SeriesFills = SeriesPalette(c.SeriesPalette)
		return s, nil
	}
	s.Box.SeriesFills = make([]color.Color, len(c.SeriesFills))
	for i, name := range c.SeriesFills {
		if name == "" {
			continue
		}
		col, err := ParseColor(name)
		if err != nil {
			return Style{}, &ConfigError{Field: fmt.Sprintf("series_fills[%d]", i), Err: err}
		}
		s.Box.SeriesFills[i] = col
	}
	return s, nil
}

// Options returns the chart options described by c.
func (c *Config) Options() (Options, error) {
	format, err := c.Formatter()
	if err != nil {
		return Options{}, err
	}
	sty, err := c.Style()
	if err != nil {
		return Options{}, err
	}
	return Options{Mode: c.Mode(), Pins: c.AxisPins(), Format: format, Style: sty}, nil
}

// ParseColor parses an SVG color name ("darkgreen"), "none" or a hex color
// of the form #rgb, #rrggbb or #rrggbbaa.
func ParseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "none" || s == "transparent" {
		return color.Transparent, nil
	}
	if col, ok := colornames.Map[s]; ok {
		return col, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return nil, fmt.Errorf("unknown color %q", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return nil, fmt.Errorf("bad hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("bad hex color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
