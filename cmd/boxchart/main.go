// Command boxchart renders box plot and line charts from YAML files or
// Excel workbooks to PNG, SVG or PDF.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vdobler/boxchart"
	"github.com/vdobler/boxchart/canvas"
	"github.com/vdobler/boxchart/internal/records"
)

var (
	outputPath  string
	configPath  string
	sheet       string
	backend     string
	chartType   string
	width       float64
	height      float64
	categorical bool
	crosshair   float64
	verbose     bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree and binds the flag variables to their
// defaults.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "boxchart",
		Short:        "Render box plot and line charts",
		SilenceUsage: true,
	}

	renderCmd := &cobra.Command{
		Use:   "render [records.yaml|records.xlsx]",
		Short: "Render the records to a PNG, SVG or PDF file",
		Long: `render reads box plot records (x or category, max, q3, median, q1, min,
outliers, description) and draws one box per record. With --chart line the
y values are drawn as a line instead. The output format is taken from the
extension of the output file.`,
		Args: cobra.ExactArgs(1),
		RunE: render,
	}
	flags := renderCmd.Flags()
	flags.StringVarP(&outputPath, "output", "o", "chart.png", "Output file (.png, .svg or .pdf)")
	flags.StringVarP(&configPath, "config", "c", "", "Chart configuration (.yaml or .toml)")
	flags.StringVar(&sheet, "sheet", "", "Worksheet to read from an .xlsx file (default: first sheet)")
	flags.StringVar(&backend, "backend", "vg", "SVG backend: vg or svgo")
	flags.StringVar(&chartType, "chart", "box", "Chart type: box or line")
	flags.Float64Var(&width, "width", 0, "Width in pixels (overrides config)")
	flags.Float64Var(&height, "height", 0, "Height in pixels (overrides config)")
	flags.BoolVar(&categorical, "categorical", false, "Use a categorical X axis")
	flags.Float64Var(&crosshair, "crosshair", 0, "Draw a crosshair snapped to the sample nearest this pixel x")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log layout details")

	rootCmd.AddCommand(renderCmd)
	return rootCmd
}

// chart is implemented by *boxchart.BoxChart and *boxchart.LineChart.
type chart interface {
	Validate() error
	Render(s canvas.Sink, vp boxchart.Viewport, m canvas.Measurer) *boxchart.Frame
}

func render(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	boxchart.SetLogger(log)

	if backend != "vg" && backend != "svgo" {
		return fmt.Errorf("invalid backend: %s (must be vg or svgo)", backend)
	}

	cfg := boxchart.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = boxchart.LoadConfig(configPath); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	if categorical {
		cfg.Categorical = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	recs, err := records.Load(args[0], sheet)
	if err != nil {
		return err
	}
	log.Debug("records loaded", "file", args[0], "count", len(recs))

	var c chart
	switch chartType {
	case "box":
		c = &boxchart.BoxChart[records.Record]{Records: recs, Accessors: records.BoxAccessors(), Options: opts}
	case "line":
		c = &boxchart.LineChart[records.Record]{Records: recs, Accessors: records.SeriesAccessors(), Options: opts}
	default:
		return fmt.Errorf("invalid chart type: %s (must be box or line)", chartType)
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	m := canvas.FontMeasurer{Font: opts.Style.Label.Font}
	paint := func(s canvas.Sink) *boxchart.Frame {
		frame := c.Render(s, cfg.Viewport(), m)
		if cmd.Flags().Changed("crosshair") {
			if x, y, ok := frame.Crosshair(s, crosshair); ok {
				log.Debug("crosshair", "x", x, "y", y)
			}
		}
		return frame
	}

	frame, err := write(outputPath, cfg.Viewport(), paint)
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	log.Info("chart written", "output", outputPath, "records", len(recs),
		"regions", len(frame.Regions), "range", frame.Range.String())
	return nil
}

// write renders through paint onto a canvas matching the extension of path
// and stores the result in path.
func write(path string, vp boxchart.Viewport, paint func(canvas.Sink) *boxchart.Frame) (frame *boxchart.Frame, err error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png", ".svg", ".pdf":
	default:
		return nil, fmt.Errorf("unsupported output format %q", ext)
	}

	out, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	switch {
	case ext == ".png":
		img, sink := canvas.NewImage(vp.Width, vp.Height)
		frame = paint(sink)
		err = canvas.WritePNG(out, img)
	case ext == ".svg" && backend == "svgo":
		sink := canvas.NewSVG(out, int(vp.Width), int(vp.Height))
		frame = paint(sink)
		sink.End()
	case ext == ".svg":
		c, sink := canvas.NewVectorSVG(vp.Width, vp.Height)
		frame = paint(sink)
		_, err = c.WriteTo(out)
	case ext == ".pdf":
		c, sink := canvas.NewPDF(vp.Width, vp.Height)
		frame = paint(sink)
		_, err = c.WriteTo(out)
	}
	return frame, err
}
