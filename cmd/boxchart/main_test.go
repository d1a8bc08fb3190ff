package main

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/boxchart"
	"github.com/vdobler/boxchart/canvas"
)

var testViewport = boxchart.Viewport{Width: 120, Height: 80}

// paintRect draws one red square and records that it was called.
func paintRect(called *bool) func(canvas.Sink) *boxchart.Frame {
	return func(s canvas.Sink) *boxchart.Frame {
		*called = true
		s.RoundedRect(color.RGBA{R: 0xff, A: 0xff}, draw.LineStyle{}, canvas.Rect{X: 10, Y: 10, W: 20, H: 20}, 0)
		return &boxchart.Frame{}
	}
}

var writeTests = []struct {
	name    string
	backend string
	marker  string
}{
	{"chart.png", "vg", "\x89PNG"},
	{"chart.svg", "vg", "<svg"},
	{"chart.svg", "svgo", "<svg"},
	{"chart.PDF", "vg", "%PDF"},
}

func TestWrite(t *testing.T) {
	for _, tc := range writeTests {
		t.Run(tc.name+"/"+tc.backend, func(t *testing.T) {
			backend = tc.backend
			defer func() { backend = "vg" }()

			path := filepath.Join(t.TempDir(), tc.name)
			called := false
			frame, err := write(path, testViewport, paintRect(&called))
			require.NoError(t, err)
			assert.True(t, called)
			assert.NotNil(t, frame)

			buf, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.True(t, bytes.Contains(buf, []byte(tc.marker)), "got %.40q", buf)
		})
	}
}

func TestWriteUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.gif")
	called := false
	_, err := write(path, testViewport, paintRect(&called))
	assert.ErrorContains(t, err, "unsupported output format")
	assert.False(t, called)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "no file is created")
}

const lineRecords = `
- {x: 1, y: 3}
- {x: 2, y: 5}
- {x: 4, y: 1}
`

// runRender executes "boxchart render" on the line records and returns the
// SVG written.
func runRender(t *testing.T, extra ...string) string {
	t.Helper()
	dir := t.TempDir()
	in := filepath.Join(dir, "records.yaml")
	require.NoError(t, os.WriteFile(in, []byte(lineRecords), 0o644))
	out := filepath.Join(dir, "chart.svg")

	cmd := newRootCmd()
	args := append([]string{"render", in, "-o", out, "--backend", "svgo", "--chart", "line"}, extra...)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())

	buf, err := os.ReadFile(out)
	require.NoError(t, err)
	return string(buf)
}

func TestRenderCrosshair(t *testing.T) {
	plain := runRender(t)
	assert.Zero(t, strings.Count(plain, "<ellipse"))
	assert.NotContains(t, plain, "X: ")

	// Pixel 0 snaps to the first sample.
	cross := runRender(t, "--crosshair", "0")
	assert.Equal(t, 1, strings.Count(cross, "<ellipse"))
	assert.Contains(t, cross, ">X: 1<")
	assert.Contains(t, cross, ">Y: 3<")
}

func TestRenderErrors(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"render", "missing.yaml", "--backend", "cairo"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	assert.ErrorContains(t, cmd.Execute(), "invalid backend")

	cmd = newRootCmd()
	cmd.SetArgs([]string{"render", "missing.yaml", "--chart", "pie"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	assert.Error(t, cmd.Execute())
}
