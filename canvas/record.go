package canvas

import (
	"image/color"

	"gonum.org/v1/plot/vg/draw"
)

// Op identifies the kind of a recorded drawing command.
type Op int

const (
	OpLine Op = iota
	OpRect
	OpEllipse
	OpText
)

func (op Op) String() string {
	return []string{"line", "rect", "ellipse", "text"}[int(op)]
}

// A Command is one recorded call to a Sink.
type Command struct {
	Op Op

	// Line end points, ellipse centre in (X0,Y0) and radii in (X1,Y1),
	// text origin in (X0,Y0).
	X0, Y0, X1, Y1 float64

	Rect   Rect    // OpRect only
	Radius float64 // OpRect corner radius

	Fill   color.Color
	Stroke draw.LineStyle

	Text string
	Size float64 // OpText font size
}

// Recorder is a Sink which just records all commands.
type Recorder struct {
	Commands []Command
}

// Line implements Sink.
func (r *Recorder) Line(sty draw.LineStyle, x0, y0, x1, y1 float64) {
	r.Commands = append(r.Commands, Command{Op: OpLine, X0: x0, Y0: y0, X1: x1, Y1: y1, Stroke: sty})
}

// RoundedRect implements Sink.
func (r *Recorder) RoundedRect(fill color.Color, border draw.LineStyle, rect Rect, radius float64) {
	r.Commands = append(r.Commands, Command{Op: OpRect, Rect: rect, Radius: radius, Fill: fill, Stroke: border})
}

// Ellipse implements Sink.
func (r *Recorder) Ellipse(fill color.Color, border draw.LineStyle, cx, cy, rx, ry float64) {
	r.Commands = append(r.Commands, Command{Op: OpEllipse, X0: cx, Y0: cy, X1: rx, Y1: ry, Fill: fill, Stroke: border})
}

// Text implements Sink.
func (r *Recorder) Text(sty draw.TextStyle, x, y float64, s string) {
	r.Commands = append(r.Commands, Command{Op: OpText, X0: x, Y0: y, Text: s, Size: float64(sty.Font.Size), Fill: sty.Color})
}

// Filter returns the recorded commands of kind op in recording order.
func (r *Recorder) Filter(op Op) []Command {
	var cmds []Command
	for _, c := range r.Commands {
		if c.Op == op {
			cmds = append(cmds, c)
		}
	}
	return cmds
}

// Texts returns the strings of all recorded text commands.
func (r *Recorder) Texts() []string {
	var texts []string
	for _, c := range r.Filter(OpText) {
		texts = append(texts, c.Text)
	}
	return texts
}

// Reset drops all recorded commands.
func (r *Recorder) Reset() { r.Commands = r.Commands[:0] }
