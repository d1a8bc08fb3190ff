// Package boxchart is a small 2-D charting engine for box plots and line
// series.
//
// It uses gonum.org/v1/plot's drawing layer but does its own layout.
//
// # Render pass
//
// A render pass is a pure function of the records, the chart options, the
// viewport and a text measurer:
//
//   - Scan: the records are walked once through generic accessor
//     functions and the raw X and Y ranges, the category list and the
//     sample sequence are recorded.
//   - PlanRange: the raw ranges are rounded outwards to "nice" bounds with
//     tick intervals from {1,2,5}×10^k. Pinned bounds are used verbatim.
//   - Solve: the Y label gutter is sized so that the widest label fits,
//     first by shrinking the label font, then by growing the gutter.
//   - Transform: maps data coordinates to pixels and back.
//   - Render: axes and glyphs are drawn to a canvas.Sink and the hit
//     regions of all glyphs are returned in a Frame.
//
// # Axis modes
//
// In Continuous mode the X coordinate of a record comes from its X
// accessor. In Categorical mode it is the index of the record's category
// in first-seen order and all records of one category are drawn side by
// side around the category's centre.
//
// # Incomplete charts
//
// A chart with missing accessors or without records is not an error: it
// lays out to the empty range and renders nothing. Use Validate to get an
// error instead.
package boxchart
