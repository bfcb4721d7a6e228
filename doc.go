// Package polydraw implements the geometry and state core of an
// interactive polygon editor.
//
// A [Board] receives input events (clicks, start drawing, clear, delete,
// recolor) and maintains a [Store] of completed polygons with a selection.
// Clicks are hit-tested against the stored polygons with even-odd ray
// casting ([Contains]); polygon interiors are computed by a scanline
// rasterizer ([Scanliner]) which reports horizontal spans per integer
// scanline. [Board.Redraw] turns the state into a display list, which can
// be painted into an image with a [Painter] or written to PDF with
// [WritePDF].
package polydraw

//go:generate go run ./testcases/genpng
