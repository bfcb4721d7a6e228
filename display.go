// seehuhn.de/go/polydraw - geometry core for an interactive polygon editor
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package polydraw

import (
	"image/color"

	"seehuhn.de/go/geom/vec"
)

// Op is a drawing primitive in a display list produced by [Board.Redraw].
type Op interface {
	isOp()
}

// FillOp paints the given spans with a solid color.
type FillOp struct {
	Spans []Span
	Color color.NRGBA
}

func (FillOp) isOp() {}

// StrokeOp draws a polyline through Points, closed back to the first point
// if Closed is set.
type StrokeOp struct {
	Points []vec.Vec2
	Closed bool
	Color  color.NRGBA
	Width  float64

	// Glow marks the translucent halo drawn behind a selected polygon.
	Glow bool
}

func (StrokeOp) isOp() {}

// MarkerOp marks a vertex and labels it.
type MarkerOp struct {
	At    vec.Vec2
	Label string
	Color color.NRGBA
}

func (MarkerOp) isOp() {}

// Redraw returns the display list for the current state of the board.
//
// For every polygon, in store order, the list contains a glow stroke if
// the polygon is selected, the fill spans, the outline, and one labelled
// marker per vertex. The polygon under construction follows as an open
// polyline with its markers.
func (b *Board) Redraw() []Op {
	var ops []Op
	for i, p := range b.store.polys {
		selected := b.store.IsSelected(i)
		vs := p.Vertices()

		if selected && b.opts.glowWidth > 0 {
			ops = append(ops, StrokeOp{
				Points: vs,
				Closed: true,
				Color:  GlowColor,
				Width:  b.opts.glowWidth,
				Glow:   true,
			})
		}

		ops = append(ops, FillOp{
			Spans: b.scan.AppendSpans(nil, vs),
			Color: p.Fill,
		})

		width := b.opts.strokeWidth
		if selected {
			width = b.opts.selectedWidth
		}
		ops = append(ops, StrokeOp{
			Points: vs,
			Closed: true,
			Color:  p.Stroke,
			Width:  width,
		})
		ops = appendMarkers(ops, vs, p.Stroke)
	}

	if len(b.current) >= 2 {
		ops = append(ops, StrokeOp{
			Points: b.Current(),
			Color:  b.stroke,
			Width:  b.opts.strokeWidth,
		})
	}
	return appendMarkers(ops, b.current, b.stroke)
}

func appendMarkers(ops []Op, vs []vec.Vec2, col color.NRGBA) []Op {
	for i, v := range vs {
		ops = append(ops, MarkerOp{At: v, Label: VertexLabel(i), Color: col})
	}
	return ops
}
