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
	"math"
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Span is a horizontal run [X0, X1) of interior points on scanline Y.
//
// When a span is painted, pixel column px is covered if X0 <= px < X1;
// see [Span.Columns].
type Span struct {
	Y      int
	X0, X1 float64
}

// Columns returns the half-open range [lo, hi) of pixel columns covered by
// the span.
func (s Span) Columns() (lo, hi int) {
	return int(math.Ceil(s.X0)), int(math.Ceil(s.X1))
}

// edge is a non-horizontal polygon edge.
type edge struct {
	x0, y0 float64 // start point
	x1, y1 float64 // end point
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Scanliner computes the interior spans of polygons, one integer scanline
// at a time, using the even-odd rule. Create one instance and reuse it for
// many polygons: internal buffers grow as needed but never shrink.
//
// A Scanliner is not safe for concurrent use.
type Scanliner struct {
	// Clip, if non-zero, limits output to scanlines LLy <= y < URy, and
	// clamps span ends to [LLx, URx].
	Clip rect.Rect

	edges []edge    // non-horizontal edges of the current polygon
	xs    []float64 // intersections on the current scanline

	// bounding box of the current polygon
	yMin, yMax float64
}

// NewScanliner returns a Scanliner with the given clip rectangle.
// Pass the zero rectangle for unclipped output.
func NewScanliner(clip rect.Rect) *Scanliner {
	return &Scanliner{Clip: clip}
}

// FillEvenOdd calls emit once for every interior span of the ring given by
// vertices, in order of increasing y and, within a scanline, increasing x.
//
// Scanline y meets an edge from (x1, y1) to (x2, y2) if
// y1 <= y < y2 or y2 <= y < y1, so that a vertex exactly on a scanline is
// counted by only one of its two edges; horizontal edges never meet a
// scanline. The sorted intersections are paired up as (0, 1), (2, 3), ...
// If a scanline has an odd number of intersections, the last one is
// dropped. Empty spans are not reported.
func (s *Scanliner) FillEvenOdd(vertices []vec.Vec2, emit func(y int, x0, x1 float64)) {
	if !s.collectEdges(vertices) {
		return
	}

	yMin := int(math.Floor(s.yMin))
	yMax := int(math.Ceil(s.yMax))
	clipped := s.Clip != (rect.Rect{})
	if clipped {
		yMin = max(yMin, int(math.Ceil(s.Clip.LLy)))
		yMax = min(yMax, int(math.Ceil(s.Clip.URy))-1)
	}

	for y := yMin; y <= yMax; y++ {
		yf := float64(y)

		s.xs = s.xs[:0]
		for i := range s.edges {
			e := &s.edges[i]
			if (e.y0 <= yf && e.y1 > yf) || (e.y1 <= yf && e.y0 > yf) {
				s.xs = append(s.xs, e.x0+(yf-e.y0)*e.dxdy)
			}
		}
		if len(s.xs) == 0 {
			continue
		}

		slices.Sort(s.xs)
		if len(s.xs)%2 != 0 {
			Logger().Debug("odd number of scanline intersections",
				"y", y, "count", len(s.xs))
			s.xs = s.xs[:len(s.xs)-1]
		}

		for i := 0; i+1 < len(s.xs); i += 2 {
			x0, x1 := s.xs[i], s.xs[i+1]
			if clipped {
				x0 = max(x0, s.Clip.LLx)
				x1 = min(x1, s.Clip.URx)
			}
			if x1 > x0 {
				emit(y, x0, x1)
			}
		}
	}
}

// AppendSpans appends the interior spans of the ring to dst and returns the
// extended slice.
func (s *Scanliner) AppendSpans(dst []Span, vertices []vec.Vec2) []Span {
	s.FillEvenOdd(vertices, func(y int, x0, x1 float64) {
		dst = append(dst, Span{Y: y, X0: x0, X1: x1})
	})
	return dst
}

// Rasterize returns the interior spans of the ring given by vertices.
// See [Scanliner.FillEvenOdd] for details.
func Rasterize(vertices []vec.Vec2) []Span {
	var s Scanliner
	return s.AppendSpans(nil, vertices)
}

// collectEdges builds the edge list for the ring and records its vertical
// extent. It returns false if the ring has fewer than three vertices.
func (s *Scanliner) collectEdges(vertices []vec.Vec2) bool {
	s.edges = s.edges[:0]
	n := len(vertices)
	if n < 3 {
		return false
	}

	s.yMin, s.yMax = vertices[0].Y, vertices[0].Y
	for i := range n {
		a := vertices[i]
		b := vertices[(i+1)%n]
		s.yMin = min(s.yMin, a.Y)
		s.yMax = max(s.yMax, a.Y)
		s.addEdge(a, b)
	}
	return true
}

// addEdge adds the edge from a to b. Horizontal edges can never meet a
// scanline and are left out.
func (s *Scanliner) addEdge(a, b vec.Vec2) {
	dy := b.Y - a.Y
	if dy == 0 {
		return
	}
	s.edges = append(s.edges, edge{
		x0: a.X, y0: a.Y,
		x1: b.X, y1: b.Y,
		dxdy: (b.X - a.X) / dy,
	})
}
