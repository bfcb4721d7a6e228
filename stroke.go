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
	"cmp"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// strokeSegment is a non-degenerate polyline segment with its unit tangent
// T and unit normal N.
type strokeSegment struct {
	A, B vec.Vec2
	T, N vec.Vec2
}

// stroker builds the outline of a wide polyline as a set of convex
// polygons: one quadrilateral per segment and one square per interior
// corner. Buffers are reused between calls.
type stroker struct {
	segs    []strokeSegment
	outline []vec.Vec2 // all outline polygons, contiguous
	offsets []int      // start index of each polygon in outline
	spans   []Span
}

// build computes the outline polygons for the polyline through pts.
func (s *stroker) build(pts []vec.Vec2, closed bool, width float64) {
	s.segs = s.segs[:0]
	s.outline = s.outline[:0]
	s.offsets = s.offsets[:0]
	if width <= 0 {
		return
	}

	for i := 1; i < len(pts); i++ {
		s.addSegment(pts[i-1], pts[i])
	}
	if closed && len(pts) > 2 {
		s.addSegment(pts[len(pts)-1], pts[0])
	}

	d := width / 2
	for i := range s.segs {
		seg := &s.segs[i]
		s.offsets = append(s.offsets, len(s.outline))
		s.outline = append(s.outline,
			seg.A.Add(seg.N.Mul(d)),
			seg.B.Add(seg.N.Mul(d)),
			seg.B.Sub(seg.N.Mul(d)),
			seg.A.Sub(seg.N.Mul(d)),
		)

		if i < len(s.segs)-1 || closed {
			s.addSquare(seg.B, seg.T, d)
		}
	}
}

func (s *stroker) addSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	length := d.Length()
	if length < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / length)         // unit tangent
	n := vec.Vec2{X: -t.Y, Y: t.X} // unit normal (90° CCW)
	s.segs = append(s.segs, strokeSegment{A: a, B: b, T: t, N: n})
}

// addSquare adds a square with side length 2*d, centred at the corner and
// oriented by the tangent T. It fills the gap between the quadrilaterals of
// adjacent segments.
func (s *stroker) addSquare(center, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	s.offsets = append(s.offsets, len(s.outline))
	s.outline = append(s.outline,
		center.Add(T.Mul(d)).Add(N.Mul(d)),
		center.Add(T.Mul(d)).Sub(N.Mul(d)),
		center.Sub(T.Mul(d)).Sub(N.Mul(d)),
		center.Sub(T.Mul(d)).Add(N.Mul(d)),
	)
}

// polygon returns the i-th outline polygon.
func (s *stroker) polygon(i int) []vec.Vec2 {
	end := len(s.outline)
	if i+1 < len(s.offsets) {
		end = s.offsets[i+1]
	}
	return s.outline[s.offsets[i]:end]
}

// appendSpans rasterizes the current outline and appends the union of all
// outline polygons to dst, so that no point is covered twice.
func (s *stroker) appendSpans(dst []Span, sc *Scanliner) []Span {
	s.spans = s.spans[:0]
	for i := range s.offsets {
		s.spans = sc.AppendSpans(s.spans, s.polygon(i))
	}
	return append(dst, unionSpans(s.spans)...)
}

// StrokeSpans returns the spans covered by a polyline of the given width
// through pts, closed back to pts[0] if closed is set. Segment ends are
// butt ends; corners are filled with squares. Overlapping parts of the
// outline are merged, so every point is covered by at most one span.
func StrokeSpans(pts []vec.Vec2, closed bool, width float64) []Span {
	var s stroker
	var sc Scanliner
	s.build(pts, closed, width)
	return s.appendSpans(nil, &sc)
}

// unionSpans sorts spans by scanline and start, and merges overlapping or
// touching spans on the same scanline. The input slice is reused.
func unionSpans(spans []Span) []Span {
	slices.SortFunc(spans, func(a, b Span) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X0, b.X0)
	})

	out := spans[:0]
	for _, sp := range spans {
		if n := len(out); n > 0 && out[n-1].Y == sp.Y && sp.X0 <= out[n-1].X1 {
			out[n-1].X1 = max(out[n-1].X1, sp.X1)
			continue
		}
		out = append(out, sp)
	}
	return out
}

// Numerical tolerances.
const (
	// zeroLengthThreshold is the minimum length for a stroke segment.
	// Shorter segments are skipped.
	zeroLengthThreshold = 1e-10
)
