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
	"errors"
	"fmt"
	"image/color"

	"github.com/google/uuid"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ErrTooFewVertices is returned when a polygon is created from fewer than
// three vertices.
var ErrTooFewVertices = errors.New("polygon needs at least 3 vertices")

// Polygon is a completed, closed polygon on the canvas.
//
// The vertex list is fixed at creation time. Fill and Stroke may be changed
// later, normally through [Board.SetFillColor] and [Board.SetStrokeColor].
type Polygon struct {
	// ID identifies the polygon independently of its position in a Store.
	ID uuid.UUID

	Fill   color.NRGBA
	Stroke color.NRGBA

	vertices []vec.Vec2
	bbox     rect.Rect
}

// NewPolygon creates a polygon from a copy of the given vertices.
// The ring is closed implicitly by an edge from the last vertex back to
// the first.
func NewPolygon(vertices []vec.Vec2, fill, stroke color.NRGBA) (*Polygon, error) {
	if len(vertices) < 3 {
		return nil, fmt.Errorf("%d vertices: %w", len(vertices), ErrTooFewVertices)
	}
	vs := make([]vec.Vec2, len(vertices))
	copy(vs, vertices)
	return &Polygon{
		ID:       uuid.New(),
		Fill:     fill,
		Stroke:   stroke,
		vertices: vs,
		bbox:     bounds(vs),
	}, nil
}

// Len returns the number of vertices.
func (p *Polygon) Len() int {
	return len(p.vertices)
}

// Vertex returns the i-th vertex.
func (p *Polygon) Vertex(i int) vec.Vec2 {
	return p.vertices[i]
}

// Vertices returns a copy of the vertex list.
func (p *Polygon) Vertices() []vec.Vec2 {
	vs := make([]vec.Vec2, len(p.vertices))
	copy(vs, p.vertices)
	return vs
}

// BBox returns the bounding box of the vertices.
func (p *Polygon) BBox() rect.Rect {
	return p.bbox
}

// Contains reports whether pt lies inside the polygon under the even-odd
// rule. Points outside the bounding box are rejected without a ray cast.
func (p *Polygon) Contains(pt vec.Vec2) bool {
	if !inBox(pt, p.bbox) {
		return false
	}
	return Contains(pt, p.vertices)
}

// Spans computes the interior spans of the polygon.
func (p *Polygon) Spans() []Span {
	return Rasterize(p.vertices)
}

// Outline returns the polygon boundary as a closed path.
func (p *Polygon) Outline() *path.Data {
	return outline(p.vertices, true)
}

// outline builds a polyline path through vs, closed if requested.
func outline(vs []vec.Vec2, closed bool) *path.Data {
	d := &path.Data{}
	if len(vs) == 0 {
		return d
	}
	d.MoveTo(vs[0])
	for _, v := range vs[1:] {
		d.LineTo(v)
	}
	if closed {
		d.Close()
	}
	return d
}

// Contains reports whether pt lies inside the ring given by vertices,
// using even-odd ray casting towards +x.
//
// An edge is crossed if exactly one of its endpoints lies strictly above
// pt.Y and the edge meets the line y = pt.Y to the right of pt. Horizontal
// edges therefore never count. Whether a point exactly on the boundary is
// reported as inside depends on rounding and is not specified.
// Rings with fewer than three vertices contain no points.
func Contains(pt vec.Vec2, vertices []vec.Vec2) bool {
	n := len(vertices)
	if n < 3 {
		return false
	}

	inside := false
	j := n - 1
	for i := range n {
		a, b := vertices[i], vertices[j]
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			x := a.X + (pt.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if pt.X < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// VertexLabel returns the marker label of the i-th vertex of a polygon:
// "A" to "Z", then "AA", "AB", ...
func VertexLabel(i int) string {
	var buf [8]byte
	pos := len(buf)
	for {
		pos--
		buf[pos] = byte('A' + i%26)
		i = i/26 - 1
		if i < 0 {
			break
		}
	}
	return string(buf[pos:])
}

// distance returns the Euclidean distance between a and b.
func distance(a, b vec.Vec2) float64 {
	return b.Sub(a).Length()
}

// bounds returns the bounding box of a non-empty vertex list.
func bounds(vs []vec.Vec2) rect.Rect {
	r := rect.Rect{LLx: vs[0].X, LLy: vs[0].Y, URx: vs[0].X, URy: vs[0].Y}
	for _, v := range vs[1:] {
		r.LLx = min(r.LLx, v.X)
		r.LLy = min(r.LLy, v.Y)
		r.URx = max(r.URx, v.X)
		r.URy = max(r.URy, v.Y)
	}
	return r
}

func inBox(pt vec.Vec2, r rect.Rect) bool {
	return pt.X >= r.LLx && pt.X <= r.URx && pt.Y >= r.LLy && pt.Y <= r.URy
}
