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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

var basicScenes = []Scene{
	{
		Name:   "square",
		Width:  64,
		Height: 64,
		Shapes: []Shape{shape(Blue, Rectangle(10, 10, 50, 50)...)},
	},
	{
		Name:   "triangle",
		Width:  64,
		Height: 64,
		Shapes: []Shape{shape(Red, pt(10, 50), pt(54, 50), pt(32, 10))},
	},
	{
		Name:   "concave_u",
		Width:  64,
		Height: 64,
		Shapes: []Shape{shape(Green, ConcaveU(8, 8, 48, 48, 16)...)},
	},
	{
		Name:   "trapezoid",
		Width:  64,
		Height: 64,
		Shapes: []Shape{shape(Orange, pt(20, 12), pt(44, 12), pt(56, 52), pt(8, 52))},
	},
	{
		Name:   "overlap",
		Width:  96,
		Height: 64,
		Shapes: []Shape{
			shape(Blue, Rectangle(8, 8, 56, 56)...),
			shape(Green, Regular(60, 32, 28, 6, 0)...),
		},
	},
	{
		Name:   "selected",
		Width:  96,
		Height: 64,
		Shapes: []Shape{
			shape(Blue, Rectangle(12, 12, 40, 52)...),
			{
				Vertices: Regular(68, 32, 20, 5, -math.Pi/2),
				Fill:     Red,
				Stroke:   Black,
				Selected: true,
			},
		},
	},
}

// Rectangle returns the corners of an axis-aligned rectangle, in the order
// (x1, y1), (x2, y1), (x2, y2), (x1, y2).
func Rectangle(x1, y1, x2, y2 float64) []vec.Vec2 {
	return []vec.Vec2{pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2)}
}

// ConcaveU returns a "U" shape inside the given box, open at the top, with
// arms of the given thickness.
func ConcaveU(x1, y1, x2, y2, arm float64) []vec.Vec2 {
	return []vec.Vec2{
		pt(x1, y1),
		pt(x1+arm, y1),
		pt(x1+arm, y2-arm),
		pt(x2-arm, y2-arm),
		pt(x2-arm, y1),
		pt(x2, y1),
		pt(x2, y2),
		pt(x1, y2),
	}
}

// Regular returns the vertices of a regular n-gon with circumradius r,
// starting at the given angle.
func Regular(cx, cy, r float64, n int, start float64) []vec.Vec2 {
	vs := make([]vec.Vec2, n)
	for i := range n {
		angle := start + float64(i)*2*math.Pi/float64(n)
		vs[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return vs
}
