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

// largeScenes contains scenes with many vertices, many spans per
// scanline, or polygons reaching outside the canvas.
var largeScenes = []Scene{
	{
		Name:   "circle_256",
		Width:  512,
		Height: 512,
		Shapes: []Shape{shape(Blue, Regular(256, 256, 220, 256, 0)...)},
	},
	{
		Name:   "comb",
		Width:  512,
		Height: 512,
		Shapes: []Shape{shape(Green, Comb(32, 32, 480, 480, 40)...)},
	},
	{
		Name:   "spiral",
		Width:  512,
		Height: 512,
		Shapes: []Shape{shape(Orange, Spiral(256, 256, 30, 230, 3, 600, 14)...)},
	},
	{
		Name:   "large_clipped",
		Width:  512,
		Height: 512,
		Shapes: []Shape{shape(Red, Rectangle(-100, 100, 612, 400)...)},
	},
}

// Comb returns a comb with n teeth pointing up inside the given box. Every
// scanline through the teeth meets 2n edges.
func Comb(x1, y1, x2, y2 float64, n int) []vec.Vec2 {
	w := (x2 - x1) / float64(n)
	base := y2 - (y2-y1)/8

	vs := []vec.Vec2{pt(x1, y2)}
	for i := range n {
		left := x1 + float64(i)*w
		vs = append(vs,
			pt(left, base),
			pt(left+w/2, y1),
			pt(left+w, base),
		)
	}
	vs = append(vs, pt(x2, y2))
	return vs
}

// Spiral returns a closed spiral band of the given width, with radius
// growing from r0 to r1 over the given number of turns, sampled at n points
// per side.
func Spiral(cx, cy, r0, r1, turns float64, n int, width float64) []vec.Vec2 {
	vs := make([]vec.Vec2, 0, 2*n)
	at := func(i int, dr float64) vec.Vec2 {
		t := float64(i) / float64(n-1)
		angle := t * turns * 2 * math.Pi
		r := r0 + t*(r1-r0) + dr
		return pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	for i := range n {
		vs = append(vs, at(i, width/2))
	}
	for i := n - 1; i >= 0; i-- {
		vs = append(vs, at(i, -width/2))
	}
	return vs
}
