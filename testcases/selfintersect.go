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

var selfIntersectScenes = []Scene{
	{
		Name:   "pentagram",
		Width:  64,
		Height: 64,
		Shapes: []Shape{shape(Red, Pentagram(32, 32, 25)...)},
	},
	{
		Name:   "bowtie",
		Width:  64,
		Height: 64,
		Shapes: []Shape{shape(Blue, pt(8, 12), pt(56, 52), pt(56, 12), pt(8, 52))},
	},
}

// Pentagram returns a five-pointed star drawn as a single self-intersecting
// ring, visiting every second point of a regular pentagon. Under the
// even-odd rule the central pentagon is outside.
func Pentagram(cx, cy, r float64) []vec.Vec2 {
	pts := Regular(cx, cy, r, 5, -math.Pi/2)
	order := []int{0, 2, 4, 1, 3}
	vs := make([]vec.Vec2, len(order))
	for i, k := range order {
		vs[i] = pts[k]
	}
	return vs
}
