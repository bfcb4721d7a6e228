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
	"seehuhn.de/go/geom/vec"
)

var precisionScenes = []Scene{
	{
		Name:   "subpixel_offset_00",
		Width:  64,
		Height: 64,
		Shapes: []Shape{shape(Black, offsetRectangle(20, 20, 24, 24, 0.0)...)},
	},
	{
		Name:   "subpixel_offset_25",
		Width:  64,
		Height: 64,
		Shapes: []Shape{shape(Black, offsetRectangle(20, 20, 24, 24, 0.25)...)},
	},
	{
		Name:   "subpixel_offset_50",
		Width:  64,
		Height: 64,
		Shapes: []Shape{shape(Black, offsetRectangle(20, 20, 24, 24, 0.5)...)},
	},
	{
		// every vertex lies exactly on a scanline
		Name:   "diamond_integer",
		Width:  64,
		Height: 64,
		Shapes: []Shape{shape(Green, pt(32, 4), pt(60, 32), pt(32, 60), pt(4, 32))},
	},
	{
		Name:   "near_horizontal",
		Width:  64,
		Height: 64,
		Shapes: []Shape{shape(Orange, pt(4, 20), pt(60, 20.001), pt(60, 44), pt(4, 43.999))},
	},
	{
		// narrower than a pixel for most of its height
		Name:   "sliver",
		Width:  64,
		Height: 64,
		Shapes: []Shape{shape(Red, pt(30, 4), pt(30.6, 4), pt(34, 60))},
	},
	{
		// spike with a vertex between two scanlines
		Name:   "spike_subpixel",
		Width:  64,
		Height: 64,
		Shapes: []Shape{shape(Blue, pt(8, 40), pt(32, 8.5), pt(56, 40), pt(32, 56))},
	},
}

// offsetRectangle returns a w*h rectangle at (x, y), shifted right and
// down by offset.
func offsetRectangle(x, y, w, h, offset float64) []vec.Vec2 {
	return Rectangle(x+offset, y+offset, x+w+offset, y+h+offset)
}
