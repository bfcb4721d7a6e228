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

// Package testcases holds named polygon scenes shared by the tests,
// benchmarks and the image generators.
package testcases

import (
	"image/color"

	"seehuhn.de/go/geom/vec"
)

// Scene is a canvas with a list of completed polygons.
type Scene struct {
	Name   string  // lowercase a-z, 0-9 and _ only
	Width  int     // canvas width in pixels
	Height int     // canvas height in pixels
	Shapes []Shape // in draw order
}

// Shape is a completed polygon in a scene.
type Shape struct {
	Vertices []vec.Vec2
	Fill     color.NRGBA
	Stroke   color.NRGBA
	Selected bool
}

// Palette used by the scenes.
var (
	Blue   = color.NRGBA{R: 0, G: 150, B: 255, A: 128}
	Red    = color.NRGBA{R: 220, G: 40, B: 40, A: 255}
	Green  = color.NRGBA{R: 40, G: 180, B: 60, A: 160}
	Black  = color.NRGBA{A: 255}
	Orange = color.NRGBA{R: 255, G: 140, A: 255}
)

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// shape makes an unselected shape with a black outline.
func shape(fill color.NRGBA, vs ...vec.Vec2) Shape {
	return Shape{Vertices: vs, Fill: fill, Stroke: Black}
}
