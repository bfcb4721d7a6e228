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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"
)

// WritePDF writes a display list as a single-page PDF file, with one PDF
// point per canvas pixel.
//
// Fill spans become one-row rectangles and strokes become stroked paths
// with round joins and butt caps. PDF painting here is opaque: translucent
// colors are blended against the white page. Vertex markers are drawn
// without their labels.
func WritePDF(filename string, width, height int, ops []Op) error {
	paper := &pdf.Rectangle{
		URx: float64(width),
		URy: float64(height),
	}

	page, err := document.CreateSinglePage(filename, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; canvas coordinates are top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(height)})
	page.SetLineJoin(graphics.LineJoinRound)
	page.SetLineCap(graphics.LineCapButt)

	for _, op := range ops {
		switch op := op.(type) {
		case FillOp:
			if len(op.Spans) == 0 {
				continue
			}
			page.SetFillColor(overWhite(op.Color))
			for _, s := range op.Spans {
				page.Rectangle(s.X0, float64(s.Y), s.X1-s.X0, 1)
			}
			page.Fill()

		case StrokeOp:
			if len(op.Points) < 2 || op.Width <= 0 {
				continue
			}
			page.SetStrokeColor(overWhite(op.Color))
			page.SetLineWidth(op.Width)

			d := outline(op.Points, op.Closed)
			coordIdx := 0
			for _, cmd := range d.Cmds {
				switch cmd {
				case path.CmdMoveTo:
					page.MoveTo(d.Coords[coordIdx].X, d.Coords[coordIdx].Y)
					coordIdx++
				case path.CmdLineTo:
					page.LineTo(d.Coords[coordIdx].X, d.Coords[coordIdx].Y)
					coordIdx++
				case path.CmdClose:
					page.ClosePath()
				}
			}
			page.Stroke()

		case MarkerOp:
			const h = markerSize / 2
			page.SetFillColor(overWhite(op.Color))
			page.Rectangle(op.At.X-h, op.At.Y-h, markerSize, markerSize)
			page.Fill()
		}
	}

	return page.Close()
}

// overWhite returns the opaque device color obtained by compositing c over
// a white background.
func overWhite(c color.NRGBA) pdfcolor.Color {
	a := float64(c.A) / 255
	blend := func(v uint8) float64 {
		return 1 - a*(1-float64(v)/255)
	}
	return pdfcolor.DeviceRGB(blend(c.R), blend(c.G), blend(c.B))
}
