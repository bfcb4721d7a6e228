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
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// markerSize is the side length of vertex markers, in pixels.
const markerSize = 6

// Painter renders display lists into an RGBA image. Fill spans and stroke
// outlines are composited with the Porter-Duff "over" operator; no
// anti-aliasing is applied.
//
// A Painter is not safe for concurrent use.
type Painter struct {
	Dst *image.RGBA

	// Labels enables the letter labels next to vertex markers.
	Labels bool

	scan  Scanliner
	str   stroker
	spans []Span
}

// NewPainter returns a Painter drawing into dst, with labels enabled.
func NewPainter(dst *image.RGBA) *Painter {
	b := dst.Bounds()
	return &Painter{
		Dst:    dst,
		Labels: true,
		scan: Scanliner{Clip: rect.Rect{
			LLx: float64(b.Min.X),
			LLy: float64(b.Min.Y),
			URx: float64(b.Max.X),
			URy: float64(b.Max.Y),
		}},
	}
}

// Clear fills the whole image with c.
func (p *Painter) Clear(c color.Color) {
	draw.Draw(p.Dst, p.Dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Paint draws the operations in order.
func (p *Painter) Paint(ops []Op) {
	for _, op := range ops {
		switch op := op.(type) {
		case FillOp:
			p.fillSpans(op.Spans, op.Color)
		case StrokeOp:
			p.str.build(op.Points, op.Closed, op.Width)
			p.spans = p.str.appendSpans(p.spans[:0], &p.scan)
			p.fillSpans(p.spans, op.Color)
		case MarkerOp:
			p.marker(op)
		}
	}
}

// fillSpans paints every pixel column covered by the spans.
func (p *Painter) fillSpans(spans []Span, c color.NRGBA) {
	if len(spans) == 0 {
		return
	}
	src := image.NewUniform(c)
	bounds := p.Dst.Bounds()
	for _, s := range spans {
		lo, hi := s.Columns()
		r := image.Rect(lo, s.Y, hi, s.Y+1).Intersect(bounds)
		if r.Empty() {
			continue
		}
		draw.Draw(p.Dst, r, src, image.Point{}, draw.Over)
	}
}

func (p *Painter) marker(m MarkerOp) {
	const h = markerSize / 2
	sq := []vec.Vec2{
		{X: m.At.X - h, Y: m.At.Y - h},
		{X: m.At.X + h, Y: m.At.Y - h},
		{X: m.At.X + h, Y: m.At.Y + h},
		{X: m.At.X - h, Y: m.At.Y + h},
	}
	p.spans = p.scan.AppendSpans(p.spans[:0], sq)
	p.fillSpans(p.spans, m.Color)

	if !p.Labels || m.Label == "" {
		return
	}
	d := &font.Drawer{
		Dst:  p.Dst,
		Src:  image.NewUniform(m.Color),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(int(m.At.X)+h+2, int(m.At.Y)-h-2),
	}
	d.DrawString(m.Label)
}
