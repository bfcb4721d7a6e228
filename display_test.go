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
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/polydraw/testcases"
)

func TestRedrawSelected(t *testing.T) {
	tri := []vec.Vec2{{X: 10, Y: 50}, {X: 54, Y: 50}, {X: 32, Y: 10}}

	b := NewBoard()
	drawPolygon(t, b, tri)
	b.Click(vec.Vec2{X: 32, Y: 40})

	ops := b.Redraw()
	if len(ops) != 6 {
		t.Fatalf("got %d ops, want 6: %v", len(ops), ops)
	}

	glow, ok := ops[0].(StrokeOp)
	if !ok || !glow.Glow || !glow.Closed || glow.Width != defaultGlowWidth || glow.Color != GlowColor {
		t.Errorf("op 0: expected glow stroke, got %#v", ops[0])
	}

	fill, ok := ops[1].(FillOp)
	if !ok || fill.Color != DefaultFill || len(fill.Spans) == 0 {
		t.Errorf("op 1: expected fill, got %#v", ops[1])
	}

	outline, ok := ops[2].(StrokeOp)
	if !ok || outline.Glow || outline.Width != defaultSelectedWidth || outline.Color != DefaultStroke {
		t.Errorf("op 2: expected selected outline, got %#v", ops[2])
	}

	for i, label := range []string{"A", "B", "C"} {
		m, ok := ops[3+i].(MarkerOp)
		if !ok || m.Label != label || m.At != tri[i] {
			t.Errorf("op %d: expected marker %s at %v, got %#v", 3+i, label, tri[i], ops[3+i])
		}
	}

	// deselecting removes the glow and restores the normal width
	b.Click(vec.Vec2{X: 32, Y: 40})
	ops = b.Redraw()
	if len(ops) != 5 {
		t.Fatalf("got %d ops after deselecting, want 5", len(ops))
	}
	if s, ok := ops[1].(StrokeOp); !ok || s.Width != defaultStrokeWidth {
		t.Errorf("op 1: expected normal outline, got %#v", ops[1])
	}
}

func TestRedrawInProgress(t *testing.T) {
	b := NewBoard()
	b.StartDrawing()
	b.Click(vec.Vec2{X: 10, Y: 10})

	ops := b.Redraw()
	if len(ops) != 1 {
		t.Fatalf("one vertex: got %d ops, want a single marker", len(ops))
	}
	if _, ok := ops[0].(MarkerOp); !ok {
		t.Errorf("one vertex: got %#v", ops[0])
	}

	b.Click(vec.Vec2{X: 60, Y: 10})
	ops = b.Redraw()
	if len(ops) != 3 {
		t.Fatalf("two vertices: got %d ops, want 3", len(ops))
	}
	s, ok := ops[0].(StrokeOp)
	if !ok || s.Closed || len(s.Points) != 2 {
		t.Errorf("two vertices: expected open polyline, got %#v", ops[0])
	}
}

func TestRedrawOrder(t *testing.T) {
	b := NewBoard(WithStrokeWidths(1, 3, 0))
	sq := testcases.Rectangle(10, 10, 60, 60)
	drawPolygon(t, b, sq)
	drawPolygon(t, b, testcases.Rectangle(100, 10, 150, 60))
	b.Click(vec.Vec2{X: 30, Y: 30})

	var fills []FillOp
	for _, op := range b.Redraw() {
		if s, ok := op.(StrokeOp); ok && s.Glow {
			t.Error("glow drawn with glow width 0")
		}
		if f, ok := op.(FillOp); ok {
			fills = append(fills, f)
		}
	}
	if len(fills) != 2 {
		t.Fatalf("got %d fills, want 2", len(fills))
	}
	if fills[0].Spans[0].X0 != 10 || fills[1].Spans[0].X0 != 100 {
		t.Error("fills are not in store order")
	}
}

func TestRedrawClip(t *testing.T) {
	b := NewBoard(WithClip(rect.Rect{URx: 64, URy: 64}))
	b.Store().Add(mustPolygon(t, testcases.Rectangle(-20, 10, 100, 20)))

	fill, ok := b.Redraw()[0].(FillOp)
	if !ok {
		t.Fatal("first op is not a fill")
	}
	if len(fill.Spans) != 10 {
		t.Fatalf("got %d spans, want 10", len(fill.Spans))
	}
	for _, s := range fill.Spans {
		if s.X0 != 0 || s.X1 != 64 {
			t.Errorf("row %d: got [%g, %g), want [0, 64)", s.Y, s.X0, s.X1)
		}
	}
}
