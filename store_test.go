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
	"slices"
	"testing"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/polydraw/testcases"
)

func mustPolygon(t *testing.T, vs []vec.Vec2) *Polygon {
	t.Helper()
	p, err := NewPolygon(vs, DefaultFill, DefaultStroke)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func threePolygons(t *testing.T) (*Store, []*Polygon) {
	s := NewStore()
	ps := []*Polygon{
		mustPolygon(t, testcases.Rectangle(0, 0, 10, 10)),
		mustPolygon(t, testcases.Rectangle(20, 0, 30, 10)),
		mustPolygon(t, testcases.Rectangle(40, 0, 50, 10)),
	}
	for i, p := range ps {
		if idx := s.Add(p); idx != i {
			t.Fatalf("Add returned %d, want %d", idx, i)
		}
	}
	return s, ps
}

func TestStoreDeleteSelected(t *testing.T) {
	s, ps := threePolygons(t)

	if !s.Toggle(1) {
		t.Fatal("polygon 1 not selected after Toggle")
	}
	if n := s.DeleteSelected(); n != 1 {
		t.Fatalf("DeleteSelected removed %d polygons, want 1", n)
	}

	if s.Len() != 2 {
		t.Fatalf("store has %d polygons, want 2", s.Len())
	}
	if s.At(0) != ps[0] || s.At(1) != ps[2] {
		t.Error("remaining polygons are not the original polygons 0 and 2")
	}
	if sel := s.Selected(); len(sel) != 0 {
		t.Errorf("selection not empty after delete: %v", sel)
	}
}

func TestStoreSelected(t *testing.T) {
	s, _ := threePolygons(t)

	s.Toggle(2)
	s.Toggle(0)
	if sel := s.Selected(); !slices.Equal(sel, []int{0, 2}) {
		t.Errorf("Selected() = %v, want [0 2]", sel)
	}

	if s.Toggle(2) {
		t.Error("second Toggle left polygon 2 selected")
	}
	if !s.IsSelected(0) || s.IsSelected(1) || s.IsSelected(2) {
		t.Error("unexpected selection state")
	}

	s.ClearSelection()
	if sel := s.Selected(); len(sel) != 0 {
		t.Errorf("selection not empty after ClearSelection: %v", sel)
	}
}

func TestStoreHitTest(t *testing.T) {
	s := NewStore()
	s.Add(mustPolygon(t, testcases.Rectangle(0, 0, 20, 20)))
	s.Add(mustPolygon(t, testcases.Rectangle(10, 10, 30, 30)))

	cases := []struct {
		pt   vec.Vec2
		idx  int
		want bool
	}{
		{vec.Vec2{X: 5, Y: 5}, 0, true},
		{vec.Vec2{X: 15, Y: 15}, 0, true}, // inside both
		{vec.Vec2{X: 25, Y: 25}, 1, true},
		{vec.Vec2{X: 25, Y: 5}, -1, false},
	}
	for _, c := range cases {
		idx, ok := s.HitTest(c.pt)
		if idx != c.idx || ok != c.want {
			t.Errorf("HitTest(%v) = %d, %t, want %d, %t", c.pt, idx, ok, c.idx, c.want)
		}
	}
}

func TestStoreRecolor(t *testing.T) {
	s, ps := threePolygons(t)
	red := color.NRGBA{R: 255, A: 255}
	green := color.NRGBA{G: 255, A: 255}

	s.Toggle(1)
	s.SetFill(red)
	s.SetStroke(green)

	for i, p := range ps {
		wantFill, wantStroke := DefaultFill, DefaultStroke
		if i == 1 {
			wantFill, wantStroke = red, green
		}
		if p.Fill != wantFill || p.Stroke != wantStroke {
			t.Errorf("polygon %d: colors %v/%v, want %v/%v",
				i, p.Fill, p.Stroke, wantFill, wantStroke)
		}
	}
}

func TestStoreReset(t *testing.T) {
	s, _ := threePolygons(t)
	s.Toggle(0)
	s.Reset()
	if s.Len() != 0 || len(s.Selected()) != 0 {
		t.Errorf("store not empty after Reset: %d polygons, selection %v",
			s.Len(), s.Selected())
	}
	if _, ok := s.HitTest(vec.Vec2{X: 5, Y: 5}); ok {
		t.Error("HitTest found a polygon in an empty store")
	}
}

func TestStoreAll(t *testing.T) {
	s, ps := threePolygons(t)
	all := s.All()
	if !slices.Equal(all, ps) {
		t.Fatal("All() does not return the polygons in store order")
	}
	all[0] = nil
	if s.At(0) == nil {
		t.Error("All() returned the internal slice")
	}
}
