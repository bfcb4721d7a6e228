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

	"github.com/google/uuid"
	"seehuhn.de/go/geom/vec"
)

// Store is an ordered collection of polygons together with a selection.
// Store order is draw order: later polygons are painted over earlier ones.
//
// The selection is tracked by polygon ID, so that indices reported by
// [Store.Selected] always refer to the current contents of the store.
//
// A Store is not safe for concurrent use.
type Store struct {
	polys    []*Polygon
	selected map[uuid.UUID]struct{}
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{selected: make(map[uuid.UUID]struct{})}
}

// Len returns the number of polygons in the store.
func (s *Store) Len() int {
	return len(s.polys)
}

// At returns the i-th polygon in store order.
func (s *Store) At(i int) *Polygon {
	return s.polys[i]
}

// All returns the polygons in store order.
// The slice is a copy; the polygons are shared with the store.
func (s *Store) All() []*Polygon {
	return slices.Clone(s.polys)
}

// Add appends a polygon and returns its index.
func (s *Store) Add(p *Polygon) int {
	s.polys = append(s.polys, p)
	return len(s.polys) - 1
}

// HitTest returns the index of the first polygon, in store order, which
// contains pt.
func (s *Store) HitTest(pt vec.Vec2) (int, bool) {
	for i, p := range s.polys {
		if p.Contains(pt) {
			return i, true
		}
	}
	return -1, false
}

// Toggle flips the selection state of the i-th polygon and reports whether
// it is selected afterwards.
func (s *Store) Toggle(i int) bool {
	id := s.polys[i].ID
	if _, ok := s.selected[id]; ok {
		delete(s.selected, id)
		return false
	}
	s.selected[id] = struct{}{}
	return true
}

// IsSelected reports whether the i-th polygon is selected.
func (s *Store) IsSelected(i int) bool {
	_, ok := s.selected[s.polys[i].ID]
	return ok
}

// Selected returns the indices of all selected polygons, in increasing
// order.
func (s *Store) Selected() []int {
	var idx []int
	for i, p := range s.polys {
		if _, ok := s.selected[p.ID]; ok {
			idx = append(idx, i)
		}
	}
	return idx
}

// ClearSelection deselects all polygons.
func (s *Store) ClearSelection() {
	clear(s.selected)
}

// SetFill sets the fill color of every selected polygon.
func (s *Store) SetFill(c color.NRGBA) {
	for _, i := range s.Selected() {
		s.polys[i].Fill = c
	}
}

// SetStroke sets the stroke color of every selected polygon.
func (s *Store) SetStroke(c color.NRGBA) {
	for _, i := range s.Selected() {
		s.polys[i].Stroke = c
	}
}

// DeleteSelected removes every selected polygon, clears the selection and
// returns the number of polygons removed. The remaining polygons keep their
// relative order.
func (s *Store) DeleteSelected() int {
	n := len(s.polys)
	s.polys = slices.DeleteFunc(s.polys, func(p *Polygon) bool {
		_, ok := s.selected[p.ID]
		return ok
	})
	clear(s.selected)
	return n - len(s.polys)
}

// Reset removes all polygons and clears the selection.
func (s *Store) Reset() {
	clear(s.polys)
	s.polys = s.polys[:0]
	clear(s.selected)
}
