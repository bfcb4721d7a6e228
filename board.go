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
	"log/slog"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// State is the state of the polygon capture state machine.
type State int

// Capture states.
const (
	Idle    State = iota // not drawing
	Drawing              // clicks add vertices
	Closed               // the last polygon has just been closed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Drawing:
		return "drawing"
	case Closed:
		return "closed"
	}
	return "unknown"
}

// ClickResult describes the effect of [Board.Click].
type ClickResult int

// Possible click outcomes.
const (
	ClickIgnored  ClickResult = iota // nothing changed
	ClickSelected                    // a polygon's selection was toggled
	ClickAppended                    // a vertex was added
	ClickClosed                      // the polygon under construction was closed
)

func (r ClickResult) String() string {
	switch r {
	case ClickIgnored:
		return "ignored"
	case ClickSelected:
		return "selected"
	case ClickAppended:
		return "appended"
	case ClickClosed:
		return "closed"
	}
	return "unknown"
}

// Board holds the complete state of a polygon editor: the stored polygons
// with their selection, the polygon under construction, and the colors
// for new polygons. Every method corresponds to one input event; methods
// which change the state call the redraw hook (see [WithRedraw]) exactly
// once, after the change is complete.
//
// A Board is not safe for concurrent use.
type Board struct {
	store   *Store
	current []vec.Vec2
	state   State

	fill, stroke color.NRGBA

	opts boardOptions
	scan Scanliner
}

// NewBoard returns an empty board in the Idle state.
func NewBoard(opts ...Option) *Board {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Board{
		store:  NewStore(),
		fill:   o.fill,
		stroke: o.stroke,
		opts:   o,
		scan:   Scanliner{Clip: o.clip},
	}
}

// State returns the current capture state.
func (b *Board) State() State {
	return b.state
}

// Store gives access to the completed polygons.
func (b *Board) Store() *Store {
	return b.store
}

// Current returns a copy of the vertices of the polygon under construction.
func (b *Board) Current() []vec.Vec2 {
	return slices.Clone(b.current)
}

// FillColor returns the fill color used for new polygons.
func (b *Board) FillColor() color.NRGBA {
	return b.fill
}

// StrokeColor returns the stroke color used for new polygons.
func (b *Board) StrokeColor() color.NRGBA {
	return b.stroke
}

// StartDrawing enables vertex capture. If a polygon has just been closed,
// the vertex list and the selection are cleared first.
func (b *Board) StartDrawing() {
	if b.state == Drawing {
		return
	}
	if b.state == Closed {
		b.current = b.current[:0]
		b.store.ClearSelection()
	}
	b.state = Drawing
	b.changed()
}

// Click handles a pointer click at pt, in canvas coordinates.
//
// A click inside a stored polygon toggles the selection of the first such
// polygon in store order; this takes priority over drawing. Otherwise, in
// the Drawing state, a click closer than the close radius to the first
// vertex closes the polygon, provided it has at least three vertices, and
// any other click appends a vertex.
func (b *Board) Click(pt vec.Vec2) ClickResult {
	if i, ok := b.store.HitTest(pt); ok {
		b.store.Toggle(i)
		b.changed()
		return ClickSelected
	}

	if b.state != Drawing {
		return ClickIgnored
	}

	if len(b.current) > 0 && distance(pt, b.current[0]) < b.opts.closeRadius {
		if len(b.current) < 3 {
			return ClickIgnored
		}
		return b.closePolygon()
	}

	b.current = append(b.current, pt)
	b.changed()
	return ClickAppended
}

func (b *Board) closePolygon() ClickResult {
	p, err := NewPolygon(b.current, b.fill, b.stroke)
	if err != nil {
		// unreachable: Click checks the vertex count
		b.logger().Warn("cannot close polygon", "error", err)
		return ClickIgnored
	}
	idx := b.store.Add(p)
	b.current = b.current[:0]
	b.state = Closed
	b.logger().Debug("polygon closed",
		"index", idx, "id", p.ID, "vertices", p.Len())
	b.changed()
	return ClickClosed
}

// Clear removes all polygons and the polygon under construction, and
// returns to the Idle state.
func (b *Board) Clear() {
	b.store.Reset()
	b.current = b.current[:0]
	b.state = Idle
	b.logger().Debug("board cleared")
	b.changed()
}

// DeleteSelected removes all selected polygons and returns their number.
func (b *Board) DeleteSelected() int {
	n := b.store.DeleteSelected()
	if n > 0 {
		b.logger().Debug("polygons deleted", "count", n, "remaining", b.store.Len())
	}
	b.changed()
	return n
}

// SetFillColor sets the fill color for new polygons, and for every
// selected polygon.
func (b *Board) SetFillColor(c color.NRGBA) {
	b.fill = c
	b.store.SetFill(c)
	b.changed()
}

// SetStrokeColor sets the stroke color for new polygons, and for every
// selected polygon.
func (b *Board) SetStrokeColor(c color.NRGBA) {
	b.stroke = c
	b.store.SetStroke(c)
	b.changed()
}

func (b *Board) changed() {
	if b.opts.redraw != nil {
		b.opts.redraw(b.Redraw())
	}
}

func (b *Board) logger() *slog.Logger {
	if b.opts.logger != nil {
		return b.opts.logger
	}
	return Logger()
}
