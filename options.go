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

	"seehuhn.de/go/geom/rect"
)

// Default values for board parameters.
const (
	// DefaultCloseRadius is the distance, in pixels, within which a click
	// on the first vertex closes the polygon under construction.
	DefaultCloseRadius = 10.0

	defaultStrokeWidth   = 1.0
	defaultSelectedWidth = 3.0
	defaultGlowWidth     = 8.0
)

// Default colors for new polygons.
var (
	DefaultFill   = color.NRGBA{R: 0, G: 150, B: 255, A: 128}
	DefaultStroke = color.NRGBA{A: 255}

	// GlowColor is used for the halo drawn behind selected polygons.
	GlowColor = color.NRGBA{R: 255, G: 255, A: 128}
)

// Option configures a Board during creation.
//
// Example:
//
//	b := polydraw.NewBoard(
//	    polydraw.WithCloseRadius(12),
//	    polydraw.WithRedraw(func(ops []polydraw.Op) { repaint(ops) }),
//	)
type Option func(*boardOptions)

type boardOptions struct {
	closeRadius   float64
	fill, stroke  color.NRGBA
	strokeWidth   float64
	selectedWidth float64
	glowWidth     float64
	clip          rect.Rect
	redraw        func([]Op)
	logger        *slog.Logger
}

func defaultOptions() boardOptions {
	return boardOptions{
		closeRadius:   DefaultCloseRadius,
		fill:          DefaultFill,
		stroke:        DefaultStroke,
		strokeWidth:   defaultStrokeWidth,
		selectedWidth: defaultSelectedWidth,
		glowWidth:     defaultGlowWidth,
	}
}

// WithCloseRadius sets the closing distance around the first vertex.
// Non-positive values are ignored.
func WithCloseRadius(r float64) Option {
	return func(o *boardOptions) {
		if r > 0 {
			o.closeRadius = r
		}
	}
}

// WithDefaultColors sets the initial fill and stroke colors for new polygons.
func WithDefaultColors(fill, stroke color.NRGBA) Option {
	return func(o *boardOptions) {
		o.fill = fill
		o.stroke = stroke
	}
}

// WithStrokeWidths sets the outline width of unselected and selected
// polygons, and the width of the glow drawn behind selected polygons.
// A glow width of zero disables the glow.
func WithStrokeWidths(normal, selected, glow float64) Option {
	return func(o *boardOptions) {
		o.strokeWidth = normal
		o.selectedWidth = selected
		o.glowWidth = glow
	}
}

// WithClip limits the fill spans in display lists to the given canvas
// rectangle. By default spans are not clipped.
func WithClip(clip rect.Rect) Option {
	return func(o *boardOptions) {
		o.clip = clip
	}
}

// WithRedraw installs a hook which receives a fresh display list after
// every state change.
func WithRedraw(fn func([]Op)) Option {
	return func(o *boardOptions) {
		o.redraw = fn
	}
}

// WithLogger sets a board-specific logger, overriding [SetLogger].
func WithLogger(l *slog.Logger) Option {
	return func(o *boardOptions) {
		o.logger = l
	}
}
