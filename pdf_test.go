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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/polydraw/testcases"
)

func TestWritePDF(t *testing.T) {
	b := NewBoard()
	drawPolygon(t, b, testcases.Rectangle(10, 10, 50, 50))
	drawPolygon(t, b, testcases.Regular(90, 30, 20, 5, 0))
	b.StartDrawing()
	b.Click(vec.Vec2{X: 90, Y: 30})
	b.Click(vec.Vec2{X: 10, Y: 70})
	b.Click(vec.Vec2{X: 60, Y: 75})

	fname := filepath.Join(t.TempDir(), "board.pdf")
	if err := WritePDF(fname, 128, 96, b.Redraw()); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header: %q", data[:min(len(data), 16)])
	}
}

func TestWritePDFEmpty(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "empty.pdf")
	if err := WritePDF(fname, 64, 64, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(fname); err != nil {
		t.Fatal(err)
	}
}

func TestWritePDFBadPath(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "missing", "out.pdf")
	if err := WritePDF(fname, 64, 64, nil); err == nil {
		t.Error("expected an error for a missing directory")
	}
}
