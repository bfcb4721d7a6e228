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

// Command genpng renders all scenes to PNG images, for visual inspection.
// Run from the module root directory.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/polydraw"
	"seehuhn.de/go/polydraw/testcases"
)

func main() {
	outDir := flag.String("o", "testdata/scenes", "output directory")
	labels := flag.Bool("labels", true, "draw vertex labels")
	verbose := flag.Bool("v", false, "log board events to stderr")
	flag.Parse()

	if *verbose {
		polydraw.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			name := category + "_" + sc.Name
			pngPath := filepath.Join(*outDir, name+".png")
			if err := renderPNG(sc, pngPath, *labels); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func renderPNG(sc testcases.Scene, pngPath string, labels bool) (err error) {
	ops, err := displayList(sc)
	if err != nil {
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, sc.Width, sc.Height))
	p := polydraw.NewPainter(img)
	p.Labels = labels
	p.Clear(color.White)
	p.Paint(ops)

	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}

// displayList loads the scene into a board and returns its display list.
func displayList(sc testcases.Scene) ([]polydraw.Op, error) {
	b := polydraw.NewBoard(polydraw.WithClip(rect.Rect{
		URx: float64(sc.Width),
		URy: float64(sc.Height),
	}))
	for _, s := range sc.Shapes {
		poly, err := polydraw.NewPolygon(s.Vertices, s.Fill, s.Stroke)
		if err != nil {
			return nil, err
		}
		i := b.Store().Add(poly)
		if s.Selected {
			b.Store().Toggle(i)
		}
	}
	return b.Redraw(), nil
}
