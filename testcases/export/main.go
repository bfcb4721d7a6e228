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

// Export writes all scenes, together with their interior spans, to
// testdata/scenes.json, so that other implementations can be checked
// against this one.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image/color"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/polydraw"
	"seehuhn.de/go/polydraw/testcases"
)

func main() {
	outFile := flag.String("o", "testdata/scenes.json", "output file")
	flag.Parse()

	var out struct {
		Scenes []jsonScene `json:"scenes"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			out.Scenes = append(out.Scenes, toJSON(category, sc))
		}
	}

	if err := writeJSON(*outFile, out); err != nil {
		panic(err)
	}
}

func writeJSON(fname string, v any) (err error) {
	if err := os.MkdirAll(filepath.Dir(fname), 0o755); err != nil {
		return err
	}
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type jsonScene struct {
	Name   string      `json:"name"`
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Shapes []jsonShape `json:"shapes"`
}

type jsonShape struct {
	Vertices [][]float64 `json:"vertices"`
	Fill     string      `json:"fill"`
	Stroke   string      `json:"stroke"`
	Selected bool        `json:"selected,omitempty"`
	Spans    []jsonSpan  `json:"spans"`
}

type jsonSpan struct {
	Y  int     `json:"y"`
	X0 float64 `json:"x0"`
	X1 float64 `json:"x1"`
}

func toJSON(category string, sc testcases.Scene) jsonScene {
	js := jsonScene{
		Name:   category + "_" + sc.Name,
		Width:  sc.Width,
		Height: sc.Height,
	}

	var s polydraw.Scanliner
	var spans []polydraw.Span
	for _, shape := range sc.Shapes {
		jsh := jsonShape{
			Vertices: make([][]float64, len(shape.Vertices)),
			Fill:     hexColor(shape.Fill),
			Stroke:   hexColor(shape.Stroke),
			Selected: shape.Selected,
			Spans:    []jsonSpan{},
		}
		for i, v := range shape.Vertices {
			jsh.Vertices[i] = []float64{v.X, v.Y}
		}

		spans = s.AppendSpans(spans[:0], shape.Vertices)
		for _, sp := range spans {
			jsh.Spans = append(jsh.Spans, jsonSpan{Y: sp.Y, X0: sp.X0, X1: sp.X1})
		}
		js.Shapes = append(js.Shapes, jsh)
	}
	return js
}

// hexColor formats c in the "#rrggbbaa" form accepted by
// [polydraw.ParseColor].
func hexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
