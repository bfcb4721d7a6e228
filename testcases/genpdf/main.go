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

// Command genpdf writes all scenes as PDF files. With -gs, each PDF is also
// rendered to PNG using Ghostscript, for comparison with the output of
// genpng.
// Run from the module root directory.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/polydraw"
	"seehuhn.de/go/polydraw/testcases"
)

func main() {
	outDir := flag.String("o", "testdata/pdf", "output directory")
	useGS := flag.Bool("gs", false, "render the PDF files to PNG using Ghostscript")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			name := category + "_" + sc.Name
			pdfPath := filepath.Join(*outDir, name+".pdf")
			pngPath := filepath.Join(*outDir, name+".png")

			if err := generatePDF(sc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if *useGS {
				if err := renderPNG(pdfPath, pngPath); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

func generatePDF(sc testcases.Scene, pdfPath string) error {
	b := polydraw.NewBoard()
	for _, s := range sc.Shapes {
		poly, err := polydraw.NewPolygon(s.Vertices, s.Fill, s.Stroke)
		if err != nil {
			return err
		}
		i := b.Store().Add(poly)
		if s.Selected {
			b.Store().Toggle(i)
		}
	}
	return polydraw.WritePDF(pdfPath, sc.Width, sc.Height, b.Redraw())
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=png16m: 24-bit RGB
	// -r72: 72 DPI (1 point = 1 pixel)
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=png16m",
		"-r72",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
