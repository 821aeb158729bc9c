// seehuhn.de/go/linepattern - line pattern tiles for map renderers
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

// Command genpdf generates reference images for the tile tests.
// It draws every test case as a vector PDF and renders it to PNG using
// Ghostscript.  Run from the module root directory.
package main

import (
	"fmt"
	"log/slog"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/linepattern"
	"seehuhn.de/go/linepattern/testcases"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
)

const refDir = "testdata/reference"

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := os.MkdirAll(refDir, 0755); err != nil {
		log.Error("cannot create output directory", "err", err)
		os.Exit(1)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				log.Error("cannot write PDF", "case", name, "err", err)
				os.Exit(1)
			}
			if err := renderPNG(pdfPath, pngPath); err != nil {
				log.Error("cannot render PDF", "case", name, "err", err)
				os.Exit(1)
			}
			log.Info("wrote reference", "case", name, "file", pngPath)
		}
	}
}

// generatePDF writes the outline of a test case as white on black, so that
// the gray value of the rendered page is the pixel coverage.
func generatePDF(tc testcases.TestCase, pdfPath string) error {
	skew := tc.Style.Skew
	if skew == 0 {
		skew = linepattern.DefaultSkew
	}
	w, h, err := linepattern.TileSize(tc.Segments, tc.Style.StrokeWidth, skew)
	if err != nil {
		return err
	}

	// 1 point = 1 pixel at 72 DPI
	paper := &pdf.Rectangle{
		URx: float64(w),
		URy: float64(h),
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(w), float64(h))
	page.Fill()

	// tiles have the origin in the top-left corner
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(h)})

	page.SetFillColor(color.DeviceGray(1))
	outline := linepattern.Outline(tc.Segments, tc.Style.StrokeWidth, skew)
	for cmd, pts := range outline.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
	if len(outline.Cmds) > 0 {
		page.Fill()
	}

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 1 point = 1 pixel
	// -dGraphicsAlphaBits=4: anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("gs: %w", err)
	}
	return nil
}
