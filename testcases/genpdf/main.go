// seehuhn.de/go/polyfill - a scanline polygon filler
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

// Command genpdf generates reference images for the filler tests.
// It writes each test case as a PDF file and renders it to a PNG using
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

	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/polyfill/internal/pdfpage"
	"seehuhn.de/go/polyfill/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := run(); err != nil {
		slog.Error("generating reference images", "err", err)
		os.Exit(1)
	}
}

func run() error {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		return err
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			// White polygon on black background, so that gray values
			// are coverage values: 0=outside, 255=inside.
			shapes := []pdfpage.Shape{{Polygon: tc.Polygon, Fill: color.DeviceGray(1)}}
			if err := pdfpage.Write(pdfPath, tc.Width, tc.Height, color.DeviceGray(0), shapes); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			if err := renderPNG(pdfPath, pngPath); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			slog.Info("reference image written", "name", name)
		}
	}
	return nil
}

func renderPNG(pdfPath, pngPath string) error {
	// one pixel per point, anti-aliased
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
	return cmd.Run()
}
