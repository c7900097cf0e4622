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

// Package pdfpage writes polygons as vector graphics to a single-page PDF
// file, for comparison with the pixel output of the scanline filler.
package pdfpage

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/polyfill"
)

// Shape is a polygon together with its fill color.
type Shape struct {
	Polygon polyfill.Polygon
	Fill    color.Color
}

// Write creates a PDF file with a single page of width×height points.
// The page is painted with the background color, then each shape is
// filled in order using the even-odd rule.
//
// Pixel coordinates have the origin in the top-left corner with y pointing
// down; the page content is flipped accordingly, so that a rendering at
// 72 DPI matches the pixel grid of the scanline filler.
func Write(fname string, width, height int, background color.Color, shapes []Shape) error {
	paper := &pdf.Rectangle{
		URx: float64(width),
		URy: float64(height),
	}

	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return fmt.Errorf("creating %s: %w", fname, err)
	}

	page.SetFillColor(background)
	page.Rectangle(0, 0, float64(width), float64(height))
	page.Fill()

	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(height)})

	for _, s := range shapes {
		if s.Polygon.IsDegenerate() {
			continue
		}
		page.SetFillColor(s.Fill)
		for cmd, pts := range s.Polygon.Path().Iter() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
		page.FillEvenOdd()
	}

	if err := page.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", fname, err)
	}
	return nil
}

// RGB converts c to a DeviceRGB color.  The alpha channel is ignored.
func RGB(c polyfill.Color) color.Color {
	n := c.NRGBA()
	return color.DeviceRGB{float64(n.R) / 255, float64(n.G) / 255, float64(n.B) / 255}
}
