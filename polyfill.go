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

// Package polyfill fills polygons with integer vertices into a pixel
// buffer, one scanline at a time, using the even-odd rule.
//
// For every scanline the boundary crossings are collected and sorted, and
// the pixels between consecutive pairs of crossings are painted with a
// single flat color.  There is no anti-aliasing: a pixel is either
// painted or left alone.
package polyfill

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

import (
	"image"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Polygon is a closed outline given by its vertices in order.
// An edge connects each vertex to the next one, and the last vertex
// back to the first.  Coincident vertices are allowed.
type Polygon []image.Point

// Bounds returns the smallest rectangle containing all vertices, treating
// each vertex as the unit pixel to its lower right.  The zero rectangle is
// returned for an empty polygon.
func (poly Polygon) Bounds() image.Rectangle {
	if len(poly) == 0 {
		return image.Rectangle{}
	}
	b := image.Rectangle{Min: poly[0], Max: poly[0]}
	for _, p := range poly[1:] {
		b.Min.X = min(b.Min.X, p.X)
		b.Min.Y = min(b.Min.Y, p.Y)
		b.Max.X = max(b.Max.X, p.X)
		b.Max.Y = max(b.Max.Y, p.Y)
	}
	b.Max.X++
	b.Max.Y++
	return b
}

// scanRange returns the half-open range [top, bottom) of scanlines covered
// by the polygon: top is the smallest and bottom the largest vertex y.
func (poly Polygon) scanRange() (top, bottom int) {
	top, bottom = poly[0].Y, poly[0].Y
	for _, p := range poly[1:] {
		top = min(top, p.Y)
		bottom = max(bottom, p.Y)
	}
	return top, bottom
}

// IsDegenerate reports whether the polygon has fewer than three distinct
// vertices.  Degenerate polygons enclose no area and are never filled.
func (poly Polygon) IsDegenerate() bool {
	if len(poly) < 3 {
		return true
	}
	a := poly[0]
	b, i := a, 1
	for ; i < len(poly); i++ {
		if poly[i] != a {
			b = poly[i]
			break
		}
	}
	for ; i < len(poly); i++ {
		if poly[i] != a && poly[i] != b {
			return false
		}
	}
	return true
}

// Path returns the polygon outline as a closed path.
func (poly Polygon) Path() *path.Data {
	p := &path.Data{}
	if len(poly) == 0 {
		return p
	}
	p = p.MoveTo(toVec(poly[0]))
	for _, q := range poly[1:] {
		p = p.LineTo(toVec(q))
	}
	return p.Close()
}

func toVec(p image.Point) vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}
