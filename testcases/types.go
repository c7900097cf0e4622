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

// Package testcases defines named polygons for testing and benchmarking
// the scanline filler, and for generating reference images.
package testcases

import (
	"image"
	"math"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name    string        // lowercase a-z and _ only
	Polygon []image.Point // the vertices, in order
	Width   int           // canvas width in pixels
	Height  int           // canvas height in pixels
}

// pts builds a vertex list from alternating x and y coordinates.
func pts(coords ...int) []image.Point {
	res := make([]image.Point, len(coords)/2)
	for i := range res {
		res[i] = image.Point{X: coords[2*i], Y: coords[2*i+1]}
	}
	return res
}

// rectangle builds an axis-aligned rectangle with corners (x0, y0) and
// (x1, y1).
func rectangle(x0, y0, x1, y1 int) []image.Point {
	return pts(x0, y0, x1, y0, x1, y1, x0, y1)
}

// diamond builds a square rotated by 45°, with the given center and
// distance r from the center to each vertex.
func diamond(cx, cy, r int) []image.Point {
	return pts(cx, cy-r, cx+r, cy, cx, cy+r, cx-r, cy)
}

// regular builds a regular polygon with n vertices, rounded to integer
// coordinates.  The first vertex is straight above the center.
func regular(cx, cy, r float64, n int) []image.Point {
	res := make([]image.Point, n)
	for i := range res {
		angle := float64(i)*2*math.Pi/float64(n) - math.Pi/2
		res[i] = image.Point{
			X: int(math.Round(cx + r*math.Cos(angle))),
			Y: int(math.Round(cy + r*math.Sin(angle))),
		}
	}
	return res
}

// star builds a simple star-shaped polygon with n spikes, alternating
// between the outer radius r1 and the inner radius r2.
func star(cx, cy, r1, r2 float64, n int) []image.Point {
	res := make([]image.Point, 2*n)
	for i := range res {
		r := r1
		if i%2 == 1 {
			r = r2
		}
		angle := float64(i)*math.Pi/float64(n) - math.Pi/2
		res[i] = image.Point{
			X: int(math.Round(cx + r*math.Cos(angle))),
			Y: int(math.Round(cy + r*math.Sin(angle))),
		}
	}
	return res
}

// pentagram builds a five-pointed star by connecting every second vertex
// of a regular pentagon.  The outline intersects itself.
func pentagram(cx, cy, r float64) []image.Point {
	p := regular(cx, cy, r, 5)
	return []image.Point{p[0], p[2], p[4], p[1], p[3]}
}
