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

package polyfill

import (
	"image"
	"math/rand/v2"
)

// ColorSource supplies fill colors.  It is called exactly once per fill.
type ColorSource func() Color

// Uniform returns a ColorSource which always returns c.
func Uniform(c Color) ColorSource {
	return func() Color { return c }
}

// RandomColors returns a ColorSource producing opaque colors with
// uniformly distributed red, green and blue components.
func RandomColors(rng *rand.Rand) ColorSource {
	return func() Color {
		return 0xff000000 | Color(rng.Uint32())
	}
}

// RandomPolygon returns a polygon with n vertices, chosen independently
// and uniformly from the pixels of r.  The result is usually not simple.
// If r is empty, all vertices are r.Min.
func RandomPolygon(rng *rand.Rand, r image.Rectangle, n int) Polygon {
	poly := make(Polygon, max(n, 0))
	for i := range poly {
		p := r.Min
		if dx := r.Dx(); dx > 0 {
			p.X += rng.IntN(dx)
		}
		if dy := r.Dy(); dy > 0 {
			p.Y += rng.IntN(dy)
		}
		poly[i] = p
	}
	return poly
}
