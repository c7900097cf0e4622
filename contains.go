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
	"math"
)

// Contains reports whether filling poly would paint the pixel p, ignoring
// any clipping.  This can be used for hit-testing.
func Contains(poly Polygon, p image.Point) bool {
	if poly.IsDegenerate() {
		return false
	}
	top, bottom := poly.scanRange()
	if p.Y < top || p.Y >= bottom {
		return false
	}

	xs := ScanlineCrossings(poly, p.Y)
	for i := 0; i+1 < len(xs); i += 2 {
		if int(math.Floor(xs[i])) <= p.X && p.X <= int(math.Floor(xs[i+1])) {
			return true
		}
	}
	return false
}
