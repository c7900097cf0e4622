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

	"seehuhn.de/go/geom/vec"
)

// intersectScanline intersects the edge p0→p1 with the horizontal line at
// height y.  The boolean result reports whether an intersection exists.
//
// Horizontal edges never intersect.  If the scanline passes exactly through
// an end point, that end point is returned unchanged; the crossing rules
// in crossings.go rely on this to recognise vertices on the scanline.
func intersectScanline(p0, p1 image.Point, y int) (vec.Vec2, bool) {
	if p0.Y == p1.Y {
		return vec.Vec2{}, false
	}
	if y == p0.Y {
		return toVec(p0), true
	}
	if y == p1.Y {
		return toVec(p1), true
	}

	t := float64(y-p0.Y) / float64(p1.Y-p0.Y)
	if t <= 0 || t >= 1 {
		return vec.Vec2{}, false
	}

	a := toVec(p0)
	return a.Add(toVec(p1).Sub(a).Mul(t)), true
}
