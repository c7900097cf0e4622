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

import "slices"

// ScanlineCrossings returns the x-coordinates where the boundary of poly
// crosses the horizontal line at height y, in increasing order.
// Consecutive pairs of crossings delimit the inside of the polygon.
//
// Vertices lying exactly on the scanline are grouped into runs of
// consecutive vertices at height y, joined by horizontal or zero-length
// edges.  A run where the outline passes through is crossed once.  A run
// forming a peak, with the outline continuing below on both sides, is
// crossed at both of its ends.  A single vertex forming a valley is
// recorded as a touching pair, and a longer valley run is not crossed.
// The crossings then describe the row just below the scanline, and their
// number is even for every closed outline.
func ScanlineCrossings(poly Polygon, y int) []float64 {
	return AppendCrossings(nil, poly, y)
}

// AppendCrossings is like [ScanlineCrossings], but appends the crossings to
// dst and returns the extended slice.  Only the appended part is sorted.
func AppendCrossings(dst []float64, poly Polygon, y int) []float64 {
	start := len(dst)
	for i := range poly {
		if x, ok := edgeCrossing(poly, i, y); ok {
			dst = append(dst, x)
		}
	}
	for i := range poly {
		xs, n := runCrossings(poly, i, y)
		dst = append(dst, xs[:n]...)
	}
	slices.Sort(dst[start:])
	return dst
}

// triangleCrossings computes the crossings of a three-vertex polygon.
// It applies the same rules as AppendCrossings, but a triangle crosses a
// scanline at most twice, so the result fits into a fixed array and a
// single comparison replaces the sort.
func triangleCrossings(poly Polygon, y int) (xs [2]float64, n int) {
	for i := range 3 {
		if x, ok := edgeCrossing(poly, i, y); ok && n < len(xs) {
			xs[n] = x
			n++
		}
	}
	for i := range 3 {
		run, k := runCrossings(poly, i, y)
		for _, x := range run[:k] {
			if n < len(xs) {
				xs[n] = x
				n++
			}
		}
	}
	if n == 2 && xs[1] < xs[0] {
		xs[0], xs[1] = xs[1], xs[0]
	}
	return xs, n
}

// edgeCrossing returns the crossing of the edge from poly[i] to the
// following vertex, if the edge has one end point strictly above and the
// other strictly below the scanline.  End points on the scanline are
// handled by runCrossings.
func edgeCrossing(poly Polygon, i, y int) (float64, bool) {
	a, b := poly[i], poly[(i+1)%len(poly)]
	if vertical(a.Y-y)*vertical(b.Y-y) >= 0 {
		return 0, false
	}
	pt, ok := intersectScanline(a, b, y)
	return pt.X, ok
}

// runCrossings returns the crossings contributed by the run of vertices
// on the scanline which starts at poly[i].  Nothing is returned if
// poly[i] is not on the scanline, or if the vertex before it is.
func runCrossings(poly Polygon, i, y int) (xs [2]float64, n int) {
	m := len(poly)
	first := poly[i]
	prev := poly[(i+m-1)%m]
	if first.Y != y || prev.Y == y {
		return xs, 0
	}

	// The run ends before the next vertex off the scanline.  Since prev
	// is off the scanline, the loop stops before wrapping around.
	j := i
	for poly[(j+1)%m].Y == y {
		j++
	}
	last := poly[j%m]
	next := poly[(j+1)%m]

	in := vertical(first.Y - prev.Y)
	out := vertical(next.Y - last.Y)
	switch {
	case in == out && in > 0:
		// passing downwards, the edge leaving the run continues below
		xs[0] = float64(last.X)
		return xs, 1
	case in == out:
		// passing upwards, the edge entering the run comes from below
		xs[0] = float64(first.X)
		return xs, 1
	case in < 0 || first.X == last.X:
		// a peak, or a valley consisting of a single point
		xs[0], xs[1] = float64(first.X), float64(last.X)
		return xs, 2
	default:
		return xs, 0
	}
}

// vertical returns the sign of a vertical displacement.
func vertical(dy int) int {
	switch {
	case dy > 0:
		return 1
	case dy < 0:
		return -1
	default:
		return 0
	}
}
