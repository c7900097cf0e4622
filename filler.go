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

	"seehuhn.de/go/geom/rect"
)

// Filler converts polygons into runs of pixels, one scanline at a time.
// Create one instance and reuse it for many polygons: the internal
// crossing buffer grows as needed but never shrinks, so that filling is
// allocation-free in steady state.
//
// A Filler is not safe for concurrent use.
type Filler struct {
	// Clip restricts output to this rectangle, in pixel coordinates with
	// y pointing down.  Coordinates must be integer-aligned.  The zero
	// rectangle means no restriction.  When filling a [Buffer], the
	// buffer bounds apply in addition to Clip.
	Clip rect.Rect

	// generalOnly disables the triangle fast path, so that tests can
	// compare both strategies.
	generalOnly bool

	crossings []float64 // crossing buffer, reused for every scanline
}

// NewFiller returns a Filler with the given clip rectangle.
func NewFiller(clip rect.Rect) *Filler {
	return &Filler{Clip: clip}
}

// Reset sets a new clip rectangle, preserving internal buffer capacity.
func (f *Filler) Reset(clip rect.Rect) {
	f.Clip = clip
	f.crossings = f.crossings[:0]
}

// Fill paints poly into buf using the even-odd rule.  One color is taken
// from src for the whole polygon; src is called exactly once, even if
// nothing is painted.
//
// Polygons with fewer than three distinct vertices paint nothing.  No
// pixel outside the buffer or outside Clip is ever written.
func Fill(buf *Buffer, poly Polygon, src ColorSource) {
	var f Filler
	f.Fill(buf, poly, src)
}

// Fill paints poly into buf.  See the package-level [Fill] function.
func (f *Filler) Fill(buf *Buffer, poly Polygon, src ColorSource) {
	c := src()
	clip := f.clipBounds().Intersect(buf.Bounds())
	f.scan(poly, clip, func(y, xMin, xMax int) {
		buf.FillSpan(y, xMin, xMax, c)
	})
}

// Scan computes the pixels covered by poly without painting them.
// For every run of covered pixels, emit is called with the scanline y and
// the half-open range xMin <= x < xMax.  Rows are reported top to bottom,
// runs within a row left to right.  The runs are clipped to Clip.
func (f *Filler) Scan(poly Polygon, emit func(y, xMin, xMax int)) {
	f.scan(poly, f.clipBounds(), emit)
}

// strategy selects the crossing computation for a polygon.
type strategy int

const (
	generalPath strategy = iota
	trianglePath
)

func (f *Filler) strategyFor(poly Polygon) strategy {
	if len(poly) == 3 && !f.generalOnly {
		return trianglePath
	}
	return generalPath
}

// scan is the implementation shared by Fill and Scan.
func (f *Filler) scan(poly Polygon, clip image.Rectangle, emit func(y, xMin, xMax int)) {
	if poly.IsDegenerate() {
		Logger().Debug("skipping degenerate polygon", "vertices", len(poly))
		return
	}

	top, bottom := poly.scanRange()
	yMin := max(top, clip.Min.Y)
	yMax := min(bottom, clip.Max.Y)
	if yMin != top || yMax != bottom {
		Logger().Debug("scanline range clamped",
			"top", top, "bottom", bottom, "yMin", yMin, "yMax", yMax)
	}

	switch f.strategyFor(poly) {
	case trianglePath:
		for y := yMin; y < yMax; y++ {
			xs, n := triangleCrossings(poly, y)
			emitSpans(xs[:n], y, clip, emit)
		}
	default:
		for y := yMin; y < yMax; y++ {
			f.crossings = AppendCrossings(f.crossings[:0], poly, y)
			emitSpans(f.crossings, y, clip, emit)
		}
	}
}

// emitSpans converts pairs of crossings into pixel runs.  A run starts at
// the pixel containing the first crossing and includes the pixel
// containing the second one.  An unpaired last crossing is ignored.
func emitSpans(xs []float64, y int, clip image.Rectangle, emit func(y, xMin, xMax int)) {
	for i := 0; i+1 < len(xs); i += 2 {
		xBeg := max(int(math.Floor(xs[i])), clip.Min.X)
		xEnd := min(int(math.Floor(xs[i+1]))+1, clip.Max.X)
		if xBeg < xEnd {
			emit(y, xBeg, xEnd)
		}
	}
}

// clipBounds converts Clip to integer pixel bounds.
func (f *Filler) clipBounds() image.Rectangle {
	if f.Clip == (rect.Rect{}) {
		return image.Rectangle{
			Min: image.Point{X: math.MinInt, Y: math.MinInt},
			Max: image.Point{X: math.MaxInt, Y: math.MaxInt},
		}
	}
	return image.Rectangle{
		Min: image.Point{X: int(f.Clip.LLx), Y: int(f.Clip.LLy)},
		Max: image.Point{X: int(f.Clip.URx), Y: int(f.Clip.URy)},
	}
}
