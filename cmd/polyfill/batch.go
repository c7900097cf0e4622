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

package main

import (
	"errors"
	"image"
	"math/rand/v2"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"seehuhn.de/go/polyfill"
)

// batch is a set of random polygons with their fill colors.
type batch struct {
	seed     uint64
	polygons []polyfill.Polygon
	colors   []polyfill.Color
}

// newBatch generates count random polygons with n vertices each, inside
// a width×height canvas.  A zero seed is replaced by a random one.
func newBatch(width, height, n, count int, seed uint64) (*batch, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New("image size must be positive")
	}
	if n < 3 {
		return nil, errors.New("polygons need at least 3 vertices")
	}
	if count < 0 {
		return nil, errors.New("polygon count must not be negative")
	}
	if seed == 0 {
		seed = rand.Uint64()
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	colors := polyfill.RandomColors(rng)
	bounds := image.Rect(0, 0, width, height)

	b := &batch{
		seed:     seed,
		polygons: make([]polyfill.Polygon, count),
		colors:   make([]polyfill.Color, count),
	}
	for i := range count {
		b.polygons[i] = polyfill.RandomPolygon(rng, bounds, n)
		b.colors[i] = colors()
	}
	return b, nil
}

// rasterizers maps the names accepted by the --mode option to functions
// drawing a batch into a buffer.
var rasterizers = map[string]func(*polyfill.Buffer, *batch){
	"scanline": drawScanline,
	"vector":   drawVector,
}

// drawScanline draws the batch with the scanline filler.  The polygons
// are filled one after another, so later polygons cover earlier ones.
func drawScanline(buf *polyfill.Buffer, b *batch) {
	f := polyfill.NewFiller(rectOf(buf.Bounds()))
	for i, poly := range b.polygons {
		f.Fill(buf, poly, polyfill.Uniform(b.colors[i]))
	}
}

// drawVector draws the batch with the anti-aliasing rasterizer from
// golang.org/x/image/vector, which uses the nonzero winding rule.
func drawVector(buf *polyfill.Buffer, b *batch) {
	w, h := buf.Width(), buf.Height()
	r := vector.NewRasterizer(w, h)
	for i, poly := range b.polygons {
		if poly.IsDegenerate() {
			continue
		}
		r.Reset(w, h)
		r.DrawOp = draw.Over
		r.MoveTo(float32(poly[0].X), float32(poly[0].Y))
		for _, p := range poly[1:] {
			r.LineTo(float32(p.X), float32(p.Y))
		}
		r.ClosePath()
		r.Draw(buf, buf.Bounds(), image.NewUniform(b.colors[i]), image.Point{})
	}
}
