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
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/tdewolff/test"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/polyfill"
)

func TestParseColor(t *testing.T) {
	c, err := parseColor("ff8000")
	test.Error(t, err)
	test.T(t, c, polyfill.Color(0xffff8000))

	c, err = parseColor("#0000FF")
	test.Error(t, err)
	test.T(t, c, polyfill.RGB(0, 0, 255))

	for _, s := range []string{"", "fff", "12345g", "#1234567"} {
		_, err := parseColor(s)
		test.That(t, err != nil, s)
	}
}

func TestNewBatch(t *testing.T) {
	a, err := newBatch(100, 50, 5, 20, 42)
	test.Error(t, err)
	b, err := newBatch(100, 50, 5, 20, 42)
	test.Error(t, err)

	test.T(t, a.seed, uint64(42))
	test.T(t, len(a.polygons), 20)
	test.T(t, len(a.colors), 20)
	bounds := image.Rect(0, 0, 100, 50)
	for i, poly := range a.polygons {
		test.T(t, len(poly), 5)
		for _, p := range poly {
			test.That(t, p.In(bounds), p)
		}
		test.That(t, slices.Equal(poly, b.polygons[i]), "batches differ")
		test.T(t, a.colors[i]>>24, polyfill.Color(0xff))
	}
	test.T(t, a.colors, b.colors)

	r, err := newBatch(10, 10, 3, 1, 0)
	test.Error(t, err)
	test.That(t, r.seed != 0)

	_, err = newBatch(0, 10, 3, 1, 1)
	test.That(t, err != nil)
	_, err = newBatch(10, 10, 2, 1, 1)
	test.That(t, err != nil)
	_, err = newBatch(10, 10, 3, -1, 1)
	test.That(t, err != nil)
}

// TestRasterizersAgree checks that the two drawing modes produce nearly
// the same image.  Pixels along the outline differ, since the vector
// rasterizer blends partially covered pixels.
func TestRasterizersAgree(t *testing.T) {
	b := &batch{
		polygons: []polyfill.Polygon{{{X: 8, Y: 8}, {X: 56, Y: 8}, {X: 8, Y: 56}}},
		colors:   []polyfill.Color{polyfill.RGB(255, 0, 0)},
	}

	scan := polyfill.NewBuffer(64, 64)
	vec := polyfill.NewBuffer(64, 64)
	drawScanline(scan, b)
	drawVector(vec, b)

	test.T(t, scan.Pixel(20, 20), b.colors[0])
	test.T(t, vec.Pixel(20, 20), b.colors[0])
	test.T(t, scan.Pixel(50, 50), polyfill.Color(0))
	test.T(t, vec.Pixel(50, 50), polyfill.Color(0))

	diff := 0
	for i := range scan.Pix {
		if scan.Pix[i] != vec.Pix[i] {
			diff++
		}
	}
	test.That(t, diff < len(scan.Pix)/10, "too many differing pixels:", diff)
}

func TestWriteOutput(t *testing.T) {
	b, err := newBatch(16, 12, 4, 5, 3)
	test.Error(t, err)
	buf := polyfill.NewBuffer(16, 12)
	bg := polyfill.RGB(255, 255, 255)
	buf.Clear(bg)
	drawScanline(buf, b)

	dir := t.TempDir()
	decoders := map[string]func(string) (image.Image, error){
		"out.png":  decodeWith(png.Decode),
		"out.bmp":  decodeWith(bmp.Decode),
		"out.tiff": decodeWith(tiff.Decode),
	}
	for name, decode := range decoders {
		fname := filepath.Join(dir, name)
		test.Error(t, writeOutput(fname, buf, b, bg, 3))

		img, err := decode(fname)
		test.Error(t, err)
		test.T(t, img.Bounds(), image.Rect(0, 0, 48, 36), name)

		want := buf.Pixel(5, 7).NRGBA()
		r, g, bl, _ := img.At(3*5+1, 3*7+2).RGBA()
		test.T(t, [3]uint8{uint8(r >> 8), uint8(g >> 8), uint8(bl >> 8)}, [3]uint8{want.R, want.G, want.B}, name)
	}

	fname := filepath.Join(dir, "out.pdf")
	test.Error(t, writeOutput(fname, buf, b, bg, 1))
	fi, err := os.Stat(fname)
	test.Error(t, err)
	test.That(t, fi.Size() > 0)

	test.That(t, writeOutput(filepath.Join(dir, "out.xyz"), buf, b, bg, 1) != nil)
}

func TestRectOf(t *testing.T) {
	test.T(t, rectOf(image.Rect(1, 2, 30, 40)), rect.Rect{LLx: 1, LLy: 2, URx: 30, URy: 40})
}

func decodeWith(decode func(io.Reader) (image.Image, error)) func(string) (image.Image, error) {
	return func(fname string) (img image.Image, err error) {
		f, err := os.Open(fname)
		if err != nil {
			return nil, err
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		return decode(f)
	}
}
