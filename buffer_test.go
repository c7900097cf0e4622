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
	"image/color"
	"image/draw"
	"testing"

	"github.com/tdewolff/test"
)

func TestColor(t *testing.T) {
	c := RGB(0x12, 0x34, 0x56)
	test.T(t, c, Color(0xff123456))
	test.T(t, c.NRGBA(), color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff})

	r, g, b, a := c.RGBA()
	test.T(t, r, uint32(0x1212))
	test.T(t, g, uint32(0x3434))
	test.T(t, b, uint32(0x5656))
	test.T(t, a, uint32(0xffff))
}

func TestColorModel(t *testing.T) {
	test.T(t, ColorModel.Convert(Color(0x80402010)), color.Color(Color(0x80402010)))
	test.T(t, ColorModel.Convert(color.RGBA{R: 255, G: 128, B: 0, A: 255}), color.Color(Color(0xffff8000)))
	test.T(t, ColorModel.Convert(color.Gray{Y: 0x40}), color.Color(Color(0xff404040)))
	test.T(t, ColorModel.Convert(color.Transparent), color.Color(Color(0)))
}

func TestBufferBounds(t *testing.T) {
	buf := NewBuffer(3, 2)
	test.T(t, buf.Width(), 3)
	test.T(t, buf.Height(), 2)
	test.T(t, buf.Bounds(), image.Rect(0, 0, 3, 2))
	test.T(t, len(buf.Pix), 6)

	neg := NewBuffer(-1, 5)
	test.T(t, neg.Bounds(), image.Rect(0, 0, 0, 5))
	test.T(t, len(neg.Pix), 0)
}

func TestBufferPixel(t *testing.T) {
	buf := NewBuffer(3, 2)
	buf.SetPixel(2, 1, red)
	test.T(t, buf.Pixel(2, 1), red)
	test.T(t, buf.Pix[1*buf.Stride+2], red)

	// out of range accesses are ignored
	for _, p := range []image.Point{{-1, 0}, {3, 0}, {0, -1}, {0, 2}} {
		buf.SetPixel(p.X, p.Y, blue)
		test.T(t, buf.Pixel(p.X, p.Y), Color(0), p)
	}
	for _, c := range buf.Pix {
		test.That(t, c != blue)
	}
}

func TestBufferRow(t *testing.T) {
	buf := NewBuffer(4, 3)
	test.T(t, len(buf.Row(0)), 4)
	test.T(t, len(buf.Row(2)), 4)
	test.That(t, buf.Row(-1) == nil)
	test.That(t, buf.Row(3) == nil)

	buf.Row(1)[3] = blue
	test.T(t, buf.Pixel(3, 1), blue)
}

func TestFillSpan(t *testing.T) {
	buf := NewBuffer(5, 3)
	buf.FillSpan(0, 1, 3, white)
	buf.FillSpan(1, -10, 2, white)
	buf.FillSpan(2, 3, 100, white)
	buf.FillSpan(-1, 0, 5, white)
	buf.FillSpan(3, 0, 5, white)
	buf.FillSpan(0, 4, 4, white)
	buf.FillSpan(0, 5, 2, white)
	checkMask(t, buf, white,
		".##..",
		"##...",
		"...##",
	)
}

func TestBufferClear(t *testing.T) {
	buf := NewBuffer(3, 3)
	buf.SetPixel(1, 1, red)
	buf.Clear(blue)
	checkMask(t, buf, blue, "###", "###", "###")
}

func TestBufferDraw(t *testing.T) {
	var _ draw.Image = (*Buffer)(nil)

	buf := NewBuffer(4, 4)
	src := image.NewUniform(color.RGBA{R: 0, G: 0, B: 255, A: 255})
	draw.Draw(buf, image.Rect(1, 1, 3, 3), src, image.Point{}, draw.Src)
	checkMask(t, buf, blue,
		"....",
		".##.",
		".##.",
		"....",
	)
}

func TestBufferRGBA(t *testing.T) {
	buf := NewBuffer(2, 2)
	buf.SetPixel(0, 0, RGB(10, 20, 30))
	buf.SetPixel(1, 1, white)

	img := buf.RGBA()
	test.T(t, img.Bounds(), buf.Bounds())
	test.T(t, img.RGBAAt(0, 0), color.RGBA{R: 10, G: 20, B: 30, A: 255})
	test.T(t, img.RGBAAt(1, 1), color.RGBA{R: 255, G: 255, B: 255, A: 255})
	test.T(t, img.RGBAAt(1, 0), color.RGBA{})
}
