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
)

// Color is a packed, non-premultiplied color value of the form 0xAARRGGBB.
type Color uint32

// RGB returns the opaque color with the given components.
func RGB(r, g, b uint8) Color {
	return 0xff000000 | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// NRGBA unpacks the color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
		A: uint8(c >> 24),
	}
}

// RGBA implements the [color.Color] interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// ColorModel converts arbitrary colors to [Color] values.
var ColorModel color.Model = color.ModelFunc(convertColor)

func convertColor(c color.Color) color.Color {
	if c, ok := c.(Color); ok {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color(n.A)<<24 | Color(n.R)<<16 | Color(n.G)<<8 | Color(n.B)
}

// Buffer is a rectangular grid of packed colors in row-major order, with
// the origin in the top-left corner.  All accessors check their
// coordinates: reads outside the buffer return 0, writes outside the
// buffer are ignored.
//
// Buffer implements [image.Image] and image/draw.Image.
type Buffer struct {
	// Pix holds the pixels.  The pixel at (x, y) is Pix[y*Stride+x].
	Pix []Color

	// Stride is the distance in Pix between vertically adjacent pixels.
	Stride int

	width, height int
}

// NewBuffer allocates a buffer of the given size, with all pixels set to
// zero (transparent black).  Negative sizes are treated as zero.
func NewBuffer(width, height int) *Buffer {
	width = max(width, 0)
	height = max(height, 0)
	return &Buffer{
		Pix:    make([]Color, width*height),
		Stride: width,
		width:  width,
		height: height,
	}
}

// Width returns the number of pixels per row.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Buffer) Height() int {
	return b.height
}

// Bounds implements the [image.Image] interface.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the [image.Image] interface.
func (b *Buffer) ColorModel() color.Model {
	return ColorModel
}

// At implements the [image.Image] interface.
func (b *Buffer) At(x, y int) color.Color {
	return b.Pixel(x, y)
}

// Set implements the image/draw.Image interface.
func (b *Buffer) Set(x, y int, c color.Color) {
	b.SetPixel(x, y, ColorModel.Convert(c).(Color))
}

func (b *Buffer) inside(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Pixel returns the color at (x, y), or 0 if the point is outside the buffer.
func (b *Buffer) Pixel(x, y int) Color {
	if !b.inside(x, y) {
		return 0
	}
	return b.Pix[y*b.Stride+x]
}

// SetPixel sets the color at (x, y).
func (b *Buffer) SetPixel(x, y int, c Color) {
	if !b.inside(x, y) {
		return
	}
	b.Pix[y*b.Stride+x] = c
}

// Row returns the pixels of row y, or nil if y is outside the buffer.
// The returned slice aliases the buffer.
func (b *Buffer) Row(y int) []Color {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.Stride
	return b.Pix[start : start+b.width]
}

// FillSpan sets the pixels x0 <= x < x1 of row y to c.
// The span is clipped to the buffer.
func (b *Buffer) FillSpan(y, x0, x1 int, c Color) {
	row := b.Row(y)
	x0 = max(x0, 0)
	x1 = min(x1, len(row))
	if x0 >= x1 {
		return
	}
	span := row[x0:x1]
	for i := range span {
		span[i] = c
	}
}

// Clear sets every pixel to c.
func (b *Buffer) Clear(c Color) {
	for y := range b.height {
		row := b.Row(y)
		for i := range row {
			row[i] = c
		}
	}
}

// RGBA returns a copy of the buffer as an [image.RGBA].
func (b *Buffer) RGBA() *image.RGBA {
	img := image.NewRGBA(b.Bounds())
	for y := range b.height {
		dst := img.Pix[y*img.Stride:]
		for x, c := range b.Row(y) {
			r, g, bl, a := c.RGBA()
			dst[4*x+0] = uint8(r >> 8)
			dst[4*x+1] = uint8(g >> 8)
			dst[4*x+2] = uint8(bl >> 8)
			dst[4*x+3] = uint8(a >> 8)
		}
	}
	return img
}
