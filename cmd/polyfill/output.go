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
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/polyfill"
	"seehuhn.de/go/polyfill/internal/pdfpage"
)

// encoders maps file name extensions to image encoders.
var encoders = map[string]func(io.Writer, image.Image) error{
	".png":  png.Encode,
	".bmp":  bmp.Encode,
	".tif":  encodeTIFF,
	".tiff": encodeTIFF,
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

// writeOutput stores the result of a draw command.  For PDF output, the
// polygons of the batch are written as vector graphics;
// otherwise the buffer is written as an image, magnified by scale.
func writeOutput(fname string, buf *polyfill.Buffer, b *batch, bg polyfill.Color, scale int) (err error) {
	ext := strings.ToLower(filepath.Ext(fname))
	if ext == ".pdf" {
		shapes := make([]pdfpage.Shape, len(b.polygons))
		for i, poly := range b.polygons {
			shapes[i] = pdfpage.Shape{Polygon: poly, Fill: pdfpage.RGB(b.colors[i])}
		}
		return pdfpage.Write(fname, buf.Width(), buf.Height(), pdfpage.RGB(bg), shapes)
	}

	encode, ok := encoders[ext]
	if !ok {
		return fmt.Errorf("%s: unsupported output format %q", fname, ext)
	}

	var img image.Image = buf.RGBA()
	if scale > 1 {
		big := image.NewRGBA(image.Rect(0, 0, buf.Width()*scale, buf.Height()*scale))
		draw.NearestNeighbor.Scale(big, big.Bounds(), img, img.Bounds(), draw.Src, nil)
		img = big
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := encode(f, img); err != nil {
		return fmt.Errorf("encoding %s: %w", fname, err)
	}
	return nil
}

// rectOf converts integer pixel bounds to a clip rectangle.
func rectOf(r image.Rectangle) rect.Rect {
	return rect.Rect{
		LLx: float64(r.Min.X),
		LLy: float64(r.Min.Y),
		URx: float64(r.Max.X),
		URy: float64(r.Max.Y),
	}
}
