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

package testcases

// largeCases contains polygons on a large canvas, including polygons
// which extend beyond the canvas on every side.
var largeCases = []TestCase{
	{
		Name:    "rectangle",
		Polygon: rectangle(50, 50, 462, 462),
		Width:   512,
		Height:  512,
	},
	{
		Name:    "diamond",
		Polygon: diamond(256, 256, 180),
		Width:   512,
		Height:  512,
	},
	{
		Name:    "circle",
		Polygon: regular(256, 256, 200, 64),
		Width:   512,
		Height:  512,
	},
	{
		Name:    "star",
		Polygon: star(256, 256, 240, 90, 12),
		Width:   512,
		Height:  512,
	},
	{
		Name:    "clipped_horizontal",
		Polygon: rectangle(-100, 100, 612, 400),
		Width:   512,
		Height:  512,
	},
	{
		Name:    "clipped_vertical",
		Polygon: pts(256, -100, 600, 300, 200, 700, -50, 250),
		Width:   512,
		Height:  512,
	},
}
