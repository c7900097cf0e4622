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

var triangleCases = []TestCase{
	{
		Name:    "right",
		Polygon: pts(8, 8, 56, 8, 8, 56),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "flat_bottom",
		Polygon: pts(32, 6, 58, 50, 6, 50),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "flat_top",
		Polygon: pts(6, 10, 58, 10, 30, 58),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "general",
		Polygon: pts(10, 50, 32, 10, 54, 44),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "sliver",
		Polygon: pts(2, 4, 61, 30, 4, 12),
		Width:   64,
		Height:  64,
	},
}

var convexCases = []TestCase{
	{
		Name:    "rectangle",
		Polygon: rectangle(10, 10, 44, 44),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "diamond",
		Polygon: diamond(32, 32, 24),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "hexagon",
		Polygon: regular(32, 32, 26, 6),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "circle",
		Polygon: regular(32, 32, 28, 40),
		Width:   64,
		Height:  64,
	},
}

var concaveCases = []TestCase{
	{
		Name:    "w_shape",
		Polygon: pts(4, 4, 12, 20, 20, 56, 32, 24, 44, 56, 60, 4),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "l_shape",
		Polygon: pts(8, 8, 24, 8, 24, 40, 56, 40, 56, 56, 8, 56),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "arrow",
		Polygon: pts(32, 4, 60, 32, 44, 32, 44, 60, 20, 60, 20, 32, 4, 32),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "star",
		Polygon: star(32, 32, 28, 12, 7),
		Width:   64,
		Height:  64,
	},
}

var selfIntersectCases = []TestCase{
	{
		Name:    "pentagram",
		Polygon: pentagram(32, 34, 28),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "bowtie",
		Polygon: pts(8, 8, 56, 56, 56, 8, 8, 56),
		Width:   64,
		Height:  64,
	},
}

var degenerateCases = []TestCase{
	{
		Name:    "two_points",
		Polygon: pts(10, 10, 50, 50),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "repeated_vertex",
		Polygon: pts(10, 10, 50, 50, 10, 10),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "single_point",
		Polygon: pts(20, 20, 20, 20, 20, 20),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "collinear",
		Polygon: pts(10, 10, 30, 30, 50, 50),
		Width:   64,
		Height:  64,
	},
}
