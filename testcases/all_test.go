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

import (
	"regexp"
	"testing"
)

var validName = regexp.MustCompile(`^[a-z_]+$`)

func TestNames(t *testing.T) {
	for category, cases := range All {
		if !validName.MatchString(category) {
			t.Errorf("invalid category name %q", category)
		}
		seen := make(map[string]bool)
		for _, tc := range cases {
			if !validName.MatchString(tc.Name) {
				t.Errorf("%s: invalid test case name %q", category, tc.Name)
			}
			if seen[tc.Name] {
				t.Errorf("%s: duplicate test case %q", category, tc.Name)
			}
			seen[tc.Name] = true
		}
	}
}

func TestCanvas(t *testing.T) {
	for category, cases := range All {
		for _, tc := range cases {
			if tc.Width <= 0 || tc.Height <= 0 {
				t.Errorf("%s_%s: invalid canvas %dx%d", category, tc.Name, tc.Width, tc.Height)
			}
			if len(tc.Polygon) == 0 {
				t.Errorf("%s_%s: no vertices", category, tc.Name)
			}
		}
	}
}

func TestSimple(t *testing.T) {
	for _, category := range Simple {
		if _, ok := All[category]; !ok {
			t.Errorf("unknown category %q", category)
		}
	}
}

func TestShapes(t *testing.T) {
	if got := len(regular(0, 0, 10, 7)); got != 7 {
		t.Errorf("regular: got %d vertices, want 7", got)
	}
	if got := len(star(0, 0, 10, 5, 6)); got != 12 {
		t.Errorf("star: got %d vertices, want 12", got)
	}
	p := regular(32, 32, 10, 4)
	if p[0].X != 32 || p[0].Y != 22 {
		t.Errorf("regular: first vertex %v, want (32,22)", p[0])
	}
	d := diamond(5, 5, 2)
	want := pts(5, 3, 7, 5, 5, 7, 3, 5)
	for i := range want {
		if d[i] != want[i] {
			t.Errorf("diamond: vertex %d is %v, want %v", i, d[i], want[i])
		}
	}
}
