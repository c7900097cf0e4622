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

// Command polyfill draws random polygons into an image, using either the
// scanline filler or the x/image/vector rasterizer, and reports the time
// taken.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tdewolff/argp"

	"seehuhn.de/go/polyfill"
)

// Draw is the root command.
type Draw struct {
	Width      int    `default:"800" desc:"Image width in pixels"`
	Height     int    `default:"600" desc:"Image height in pixels"`
	Vertices   int    `short:"n" default:"3" desc:"Number of vertices per polygon"`
	Count      int    `short:"c" default:"1" desc:"Number of polygons, drawn without clearing"`
	Seed       int    `short:"s" default:"0" desc:"Random seed (0 for a random seed)"`
	Mode       string `short:"m" default:"scanline" desc:"Rasterizer: scanline or vector"`
	Background string `short:"b" default:"ffffff" desc:"Background color as RRGGBB"`
	Scale      int    `default:"1" desc:"Magnification factor for image output"`
	Verbose    bool   `short:"v" desc:"Enable debug output"`
	Output     string `short:"o" default:"polygons.png" desc:"Output file (.png, .tif, .bmp or .pdf)"`
}

// Compare draws the same polygons with both rasterizers.
type Compare struct {
	Width    int  `default:"800" desc:"Image width in pixels"`
	Height   int  `default:"600" desc:"Image height in pixels"`
	Vertices int  `short:"n" default:"3" desc:"Number of vertices per polygon"`
	Count    int  `short:"c" default:"1000" desc:"Number of polygons"`
	Seed     int  `short:"s" default:"0" desc:"Random seed (0 for a random seed)"`
	Verbose  bool `short:"v" desc:"Enable debug output"`
}

func main() {
	root := argp.NewCmd(&Draw{}, "Fill random polygons using a scanline rasterizer")
	root.AddCmd(&Compare{}, "compare", "Compare the scanline filler with x/image/vector")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Draw) Run() error {
	setupLogging(cmd.Verbose)

	mode, ok := rasterizers[cmd.Mode]
	if !ok {
		fmt.Fprintf(os.Stderr, "ERROR: unknown mode %q\n", cmd.Mode)
		return argp.ShowUsage
	}
	bg, err := parseColor(cmd.Background)
	if err != nil {
		return err
	}
	if cmd.Scale < 1 {
		return errors.New("scale must be at least 1")
	}

	b, err := newBatch(cmd.Width, cmd.Height, cmd.Vertices, cmd.Count, uint64(cmd.Seed))
	if err != nil {
		return err
	}

	buf := polyfill.NewBuffer(cmd.Width, cmd.Height)
	buf.Clear(bg)

	start := time.Now()
	mode(buf, b)
	elapsed := time.Since(start)
	slog.Info("polygons drawn",
		"mode", cmd.Mode,
		"count", cmd.Count,
		"vertices", cmd.Vertices,
		"seed", b.seed,
		"elapsed", elapsed)

	if err := writeOutput(cmd.Output, buf, b, bg, cmd.Scale); err != nil {
		return err
	}
	slog.Info("output written", "file", cmd.Output)
	return nil
}

func (cmd *Compare) Run() error {
	setupLogging(cmd.Verbose)

	b, err := newBatch(cmd.Width, cmd.Height, cmd.Vertices, cmd.Count, uint64(cmd.Seed))
	if err != nil {
		return err
	}

	var bufs []*polyfill.Buffer
	for _, name := range []string{"scanline", "vector"} {
		buf := polyfill.NewBuffer(cmd.Width, cmd.Height)
		buf.Clear(polyfill.RGB(255, 255, 255))

		start := time.Now()
		rasterizers[name](buf, b)
		slog.Info("polygons drawn",
			"mode", name,
			"count", cmd.Count,
			"vertices", cmd.Vertices,
			"elapsed", time.Since(start))
		bufs = append(bufs, buf)
	}

	diff := 0
	for i, c := range bufs[0].Pix {
		if bufs[1].Pix[i] != c {
			diff++
		}
	}
	slog.Info("comparison",
		"seed", b.seed,
		"pixels", len(bufs[0].Pix),
		"differing", diff)
	return nil
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	polyfill.SetLogger(logger)
}

// parseColor parses an opaque color given as six hexadecimal digits,
// optionally preceded by '#'.
func parseColor(s string) (polyfill.Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return 0, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return 0xff000000 | polyfill.Color(v), nil
}
