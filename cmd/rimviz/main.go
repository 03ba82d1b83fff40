// cmd/rimviz/main.go
// Copyright(c) 2025 windward contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// rimviz renders a compass-rim zone picture as ASCII.
// Usage: rimviz -wind 350 -tws 12 [-tol 5] [-polar boat.json]
//        rimviz -wind 350 -target 40
//        rimviz -heading 40
//
// Builds the sailing zones (or, with -heading, the steering bands) the
// instrument display would show and prints the ordered zone table plus
// a 72 column rim strip, 5 degrees per column, with later zones painted
// over earlier ones as at runtime.

package main

import (
	"flag"
	"fmt"
	gomath "math"
	"os"

	"github.com/mmp/windward/math"
	"github.com/mmp/windward/polar"
	"github.com/mmp/windward/sail"
	"github.com/mmp/windward/util"
)

var wind = flag.Float64("wind", gomath.NaN(), "true wind direction in degrees")
var target = flag.Float64("target", gomath.NaN(), "target upwind angle in degrees (overrides the polar)")
var tolerance = flag.Float64("tol", 5, "performance tolerance in degrees")
var tws = flag.Float64("tws", gomath.NaN(), "true wind speed in knots, used to look up the polar target")
var polarFile = flag.String("polar", "", "polar table JSON file (default: built-in cruiser polar)")
var heading = flag.Float64("heading", gomath.NaN(), "draw the steering bands for this heading instead of sailing zones")

func main() {
	flag.Parse()

	usage := func() {
		fmt.Fprintf(os.Stderr, "usage: rimviz -wind <dir> {-target <angle> | -tws <kts>} | -heading <dir>\nwhere flags may be:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	var b sail.Builder
	switch {
	case math.IsFinite(*wind):
		t := *target
		if !math.IsFinite(t) {
			if !math.IsFinite(*tws) {
				fmt.Fprintln(os.Stderr, "rimviz: -wind needs either -target or -tws")
				usage()
			}
			table := polar.Default()
			if *polarFile != "" {
				var err error
				if table, err = polar.LoadFile(*polarFile); err != nil {
					fmt.Fprintf(os.Stderr, "rimviz: %v\n", err)
					os.Exit(1)
				}
			}
			t = table.Interpolate(*tws)
			fmt.Printf("Polar target at %g kt: %.1f degrees\n", *tws, t)
		}
		b.AddSailingZones(*wind, t, *tolerance)

	case math.IsFinite(*heading):
		b.AddHeadingZones(*heading)

	default:
		usage()
	}

	printZones(b.Zones())
}

func printZones(zones []sail.Zone) {
	fmt.Printf("%d zones in paint order:\n", len(zones))
	for _, z := range zones {
		fmt.Printf("  [%6.2f, %6.2f) %-26s %s\n", z.Start, z.End, z.Color, z.Width)
	}

	// One character per 5 degree column, sampled at the column center;
	// painting the zones in order reproduces the display's layering.
	const columns = 72
	row := make([]byte, columns)
	for i := range row {
		row[i] = ' '
	}
	for _, z := range zones {
		for i := range row {
			if a := (float64(i) + 0.5) * 360 / columns; a >= z.Start && a < z.End {
				row[i] = glyph(z.Color)
			}
		}
	}

	fmt.Println()
	for deg := 0; deg < 360; deg += 45 {
		fmt.Printf("%-9d", deg)
	}
	fmt.Println()
	for i := 0; i < columns; i++ {
		fmt.Print(util.Select(i%9 == 0, "|", " "))
	}
	fmt.Println()
	fmt.Println(string(row))

	fmt.Println()
	fmt.Println("# close hauled   = close reach   - beam reach   . broad reach   X no-go")
	fmt.Println("O optimal   a/A acceptable low/high   p/s port/starboard half")
}

func glyph(c sail.ColorTag) byte {
	switch c {
	case sail.ColorPortCloseHauled, sail.ColorStarboardCloseHauled:
		return '#'
	case sail.ColorPortCloseReach, sail.ColorStarboardCloseReach:
		return '='
	case sail.ColorPortBeamReach, sail.ColorStarboardBeamReach:
		return '-'
	case sail.ColorPortBroadReach, sail.ColorStarboardBroadReach:
		return '.'
	case sail.ColorNoGo:
		return 'X'
	case sail.ColorOptimal:
		return 'O'
	case sail.ColorAcceptableLow:
		return 'a'
	case sail.ColorAcceptableHigh:
		return 'A'
	case sail.ColorPortSide:
		return 'p'
	case sail.ColorStarboardSide:
		return 's'
	}
	return '?'
}
