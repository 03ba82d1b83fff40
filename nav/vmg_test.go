// nav/vmg_test.go
// Copyright(c) 2025 windward contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package nav

import (
	gomath "math"
	"testing"

	"github.com/mmp/windward/math"
)

func TestVMG(t *testing.T) {
	tests := []struct {
		name          string
		sog, cog, twd float64
		expected      float64
	}{
		{"straight upwind", 6, 0, 0, 6},
		{"dead downwind", 6, 180, 0, -6},
		{"beam to the wind", 6, 90, 0, 0},
		{"close hauled starboard", 6, 320, 0, 6 * gomath.Cos(math.Radians(40))},
		{"close hauled port", 6, 40, 0, 6 * gomath.Cos(math.Radians(40))},
		{"broad reach", 6, 135, 0, 6 * gomath.Cos(math.Radians(135))},
		{"southerly wind", 6, 180, 180, 6},
		{"wrap across north", 6, 350, 10, 6 * gomath.Cos(math.Radians(20))},
		{"becalmed", 0, 40, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := VMG(tt.sog, tt.cog, tt.twd)
			if !ok {
				t.Fatalf("VMG(%v, %v, %v) reported no result", tt.sog, tt.cog, tt.twd)
			}
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("VMG(%v, %v, %v) = %v, expected %v", tt.sog, tt.cog, tt.twd, got, tt.expected)
			}
		})
	}
}

func TestVMGMissingInput(t *testing.T) {
	nan, inf := gomath.NaN(), gomath.Inf(1)
	cases := [][3]float64{{nan, 0, 0}, {6, nan, 0}, {6, 0, nan}, {inf, 0, 0}, {6, inf, 0}, {6, 0, -inf}}
	for _, c := range cases {
		if _, ok := VMG(c[0], c[1], c[2]); ok {
			t.Errorf("VMG(%v, %v, %v) should report no result", c[0], c[1], c[2])
		}
	}
}

// TestVMGSign pins the sign convention: positive is progress toward the
// wind source, so any course within 90 degrees of the wind axis is
// positive and anything beyond is negative.
func TestVMGSign(t *testing.T) {
	for cog := 0.0; cog < 360; cog += 7 {
		v, ok := VMG(5, cog, 0)
		if !ok {
			t.Fatalf("VMG(5, %v, 0) reported no result", cog)
		}
		off := math.Abs(math.SignedDifference(cog, 0))
		switch {
		case off < 90 && v <= 0:
			t.Errorf("cog %v is upwind but VMG = %v", cog, v)
		case off > 90 && v >= 0:
			t.Errorf("cog %v is downwind but VMG = %v", cog, v)
		}
	}
}
