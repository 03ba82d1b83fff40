// sail/sail_test.go
// Copyright(c) 2025 windward contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sail

import (
	gomath "math"
	"testing"

	"github.com/mmp/windward/math"
)

func TestTackFromAWA(t *testing.T) {
	tests := []struct {
		awa      float64
		expected TackSide
	}{
		{-30, Port},
		{-179, Port},
		{-0.1, Port},
		{30, Starboard},
		{179, Starboard},
		{0, Starboard}, // head to wind reads as starboard
	}
	for _, tt := range tests {
		if got := TackFromAWA(tt.awa); got != tt.expected {
			t.Errorf("TackFromAWA(%v) = %v, expected %v", tt.awa, got, tt.expected)
		}
	}
}

func TestWindReferences(t *testing.T) {
	// Heading 350 with the apparent wind 20 degrees to starboard puts the
	// apparent wind direction at 010.
	if awd := ApparentWindDirection(350, 20); awd != 10 {
		t.Errorf("ApparentWindDirection(350, 20) = %v, expected 10", awd)
	}
	if awa := ApparentWindAngle(350, 10); awa != 20 {
		t.Errorf("ApparentWindAngle(350, 10) = %v, expected 20", awa)
	}

	// Port-side wind gives a negative angle.
	if awa := ApparentWindAngle(10, 340); awa != -30 {
		t.Errorf("ApparentWindAngle(10, 340) = %v, expected -30", awa)
	}

	if twa := TrueWindAngle(90, 45); twa != -45 {
		t.Errorf("TrueWindAngle(90, 45) = %v, expected -45", twa)
	}

	// Round trip: heading + awa -> awd -> awa.
	for _, heading := range []float64{0, 77, 185, 359} {
		for _, awa := range []float64{-170, -45, 0, 30, 180} {
			awd := ApparentWindDirection(heading, awa)
			back := ApparentWindAngle(heading, awd)
			if math.Abs(math.SignedDifference(back, awa)) > 1e-9 {
				t.Errorf("round trip heading %v awa %v gave %v", heading, awa, back)
			}
		}
	}
}

func TestPointOfSailFromAWA(t *testing.T) {
	tests := []struct {
		awa      float64
		expected PointOfSail
	}{
		{0, InIrons},
		{24, InIrons},
		{25, CloseHauled},
		{45, CloseHauled},
		{60, CloseReach},
		{89, CloseReach},
		{90, BeamReach},
		{109, BeamReach},
		{110, BroadReach},
		{149, BroadReach},
		{150, Run},
		{180, Run},
		// Sign does not matter.
		{-45, CloseHauled},
		{-150, Run},
		// Out-of-range angles are coerced first.
		{270, BeamReach},
		{330, CloseHauled},
	}
	for _, tt := range tests {
		if got := PointOfSailFromAWA(tt.awa); got != tt.expected {
			t.Errorf("PointOfSailFromAWA(%v) = %v, expected %v", tt.awa, got, tt.expected)
		}
	}

	if got := PointOfSailFromAWA(gomath.NaN()); got != InIrons {
		t.Errorf("PointOfSailFromAWA(NaN) = %v, expected in irons", got)
	}
}
