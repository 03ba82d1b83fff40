// sail/zones_test.go
// Copyright(c) 2025 windward contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sail

import (
	"fmt"
	gomath "math"
	"math/rand"
	"testing"
)

func TestAddSailingZonesOrder(t *testing.T) {
	// Wind from the south so nothing wraps; target 40, tolerance 5.
	var b Builder
	b.AddSailingZones(180, 40, 5)

	expected := []Zone{
		{120, 140, ColorPortCloseHauled, WidthHeavy},
		{90, 120, ColorPortCloseReach, WidthMedium},
		{70, 90, ColorPortBeamReach, WidthLight},
		{30, 70, ColorPortBroadReach, WidthFaint},
		{220, 240, ColorStarboardCloseHauled, WidthHeavy},
		{240, 270, ColorStarboardCloseReach, WidthMedium},
		{270, 290, ColorStarboardBeamReach, WidthLight},
		{290, 330, ColorStarboardBroadReach, WidthFaint},
		{140, 220, ColorNoGo, WidthHeavy},
		{135, 145, ColorOptimal, WidthNarrow},
		{145, 150, ColorAcceptableLow, WidthNarrow},
		{130, 135, ColorAcceptableHigh, WidthNarrow},
		{215, 225, ColorOptimal, WidthNarrow},
		{210, 215, ColorAcceptableLow, WidthNarrow},
		{225, 230, ColorAcceptableHigh, WidthNarrow},
	}

	zones := b.Zones()
	if len(zones) != len(expected) {
		t.Fatalf("got %d zones, expected %d: %+v", len(zones), len(expected), zones)
	}
	for i, z := range zones {
		if z != expected[i] {
			t.Errorf("zone %d: got %+v, expected %+v", i, z, expected[i])
		}
	}
}

// TestZoneInvariant checks that no emitted zone crosses 0: every zone
// must satisfy 0 <= Start < End <= 360 regardless of inputs.
func TestZoneInvariant(t *testing.T) {
	r := rand.New(rand.NewSource(9))

	check := func(zones []Zone, desc string) {
		t.Helper()
		for i, z := range zones {
			if !(z.Start >= 0 && z.Start < z.End && z.End <= 360) {
				t.Errorf("%s: zone %d violates invariant: %+v", desc, i, z)
			}
		}
	}

	for i := 0; i < 200; i++ {
		wd := (r.Float64() - 0.5) * 2000
		target := r.Float64() * 180
		tol := r.Float64() * 25

		var b Builder
		b.AddSailingZones(wd, target, tol)
		check(b.Zones(), fmt.Sprintf("sailing wd=%v target=%v tol=%v", wd, target, tol))

		var hb Builder
		hb.AddHeadingZones(wd)
		check(hb.Zones(), fmt.Sprintf("heading %v", wd))
	}
}

// TestZoneSymmetry verifies that the sailing picture is mirror-symmetric
// around the wind: the multiset of (start offset, end offset, width)
// triples must be closed under sign flip.
func TestZoneSymmetry(t *testing.T) {
	configs := [][2]float64{{40, 5}, {55, 7}, {35, 0}}
	for _, cfg := range configs {
		target, tol := cfg[0], cfg[1]

		var b Builder
		b.AddSailingZones(180, target, tol)

		key := func(lo, hi float64, w WidthTag) string {
			return fmt.Sprintf("%g:%g:%s", lo, hi, w)
		}
		counts := make(map[string]int)
		for _, z := range b.Zones() {
			counts[key(z.Start-180, z.End-180, z.Width)]++
		}
		for _, z := range b.Zones() {
			lo, hi := z.Start-180, z.End-180
			if counts[key(-hi, -lo, z.Width)] != counts[key(lo, hi, z.Width)] {
				t.Errorf("target %v tol %v: zone %+v has no mirror", target, tol, z)
			}
		}
	}
}

func TestAddSailingZonesWraparound(t *testing.T) {
	// Wind from 010: the no-go cone [330,050] crosses 0 and must be
	// split into two zones.
	var b Builder
	b.AddSailingZones(10, 40, 5)

	var nogo []Zone
	for _, z := range b.Zones() {
		if z.Color == ColorNoGo {
			nogo = append(nogo, z)
		}
	}
	if len(nogo) != 2 {
		t.Fatalf("expected no-go cone split in two, got %+v", nogo)
	}
	if nogo[0] != (Zone{330, 360, ColorNoGo, WidthHeavy}) {
		t.Errorf("first no-go half = %+v, expected [330,360)", nogo[0])
	}
	if nogo[1] != (Zone{0, 50, ColorNoGo, WidthHeavy}) {
		t.Errorf("second no-go half = %+v, expected [0,50)", nogo[1])
	}
}

func TestZeroWidthZonesDropped(t *testing.T) {
	// Zero tolerance: all three performance overlays vanish.
	var b Builder
	b.AddSailingZones(180, 40, 0)
	for _, z := range b.Zones() {
		if z.Width == WidthNarrow {
			t.Errorf("unexpected overlay with zero tolerance: %+v", z)
		}
	}

	// Target of 60 leaves no room for the close-hauled band.
	var b2 Builder
	b2.AddSailingZones(180, 60, 5)
	for _, z := range b2.Zones() {
		if z.Color == ColorPortCloseHauled || z.Color == ColorStarboardCloseHauled {
			t.Errorf("unexpected close-hauled band with target 60: %+v", z)
		}
	}

	// Target of 0 has no no-go cone.
	var b3 Builder
	b3.AddSailingZones(180, 0, 5)
	for _, z := range b3.Zones() {
		if z.Color == ColorNoGo {
			t.Errorf("unexpected no-go cone with target 0: %+v", z)
		}
	}
}

func TestAddSailingZonesNonFinite(t *testing.T) {
	var b Builder
	b.AddSailingZones(gomath.NaN(), 40, 5)
	b.AddSailingZones(180, gomath.Inf(1), 5)
	b.AddSailingZones(180, 40, gomath.NaN())
	if len(b.Zones()) != 0 {
		t.Errorf("non-finite inputs emitted zones: %+v", b.Zones())
	}
}

func TestAddHeadingZones(t *testing.T) {
	// Heading east: the port half wraps and splits.
	var b Builder
	b.AddHeadingZones(90)

	expected := []Zone{
		{270, 360, ColorPortSide, WidthHalf},
		{0, 90, ColorPortSide, WidthHalf},
		{90, 270, ColorStarboardSide, WidthHalf},
	}
	zones := b.Zones()
	if len(zones) != len(expected) {
		t.Fatalf("got %d zones, expected %d: %+v", len(zones), len(expected), zones)
	}
	for i, z := range zones {
		if z != expected[i] {
			t.Errorf("zone %d: got %+v, expected %+v", i, z, expected[i])
		}
	}

	// Heading north: neither half wraps.
	var b2 Builder
	b2.AddHeadingZones(0)
	expected2 := []Zone{
		{180, 360, ColorPortSide, WidthHalf},
		{0, 180, ColorStarboardSide, WidthHalf},
	}
	zones2 := b2.Zones()
	if len(zones2) != len(expected2) {
		t.Fatalf("got %d zones, expected %d: %+v", len(zones2), len(expected2), zones2)
	}
	for i, z := range zones2 {
		if z != expected2[i] {
			t.Errorf("zone %d: got %+v, expected %+v", i, z, expected2[i])
		}
	}
}
