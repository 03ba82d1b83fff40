// sail/sail.go
// Copyright(c) 2025 windward contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package sail holds the shared sailing vocabulary for the instrument
// engine: tack sides and the apparent wind angle sign convention, wind
// reference conversions, points of sail, performance classification
// against a polar target, and the compass-rim zone builder.
//
// Signed apparent wind angles are negative when the wind comes over the
// port side and positive to starboard; that convention is load-bearing
// for tack derivation and lift/header classification and must not be
// flipped.
package sail

import (
	"github.com/mmp/windward/math"
	"github.com/mmp/windward/util"
)

// TackSide identifies which side of the boat the wind comes over.
type TackSide int

const (
	Port TackSide = iota
	Starboard
)

func (t TackSide) String() string {
	return util.Select(t == Port, "port", "starboard")
}

// TackFromAWA returns the tack implied by a signed apparent wind angle:
// negative reads as Port, zero and positive as Starboard.
func TackFromAWA(awa float64) TackSide {
	return util.Select(awa < 0, Port, Starboard)
}

// ApparentWindDirection returns the absolute bearing the apparent wind
// blows from, given the boat's heading and its signed apparent wind
// angle.
func ApparentWindDirection(heading, awa float64) float64 {
	return math.Normalize(heading + awa)
}

// ApparentWindAngle returns the signed apparent wind angle implied by
// the boat's heading and an absolute apparent wind direction.
func ApparentWindAngle(heading, awd float64) float64 {
	return math.SignedDifference(heading, awd)
}

// TrueWindAngle returns the signed angle from the boat's heading to the
// true wind direction.
func TrueWindAngle(heading, twd float64) float64 {
	return math.SignedDifference(heading, twd)
}

// PointOfSail describes how far off the wind the boat is sailing.
type PointOfSail int

const (
	InIrons PointOfSail = iota
	CloseHauled
	CloseReach
	BeamReach
	BroadReach
	Run
)

func (p PointOfSail) String() string {
	switch p {
	case InIrons:
		return "in irons"
	case CloseHauled:
		return "close hauled"
	case CloseReach:
		return "close reach"
	case BeamReach:
		return "beam reach"
	case BroadReach:
		return "broad reach"
	default:
		return "run"
	}
}

// PointOfSailFromAWA buckets the magnitude of the apparent wind angle
// into the conventional points of sail. Non-finite angles read as
// InIrons.
func PointOfSailFromAWA(awa float64) PointOfSail {
	if !math.IsFinite(awa) {
		return InIrons
	}

	a := math.Abs(math.SignedDifference(0, awa))
	switch {
	case a < 25:
		return InIrons
	case a < 60:
		return CloseHauled
	case a < 90:
		return CloseReach
	case a < 110:
		return BeamReach
	case a < 150:
		return BroadReach
	default:
		return Run
	}
}
