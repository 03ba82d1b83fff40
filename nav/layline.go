// nav/layline.go
// Copyright(c) 2025 windward contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package nav computes the navigation overlays for the instrument
// display: port and starboard laylines, upwind reachability of a mark,
// tack turn angles, and velocity made good. All functions report absent
// telemetry (non-finite inputs) through their bool return rather than
// computing with it.
package nav

import (
	"github.com/mmp/windward/math"
)

// Laylines are the absolute courses on which the boat, sailing at its
// polar target angle, exactly fetches a mark upwind: Port is the course
// sailed on port tack (wind to port of the bow), Starboard on starboard
// tack.
type Laylines struct {
	Port      float64
	Starboard float64
}

// MakeLaylines returns both laylines for the given true wind direction
// and target angle off the wind.
func MakeLaylines(twd, target float64) (Laylines, bool) {
	if !math.IsFinite(twd) || !math.IsFinite(target) {
		return Laylines{}, false
	}
	return Laylines{
		Port:      math.Normalize(twd + target),
		Starboard: math.Normalize(twd - target),
	}, true
}

// CanReach reports whether a mark at the given direct bearing can be
// fetched on the tack the given layline belongs to, without sailing
// above close-hauled. The sailable arc runs clockwise from a port-tack
// layline to the downwind axis, and from the downwind axis to a
// starboard-tack layline; bearings on the arc bounds count as
// reachable.
func CanReach(waypointBearing, layline, windDirection float64) bool {
	if !math.IsFinite(waypointBearing) || !math.IsFinite(layline) || !math.IsFinite(windDirection) {
		return false
	}

	downwind := math.Opposite(windDirection)
	if math.SignedDifference(windDirection, layline) >= 0 {
		return math.IsAngleBetween(waypointBearing, layline, downwind)
	}
	return math.IsAngleBetween(waypointBearing, downwind, layline)
}

// TackAngle returns the signed turn in degrees from the current course
// onto the given layline; it is display-only.
func TackAngle(course, layline float64) (float64, bool) {
	if !math.IsFinite(course) || !math.IsFinite(layline) {
		return 0, false
	}
	return math.SignedDifference(course, layline), true
}
