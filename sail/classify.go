// sail/classify.go
// Copyright(c) 2025 windward contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sail

import (
	"github.com/mmp/windward/math"
	"github.com/mmp/windward/util"
)

// PerformanceStatus classifies the boat's apparent wind angle against
// the target angle from its polar. High means the wind angle is above
// (wider than) the target, Low that the boat is pinching below it.
type PerformanceStatus int

const (
	Optimal PerformanceStatus = iota
	AcceptableHigh
	AcceptableLow
	PoorHigh
	PoorLow
)

func (s PerformanceStatus) String() string {
	switch s {
	case Optimal:
		return "optimal"
	case AcceptableHigh:
		return "acceptable-high"
	case AcceptableLow:
		return "acceptable-low"
	case PoorHigh:
		return "poor-high"
	default:
		return "poor-low"
	}
}

// Classify grades a signed apparent wind angle against the target angle
// and tolerance. The returned offset is |awa| - target, positive when
// sailing wider than the target. Offsets within the tolerance are
// Optimal, within twice the tolerance Acceptable, and Poor beyond that;
// boundary offsets land in the tighter band. ok is false when any input
// is non-finite.
func Classify(awa, target, tolerance float64) (PerformanceStatus, float64, bool) {
	if !math.IsFinite(awa) || !math.IsFinite(target) || !math.IsFinite(tolerance) {
		return Optimal, 0, false
	}

	// Coerce out-of-range inputs into the signed (-180,180] form before
	// taking the magnitude.
	awa = math.SignedDifference(0, awa)

	offset := math.Abs(awa) - target
	switch mag := math.Abs(offset); {
	case mag <= tolerance:
		return Optimal, offset, true
	case mag <= 2*tolerance:
		return util.Select(offset > 0, AcceptableHigh, AcceptableLow), offset, true
	default:
		return util.Select(offset > 0, PoorHigh, PoorLow), offset, true
	}
}
