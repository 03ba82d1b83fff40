// nav/vmg.go
// Copyright(c) 2025 windward contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package nav

import (
	gomath "math"

	"github.com/mmp/windward/math"
)

// VMG returns the velocity made good toward the true wind: the
// component of speed over ground directed at the wind source. Sailing
// straight upwind at 6 kt gives +6; dead downwind gives -6. ok is false
// when any input is absent (non-finite).
func VMG(sog, cog, twd float64) (float64, bool) {
	if !math.IsFinite(sog) || !math.IsFinite(cog) || !math.IsFinite(twd) {
		return 0, false
	}

	// Shortest angular distance between course and wind, in [0,180].
	a := math.Abs(math.SignedDifference(cog, twd))
	return sog * gomath.Cos(math.Radians(a)), true
}
