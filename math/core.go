// math/core.go
// Copyright(c) 2025 windward contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	gomath "math"

	"golang.org/x/exp/constraints"
)

// Degrees converts an angle expressed in radians to degrees.
func Degrees(r float64) float64 {
	return r * 180 / gomath.Pi
}

// Radians converts an angle expressed in degrees to radians.
func Radians(d float64) float64 {
	return d / 180 * gomath.Pi
}

// IsFinite reports whether x is neither NaN nor an infinity; telemetry
// that fails this test is treated as absent.
func IsFinite(x float64) bool {
	return !gomath.IsNaN(x) && !gomath.IsInf(x, 0)
}

func Abs[V constraints.Integer | constraints.Float](x V) V {
	if x < 0 {
		return -x
	}
	return x
}

func Sqr[V constraints.Integer | constraints.Float](v V) V { return v * v }

func Clamp[T constraints.Ordered](x T, low T, high T) T {
	if x < low {
		return low
	} else if x > high {
		return high
	}
	return x
}

// Lerp interpolates x of the way between a and b: x==0 corresponds to a,
// x==1 corresponds to b.
func Lerp(x, a, b float64) float64 {
	return (1-x)*a + x*b
}
