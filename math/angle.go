// math/angle.go
// Copyright(c) 2025 windward contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	gomath "math"
)

///////////////////////////////////////////////////////////////////////////
// compass angles

// Angles are represented as float64 degrees throughout; the canonical
// form is [0,360), increasing clockwise from north the way a compass
// card does.

// Normalize reduces an angle to [0,360). Non-finite input is mapped to 0
// rather than being allowed to poison downstream trigonometry; callers
// that need to distinguish absent values should test IsFinite first.
func Normalize(a float64) float64 {
	if !IsFinite(a) {
		return 0
	}
	a = gomath.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 || a == 0 {
		// Fold the fp-rounding case (tiny negatives landing back on 360)
		// and -0 onto exactly 0 so the result is always in [0,360).
		return 0
	}
	return a
}

// SignedDifference returns the shortest signed rotation that carries the
// angle from onto the angle to, in (-180,180]. Positive is clockwise. An
// exactly-opposite to is reported as +180, never -180.
func SignedDifference(from, to float64) float64 {
	d := Normalize(to - from)
	if d > 180 {
		d -= 360
	}
	return d
}

// IsAngleBetween reports whether a lies within the circular interval
// swept clockwise from start to end, inclusive of both bounds. start >
// end denotes the interval that crosses 0; start == end matches only
// that single angle.
func IsAngleBetween(a, start, end float64) bool {
	a, start, end = Normalize(a), Normalize(start), Normalize(end)
	if start <= end {
		return a >= start && a <= end
	}
	return a >= start || a <= end
}

// LerpAngle interpolates x of the way from one angle to another along
// the shorter arc between them, so animating 350 -> 10 passes through 0
// rather than 180.
func LerpAngle(x, from, to float64) float64 {
	return Normalize(from + x*SignedDifference(from, to))
}

// CircularMean returns the vector mean of the given angles, in [0,360).
// The result is undefined (currently 0) for an empty slice and for
// degenerate inputs whose unit vectors cancel exactly.
func CircularMean(angles []float64) float64 {
	var sin, cos float64
	for _, a := range angles {
		r := Radians(a)
		sin += gomath.Sin(r)
		cos += gomath.Cos(r)
	}
	return Normalize(Degrees(gomath.Atan2(sin, cos)))
}

// Opposite returns the reciprocal of the given angle.
func Opposite(a float64) float64 {
	return Normalize(a + 180)
}

///////////////////////////////////////////////////////////////////////////
// reference conversions and display helpers

// TrueFromMagnetic converts a magnetic bearing to true given the local
// magnetic variation (positive east, per chart convention).
func TrueFromMagnetic(m, variation float64) float64 {
	return Normalize(m + variation)
}

// MagneticFromTrue converts a true bearing to magnetic given the local
// magnetic variation (positive east).
func MagneticFromTrue(t, variation float64) float64 {
	return Normalize(t - variation)
}

var compassPoints = [...]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW"}

// Compass16 converts an angle in degrees to the closest of the sixteen
// compass points, for instrument readouts.
func Compass16(a float64) string {
	h := Normalize(a + 11.25) // now [0,22.5) is north, etc...
	return compassPoints[int(h/22.5)%16]
}
