// sail/classify_test.go
// Copyright(c) 2025 windward contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sail

import (
	gomath "math"
	"testing"
)

func TestClassify(t *testing.T) {
	const target, tol = 40.0, 5.0

	tests := []struct {
		name   string
		awa    float64
		status PerformanceStatus
		offset float64
	}{
		{"on target", 40, Optimal, 0},
		{"within tolerance wide", 43, Optimal, 3},
		{"within tolerance narrow", 37, Optimal, -3},
		{"boundary at tolerance", 45, Optimal, 5},
		{"boundary at -tolerance", 35, Optimal, -5},
		{"just over tolerance", 45.5, AcceptableHigh, 5.5},
		{"just under -tolerance", 34.5, AcceptableLow, -5.5},
		{"boundary at 2x tolerance", 50, AcceptableHigh, 10},
		{"boundary at -2x tolerance", 30, AcceptableLow, -10},
		{"over 2x tolerance", 50.5, PoorHigh, 10.5},
		{"under -2x tolerance", 29.5, PoorLow, -10.5},
		{"way off the wind", 120, PoorHigh, 80},
		{"head to wind", 0, PoorLow, -40},
		// Port tack: the sign of the angle is irrelevant.
		{"port on target", -40, Optimal, 0},
		{"port over", -50.5, PoorHigh, 10.5},
		// Out-of-range angles are coerced into signed form first.
		{"unnormalized port", 315, Optimal, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, offset, ok := Classify(tt.awa, target, tol)
			if !ok {
				t.Fatalf("Classify(%v, %v, %v) reported no result", tt.awa, target, tol)
			}
			if status != tt.status || offset != tt.offset {
				t.Errorf("Classify(%v, %v, %v) = %v offset %v, expected %v offset %v",
					tt.awa, target, tol, status, offset, tt.status, tt.offset)
			}
		})
	}
}

func TestClassifyMissingInput(t *testing.T) {
	nan, inf := gomath.NaN(), gomath.Inf(1)
	cases := [][3]float64{{nan, 40, 5}, {30, nan, 5}, {30, 40, nan}, {inf, 40, 5}, {30, 40, inf}}
	for _, c := range cases {
		if _, _, ok := Classify(c[0], c[1], c[2]); ok {
			t.Errorf("Classify(%v, %v, %v) should report no result", c[0], c[1], c[2])
		}
	}
}

func TestClassifyZeroTolerance(t *testing.T) {
	// With zero tolerance only an exact hit is Optimal (and also the 2x
	// boundary, which is likewise zero).
	if status, _, ok := Classify(40, 40, 0); !ok || status != Optimal {
		t.Errorf("exact hit with zero tolerance: got %v", status)
	}
	if status, _, ok := Classify(41, 40, 0); !ok || status != PoorHigh {
		t.Errorf("miss with zero tolerance: got %v", status)
	}
}
