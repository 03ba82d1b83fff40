// wind/tracker.go
// Copyright(c) 2025 windward contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package wind watches the true wind direction for sustained shifts. A
// Tracker keeps a rolling window of recent observations and the circular
// mean of that window as a baseline; a live reading that has swung far
// enough from the baseline is called as a lift or a header for whichever
// tack the boat is on.
package wind

import (
	"time"

	"github.com/mmp/windward/math"
	"github.com/mmp/windward/sail"
	"github.com/mmp/windward/util"
)

// Window is how much trailing wind history the tracker retains. Samples
// that age out of the window are pruned on every append, so the tracker's
// memory is bounded by the window and not by the sample rate.
const Window = 30 * time.Second

// seedSamples is how many in-window samples the baseline needs before it
// means anything; below this the tracker reports no shift at all.
const seedSamples = 5

// noiseFloor is the smallest shift magnitude in degrees that is worth
// calling; smaller swings read as sensor noise.
const noiseFloor = 3

// Sample is a single true wind direction observation.
type Sample struct {
	Direction float64 // degrees, [0,360)
	Time      time.Time
}

// Tracker holds the rolling window of wind samples and the derived
// baseline. The zero value is ready to use. There is no internal
// locking: a Tracker belongs to a single goroutine (typically the
// instrument update loop), and its sample times must not run backwards.
type Tracker struct {
	samples  []Sample
	head     int // index of the oldest in-window sample
	baseline float64
	seeded   bool
}

// AddSample appends a new observation, prunes everything that has aged
// out of the window, and re-derives the baseline. A sample exactly at
// the window boundary is retained. Non-finite directions are dropped,
// though pruning still runs so that a stretch of bad readings ages the
// window out rather than freezing it; if pruning leaves fewer than five
// samples the tracker reverts to unseeded instead of serving a stale
// baseline.
func (t *Tracker) AddSample(direction float64, now time.Time) {
	if math.IsFinite(direction) {
		t.samples = append(t.samples, Sample{Direction: math.Normalize(direction), Time: now})
	}

	cutoff := now.Add(-Window)
	for t.head < len(t.samples) && t.samples[t.head].Time.Before(cutoff) {
		t.head++
	}

	// Copy the live samples down once the dead prefix dominates the
	// allocation, so that the slice doesn't grow without bound.
	if t.head > cap(t.samples)/2 {
		n := copy(t.samples, t.samples[t.head:])
		t.samples = t.samples[:n]
		t.head = 0
	}

	t.seeded = t.Len() >= seedSamples
	if t.seeded {
		dirs := util.MapSlice(t.samples[t.head:], func(s Sample) float64 { return s.Direction })
		t.baseline = math.CircularMean(dirs)
	}
}

// Len returns the number of samples currently in the window.
func (t *Tracker) Len() int {
	return len(t.samples) - t.head
}

// Baseline returns the circular mean of the in-window samples; ok is
// false until the tracker is seeded.
func (t *Tracker) Baseline() (float64, bool) {
	return t.baseline, t.seeded
}

// Shift returns the signed rotation in degrees from the baseline to the
// given current direction, positive when the wind has veered clockwise.
// There is no result while the tracker is unseeded or for a non-finite
// direction.
func (t *Tracker) Shift(current float64) (float64, bool) {
	if !t.seeded || !math.IsFinite(current) {
		return 0, false
	}
	return math.SignedDifference(t.baseline, current), true
}

// ShiftKind says whether a wind shift helps or hurts on the current
// tack.
type ShiftKind int

const (
	Lift ShiftKind = iota
	Header
)

func (k ShiftKind) String() string {
	return util.Select(k == Lift, "lift", "header")
}

// ClassifyShift grades a signed shift as a lift or header for the tack
// implied by the apparent wind angle. Shifts under 3 degrees are noise
// and beyond 90 degrees apparent the boat isn't working to windward, so
// neither yields a classification. On port tack a positive shift is a
// lift and a negative one a header; starboard tack inverts the signs.
func ClassifyShift(shift, awa float64) (ShiftKind, bool) {
	if !math.IsFinite(shift) || !math.IsFinite(awa) {
		return Lift, false
	}
	if math.Abs(shift) < noiseFloor || math.Abs(awa) > 90 {
		return Lift, false
	}

	if sail.TackFromAWA(awa) == sail.Port {
		return util.Select(shift > 0, Lift, Header), true
	}
	return util.Select(shift > 0, Header, Lift), true
}
