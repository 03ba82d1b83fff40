// polar/polar.go
// Copyright(c) 2025 windward contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package polar maps wind speed to a boat's optimal upwind apparent wind
// angle. Tables are validated at construction and immutable afterward;
// lookups between entries interpolate linearly and lookups outside the
// table clamp to its first or last entry.
package polar

import (
	"errors"
	"fmt"
	gomath "math"
	"sort"

	"github.com/mmp/windward/math"
	"github.com/mmp/windward/util"
)

var ErrInvalidConfiguration = errors.New("Invalid polar configuration")

// Entry gives the optimal upwind apparent wind angle for one wind speed.
type Entry struct {
	WindSpeed float64 `json:"windSpeed"` // knots
	Angle     float64 `json:"angle"`     // degrees off the bow
}

// Table is an ordered wind speed to optimal angle mapping.
type Table struct {
	entries []Entry
}

// New returns a Table holding a sorted copy of the given entries. At
// least one entry is required; wind speeds must be distinct, finite, and
// non-negative, and angles must lie in [0,90]. All returned errors wrap
// ErrInvalidConfiguration.
func New(entries []Entry) (Table, error) {
	if len(entries) == 0 {
		return Table{}, fmt.Errorf("no entries: %w", ErrInvalidConfiguration)
	}

	e := util.DuplicateSlice(entries)
	sort.Slice(e, func(i, j int) bool { return e[i].WindSpeed < e[j].WindSpeed })

	for i, entry := range e {
		if !math.IsFinite(entry.WindSpeed) || !math.IsFinite(entry.Angle) {
			return Table{}, fmt.Errorf("entry %d: non-finite value: %w", i, ErrInvalidConfiguration)
		}
		if entry.WindSpeed < 0 {
			return Table{}, fmt.Errorf("entry %d: negative wind speed %v: %w", i, entry.WindSpeed,
				ErrInvalidConfiguration)
		}
		if entry.Angle < 0 || entry.Angle > 90 {
			return Table{}, fmt.Errorf("entry %d: angle %v outside [0,90]: %w", i, entry.Angle,
				ErrInvalidConfiguration)
		}
		if i > 0 && entry.WindSpeed == e[i-1].WindSpeed {
			return Table{}, fmt.Errorf("duplicate wind speed %v: %w", entry.WindSpeed,
				ErrInvalidConfiguration)
		}
	}

	return Table{entries: e}, nil
}

// Default returns the table used when no boat-specific polar has been
// configured: a generic cruiser that points best in moderate air and
// sails progressively freer in drifting and heavy conditions.
func Default() Table {
	return Table{entries: []Entry{
		{WindSpeed: 0, Angle: 50},
		{WindSpeed: 4, Angle: 45},
		{WindSpeed: 8, Angle: 42},
		{WindSpeed: 12, Angle: 40},
		{WindSpeed: 16, Angle: 38},
		{WindSpeed: 20, Angle: 37},
		{WindSpeed: 25, Angle: 38},
		{WindSpeed: 30, Angle: 40},
	}}
}

// Entries returns a copy of the table's entries, sorted by wind speed.
func (t Table) Entries() []Entry {
	return util.DuplicateSlice(t.entries)
}

// Interpolate returns the optimal upwind angle for the given wind speed
// in knots. Speeds below the first entry or above the last clamp to
// those entries' angles; a speed exactly at an entry returns that
// entry's angle with no interpolation drift. NaN reads as below the
// table.
func (t Table) Interpolate(windSpeed float64) float64 {
	e := t.entries
	if len(e) == 0 {
		// Zero-value Table; New never allows this.
		return 0
	}
	if gomath.IsNaN(windSpeed) || windSpeed <= e[0].WindSpeed {
		return e[0].Angle
	}
	if windSpeed >= e[len(e)-1].WindSpeed {
		return e[len(e)-1].Angle
	}

	i := sort.Search(len(e), func(i int) bool { return e[i].WindSpeed >= windSpeed })
	if e[i].WindSpeed == windSpeed {
		return e[i].Angle
	}

	lo, hi := e[i-1], e[i]
	x := (windSpeed - lo.WindSpeed) / (hi.WindSpeed - lo.WindSpeed)
	return math.Lerp(x, lo.Angle, hi.Angle)
}
