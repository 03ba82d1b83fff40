// sail/zones.go
// Copyright(c) 2025 windward contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sail

import (
	"github.com/mmp/windward/math"
)

// ColorTag is a semantic color identifier for the renderer; mapping tags
// to actual colors is the host's concern.
type ColorTag string

// WidthTag is a semantic stroke weight class for the renderer.
type WidthTag string

const (
	ColorPortCloseHauled      ColorTag = "port-close-hauled"
	ColorPortCloseReach       ColorTag = "port-close-reach"
	ColorPortBeamReach        ColorTag = "port-beam-reach"
	ColorPortBroadReach       ColorTag = "port-broad-reach"
	ColorStarboardCloseHauled ColorTag = "starboard-close-hauled"
	ColorStarboardCloseReach  ColorTag = "starboard-close-reach"
	ColorStarboardBeamReach   ColorTag = "starboard-beam-reach"
	ColorStarboardBroadReach  ColorTag = "starboard-broad-reach"
	ColorNoGo                 ColorTag = "no-go"
	ColorOptimal              ColorTag = "optimal"
	ColorAcceptableLow        ColorTag = "acceptable-low"
	ColorAcceptableHigh       ColorTag = "acceptable-high"
	ColorPortSide             ColorTag = "port"
	ColorStarboardSide        ColorTag = "starboard"
)

const (
	WidthHeavy  WidthTag = "heavy"
	WidthMedium WidthTag = "medium"
	WidthLight  WidthTag = "light"
	WidthFaint  WidthTag = "faint"
	WidthNarrow WidthTag = "narrow"
	WidthHalf   WidthTag = "half"
)

// Zone is a half-open angular interval [Start,End) on the compass rim,
// tagged for the renderer. Every constructed Zone satisfies
// 0 <= Start < End <= 360; a span that would cross 0 is split in two
// before it is emitted.
type Zone struct {
	Start float64
	End   float64
	Color ColorTag
	Width WidthTag
}

// Builder accumulates rim zones in paint order: a zone appended later
// is expected to be painted on top of earlier ones.
type Builder struct {
	zones []Zone
}

// Zones returns the accumulated zones in paint order. The slice is
// owned by the builder.
func (b *Builder) Zones() []Zone {
	return b.zones
}

// add appends the raw span [start,end), normalizing and splitting it at
// 0 if it wraps. Spans with non-positive raw width carry no paint and
// are dropped.
func (b *Builder) add(start, end float64, color ColorTag, width WidthTag) {
	if !math.IsFinite(start) || !math.IsFinite(end) || end-start <= 0 {
		return
	}
	if end-start >= 360 {
		b.zones = append(b.zones, Zone{0, 360, color, width})
		return
	}

	s, e := math.Normalize(start), math.Normalize(end)
	if s < e {
		b.zones = append(b.zones, Zone{s, e, color, width})
	} else {
		b.zones = append(b.zones, Zone{s, 360, color, width})
		if e > 0 {
			b.zones = append(b.zones, Zone{0, e, color, width})
		}
	}
}

// AddSailingZones emits the compass-rim picture for sailing against the
// given true wind direction with a polar target angle and tolerance:
// four graduated point-of-sail bands per side (port offsets negative,
// starboard positive), the no-go cone spanning the wind, and narrow
// performance overlays bracketing the target on each side. Wide bands
// are emitted first and overlays last so the overlays are not occluded.
func (b *Builder) AddSailingZones(windDirection, targetAngle, tolerance float64) {
	if !math.IsFinite(windDirection) || !math.IsFinite(targetAngle) || !math.IsFinite(tolerance) {
		return
	}
	wd := math.Normalize(windDirection)

	bands := []struct {
		lo, hi     float64
		port, stbd ColorTag
		width      WidthTag
	}{
		{targetAngle, 60, ColorPortCloseHauled, ColorStarboardCloseHauled, WidthHeavy},
		{60, 90, ColorPortCloseReach, ColorStarboardCloseReach, WidthMedium},
		{90, 110, ColorPortBeamReach, ColorStarboardBeamReach, WidthLight},
		{110, 150, ColorPortBroadReach, ColorStarboardBroadReach, WidthFaint},
	}
	for _, bd := range bands {
		b.add(wd-bd.hi, wd-bd.lo, bd.port, bd.width)
	}
	for _, bd := range bands {
		b.add(wd+bd.lo, wd+bd.hi, bd.stbd, bd.width)
	}

	b.add(wd-targetAngle, wd+targetAngle, ColorNoGo, WidthHeavy)

	overlays := []struct {
		lo, hi float64
		color  ColorTag
	}{
		{targetAngle - tolerance, targetAngle + tolerance, ColorOptimal},
		{targetAngle - 2*tolerance, targetAngle - tolerance, ColorAcceptableLow},
		{targetAngle + tolerance, targetAngle + 2*tolerance, ColorAcceptableHigh},
	}
	for _, ov := range overlays {
		b.add(wd-ov.hi, wd-ov.lo, ov.color, WidthNarrow)
	}
	for _, ov := range overlays {
		b.add(wd+ov.lo, wd+ov.hi, ov.color, WidthNarrow)
	}
}

// AddHeadingZones emits the two 180 degree autopilot steering bands
// around the current heading: everything to port of the bow first, then
// everything to starboard.
func (b *Builder) AddHeadingZones(currentHeading float64) {
	if !math.IsFinite(currentHeading) {
		return
	}
	h := math.Normalize(currentHeading)

	b.add(h-180, h, ColorPortSide, WidthHalf)
	b.add(h, h+180, ColorStarboardSide, WidthHalf)
}
