// instrument/providers.go
// Copyright(c) 2025 windward contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package instrument

import (
	"fmt"

	"github.com/mmp/windward/math"
	"github.com/mmp/windward/nav"
	"github.com/mmp/windward/polar"
	"github.com/mmp/windward/sail"
	"github.com/mmp/windward/wind"
)

// SailingZones paints the full sailing picture around the true wind:
// point-of-sail bands, the no-go cone, and the performance overlays
// bracketing the polar target angle.
type SailingZones struct {
	Polar     polar.Table
	Tolerance float64 // degrees
}

func (sz SailingZones) Zones(obs Observation) []sail.Zone {
	if !math.IsFinite(obs.TWD) || !math.IsFinite(obs.TWS) {
		return nil
	}

	var b sail.Builder
	b.AddSailingZones(obs.TWD, sz.Polar.Interpolate(obs.TWS), sz.Tolerance)
	return b.Zones()
}

// HeadingZones paints the port/starboard steering halves around the
// current heading.
type HeadingZones struct{}

func (HeadingZones) Zones(obs Observation) []sail.Zone {
	var b sail.Builder
	b.AddHeadingZones(obs.Heading)
	return b.Zones()
}

// BasePointers marks the heading, course over ground, true wind, and
// apparent wind directions on the rim, each only when its telemetry is
// present.
type BasePointers struct{}

func (BasePointers) Pointers(obs Observation) []Pointer {
	var ptrs []Pointer
	if math.IsFinite(obs.Heading) {
		ptrs = append(ptrs, Pointer{Angle: math.Normalize(obs.Heading), Kind: PointerHeading})
	}
	if math.IsFinite(obs.COG) {
		ptrs = append(ptrs, Pointer{Angle: math.Normalize(obs.COG), Kind: PointerCOG})
	}
	if math.IsFinite(obs.TWD) {
		ptrs = append(ptrs, Pointer{Angle: math.Normalize(obs.TWD), Kind: PointerTWD})
	}
	if math.IsFinite(obs.Heading) && math.IsFinite(obs.AWA) {
		ptrs = append(ptrs, Pointer{Angle: sail.ApparentWindDirection(obs.Heading, obs.AWA), Kind: PointerAWD})
	}
	return ptrs
}

// LaylinePointers marks the port and starboard laylines for the polar
// target angle at the current wind speed.
type LaylinePointers struct {
	Polar polar.Table
}

func (lp LaylinePointers) Pointers(obs Observation) []Pointer {
	if !math.IsFinite(obs.TWS) {
		return nil
	}

	ll, ok := nav.MakeLaylines(obs.TWD, lp.Polar.Interpolate(obs.TWS))
	if !ok {
		return nil
	}
	return []Pointer{
		{Angle: ll.Port, Kind: PointerPortLayline},
		{Angle: ll.Starboard, Kind: PointerStarboardLayline},
	}
}

// VMGOverlay reports velocity made good toward the true wind.
type VMGOverlay struct{}

func (VMGOverlay) Overlays(obs Observation) []Overlay {
	vmg, ok := nav.VMG(obs.SOG, obs.COG, obs.TWD)
	if !ok {
		return nil
	}
	return []Overlay{{Kind: OverlayVMG, Text: fmt.Sprintf("%+.1f kt", vmg), Value: vmg}}
}

// PerformanceOverlay grades the apparent wind angle against the polar
// target for the current wind speed.
type PerformanceOverlay struct {
	Polar     polar.Table
	Tolerance float64 // degrees
}

func (po PerformanceOverlay) Overlays(obs Observation) []Overlay {
	if !math.IsFinite(obs.TWS) {
		return nil
	}

	status, offset, ok := sail.Classify(obs.AWA, po.Polar.Interpolate(obs.TWS), po.Tolerance)
	if !ok {
		return nil
	}
	return []Overlay{{Kind: OverlayPerformance, Text: status.String(), Value: offset, Status: status}}
}

// PointOfSailOverlay names the current point of sail.
type PointOfSailOverlay struct{}

func (PointOfSailOverlay) Overlays(obs Observation) []Overlay {
	if !math.IsFinite(obs.AWA) {
		return nil
	}
	return []Overlay{{Kind: OverlayPointOfSail, Text: sail.PointOfSailFromAWA(obs.AWA).String(), Value: obs.AWA}}
}

// ShiftOverlay feeds a wind.Tracker and reports sustained lifts and
// headers. It is stateful and, like the Tracker it owns, belongs to a
// single goroutine; the live reading joins the tracker's window before
// the shift is measured.
type ShiftOverlay struct {
	tracker wind.Tracker
}

func (so *ShiftOverlay) Overlays(obs Observation) []Overlay {
	so.tracker.AddSample(obs.TWD, obs.Time)

	shift, ok := so.tracker.Shift(obs.TWD)
	if !ok {
		return nil
	}
	kind, ok := wind.ClassifyShift(shift, obs.AWA)
	if !ok {
		return nil
	}
	return []Overlay{{Kind: OverlayShift, Text: kind.String(), Value: shift}}
}

// WaypointOverlay reports whether the active waypoint can be fetched on
// the current tack geometry: on one tack, on either (dead downwind), or
// on neither (in the no-go cone). Value is the turn onto the fetching
// layline when exactly one tack fetches and the course is known.
type WaypointOverlay struct {
	Polar polar.Table
}

func (wo WaypointOverlay) Overlays(obs Observation) []Overlay {
	if !math.IsFinite(obs.WaypointBearing) || !math.IsFinite(obs.TWS) {
		return nil
	}
	ll, ok := nav.MakeLaylines(obs.TWD, wo.Polar.Interpolate(obs.TWS))
	if !ok {
		return nil
	}

	port := nav.CanReach(obs.WaypointBearing, ll.Port, obs.TWD)
	stbd := nav.CanReach(obs.WaypointBearing, ll.Starboard, obs.TWD)

	ov := Overlay{Kind: OverlayWaypoint}
	switch {
	case port && stbd:
		ov.Text = "waypoint dead downwind"
	case port:
		ov.Text = "fetch on port tack"
		ov.Value, _ = nav.TackAngle(obs.COG, ll.Port)
	case stbd:
		ov.Text = "fetch on starboard tack"
		ov.Value, _ = nav.TackAngle(obs.COG, ll.Starboard)
	default:
		ov.Text = "waypoint in the no-go cone"
	}
	return []Overlay{ov}
}
