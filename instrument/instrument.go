// instrument/instrument.go
// Copyright(c) 2025 windward contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package instrument assembles the geometry engine's outputs into frames
// for a sailing instrument display. Small providers adapt the polar,
// sail, nav, and wind packages to three capability interfaces; a Panel
// runs an ordered list of providers against each incoming Observation
// and collects whatever they produce into a Frame. Providers skip
// computations whose inputs are absent, so a Frame simply omits what the
// boat's sensors couldn't support that tick.
package instrument

import (
	"time"

	"github.com/mmp/windward/log"
	"github.com/mmp/windward/math"
	"github.com/mmp/windward/sail"
)

// Observation is one tick of boat telemetry. Angles are degrees, speeds
// knots; NaN marks an absent reading. Its fields mirror session.Record
// field for field so that the two types convert directly.
type Observation struct {
	Time            time.Time
	Heading         float64
	COG             float64
	SOG             float64
	AWA             float64
	TWD             float64
	TWS             float64
	WaypointBearing float64
}

// PointerKind identifies what a rim pointer marks.
type PointerKind int

const (
	PointerHeading PointerKind = iota
	PointerCOG
	PointerTWD
	PointerAWD
	PointerPortLayline
	PointerStarboardLayline
)

func (k PointerKind) String() string {
	switch k {
	case PointerHeading:
		return "heading"
	case PointerCOG:
		return "cog"
	case PointerTWD:
		return "twd"
	case PointerAWD:
		return "awd"
	case PointerPortLayline:
		return "port layline"
	default:
		return "starboard layline"
	}
}

// Pointer is a single needle on the compass rim at a normalized angle.
type Pointer struct {
	Angle float64
	Kind  PointerKind
}

// OverlayKind identifies which readout an Overlay carries.
type OverlayKind int

const (
	OverlayVMG OverlayKind = iota
	OverlayPerformance
	OverlayShift
	OverlayPointOfSail
	OverlayWaypoint
)

func (k OverlayKind) String() string {
	switch k {
	case OverlayVMG:
		return "vmg"
	case OverlayPerformance:
		return "performance"
	case OverlayShift:
		return "shift"
	case OverlayPointOfSail:
		return "point of sail"
	default:
		return "waypoint"
	}
}

// Overlay is a textual or numeric readout. Text is a short display
// string, Value the underlying number where one exists, and Status is
// set only for OverlayPerformance.
type Overlay struct {
	Kind   OverlayKind
	Text   string
	Value  float64
	Status sail.PerformanceStatus
}

// The three capability interfaces a provider may implement. A provider
// returns nil (or an empty slice) when the observation doesn't give it
// enough to work with.
type ZoneProvider interface {
	Zones(obs Observation) []sail.Zone
}

type PointerProvider interface {
	Pointers(obs Observation) []Pointer
}

type OverlayProvider interface {
	Overlays(obs Observation) []Overlay
}

// Frame is everything the display draws for one observation: zones in
// paint order, then pointers and overlays in provider order.
type Frame struct {
	Zones    []sail.Zone
	Pointers []Pointer
	Overlays []Overlay
}

// Panel owns the ordered provider lists and turns observations into
// frames. It also keeps the sole logging duty in the engine: each
// telemetry field seen non-finite is warned about once per Panel so a
// flaky sensor leaves a breadcrumb without flooding the log.
type Panel struct {
	zones    []ZoneProvider
	pointers []PointerProvider
	overlays []OverlayProvider

	lg     *log.Logger
	warned map[string]interface{}
}

// NewPanel returns an empty Panel; lg may be nil.
func NewPanel(lg *log.Logger) *Panel {
	return &Panel{
		lg:     lg,
		warned: make(map[string]interface{}),
	}
}

func (p *Panel) AddZoneProvider(zp ZoneProvider) {
	p.zones = append(p.zones, zp)
}

func (p *Panel) AddPointerProvider(pp PointerProvider) {
	p.pointers = append(p.pointers, pp)
}

func (p *Panel) AddOverlayProvider(op OverlayProvider) {
	p.overlays = append(p.overlays, op)
}

// Observe runs every provider against the observation and returns the
// assembled frame.
func (p *Panel) Observe(obs Observation) Frame {
	p.checkTelemetry(obs)

	var fr Frame
	for _, zp := range p.zones {
		fr.Zones = append(fr.Zones, zp.Zones(obs)...)
	}
	for _, pp := range p.pointers {
		fr.Pointers = append(fr.Pointers, pp.Pointers(obs)...)
	}
	for _, op := range p.overlays {
		fr.Overlays = append(fr.Overlays, op.Overlays(obs)...)
	}
	return fr
}

// checkTelemetry warns once per field name about non-finite readings.
// WaypointBearing is exempt: no waypoint set is its normal state, not a
// sensor fault.
func (p *Panel) checkTelemetry(obs Observation) {
	fields := []struct {
		name  string
		value float64
	}{
		{"heading", obs.Heading},
		{"cog", obs.COG},
		{"sog", obs.SOG},
		{"awa", obs.AWA},
		{"twd", obs.TWD},
		{"tws", obs.TWS},
	}
	for _, f := range fields {
		if math.IsFinite(f.value) {
			continue
		}
		if _, ok := p.warned[f.name]; !ok {
			p.warned[f.name] = nil
			p.lg.Warnf("%s: non-finite telemetry; treating as absent", f.name)
		}
	}
}
