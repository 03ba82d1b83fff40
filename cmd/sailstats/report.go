package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/mmp/windward/instrument"
	"github.com/mmp/windward/log"
	"github.com/mmp/windward/polar"
	"github.com/mmp/windward/sail"
	"github.com/mmp/windward/session"
	"github.com/mmp/windward/util"
)

// replay runs a recorded session through the same provider stack the
// live display uses and accumulates a Report from the resulting frames.
func replay(s session.Session, table polar.Table, tol float64, lg *log.Logger) *Report {
	panel := instrument.NewPanel(lg)
	panel.AddZoneProvider(instrument.NewCachedZones(instrument.SailingZones{Polar: table, Tolerance: tol}))
	panel.AddPointerProvider(instrument.BasePointers{})
	panel.AddPointerProvider(instrument.LaylinePointers{Polar: table})
	panel.AddOverlayProvider(instrument.VMGOverlay{})
	panel.AddOverlayProvider(instrument.PerformanceOverlay{Polar: table, Tolerance: tol})
	panel.AddOverlayProvider(&instrument.ShiftOverlay{})
	panel.AddOverlayProvider(instrument.PointOfSailOverlay{})
	panel.AddOverlayProvider(instrument.WaypointOverlay{Polar: table})

	r := &Report{Name: s.Name, statusCounts: make(map[sail.PerformanceStatus]int)}
	for _, rec := range s.Records {
		r.update(rec.Time, panel.Observe(instrument.Observation(rec)))
	}
	return r
}

type shiftEvent struct {
	Time    time.Time
	Kind    string // "lift" or "header"
	Degrees float64
}

type Report struct {
	Name       string
	Samples    int
	Start, End time.Time

	upCount, downCount int
	upSum, downSum     float64
	upBest, downBest   float64 // downwind best is the most negative

	statusCounts map[sail.PerformanceStatus]int

	shifts    []shiftEvent
	lastShift string
}

func (r *Report) update(t time.Time, fr instrument.Frame) {
	r.Samples++
	if r.Start.IsZero() || t.Before(r.Start) {
		r.Start = t
	}
	if t.After(r.End) {
		r.End = t
	}

	shift := ""
	for _, ov := range fr.Overlays {
		switch ov.Kind {
		case instrument.OverlayVMG:
			if ov.Value >= 0 {
				r.upCount++
				r.upSum += ov.Value
				r.upBest = max(r.upBest, ov.Value)
			} else {
				r.downCount++
				r.downSum += ov.Value
				r.downBest = min(r.downBest, ov.Value)
			}

		case instrument.OverlayPerformance:
			r.statusCounts[ov.Status]++

		case instrument.OverlayShift:
			// A new event starts whenever the call changes, including
			// after a gap with no active shift.
			shift = ov.Text
			if shift != r.lastShift {
				r.shifts = append(r.shifts, shiftEvent{Time: t, Kind: shift, Degrees: ov.Value})
			}
		}
	}
	r.lastShift = shift
}

func (r *Report) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\n=== %s ===\n", r.Name)
	fmt.Fprintf(&sb, "Samples: %d", r.Samples)
	if !r.Start.IsZero() {
		fmt.Fprintf(&sb, " spanning %s from %s", r.End.Sub(r.Start).Round(time.Second),
			r.Start.Format(time.RFC3339))
	}
	sb.WriteByte('\n')

	if r.upCount > 0 {
		fmt.Fprintf(&sb, "VMG upwind: mean %+.2f kt, best %+.2f kt (%d samples)\n",
			r.upSum/float64(r.upCount), r.upBest, r.upCount)
	}
	if r.downCount > 0 {
		fmt.Fprintf(&sb, "VMG downwind: mean %+.2f kt, best %+.2f kt (%d samples)\n",
			r.downSum/float64(r.downCount), r.downBest, r.downCount)
	}

	total := 0
	for _, n := range r.statusCounts {
		total += n
	}
	if total > 0 {
		sb.WriteString("Performance:")
		for _, st := range util.SortedMapKeys(r.statusCounts) {
			fmt.Fprintf(&sb, " %s %.0f%%", st, 100*float64(r.statusCounts[st])/float64(total))
		}
		sb.WriteByte('\n')
	}

	if len(r.shifts) > 0 {
		lifts := util.ReduceSlice(r.shifts, func(ev shiftEvent, n int) int {
			return n + util.Select(ev.Kind == "lift", 1, 0)
		}, 0)
		fmt.Fprintf(&sb, "Wind shifts: %d (%d lifts, %d headers)\n", len(r.shifts), lifts, len(r.shifts)-lifts)
		for _, ev := range r.shifts {
			fmt.Fprintf(&sb, "  %s %-6s %+.1f degrees\n", ev.Time.Format("15:04:05"), ev.Kind, ev.Degrees)
		}
	}

	return sb.String()
}
