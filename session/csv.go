// session/csv.go
// Copyright(c) 2025 windward contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package session

import (
	"encoding/csv"
	"fmt"
	"io"
	gomath "math"
	"slices"
	"strconv"
	"time"

	"github.com/mmp/windward/math"
)

// The CSV form is a header row followed by one row per record, times in
// RFC3339 and an empty cell for an absent (NaN) reading.
var csvHeader = []string{"time", "heading", "cog", "sog", "awa", "twd", "tws", "waypoint_bearing"}

// recordValues returns pointers to the record's numeric fields in
// csvHeader order (skipping the leading time column).
func recordValues(r *Record) []*float64 {
	return []*float64{&r.Heading, &r.COG, &r.SOG, &r.AWA, &r.TWD, &r.TWS, &r.WaypointBearing}
}

func writeCSV(w io.Writer, recs []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	row := make([]string, len(csvHeader))
	for _, r := range recs {
		row[0] = r.Time.UTC().Format(time.RFC3339Nano)
		for i, v := range recordValues(&r) {
			if math.IsFinite(*v) {
				row[1+i] = strconv.FormatFloat(*v, 'g', -1, 64)
			} else {
				row[1+i] = ""
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func readCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if !slices.Equal(header, csvHeader) {
		return nil, fmt.Errorf("unexpected header %v; expected %v", header, csvHeader)
	}

	var recs []Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			return recs, nil
		}
		if err != nil {
			return nil, err // csv errors already carry the line number
		}

		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		recs = append(recs, rec)
	}
}

func parseRow(row []string) (Record, error) {
	var rec Record

	t, err := time.Parse(time.RFC3339, row[0])
	if err != nil {
		return Record{}, fmt.Errorf("bad time %q: %w", row[0], err)
	}
	rec.Time = t

	for i, v := range recordValues(&rec) {
		if cell := row[1+i]; cell == "" {
			*v = gomath.NaN()
		} else if *v, err = strconv.ParseFloat(cell, 64); err != nil {
			return Record{}, fmt.Errorf("bad %s %q: %w", csvHeader[1+i], cell, err)
		}
	}
	return rec, nil
}
