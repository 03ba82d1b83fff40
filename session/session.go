// session/session.go
// Copyright(c) 2025 windward contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package session stores recorded instrument telemetry for offline
// replay: a named sequence of timestamped observations, written either
// as CSV for interchange with other tools or as compact msgpack+zstd
// archives.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// File extensions understood by ReadFile and WriteFile.
const (
	CSVSuffix     = ".csv"
	ArchiveSuffix = ".msgpack.zst"
)

var ErrUnknownFormat = errors.New("unknown session file format")

// Record is one recorded telemetry row. Its fields mirror
// instrument.Observation field for field so that the two types convert
// directly; NaN marks an absent reading and survives both file formats.
type Record struct {
	Time            time.Time
	Heading         float64
	COG             float64
	SOG             float64
	AWA             float64
	TWD             float64
	TWS             float64
	WaypointBearing float64
}

// Session is a named sequence of telemetry records, normally one
// outing's worth.
type Session struct {
	Name    string
	Records []Record
}

// ReadFile loads a recorded session, dispatching on the path's
// extension. CSV files take their session name from the file name;
// archives carry their own, with the file name as a fallback.
func ReadFile(path string) (Session, error) {
	var read func(f *os.File) (Session, error)
	switch {
	case strings.HasSuffix(path, CSVSuffix):
		read = func(f *os.File) (Session, error) {
			recs, err := readCSV(f)
			return Session{Name: sessionName(path), Records: recs}, err
		}
	case strings.HasSuffix(path, ArchiveSuffix):
		read = func(f *os.File) (Session, error) {
			s, err := readArchive(f)
			if s.Name == "" {
				s.Name = sessionName(path)
			}
			return s, err
		}
	default:
		return Session{}, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return Session{}, err
	}
	defer f.Close()

	s, err := read(f)
	if err != nil {
		return Session{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// WriteFile writes the session to path in the format its extension
// names.
func WriteFile(path string, s Session) error {
	var write func(f *os.File) error
	switch {
	case strings.HasSuffix(path, CSVSuffix):
		write = func(f *os.File) error { return writeCSV(f, s.Records) }
	case strings.HasSuffix(path, ArchiveSuffix):
		write = func(f *os.File) error { return writeArchive(f, s) }
	default:
		return fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

// sessionName is the file's base name with the format suffix removed.
func sessionName(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, CSVSuffix)
	name = strings.TrimSuffix(name, ArchiveSuffix)
	return name
}
