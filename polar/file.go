// polar/file.go
// Copyright(c) 2025 windward contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package polar

import (
	"encoding/json"
	"fmt"
	"os"
)

// File is the on-disk JSON form of a polar table:
//
//	{ "entries": [ { "windSpeed": 8, "angle": 42 }, ... ] }
type File struct {
	Entries []Entry `json:"entries"`
}

// LoadFile reads and validates a polar table from the JSON file at the
// given path.
func LoadFile(path string) (Table, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Table{}, err
	}

	var f File
	if err := json.Unmarshal(b, &f); err != nil {
		return Table{}, fmt.Errorf("%s: %w", path, err)
	}

	t, err := New(f.Entries)
	if err != nil {
		return Table{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
