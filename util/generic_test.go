// util/generic_test.go
// Copyright(c) 2025 windward contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"slices"
	"testing"
)

func TestSelect(t *testing.T) {
	if Select(true, 1, 2) != 1 || Select(false, 1, 2) != 2 {
		t.Errorf("Select failed")
	}
	if Select(true, "a", "b") != "a" {
		t.Errorf("Select failed for strings")
	}
}

func TestMapSlice(t *testing.T) {
	a := []int{1, 2, 3, 4, 5}
	b := MapSlice(a, func(i int) float64 { return 2 * float64(i) })
	if len(a) != len(b) {
		t.Errorf("lengths mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if float64(2*a[i]) != b[i] {
			t.Errorf("value %d mismatch %f vs %f", i, float64(2*a[i]), b[i])
		}
	}
}

func TestFilterSlice(t *testing.T) {
	b := FilterSlice([]int{1, 2, 3, 4, 5}, func(i int) bool { return i%2 == 0 })
	if len(b) != 2 || b[0] != 2 || b[1] != 4 {
		t.Errorf("filter evens failed: %+v", b)
	}

	c := FilterSlice([]int{1, 2, 3, 4, 5}, func(i int) bool { return i >= 3 })
	if len(c) != 3 || c[0] != 3 || c[1] != 4 || c[2] != 5 {
		t.Errorf("filter >=3 failed: %+v", c)
	}
}

func TestReduceSlice(t *testing.T) {
	v := []int{1, -2, 3, 4}

	if r := ReduceSlice(v, func(v int, r int) int { return v + r }, 10); r != 16 {
		t.Errorf("ReduceSlice with + got %d, not 16 expected", r)
	}

	if r := ReduceSlice(v, func(v int, r int) int { return v * r }, 2); r != -48 {
		t.Errorf("ReduceSlice with * got %d, not -48 expected", r)
	}
}

func TestSortedMapKeys(t *testing.T) {
	m := map[int]string{3: "three", 1: "one", 2: "two", 4: "four"}

	keys := SortedMapKeys(m)
	if !slices.Equal(keys, []int{1, 2, 3, 4}) {
		t.Errorf("SortedMapKeys returned %v, expected [1 2 3 4]", keys)
	}
}

func TestDuplicateSlice(t *testing.T) {
	a := []int{1, 2, 3}
	b := DuplicateSlice(a)
	if !slices.Equal(a, b) {
		t.Errorf("duplicate doesn't match: %v vs %v", a, b)
	}
	b[0] = 10
	if a[0] != 1 {
		t.Errorf("modifying duplicate changed the original")
	}
}
