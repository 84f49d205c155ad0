/*
Copyright 2026 Lingxi Li. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

// Package token models the per-variable color values collected from the
// Radix Colors source stylesheets.
package token

import "regexp"

// Slot identifies which of a record's four value positions an assignment
// targets.
type Slot int

const (
	// LightFallback is the light-mode sRGB fallback literal.
	LightFallback Slot = iota
	// LightP3 is the light-mode display-p3 literal.
	LightP3
	// DarkFallback is the dark-mode sRGB fallback literal.
	DarkFallback
	// DarkP3 is the dark-mode display-p3 literal.
	DarkP3
)

// Record holds the raw source literals gathered for one variable.
// Empty string means the slot was never populated.
type Record struct {
	LightFallback string
	LightP3       string
	DarkFallback  string
	DarkP3        string
}

// Table accumulates records keyed by source variable name (e.g. "--red-9").
// A table belongs to exactly one family group; callers thread it through the
// scanning step rather than sharing it across groups.
type Table map[string]*Record

// NewTable creates an empty accumulation table.
func NewTable() Table {
	return make(Table)
}

// Put stores value into the named record's slot unless that slot already
// holds a value. The first assignment wins; later duplicates across
// companion files are dropped silently.
func (t Table) Put(name string, slot Slot, value string) {
	rec, ok := t[name]
	if !ok {
		rec = &Record{}
		t[name] = rec
	}

	switch slot {
	case LightFallback:
		if rec.LightFallback == "" {
			rec.LightFallback = value
		}
	case LightP3:
		if rec.LightP3 == "" {
			rec.LightP3 = value
		}
	case DarkFallback:
		if rec.DarkFallback == "" {
			rec.DarkFallback = value
		}
	case DarkP3:
		if rec.DarkP3 == "" {
			rec.DarkP3 = value
		}
	}
}

// Names returns the variable names present in the table, unordered.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	return names
}

// varNamePattern splits a custom property name into its stem and trailing
// index segment. Indexes are a bare integer ("9") or an alpha-channel
// variant ("a9"); anything else is not a palette variable.
var varNamePattern = regexp.MustCompile(`^--([a-z][a-z-]*?)-(a?\d+)$`)

// SplitName splits a variable name like "--red-a9" into stem "red" and
// index "a9". ok is false when the name does not follow the palette naming
// convention.
func SplitName(name string) (stem, index string, ok bool) {
	m := varNamePattern.FindStringSubmatch(name)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}
