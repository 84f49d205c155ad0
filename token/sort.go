/*
Copyright 2026 Lingxi Li. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

package token

import (
	"sort"
	"strconv"
	"strings"
)

// ParseIndex parses a trailing index segment ("9" or "a9") into its numeric
// step and alpha flag. ok is false when the segment is neither form.
func ParseIndex(index string) (n int, alpha bool, ok bool) {
	digits := index
	if strings.HasPrefix(index, "a") {
		alpha = true
		digits = index[1:]
	}
	if digits == "" {
		return 0, false, false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, false, false
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false, false
	}
	return n, alpha, true
}

// SortVarNames returns a copy of names in stable emission order: solid
// steps before alpha steps, numerically ascending within each group, so
// "--red-2" precedes "--red-10" and "--red-12" precedes "--red-a1". Names
// whose index cannot be parsed fall back to plain lexical order.
func SortVarNames(names []string) []string {
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.SliceStable(sorted, func(i, j int) bool {
		return lessVarName(sorted[i], sorted[j])
	})
	return sorted
}

func lessVarName(a, b string) bool {
	na, alphaA, okA := trailingIndex(a)
	nb, alphaB, okB := trailingIndex(b)
	if !okA || !okB {
		return a < b
	}
	if alphaA != alphaB {
		return !alphaA
	}
	return na < nb
}

// trailingIndex extracts the index segment after the last hyphen.
func trailingIndex(name string) (n int, alpha bool, ok bool) {
	i := strings.LastIndex(name, "-")
	if i < 0 || i+1 >= len(name) {
		return 0, false, false
	}
	return ParseIndex(name[i+1:])
}
