/*
Copyright 2026 Lingxi Li. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

package parser

import (
	"strings"

	"github.com/lilingxi01/radix-colors-tailwind/token"
)

// scope is the scanner's notion of which theme block it is inside.
type scope int

const (
	scopeUnknown scope = iota
	scopeLight
	scopeDark
)

// Scan reads one source file's text line by line and writes every
// declaration matching stem into table, classified by theme scope and by
// literal shape (display-p3 vs sRGB fallback). Writes are first-wins, so
// scanning a base file before its dark companion lets the base file claim
// contested slots.
//
// The scanner is deliberately lenient: lines outside a recognized scope,
// declarations for other families, and lines that do not parse are skipped
// without error. It tracks block nesting with a brace counter so that
// scope blocks wrapped in @supports or @media close at the right depth.
func Scan(table token.Table, src, stem string) {
	state := scopeUnknown
	depth := 0
	pending := false

	for _, raw := range strings.Split(src, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if state == scopeUnknown {
			switch {
			case lightScopePattern.MatchString(line):
				state = scopeLight
			case darkScopePattern.MatchString(line), darkMediaPattern.MatchString(line):
				state = scopeDark
			default:
				continue
			}
			// A selector split from its brace opens the scope in a pending
			// state; the block does not count as entered until the brace
			// line arrives, so its closing brace balances back to zero.
			depth = braceDelta(line)
			pending = depth < 1
			if pending {
				depth = 0
			}
			continue
		}

		if pending {
			if !strings.Contains(line, "{") {
				state = scopeUnknown
				continue
			}
			pending = false
			depth = braceDelta(line)
			if depth <= 0 {
				state = scopeUnknown
				depth = 0
			}
			continue
		}

		if strings.HasPrefix(line, "--") {
			scanDecl(table, state, line, stem)
		}

		depth += braceDelta(line)
		if depth <= 0 {
			state = scopeUnknown
			depth = 0
		}
	}
}

// scanDecl matches one declaration line against the target stem and stores
// its value in the slot selected by scope and literal shape.
func scanDecl(table token.Table, state scope, line, stem string) {
	m := declPattern.FindStringSubmatch(line)
	if m == nil {
		return
	}
	name, value := m[1], m[2]

	varStem, index, ok := token.SplitName(name)
	if !ok {
		return
	}

	if varStem != stem {
		// The achromatic families alternatively spell their variables with
		// the full "-alpha" stem and a bare step number.
		if !isAchromaticAlias(varStem, index, stem) {
			return
		}
		index = "a" + index
		name = "--" + stem + "-" + index
	}

	p3 := p3LiteralPattern.MatchString(value)
	var slot token.Slot
	switch {
	case state == scopeLight && p3:
		slot = token.LightP3
	case state == scopeLight:
		slot = token.LightFallback
	case state == scopeDark && p3:
		slot = token.DarkP3
	default:
		slot = token.DarkFallback
	}

	table.Put(name, slot, value)
}

// isAchromaticAlias reports whether a variable stem like "black-alpha" with
// a bare numeric index stands in for the "black" stem's alpha steps.
func isAchromaticAlias(varStem, index, stem string) bool {
	if stem != "black" && stem != "white" {
		return false
	}
	if varStem != stem+"-alpha" {
		return false
	}
	_, alpha, ok := token.ParseIndex(index)
	return ok && !alpha
}

// braceDelta counts block opens minus closes on a line.
func braceDelta(line string) int {
	return strings.Count(line, "{") - strings.Count(line, "}")
}
