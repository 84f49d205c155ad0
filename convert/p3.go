/*
Copyright 2026 Lingxi Li. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

package convert

import (
	"fmt"
	"strings"
)

// P3Value holds the channel text extracted from a display-p3 literal. The
// channels are carried verbatim; no reprojection into another color space
// is attempted.
type P3Value struct {
	R, G, B string
	Alpha   string
}

// String reassembles the literal: "color(display-p3 r g b)" or
// "color(display-p3 r g b / a)".
func (p P3Value) String() string {
	s := fmt.Sprintf("color(display-p3 %s %s %s", p.R, p.G, p.B)
	if p.Alpha != "" {
		s += " / " + p.Alpha
	}
	return s + ")"
}

// Channels returns the bare channel triple, e.g. "0.958 0.333 0.269".
func (p P3Value) Channels() string {
	return p.R + " " + p.G + " " + p.B
}

// ExtractP3 pulls the three channel numbers and optional alpha out of a
// display-p3 literal without converting them. wantAlpha selects a strict
// parse: a solid literal when false, an alpha-carrying literal when true.
// A shape or alpha-presence mismatch fails with ErrFormatMismatch.
func ExtractP3(literal string, wantAlpha bool) (P3Value, error) {
	literal = strings.TrimSpace(literal)
	m := p3Pattern.FindStringSubmatch(literal)
	if m == nil {
		return P3Value{}, fmt.Errorf("%w: not a display-p3 literal: %q", ErrFormatMismatch, literal)
	}

	hasAlpha := m[4] != ""
	if hasAlpha != wantAlpha {
		if wantAlpha {
			return P3Value{}, fmt.Errorf("%w: expected alpha channel in %q", ErrFormatMismatch, literal)
		}
		return P3Value{}, fmt.Errorf("%w: unexpected alpha channel in %q", ErrFormatMismatch, literal)
	}

	return P3Value{R: m[1], G: m[2], B: m[3], Alpha: m[4]}, nil
}
