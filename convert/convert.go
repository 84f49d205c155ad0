/*
Copyright 2026 Lingxi Li. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

// Package convert turns CSS color literals into the canonical OKLCH triples
// emitted into the generated variable files.
package convert

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

// chromaEpsilon is the chroma below which hue is meaningless and forced to
// zero, so near-gray colors do not pick up noise hues from rounding.
const chromaEpsilon = 1e-4

// Value is the canonical OKLCH form of a color literal: lightness, chroma
// and hue rounded to three decimals, hue normalized to [0, 360), plus an
// optional alpha in [0, 1].
type Value struct {
	L float64
	C float64
	H float64

	// A is the alpha channel; meaningful only when HasAlpha is set.
	A        float64
	HasAlpha bool
}

// String renders the value as CSS channel text: "L C H" or "L C H / A".
// A fully opaque alpha is omitted.
func (v Value) String() string {
	s := formatNumber(v.L) + " " + formatNumber(v.C) + " " + formatNumber(v.H)
	if v.HasAlpha {
		s += " / " + formatNumber(v.A)
	}
	return s
}

// formatNumber prints a 3-decimal-rounded number without trailing zeros,
// matching how the palette files have historically printed channel values
// ("0.628", "1", "0.05").
func formatNumber(f float64) string {
	return strconv.FormatFloat(round3(f), 'f', -1, 64)
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}

// Strict lexical shapes. csscolorparser is more forgiving than the palette
// sources are allowed to be (it accepts #F00 and bare function math), so
// literals are validated against the expected shapes first.
var (
	hexPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	rgbPattern = regexp.MustCompile(`^rgba?\(\s*\d+(?:\.\d+)?%?\s*,\s*\d+(?:\.\d+)?%?\s*,\s*\d+(?:\.\d+)?%?\s*(?:,\s*\d*\.?\d+%?\s*)?\)$`)
	hslPattern = regexp.MustCompile(`^hsla?\(\s*\d+(?:\.\d+)?(?:deg)?\s*,\s*\d+(?:\.\d+)?%\s*,\s*\d+(?:\.\d+)?%\s*(?:,\s*\d*\.?\d+%?\s*)?\)$`)
	p3Pattern  = regexp.MustCompile(`^color\(\s*display-p3\s+(\d*\.?\d+)\s+(\d*\.?\d+)\s+(\d*\.?\d+)\s*(?:/\s*(\d*\.?\d+%?)\s*)?\)$`)
)

// Convert parses one sRGB color literal (hex, rgb()/rgba(), hsl()/hsla())
// and converts it to its canonical OKLCH Value. Literals that do not match
// the expected lexical shape fail with ErrMalformedLiteral.
func Convert(literal string) (Value, error) {
	literal = strings.TrimSpace(literal)
	if err := validateShape(literal); err != nil {
		return Value{}, err
	}

	c, err := csscolorparser.Parse(literal)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %q: %v", ErrMalformedLiteral, literal, err)
	}

	v := fromRGB(c.R, c.G, c.B)
	if alpha := round3(c.A); alpha != 1 {
		v.A = alpha
		v.HasAlpha = true
	}
	return v, nil
}

// validateShape checks the literal against the strict shape for its
// detected format.
func validateShape(literal string) error {
	var ok bool
	switch {
	case strings.HasPrefix(literal, "#"):
		ok = hexPattern.MatchString(literal)
	case strings.HasPrefix(literal, "rgb"):
		ok = rgbPattern.MatchString(literal)
	case strings.HasPrefix(literal, "hsl"):
		ok = hslPattern.MatchString(literal)
	}
	if !ok {
		return fmt.Errorf("%w: %q", ErrMalformedLiteral, literal)
	}
	return nil
}

// fromRGB converts gamma-encoded sRGB channels in [0, 1] to OKLCH.
// go-colorful supplies the piecewise sRGB transfer function; the OKLab
// matrix stage is applied here so the rounding and hue policies stay fixed.
func fromRGB(r, g, b float64) Value {
	lr, lg, lb := colorful.Color{R: r, G: g, B: b}.LinearRgb()

	// Linear light to LMS cone response.
	l := 0.4122214708*lr + 0.5363325363*lg + 0.0514459929*lb
	m := 0.2119034982*lr + 0.6806995451*lg + 0.1073969566*lb
	s := 0.0883024619*lr + 0.2817188376*lg + 0.6299787005*lb

	lc := cbrtClamped(l)
	mc := cbrtClamped(m)
	sc := cbrtClamped(s)

	// LMS to OKLab.
	lab := 0.2104542553*lc + 0.7936177850*mc - 0.0040720468*sc
	labA := 1.9779984951*lc - 2.4285922050*mc + 0.4505937099*sc
	labB := 0.0259040371*lc + 0.7827717662*mc - 0.8086757660*sc

	chroma := math.Hypot(labA, labB)
	hue := 0.0
	if chroma >= chromaEpsilon {
		hue = math.Atan2(labB, labA) * 180 / math.Pi
		if hue < 0 {
			hue += 360
		}
	}

	// The canonical value is rounded, not just its textual form, so that
	// repeated runs and in-memory comparisons agree exactly. Rounding can
	// push a hue just under 360 onto the boundary; wrap it back to 0.
	hue = round3(hue)
	if hue >= 360 {
		hue = 0
	}
	return Value{L: round3(lab), C: round3(chroma), H: hue}
}

// cbrtClamped floors negative cone responses at zero before the cube root.
// Out-of-gamut inputs can drive a component slightly negative.
func cbrtClamped(f float64) float64 {
	if f < 0 {
		return 0
	}
	return math.Cbrt(f)
}
