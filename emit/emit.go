/*
Copyright 2026 Lingxi Li. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

// Package emit assembles the generated CSS variable file for one color
// family from its accumulated source records.
package emit

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lilingxi01/radix-colors-tailwind/convert"
	"github.com/lilingxi01/radix-colors-tailwind/internal/logger"
	"github.com/lilingxi01/radix-colors-tailwind/token"
)

// Selector groups for the generated blocks. The alpha-only achromatic
// families scope their light values under a bare :root; every other family
// also exposes the light-theme classes.
const (
	lightSelector     = ":root, .light, .light-theme"
	lightOnlySelector = ":root"
	darkSelector      = ".dark, .dark-theme"
	themeSelector     = "@theme inline"
	supportsCondition = "@supports (color: color(display-p3 1 1 1))"
)

// Options configures emission for one family.
type Options struct {
	// Name is the output file base name, used in the header ("red",
	// "black-alpha").
	Name string

	// AlphaOnly selects the bare :root light selector used by the two
	// achromatic families.
	AlphaOnly bool

	// Version is embedded in the generated header comment.
	Version string
}

// blocks collects the emitted lines per output block. Each slice stays in
// variable order because callers feed records through already sorted.
type blocks struct {
	light          []string
	intermediate   []string
	dark           []string
	theme          []string
	p3Intermediate []string
	p3Light        []string
	p3Dark         []string
}

// Emit merges one family's records into the final CSS document. Records
// are processed in deterministic variable order; conversion failures drop
// the affected slot with a warning and never abort the family.
func Emit(table token.Table, opts Options) []byte {
	var b blocks
	intermediateSeen := make(map[string]bool)
	p3IntermediateSeen := make(map[string]bool)

	for _, name := range token.SortVarNames(table.Names()) {
		rec := table[name]

		inner := strings.TrimPrefix(name, "--")
		base := "--radix-rgb-" + inner
		intermediate := "--radix-intermediate-" + inner
		alias := "--color-" + inner

		// Every variable gets a theme alias, even when all of its values
		// later fail to convert; the alias only references names.
		b.theme = append(b.theme, fmt.Sprintf("%s: var(%s);", alias, intermediate))

		_, index, _ := token.SplitName(name)
		_, wantAlpha, _ := token.ParseIndex(index)

		if rec.LightFallback != "" {
			if value, err := convert.Convert(rec.LightFallback); err != nil {
				logger.Warn("skipping light value for %s: %v", name, err)
			} else {
				b.light = append(b.light, fmt.Sprintf("%s: %s;", base, value))
				if !intermediateSeen[intermediate] {
					intermediateSeen[intermediate] = true
					b.intermediate = append(b.intermediate, fmt.Sprintf("%s: oklch(var(%s));", intermediate, base))
				}
			}
		}

		if rec.DarkFallback != "" {
			if value, err := convert.Convert(rec.DarkFallback); err != nil {
				logger.Warn("skipping dark value for %s: %v", name, err)
			} else {
				b.dark = append(b.dark, fmt.Sprintf("%s: %s;", base, value))
				if !intermediateSeen[intermediate] {
					intermediateSeen[intermediate] = true
					b.intermediate = append(b.intermediate, fmt.Sprintf("%s: oklch(var(%s));", intermediate, base))
				}
			}
		}

		if rec.LightP3 != "" {
			if value, err := convert.ExtractP3(rec.LightP3, wantAlpha); err != nil {
				logger.Warn("skipping light display-p3 value for %s: %v", name, err)
			} else {
				b.p3Light = append(b.p3Light, fmt.Sprintf("%s: %s;", base, value))
				if !p3IntermediateSeen[intermediate] {
					p3IntermediateSeen[intermediate] = true
					b.p3Intermediate = append(b.p3Intermediate, fmt.Sprintf("%s: var(%s);", intermediate, base))
				}
			}
		}

		if rec.DarkP3 != "" {
			if value, err := convert.ExtractP3(rec.DarkP3, wantAlpha); err != nil {
				logger.Warn("skipping dark display-p3 value for %s: %v", name, err)
			} else {
				b.p3Dark = append(b.p3Dark, fmt.Sprintf("%s: %s;", base, value))
				if !p3IntermediateSeen[intermediate] {
					p3IntermediateSeen[intermediate] = true
					b.p3Intermediate = append(b.p3Intermediate, fmt.Sprintf("%s: var(%s);", intermediate, base))
				}
			}
		}
	}

	return assemble(b, opts)
}

// assemble lays the blocks out in document order, omitting empty blocks
// and wrapping the display-p3 overrides in their feature query.
func assemble(b blocks, opts Options) []byte {
	var sb strings.Builder
	sb.WriteString(Header(opts.Name, opts.Version))

	lightSel := lightSelector
	if opts.AlphaOnly {
		lightSel = lightOnlySelector
	}

	writeBlock(&sb, "", lightSel, b.light)
	writeBlock(&sb, "", lightOnlySelector, b.intermediate)
	writeBlock(&sb, "", darkSelector, b.dark)
	writeBlock(&sb, "", themeSelector, b.theme)

	if len(b.p3Intermediate)+len(b.p3Light)+len(b.p3Dark) > 0 {
		var inner strings.Builder
		writeBlock(&inner, "  ", lightOnlySelector, b.p3Intermediate)
		writeBlock(&inner, "  ", lightSel, b.p3Light)
		writeBlock(&inner, "  ", darkSelector, b.p3Dark)

		sb.WriteString("\n" + supportsCondition + " {\n")
		sb.WriteString(strings.TrimPrefix(inner.String(), "\n"))
		sb.WriteString("}\n")
	}

	return []byte(sb.String())
}

// writeBlock emits one selector block preceded by a blank line. Blocks
// with no lines are omitted entirely.
func writeBlock(sb *strings.Builder, indent, selector string, lines []string) {
	if len(lines) == 0 {
		return
	}
	sb.WriteString("\n" + indent + selector + " {\n")
	for _, line := range lines {
		sb.WriteString(indent + "  " + line + "\n")
	}
	sb.WriteString(indent + "}\n")
}

// Header renders the fixed comment block that opens every generated file.
func Header(name, version string) string {
	title := cases.Title(language.English).String(strings.ReplaceAll(name, "-", " "))
	return fmt.Sprintf("/*\n * %s\n * Generated by radix-colors-tailwind v%s. Do not edit directly.\n */\n", title, version)
}
