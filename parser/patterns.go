/*
Copyright 2026 Lingxi Li. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

// Package parser scans Radix Colors source stylesheets for custom-property
// declarations, tracking which theme scope each declaration belongs to.
package parser

import "regexp"

// Scope-opening line shapes. The sources only ever vary between a bare
// root selector, root joined with light-theme classes, dark-theme class
// groups, and a prefers-color-scheme media query, so line-level matching
// is enough; no CSS tokenizer is needed.

// lightScopePattern matches a light-mode selector group: ":root" alone or
// ":root, .light, .light-theme", optionally opening its block on the same
// line.
var lightScopePattern = regexp.MustCompile(`^:root\s*(?:,\s*\.light(?:-theme)?\s*)*\{?$`)

// darkScopePattern matches a dark-mode class selector group such as
// ".dark, .dark-theme".
var darkScopePattern = regexp.MustCompile(`^\.dark(?:-theme)?\s*(?:,\s*\.dark(?:-theme)?\s*)*\{?$`)

// darkMediaPattern matches a dark-mode preference media query opener.
var darkMediaPattern = regexp.MustCompile(`^@media\s*\(\s*prefers-color-scheme:\s*dark\s*\)\s*\{?$`)

// declPattern matches a custom-property assignment, capturing the variable
// name and its raw value. The value must start with a non-whitespace
// character so an empty declaration like "--red-2: ;" does not match.
var declPattern = regexp.MustCompile(`^(--[a-z][a-z0-9-]*)\s*:\s*(\S.*?)\s*;$`)

// p3LiteralPattern classifies a raw value as a wide-gamut literal.
var p3LiteralPattern = regexp.MustCompile(`^color\(\s*display-p3\s`)
