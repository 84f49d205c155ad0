/*
Copyright 2026 Lingxi Li. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lilingxi01/radix-colors-tailwind/parser"
	"github.com/lilingxi01/radix-colors-tailwind/token"
)

func TestScan_LightScope(t *testing.T) {
	src := `:root, .light, .light-theme {
  --red-1: #fffcfc;
  --red-9: #e5484d;
  --red-a1: rgba(255, 0, 0, 0.05);
}
`
	table := token.NewTable()
	parser.Scan(table, src, "red")

	require.Len(t, table, 3)
	assert.Equal(t, "#fffcfc", table["--red-1"].LightFallback)
	assert.Equal(t, "#e5484d", table["--red-9"].LightFallback)
	assert.Equal(t, "rgba(255, 0, 0, 0.05)", table["--red-a1"].LightFallback)
}

func TestScan_BareRootScope(t *testing.T) {
	src := `:root {
  --black-a9: rgba(0, 0, 0, 0.5);
}
`
	table := token.NewTable()
	parser.Scan(table, src, "black")

	require.Len(t, table, 1)
	assert.Equal(t, "rgba(0, 0, 0, 0.5)", table["--black-a9"].LightFallback)
}

func TestScan_DarkClassScope(t *testing.T) {
	src := `.dark, .dark-theme {
  --red-9: #880000;
}
`
	table := token.NewTable()
	parser.Scan(table, src, "red")

	require.Len(t, table, 1)
	assert.Equal(t, "#880000", table["--red-9"].DarkFallback)
	assert.Empty(t, table["--red-9"].LightFallback)
}

func TestScan_DarkMediaQuery(t *testing.T) {
	src := `@media (prefers-color-scheme: dark) {
  :root {
    --red-9: #880000;
  }
}
`
	table := token.NewTable()
	parser.Scan(table, src, "red")

	require.Len(t, table, 1)
	assert.Equal(t, "#880000", table["--red-9"].DarkFallback)
}

func TestScan_P3InsideSupports(t *testing.T) {
	src := `:root, .light, .light-theme {
  --red-9: #e5484d;
}

@supports (color: color(display-p3 1 1 1)) {
  :root, .light, .light-theme {
    --red-9: color(display-p3 0.83 0.31 0.292);
  }
}
`
	table := token.NewTable()
	parser.Scan(table, src, "red")

	require.Len(t, table, 1)
	rec := table["--red-9"]
	assert.Equal(t, "#e5484d", rec.LightFallback)
	assert.Equal(t, "color(display-p3 0.83 0.31 0.292)", rec.LightP3)
}

func TestScan_ScopeEndsAtClosingBrace(t *testing.T) {
	src := `:root {
  --red-1: #fffcfc;
}
--red-2: #ffffff;
.unrelated {
  --red-3: #000000;
}
`
	table := token.NewTable()
	parser.Scan(table, src, "red")

	// Declarations outside a recognized scope are ignored.
	require.Len(t, table, 1)
	assert.Equal(t, "#fffcfc", table["--red-1"].LightFallback)
}

func TestScan_StemFilter(t *testing.T) {
	src := `:root {
  --red-1: #fffcfc;
  --blue-1: #fdfdfe;
  --redish-1: #ffffff;
}
`
	table := token.NewTable()
	parser.Scan(table, src, "red")

	require.Len(t, table, 1)
	assert.Contains(t, table, "--red-1")
}

func TestScan_AchromaticAlphaCarveOut(t *testing.T) {
	src := `:root {
  --black-alpha-9: rgba(0, 0, 0, 0.5);
  --black-a10: rgba(0, 0, 0, 0.6);
}
`
	table := token.NewTable()
	parser.Scan(table, src, "black")

	require.Len(t, table, 2)
	assert.Equal(t, "rgba(0, 0, 0, 0.5)", table["--black-a9"].LightFallback)
	assert.Equal(t, "rgba(0, 0, 0, 0.6)", table["--black-a10"].LightFallback)
}

func TestScan_FirstWinsWithinFile(t *testing.T) {
	src := `:root {
  --red-9: #e5484d;
  --red-9: #ffffff;
}
`
	table := token.NewTable()
	parser.Scan(table, src, "red")

	assert.Equal(t, "#e5484d", table["--red-9"].LightFallback)
}

func TestScan_FirstWinsAcrossFiles(t *testing.T) {
	table := token.NewTable()
	parser.Scan(table, ":root {\n  --red-9: #e5484d;\n}\n", "red")
	parser.Scan(table, ":root {\n  --red-9: #ffffff;\n}\n", "red")

	assert.Equal(t, "#e5484d", table["--red-9"].LightFallback)
}

func TestScan_MalformedLinesIgnored(t *testing.T) {
	src := `:root {
  --red-1 #fffcfc;
  --red-2: ;
  --red-3: #fffcfc
  not a declaration at all
  --red-4: #fffcfc;
  --red-5:;
}
`
	table := token.NewTable()
	parser.Scan(table, src, "red")

	require.Len(t, table, 1)
	assert.Contains(t, table, "--red-4")
}

func TestScan_SelectorOnSeparateLineFromBrace(t *testing.T) {
	src := `:root, .light, .light-theme
{
  --red-1: #fffcfc;
}

.unrelated {
  --red-2: #000000;
}
`
	table := token.NewTable()
	parser.Scan(table, src, "red")

	// The split block must close cleanly so the unrelated block that
	// follows is not swept into the light scope.
	require.Len(t, table, 1)
	assert.Equal(t, "#fffcfc", table["--red-1"].LightFallback)
}

func TestScan_SelectorWithoutBlockResetsScope(t *testing.T) {
	src := `:root, .light, .light-theme
--red-1: #fffcfc;
.unrelated {
  --red-2: #000000;
}
`
	table := token.NewTable()
	parser.Scan(table, src, "red")

	assert.Empty(t, table)
}

func TestScan_NonPaletteVariablesExcluded(t *testing.T) {
	src := `:root {
  --red-shadow: #000000;
  --red-: #000000;
  --red-13x: #000000;
}
`
	table := token.NewTable()
	parser.Scan(table, src, "red")

	assert.Empty(t, table)
}
