/*
Copyright 2026 Lingxi Li. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

package emit_test

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lilingxi01/radix-colors-tailwind/emit"
	"github.com/lilingxi01/radix-colors-tailwind/internal/logger"
	"github.com/lilingxi01/radix-colors-tailwind/token"
)

func TestMain(m *testing.M) {
	logger.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func redOptions() emit.Options {
	return emit.Options{Name: "red", Version: "1.0.0"}
}

func TestEmit_FullDocument(t *testing.T) {
	table := token.NewTable()
	table.Put("--red-9", token.LightFallback, "#FF0000")
	table.Put("--red-9", token.DarkFallback, "#000000")
	table.Put("--red-9", token.LightP3, "color(display-p3 0.958 0.333 0.269)")

	got := string(emit.Emit(table, redOptions()))

	want := `/*
 * Red
 * Generated by radix-colors-tailwind v1.0.0. Do not edit directly.
 */

:root, .light, .light-theme {
  --radix-rgb-red-9: 0.628 0.258 29.234;
}

:root {
  --radix-intermediate-red-9: oklch(var(--radix-rgb-red-9));
}

.dark, .dark-theme {
  --radix-rgb-red-9: 0 0 0;
}

@theme inline {
  --color-red-9: var(--radix-intermediate-red-9);
}

@supports (color: color(display-p3 1 1 1)) {
  :root {
    --radix-intermediate-red-9: var(--radix-rgb-red-9);
  }

  :root, .light, .light-theme {
    --radix-rgb-red-9: color(display-p3 0.958 0.333 0.269);
  }
}
`
	assert.Equal(t, want, got)
}

func TestEmit_LightOnlyFamily(t *testing.T) {
	table := token.NewTable()
	table.Put("--red-9", token.LightFallback, "#FF0000")

	got := string(emit.Emit(table, redOptions()))

	assert.Contains(t, got, ":root, .light, .light-theme {")
	assert.Contains(t, got, "--radix-rgb-red-9: 0.628 0.258 29.234;")
	assert.Contains(t, got, "--color-red-9: var(--radix-intermediate-red-9);")
	assert.NotContains(t, got, ".dark")
	assert.NotContains(t, got, "@supports")
	assert.True(t, strings.HasSuffix(got, "}\n"), "exactly one trailing newline")
	assert.False(t, strings.HasSuffix(got, "\n\n"))
}

func TestEmit_AlphaOnlyFamilyUsesBareRoot(t *testing.T) {
	table := token.NewTable()
	table.Put("--black-a9", token.LightFallback, "rgba(0, 0, 0, 0.5)")

	opts := emit.Options{Name: "black-alpha", AlphaOnly: true, Version: "1.0.0"}
	got := string(emit.Emit(table, opts))

	assert.Contains(t, got, "\n:root {\n  --radix-rgb-black-a9: 0 0 0 / 0.5;\n}\n")
	assert.NotContains(t, got, ".light")
	assert.Contains(t, got, "--color-black-a9: var(--radix-intermediate-black-a9);")
}

func TestEmit_SortsVariables(t *testing.T) {
	table := token.NewTable()
	table.Put("--red-10", token.LightFallback, "#FF0000")
	table.Put("--red-2", token.LightFallback, "#FF0000")
	table.Put("--red-a1", token.LightFallback, "rgba(255, 0, 0, 0.5)")

	got := string(emit.Emit(table, redOptions()))

	i2 := strings.Index(got, "--radix-rgb-red-2:")
	i10 := strings.Index(got, "--radix-rgb-red-10:")
	ia1 := strings.Index(got, "--radix-rgb-red-a1:")
	assert.True(t, i2 >= 0 && i10 >= 0 && ia1 >= 0)
	assert.Less(t, i2, i10)
	assert.Less(t, i10, ia1)
}

func TestEmit_MalformedValueSkippedNotFatal(t *testing.T) {
	table := token.NewTable()
	table.Put("--red-9", token.LightFallback, "#F00")
	table.Put("--red-10", token.LightFallback, "#FF0000")

	got := string(emit.Emit(table, redOptions()))

	// The malformed variable keeps its alias but contributes no value line.
	assert.NotContains(t, got, "--radix-rgb-red-9:")
	assert.NotContains(t, got, "#F00")
	assert.Contains(t, got, "--color-red-9: var(--radix-intermediate-red-9);")
	assert.Contains(t, got, "--radix-rgb-red-10: 0.628 0.258 29.234;")
}

func TestEmit_P3AlphaVariant(t *testing.T) {
	table := token.NewTable()
	table.Put("--red-a9", token.LightP3, "color(display-p3 1 0 0 / 0.5)")

	got := string(emit.Emit(table, redOptions()))

	assert.Contains(t, got, "--radix-rgb-red-a9: color(display-p3 1 0 0 / 0.5);")
	assert.Contains(t, got, "--radix-intermediate-red-a9: var(--radix-rgb-red-a9);")
}

func TestEmit_P3AlphaMismatchSkipped(t *testing.T) {
	table := token.NewTable()
	// A solid step must not carry an alpha channel in its p3 literal.
	table.Put("--red-9", token.LightP3, "color(display-p3 1 0 0 / 0.5)")

	got := string(emit.Emit(table, redOptions()))

	assert.NotContains(t, got, "display-p3 1 0 0")
	assert.NotContains(t, got, "@supports")
}

func TestEmit_IntermediateEmittedOnce(t *testing.T) {
	table := token.NewTable()
	table.Put("--red-9", token.LightFallback, "#FF0000")
	table.Put("--red-9", token.DarkFallback, "#000000")

	got := string(emit.Emit(table, redOptions()))

	assert.Equal(t, 1, strings.Count(got, "--radix-intermediate-red-9: oklch(var(--radix-rgb-red-9));"))
}

func TestEmit_Deterministic(t *testing.T) {
	table := token.NewTable()
	for _, name := range []string{"--red-3", "--red-1", "--red-a2", "--red-12"} {
		table.Put(name, token.LightFallback, "#FF0000")
	}

	first := emit.Emit(table, redOptions())
	second := emit.Emit(table, redOptions())
	assert.Equal(t, first, second)
}
