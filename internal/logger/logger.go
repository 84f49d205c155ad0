/*
Copyright 2026 Lingxi Li. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

// Package logger prints generator diagnostics to stderr.
package logger

import (
	"io"
	"log"
	"os"
)

var (
	std     = log.New(os.Stderr, "radixgen: ", 0)
	verbose bool
)

// SetOutput redirects diagnostics, e.g. to io.Discard in tests.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

// SetVerbose enables Debug output.
func SetVerbose(v bool) {
	verbose = v
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	std.Printf("warning: "+format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	std.Printf(format, args...)
}

// Debug logs a message only when verbose output is enabled.
func Debug(format string, args ...any) {
	if verbose {
		std.Printf(format, args...)
	}
}
