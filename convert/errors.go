/*
Copyright 2026 Lingxi Li. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

package convert

import "errors"

// Sentinel errors for color literal handling.
var (
	// ErrMalformedLiteral indicates a color literal does not match the
	// expected lexical shape for its detected format.
	ErrMalformedLiteral = errors.New("malformed color literal")

	// ErrFormatMismatch indicates a display-p3 literal does not satisfy the
	// caller's alpha-presence requirement, or is not a display-p3 literal
	// at all.
	ErrFormatMismatch = errors.New("color literal format mismatch")
)
