// SPDX-License-Identifier: MIT
package householder

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the drivers. Match with errors.Is; the
// wrapped variants from argErrorf add the routine and argument that
// failed validation.
//
// NOTE ON NAMING & PREFIXING:
// every sentinel message starts with "householder: " so errors remain
// attributable after crossing package boundaries.
var (
	// ErrNilMatrix signals a nil required operand.
	ErrNilMatrix = errors.New("householder: nil matrix")
	// ErrDimensionMismatch signals operand shapes that cannot describe
	// a valid reflector problem (for example more columns than rows in
	// a column-oriented generation).
	ErrDimensionMismatch = errors.New("householder: dimension mismatch")
	// ErrTooManyReflectors signals a tau count exceeding what the
	// operand shape admits.
	ErrTooManyReflectors = errors.New("householder: reflector count exceeds matrix extent")
	// ErrBadFlag signals an unknown Direction or StoreMode value.
	ErrBadFlag = errors.New("householder: invalid flag")
)

// argErrorf wraps a sentinel with the routine name and the offending
// argument, mirroring the usual argument-position diagnostics of
// factorization libraries.
func argErrorf(routine string, arg int, name string, sentinel error) error {
	return fmt.Errorf("%s: argument %d (%s): %w", routine, arg, name, sentinel)
}
