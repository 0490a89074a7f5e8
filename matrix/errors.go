// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// matrix package. Constructors and validators MUST return these
// sentinels and tests MUST check them via errors.Is. Panics are
// reserved for programmer errors in element indexers (see doc.go).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to
// allow easy grepping across logs. DO NOT %w wrap these sentinels when
// returning directly; if context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary — callers will
// still use errors.Is to match.

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (negative row or column count). Zero extents are legal: empty
	// views are first-class values.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index or half-open range lies
	// outside the valid bounds of a view or backing slice.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrBadStride indicates a stride that cannot address the
	// requested shape (stride smaller than the contiguous dimension,
	// or a zero stride on a dimension of extent > 1).
	ErrBadStride = errors.New("matrix: invalid stride")

	// ErrShortData indicates that a caller-supplied backing slice is
	// too small for the requested shape and strides.
	ErrShortData = errors.New("matrix: backing slice too short")

	// ErrNilMatrix indicates that a nil backing slice was supplied
	// for a shape that requires elements. Constructors check it
	// ahead of the length check.
	ErrNilMatrix = errors.New("matrix: nil view")
)
