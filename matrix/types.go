// SPDX-License-Identifier: MIT

// Package matrix: core interfaces and the Scalar constraint.
// This file intentionally contains ONLY the public abstraction surface;
// concrete layouts live in dense.go, colmajor.go, strided.go and
// vector.go, errors in errors.go, scalar helpers in scalar.go.
package matrix

// Scalar enumerates the element types every view and kernel is generic
// over. The set is closed (no ~ approximation) so that the helper
// functions in scalar.go can dispatch on the dynamic type exactly.
type Scalar interface {
	float32 | float64 | complex64 | complex128
}

// Matrix is a two-dimensional mutable view of Scalar values over
// arbitrary storage. Implementations never own the algorithmic
// lifecycle of their data: algorithms receive views and mutate them in
// place.
//
// Index contract: At/Set/Slice arguments must be in range; violations
// are programmer errors and panic (see package doc). Complexity: all
// methods O(1) except Clone (O(rows·cols)).
type Matrix[T Scalar] interface {
	// Rows returns the number of rows in the view.
	Rows() int

	// Cols returns the number of columns in the view.
	Cols() int

	// At retrieves the element at position (i, j).
	At(i, j int) T

	// Set assigns the value v at position (i, j).
	Set(i, j int, v T)

	// Slice returns the rectangular sub-view addressed by the two
	// half-open ranges [r0, r1) × [c0, c1). The sub-view shares
	// storage with the receiver; empty ranges yield a valid empty
	// view.
	Slice(r0, r1, c0, c1 int) Matrix[T]

	// Clone returns a deep copy with compact storage, independent of
	// the original.
	Clone() Matrix[T]
}

// Vector is a one-dimensional mutable view of Scalar values.
// Same index contract as Matrix.
type Vector[T Scalar] interface {
	// Len returns the number of elements in the view.
	Len() int

	// At retrieves the element at position i.
	At(i int) T

	// Set assigns the value v at position i.
	Set(i int, v T)

	// Slice returns the sub-view addressed by the half-open range
	// [b, e), sharing storage with the receiver.
	Slice(b, e int) Vector[T]
}
