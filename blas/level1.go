// SPDX-License-Identifier: MIT
package blas

import (
	"math"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// Scal scales x in place: x = alpha·x.
// Complexity: O(n).
func Scal[T matrix.Scalar](alpha T, x matrix.Vector[T]) {
	var i int
	for i = 0; i < x.Len(); i++ {
		x.Set(i, alpha*x.At(i))
	}
}

// Conjugate replaces every element of x with its complex conjugate.
// For real scalars this is the identity and the loop is a cheap copy.
// Complexity: O(n).
func Conjugate[T matrix.Scalar](x matrix.Vector[T]) {
	var i int
	for i = 0; i < x.Len(); i++ {
		x.Set(i, matrix.Conj(x.At(i)))
	}
}

// Dotc returns the conjugated inner product xᴴ·y.
// Complexity: O(n).
func Dotc[T matrix.Scalar](x, y matrix.Vector[T]) T {
	if x.Len() != y.Len() {
		badShape("Dotc")
	}
	var sum T
	var i int
	for i = 0; i < x.Len(); i++ {
		sum += matrix.Conj(x.At(i)) * y.At(i)
	}

	return sum
}

// Axpy accumulates y += alpha·x.
// Complexity: O(n).
func Axpy[T matrix.Scalar](alpha T, x, y matrix.Vector[T]) {
	if x.Len() != y.Len() {
		badShape("Axpy")
	}
	if alpha == 0 {
		return
	}
	var i int
	for i = 0; i < x.Len(); i++ {
		y.Set(i, y.At(i)+alpha*x.At(i))
	}
}

// Nrm2 returns the Euclidean norm ‖x‖₂ as a float64, regardless of the
// element type. Complexity: O(n).
func Nrm2[T matrix.Scalar](x matrix.Vector[T]) float64 {
	var sum float64
	var i int
	for i = 0; i < x.Len(); i++ {
		sum += matrix.Abs2(x.At(i))
	}

	return math.Sqrt(sum)
}
