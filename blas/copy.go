// SPDX-License-Identifier: MIT
package blas

import "github.com/katalvlaran/lvlinalg/matrix"

// Copy overwrites B with alpha·op(A). Shapes must conform: B has the
// shape of op(A). A and B must not alias.
// Complexity: O(rows × cols).
func Copy[T matrix.Scalar](t Transpose, alpha T, a, b matrix.Matrix[T]) {
	if opRows(t, a) != b.Rows() || opCols(t, a) != b.Cols() {
		badShape("Copy")
	}
	aAt := opAt(t, a)

	var i, j int
	for i = 0; i < b.Rows(); i++ {
		for j = 0; j < b.Cols(); j++ {
			b.Set(i, j, alpha*aAt(i, j))
		}
	}
}

// Add accumulates B += alpha·op(A). Shapes must conform: B has the
// shape of op(A). A and B must not alias.
// Complexity: O(rows × cols).
func Add[T matrix.Scalar](t Transpose, alpha T, a, b matrix.Matrix[T]) {
	if opRows(t, a) != b.Rows() || opCols(t, a) != b.Cols() {
		badShape("Add")
	}
	if alpha == 0 {
		return
	}
	aAt := opAt(t, a)

	var i, j int
	for i = 0; i < b.Rows(); i++ {
		for j = 0; j < b.Cols(); j++ {
			b.Set(i, j, b.At(i, j)+alpha*aAt(i, j))
		}
	}
}
