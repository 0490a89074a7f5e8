// SPDX-License-Identifier: MIT
package householder

import (
	"github.com/katalvlaran/lvlinalg/blas"
	"github.com/katalvlaran/lvlinalg/matrix"
)

// GenerateQUnblocked overwrites the m×n matrix a, holding k column
// reflectors below its diagonal as left by FactorQR, with the first n
// columns of the unitary factor Q. Reflectors are applied one at a
// time, last to first, so each application touches only the trailing
// submatrix the earlier ones have not yet filled.
//
// Requires n ≤ m and k = len(tau) ≤ n. work provides scratch of length
// n; short or nil buffers trigger a fallback allocation.
// Complexity: O(m × n × k).
func GenerateQUnblocked[T matrix.Scalar](a matrix.Matrix[T], tau []T, work []T) error {
	if a == nil {
		return argErrorf("GenerateQUnblocked", 1, "a", ErrNilMatrix)
	}
	m, n := a.Rows(), a.Cols()
	k := len(tau)
	if n > m {
		return argErrorf("GenerateQUnblocked", 1, "a", ErrDimensionMismatch)
	}
	if k > n {
		return argErrorf("GenerateQUnblocked", 2, "tau", ErrTooManyReflectors)
	}
	if n == 0 {
		return nil
	}

	one := matrix.FromReal[T](1)

	// Columns beyond the reflectors start as identity columns.
	var j, r int
	for j = k; j < n; j++ {
		for r = 0; r < m; r++ {
			a.Set(r, j, 0)
		}
		a.Set(j, j, one)
	}

	for i := k - 1; i >= 0; i-- {
		if i < n-1 {
			a.Set(i, i, one)
			ApplyReflector(blas.Left, matrix.Col[T](a, i).Slice(i, m), tau[i],
				a.Slice(i, m, i+1, n), work)
		}
		if i < m-1 {
			blas.Scal(-tau[i], matrix.Col[T](a, i).Slice(i+1, m))
		}
		a.Set(i, i, one-tau[i])
		// The part of column i above the reflector belongs to R; wipe it.
		for r = 0; r < i; r++ {
			a.Set(r, i, 0)
		}
	}

	return nil
}

// GenerateLQUnblocked overwrites the m×n matrix a, holding k row
// reflectors right of its diagonal as left by FactorLQ, with the first
// m rows of the unitary factor Q. Row reflectors are stored
// conjugated, so each step briefly conjugates the row tail, applies
// the reflector from the right, rescales and conjugates back.
//
// Requires m ≤ n and k = len(tau) ≤ m. work provides scratch of length
// m; short or nil buffers trigger a fallback allocation.
// Complexity: O(m × n × k).
func GenerateLQUnblocked[T matrix.Scalar](a matrix.Matrix[T], tau []T, work []T) error {
	if a == nil {
		return argErrorf("GenerateLQUnblocked", 1, "a", ErrNilMatrix)
	}
	m, n := a.Rows(), a.Cols()
	k := len(tau)
	if m > n {
		return argErrorf("GenerateLQUnblocked", 1, "a", ErrDimensionMismatch)
	}
	if k > m {
		return argErrorf("GenerateLQUnblocked", 2, "tau", ErrTooManyReflectors)
	}
	if m == 0 {
		return nil
	}

	one := matrix.FromReal[T](1)

	// Rows beyond the reflectors start as identity rows.
	var j, c int
	for j = k; j < m; j++ {
		for c = 0; c < n; c++ {
			a.Set(j, c, 0)
		}
		a.Set(j, j, one)
	}

	for i := k - 1; i >= 0; i-- {
		if i < n-1 {
			tail := matrix.Row[T](a, i).Slice(i+1, n)
			blas.Conjugate(tail)
			if i < m-1 {
				a.Set(i, i, one)
				ApplyReflector(blas.Right, matrix.Row[T](a, i).Slice(i, n),
					matrix.Conj(tau[i]), a.Slice(i+1, m, i, n), work)
			}
			blas.Scal(-tau[i], tail)
			blas.Conjugate(tail)
		}
		a.Set(i, i, one-matrix.Conj(tau[i]))
		// The part of row i left of the reflector belongs to L; wipe it.
		for c = 0; c < i; c++ {
			a.Set(i, c, 0)
		}
	}

	return nil
}
