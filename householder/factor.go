// SPDX-License-Identifier: MIT
package householder

import (
	"github.com/katalvlaran/lvlinalg/blas"
	"github.com/katalvlaran/lvlinalg/matrix"
)

// FactorQR computes the QR factorization of the m×n matrix a with
// unblocked Householder sweeps. On return the upper triangle of a
// holds R; column j below the diagonal holds reflector j with its
// implicit unit front, and tau[j] its scalar factor. GenerateQ and
// GenerateQUnblocked consume exactly this layout.
//
// tau must have length at least min(m, n). work provides scratch of
// length n; short or nil buffers trigger a fallback allocation.
// Complexity: O(m × n × min(m, n)).
func FactorQR[T matrix.Scalar](a matrix.Matrix[T], tau []T, work []T) error {
	if a == nil {
		return argErrorf("FactorQR", 1, "a", ErrNilMatrix)
	}
	m, n := a.Rows(), a.Cols()
	k := min(m, n)
	if len(tau) < k {
		return argErrorf("FactorQR", 2, "tau", ErrDimensionMismatch)
	}

	one := matrix.FromReal[T](1)
	for j := 0; j < k; j++ {
		beta, t := Reflector(a.At(j, j), matrix.Col[T](a, j).Slice(min(j+1, m), m))
		tau[j] = t
		if j < n-1 {
			a.Set(j, j, one)
			ApplyReflector(blas.Left, matrix.Col[T](a, j).Slice(j, m),
				matrix.Conj(t), a.Slice(j, m, j+1, n), work)
		}
		a.Set(j, j, beta)
	}

	return nil
}

// FactorLQ computes the LQ factorization of the m×n matrix a with
// unblocked Householder sweeps. On return the lower triangle of a
// holds L; row i right of the diagonal holds reflector i conjugated,
// with its implicit unit front, and tau[i] its scalar factor.
// GenerateLQ and GenerateLQUnblocked consume exactly this layout.
//
// tau must have length at least min(m, n). work provides scratch of
// length m; short or nil buffers trigger a fallback allocation.
// Complexity: O(m × n × min(m, n)).
func FactorLQ[T matrix.Scalar](a matrix.Matrix[T], tau []T, work []T) error {
	if a == nil {
		return argErrorf("FactorLQ", 1, "a", ErrNilMatrix)
	}
	m, n := a.Rows(), a.Cols()
	k := min(m, n)
	if len(tau) < k {
		return argErrorf("FactorLQ", 2, "tau", ErrDimensionMismatch)
	}

	one := matrix.FromReal[T](1)
	for i := 0; i < k; i++ {
		row := matrix.Row[T](a, i)
		// Rows are kept conjugated in storage; conjugate up front so
		// the reflector is computed against the actual row values.
		blas.Conjugate(row.Slice(i, n))
		beta, t := Reflector(a.At(i, i), row.Slice(min(i+1, n), n))
		tau[i] = t
		if i < m-1 {
			a.Set(i, i, one)
			ApplyReflector(blas.Right, matrix.Row[T](a, i).Slice(i, n),
				t, a.Slice(i+1, m, i, n), work)
		}
		a.Set(i, i, beta)
		blas.Conjugate(row.Slice(min(i+1, n), n))
	}

	return nil
}
