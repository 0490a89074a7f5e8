// SPDX-License-Identifier: MIT
package householder

import (
	"github.com/katalvlaran/lvlinalg/blas"
	"github.com/katalvlaran/lvlinalg/matrix"
)

// GenerateQ overwrites the m×n matrix a, holding k = len(tau) column
// reflectors as left by FactorQR, with the first n columns of the
// unitary factor Q.
//
// Stage 1 (Validate): shapes, n ≤ m, k ≤ n.
// Stage 2 (Seed): columns past the reflectors become identity columns.
// Stage 3 (Sweep): panels of opts.BlockSize reflectors are processed
// last to first; each panel is compacted into a triangular factor,
// applied to the trailing columns in one blocked update, then expanded
// in place by the unblocked kernel.
//
// With Options.Work at least GenerateQWorkspace(...).Elements long the
// driver performs no allocation.
// Complexity: O(m × n × k).
func GenerateQ[T matrix.Scalar](a matrix.Matrix[T], tau []T, opts Options[T]) error {
	if a == nil {
		return argErrorf("GenerateQ", 1, "a", ErrNilMatrix)
	}
	m, n := a.Rows(), a.Cols()
	k := len(tau)
	if n > m {
		return argErrorf("GenerateQ", 1, "a", ErrDimensionMismatch)
	}
	if k > n {
		return argErrorf("GenerateQ", 2, "tau", ErrTooManyReflectors)
	}
	if n == 0 {
		return nil
	}

	if n > k {
		matrix.Fill(a.Slice(0, m, k, n), 0)
		matrix.SetDiag(a.Slice(k, m, k, n), matrix.FromReal[T](1))
	}
	if k == 0 {
		return nil
	}

	nb := clampBlockSize(opts.BlockSize, k)
	ar := newArena(opts.Work, GenerateQWorkspace[T](m, n, k, opts).Elements)
	tm, err := matrix.WrapDense(nb, nb, nb, ar.take(nb*nb))
	if err != nil {
		return err
	}
	wbuf := ar.rest()

	for i := ((k - 1) / nb) * nb; i >= 0; i -= nb {
		ib := min(nb, k-i)
		taui := tau[i : i+ib]

		if i+ib < n {
			vblk := a.Slice(i, m, i, i+ib)
			ti := tm.Slice(0, ib, 0, ib)
			if err = BlockFactor(Forward, ColumnStore, vblk, taui, ti); err != nil {
				return err
			}
			if err = BlockApply(blas.Left, blas.NoTrans, Forward, ColumnStore,
				vblk, ti, a.Slice(i, m, i+ib, n), wbuf); err != nil {
				return err
			}
		}
		if err = GenerateQUnblocked(a.Slice(i, m, i, i+ib), taui, wbuf); err != nil {
			return err
		}
		matrix.Fill(a.Slice(0, i, i, i+ib), 0)
	}

	return nil
}

// GenerateLQ overwrites the m×n matrix a, holding k = len(tau) row
// reflectors as left by FactorLQ, with the first m rows of the unitary
// factor Q. The driver mirrors GenerateQ row-for-column: panels are
// swept last to first, each compacted into a rowwise triangular factor
// and applied to the rows below before the in-place expansion.
//
// Requires m ≤ n and k ≤ m. With Options.Work at least
// GenerateLQWorkspace(...).Elements long the driver performs no
// allocation.
// Complexity: O(m × n × k).
func GenerateLQ[T matrix.Scalar](a matrix.Matrix[T], tau []T, opts Options[T]) error {
	if a == nil {
		return argErrorf("GenerateLQ", 1, "a", ErrNilMatrix)
	}
	m, n := a.Rows(), a.Cols()
	k := len(tau)
	if m > n {
		return argErrorf("GenerateLQ", 1, "a", ErrDimensionMismatch)
	}
	if k > m {
		return argErrorf("GenerateLQ", 2, "tau", ErrTooManyReflectors)
	}
	if m == 0 {
		return nil
	}

	if m > k {
		matrix.Fill(a.Slice(k, m, 0, n), 0)
		matrix.SetDiag(a.Slice(k, m, k, n), matrix.FromReal[T](1))
	}
	if k == 0 {
		return nil
	}

	nb := clampBlockSize(opts.BlockSize, k)
	ar := newArena(opts.Work, GenerateLQWorkspace[T](m, n, k, opts).Elements)
	tm, err := matrix.WrapDense(nb, nb, nb, ar.take(nb*nb))
	if err != nil {
		return err
	}
	wbuf := ar.rest()

	for i := ((k - 1) / nb) * nb; i >= 0; i -= nb {
		ib := min(nb, k-i)
		taui := tau[i : i+ib]

		if i+ib < m {
			vblk := a.Slice(i, i+ib, i, n)
			ti := tm.Slice(0, ib, 0, ib)
			if err = BlockFactor(Forward, RowStore, vblk, taui, ti); err != nil {
				return err
			}
			if err = BlockApply(blas.Right, blas.ConjTrans, Forward, RowStore,
				vblk, ti, a.Slice(i+ib, m, i, n), wbuf); err != nil {
				return err
			}
		}
		if err = GenerateLQUnblocked(a.Slice(i, i+ib, i, n), taui, wbuf); err != nil {
			return err
		}
		matrix.Fill(a.Slice(i, i+ib, 0, i), 0)
	}

	return nil
}
