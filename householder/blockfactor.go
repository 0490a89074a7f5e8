// SPDX-License-Identifier: MIT
package householder

import (
	"github.com/katalvlaran/lvlinalg/blas"
	"github.com/katalvlaran/lvlinalg/matrix"
)

// BlockFactor forms the triangular factor T of a block of k elementary
// reflectors held in V, so that the block operator is
//
//	H = I − V·T·Vᴴ   (ColumnStore)
//	H = I − Vᴴ·T·V   (RowStore)
//
// With dir == Forward the reflectors compose H(0)·H(1)···H(k−1) and T
// is upper triangular; with Backward they compose in reverse and T is
// lower triangular. Only the triangle of tf named by the direction is
// written; the opposite triangle is left untouched.
//
// V is read-only: the implicit unit entries on the reflector fronts
// are accounted for, not read, so V may keep factorization data there.
//
// Stage 1 (Validate): flags, operand shapes against k = len(tau).
// Stage 2 (Recur): column i of T from the already-built leading (or
// trailing) triangle, one Gemv/Gemm plus one Trmv per reflector.
// Complexity: O(k² × ℓ) for reflectors of length ℓ.
func BlockFactor[T matrix.Scalar](dir Direction, store StoreMode, v matrix.Matrix[T], tau []T, tf matrix.Matrix[T]) error {
	if v == nil {
		return argErrorf("BlockFactor", 3, "v", ErrNilMatrix)
	}
	if tf == nil {
		return argErrorf("BlockFactor", 5, "tf", ErrNilMatrix)
	}
	if dir != Forward && dir != Backward {
		return argErrorf("BlockFactor", 1, "dir", ErrBadFlag)
	}

	k := len(tau)
	var l int
	switch store {
	case ColumnStore:
		l = v.Rows()
		if v.Cols() != k {
			return argErrorf("BlockFactor", 3, "v", ErrDimensionMismatch)
		}
	case RowStore:
		l = v.Cols()
		if v.Rows() != k {
			return argErrorf("BlockFactor", 3, "v", ErrDimensionMismatch)
		}
	default:
		return argErrorf("BlockFactor", 2, "store", ErrBadFlag)
	}
	if k > l {
		return argErrorf("BlockFactor", 4, "tau", ErrTooManyReflectors)
	}
	if tf.Rows() < k || tf.Cols() < k {
		return argErrorf("BlockFactor", 5, "tf", ErrDimensionMismatch)
	}
	if k == 0 {
		return nil
	}

	one := matrix.FromReal[T](1)
	switch dir {
	case Forward:
		for i := 0; i < k; i++ {
			if tau[i] == 0 {
				// H(i) is the identity, so column i of T vanishes.
				for j := 0; j <= i; j++ {
					tf.Set(j, i, 0)
				}
				continue
			}

			ti := matrix.Col[T](tf, i).Slice(0, i)
			switch store {
			case ColumnStore:
				// t = −tau(i) · V(:, 0:i)ᴴ · v(i), with the unit entry
				// of v(i) contributed explicitly.
				for j := 0; j < i; j++ {
					ti.Set(j, -tau[i]*matrix.Conj(v.At(i, j)))
				}
				blas.Gemv(blas.ConjTrans, -tau[i],
					v.Slice(i+1, l, 0, i), matrix.Col[T](v, i).Slice(i+1, l),
					one, ti)
			case RowStore:
				// t = −tau(i) · V(0:i, :) · v(i), v(i) = V(i, :)ᴴ.
				for j := 0; j < i; j++ {
					ti.Set(j, -tau[i]*v.At(j, i))
				}
				blas.Gemm(blas.NoTrans, blas.ConjTrans, -tau[i],
					v.Slice(0, i, i+1, l), v.Slice(i, i+1, i+1, l),
					one, tf.Slice(0, i, i, i+1))
			}
			// Fold in the compositions already accumulated.
			blas.Trmv(blas.Upper, blas.NoTrans, blas.NonUnit, tf.Slice(0, i, 0, i), ti)
			tf.Set(i, i, tau[i])
		}
	case Backward:
		for i := k - 1; i >= 0; i-- {
			if tau[i] == 0 {
				for j := i; j < k; j++ {
					tf.Set(j, i, 0)
				}
				continue
			}

			ti := matrix.Col[T](tf, i).Slice(i+1, k)
			// The unit entry of reflector i sits at offset l−k+i.
			front := l - k + i
			switch store {
			case ColumnStore:
				for j := i + 1; j < k; j++ {
					tf.Set(j, i, -tau[i]*matrix.Conj(v.At(front, j)))
				}
				blas.Gemv(blas.ConjTrans, -tau[i],
					v.Slice(0, front, i+1, k), matrix.Col[T](v, i).Slice(0, front),
					one, ti)
			case RowStore:
				for j := i + 1; j < k; j++ {
					tf.Set(j, i, -tau[i]*v.At(j, front))
				}
				blas.Gemm(blas.NoTrans, blas.ConjTrans, -tau[i],
					v.Slice(i+1, k, 0, front), v.Slice(i, i+1, 0, front),
					one, tf.Slice(i+1, k, i, i+1))
			}
			blas.Trmv(blas.Lower, blas.NoTrans, blas.NonUnit, tf.Slice(i+1, k, i+1, k), ti)
			tf.Set(i, i, tau[i])
		}
	}

	return nil
}
