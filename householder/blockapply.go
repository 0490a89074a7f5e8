// SPDX-License-Identifier: MIT
package householder

import (
	"github.com/katalvlaran/lvlinalg/blas"
	"github.com/katalvlaran/lvlinalg/matrix"
)

// BlockApply overwrites C with H·C, Hᴴ·C, C·H or C·Hᴴ, where H is the
// block reflector described by V and the triangular factor tf produced
// by BlockFactor with the same direction and storage. trans selects H
// (NoTrans) or Hᴴ (ConjTrans); side selects which flank of C the
// operator multiplies.
//
// The implicit unit triangle of V is honored via unit-diagonal
// triangular multiplies; V's stored triangle is never read there, so C
// may share storage layout conventions with a factorization result.
//
// work provides scratch for one cols(C)×k (Left) or rows(C)×k (Right)
// panel; a short or nil buffer triggers a fallback allocation.
// Complexity: O(k × rows × cols).
func BlockApply[T matrix.Scalar](side blas.Side, trans blas.Transpose, dir Direction, store StoreMode,
	v, tf, c matrix.Matrix[T], work []T) error {

	if v == nil || tf == nil || c == nil {
		return argErrorf("BlockApply", 5, "v/tf/c", ErrNilMatrix)
	}
	if side != blas.Left && side != blas.Right {
		return argErrorf("BlockApply", 1, "side", ErrBadFlag)
	}
	if trans != blas.NoTrans && trans != blas.ConjTrans {
		return argErrorf("BlockApply", 2, "trans", ErrBadFlag)
	}
	if dir != Forward && dir != Backward {
		return argErrorf("BlockApply", 3, "dir", ErrBadFlag)
	}

	// Reflector length is the extent of C on the side being applied.
	m, n := c.Rows(), c.Cols()
	l := m
	if side == blas.Right {
		l = n
	}

	var k int
	switch store {
	case ColumnStore:
		k = v.Cols()
		if v.Rows() != l {
			return argErrorf("BlockApply", 5, "v", ErrDimensionMismatch)
		}
	case RowStore:
		k = v.Rows()
		if v.Cols() != l {
			return argErrorf("BlockApply", 5, "v", ErrDimensionMismatch)
		}
	default:
		return argErrorf("BlockApply", 4, "store", ErrBadFlag)
	}
	if k > l {
		return argErrorf("BlockApply", 5, "v", ErrTooManyReflectors)
	}
	if tf.Rows() < k || tf.Cols() < k {
		return argErrorf("BlockApply", 6, "tf", ErrDimensionMismatch)
	}
	if k == 0 || m == 0 || n == 0 {
		return nil
	}

	// tT is the transposition applied to the triangular factor. On the
	// left the operator reaches C conjugated once more than on the
	// right, so the request flips.
	tT := trans
	if side == blas.Left {
		if trans == blas.NoTrans {
			tT = blas.ConjTrans
		} else {
			tT = blas.NoTrans
		}
	}
	// Forward factors are upper triangular, backward ones lower.
	uplo := blas.Upper
	if dir == Backward {
		uplo = blas.Lower
	}

	one := matrix.FromReal[T](1)
	negOne := matrix.FromReal[T](-1)
	tt := tf.Slice(0, k, 0, k)

	// W holds the k-wide intermediate panel.
	rc := n
	if side == blas.Right {
		rc = m
	}
	wbuf := ensureWork(work, rc*k)
	w, err := matrix.WrapDense(rc, k, k, wbuf)
	if err != nil {
		return err
	}

	switch {
	case side == blas.Left && dir == Forward && store == ColumnStore:
		// V = [V1; V2] with V1 unit lower; C = [C1; C2].
		v1, v2 := v.Slice(0, k, 0, k), v.Slice(k, l, 0, k)
		c1, c2 := c.Slice(0, k, 0, n), c.Slice(k, m, 0, n)
		blas.Copy(blas.ConjTrans, one, c1, w)
		blas.Trmm(blas.Right, blas.Lower, blas.NoTrans, blas.Unit, one, v1, w)
		blas.Gemm(blas.ConjTrans, blas.NoTrans, one, c2, v2, one, w)
		blas.Trmm(blas.Right, uplo, tT, blas.NonUnit, one, tt, w)
		blas.Gemm(blas.NoTrans, blas.ConjTrans, negOne, v2, w, one, c2)
		blas.Trmm(blas.Right, blas.Lower, blas.ConjTrans, blas.Unit, one, v1, w)
		blas.Add(blas.ConjTrans, negOne, w, c1)

	case side == blas.Left && dir == Backward && store == ColumnStore:
		// V = [V1; V2] with V2 unit upper at the bottom; C2 trailing.
		v1, v2 := v.Slice(0, l-k, 0, k), v.Slice(l-k, l, 0, k)
		c1, c2 := c.Slice(0, m-k, 0, n), c.Slice(m-k, m, 0, n)
		blas.Copy(blas.ConjTrans, one, c2, w)
		blas.Trmm(blas.Right, blas.Upper, blas.NoTrans, blas.Unit, one, v2, w)
		blas.Gemm(blas.ConjTrans, blas.NoTrans, one, c1, v1, one, w)
		blas.Trmm(blas.Right, uplo, tT, blas.NonUnit, one, tt, w)
		blas.Gemm(blas.NoTrans, blas.ConjTrans, negOne, v1, w, one, c1)
		blas.Trmm(blas.Right, blas.Upper, blas.ConjTrans, blas.Unit, one, v2, w)
		blas.Add(blas.ConjTrans, negOne, w, c2)

	case side == blas.Right && dir == Forward && store == ColumnStore:
		v1, v2 := v.Slice(0, k, 0, k), v.Slice(k, l, 0, k)
		c1, c2 := c.Slice(0, m, 0, k), c.Slice(0, m, k, n)
		blas.Copy(blas.NoTrans, one, c1, w)
		blas.Trmm(blas.Right, blas.Lower, blas.NoTrans, blas.Unit, one, v1, w)
		blas.Gemm(blas.NoTrans, blas.NoTrans, one, c2, v2, one, w)
		blas.Trmm(blas.Right, uplo, tT, blas.NonUnit, one, tt, w)
		blas.Gemm(blas.NoTrans, blas.ConjTrans, negOne, w, v2, one, c2)
		blas.Trmm(blas.Right, blas.Lower, blas.ConjTrans, blas.Unit, one, v1, w)
		blas.Add(blas.NoTrans, negOne, w, c1)

	case side == blas.Right && dir == Backward && store == ColumnStore:
		v1, v2 := v.Slice(0, l-k, 0, k), v.Slice(l-k, l, 0, k)
		c1, c2 := c.Slice(0, m, 0, n-k), c.Slice(0, m, n-k, n)
		blas.Copy(blas.NoTrans, one, c2, w)
		blas.Trmm(blas.Right, blas.Upper, blas.NoTrans, blas.Unit, one, v2, w)
		blas.Gemm(blas.NoTrans, blas.NoTrans, one, c1, v1, one, w)
		blas.Trmm(blas.Right, uplo, tT, blas.NonUnit, one, tt, w)
		blas.Gemm(blas.NoTrans, blas.ConjTrans, negOne, w, v1, one, c1)
		blas.Trmm(blas.Right, blas.Upper, blas.ConjTrans, blas.Unit, one, v2, w)
		blas.Add(blas.NoTrans, negOne, w, c2)

	case side == blas.Left && dir == Forward && store == RowStore:
		// V = [V1 V2] with V1 unit upper; C = [C1; C2].
		v1, v2 := v.Slice(0, k, 0, k), v.Slice(0, k, k, l)
		c1, c2 := c.Slice(0, k, 0, n), c.Slice(k, m, 0, n)
		blas.Copy(blas.ConjTrans, one, c1, w)
		blas.Trmm(blas.Right, blas.Upper, blas.ConjTrans, blas.Unit, one, v1, w)
		blas.Gemm(blas.ConjTrans, blas.ConjTrans, one, c2, v2, one, w)
		blas.Trmm(blas.Right, uplo, tT, blas.NonUnit, one, tt, w)
		blas.Gemm(blas.ConjTrans, blas.ConjTrans, negOne, v2, w, one, c2)
		blas.Trmm(blas.Right, blas.Upper, blas.NoTrans, blas.Unit, one, v1, w)
		blas.Add(blas.ConjTrans, negOne, w, c1)

	case side == blas.Left && dir == Backward && store == RowStore:
		// V = [V1 V2] with V2 unit lower at the right end; C2 trailing.
		v1, v2 := v.Slice(0, k, 0, l-k), v.Slice(0, k, l-k, l)
		c1, c2 := c.Slice(0, m-k, 0, n), c.Slice(m-k, m, 0, n)
		blas.Copy(blas.ConjTrans, one, c2, w)
		blas.Trmm(blas.Right, blas.Lower, blas.ConjTrans, blas.Unit, one, v2, w)
		blas.Gemm(blas.ConjTrans, blas.ConjTrans, one, c1, v1, one, w)
		blas.Trmm(blas.Right, uplo, tT, blas.NonUnit, one, tt, w)
		blas.Gemm(blas.ConjTrans, blas.ConjTrans, negOne, v1, w, one, c1)
		blas.Trmm(blas.Right, blas.Lower, blas.NoTrans, blas.Unit, one, v2, w)
		blas.Add(blas.ConjTrans, negOne, w, c2)

	case side == blas.Right && dir == Forward && store == RowStore:
		v1, v2 := v.Slice(0, k, 0, k), v.Slice(0, k, k, l)
		c1, c2 := c.Slice(0, m, 0, k), c.Slice(0, m, k, n)
		blas.Copy(blas.NoTrans, one, c1, w)
		blas.Trmm(blas.Right, blas.Upper, blas.ConjTrans, blas.Unit, one, v1, w)
		blas.Gemm(blas.NoTrans, blas.ConjTrans, one, c2, v2, one, w)
		blas.Trmm(blas.Right, uplo, tT, blas.NonUnit, one, tt, w)
		blas.Gemm(blas.NoTrans, blas.NoTrans, negOne, w, v2, one, c2)
		blas.Trmm(blas.Right, blas.Upper, blas.NoTrans, blas.Unit, one, v1, w)
		blas.Add(blas.NoTrans, negOne, w, c1)

	default: // Right, Backward, RowStore
		v1, v2 := v.Slice(0, k, 0, l-k), v.Slice(0, k, l-k, l)
		c1, c2 := c.Slice(0, m, 0, n-k), c.Slice(0, m, n-k, n)
		blas.Copy(blas.NoTrans, one, c2, w)
		blas.Trmm(blas.Right, blas.Lower, blas.ConjTrans, blas.Unit, one, v2, w)
		blas.Gemm(blas.NoTrans, blas.ConjTrans, one, c1, v1, one, w)
		blas.Trmm(blas.Right, uplo, tT, blas.NonUnit, one, tt, w)
		blas.Gemm(blas.NoTrans, blas.NoTrans, negOne, w, v1, one, c1)
		blas.Trmm(blas.Right, blas.Lower, blas.NoTrans, blas.Unit, one, v2, w)
		blas.Add(blas.NoTrans, negOne, w, c2)
	}

	return nil
}
