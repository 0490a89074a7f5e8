// SPDX-License-Identifier: MIT
package blas

import "github.com/katalvlaran/lvlinalg/matrix"

// Gemm computes C = alpha·op(A)·op(B) + beta·C, with op(A) of shape
// m×k, op(B) of shape k×n and C of shape m×n. With beta == 0 the
// previous contents of C are ignored.
// Complexity: O(m × n × k).
func Gemm[T matrix.Scalar](tA, tB Transpose, alpha T, a, b matrix.Matrix[T], beta T, c matrix.Matrix[T]) {
	m, n := c.Rows(), c.Cols()
	k := opRows(tB, b)
	if opRows(tA, a) != m || opCols(tA, a) != k || opCols(tB, b) != n {
		badShape("Gemm")
	}

	scaleMat(beta, c)
	if alpha == 0 || k == 0 {
		return
	}

	aAt := opAt(tA, a)
	bAt := opAt(tB, b)

	// Hoist alpha·a(i,p) out of the innermost loop and skip zero
	// contributions, so panels with structural zeros cost nothing.
	var i, p, j int
	var aip T
	for i = 0; i < m; i++ {
		for p = 0; p < k; p++ {
			aip = alpha * aAt(i, p)
			if aip == 0 {
				continue
			}
			for j = 0; j < n; j++ {
				c.Set(i, j, c.At(i, j)+aip*bAt(p, j))
			}
		}
	}
}

// Trmm computes, in place,
//
//	B = alpha·op(A)·B   (side == Left)
//	B = alpha·B·op(A)   (side == Right)
//
// where A is triangular of order rows(B) or cols(B) respectively and
// only the triangle named by ul is read. Loop orders follow the
// classic reference kernel so the update is safe in place.
// Complexity: O(n² × m) for an n-order triangle.
func Trmm[T matrix.Scalar](side Side, ul Uplo, t Transpose, d Diag, alpha T, a, b matrix.Matrix[T]) {
	m, n := b.Rows(), b.Cols()
	order := m
	if side == Right {
		order = n
	} else if side != Left {
		badFlag("Trmm")
	}
	if a.Rows() != order || a.Cols() != order {
		badShape("Trmm")
	}
	if t != NoTrans && t != Trans && t != ConjTrans {
		badFlag("Trmm")
	}
	if ul != Upper && ul != Lower {
		badFlag("Trmm")
	}

	if alpha == 0 {
		scaleMat(alpha, b)
		return
	}

	conj := t == ConjTrans
	nounit := d == NonUnit
	var i, j, p int
	var tmp T

	switch {
	case side == Left && t == NoTrans && ul == Upper:
		for j = 0; j < n; j++ {
			for p = 0; p < m; p++ {
				if b.At(p, j) == 0 {
					continue
				}
				tmp = alpha * b.At(p, j)
				for i = 0; i < p; i++ {
					b.Set(i, j, b.At(i, j)+tmp*a.At(i, p))
				}
				if nounit {
					tmp *= a.At(p, p)
				}
				b.Set(p, j, tmp)
			}
		}
	case side == Left && t == NoTrans: // Lower
		for j = 0; j < n; j++ {
			for p = m - 1; p >= 0; p-- {
				if b.At(p, j) == 0 {
					continue
				}
				tmp = alpha * b.At(p, j)
				b.Set(p, j, tmp)
				if nounit {
					b.Set(p, j, b.At(p, j)*a.At(p, p))
				}
				for i = p + 1; i < m; i++ {
					b.Set(i, j, b.At(i, j)+tmp*a.At(i, p))
				}
			}
		}
	case side == Left && ul == Upper: // Trans or ConjTrans
		for j = 0; j < n; j++ {
			for i = m - 1; i >= 0; i-- {
				tmp = b.At(i, j)
				if nounit {
					tmp *= maybeConj(a.At(i, i), conj)
				}
				for p = 0; p < i; p++ {
					tmp += maybeConj(a.At(p, i), conj) * b.At(p, j)
				}
				b.Set(i, j, alpha*tmp)
			}
		}
	case side == Left: // Trans or ConjTrans, Lower
		for j = 0; j < n; j++ {
			for i = 0; i < m; i++ {
				tmp = b.At(i, j)
				if nounit {
					tmp *= maybeConj(a.At(i, i), conj)
				}
				for p = i + 1; p < m; p++ {
					tmp += maybeConj(a.At(p, i), conj) * b.At(p, j)
				}
				b.Set(i, j, alpha*tmp)
			}
		}
	case t == NoTrans && ul == Upper: // Right
		for j = n - 1; j >= 0; j-- {
			tmp = alpha
			if nounit {
				tmp *= a.At(j, j)
			}
			for i = 0; i < m; i++ {
				b.Set(i, j, tmp*b.At(i, j))
			}
			for p = 0; p < j; p++ {
				if a.At(p, j) == 0 {
					continue
				}
				tmp = alpha * a.At(p, j)
				for i = 0; i < m; i++ {
					b.Set(i, j, b.At(i, j)+tmp*b.At(i, p))
				}
			}
		}
	case t == NoTrans: // Right, Lower
		for j = 0; j < n; j++ {
			tmp = alpha
			if nounit {
				tmp *= a.At(j, j)
			}
			for i = 0; i < m; i++ {
				b.Set(i, j, tmp*b.At(i, j))
			}
			for p = j + 1; p < n; p++ {
				if a.At(p, j) == 0 {
					continue
				}
				tmp = alpha * a.At(p, j)
				for i = 0; i < m; i++ {
					b.Set(i, j, b.At(i, j)+tmp*b.At(i, p))
				}
			}
		}
	case ul == Upper: // Right, Trans or ConjTrans
		for p = 0; p < n; p++ {
			for j = 0; j < p; j++ {
				if a.At(j, p) == 0 {
					continue
				}
				tmp = alpha * maybeConj(a.At(j, p), conj)
				for i = 0; i < m; i++ {
					b.Set(i, j, b.At(i, j)+tmp*b.At(i, p))
				}
			}
			tmp = alpha
			if nounit {
				tmp *= maybeConj(a.At(p, p), conj)
			}
			if tmp != 1 {
				for i = 0; i < m; i++ {
					b.Set(i, p, tmp*b.At(i, p))
				}
			}
		}
	default: // Right, Trans or ConjTrans, Lower
		for p = n - 1; p >= 0; p-- {
			for j = p + 1; j < n; j++ {
				if a.At(j, p) == 0 {
					continue
				}
				tmp = alpha * maybeConj(a.At(j, p), conj)
				for i = 0; i < m; i++ {
					b.Set(i, j, b.At(i, j)+tmp*b.At(i, p))
				}
			}
			tmp = alpha
			if nounit {
				tmp *= maybeConj(a.At(p, p), conj)
			}
			if tmp != 1 {
				for i = 0; i < m; i++ {
					b.Set(i, p, tmp*b.At(i, p))
				}
			}
		}
	}
}

// opRows returns the row count of op(A).
func opRows[T matrix.Scalar](t Transpose, a matrix.Matrix[T]) int {
	if t == NoTrans {
		return a.Rows()
	}

	return a.Cols()
}

// opCols returns the column count of op(A).
func opCols[T matrix.Scalar](t Transpose, a matrix.Matrix[T]) int {
	if t == NoTrans {
		return a.Cols()
	}

	return a.Rows()
}

// opAt returns an accessor for op(A), fixing the transpose and
// conjugation decisions once instead of per element.
func opAt[T matrix.Scalar](t Transpose, a matrix.Matrix[T]) func(i, j int) T {
	switch t {
	case NoTrans:
		return a.At
	case Trans:
		return func(i, j int) T { return a.At(j, i) }
	case ConjTrans:
		return func(i, j int) T { return matrix.Conj(a.At(j, i)) }
	default:
		badFlag("opAt")
		return nil
	}
}

// scaleMat folds a beta factor into c, treating beta == 0 as an
// overwrite.
func scaleMat[T matrix.Scalar](beta T, c matrix.Matrix[T]) {
	if beta == 1 {
		return
	}
	var i, j int
	for i = 0; i < c.Rows(); i++ {
		for j = 0; j < c.Cols(); j++ {
			if beta == 0 {
				c.Set(i, j, 0)
			} else {
				c.Set(i, j, beta*c.At(i, j))
			}
		}
	}
}
