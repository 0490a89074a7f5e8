// SPDX-License-Identifier: MIT
package blas

import "github.com/katalvlaran/lvlinalg/matrix"

// Gemv computes y = alpha·op(A)·x + beta·y, where A is m×n and op is
// selected by t. With beta == 0 the previous contents of y are ignored,
// so y may start uninitialized.
// Complexity: O(m × n).
func Gemv[T matrix.Scalar](t Transpose, alpha T, a matrix.Matrix[T], x matrix.Vector[T], beta T, y matrix.Vector[T]) {
	m, n := a.Rows(), a.Cols()
	switch t {
	case NoTrans:
		if x.Len() != n || y.Len() != m {
			badShape("Gemv")
		}
	case Trans, ConjTrans:
		if x.Len() != m || y.Len() != n {
			badShape("Gemv")
		}
	default:
		badFlag("Gemv")
	}

	// Stage 1: fold beta into y.
	scaleVec(beta, y)
	if alpha == 0 {
		return
	}

	// Stage 2: accumulate the product, one result element at a time.
	var i, j int
	var tmp T
	switch t {
	case NoTrans:
		for i = 0; i < m; i++ {
			tmp = 0
			for j = 0; j < n; j++ {
				tmp += a.At(i, j) * x.At(j)
			}
			y.Set(i, y.At(i)+alpha*tmp)
		}
	case Trans:
		for j = 0; j < n; j++ {
			tmp = 0
			for i = 0; i < m; i++ {
				tmp += a.At(i, j) * x.At(i)
			}
			y.Set(j, y.At(j)+alpha*tmp)
		}
	case ConjTrans:
		for j = 0; j < n; j++ {
			tmp = 0
			for i = 0; i < m; i++ {
				tmp += matrix.Conj(a.At(i, j)) * x.At(i)
			}
			y.Set(j, y.At(j)+alpha*tmp)
		}
	}
}

// Ger performs the conjugating rank-1 update A += alpha·x·yᴴ, with A
// of shape m×n, x of length m and y of length n. For real scalars the
// conjugation vanishes and this is the ordinary outer-product update.
// Complexity: O(m × n).
func Ger[T matrix.Scalar](alpha T, x, y matrix.Vector[T], a matrix.Matrix[T]) {
	m, n := a.Rows(), a.Cols()
	if x.Len() != m || y.Len() != n {
		badShape("Ger")
	}
	if alpha == 0 {
		return
	}

	var i, j int
	var xi T
	for i = 0; i < m; i++ {
		xi = alpha * x.At(i)
		if xi == 0 {
			continue
		}
		for j = 0; j < n; j++ {
			a.Set(i, j, a.At(i, j)+xi*matrix.Conj(y.At(j)))
		}
	}
}

// Trmv computes x = op(A)·x in place, where A is n×n and only the
// triangle named by ul is read. The loop directions are chosen so each
// result element is written only after every element it depends on has
// been read.
// Complexity: O(n²).
func Trmv[T matrix.Scalar](ul Uplo, t Transpose, d Diag, a matrix.Matrix[T], x matrix.Vector[T]) {
	n := a.Rows()
	if a.Cols() != n || x.Len() != n {
		badShape("Trmv")
	}
	if ul != Upper && ul != Lower {
		badFlag("Trmv")
	}
	if d != NonUnit && d != Unit {
		badFlag("Trmv")
	}

	conj := t == ConjTrans
	var i, j int
	var tmp T
	switch {
	case t == NoTrans && ul == Upper:
		// x[i] depends on x[j] for j ≥ i: walk i ascending.
		for i = 0; i < n; i++ {
			tmp = x.At(i)
			if d == NonUnit {
				tmp *= a.At(i, i)
			}
			for j = i + 1; j < n; j++ {
				tmp += a.At(i, j) * x.At(j)
			}
			x.Set(i, tmp)
		}
	case t == NoTrans && ul == Lower:
		// x[i] depends on x[j] for j ≤ i: walk i descending.
		for i = n - 1; i >= 0; i-- {
			tmp = x.At(i)
			if d == NonUnit {
				tmp *= a.At(i, i)
			}
			for j = 0; j < i; j++ {
				tmp += a.At(i, j) * x.At(j)
			}
			x.Set(i, tmp)
		}
	case ul == Upper: // Trans or ConjTrans
		// result[j] draws on x[i] for i ≤ j: walk j descending.
		for j = n - 1; j >= 0; j-- {
			tmp = x.At(j)
			if d == NonUnit {
				tmp *= maybeConj(a.At(j, j), conj)
			}
			for i = 0; i < j; i++ {
				tmp += maybeConj(a.At(i, j), conj) * x.At(i)
			}
			x.Set(j, tmp)
		}
	default: // Trans or ConjTrans, Lower
		// result[j] draws on x[i] for i ≥ j: walk j ascending.
		for j = 0; j < n; j++ {
			tmp = x.At(j)
			if d == NonUnit {
				tmp *= maybeConj(a.At(j, j), conj)
			}
			for i = j + 1; i < n; i++ {
				tmp += maybeConj(a.At(i, j), conj) * x.At(i)
			}
			x.Set(j, tmp)
		}
	}
}

// scaleVec folds a beta factor into y, treating beta == 0 as an
// overwrite so uninitialized input never leaks through.
func scaleVec[T matrix.Scalar](beta T, y matrix.Vector[T]) {
	var i int
	switch beta {
	case 1:
		return
	case 0:
		for i = 0; i < y.Len(); i++ {
			y.Set(i, 0)
		}
	default:
		for i = 0; i < y.Len(); i++ {
			y.Set(i, beta*y.At(i))
		}
	}
}

// maybeConj conjugates v when conj is set.
func maybeConj[T matrix.Scalar](v T, conj bool) T {
	if conj {
		return matrix.Conj(v)
	}

	return v
}
