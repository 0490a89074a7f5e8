package householder_test

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/lvlinalg/blas"
	"github.com/katalvlaran/lvlinalg/matrix"
)

// randReal fills an m×n matrix with standard normals.
func randReal(rnd *rand.Rand, m, n int) *matrix.Dense[float64] {
	a, _ := matrix.NewDense[float64](m, n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			a.Set(i, j, rnd.NormFloat64())
		}
	}

	return a
}

// randComplex fills an m×n matrix with complex standard normals.
func randComplex(rnd *rand.Rand, m, n int) *matrix.Dense[complex128] {
	a, _ := matrix.NewDense[complex128](m, n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			a.Set(i, j, complex(rnd.NormFloat64(), rnd.NormFloat64()))
		}
	}

	return a
}

// orthoError returns the max-norm departure of qᴴ·q from the identity,
// the standard orthonormality residual for generated Q columns.
func orthoError[T matrix.Scalar](q matrix.Matrix[T]) float64 {
	n := q.Cols()
	g, _ := matrix.NewDense[T](n, n)
	blas.Gemm(blas.ConjTrans, blas.NoTrans, matrix.FromReal[T](1), q, q, 0, g)

	var worst float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d := g.At(i, j)
			if i == j {
				d -= matrix.FromReal[T](1)
			}
			if e := math.Sqrt(matrix.Abs2(d)); e > worst {
				worst = e
			}
		}
	}

	return worst
}

// rowOrthoError is orthoError for row-orthonormal matrices: q·qᴴ − I.
func rowOrthoError[T matrix.Scalar](q matrix.Matrix[T]) float64 {
	m := q.Rows()
	g, _ := matrix.NewDense[T](m, m)
	blas.Gemm(blas.NoTrans, blas.ConjTrans, matrix.FromReal[T](1), q, q, 0, g)

	var worst float64
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			d := g.At(i, j)
			if i == j {
				d -= matrix.FromReal[T](1)
			}
			if e := math.Sqrt(matrix.Abs2(d)); e > worst {
				worst = e
			}
		}
	}

	return worst
}

// maxDiff returns the largest squared-magnitude elementwise difference.
func maxDiff[T matrix.Scalar](a, b matrix.Matrix[T]) float64 {
	var worst float64
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if e := math.Sqrt(matrix.Abs2(a.At(i, j) - b.At(i, j))); e > worst {
				worst = e
			}
		}
	}

	return worst
}

// eye returns a fresh n×n identity.
func eye[T matrix.Scalar](n int) *matrix.Dense[T] {
	m, _ := matrix.NewDense[T](n, n)
	matrix.Eye[T](m)

	return m
}
