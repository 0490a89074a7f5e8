package householder_test

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/lvlinalg/blas"
	"github.com/katalvlaran/lvlinalg/householder"
	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/stretchr/testify/require"
)

func TestFactorQR_Reconstructs(t *testing.T) {
	rnd := rand.New(rand.NewSource(51))
	const m, n = 9, 6

	orig := randComplex(rnd, m, n)
	a := orig.Clone()
	tau := make([]complex128, n)
	require.NoError(t, householder.FactorQR(a, tau, nil))

	// R is the upper triangle of the factored matrix.
	r, _ := matrix.NewDense[complex128](n, n)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			r.Set(i, j, a.At(i, j))
		}
	}
	// The diagonal of R comes out real.
	for i := 0; i < n; i++ {
		require.InDelta(t, 0.0, imag(a.At(i, i)), 1e-13, "R diagonal entry %d", i)
	}

	require.NoError(t, householder.GenerateQ(a, tau, householder.DefaultOptions[complex128]()))
	require.Less(t, orthoError[complex128](a), 1e-13)

	// Q·R must reproduce the input.
	qr, _ := matrix.NewDense[complex128](m, n)
	blas.Gemm(blas.NoTrans, blas.NoTrans, complex128(1), a, r, 0, qr)
	require.Less(t, maxDiff[complex128](orig, qr), 1e-12)
}

func TestFactorLQ_Reconstructs(t *testing.T) {
	rnd := rand.New(rand.NewSource(52))
	const m, n = 6, 9

	orig := randComplex(rnd, m, n)
	a := orig.Clone()
	tau := make([]complex128, m)
	require.NoError(t, householder.FactorLQ(a, tau, nil))

	// L is the lower triangle of the factored matrix.
	l, _ := matrix.NewDense[complex128](m, m)
	for i := 0; i < m; i++ {
		for j := 0; j <= i && j < m; j++ {
			l.Set(i, j, a.At(i, j))
		}
	}
	for i := 0; i < m; i++ {
		require.InDelta(t, 0.0, imag(a.At(i, i)), 1e-13, "L diagonal entry %d", i)
	}

	require.NoError(t, householder.GenerateLQ(a, tau, householder.DefaultOptions[complex128]()))
	require.Less(t, rowOrthoError[complex128](a), 1e-13)

	// L·Q must reproduce the input.
	lq, _ := matrix.NewDense[complex128](m, n)
	blas.Gemm(blas.NoTrans, blas.NoTrans, complex128(1), l, a, 0, lq)
	require.Less(t, maxDiff[complex128](orig, lq), 1e-12)
}

func TestFactorQR_TallAndSquare(t *testing.T) {
	rnd := rand.New(rand.NewSource(53))
	for _, shape := range [][2]int{{5, 5}, {8, 3}, {3, 3}} {
		m, n := shape[0], shape[1]
		orig := randReal(rnd, m, n)
		a := orig.Clone()
		tau := make([]float64, n)
		require.NoError(t, householder.FactorQR(a, tau, nil))

		r, _ := matrix.NewDense[float64](n, n)
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				r.Set(i, j, a.At(i, j))
			}
		}
		require.NoError(t, householder.GenerateQ(a, tau, householder.DefaultOptions[float64]()))

		qr, _ := matrix.NewDense[float64](m, n)
		blas.Gemm(blas.NoTrans, blas.NoTrans, 1.0, a, r, 0.0, qr)
		require.Less(t, maxDiff[float64](orig, qr), 1e-12, "shape %dx%d", m, n)
	}
}

func TestFactorQR_Validation(t *testing.T) {
	err := householder.FactorQR[float64](nil, nil, nil)
	require.ErrorIs(t, err, householder.ErrNilMatrix)

	a, _ := matrix.NewDense[float64](4, 3)
	err = householder.FactorQR(a, make([]float64, 2), nil)
	require.ErrorIs(t, err, householder.ErrDimensionMismatch, "tau shorter than min(m,n)")
}

func TestFactorLQ_Validation(t *testing.T) {
	err := householder.FactorLQ[float64](nil, nil, nil)
	require.ErrorIs(t, err, householder.ErrNilMatrix)

	a, _ := matrix.NewDense[float64](3, 4)
	err = householder.FactorLQ(a, make([]float64, 2), nil)
	require.ErrorIs(t, err, householder.ErrDimensionMismatch)
}
