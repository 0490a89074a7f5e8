package blas_test

import (
	"errors"
	"testing"

	"golang.org/x/exp/rand"
	gblas "gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/katalvlaran/lvlinalg/blas"
	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/stretchr/testify/require"
)

// randomDense fills an m×n row-major matrix with standard normals.
func randomDense(rnd *rand.Rand, m, n int) *matrix.Dense[float64] {
	a, _ := matrix.NewDense[float64](m, n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			a.Set(i, j, rnd.NormFloat64())
		}
	}

	return a
}

// toGeneral copies a view into the blas64 layout for the oracle.
func toGeneral(a matrix.Matrix[float64]) blas64.General {
	g := blas64.General{Rows: a.Rows(), Cols: a.Cols(), Stride: max(1, a.Cols()), Data: make([]float64, a.Rows()*a.Cols())}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			g.Data[i*g.Stride+j] = a.At(i, j)
		}
	}

	return g
}

func TestScal(t *testing.T) {
	x := matrix.WrapVec([]float64{1, 2, 3})
	blas.Scal(2.0, x)
	require.Equal(t, 4.0, x.At(1))

	z := matrix.WrapVec([]complex128{1 + 1i, 2})
	blas.Scal(complex128(1i), z)
	require.Equal(t, complex128(-1+1i), z.At(0))
}

func TestConjugate(t *testing.T) {
	z := matrix.WrapVec([]complex128{1 + 2i, 3 - 4i})
	blas.Conjugate[complex128](z)
	require.Equal(t, complex128(1-2i), z.At(0))
	require.Equal(t, complex128(3+4i), z.At(1))

	x := matrix.WrapVec([]float64{1, -2})
	blas.Conjugate[float64](x)
	require.Equal(t, -2.0, x.At(1))
}

func TestDotcAxpyNrm2(t *testing.T) {
	x := matrix.WrapVec([]complex128{1 + 1i, 2})
	y := matrix.WrapVec([]complex128{3, 1i})
	// (1-1i)*3 + 2*1i = 3 - 3i + 2i = 3 - 1i
	require.Equal(t, complex128(3-1i), blas.Dotc(x, y))

	blas.Axpy(complex128(2), x, y)
	require.Equal(t, complex128(5+2i), y.At(0))

	v := matrix.WrapVec([]float64{3, 4})
	require.InDelta(t, 5.0, blas.Nrm2(v), 1e-15)
}

func TestGemv_MatchesBlas64(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	const m, n = 7, 5
	a := randomDense(rnd, m, n)

	for _, tr := range []blas.Transpose{blas.NoTrans, blas.Trans, blas.ConjTrans} {
		xn, yn := n, m
		if tr != blas.NoTrans {
			xn, yn = m, n
		}
		xd := make([]float64, xn)
		yd := make([]float64, yn)
		for i := range xd {
			xd[i] = rnd.NormFloat64()
		}
		for i := range yd {
			yd[i] = rnd.NormFloat64()
		}

		want := make([]float64, yn)
		copy(want, yd)
		gtr := gblas.NoTrans
		if tr != blas.NoTrans {
			gtr = gblas.Trans
		}
		blas64.Gemv(gtr, 0.5, toGeneral(a),
			blas64.Vector{N: xn, Inc: 1, Data: xd},
			-0.25, blas64.Vector{N: yn, Inc: 1, Data: want})

		y := matrix.WrapVec(yd)
		blas.Gemv(tr, 0.5, a, matrix.WrapVec(xd), -0.25, y)
		for i := 0; i < yn; i++ {
			require.InDelta(t, want[i], y.At(i), 1e-12, "trans=%v i=%d", tr, i)
		}
	}
}

func TestGer_MatchesBlas64(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	const m, n = 6, 4
	a := randomDense(rnd, m, n)
	xd := make([]float64, m)
	yd := make([]float64, n)
	for i := range xd {
		xd[i] = rnd.NormFloat64()
	}
	for i := range yd {
		yd[i] = rnd.NormFloat64()
	}

	want := toGeneral(a)
	blas64.Ger(1.5, blas64.Vector{N: m, Inc: 1, Data: xd}, blas64.Vector{N: n, Inc: 1, Data: yd}, want)

	blas.Ger(1.5, matrix.WrapVec(xd), matrix.WrapVec(yd), a)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			require.InDelta(t, want.Data[i*want.Stride+j], a.At(i, j), 1e-12)
		}
	}
}

func TestGer_ConjugatesY(t *testing.T) {
	a, _ := matrix.NewDense[complex128](1, 1)
	x := matrix.WrapVec([]complex128{2})
	y := matrix.WrapVec([]complex128{1 + 1i})
	blas.Ger(complex128(1), x, y, a)
	// 2 * conj(1+1i) = 2 - 2i
	require.Equal(t, complex128(2-2i), a.At(0, 0))
}

func TestGemm_MatchesBlas64(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	const m, n, k = 5, 6, 4

	for _, tA := range []blas.Transpose{blas.NoTrans, blas.Trans, blas.ConjTrans} {
		for _, tB := range []blas.Transpose{blas.NoTrans, blas.Trans, blas.ConjTrans} {
			ar, ac := m, k
			if tA != blas.NoTrans {
				ar, ac = k, m
			}
			br, bc := k, n
			if tB != blas.NoTrans {
				br, bc = n, k
			}
			a := randomDense(rnd, ar, ac)
			b := randomDense(rnd, br, bc)
			c := randomDense(rnd, m, n)

			want := toGeneral(c)
			g := func(tr blas.Transpose) gblas.Transpose {
				if tr == blas.NoTrans {
					return gblas.NoTrans
				}
				return gblas.Trans
			}
			blas64.Gemm(g(tA), g(tB), 2.0, toGeneral(a), toGeneral(b), -1.0, want)

			blas.Gemm(tA, tB, 2.0, a, b, -1.0, c)
			for i := 0; i < m; i++ {
				for j := 0; j < n; j++ {
					require.InDelta(t, want.Data[i*want.Stride+j], c.At(i, j), 1e-12,
						"tA=%v tB=%v (%d,%d)", tA, tB, i, j)
				}
			}
		}
	}
}

// trmvOracle multiplies through the full explicit triangle.
func trmvOracle(ul blas.Uplo, tr blas.Transpose, d blas.Diag, a matrix.Matrix[float64], x []float64) []float64 {
	n := len(x)
	full, _ := matrix.NewDense[float64](n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			inTri := (ul == blas.Upper && j >= i) || (ul == blas.Lower && j <= i)
			switch {
			case i == j && d == blas.Unit:
				full.Set(i, j, 1)
			case inTri:
				full.Set(i, j, a.At(i, j))
			}
		}
	}
	out := make([]float64, n)
	blas.Gemv(tr, 1.0, full, matrix.WrapVec(x), 0.0, matrix.WrapVec(out))

	return out
}

func TestTrmv_AllVariants(t *testing.T) {
	rnd := rand.New(rand.NewSource(4))
	const n = 6
	a := randomDense(rnd, n, n)

	for _, ul := range []blas.Uplo{blas.Upper, blas.Lower} {
		for _, tr := range []blas.Transpose{blas.NoTrans, blas.Trans, blas.ConjTrans} {
			for _, d := range []blas.Diag{blas.NonUnit, blas.Unit} {
				x := make([]float64, n)
				for i := range x {
					x[i] = rnd.NormFloat64()
				}
				want := trmvOracle(ul, tr, d, a, x)

				v := matrix.WrapVec(x)
				blas.Trmv(ul, tr, d, a, v)
				for i := 0; i < n; i++ {
					require.InDelta(t, want[i], v.At(i), 1e-12,
						"ul=%v tr=%v d=%v i=%d", ul, tr, d, i)
				}
			}
		}
	}
}

func TestTrmm_AllVariants(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	const m, n = 4, 5

	for _, side := range []blas.Side{blas.Left, blas.Right} {
		order := m
		if side == blas.Right {
			order = n
		}
		for _, ul := range []blas.Uplo{blas.Upper, blas.Lower} {
			for _, tr := range []blas.Transpose{blas.NoTrans, blas.Trans, blas.ConjTrans} {
				for _, d := range []blas.Diag{blas.NonUnit, blas.Unit} {
					a := randomDense(rnd, order, order)
					b := randomDense(rnd, m, n)

					// Oracle: explicit full triangle times B via Gemm.
					full, _ := matrix.NewDense[float64](order, order)
					for i := 0; i < order; i++ {
						for j := 0; j < order; j++ {
							inTri := (ul == blas.Upper && j >= i) || (ul == blas.Lower && j <= i)
							switch {
							case i == j && d == blas.Unit:
								full.Set(i, j, 1)
							case inTri:
								full.Set(i, j, a.At(i, j))
							}
						}
					}
					want, _ := matrix.NewDense[float64](m, n)
					if side == blas.Left {
						blas.Gemm(tr, blas.NoTrans, 1.5, full, b, 0.0, want)
					} else {
						blas.Gemm(blas.NoTrans, tr, 1.5, b, full, 0.0, want)
					}

					blas.Trmm(side, ul, tr, d, 1.5, a, b)
					for i := 0; i < m; i++ {
						for j := 0; j < n; j++ {
							require.InDelta(t, want.At(i, j), b.At(i, j), 1e-12,
								"side=%v ul=%v tr=%v d=%v (%d,%d)", side, ul, tr, d, i, j)
						}
					}
				}
			}
		}
	}
}

func TestCopyAdd(t *testing.T) {
	a, _ := matrix.WrapDense(2, 3, 3, []float64{1, 2, 3, 4, 5, 6})

	b, _ := matrix.NewDense[float64](3, 2)
	blas.Copy(blas.Trans, 2.0, a, b)
	require.Equal(t, 2.0, b.At(0, 0))
	require.Equal(t, 8.0, b.At(0, 1))
	require.Equal(t, 12.0, b.At(2, 1))

	blas.Add(blas.Trans, -1.0, a, b)
	require.Equal(t, 1.0, b.At(0, 0))
	require.Equal(t, 6.0, b.At(2, 1))
}

func TestShapePanicsCarrySentinel(t *testing.T) {
	a, _ := matrix.NewDense[float64](2, 3)
	x := matrix.WrapVec(make([]float64, 2)) // wrong length for NoTrans
	y := matrix.WrapVec(make([]float64, 2))

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		require.True(t, errors.Is(err, blas.ErrShape))
	}()
	blas.Gemv(blas.NoTrans, 1.0, a, x, 0.0, y)
}
