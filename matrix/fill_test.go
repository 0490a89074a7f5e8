package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/stretchr/testify/require"
)

func TestFill(t *testing.T) {
	m, err := matrix.NewDense[float64](3, 2)
	require.NoError(t, err)
	matrix.Fill(m, 2.5)
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			require.Equal(t, 2.5, m.At(i, j))
		}
	}
}

func TestFill_SubViewOnly(t *testing.T) {
	m, err := matrix.NewDense[float64](3, 3)
	require.NoError(t, err)
	matrix.Fill(m, 1)
	matrix.Fill(m.Slice(0, 2, 0, 2), 0)

	require.Equal(t, 0.0, m.At(1, 1))
	require.Equal(t, 1.0, m.At(2, 2), "elements outside the sub-view stay put")
	require.Equal(t, 1.0, m.At(0, 2))
}

func TestSetDiag_Rectangular(t *testing.T) {
	m, err := matrix.NewDense[float64](2, 4)
	require.NoError(t, err)
	matrix.SetDiag(m, 3)

	require.Equal(t, 3.0, m.At(0, 0))
	require.Equal(t, 3.0, m.At(1, 1))
	require.Equal(t, 0.0, m.At(0, 1))
	require.Equal(t, 0.0, m.At(1, 2))
}

func TestEye_Complex(t *testing.T) {
	m, err := matrix.NewDense[complex128](3, 3)
	require.NoError(t, err)
	matrix.Fill(m, 5+5i)
	matrix.Eye(m)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := complex128(0)
			if i == j {
				want = 1
			}
			require.Equal(t, want, m.At(i, j))
		}
	}
}
