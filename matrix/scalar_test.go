package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/stretchr/testify/require"
)

func TestConj(t *testing.T) {
	require.Equal(t, 3.0, matrix.Conj(3.0))
	require.Equal(t, float32(-2), matrix.Conj(float32(-2)))
	require.Equal(t, complex128(3-4i), matrix.Conj(complex128(3+4i)))
	require.Equal(t, complex64(1+2i), matrix.Conj(complex64(1-2i)))
}

func TestAbs2(t *testing.T) {
	require.Equal(t, 9.0, matrix.Abs2(-3.0))
	require.Equal(t, 25.0, matrix.Abs2(complex128(3+4i)))
	require.InDelta(t, 2.0, matrix.Abs2(complex64(1+1i)), 1e-6)
}

func TestReIm(t *testing.T) {
	require.Equal(t, 3.0, matrix.Re(complex128(3+4i)))
	require.Equal(t, 4.0, matrix.Im(complex128(3+4i)))
	require.Equal(t, 7.0, matrix.Re(7.0))
	require.Equal(t, 0.0, matrix.Im(float32(7)))
}

func TestFromReal(t *testing.T) {
	require.Equal(t, 2.5, matrix.FromReal[float64](2.5))
	require.Equal(t, float32(2.5), matrix.FromReal[float32](2.5))
	require.Equal(t, complex128(2.5+0i), matrix.FromReal[complex128](2.5))
	require.Equal(t, complex64(2.5+0i), matrix.FromReal[complex64](2.5))
}

func TestSizeOf(t *testing.T) {
	require.Equal(t, 4, matrix.SizeOf[float32]())
	require.Equal(t, 8, matrix.SizeOf[float64]())
	require.Equal(t, 8, matrix.SizeOf[complex64]())
	require.Equal(t, 16, matrix.SizeOf[complex128]())
}
