// SPDX-License-Identifier: MIT

// Package matrix: scalar helpers for the closed Scalar type set.
// Generic code cannot conjugate or inspect a type parameter directly;
// these helpers dispatch on the dynamic type once per call and let the
// kernels stay layout- and precision-agnostic. The Scalar constraint is
// closed (no ~), so the switches below are exhaustive.

package matrix

import "math/cmplx"

// Conj returns the complex conjugate of v; for real types it returns v
// unchanged. Complexity: O(1).
func Conj[T Scalar](v T) T {
	switch x := any(v).(type) {
	case complex64:
		return any(complex(real(x), -imag(x))).(T)
	case complex128:
		return any(cmplx.Conj(x)).(T)
	default:
		return v
	}
}

// Abs2 returns |v|² as a float64, exact up to the usual widening of the
// components. Complexity: O(1).
func Abs2[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return float64(x) * float64(x)
	case float64:
		return x * x
	case complex64:
		re, im := float64(real(x)), float64(imag(x))
		return re*re + im*im
	case complex128:
		return real(x)*real(x) + imag(x)*imag(x)
	}
	return 0 // unreachable: Scalar is closed
}

// Re returns the real part of v as a float64.
func Re[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return float64(x)
	case float64:
		return x
	case complex64:
		return float64(real(x))
	case complex128:
		return real(x)
	}
	return 0 // unreachable: Scalar is closed
}

// Im returns the imaginary part of v as a float64; zero for real types.
func Im[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case complex64:
		return float64(imag(x))
	case complex128:
		return imag(x)
	default:
		return 0
	}
}

// FromReal converts a float64 into the scalar type T with zero
// imaginary part. The inverse of Re for values representable in T.
func FromReal[T Scalar](r float64) T {
	var z T
	switch any(z).(type) {
	case float32:
		return any(float32(r)).(T)
	case float64:
		return any(r).(T)
	case complex64:
		return any(complex(float32(r), 0)).(T)
	case complex128:
		return any(complex(r, 0)).(T)
	}
	return z // unreachable: Scalar is closed
}

// SizeOf returns the storage size of one element of T in bytes,
// without resorting to unsafe.
func SizeOf[T Scalar]() int {
	var z T
	switch any(z).(type) {
	case float32:
		return 4
	case complex128:
		return 16
	default: // float64, complex64
		return 8
	}
}
