// SPDX-License-Identifier: MIT
package householder

import "github.com/katalvlaran/lvlinalg/matrix"

// WorkInfo reports the scratch requirement of a blocked driver for a
// given problem shape and options, in elements of the scalar type.
type WorkInfo struct {
	// Elements is the minimum scratch length, in scalar elements, for
	// the driver to run allocation-free.
	Elements int
	// ElementBytes is the in-memory size of one scalar element.
	ElementBytes int
}

// Bytes returns the scratch requirement in bytes.
func (w WorkInfo) Bytes() int { return w.Elements * w.ElementBytes }

// GenerateQWorkspace reports the scratch GenerateQ needs for an m×n
// problem with k reflectors under opts. Passing a buffer of at least
// this many elements in Options.Work makes the driver allocation-free.
func GenerateQWorkspace[T matrix.Scalar](m, n, k int, opts Options[T]) WorkInfo {
	info := WorkInfo{ElementBytes: matrix.SizeOf[T]()}
	if k <= 0 || n <= 0 || m <= 0 {
		return info
	}
	nb := clampBlockSize(opts.BlockSize, k)
	// One nb×nb triangular factor plus one n-row application panel.
	info.Elements = nb*nb + n*nb

	return info
}

// GenerateLQWorkspace reports the scratch GenerateLQ needs for an m×n
// problem with k reflectors under opts.
func GenerateLQWorkspace[T matrix.Scalar](m, n, k int, opts Options[T]) WorkInfo {
	info := WorkInfo{ElementBytes: matrix.SizeOf[T]()}
	if k <= 0 || n <= 0 || m <= 0 {
		return info
	}
	nb := clampBlockSize(opts.BlockSize, k)
	info.Elements = nb*nb + m*nb

	return info
}

// clampBlockSize resolves the effective panel width: non-positive
// selects the default, and no panel is ever wider than the reflector
// count.
func clampBlockSize(nb, k int) int {
	if nb <= 0 {
		nb = DefaultBlockSize
	}
	if k > 0 && nb > k {
		nb = k
	}

	return nb
}

// arena hands out non-overlapping chunks of one scratch buffer. When
// the caller-provided buffer is too small a single fallback allocation
// replaces it, so acquisition never fails.
type arena[T matrix.Scalar] struct {
	buf  []T
	used int
}

func newArena[T matrix.Scalar](buf []T, need int) *arena[T] {
	if len(buf) < need {
		buf = make([]T, need)
	}

	return &arena[T]{buf: buf}
}

// take reserves the next n elements.
func (a *arena[T]) take(n int) []T {
	chunk := a.buf[a.used : a.used+n]
	a.used += n

	return chunk
}

// rest returns everything not yet reserved.
func (a *arena[T]) rest() []T { return a.buf[a.used:] }

// ensureWork returns work when it is long enough, else a fresh buffer.
func ensureWork[T matrix.Scalar](work []T, n int) []T {
	if len(work) >= n {
		return work[:n]
	}

	return make([]T, n)
}
