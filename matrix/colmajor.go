// Package matrix: ColMajor is the column-major implementation of the
// Matrix interface — the layout of classical Fortran linear algebra,
// with an explicit leading dimension (the distance between consecutive
// columns in storage).
package matrix

import "fmt"

// ColMajor is a column-major matrix of Scalar values.
// ld is the leading dimension: ld ≥ rows, and a sub-view keeps the
// parent's ld.
type ColMajor[T Scalar] struct {
	rows, cols int
	ld         int
	data       []T // len ≥ (cols-1)*ld + rows when cols > 0
}

// NewColMajor creates a rows×cols column-major matrix initialized to
// zeros. Complexity: O(rows·cols) time and memory.
func NewColMajor[T Scalar](rows, cols int) (*ColMajor[T], error) {
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}

	return &ColMajor[T]{rows: rows, cols: cols, ld: rows, data: make([]T, rows*cols)}, nil
}

// WrapColMajor creates a rows×cols column-major view over caller-owned
// data without copying, with leading dimension ld.
// Stage 1 (Validate): shape, ld ≥ rows, and backing length.
// Stage 2 (Finalize): adopt the slice.
// Complexity: O(1).
func WrapColMajor[T Scalar](rows, cols, ld int, data []T) (*ColMajor[T], error) {
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}
	if ld < rows || (cols > 1 && ld < 1) {
		return nil, ErrBadStride
	}
	if rows > 0 && cols > 0 && data == nil {
		return nil, ErrNilMatrix
	}
	if rows > 0 && cols > 0 && len(data) < (cols-1)*ld+rows {
		return nil, ErrShortData
	}

	return &ColMajor[T]{rows: rows, cols: cols, ld: ld, data: data}, nil
}

// Rows returns the number of rows in the view. Complexity: O(1).
func (m *ColMajor[T]) Rows() int { return m.rows }

// Cols returns the number of columns in the view. Complexity: O(1).
func (m *ColMajor[T]) Cols() int { return m.cols }

// At retrieves the element at (i, j). Out-of-range indices panic.
// Complexity: O(1).
func (m *ColMajor[T]) At(i, j int) T {
	m.check(i, j)

	return m.data[j*m.ld+i]
}

// Set assigns value v at (i, j). Out-of-range indices panic.
// Complexity: O(1).
func (m *ColMajor[T]) Set(i, j int, v T) {
	m.check(i, j)
	m.data[j*m.ld+i] = v
}

// Slice returns the sub-view [r0, r1) × [c0, c1) sharing storage with
// the receiver. Complexity: O(1).
func (m *ColMajor[T]) Slice(r0, r1, c0, c1 int) Matrix[T] {
	m.checkRange(r0, r1, c0, c1)
	if r1 == r0 || c1 == c0 {
		return &ColMajor[T]{rows: r1 - r0, cols: c1 - c0, ld: m.ld}
	}

	return &ColMajor[T]{
		rows: r1 - r0,
		cols: c1 - c0,
		ld:   m.ld,
		data: m.data[c0*m.ld+r0:],
	}
}

// Clone returns a deep, compact copy of the view. Complexity: O(rows·cols).
func (m *ColMajor[T]) Clone() Matrix[T] {
	out := &ColMajor[T]{rows: m.rows, cols: m.cols, ld: m.rows, data: make([]T, m.rows*m.cols)}
	for j := 0; j < m.cols; j++ {
		copy(out.data[j*out.ld:j*out.ld+m.rows], m.data[j*m.ld:j*m.ld+m.rows])
	}

	return out
}

// String implements fmt.Stringer for easy debugging.
func (m *ColMajor[T]) String() string {
	return stringify[T](m)
}

func (m *ColMajor[T]) check(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("matrix: ColMajor index (%d,%d) out of range %dx%d", i, j, m.rows, m.cols))
	}
}

func (m *ColMajor[T]) checkRange(r0, r1, c0, c1 int) {
	if r0 < 0 || r1 < r0 || r1 > m.rows || c0 < 0 || c1 < c0 || c1 > m.cols {
		panic(fmt.Sprintf("matrix: ColMajor slice [%d:%d,%d:%d) out of range %dx%d", r0, r1, c0, c1, m.rows, m.cols))
	}
}
