// Package matrix: Strided is the fully general layout — independent,
// possibly negative row and column strides over a flat slice. It covers
// transposed, reversed and interleaved views of existing storage. The
// stride signs are fixed once at construction and never re-dispatched
// per element.
package matrix

import "fmt"

// Strided is a matrix view with arbitrary strides.
// Element (i, j) lives at data[off + i*rs + j*cs]. Either stride may be
// negative; off must address element (0, 0).
type Strided[T Scalar] struct {
	rows, cols int
	rs, cs     int
	off        int
	data       []T
}

// NewStrided creates a strided view over caller-owned data without
// copying.
// Stage 1 (Validate): shape, non-zero strides on extents > 1.
// Stage 2 (Validate): all four corner offsets lie inside data.
// Stage 3 (Finalize): adopt the slice.
// Complexity: O(1).
func NewStrided[T Scalar](data []T, rows, cols, off, rowStride, colStride int) (*Strided[T], error) {
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}
	if (rows > 1 && rowStride == 0) || (cols > 1 && colStride == 0) {
		return nil, ErrBadStride
	}
	if rows > 0 && cols > 0 && data == nil {
		return nil, ErrNilMatrix
	}
	if rows > 0 && cols > 0 {
		// The extreme linear indices are attained at the corners.
		for _, i := range []int{0, rows - 1} {
			for _, j := range []int{0, cols - 1} {
				idx := off + i*rowStride + j*colStride
				if idx < 0 || idx >= len(data) {
					return nil, ErrOutOfRange
				}
			}
		}
	}

	return &Strided[T]{rows: rows, cols: cols, rs: rowStride, cs: colStride, off: off, data: data}, nil
}

// Rows returns the number of rows in the view. Complexity: O(1).
func (m *Strided[T]) Rows() int { return m.rows }

// Cols returns the number of columns in the view. Complexity: O(1).
func (m *Strided[T]) Cols() int { return m.cols }

// At retrieves the element at (i, j). Out-of-range indices panic.
// Complexity: O(1).
func (m *Strided[T]) At(i, j int) T {
	m.check(i, j)

	return m.data[m.off+i*m.rs+j*m.cs]
}

// Set assigns value v at (i, j). Out-of-range indices panic.
// Complexity: O(1).
func (m *Strided[T]) Set(i, j int, v T) {
	m.check(i, j)
	m.data[m.off+i*m.rs+j*m.cs] = v
}

// Slice returns the sub-view [r0, r1) × [c0, c1) sharing storage with
// the receiver. Offset arithmetic keeps negative strides valid.
// Complexity: O(1).
func (m *Strided[T]) Slice(r0, r1, c0, c1 int) Matrix[T] {
	m.checkRange(r0, r1, c0, c1)

	return &Strided[T]{
		rows: r1 - r0,
		cols: c1 - c0,
		rs:   m.rs,
		cs:   m.cs,
		off:  m.off + r0*m.rs + c0*m.cs,
		data: m.data,
	}
}

// Transpose returns the transposed view (rows and columns swapped)
// sharing storage with the receiver. Complexity: O(1).
func (m *Strided[T]) Transpose() *Strided[T] {
	return &Strided[T]{rows: m.cols, cols: m.rows, rs: m.cs, cs: m.rs, off: m.off, data: m.data}
}

// Clone returns a deep, compact (row-major ordered) copy of the view.
// Complexity: O(rows·cols).
func (m *Strided[T]) Clone() Matrix[T] {
	out := &Strided[T]{rows: m.rows, cols: m.cols, rs: m.cols, cs: 1, data: make([]T, m.rows*m.cols)}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[i*m.cols+j] = m.data[m.off+i*m.rs+j*m.cs]
		}
	}

	return out
}

// String implements fmt.Stringer for easy debugging.
func (m *Strided[T]) String() string {
	return stringify[T](m)
}

func (m *Strided[T]) check(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("matrix: Strided index (%d,%d) out of range %dx%d", i, j, m.rows, m.cols))
	}
}

func (m *Strided[T]) checkRange(r0, r1, c0, c1 int) {
	if r0 < 0 || r1 < r0 || r1 > m.rows || c0 < 0 || c1 < c0 || c1 > m.cols {
		panic(fmt.Sprintf("matrix: Strided slice [%d:%d,%d:%d) out of range %dx%d", r0, r1, c0, c1, m.rows, m.cols))
	}
}
