// Package matrix: Dense is the row-major implementation of the Matrix
// interface, storing elements in a flat slice with an explicit row
// stride so that sub-views share storage with their parent.
package matrix

import "fmt"

// Dense is a row-major matrix of Scalar values.
// rows/cols describe the logical extent; stride is the distance between
// the first elements of consecutive rows in data (stride ≥ cols, so a
// freshly allocated Dense has stride == cols while a sub-view keeps the
// parent's stride).
type Dense[T Scalar] struct {
	rows, cols int
	stride     int
	data       []T // len ≥ (rows-1)*stride + cols when rows > 0
}

// NewDense creates a rows×cols Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols ≥ 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(rows·cols) time and memory.
func NewDense[T Scalar](rows, cols int) (*Dense[T], error) {
	// Validate dimensions; zero extents are legal empty views.
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}

	return &Dense[T]{rows: rows, cols: cols, stride: cols, data: make([]T, rows*cols)}, nil
}

// WrapDense creates a rows×cols row-major view over caller-owned data
// without copying. The view and the caller alias the same memory.
// Stage 1 (Validate): shape, stride ≥ cols, and backing length.
// Stage 2 (Finalize): adopt the slice.
// Complexity: O(1).
func WrapDense[T Scalar](rows, cols, stride int, data []T) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}
	if stride < cols || (rows > 1 && stride < 1) {
		return nil, ErrBadStride
	}
	if rows > 0 && cols > 0 && data == nil {
		return nil, ErrNilMatrix
	}
	if rows > 0 && cols > 0 && len(data) < (rows-1)*stride+cols {
		return nil, ErrShortData
	}

	return &Dense[T]{rows: rows, cols: cols, stride: stride, data: data}, nil
}

// Rows returns the number of rows in the view. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.rows }

// Cols returns the number of columns in the view. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.cols }

// At retrieves the element at (i, j). Out-of-range indices are
// programmer errors and panic. Complexity: O(1).
func (m *Dense[T]) At(i, j int) T {
	m.check(i, j)

	return m.data[i*m.stride+j]
}

// Set assigns value v at (i, j). Out-of-range indices are programmer
// errors and panic. Complexity: O(1).
func (m *Dense[T]) Set(i, j int, v T) {
	m.check(i, j)
	m.data[i*m.stride+j] = v
}

// Slice returns the sub-view [r0, r1) × [c0, c1) sharing storage with
// the receiver. Empty ranges yield a valid empty view. Complexity: O(1).
func (m *Dense[T]) Slice(r0, r1, c0, c1 int) Matrix[T] {
	m.checkRange(r0, r1, c0, c1)
	if r1 == r0 || c1 == c0 {
		return &Dense[T]{rows: r1 - r0, cols: c1 - c0, stride: m.stride}
	}

	return &Dense[T]{
		rows:   r1 - r0,
		cols:   c1 - c0,
		stride: m.stride,
		data:   m.data[r0*m.stride+c0:],
	}
}

// Clone returns a deep, compact copy of the view. Complexity: O(rows·cols).
func (m *Dense[T]) Clone() Matrix[T] {
	out := &Dense[T]{rows: m.rows, cols: m.cols, stride: m.cols, data: make([]T, m.rows*m.cols)}
	for i := 0; i < m.rows; i++ {
		copy(out.data[i*out.stride:i*out.stride+m.cols], m.data[i*m.stride:i*m.stride+m.cols])
	}

	return out
}

// String implements fmt.Stringer for easy debugging.
func (m *Dense[T]) String() string {
	return stringify[T](m)
}

// check validates a single element index; violation panics (programmer
// error, see doc.go).
func (m *Dense[T]) check(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("matrix: Dense index (%d,%d) out of range %dx%d", i, j, m.rows, m.cols))
	}
}

// checkRange validates a half-open rectangular range against the view.
func (m *Dense[T]) checkRange(r0, r1, c0, c1 int) {
	if r0 < 0 || r1 < r0 || r1 > m.rows || c0 < 0 || c1 < c0 || c1 > m.cols {
		panic(fmt.Sprintf("matrix: Dense slice [%d:%d,%d:%d) out of range %dx%d", r0, r1, c0, c1, m.rows, m.cols))
	}
}

// stringify renders any Matrix row by row; shared by the concrete
// layouts' String methods.
func stringify[T Scalar](m Matrix[T]) string {
	var s string
	for i := 0; i < m.Rows(); i++ {
		s += "["
		for j := 0; j < m.Cols(); j++ {
			s += fmt.Sprintf("%v", m.At(i, j))
			if j < m.Cols()-1 {
				s += ", "
			}
		}
		s += "]\n"
	}

	return s
}
