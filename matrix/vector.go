// Package matrix: vector views. SliceVec is the concrete strided vector
// over a flat slice; Row and Col extract vector views into any Matrix,
// taking a direct strided fast path for the concrete layouts and a
// generic adapter otherwise. The stride (including its sign) is fixed
// once at the boundary, never re-dispatched per element.
package matrix

import "fmt"

// SliceVec is a strided vector of Scalar values.
// Element i lives at data[off + i*stride]; stride may be negative.
type SliceVec[T Scalar] struct {
	n      int
	off    int
	stride int
	data   []T
}

// WrapVec creates a unit-stride vector view over the whole of data
// without copying. Complexity: O(1).
func WrapVec[T Scalar](data []T) *SliceVec[T] {
	return &SliceVec[T]{n: len(data), stride: 1, data: data}
}

// NewSliceVec creates a strided vector view over caller-owned data.
// Stage 1 (Validate): length, non-zero stride on n > 1, non-nil backing.
// Stage 2 (Validate): both end offsets lie inside data.
// Complexity: O(1).
func NewSliceVec[T Scalar](data []T, n, off, stride int) (*SliceVec[T], error) {
	if n < 0 {
		return nil, ErrBadShape
	}
	if n > 1 && stride == 0 {
		return nil, ErrBadStride
	}
	if n > 0 && data == nil {
		return nil, ErrNilMatrix
	}
	if n > 0 {
		for _, i := range []int{0, n - 1} {
			idx := off + i*stride
			if idx < 0 || idx >= len(data) {
				return nil, ErrOutOfRange
			}
		}
	}

	return &SliceVec[T]{n: n, off: off, stride: stride, data: data}, nil
}

// Len returns the number of elements in the view. Complexity: O(1).
func (v *SliceVec[T]) Len() int { return v.n }

// At retrieves the element at position i. Out-of-range indices panic.
// Complexity: O(1).
func (v *SliceVec[T]) At(i int) T {
	v.check(i)

	return v.data[v.off+i*v.stride]
}

// Set assigns value x at position i. Out-of-range indices panic.
// Complexity: O(1).
func (v *SliceVec[T]) Set(i int, x T) {
	v.check(i)
	v.data[v.off+i*v.stride] = x
}

// Slice returns the sub-view [b, e) sharing storage with the receiver.
// Complexity: O(1).
func (v *SliceVec[T]) Slice(b, e int) Vector[T] {
	v.checkRange(b, e)

	return &SliceVec[T]{n: e - b, off: v.off + b*v.stride, stride: v.stride, data: v.data}
}

func (v *SliceVec[T]) check(i int) {
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("matrix: SliceVec index %d out of range %d", i, v.n))
	}
}

func (v *SliceVec[T]) checkRange(b, e int) {
	if b < 0 || e < b || e > v.n {
		panic(fmt.Sprintf("matrix: SliceVec slice [%d:%d) out of range %d", b, e, v.n))
	}
}

// Row returns a vector view of row i of m, sharing storage.
// Concrete layouts get a direct strided view; any other Matrix gets a
// generic adapter. Complexity: O(1).
func Row[T Scalar](m Matrix[T], i int) Vector[T] {
	if i < 0 || i >= m.Rows() {
		panic(fmt.Sprintf("matrix: Row index %d out of range %d", i, m.Rows()))
	}
	switch d := m.(type) {
	case *Dense[T]:
		return &SliceVec[T]{n: d.cols, off: i * d.stride, stride: 1, data: d.data}
	case *ColMajor[T]:
		return &SliceVec[T]{n: d.cols, off: i, stride: d.ld, data: d.data}
	case *Strided[T]:
		return &SliceVec[T]{n: d.cols, off: d.off + i*d.rs, stride: d.cs, data: d.data}
	}

	return &rowVec[T]{m: m, i: i, c0: 0, n: m.Cols()}
}

// Col returns a vector view of column j of m, sharing storage.
// Concrete layouts get a direct strided view; any other Matrix gets a
// generic adapter. Complexity: O(1).
func Col[T Scalar](m Matrix[T], j int) Vector[T] {
	if j < 0 || j >= m.Cols() {
		panic(fmt.Sprintf("matrix: Col index %d out of range %d", j, m.Cols()))
	}
	switch d := m.(type) {
	case *Dense[T]:
		return &SliceVec[T]{n: d.rows, off: j, stride: d.stride, data: d.data}
	case *ColMajor[T]:
		return &SliceVec[T]{n: d.rows, off: j * d.ld, stride: 1, data: d.data}
	case *Strided[T]:
		return &SliceVec[T]{n: d.rows, off: d.off + j*d.cs, stride: d.rs, data: d.data}
	}

	return &colVec[T]{m: m, j: j, r0: 0, n: m.Rows()}
}

// rowVec adapts an arbitrary Matrix row to the Vector interface.
type rowVec[T Scalar] struct {
	m  Matrix[T]
	i  int
	c0 int
	n  int
}

func (v *rowVec[T]) Len() int       { return v.n }
func (v *rowVec[T]) At(j int) T     { v.check(j); return v.m.At(v.i, v.c0+j) }
func (v *rowVec[T]) Set(j int, x T) { v.check(j); v.m.Set(v.i, v.c0+j, x) }

func (v *rowVec[T]) Slice(b, e int) Vector[T] {
	if b < 0 || e < b || e > v.n {
		panic(fmt.Sprintf("matrix: row slice [%d:%d) out of range %d", b, e, v.n))
	}

	return &rowVec[T]{m: v.m, i: v.i, c0: v.c0 + b, n: e - b}
}

func (v *rowVec[T]) check(j int) {
	if j < 0 || j >= v.n {
		panic(fmt.Sprintf("matrix: row element %d out of range %d", j, v.n))
	}
}

// colVec adapts an arbitrary Matrix column to the Vector interface.
type colVec[T Scalar] struct {
	m  Matrix[T]
	j  int
	r0 int
	n  int
}

func (v *colVec[T]) Len() int       { return v.n }
func (v *colVec[T]) At(i int) T     { v.check(i); return v.m.At(v.r0+i, v.j) }
func (v *colVec[T]) Set(i int, x T) { v.check(i); v.m.Set(v.r0+i, v.j, x) }

func (v *colVec[T]) Slice(b, e int) Vector[T] {
	if b < 0 || e < b || e > v.n {
		panic(fmt.Sprintf("matrix: col slice [%d:%d) out of range %d", b, e, v.n))
	}

	return &colVec[T]{m: v.m, j: v.j, r0: v.r0 + b, n: e - b}
}

func (v *colVec[T]) check(i int) {
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("matrix: col element %d out of range %d", i, v.n))
	}
}
