// Package matrix provides generic matrix and vector views over arbitrary
// storage, the foundation of the lvlinalg kernel library.
//
// 🚀 What is matrix?
//
//	A small abstraction layer that lets every algorithm in lvlinalg be
//	written once and run over any memory layout:
//	  • Dense     — row-major with a row stride
//	  • ColMajor  — column-major with a leading dimension
//	  • Strided   — arbitrary (even negative) row/column strides
//	  • SliceVec  — strided vector over a flat slice
//	All of them satisfy the same Matrix / Vector interfaces and are
//	parameterized over the Scalar element types (float32, float64,
//	complex64, complex128).
//
// ✨ Key features:
//   - zero-copy slicing: Slice returns a sub-view sharing storage,
//     addressed by two half-open index ranges (empty ranges are valid)
//   - Wrap constructors adopt caller-owned slices without copying,
//     so scratch buffers can be reshaped into views for free
//   - Row / Col extract vector views into any matrix, with fast paths
//     for the concrete layouts
//   - laset-style fills (Fill, SetDiag, Eye) for zero/identity seeding
//
// ⚙️ Error policy:
//
//	Constructors and validators return sentinel errors (ErrBadShape,
//	ErrOutOfRange, ErrBadStride, ...) matched via errors.Is. Element
//	indexers (At/Set) and Slice are hot paths: indices are validated by
//	construction at the call boundary, so a violation there is a
//	programmer error and panics. Algorithms validate once at their
//	entry point, never per element.
//
// Complexity: all accessors are O(1); Clone and the fill helpers are
// O(rows·cols).
package matrix
