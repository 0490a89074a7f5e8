// Package lvlinalg is a generic dense linear-algebra kernel library:
// numerical algorithms written once and specialized at compile time over
// arbitrary matrix layouts and element types.
//
// 🚀 What is lvlinalg?
//
//	A pure-Go library centred on the blocked Householder reflector
//	subsystem — construction and application of elementary and block
//	(compact-WY) reflectors, and the reconstruction of explicit
//	orthogonal/unitary matrices from their compact factored form:
//		• Matrix views: row-major, column-major and strided layouts
//		  behind one Matrix interface, sliced without copying
//		• Dense kernels: generic GEMM/GEMV/TRMM/TRMV and friends
//		• Householder: reflector generation & application, compact-WY
//		  block factors, blocked Q-generation (QR- and LQ-oriented)
//
// ✨ Why choose lvlinalg?
//
//   - Generic – one implementation covers float32, float64, complex64
//     and complex128 via type parameters
//   - Zero-copy – algorithms mutate caller views in place; workspace is
//     sized by a query and reused, never hidden
//   - Rock-solid guarantees – sentinel errors, validation before any
//     mutation, in-code docs
//   - Pure Go – no cgo, no assembly, no hidden deps
//
// Everything is organized under three subpackages:
//
//	matrix/      — generic matrix & vector views over arbitrary storage
//	blas/        — dense arithmetic kernels (level-1/2/3 primitives)
//	householder/ — elementary & block reflectors, generate-Q drivers
//
// Quick sketch (generate Q from a QR factorization):
//
//	A, _ := matrix.NewDense[float64](8, 4)
//	// ... fill A ...
//	tau := make([]float64, 4)
//	_ = householder.FactorQR(A, tau, nil)
//	_ = householder.GenerateQ(A, tau, householder.DefaultOptions[float64]())
//	// A now holds Q, 8×4
//
// See each package's doc.go and example_test.go for walkthroughs.
package lvlinalg
