// Package blas provides generic dense linear-algebra kernels over the
// matrix view abstraction: scaling and conjugation (level 1),
// matrix-vector products, rank-1 updates and triangular products
// (level 2), general and triangular matrix-matrix products (level 3),
// plus transposed copy/accumulate helpers.
//
// All kernels are generic over matrix.Scalar, so one implementation
// serves float32, float64, complex64 and complex128. Conjugation is
// a no-op for the real types, which the compiler resolves per
// instantiation.
//
// 🚀 What blas delivers
//
//   - Scal, Conjugate            — vector scaling and in-place conjugation
//   - Gemv, Ger, Trmv            — y = α·op(A)·x + β·y, A += α·x·yᴴ, x = op(A)·x
//   - Gemm, Trmm                 — C = α·op(A)·op(B) + β·C and triangular multiply
//   - Copy, Add                  — B = α·op(A) and B += α·op(A)
//
// ⚙️ Conventions
//
//   - op(·) is selected by a Transpose flag: NoTrans, Trans or ConjTrans.
//   - Triangular kernels read only the triangle named by Uplo; with
//     Diag == Unit the diagonal is taken as 1 and never read.
//   - Ger is the conjugating rank-1 update (A += α·x·yᴴ); for real
//     scalars the conjugation vanishes.
//   - Triangular in-place kernels (Trmv, Trmm) order their loops so the
//     update never reads an element it has already overwritten.
//
// ✨ Error policy
//
// These are hot-path kernels called from validated drivers, so they do
// not return errors. Dimension mismatches and invalid flags are
// programmer errors and panic with one of the package sentinels
// (ErrShape, ErrFlag), recoverable via errors.Is if a caller insists.
//
// See the householder package for the blocked drivers built on top.
package blas
