// Package householder implements elementary and blocked Householder
// reflectors and the drivers that expand a factorization into an
// explicit unitary matrix Q, generically over real and complex
// scalars.
//
// 🚀 What householder delivers
//
//   - Reflector, ApplyReflector   — one elementary reflector: build and apply
//   - BlockFactor, BlockApply     — compact block form I − V·T·Vᴴ: build T, apply
//   - FactorQR, FactorLQ          — unblocked QR / LQ factorizations
//   - GenerateQUnblocked, GenerateLQUnblocked — expand Q one reflector at a time
//   - GenerateQ, GenerateLQ       — blocked expansion, panel by panel
//   - GenerateQWorkspace, GenerateLQWorkspace — scratch queries for
//     allocation-free driver runs
//
// ✨ The blocked form
//
// A product of k elementary reflectors H(i) = I − tau(i)·v(i)·v(i)ᴴ
// compacts into one rank-k operator
//
//	H(0)·H(1)···H(k−1) = I − V·T·Vᴴ,
//
// where the columns (or rows, with RowStore) of V hold the reflector
// vectors and T is a small k×k triangle. BlockApply then reaches an
// entire trailing submatrix with a handful of level-3 products instead
// of k rank-1 sweeps, which is where the blocked drivers earn their
// speed.
//
// ⚙️ Conventions
//
//   - Reflector vectors carry an implicit unit front element that is
//     never read from storage, so factorization output (R or L in the
//     other triangle) can stay in place.
//   - Forward direction composes first reflector outermost and pairs
//     with an upper-triangular T; Backward reverses both.
//   - Row-stored reflectors are kept conjugated, the layout FactorLQ
//     produces and the LQ generators consume.
//   - Drivers validate shapes up front and return sentinel errors
//     (match with errors.Is); on a validation failure the operand is
//     untouched.
//   - Every driver accepts an optional caller scratch buffer. Sizes
//     come from the matching Workspace query; undersized buffers cost
//     one fallback allocation, never an error.
//
// 🧭 Typical round trip
//
//	a, _ := matrix.NewDense[float64](m, n)
//	// ... fill a ...
//	tau := make([]float64, n)
//	_ = householder.FactorQR(a, tau, nil)    // a now holds R and the reflectors
//	_ = householder.GenerateQ(a, tau, householder.DefaultOptions[float64]())
//	// a now holds the first n columns of Q
//
// See the blas package for the kernels underneath and the matrix
// package for the view types all operations accept.
package householder
