// SPDX-License-Identifier: MIT
package blas

// Side selects whether a triangular factor multiplies from the left or
// the right in Trmm and the reflector-application drivers.
type Side uint8

const (
	// Left applies the operator as op(A)·B.
	Left Side = iota
	// Right applies the operator as B·op(A).
	Right
)

// String returns the flag name for diagnostics.
func (s Side) String() string {
	switch s {
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Side(?)"
	}
}

// Uplo names the triangle of a matrix that a kernel reads.
type Uplo uint8

const (
	// Upper reads the upper triangle.
	Upper Uplo = iota
	// Lower reads the lower triangle.
	Lower
)

// String returns the flag name for diagnostics.
func (u Uplo) String() string {
	switch u {
	case Upper:
		return "Upper"
	case Lower:
		return "Lower"
	default:
		return "Uplo(?)"
	}
}

// Transpose selects op(·) in the matrix kernels.
type Transpose uint8

const (
	// NoTrans uses the operand as stored: op(A) = A.
	NoTrans Transpose = iota
	// Trans transposes without conjugation: op(A) = Aᵀ.
	Trans
	// ConjTrans conjugate-transposes: op(A) = Aᴴ. For real scalars this
	// coincides with Trans.
	ConjTrans
)

// String returns the flag name for diagnostics.
func (t Transpose) String() string {
	switch t {
	case NoTrans:
		return "NoTrans"
	case Trans:
		return "Trans"
	case ConjTrans:
		return "ConjTrans"
	default:
		return "Transpose(?)"
	}
}

// Diag states whether a triangular matrix has an implicit unit
// diagonal.
type Diag uint8

const (
	// NonUnit reads the stored diagonal.
	NonUnit Diag = iota
	// Unit assumes a diagonal of ones; stored diagonal entries are
	// never read.
	Unit
)

// String returns the flag name for diagnostics.
func (d Diag) String() string {
	switch d {
	case NonUnit:
		return "NonUnit"
	case Unit:
		return "Unit"
	default:
		return "Diag(?)"
	}
}
