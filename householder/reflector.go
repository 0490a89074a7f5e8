// SPDX-License-Identifier: MIT
package householder

import (
	"math"

	"github.com/katalvlaran/lvlinalg/blas"
	"github.com/katalvlaran/lvlinalg/matrix"
)

// Reflector computes an elementary Householder reflector
//
//	H = I − tau·v·vᴴ,  v = [1, x]ᵀ after the call,
//
// such that Hᴴ applied to [alpha, x]ᵀ yields [beta, 0]ᵀ with beta
// real. For real scalars tau is real and H itself annihilates the
// tail; for complex scalars the annihilating operator is
// I − Conj(tau)·v·vᴴ, which is why FactorQR and FactorLQ apply the
// reflector with the conjugated coefficient.
// The tail x is overwritten with the reflector vector below its
// implicit unit first element; alpha is not modified, the new leading
// value is returned as beta.
//
// When x is zero and alpha has no imaginary part the input is already
// in the target form, so tau == 0 and H == I.
// Complexity: O(len(x)).
func Reflector[T matrix.Scalar](alpha T, x matrix.Vector[T]) (beta, tau T) {
	var xnorm2 float64
	var i int
	for i = 0; i < x.Len(); i++ {
		xnorm2 += matrix.Abs2(x.At(i))
	}

	ar, ai := matrix.Re(alpha), matrix.Im(alpha)
	if xnorm2 == 0 && ai == 0 {
		return alpha, 0
	}

	// beta carries the magnitude of the full input vector, with the
	// sign chosen opposite to re(alpha) to avoid cancellation.
	b := math.Sqrt(ar*ar + ai*ai + xnorm2)
	if ar >= 0 {
		b = -b
	}

	betaT := matrix.FromReal[T](b)
	tau = (betaT - alpha) / betaT
	blas.Scal(1/(alpha-betaT), x)

	return betaT, tau
}

// ApplyReflector overwrites C with H·C (side == Left) or C·H
// (side == Right), where H = I − tau·v·vᴴ. The reflector vector v must
// have length rows(C) for Left and cols(C) for Right, including its
// explicitly stored leading element.
//
// work provides scratch of length cols(C) for Left or rows(C) for
// Right; a short or nil buffer triggers a fallback allocation.
// Complexity: O(rows × cols).
func ApplyReflector[T matrix.Scalar](side blas.Side, v matrix.Vector[T], tau T, c matrix.Matrix[T], work []T) {
	if tau == 0 || c.Rows() == 0 || c.Cols() == 0 {
		return
	}

	switch side {
	case blas.Left:
		// C -= tau · v · (vᴴ·C)
		w := matrix.WrapVec(ensureWork(work, c.Cols()))
		blas.Gemv(blas.ConjTrans, matrix.FromReal[T](1), c, v, 0, w)
		blas.Ger(-tau, v, w, c)
	case blas.Right:
		// C -= tau · (C·v) · vᴴ
		w := matrix.WrapVec(ensureWork(work, c.Rows()))
		blas.Gemv(blas.NoTrans, matrix.FromReal[T](1), c, v, 0, w)
		blas.Ger(-tau, w, v, c)
	}
}
