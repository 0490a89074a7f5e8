// SPDX-License-Identifier: MIT
package matrix

// Fill sets every element of m to v.
// Complexity: O(rows × cols).
func Fill[T Scalar](m Matrix[T], v T) {
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			m.Set(i, j, v)
		}
	}
}

// SetDiag sets the main diagonal of m to v, leaving everything else
// untouched. On a rectangular matrix the diagonal has min(rows, cols)
// elements. Complexity: O(min(rows, cols)).
func SetDiag[T Scalar](m Matrix[T], v T) {
	n := min(m.Rows(), m.Cols())
	for i := 0; i < n; i++ {
		m.Set(i, i, v)
	}
}

// Eye overwrites m with the identity pattern: zeros everywhere and
// ones on the main diagonal. Complexity: O(rows × cols).
func Eye[T Scalar](m Matrix[T]) {
	Fill(m, FromReal[T](0))
	SetDiag(m, FromReal[T](1))
}
