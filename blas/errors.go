// SPDX-License-Identifier: MIT
package blas

import (
	"errors"
	"fmt"
)

// Sentinels for kernel misuse. The kernels sit on hot paths below
// validated drivers, so they panic with these values instead of
// returning them; errors.Is works on the recovered value.
//
// NOTE ON NAMING & PREFIXING:
// every sentinel message starts with "blas: " so a recovered panic
// names its origin without a stack trace.
var (
	// ErrShape signals operand dimensions that do not conform.
	ErrShape = errors.New("blas: dimension mismatch")
	// ErrFlag signals an unknown Side/Uplo/Transpose/Diag value.
	ErrFlag = errors.New("blas: invalid flag")
	// ErrNil signals a nil operand.
	ErrNil = errors.New("blas: nil operand")
)

// badShape panics with ErrShape annotated with the offending kernel.
func badShape(kernel string) {
	panic(fmt.Errorf("%w in %s", ErrShape, kernel))
}

// badFlag panics with ErrFlag annotated with the offending kernel.
func badFlag(kernel string) {
	panic(fmt.Errorf("%w in %s", ErrFlag, kernel))
}
