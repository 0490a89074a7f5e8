// SPDX-License-Identifier: MIT
package householder

import "github.com/katalvlaran/lvlinalg/matrix"

// Direction states the order in which the elementary reflectors of a
// block compose.
type Direction uint8

const (
	// Forward composes H = H(0)·H(1)···H(k-1), the product order of a
	// factorization that sweeps from the first column or row onward.
	// The block triangular factor is upper triangular.
	Forward Direction = iota
	// Backward composes H = H(k-1)···H(1)·H(0). The block triangular
	// factor is lower triangular.
	Backward
)

// String returns the flag name for diagnostics.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "Forward"
	case Backward:
		return "Backward"
	default:
		return "Direction(?)"
	}
}

// StoreMode states how the reflector vectors are laid out in V.
type StoreMode uint8

const (
	// ColumnStore keeps reflector i in column i of V (V is ℓ×k).
	ColumnStore StoreMode = iota
	// RowStore keeps reflector i in row i of V (V is k×ℓ).
	RowStore
)

// String returns the flag name for diagnostics.
func (s StoreMode) String() string {
	switch s {
	case ColumnStore:
		return "ColumnStore"
	case RowStore:
		return "RowStore"
	default:
		return "StoreMode(?)"
	}
}

// DefaultBlockSize is the panel width the blocked drivers use when the
// caller does not choose one. Values in the 16..64 range behave
// similarly; 32 keeps the triangular factor comfortably in cache.
const DefaultBlockSize = 32

// Options tunes the blocked drivers.
type Options[T matrix.Scalar] struct {
	// BlockSize is the panel width. Non-positive values select
	// DefaultBlockSize; the drivers clamp it to the reflector count.
	BlockSize int
	// Work is an optional scratch buffer. When it is at least the size
	// reported by the matching Workspace query the driver performs no
	// allocation; smaller or nil buffers trigger a fallback allocation.
	Work []T
}

// DefaultOptions returns the options the drivers assume for a zero
// Options value: DefaultBlockSize and driver-owned scratch.
func DefaultOptions[T matrix.Scalar]() Options[T] {
	return Options[T]{BlockSize: DefaultBlockSize}
}
