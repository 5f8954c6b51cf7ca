// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY the public Matrix interface and the LoopOrder
// enum. Errors and options live in errors.go and options.go.
package matrix

// Element is the stored element type of every fixture matrix.
type Element = int32

// Matrix represents a two-dimensional mutable array of int32 values.
// *Dense is the canonical implementation; kernels take fast paths on it and
// fall back to At/Set for anything else.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (int32, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v int32) error
}

// LoopOrder selects the nesting of the three multiplication loops.
// The names spell the loop variables from outermost to innermost, with i
// over rows of A, j over columns of B and k over the shared dimension.
// All orders compute the same product; they differ only in memory access
// pattern.
type LoopOrder int

// Loop orders in the classic numbering 0..5.
const (
	IJK LoopOrder = iota
	IKJ
	JIK
	JKI
	KIJ
	KJI
)

var loopOrderNames = [...]string{"ijk", "ikj", "jik", "jki", "kij", "kji"}

// String returns the lower-case loop name, e.g. "ikj".
func (o LoopOrder) String() string {
	if o < IJK || o > KJI {
		return "unknown"
	}

	return loopOrderNames[o]
}

// Valid reports whether o is one of the six defined orders.
func (o LoopOrder) Valid() bool { return o >= IJK && o <= KJI }

// LoopOrders returns all loop orders in numeric order.
func LoopOrders() []LoopOrder { return []LoopOrder{IJK, IKJ, JIK, JKI, KIJ, KJI} }
