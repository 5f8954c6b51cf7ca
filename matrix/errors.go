// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All operations return these sentinels (optionally wrapped with %w and call
// site context); tests match them via errors.Is. Panics are reserved for
// option constructors receiving nonsensical values.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." so it stays greppable after
// wrapping. Wrap with fmt.Errorf("ctx: %w", ErrX); never compare strings.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> invalid shape -> dimension mismatch -> element overflow.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes,
	// e.g. Mul where a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrRaggedRows is returned by FromRows when rows differ in length.
	ErrRaggedRows = errors.New("matrix: ragged rows")

	// ErrDataLength is returned by NewDenseFrom when len(data) != rows*cols.
	ErrDataLength = errors.New("matrix: data length does not match shape")

	// ErrElementOverflow signals that an accumulated product does not fit
	// into the int32 element width.
	ErrElementOverflow = errors.New("matrix: element overflows int32")

	// ErrUnknownLoopOrder is returned by ParseLoopOrder for unrecognized names.
	ErrUnknownLoopOrder = errors.New("matrix: unknown loop order")
)
