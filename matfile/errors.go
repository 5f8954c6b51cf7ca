// SPDX-License-Identifier: MIT
// Package matfile: sentinel error set. Callers match with errors.Is; I/O
// failures from the os package are wrapped and keep their *fs.PathError.

package matfile

import "errors"

var (
	// ErrShortFile means the input ended before a complete header or payload.
	ErrShortFile = errors.New("matfile: short file")

	// ErrShapeMismatch means the header shape disagrees with the payload length.
	ErrShapeMismatch = errors.New("matfile: header shape does not match payload")

	// ErrBadHeader means the header holds a zero dimension or an element
	// count beyond MaxElements.
	ErrBadHeader = errors.New("matfile: invalid shape header")

	// ErrUnknownLayout is returned for a Layout outside the defined set.
	ErrUnknownLayout = errors.New("matfile: unknown layout")

	// ErrUnknownOrder is returned for an Order outside the defined set.
	ErrUnknownOrder = errors.New("matfile: unknown byte order")

	// ErrShapeTooLarge means a matrix dimension does not fit the uint32 header.
	ErrShapeTooLarge = errors.New("matfile: dimension exceeds uint32")
)
