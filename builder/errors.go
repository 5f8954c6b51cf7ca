// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Implementations attach context with %w.
//   • Algorithms MUST NOT panic at runtime; validation panics are confined to
//     option constructors (WithX...).

package builder

import "errors"

// ErrInvalidRange indicates an empty value range (lo >= hi) passed to a
// constructor at runtime.
var ErrInvalidRange = errors.New("builder: empty value range")

// ErrNilConstructor indicates that Build received a nil Constructor.
var ErrNilConstructor = errors.New("builder: nil constructor")
