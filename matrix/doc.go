// SPDX-License-Identifier: MIT

// Package matrix provides the dense integer matrix used by the fixture
// generator, together with the multiplication kernel that produces the
// expected answers.
//
// The package provides:
//
//   - Dense, a row-major matrix of int32 values stored in one flat slice
//     (offset = i*cols + j), matching the on-disk element layout.
//   - Mul, a plain triple-loop product with an int64 accumulator and a
//     selectable loop order (ijk, ikj, jik, jki, kij, kji).
//   - Central validators and sentinel errors; public accessors never panic
//     on user input.
//
// Elements are 32-bit because fixture files store signed 32-bit integers.
// Products are accumulated in 64 bits and narrowed back, so a cell that does
// not fit the element width is reported as ErrElementOverflow instead of
// silently wrapping.
//
// Quick example:
//
//	a, _ := matrix.FromRows([][]int32{{1, 2}, {3, 4}})
//	b, _ := matrix.FromRows([][]int32{{5, 6}, {7, 8}})
//	c, _ := matrix.Mul(a, b) // [[19 22] [43 50]]
package matrix
