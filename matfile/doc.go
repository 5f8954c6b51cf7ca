// SPDX-License-Identifier: MIT

// Package matfile reads and writes the binary matrix files consumed by the
// matrix-multiplication exercises.
//
// A file holds one matrix:
//
//	shape header : 2 × uint32  (rows, cols)
//	element data : rows*cols × int32, row-major
//
// The file is not self-describing. Two producers exist and disagree on where
// the header goes, so the position is an explicit part of the Format:
//
//	HeaderFirst : [rows cols][a00 a01 ... a(r-1)(c-1)]
//	DataFirst   : [a00 a01 ... a(r-1)(c-1)][rows cols]
//
// Both use the same byte order for header and data, native to the producing
// host unless a Format names one explicitly. Readers must be told the Format;
// Probe only reports which layouts are consistent with a file's size.
//
// FormatVersion identifies this pair of layouts in manifests; it is not
// written into the files themselves.
package matfile
