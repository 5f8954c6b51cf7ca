// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Expose the flat buffer read-only (Raw) so serializers can stream it without copies.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone/Equal: O(r*c).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxFromRows = "FromRows"
	ctxFrom     = "NewDenseFrom"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtEllipsis = "..."
	_fmtCell     = "\t"

	// DefaultRowLimit and DefaultColLimit bound the preview produced by Preview.
	DefaultRowLimit = 6
	DefaultColLimit = 4
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Output shape: "Dense.<method>(row,col): <err>"; the sentinel survives via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int     // row and column counts
	data []int32 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Dense{r: rows, c: cols, data: make([]int32, rows*cols)}, nil
}

// NewDenseFrom wraps an existing row-major buffer without copying.
// The caller hands over ownership of data.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//   - ErrDataLength when len(data) != rows*cols.
func NewDenseFrom(rows, cols int, data []int32) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxFrom, rows, cols, ErrInvalidDimensions)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%s(%d,%d): len=%d: %w", ctxFrom, rows, cols, len(data), ErrDataLength)
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// FromRows builds a Dense from a slice of equally long rows (copied).
// An empty input or an empty first row yields ErrInvalidDimensions;
// rows of different lengths yield ErrRaggedRows.
func FromRows(rows [][]int32) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	data := make([]int32, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%s: row %d has %d cols, want %d: %w", ctxFromRows, i, len(row), c, ErrRaggedRows)
		}
		data = append(data, row...)
	}

	return &Dense{r: r, c: c, data: data}, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Len returns the element count rows*cols.
func (m *Dense) Len() int { return len(m.data) }

// indexOf computes the row-major offset or returns ErrOutOfRange wrapped
// with the caller's method tag.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (int32, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int32) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Raw returns the row-major backing slice. It is shared with m: writes
// through it are visible in the matrix. Serializers use it to avoid a copy.
func (m *Dense) Raw() []int32 { return m.data }

// Row returns a copy of row i, or ErrOutOfRange.
func (m *Dense) Row(i int) ([]int32, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]int32, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	cp := make([]int32, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Equal reports whether m and o have the same shape and elements.
// Two nil matrices are equal; nil and non-nil are not.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i, v := range m.data {
		if o.data[i] != v {
			return false
		}
	}

	return true
}

// FirstDiff returns the coordinates of the first differing element in
// row-major order, or ok=false when the matrices are equal. Shapes must
// match; otherwise ErrDimensionMismatch is returned.
func (m *Dense) FirstDiff(o *Dense) (row, col int, ok bool, err error) {
	if m == nil || o == nil {
		return 0, 0, false, fmt.Errorf("FirstDiff: %w", ErrNilMatrix)
	}
	if m.r != o.r || m.c != o.c {
		return 0, 0, false, fmt.Errorf("FirstDiff: %dx%d vs %dx%d: %w", m.r, m.c, o.r, o.c, ErrDimensionMismatch)
	}
	for idx, v := range m.data {
		if o.data[idx] != v {
			return idx / m.c, idx % m.c, true, nil
		}
	}

	return 0, 0, false, nil
}

// String implements fmt.Stringer: one bracketed row per line.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(strconv.FormatInt(int64(m.data[i*m.c+j]), 10))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// Preview renders at most rowLimit rows and colLimit columns, tab separated
// with no trailing separator,
// marking truncated rows and columns with "...". Non-positive limits fall
// back to DefaultRowLimit / DefaultColLimit.
//
// Example (3×5 matrix, limits 2×2):
//
//	[[1	2	...]
//	 [6	7	...]
//	 [...	...	...]]
func (m *Dense) Preview(rowLimit, colLimit int) string {
	if rowLimit <= 0 {
		rowLimit = DefaultRowLimit
	}
	if colLimit <= 0 {
		colLimit = DefaultColLimit
	}
	r, c := min(rowLimit, m.r), min(colLimit, m.c)

	var sb strings.Builder
	for i := 0; i < r; i++ {
		if i == 0 {
			sb.WriteByte('[')
		} else {
			sb.WriteByte(' ')
		}
		sb.WriteByte('[')
		for j := 0; j < c; j++ {
			if j > 0 {
				sb.WriteString(_fmtCell)
			}
			sb.WriteString(strconv.FormatInt(int64(m.data[i*m.c+j]), 10))
		}
		if c < m.c {
			sb.WriteString(_fmtCell)
			sb.WriteString(_fmtEllipsis)
		}
		sb.WriteByte(']')
		if i != r-1 {
			sb.WriteByte('\n')
		}
	}
	if r < m.r {
		sb.WriteString("\n [")
		for j := 0; j < c; j++ {
			if j > 0 {
				sb.WriteString(_fmtCell)
			}
			sb.WriteString(_fmtEllipsis)
		}
		if c < m.c {
			sb.WriteString(_fmtCell)
			sb.WriteString(_fmtEllipsis)
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')

	return sb.String()
}
