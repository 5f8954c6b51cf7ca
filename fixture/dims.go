// SPDX-License-Identifier: MIT

package fixture

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/QuadnucYard/dsa-practice-code/matrix"
)

// Dims is the shape of one multiplication: A is Rows×Inner, B is
// Inner×Cols and C is Rows×Cols.
type Dims struct {
	Rows  int `yaml:"rows"`
	Inner int `yaml:"inner"`
	Cols  int `yaml:"cols"`
}

// DefaultSweepSizes are the square sizes 2^6..2^10 of the sweep variant.
var DefaultSweepSizes = []int{1 << 6, 1 << 7, 1 << 8, 1 << 9, 1 << 10}

// FixedDims is the single 8×8×8 set of the fixed variant.
var FixedDims = Dims{Rows: 8, Inner: 8, Cols: 8}

// Square returns (n, n, n).
func Square(n int) Dims { return Dims{Rows: n, Inner: n, Cols: n} }

// Sequence yields one square Dims per size, in order.
func Sequence(sizes []int) []Dims {
	out := make([]Dims, len(sizes))
	for i, n := range sizes {
		out[i] = Square(n)
	}

	return out
}

// String renders "RxKxM".
func (d Dims) String() string { return fmt.Sprintf("%dx%dx%d", d.Rows, d.Inner, d.Cols) }

// Validate returns matrix.ErrInvalidDimensions when any extent is <= 0.
func (d Dims) Validate() error {
	if d.Rows <= 0 || d.Inner <= 0 || d.Cols <= 0 {
		return fmt.Errorf("dims %v: %w", d, matrix.ErrInvalidDimensions)
	}

	return nil
}

// ParseDims reads exactly three positive base-10 integers "rows inner cols".
// Surrounding whitespace in a token is ignored. Failures are *ArgumentError
// values matching ErrArgument.
func ParseDims(args []string) (Dims, error) {
	if len(args) != 3 {
		return Dims{}, &ArgumentError{Index: -1, Value: strings.Join(args, " "), Err: ErrArgCount}
	}
	var v [3]int
	for i, tok := range args {
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return Dims{}, &ArgumentError{Index: i, Value: tok, Err: ErrArgNotInteger}
		}
		if n <= 0 {
			return Dims{}, &ArgumentError{Index: i, Value: tok, Err: ErrArgNotPositive}
		}
		v[i] = n
	}

	return Dims{Rows: v[0], Inner: v[1], Cols: v[2]}, nil
}

// ParseSizes reads a comma separated list of positive sizes, e.g.
// "64,128,256". Used by the sweep variant.
func ParseSizes(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, &ArgumentError{Index: i, Value: p, Err: ErrArgNotInteger}
		}
		if n <= 0 {
			return nil, &ArgumentError{Index: i, Value: p, Err: ErrArgNotPositive}
		}
		out = append(out, n)
	}

	return out, nil
}
