// SPDX-License-Identifier: MIT
// Package matrix provides the multiplication kernel used to compute the
// expected answer of every fixture. It performs strict fail-fast validation
// and returns wrapped sentinels on dimension mismatches.
//
// Notes:
//   - Kernels use central validators and wrap failures via matrixErrorf.
//   - Accumulation happens in int64; narrowing to int32 is checked.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opMul = "Mul"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Call only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul computes the dense product C = A·B, C[i][j] = Σ_k A[i][k]·B[k][j].
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: accumulate into an int64 buffer, using the *Dense fast path
//     with the configured loop order, or the generic i→j→k At() loop.
//   - Stage 3: narrow every cell to int32, failing with ErrElementOverflow.
//
// Behavior highlights:
//   - Operands are never mutated; one result allocation plus the accumulator.
//   - The loop order changes only the memory walk, never the result.
//
// Errors:
//   - ErrNilMatrix          (a or b is nil).
//   - ErrDimensionMismatch  (a.Cols() != b.Rows()).
//   - ErrElementOverflow    (a cell of the product does not fit int32).
//
// Complexity:
//   - Time O(n·p·m), Space O(n·m).
func Mul(a, b Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	o := gatherOptions(opts...)

	var (
		acc []int64
		err error
	)
	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		acc = mulDense(da, db, o.loopOrder)
	} else if acc, err = mulGeneric(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	res, err := narrow(a.Rows(), b.Cols(), acc)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return res, nil
}

// mulDense runs the triple loop over the flat buffers in the requested order.
// Layouts: a.data[i*p+k], b.data[k*m+j], acc[i*m+j].
func mulDense(a, b *Dense, order LoopOrder) []int64 {
	n, p, m := a.r, a.c, b.c
	ad, bd := a.data, b.data
	acc := make([]int64, n*m)

	var i, j, k int
	var s, av, bv int64
	switch order {
	case IJK:
		for i = 0; i < n; i++ {
			for j = 0; j < m; j++ {
				s = 0
				for k = 0; k < p; k++ {
					s += int64(ad[i*p+k]) * int64(bd[k*m+j])
				}
				acc[i*m+j] = s
			}
		}
	case IKJ:
		for i = 0; i < n; i++ {
			for k = 0; k < p; k++ {
				av = int64(ad[i*p+k])
				for j = 0; j < m; j++ {
					acc[i*m+j] += av * int64(bd[k*m+j])
				}
			}
		}
	case JIK:
		for j = 0; j < m; j++ {
			for i = 0; i < n; i++ {
				s = 0
				for k = 0; k < p; k++ {
					s += int64(ad[i*p+k]) * int64(bd[k*m+j])
				}
				acc[i*m+j] = s
			}
		}
	case JKI:
		for j = 0; j < m; j++ {
			for k = 0; k < p; k++ {
				bv = int64(bd[k*m+j])
				for i = 0; i < n; i++ {
					acc[i*m+j] += int64(ad[i*p+k]) * bv
				}
			}
		}
	case KIJ:
		for k = 0; k < p; k++ {
			for i = 0; i < n; i++ {
				av = int64(ad[i*p+k])
				for j = 0; j < m; j++ {
					acc[i*m+j] += av * int64(bd[k*m+j])
				}
			}
		}
	case KJI:
		for k = 0; k < p; k++ {
			for j = 0; j < m; j++ {
				bv = int64(bd[k*m+j])
				for i = 0; i < n; i++ {
					acc[i*m+j] += int64(ad[i*p+k]) * bv
				}
			}
		}
	}

	return acc
}

// mulGeneric is the interface fallback: fixed i→j→k order through At().
func mulGeneric(a, b Matrix) ([]int64, error) {
	n, p, m := a.Rows(), a.Cols(), b.Cols()
	acc := make([]int64, n*m)

	var (
		i, j, k int
		av, bv  int32
		s       int64
		err     error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < m; j++ {
			s = 0
			for k = 0; k < p; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, fmt.Errorf("At(%d,%d): %w", i, k, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, fmt.Errorf("At(%d,%d): %w", k, j, err)
				}
				s += int64(av) * int64(bv)
			}
			acc[i*m+j] = s
		}
	}

	return acc, nil
}

// narrow converts the accumulator into an r×c Dense, rejecting any cell
// outside the int32 range.
func narrow(r, c int, acc []int64) (*Dense, error) {
	res, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	for idx, v := range acc {
		if v < math.MinInt32 || v > math.MaxInt32 {
			return nil, fmt.Errorf("cell (%d,%d)=%d: %w", idx/c, idx%c, v, ErrElementOverflow)
		}
		res.data[idx] = int32(v)
	}

	return res, nil
}
