// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_uniform.go - implementation of the Uniform constructor.
//
// Contract:
//   - Each element is an independent draw from [lo, hi) where the range comes
//     from UniformIn arguments or, for Uniform, from the resolved config.
//   - lo < hi (else ErrInvalidRange).
//   - Exactly one draw per element, row-major order.
//
// Complexity:
//   - Time: O(rows*cols) draws. Space: O(1) extra.

package builder

import (
	"math"

	"github.com/QuadnucYard/dsa-practice-code/matrix"
)

const methodUniform = "Uniform"

// Uniform fills the matrix with draws from the configured range.
func Uniform() Constructor {
	return func(m *matrix.Dense, cfg builderConfig) error {
		return fillUniform(m, cfg, cfg.lo, cfg.hi)
	}
}

// UniformIn fills the matrix with draws from [lo, hi), ignoring the
// configured range but still using the configured RNG.
func UniformIn(lo, hi int32) Constructor {
	return func(m *matrix.Dense, cfg builderConfig) error {
		return fillUniform(m, cfg, lo, hi)
	}
}

func fillUniform(m *matrix.Dense, cfg builderConfig, lo, hi int32) error {
	if err := validateRange(methodUniform, lo, hi); err != nil {
		return err
	}
	// hi-lo may overflow int32 for extreme bounds; draw in int64 space then.
	span := int64(hi) - int64(lo)
	data := m.Raw()
	if span <= math.MaxInt32 {
		n := int32(span)
		for idx := range data {
			data[idx] = lo + cfg.int31n(n)
		}

		return nil
	}
	for idx := range data {
		data[idx] = int32(int64(lo) + cfg.int63n(span))
	}

	return nil
}
