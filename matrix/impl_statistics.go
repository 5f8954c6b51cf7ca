// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Summarize the elements of a matrix (min, max, sum, mean) in one pass,
//     so callers can sanity-check generated or decoded data at a glance.
//
// Determinism & Performance:
//   - Fixed i→j traversal.
//   - Dense fast-path reads the flat buffer; other matrices go through At.

package matrix

const opSummarize = "Summarize"

// Stats is a one-pass element summary.
type Stats struct {
	Count int
	Min   int32
	Max   int32
	Sum   int64
}

// Mean returns Sum/Count, or 0 for an empty summary.
func (s Stats) Mean() float64 {
	if s.Count == 0 {
		return 0
	}

	return float64(s.Sum) / float64(s.Count)
}

// Summarize computes Stats over every element of m.
//
// Errors:
//   - ErrNilMatrix from validation.
//   - Wrapped At errors from the fallback path.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Summarize(m Matrix) (Stats, error) {
	if err := ValidateNotNil(m); err != nil {
		return Stats{}, matrixErrorf(opSummarize, err)
	}

	var s Stats
	add := func(v int32) {
		if s.Count == 0 || v < s.Min {
			s.Min = v
		}
		if s.Count == 0 || v > s.Max {
			s.Max = v
		}
		s.Sum += int64(v)
		s.Count++
	}

	if d, ok := m.(*Dense); ok {
		for _, v := range d.data {
			add(v)
		}

		return s, nil
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return Stats{}, matrixErrorf(opSummarize, err)
			}
			add(v)
		}
	}

	return s, nil
}
