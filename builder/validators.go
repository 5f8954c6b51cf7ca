// SPDX-License-Identifier: MIT

// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
//
// Each function returns an error wrapped via builderErrorf
// when its precondition is violated.
package builder

// validateRange ensures the half-open range [lo, hi) is non-empty.
// Returns "<Method>: [lo,hi): builder: empty value range" otherwise.
//
// Complexity: O(1) time and space.
func validateRange(method string, lo, hi int32) error {
	if lo >= hi {
		return builderErrorf(method, "[%d,%d)", ErrInvalidRange, lo, hi)
	}

	return nil
}
