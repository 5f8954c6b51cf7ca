// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: Build(rows, cols, opts, cons...). Allocates the
//     matrix, resolves cfg, runs constructors in order.
//   - Determinism: same shape/options/seed and constructor order ⇒ identical matrix.
//   - Safety: never panic; return wrapped sentinel errors.

package builder

import (
	"fmt"

	"github.com/QuadnucYard/dsa-practice-code/matrix"
)

const (
	methodBuild  = "Build"
	methodRandom = "Random"
)

// Constructor fills or mutates m using the resolved builderConfig.
// Constructors validate parameters early and return sentinel errors.
type Constructor func(m *matrix.Dense, cfg builderConfig) error

// Build allocates a rows×cols zero matrix, resolves the configuration from
// opts, and applies all constructors in order. The first constructor error
// is wrapped with "Build: %w" and returned; the partial matrix is dropped.
//
// Complexity: O(rows*cols) allocation + Σ cost of constructors.
func Build(rows, cols int, opts []Option, cons ...Constructor) (*matrix.Dense, error) {
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	cfg := newBuilderConfig(opts...)
	for i, con := range cons {
		if con == nil {
			return nil, fmt.Errorf("%s: constructor #%d: %w", methodBuild, i, ErrNilConstructor)
		}
		if err = con(m, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuild, err)
		}
	}

	return m, nil
}

// Random returns a rows×cols matrix of independent uniform integers drawn
// from the configured range (default [0, 255)).
//
// Errors:
//   - matrix.ErrInvalidDimensions when rows<=0 or cols<=0.
func Random(rows, cols int, opts ...Option) (*matrix.Dense, error) {
	m, err := Build(rows, cols, opts, Uniform())
	if err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", methodRandom, rows, cols, err)
	}

	return m, nil
}
