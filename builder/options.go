// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// Option customizes a build by mutating a builderConfig before any
// constructor runs. Complexity: applying N options costs O(N).
type Option func(*builderConfig)

// WithRand provides an explicit RNG. Sharing one *rand.Rand across several
// Build calls makes the whole sequence reproducible from a single seed.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRange sets the half-open value range [lo, hi) used by Uniform/Random.
// Panics if lo >= hi.
func WithRange(lo, hi int32) Option {
	if lo >= hi {
		panic(fmt.Sprintf("builder: WithRange(%d,%d): lo must be < hi", lo, hi))
	}

	return func(c *builderConfig) { c.lo, c.hi = lo, hi }
}
