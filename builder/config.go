// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go — internal configuration and defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Defaults:
//   • rng = nil       (process-global source; not reproducible)
//   • lo  = 0, hi = 255 (the byte range used by every fixture generator)

package builder

import "math/rand"

// Default value range, half-open [DefaultMin, DefaultMax).
const (
	DefaultMin int32 = 0
	DefaultMax int32 = 255
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for draws; nil means the process-global source.
	rng *rand.Rand
	// Half-open value range for Uniform.
	lo, hi int32
}

// newBuilderConfig constructs a config with defaults and applies all options
// in order. Complexity: O(len(opts)).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		rng: nil,
		lo:  DefaultMin,
		hi:  DefaultMax,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// int31n draws from [0, n) using the configured RNG, falling back to the
// global source. n must be > 0.
func (c builderConfig) int31n(n int32) int32 {
	if c.rng == nil {
		return rand.Int31n(n)
	}

	return c.rng.Int31n(n)
}

// int63n is int31n for spans wider than int32.
func (c builderConfig) int63n(n int64) int64 {
	if c.rng == nil {
		return rand.Int63n(n)
	}

	return c.rng.Int63n(n)
}
