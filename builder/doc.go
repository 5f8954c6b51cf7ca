// Package builder generates the random input matrices of a fixture set.
//
// The package offers:
//
//   - Configuration primitives:
//     – Option:        a function that mutates builderConfig before use.
//     – builderConfig: holds the RNG and the value range.
//   - Constructors (Constructor implementations) that fill a fresh matrix:
//     – Uniform:       independent draws from [lo, hi).
//   - One orchestrator, Build, plus the Random facade used by the generator.
//
// Randomness is injected: pass WithSeed for reproducible fixtures or WithRand
// to share one stream across several matrices. Without either option the
// process-global math/rand source is used, so two runs produce different
// data, which is what the fixture scripts have always done.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors wrapping sentinels (ErrInvalidRange,
//     matrix.ErrInvalidDimensions) with method context.
//   - Fill order is row-major with exactly one draw per element, so a fixed
//     seed always yields the same matrix.
package builder
