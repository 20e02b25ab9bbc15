// SPDX-License-Identifier: MIT

// Package generator produces random problem instances for benchmarks and
// tests.
//
// Shape of an instance:
//   - G: n₁ vertices, edge probability DensityG, occasional multiedges.
//   - H: n₂ > n₁ vertices, edge probability DensityH.
//   - A planted injective mapping of G into H (Fisher–Yates draw). A fraction
//     EmbedStrength of G's edges is made satisfied under it, a further
//     DeficitStrength fraction is forced under-satisfied, the rest is left to
//     chance.
//   - Optional light noise among host vertices the planted mapping does not
//     use.
//
// Neither graph contains self-loops. Every draw comes from the *rand.Rand
// configured with WithSeed or WithRand; Generate fails with
// ErrNeedRandSource when neither is given.
//
// Option constructors panic on programmer errors (nil RNG). Numeric knobs
// are validated by Generate, which reports ErrInvalidProbability or
// ErrTooFewVertices and builds nothing.
package generator
