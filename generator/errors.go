// SPDX-License-Identifier: MIT

package generator

import "github.com/pkg/errors"

var (
	// ErrTooFewVertices indicates n₁ < 1, n₂ < 1, or a count knob below its
	// minimum (max multiedge < 1, noise max < 0).
	ErrTooFewVertices = errors.New("generator: parameter too small")

	// ErrPatternTooLarge indicates n₁ ≥ n₂.
	ErrPatternTooLarge = errors.New("generator: pattern must be smaller than host")

	// ErrInvalidProbability indicates a density, probability or strength
	// outside [0, 1].
	ErrInvalidProbability = errors.New("generator: probability out of range")

	// ErrNeedRandSource indicates that neither WithSeed nor WithRand was given.
	ErrNeedRandSource = errors.New("generator: rng is required")
)
