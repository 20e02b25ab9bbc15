// SPDX-License-Identifier: MIT

package solver

import (
	"math/rand"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/katalvlaran/kisoext/cost"
	"github.com/katalvlaran/kisoext/mapping"
)

// Algorithm selects a solver in Solve.
type Algorithm int

const (
	// ExactSearch evaluates every k-combination of injective mappings.
	ExactSearch Algorithm = iota
	// Approximate runs the sequential randomized greedy heuristic.
	Approximate
)

// String returns "exact" or "approx".
func (a Algorithm) String() string {
	switch a {
	case ExactSearch:
		return "exact"
	case Approximate:
		return "approx"
	default:
		return "unknown"
	}
}

// ParseAlgorithm accepts "exact", "approx", "approximate" and
// "approximation" (case-insensitive).
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exact":
		return ExactSearch, nil
	case "approx", "approximate", "approximation":
		return Approximate, nil
	default:
		return 0, errors.Wrapf(ErrUnsupportedAlgorithm, "%q (use 'exact' or 'approx')", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler (config files).
func (a *Algorithm) UnmarshalText(b []byte) error {
	v, err := ParseAlgorithm(string(b))
	if err != nil {
		return err
	}
	*a = v

	return nil
}

// Tunables and their defaults.
const (
	// DefaultTrialsMultiplier yields T = n₁·n₂ trials per approximate stage.
	DefaultTrialsMultiplier = 1

	// DefaultBatchSize is the number of combinations handed to an exact
	// worker at once.
	DefaultBatchSize = 256

	// MaxCombinations bounds C(|M|, k) for Exact.
	MaxCombinations = 1 << 48

	// MaxMappings bounds |M| = P(n₂, n₁), the mapping list Exact holds in
	// memory.
	MaxMappings = 1 << 24
)

// Options configures Solve, Exact and Approx.
type Options struct {
	// Algo is used by Solve only.
	Algo Algorithm

	// Workers is the number of goroutines evaluating combinations (Exact) or
	// trials (Approx). 0 ⇒ runtime.GOMAXPROCS(0).
	Workers int

	// BatchSize is the number of combinations per work item (Exact).
	// 0 ⇒ DefaultBatchSize.
	BatchSize int

	// TrialsMultiplier scales the per-stage trial count (Approx); must be ≥ 1.
	TrialsMultiplier int

	// Seed seeds the approximate solver's RNG when Rand is nil.
	// 0 ⇒ defaultRNGSeed.
	Seed int64

	// Rand, when non-nil, is the random source for Approx. It is consumed by
	// the calling goroutine only and must not be shared concurrently.
	Rand *rand.Rand

	// Observer receives progress events; nil disables reporting.
	Observer Observer
}

// DefaultOptions returns the exact algorithm with default tunables.
func DefaultOptions() Options {
	return Options{
		Algo:             ExactSearch,
		BatchSize:        DefaultBatchSize,
		TrialsMultiplier: DefaultTrialsMultiplier,
	}
}

// Result is the outcome of a successful solve.
type Result struct {
	// Cost is cost.Total(Edges).
	Cost int

	// Edges maps host pairs to the multiplicity that must be added.
	Edges cost.EdgeMap

	// Mappings are the k distinct embeddings realized by H + Edges, in the
	// order the solver produced them.
	Mappings []mapping.Mapping

	// Algorithm that produced the result.
	Algorithm Algorithm

	// Elapsed is the wall-clock time of the call.
	Elapsed time.Duration
}
