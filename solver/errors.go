// SPDX-License-Identifier: MIT
// Package solver: sentinel error set.
// Every error returned by this package matches one of these sentinels (or a
// context error) via errors.Is; call sites add context with errors.Wrapf.

package solver

import "github.com/pkg/errors"

var (
	// ErrNilGraph indicates a nil pattern or host graph.
	ErrNilGraph = errors.New("solver: graph is nil")

	// ErrInvalidK indicates k < 1.
	ErrInvalidK = errors.New("solver: k must be >= 1")

	// ErrInvalidOptions indicates a negative worker/batch count or a trials
	// multiplier below 1 for the approximate solver.
	ErrInvalidOptions = errors.New("solver: invalid options")

	// ErrUnsupportedAlgorithm is returned by Solve and ParseAlgorithm for an
	// unknown Algorithm value.
	ErrUnsupportedAlgorithm = errors.New("solver: unsupported algorithm")

	// ErrInfeasible reports that no set of k distinct mappings could be
	// produced. It is a normal outcome, not a computation failure.
	ErrInfeasible = errors.New("solver: infeasible")

	// ErrSearchSpaceTooLarge is returned by Exact when C(|M|, k) exceeds
	// MaxCombinations.
	ErrSearchSpaceTooLarge = errors.New("solver: search space too large")
)
