// SPDX-License-Identifier: MIT
// Package solver - input and options validation shared by both solvers.
// Side-effect free; returns sentinels only. O(1).

package solver

import (
	"runtime"

	"github.com/pkg/errors"

	"github.com/katalvlaran/kisoext/multigraph"
)

// validateInputs checks graphs and k.
func validateInputs(g, h *multigraph.Graph, k int) error {
	if g == nil || h == nil {
		return ErrNilGraph
	}
	if k < 1 {
		return errors.Wrapf(ErrInvalidK, "k=%d", k)
	}

	return nil
}

// validateOptions checks the knobs used by algo.
func validateOptions(opts Options, algo Algorithm) error {
	if opts.Workers < 0 {
		return errors.Wrapf(ErrInvalidOptions, "workers=%d", opts.Workers)
	}
	if opts.BatchSize < 0 {
		return errors.Wrapf(ErrInvalidOptions, "batch size=%d", opts.BatchSize)
	}
	if algo == Approximate && opts.TrialsMultiplier < 1 {
		return errors.Wrapf(ErrInvalidOptions, "trials multiplier=%d", opts.TrialsMultiplier)
	}

	return nil
}

// workerCount resolves Options.Workers (0 ⇒ GOMAXPROCS).
func workerCount(opts Options) int {
	if opts.Workers > 0 {
		return opts.Workers
	}

	return runtime.GOMAXPROCS(0)
}

// batchSize resolves Options.BatchSize (0 ⇒ DefaultBatchSize).
func batchSize(opts Options) int {
	if opts.BatchSize > 0 {
		return opts.BatchSize
	}

	return DefaultBatchSize
}
