// SPDX-License-Identifier: MIT

package solver

import (
	"context"

	"github.com/pkg/errors"

	"github.com/katalvlaran/kisoext/multigraph"
)

// Solve dispatches to Exact or Approx by opts.Algo.
//
// Contract:
//   - g is the pattern, h the host; neither is modified.
//   - k ≥ 1 distinct embeddings are requested.
//   - Unknown opts.Algo ⇒ ErrUnsupportedAlgorithm.
func Solve(ctx context.Context, g, h *multigraph.Graph, k int, opts Options) (Result, error) {
	switch opts.Algo {
	case ExactSearch:
		return Exact(ctx, g, h, k, opts)
	case Approximate:
		return Approx(ctx, g, h, k, opts)
	default:
		return Result{}, errors.Wrapf(ErrUnsupportedAlgorithm, "algorithm %d", int(opts.Algo))
	}
}
