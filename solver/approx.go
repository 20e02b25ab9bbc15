// SPDX-License-Identifier: MIT
// Package solver - approximate randomized sequential-greedy extension.
//
// Stage i (1..k) works against H′, the caller's host extended by every
// mapping chosen in stages 1..i-1:
//   - T = n₁·n₂·TrialsMultiplier start pairs (pattern vertex, host vertex)
//     are drawn on the driver goroutine from the stage RNG, in trial order.
//   - Each distinct start pair is completed greedily (see complete) by a
//     bounded pool of workers that only read H′.
//   - Trials are then folded in trial order: complete, not yet used, lowest
//     cost against H′; ties keep the earliest trial.
//   - H′ is raised to satisfy the winner, and the winner's deficits against
//     the input host are merged into the accumulator. The accumulator thus
//     always equals H′ − H, so the returned EdgeMap realizes every chosen
//     mapping even when two stages stack multiplicity on the same host pair.
//
// Determinism: the RNG is consumed by the driver only and the reduction is
// ordered, so a given seed yields the same result for any worker count.

package solver

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/kisoext/cost"
	"github.com/katalvlaran/kisoext/mapping"
	"github.com/katalvlaran/kisoext/multigraph"
)

// Approx builds k distinct embeddings one at a time and returns the
// accumulated extension. The cost is an upper bound of Exact's.
//
// Errors:
//   - ErrNilGraph, ErrInvalidK, ErrInvalidOptions before any work.
//   - ErrInfeasible (wrapped with the stage) when a stage yields no complete,
//     unused mapping. No partial result is returned.
//   - ctx.Err() (wrapped) when cancelled.
//
// Complexity: O(k · n₁n₂ · n₁²n₂) time in the worst case, O(n₂² + n₁n₂) space.
func Approx(ctx context.Context, g, h *multigraph.Graph, k int, opts Options) (Result, error) {
	if err := validateInputs(g, h, k); err != nil {
		return Result{}, err
	}
	if err := validateOptions(opts, Approximate); err != nil {
		return Result{}, err
	}
	start := time.Now()

	a := &approxRun{
		pat:     cost.NewPattern(g),
		g:       g,
		h:       h,
		work:    h.Clone(),
		acc:     make(cost.EdgeMap),
		k:       k,
		trials:  g.N() * h.N() * opts.TrialsMultiplier,
		workers: workerCount(opts),
		base:    resolveRNG(opts),
		emit:    emitter(opts.Observer),
	}

	for stage := 1; stage <= k; stage++ {
		if err := a.stage(ctx, stage); err != nil {
			return Result{}, err
		}
	}

	return Result{
		Cost:      cost.Total(a.acc),
		Edges:     a.acc,
		Mappings:  a.used.Slice(),
		Algorithm: Approximate,
		Elapsed:   time.Since(start),
	}, nil
}

// approxRun is the driver state carried across stages. work and used are
// mutated only between stages, never while trial workers run.
type approxRun struct {
	pat     *cost.Pattern
	g       *multigraph.Graph
	h       *multigraph.Graph // input host, read-only
	work    *multigraph.Graph // H′
	acc     cost.EdgeMap
	used    mapping.Set
	k       int
	trials  int
	workers int
	base    *rand.Rand
	emit    func(Event)
}

// startPair seeds one trial.
type startPair struct {
	u, v int
}

// trialOutcome is the greedy completion of one start pair.
// m == nil means the trial ran out of host vertices.
type trialOutcome struct {
	m    mapping.Mapping
	cost int
}

// stage runs one extension step and applies its winner.
func (a *approxRun) stage(ctx context.Context, stage int) error {
	a.emit(Event{Kind: EventStageStarted, Stage: stage, K: a.k})

	starts := a.drawStarts(deriveRNG(a.base, uint64(stage)))

	// Distinct start pairs, in order of first appearance.
	slot := make(map[startPair]int, len(starts))
	var uniq []startPair
	for _, s := range starts {
		if _, ok := slot[s]; !ok {
			slot[s] = len(uniq)
			uniq = append(uniq, s)
		}
	}

	outcomes, err := a.runTrials(ctx, uniq)
	if err != nil {
		return errors.Wrapf(err, "approx: stage %d/%d aborted", stage, a.k)
	}

	var (
		best     mapping.Mapping
		bestCost = math.MaxInt
	)
	for t, s := range starts {
		a.emit(Event{Kind: EventTrial, Stage: stage, Trial: t + 1, Trials: a.trials})
		o := outcomes[slot[s]]
		if o.m == nil || a.used.Contains(o.m) {
			continue
		}
		if o.cost < bestCost {
			best, bestCost = o.m, o.cost
		}
	}
	if best == nil {
		return errors.Wrapf(ErrInfeasible, "approx: stage %d/%d found no complete unused mapping in %d trials",
			stage, a.k, a.trials)
	}

	cost.Merge(a.acc, a.pat.EdgeMap(a.h, best))
	for _, e := range a.pat.Edges() {
		a.work.RaiseTo(best[e.U], best[e.V], e.Mult)
	}
	a.used.Add(best)
	a.emit(Event{Kind: EventStageCompleted, Stage: stage, K: a.k, Cost: bestCost})

	return nil
}

// drawStarts draws a.trials start pairs sequentially from rng.
func (a *approxRun) drawStarts(rng *rand.Rand) []startPair {
	n1, n2 := a.g.N(), a.work.N()
	starts := make([]startPair, a.trials)
	for t := range starts {
		starts[t] = startPair{u: rng.Intn(n1), v: rng.Intn(n2)}
	}

	return starts
}

// runTrials completes every start pair with at most a.workers goroutines.
func (a *approxRun) runTrials(ctx context.Context, uniq []startPair) ([]trialOutcome, error) {
	out := make([]trialOutcome, len(uniq))

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(a.workers)
	for i, s := range uniq {
		if gctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			m := a.complete(s)
			if m != nil {
				out[i] = trialOutcome{m: m, cost: a.pat.Cost(a.work, m)}
			}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// complete maps s.u to s.v, then places the remaining pattern vertices in
// ascending order, each on the unused host vertex with the smallest local
// cost (ties to the lowest host index). Returns nil when the host runs out
// of vertices.
func (a *approxRun) complete(s startPair) mapping.Mapping {
	n1, n2 := a.g.N(), a.work.N()
	m := make(mapping.Mapping, n1)
	for i := range m {
		m[i] = -1
	}
	used := make([]bool, n2)
	placed := make([]int, 0, n1)

	m[s.u] = s.v
	used[s.v] = true
	placed = append(placed, s.u)

	for u := 0; u < n1; u++ {
		if m[u] >= 0 {
			continue
		}
		bestV, bestC := -1, math.MaxInt
		for v := 0; v < n2; v++ {
			if used[v] {
				continue
			}
			if c := a.localCost(u, v, m, placed); c < bestC {
				bestV, bestC = v, c
			}
		}
		if bestV < 0 {
			return nil
		}
		m[u] = bestV
		used[bestV] = true
		placed = append(placed, u)
	}

	return m
}

// localCost sums the saturating deficits, in both directions, between
// candidate u→v and every pattern vertex already placed.
func (a *approxRun) localCost(u, v int, m mapping.Mapping, placed []int) int {
	var c, need int
	for _, p := range placed {
		if need = a.g.Edge(u, p) - a.work.Edge(v, m[p]); need > 0 {
			c += need
		}
		if need = a.g.Edge(p, u) - a.work.Edge(m[p], v); need > 0 {
			c += need
		}
	}

	return c
}
