// SPDX-License-Identifier: MIT
// Package solver - exact search over k-combinations of injective mappings.
//
// Pipeline:
//  1. |M| = P(n₂,n₁) < k ⇒ ErrInfeasible; |M| > MaxMappings or
//     C(|M|,k) > MaxCombinations ⇒ ErrSearchSpaceTooLarge. Only then is
//     M = mapping.FindAllContext(ctx, G, H) materialized.
//  2. Stream every k-combination of M (lexicographic, gonum combin) in
//     batches from one producer goroutine to Workers consumers.
//  3. Each consumer prices its combinations (cost.Pattern.EdgeMap combining
//     the k mappings by per-pair maximum, then cost.Total).
//  4. Reduction: the shared incumbent (cost, index, combination, edges) is
//     guarded by one mutex. A consumer first compares against an atomic
//     mirror of the incumbent cost without locking; only a candidate that is
//     at least as cheap takes the lock and re-checks, because the incumbent
//     may have moved in between. Correctness rests on the locked compare.
//  5. Ties are broken by the lower combination index, so the witness is
//     reproducible regardless of scheduling.

package solver

import (
	"context"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/kisoext/cost"
	"github.com/katalvlaran/kisoext/mapping"
	"github.com/katalvlaran/kisoext/multigraph"
)

// Exact returns a provably minimal extension of h containing k distinct
// embeddings of g.
//
// Errors:
//   - ErrNilGraph, ErrInvalidK, ErrInvalidOptions before any work.
//   - ErrInfeasible when fewer than k injective mappings exist.
//   - ErrSearchSpaceTooLarge when |M| > MaxMappings or
//     C(|M|, k) > MaxCombinations, before anything is enumerated.
//   - ctx.Err() (wrapped) when cancelled; no partial result is returned.
func Exact(ctx context.Context, g, h *multigraph.Graph, k int, opts Options) (Result, error) {
	if err := validateInputs(g, h, k); err != nil {
		return Result{}, err
	}
	if err := validateOptions(opts, ExactSearch); err != nil {
		return Result{}, err
	}
	start := time.Now()
	emit := emitter(opts.Observer)

	// |M| is known before enumerating, so both guards run up front.
	count := mapping.Count(g.N(), h.N())
	if count < k {
		emit(Event{Kind: EventEnumerated, Mappings: count})
		return Result{}, errors.Wrapf(ErrInfeasible, "exact: %d injective mappings, need k=%d", count, k)
	}
	if count > MaxMappings {
		return Result{}, errors.Wrapf(ErrSearchSpaceTooLarge, "exact: P(%d,%d) mappings", h.N(), g.N())
	}
	total := mapping.NumCombinations(count, k)
	if total > MaxCombinations {
		return Result{}, errors.Wrapf(ErrSearchSpaceTooLarge, "exact: C(%d,%d) combinations", count, k)
	}

	ms, err := mapping.FindAllContext(ctx, g, h)
	if err != nil {
		return Result{}, errors.Wrap(err, "exact: enumeration aborted")
	}
	emit(Event{Kind: EventEnumerated, Mappings: len(ms)})

	s := &exactSearch{
		pat:     cost.NewPattern(g),
		h:       h,
		ms:      ms,
		k:       k,
		total:   total,
		workers: workerCount(opts),
		batch:   batchSize(opts),
		emit:    emit,
	}
	s.bestCost.Store(math.MaxInt64)

	if err := s.run(ctx); err != nil {
		return Result{}, errors.Wrap(err, "exact: search aborted")
	}
	emit(Event{Kind: EventCombinations, Done: total, Total: total})

	// The combination space is finite and non-empty (|M| ≥ k ≥ 1), so a
	// completed run always has an incumbent.
	res := Result{
		Cost:      s.best.cost,
		Edges:     s.best.edges,
		Mappings:  make([]mapping.Mapping, k),
		Algorithm: ExactSearch,
	}
	for i, idx := range s.best.combo {
		res.Mappings[i] = ms[idx].Clone()
	}
	res.Elapsed = time.Since(start)

	return res, nil
}

// exactSearch holds the shared state of one Exact call.
type exactSearch struct {
	pat     *cost.Pattern
	h       *multigraph.Graph
	ms      []mapping.Mapping
	k       int
	total   int
	workers int
	batch   int
	emit    func(Event)

	bestCost atomic.Int64 // lock-free mirror of best.cost for pre-checks

	progressMu sync.Mutex // serializes emit; guards evaluated
	evaluated  int        // combinations priced so far

	mu   sync.Mutex
	best incumbent
}

// incumbent is the best combination seen so far.
type incumbent struct {
	found bool
	cost  int
	index int   // lexicographic combination index
	combo []int // indices into ms
	edges cost.EdgeMap
}

// comboBatch is a run of consecutive combinations starting at index first.
type comboBatch struct {
	first  int
	combos [][]int
}

// run wires one producer and s.workers consumers through an errgroup.
func (s *exactSearch) run(ctx context.Context) error {
	eg, gctx := errgroup.WithContext(ctx)
	batches := make(chan comboBatch, s.workers)

	eg.Go(func() error {
		defer close(batches)
		return s.produce(gctx, batches)
	})
	for w := 0; w < s.workers; w++ {
		eg.Go(func() error {
			return s.consume(gctx, batches)
		})
	}

	if err := eg.Wait(); err != nil {
		return err
	}

	// A pre-cancelled ctx can race every select above to completion.
	return ctx.Err()
}

// produce streams all k-combinations of ms in lexicographic order.
func (s *exactSearch) produce(ctx context.Context, out chan<- comboBatch) error {
	gen := combin.NewCombinationGenerator(len(s.ms), s.k)
	cur := comboBatch{combos: make([][]int, 0, s.batch)}
	next := 0

	flush := func() error {
		if len(cur.combos) == 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case out <- cur:
		}
		cur = comboBatch{first: next, combos: make([][]int, 0, s.batch)}

		return nil
	}

	for gen.Next() {
		cur.combos = append(cur.combos, gen.Combination(nil))
		next++
		if len(cur.combos) == s.batch {
			if err := flush(); err != nil {
				return err
			}
		}
	}

	return flush()
}

// consume prices batches until the channel closes or ctx is cancelled.
func (s *exactSearch) consume(ctx context.Context, in <-chan comboBatch) error {
	sel := make([]mapping.Mapping, s.k) // reused selection buffer

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case b, ok := <-in:
			if !ok {
				return nil
			}
			for i, combo := range b.combos {
				s.evaluate(b.first+i, combo, sel)
			}
			s.progress(len(b.combos))
		}
	}
}

// evaluate prices one combination and offers it to the incumbent.
func (s *exactSearch) evaluate(index int, combo []int, sel []mapping.Mapping) {
	for i, idx := range combo {
		sel[i] = s.ms[idx]
	}
	em := s.pat.EdgeMap(s.h, sel...)
	c := cost.Total(em)

	// Unlocked pre-check: a strictly worse candidate can never win.
	if int64(c) > s.bestCost.Load() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.best.found && (c > s.best.cost || (c == s.best.cost && index > s.best.index)) {
		return
	}
	s.best = incumbent{found: true, cost: c, index: index, combo: combo, edges: em}
	s.bestCost.Store(int64(c))
}

// progress counts n priced combinations and reports the running total.
// Consumers call it concurrently; the lock keeps Done increasing and the
// observer calls sequential.
func (s *exactSearch) progress(n int) {
	s.progressMu.Lock()
	defer s.progressMu.Unlock()
	s.evaluated += n
	s.emit(Event{Kind: EventCombinations, Done: s.evaluated, Total: s.total})
}
