// SPDX-License-Identifier: MIT
package solver_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kisoext/cost"
	"github.com/katalvlaran/kisoext/solver"
)

func TestApprox_EdgelessPatternCostsNothing(t *testing.T) {
	g := zeroGraph(t, 1)
	h := mustGraph(t, [][]int{{0, 1, 0}, {0, 0, 1}, {1, 0, 0}})

	res, err := solver.Approx(context.Background(), g, h, 1, approxOpts())
	require.NoError(t, err)
	requireValidResult(t, g, h, 1, res)
	assert.Zero(t, res.Cost)
	assert.Equal(t, solver.Approximate, res.Algorithm)
}

func TestApprox_SingleEdgeIntoEmptyHost(t *testing.T) {
	g := mustGraph(t, edge01)
	h := zeroGraph(t, 2)

	res, err := solver.Approx(context.Background(), g, h, 1, approxOpts())
	require.NoError(t, err)
	requireValidResult(t, g, h, 1, res)
	require.Equal(t, 1, res.Cost)
	m := res.Mappings[0]
	require.Equal(t, cost.EdgeMap{{X: m[0], Y: m[1]}: 1}, res.Edges)
}

// TestApprox_FindsExistingEmbedding: trials starting at (0,0) or (1,1)
// complete to the free embedding [0 1].
func TestApprox_FindsExistingEmbedding(t *testing.T) {
	g := mustGraph(t, edge01)
	h := mustGraph(t, [][]int{{0, 1, 0}, {0, 0, 0}, {0, 0, 0}})

	opts := approxOpts()
	opts.TrialsMultiplier = 8
	res, err := solver.Approx(context.Background(), g, h, 1, opts)
	require.NoError(t, err)
	require.Zero(t, res.Cost)
	require.True(t, cost.Satisfied(g, h, res.Mappings[0]))
}

func TestApprox_Infeasible(t *testing.T) {
	tests := []struct {
		name string
		g, h [][]int
		k    int
	}{
		{"pattern larger than host", [][]int{{0, 1, 0}, {0, 0, 1}, {0, 0, 0}}, [][]int{{0, 0}, {0, 0}}, 1},
		{"k above P(n2,n1)", edge01, [][]int{{0, 0}, {0, 0}}, 3},
		{"empty pattern yields no trials", [][]int{}, [][]int{{0}}, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := solver.Approx(context.Background(), mustGraph(t, tc.g), mustGraph(t, tc.h), tc.k, approxOpts())
			require.Error(t, err)
			assert.True(t, errors.Is(err, solver.ErrInfeasible), "got %v", err)
		})
	}
}

func TestApprox_InvalidOptions(t *testing.T) {
	opts := approxOpts()
	opts.TrialsMultiplier = 0
	_, err := solver.Approx(context.Background(), mustGraph(t, edge01), zeroGraph(t, 3), 1, opts)
	require.True(t, errors.Is(err, solver.ErrInvalidOptions), "got %v", err)
}

func TestApprox_DoesNotMutateHost(t *testing.T) {
	g := mustGraph(t, [][]int{{0, 2}, {1, 0}})
	h := zeroGraph(t, 4)
	before := h.Clone()

	_, err := solver.Approx(context.Background(), g, h, 3, approxOpts())
	require.NoError(t, err)
	require.True(t, before.Equal(h))
}

// TestApprox_StackedMultiplicity: the second stage reuses a host pair raised
// by the first stage and needs more on it; the returned EdgeMap must still
// realize both mappings against the input host.
func TestApprox_StackedMultiplicity(t *testing.T) {
	g := mustGraph(t, [][]int{{0, 1}, {2, 0}})
	h := zeroGraph(t, 2)

	opts := approxOpts()
	opts.TrialsMultiplier = 8
	res, err := solver.Approx(context.Background(), g, h, 2, opts)
	require.NoError(t, err)
	requireValidResult(t, g, h, 2, res)
	require.Equal(t, 4, res.Cost)
	require.Equal(t, cost.EdgeMap{{X: 0, Y: 1}: 2, {X: 1, Y: 0}: 2}, res.Edges)
}

func TestApprox_SeedDeterminism(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g := randomGraph(t, rng, 4, 0.5, 3)
	h := randomGraph(t, rng, 7, 0.3, 2)

	first, err := solver.Approx(context.Background(), g, h, 3, approxOpts())
	require.NoError(t, err)
	second, err := solver.Approx(context.Background(), g, h, 3, approxOpts())
	require.NoError(t, err)

	require.Equal(t, first.Cost, second.Cost)
	require.Equal(t, first.Edges, second.Edges)
	require.Equal(t, first.Mappings, second.Mappings)
}

func TestApprox_WorkerInvariance(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	g := randomGraph(t, rng, 3, 0.6, 2)
	h := randomGraph(t, rng, 6, 0.25, 3)

	ref := approxOpts()
	ref.Workers = 1
	want, err := solver.Approx(context.Background(), g, h, 4, ref)
	require.NoError(t, err)
	requireValidResult(t, g, h, 4, want)

	for _, w := range []int{2, 3, 8} {
		opts := approxOpts()
		opts.Workers = w
		got, err := solver.Approx(context.Background(), g, h, 4, opts)
		require.NoError(t, err)
		require.Equal(t, want.Mappings, got.Mappings, "workers=%d", w)
		require.Equal(t, want.Edges, got.Edges, "workers=%d", w)
	}
}

// TestApprox_ExplicitRand: an explicit *rand.Rand behaves like the same seed.
func TestApprox_ExplicitRand(t *testing.T) {
	g := mustGraph(t, [][]int{{0, 1, 1}, {0, 0, 1}, {0, 0, 0}})
	h := zeroGraph(t, 5)

	bySeed, err := solver.Approx(context.Background(), g, h, 2, approxOpts())
	require.NoError(t, err)

	opts := approxOpts()
	opts.Seed = 0
	opts.Rand = rand.New(rand.NewSource(seedDet))
	byRand, err := solver.Approx(context.Background(), g, h, 2, opts)
	require.NoError(t, err)

	require.Equal(t, bySeed.Mappings, byRand.Mappings)
}

func TestApprox_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := solver.Approx(ctx, mustGraph(t, edge01), zeroGraph(t, 4), 2, approxOpts())
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
}

// TestApprox_Events: stage events bracket every stage, each stage reports T
// trials, and the stage costs add up to the result cost.
func TestApprox_Events(t *testing.T) {
	g := mustGraph(t, edge01)
	h := zeroGraph(t, 3)
	const k = 2
	const trials = 2 * 3

	var events []solver.Event
	opts := approxOpts()
	opts.Observer = solver.ObserverFunc(func(e solver.Event) { events = append(events, e) })

	res, err := solver.Approx(context.Background(), g, h, k, opts)
	require.NoError(t, err)
	require.Len(t, events, k*(trials+2))

	var sum int
	for s := 0; s < k; s++ {
		block := events[s*(trials+2) : (s+1)*(trials+2)]
		require.Equal(t, solver.Event{Kind: solver.EventStageStarted, Stage: s + 1, K: k}, block[0])
		for i, e := range block[1 : trials+1] {
			require.Equal(t, solver.EventTrial, e.Kind)
			require.Equal(t, i+1, e.Trial)
			require.Equal(t, trials, e.Trials)
		}
		done := block[trials+1]
		require.Equal(t, solver.EventStageCompleted, done.Kind)
		require.Equal(t, s+1, done.Stage)
		sum += done.Cost
	}
	require.Equal(t, res.Cost, sum)
}
