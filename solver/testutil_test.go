// SPDX-License-Identifier: MIT
// Package solver_test holds helpers shared by the solver tests.
package solver_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kisoext/cost"
	"github.com/katalvlaran/kisoext/mapping"
	"github.com/katalvlaran/kisoext/multigraph"
	"github.com/katalvlaran/kisoext/solver"
)

const (
	// seedDet is the deterministic seed used by approx tests.
	seedDet = int64(42)
)

// edge01 is the one-edge pattern 0→1.
var edge01 = [][]int{{0, 1}, {0, 0}}

// mustGraph builds a graph or fails the test.
func mustGraph(t testing.TB, rows [][]int) *multigraph.Graph {
	t.Helper()
	g, err := multigraph.FromRows(rows)
	require.NoError(t, err)

	return g
}

// zeroGraph returns an n×n graph with no edges.
func zeroGraph(t testing.TB, n int) *multigraph.Graph {
	t.Helper()
	g, err := multigraph.New(n)
	require.NoError(t, err)

	return g
}

// randomGraph fills an n×n matrix with multiplicities in [0, maxMult],
// each entry positive with probability p.
func randomGraph(t testing.TB, rng *rand.Rand, n int, p float64, maxMult int) *multigraph.Graph {
	t.Helper()
	rows := make([][]int, n)
	for u := range rows {
		rows[u] = make([]int, n)
		for v := range rows[u] {
			if u != v && rng.Float64() < p {
				rows[u][v] = 1 + rng.Intn(maxMult)
			}
		}
	}

	return mustGraph(t, rows)
}

// approxOpts returns options for the approximate solver with a fixed seed.
func approxOpts() solver.Options {
	o := solver.DefaultOptions()
	o.Algo = solver.Approximate
	o.Seed = seedDet

	return o
}

// requireValidResult checks the structural invariants every result obeys:
// k distinct valid mappings, positive edge values, Cost == Total(Edges), and
// H + Edges satisfies every mapping.
func requireValidResult(t testing.TB, g, h *multigraph.Graph, k int, res solver.Result) {
	t.Helper()
	require.Len(t, res.Mappings, k)

	var seen mapping.Set
	for _, m := range res.Mappings {
		require.NoError(t, m.Validate(g.N(), h.N()))
		require.True(t, seen.Add(m), "duplicate mapping %v", m)
	}
	for p, w := range res.Edges {
		require.Positive(t, w, "edge %v", p)
	}
	require.Equal(t, cost.Total(res.Edges), res.Cost)

	ext := cost.Apply(h, res.Edges)
	for _, m := range res.Mappings {
		require.True(t, cost.Satisfied(g, ext, m), "mapping %v not realized", m)
	}
}
