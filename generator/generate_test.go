// SPDX-License-Identifier: MIT
package generator_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kisoext/cost"
	"github.com/katalvlaran/kisoext/generator"
	"github.com/katalvlaran/kisoext/multigraph"
)

func TestGenerate_Shape(t *testing.T) {
	inst, planted, err := generator.Generate(4, 9, generator.WithSeed(1))
	require.NoError(t, err)
	require.Equal(t, 4, inst.G.N())
	require.Equal(t, 9, inst.H.N())
	require.NoError(t, planted.Mapping.Validate(4, 9))

	for _, g := range []*multigraph.Graph{inst.G, inst.H} {
		for v := 0; v < g.N(); v++ {
			require.Zero(t, g.Edge(v, v), "self-loop at %d", v)
		}
	}
}

func TestGenerate_SeedDeterminism(t *testing.T) {
	a, pa, err := generator.Generate(5, 12, generator.WithSeed(99))
	require.NoError(t, err)
	b, pb, err := generator.Generate(5, 12, generator.WithSeed(99))
	require.NoError(t, err)

	require.True(t, a.G.Equal(b.G))
	require.True(t, a.H.Equal(b.H))
	require.Equal(t, pa, pb)

	c, _, err := generator.Generate(5, 12, generator.WithRand(rand.New(rand.NewSource(99))))
	require.NoError(t, err)
	require.True(t, a.H.Equal(c.H), "WithRand and WithSeed must agree")
}

func TestGenerate_FullEmbedding(t *testing.T) {
	inst, planted, err := generator.Generate(5, 8,
		generator.WithSeed(3),
		generator.WithDensityG(0.8),
		generator.WithEmbedStrength(1),
		generator.WithDeficitStrength(0),
	)
	require.NoError(t, err)
	require.True(t, cost.Satisfied(inst.G, inst.H, planted.Mapping))
	require.Equal(t, inst.G.EdgeCount(), planted.Embedded)
	require.Zero(t, planted.Deficit)
}

func TestGenerate_FullDeficit(t *testing.T) {
	inst, planted, err := generator.Generate(5, 8,
		generator.WithSeed(4),
		generator.WithDensityG(0.8),
		generator.WithDensityH(0.9),
		generator.WithEmbedStrength(0),
		generator.WithDeficitStrength(1),
	)
	require.NoError(t, err)
	require.Equal(t, inst.G.EdgeCount(), planted.Deficit)

	m := planted.Mapping
	for u := 0; u < inst.G.N(); u++ {
		for v := 0; v < inst.G.N(); v++ {
			if w := inst.G.Edge(u, v); w > 0 {
				require.Less(t, inst.H.Edge(m[u], m[v]), w, "pattern edge %d→%d", u, v)
			}
		}
	}
}

// TestGenerate_OnlyPlantedEdges: with an empty base host and no noise, the
// host holds exactly the embedded pattern edges.
func TestGenerate_OnlyPlantedEdges(t *testing.T) {
	inst, planted, err := generator.Generate(3, 6,
		generator.WithSeed(5),
		generator.WithDensityG(1),
		generator.WithDensityH(0),
		generator.WithEmbedStrength(1),
		generator.WithNoise(false),
	)
	require.NoError(t, err)
	require.Equal(t, inst.G.Multiplicity(), inst.H.Multiplicity())
	require.Equal(t, 6, inst.G.EdgeCount())
	require.True(t, cost.Satisfied(inst.G, inst.H, planted.Mapping))
}

func TestGenerate_Multiedges(t *testing.T) {
	inst, _, err := generator.Generate(6, 10,
		generator.WithSeed(8),
		generator.WithDensityG(1),
		generator.WithMultiedgeProb(1),
		generator.WithMaxMultiedge(3),
	)
	require.NoError(t, err)
	for u := 0; u < 6; u++ {
		for v := 0; v < 6; v++ {
			if u != v {
				w := inst.G.Edge(u, v)
				require.GreaterOrEqual(t, w, 2)
				require.LessOrEqual(t, w, 3)
			}
		}
	}
}

func TestGenerate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		n1, n2 int
		opts   []generator.Option
		want   error
	}{
		{"zero n1", 0, 3, []generator.Option{generator.WithSeed(1)}, generator.ErrTooFewVertices},
		{"equal sizes", 3, 3, []generator.Option{generator.WithSeed(1)}, generator.ErrPatternTooLarge},
		{"pattern larger", 4, 3, []generator.Option{generator.WithSeed(1)}, generator.ErrPatternTooLarge},
		{"density above 1", 2, 3, []generator.Option{generator.WithSeed(1), generator.WithDensityG(1.5)}, generator.ErrInvalidProbability},
		{"negative strength", 2, 3, []generator.Option{generator.WithSeed(1), generator.WithDeficitStrength(-0.1)}, generator.ErrInvalidProbability},
		{"NaN", 2, 3, []generator.Option{generator.WithSeed(1), generator.WithMultiedgeProb(math.NaN())}, generator.ErrInvalidProbability},
		{"max multiedge", 2, 3, []generator.Option{generator.WithSeed(1), generator.WithMaxMultiedge(0)}, generator.ErrTooFewVertices},
		{"negative noise", 2, 3, []generator.Option{generator.WithSeed(1), generator.WithNoiseMax(-1)}, generator.ErrTooFewVertices},
		{"no rng", 2, 3, nil, generator.ErrNeedRandSource},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			inst, _, err := generator.Generate(tc.n1, tc.n2, tc.opts...)
			require.Nil(t, inst)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestWithRand_NilPanics(t *testing.T) {
	require.Panics(t, func() { generator.WithRand(nil) })
}
