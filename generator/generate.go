// SPDX-License-Identifier: MIT

package generator

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/katalvlaran/kisoext/instance"
	"github.com/katalvlaran/kisoext/mapping"
	"github.com/katalvlaran/kisoext/multigraph"
)

// Planted describes the embedding the generator built the host around.
type Planted struct {
	// Mapping is the planted injective mapping of G into H.
	Mapping mapping.Mapping
	// Embedded is the number of G's edges made satisfied under Mapping.
	Embedded int
	// Deficit is the number of G's edges forced under-satisfied.
	Deficit int
}

// Generate builds a random instance with n1 pattern and n2 host vertices.
//
// Errors: ErrTooFewVertices, ErrPatternTooLarge, ErrInvalidProbability,
// ErrNeedRandSource. Nothing is drawn from the RNG when validation fails.
//
// Complexity: O(n₂²).
func Generate(n1, n2 int, opts ...Option) (*instance.Instance, Planted, error) {
	if err := validateSizes(n1, n2); err != nil {
		return nil, Planted{}, err
	}
	cfg := newConfig(opts...)
	if err := validateConfig(cfg); err != nil {
		return nil, Planted{}, err
	}

	gen := &generator{cfg: cfg, rng: cfg.rng}
	g := gen.randomMatrix(n1, cfg.densityG)
	h := gen.randomMatrix(n2, cfg.densityH)
	m := gen.injective(n1, n2)
	planted := gen.adjust(g, h, m)
	if cfg.noise {
		gen.addNoise(h, unused(m, n2))
	}

	gg, err := multigraph.FromRows(g)
	if err != nil {
		return nil, Planted{}, errors.Wrap(err, "generator: pattern")
	}
	hh, err := multigraph.FromRows(h)
	if err != nil {
		return nil, Planted{}, errors.Wrap(err, "generator: host")
	}

	return &instance.Instance{G: gg, H: hh}, planted, nil
}

type generator struct {
	cfg config
	rng *rand.Rand
}

// edgeCount returns 1, or with probability multiedgeProb a multiplicity in
// [2, maxMultiedge].
func (gen *generator) edgeCount() int {
	if gen.cfg.maxMultiedge < 2 || gen.rng.Float64() >= gen.cfg.multiedgeProb {
		return 1
	}

	return 2 + gen.rng.Intn(gen.cfg.maxMultiedge-1)
}

// randomMatrix draws an n×n loop-free multigraph matrix.
func (gen *generator) randomMatrix(n int, density float64) [][]int {
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, n)
		for j := range rows[i] {
			if i == j {
				continue
			}
			if gen.rng.Float64() < density {
				rows[i][j] = gen.edgeCount()
			}
		}
	}

	return rows
}

// injective shuffles 0..n2-1 (Fisher–Yates) and keeps the first n1.
func (gen *generator) injective(n1, n2 int) mapping.Mapping {
	pool := make([]int, n2)
	for i := range pool {
		pool[i] = i
	}
	for i := n2 - 1; i > 0; i-- {
		j := gen.rng.Intn(i + 1)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return mapping.Mapping(pool[:n1])
}

// adjust satisfies a shuffled embedStrength share of G's edges under m and
// forces deficits on the next deficitStrength share.
func (gen *generator) adjust(g, h [][]int, m mapping.Mapping) Planted {
	type pair struct{ i, j int }
	var edges []pair
	for i, row := range g {
		for j, w := range row {
			if w > 0 {
				edges = append(edges, pair{i, j})
			}
		}
	}
	planted := Planted{Mapping: m}
	if len(edges) == 0 {
		return planted
	}

	gen.rng.Shuffle(len(edges), func(a, b int) { edges[a], edges[b] = edges[b], edges[a] })

	embedEnd := min(int(math.Round(float64(len(edges))*gen.cfg.embedStrength)), len(edges))
	deficitEnd := min(embedEnd+int(math.Round(float64(len(edges))*gen.cfg.deficitStrength)), len(edges))

	for _, e := range edges[:embedEnd] {
		x, y := m[e.i], m[e.j]
		h[x][y] = max(h[x][y], g[e.i][e.j])
	}
	for _, e := range edges[embedEnd:deficitEnd] {
		x, y := m[e.i], m[e.j]
		need, cur := g[e.i][e.j], h[x][y]
		switch {
		case cur >= need:
			h[x][y] = gen.rng.Intn(need)
		case cur > 0 && gen.rng.Float64() < deficitWorsenProb:
			h[x][y] = cur - 1
		}
	}
	planted.Embedded = embedEnd
	planted.Deficit = deficitEnd - embedEnd

	return planted
}

// addNoise sprinkles edges of multiplicity ≤ noiseMax among vertices in
// free. Existing multiplicities never decrease.
func (gen *generator) addNoise(h [][]int, free []int) {
	if gen.cfg.noiseMax == 0 {
		return
	}
	for _, u := range free {
		for _, v := range free {
			if u == v {
				continue
			}
			if gen.rng.Float64() < noiseProb {
				if w := gen.rng.Intn(gen.cfg.noiseMax + 1); w > h[u][v] {
					h[u][v] = w
				}
			}
		}
	}
}

// unused lists host vertices not in m, ascending.
func unused(m mapping.Mapping, n2 int) []int {
	taken := make([]bool, n2)
	for _, x := range m {
		taken[x] = true
	}
	out := make([]int, 0, n2-len(m))
	for v, t := range taken {
		if !t {
			out = append(out, v)
		}
	}

	return out
}
