// SPDX-License-Identifier: MIT

package cost

import (
	"github.com/katalvlaran/kisoext/mapping"
	"github.com/katalvlaran/kisoext/multigraph"
)

// PatternEdge is one ordered pattern pair with positive multiplicity.
type PatternEdge struct {
	U, V int // pattern vertices
	Mult int // G[U][V] > 0
}

// Pattern is the pre-scanned edge list of a pattern graph, so the hot loops
// in the solvers visit only positive entries instead of all n₁² pairs.
type Pattern struct {
	g     *multigraph.Graph
	edges []PatternEdge // row-major order
}

// NewPattern scans g once and keeps its positive entries.
// Complexity: O(n₁²).
func NewPattern(g *multigraph.Graph) *Pattern {
	p := &Pattern{g: g}

	var (
		n    = g.N()
		u, v int
		m    int
	)
	for u = 0; u < n; u++ {
		for v = 0; v < n; v++ {
			if m = g.Edge(u, v); m > 0 {
				p.edges = append(p.edges, PatternEdge{U: u, V: v, Mult: m})
			}
		}
	}

	return p
}

// Graph returns the underlying pattern graph.
func (p *Pattern) Graph() *multigraph.Graph { return p.g }

// Edges returns the positive pattern entries in row-major order.
// The slice is shared; callers must not modify it.
func (p *Pattern) Edges() []PatternEdge { return p.edges }

// EdgeMap computes the combined deficit of ms against h (see package doc).
// Mappings must be valid for (p, h); an out-of-range host index panics.
//
// Complexity: O(|ms| · |E(G)|) time, O(|result|) space.
func (p *Pattern) EdgeMap(h *multigraph.Graph, ms ...mapping.Mapping) EdgeMap {
	em := make(EdgeMap)
	p.accumulate(em, h, ms)

	return em
}

// Cost is Total(p.EdgeMap(h, m)) for one mapping without allocating the map.
// Valid for a single mapping only: an injective mapping never sends two
// pattern pairs to the same host pair, so per-pair maxima equal the sum.
//
// Complexity: O(|E(G)|).
func (p *Pattern) Cost(h *multigraph.Graph, m mapping.Mapping) int {
	var (
		s    int
		need int
	)
	for _, e := range p.edges {
		if need = e.Mult - h.Edge(m[e.U], m[e.V]); need > 0 {
			s += need
		}
	}

	return s
}

// Satisfied reports whether h already realizes m (zero deficit).
func (p *Pattern) Satisfied(h *multigraph.Graph, m mapping.Mapping) bool {
	for _, e := range p.edges {
		if h.Edge(m[e.U], m[e.V]) < e.Mult {
			return false
		}
	}

	return true
}

func (p *Pattern) accumulate(em EdgeMap, h *multigraph.Graph, ms []mapping.Mapping) {
	var (
		key  Pair
		need int
	)
	for _, m := range ms {
		for _, e := range p.edges {
			need = e.Mult - h.Edge(m[e.U], m[e.V])
			if need <= 0 {
				continue
			}
			key = Pair{X: m[e.U], Y: m[e.V]}
			if need > em[key] {
				em[key] = need
			}
		}
	}
}

// Compute is the one-shot form of Pattern.EdgeMap: it returns the EdgeMap
// needed for h to satisfy every mapping in ms simultaneously.
//
// Complexity: O(n₁² + |ms|·|E(G)|).
func Compute(g, h *multigraph.Graph, ms ...mapping.Mapping) EdgeMap {
	return NewPattern(g).EdgeMap(h, ms...)
}

// Satisfied reports whether h contains the embedding m of g.
func Satisfied(g, h *multigraph.Graph, m mapping.Mapping) bool {
	return NewPattern(g).Satisfied(h, m)
}
