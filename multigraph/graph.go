// SPDX-License-Identifier: MIT
// Package multigraph: Graph is a row-major n×n multiplicity matrix stored in a
// flat slice for cache friendliness (same layout as a dense matrix).

package multigraph

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Graph is a directed multigraph over vertices 0..n-1.
// adj holds n*n multiplicities in row-major order: adj[u*n+v] = #edges u→v.
type Graph struct {
	n   int   // vertex count
	adj []int // flat backing storage, len == n*n
}

// New returns an n-vertex graph with no edges.
// n == 0 is allowed (the empty graph); n < 0 returns ErrBadShape.
// Complexity: O(n²) time and memory.
func New(n int) (*Graph, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrBadShape, "New(%d)", n)
	}

	return &Graph{n: n, adj: make([]int, n*n)}, nil
}

// FromRows builds a Graph from an adjacency matrix given row by row.
// The input is copied; later changes to rows do not affect the Graph.
//
// Errors:
//   - ErrNonSquare if any row length differs from len(rows).
//   - ErrNegativeMultiplicity if any entry is < 0.
//
// Complexity: O(n²).
func FromRows(rows [][]int) (*Graph, error) {
	n := len(rows)
	g := &Graph{n: n, adj: make([]int, n*n)}

	var (
		i, j int
		x    int
	)
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, errors.Wrapf(ErrNonSquare, "row %d has %d entries, want %d", i, len(rows[i]), n)
		}
		for j = 0; j < n; j++ {
			x = rows[i][j]
			if x < 0 {
				return nil, errors.Wrapf(ErrNegativeMultiplicity, "entry (%d,%d)=%d", i, j, x)
			}
			g.adj[i*n+j] = x
		}
	}

	return g, nil
}

// MustFromRows is FromRows that panics on error. Intended for fixtures and
// examples where the literal is known to be valid.
func MustFromRows(rows [][]int) *Graph {
	g, err := FromRows(rows)
	if err != nil {
		panic(err)
	}

	return g
}

// N returns the number of vertices.
// Complexity: O(1).
func (g *Graph) N() int { return g.n }

// Edge returns the multiplicity of u→v (0 when there is no edge).
// Panics if u or v is outside [0..N()-1].
// Complexity: O(1).
func (g *Graph) Edge(u, v int) int {
	g.mustIndex(u, v)

	return g.adj[u*g.n+v]
}

// RaiseTo sets the multiplicity of u→v to max(current, m).
// It is the only mutation a Graph supports and must only be applied to a
// Graph owned exclusively by the caller (typically a Clone).
// Panics if u or v is outside [0..N()-1].
// Complexity: O(1).
func (g *Graph) RaiseTo(u, v, m int) {
	g.mustIndex(u, v)
	if idx := u*g.n + v; m > g.adj[idx] {
		g.adj[idx] = m
	}
}

// mustIndex panics with a descriptive message on an out-of-range pair.
func (g *Graph) mustIndex(u, v int) {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		panic(fmt.Sprintf("multigraph: index (%d,%d) out of range for n=%d", u, v, g.n))
	}
}

// Clone returns a deep copy.
// Complexity: O(n²).
func (g *Graph) Clone() *Graph {
	cp := make([]int, len(g.adj))
	copy(cp, g.adj)

	return &Graph{n: g.n, adj: cp}
}

// Rows returns the adjacency matrix as a fresh [][]int.
// Complexity: O(n²).
func (g *Graph) Rows() [][]int {
	out := make([][]int, g.n)
	for i := 0; i < g.n; i++ {
		out[i] = make([]int, g.n)
		copy(out[i], g.adj[i*g.n:(i+1)*g.n])
	}

	return out
}

// Equal reports whether g and o have the same size and multiplicities.
func (g *Graph) Equal(o *Graph) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.n != o.n {
		return false
	}
	for i := range g.adj {
		if g.adj[i] != o.adj[i] {
			return false
		}
	}

	return true
}

// EdgeCount returns the number of ordered pairs with a positive multiplicity.
func (g *Graph) EdgeCount() int {
	var c int
	for _, x := range g.adj {
		if x > 0 {
			c++
		}
	}

	return c
}

// Multiplicity returns the total number of edges (sum of all entries).
func (g *Graph) Multiplicity() int {
	var s int
	for _, x := range g.adj {
		s += x
	}

	return s
}

// String renders the matrix as bracketed rows, e.g. "[[0 1] [0 0]]".
func (g *Graph) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < g.n; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, g.adj[i*g.n:(i+1)*g.n])
	}
	sb.WriteByte(']')

	return sb.String()
}
