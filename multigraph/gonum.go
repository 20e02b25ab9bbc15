// SPDX-License-Identifier: MIT

package multigraph

import (
	"gonum.org/v1/gonum/graph/multi"
)

// ToGonum exports g as a gonum directed multigraph. Vertex i becomes node
// ID i; an entry of multiplicity m becomes m parallel lines.
// Isolated vertices are kept as nodes.
//
// Complexity: O(n² + total multiplicity).
func (g *Graph) ToGonum() *multi.DirectedGraph {
	dg := multi.NewDirectedGraph()

	var u, v, k int
	for u = 0; u < g.n; u++ {
		dg.AddNode(multi.Node(u))
	}
	for u = 0; u < g.n; u++ {
		for v = 0; v < g.n; v++ {
			for k = 0; k < g.adj[u*g.n+v]; k++ {
				dg.SetLine(dg.NewLine(multi.Node(u), multi.Node(v)))
			}
		}
	}

	return dg
}
