// SPDX-License-Identifier: MIT

// Package cost prices mappings: it derives the sparse set of edges that must
// be added to a host graph so that a set of mappings is satisfied, and the
// total cost of that set.
//
// For a pattern G, host H and mappings M:
//
//	need(m, u, v)   = max(0, G[u][v] − H[m(u)][m(v)])       (saturating)
//	EdgeMap[(x,y)]  = max over m∈M, (u,v) with m(u)=x, m(v)=y of need(m,u,v)
//	Total           = Σ EdgeMap[(x,y)]
//
// Combining mappings takes the per-pair MAXIMUM, never the sum: one added
// edge unit serves every mapping that needs it. Zero deficits are never
// stored, so every EdgeMap value is strictly positive.
//
// All functions are pure and safe for concurrent use on shared read-only
// graphs; they are the unit of work repeated per candidate in both solvers.
package cost
