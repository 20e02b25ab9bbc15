// SPDX-License-Identifier: MIT

// Package kisoext finds the cheapest way to add edges to a directed host
// multigraph H so that it contains k distinct embeddings of a pattern
// multigraph G.
//
// The module is organized as:
//
//	multigraph/ - n×n matrix of edge multiplicities (the Graph type)
//	mapping/    - injective vertex maps, enumeration, combination counts
//	cost/       - per-pair deficits, edge maps and their merge
//	solver/     - Exact (parallel combination search) and Approx (randomized
//	              sequential greedy), dispatched by Solve
//	instance/   - text input format (participle grammar)
//	generator/  - random instances with a planted embedding
//	report/     - text report and Graphviz DOT of the extended host
//	history/    - bolthold store of past runs
//	cmd/kisoext - the command line (solve, generate, bench, history)
//
// Quick start:
//
//	inst, _ := instance.ReadFile("input.txt")
//	res, err := solver.Solve(ctx, inst.G, inst.H, 2, solver.DefaultOptions())
//	// res.Cost edges, res.Edges[pair] multiplicities, res.Mappings witnesses
package kisoext
