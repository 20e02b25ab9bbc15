// SPDX-License-Identifier: MIT
// Package solver_test: runnable examples with stable output.
package solver_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/kisoext/multigraph"
	"github.com/katalvlaran/kisoext/solver"
)

// ExampleExact embeds the single edge 0→1 twice into an empty 3-vertex host.
// Distinct mappings use distinct host pairs, so two edges are added.
func ExampleExact() {
	g := multigraph.MustFromRows([][]int{{0, 1}, {0, 0}})
	h := multigraph.MustFromRows([][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}})

	res, err := solver.Exact(context.Background(), g, h, 2, solver.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cost:", res.Cost)
	fmt.Println("mappings:", res.Mappings)
	for _, p := range res.Edges.Pairs() {
		fmt.Printf("add %d→%d ×%d\n", p.X, p.Y, res.Edges[p])
	}
	// Output:
	// cost: 2
	// mappings: [[0 1] [0 2]]
	// add 0→1 ×1
	// add 0→2 ×1
}

// ExampleApprox runs the seeded heuristic through the Solve dispatcher.
func ExampleApprox() {
	g := multigraph.MustFromRows([][]int{{0, 2}, {0, 0}})
	h := multigraph.MustFromRows([][]int{{0, 0}, {0, 0}})

	opts := solver.DefaultOptions()
	opts.Algo = solver.Approximate
	opts.Seed = 7

	res, err := solver.Solve(context.Background(), g, h, 1, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Algorithm, res.Cost, len(res.Mappings))
	// Output:
	// approx 2 1
}
