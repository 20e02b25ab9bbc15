// SPDX-License-Identifier: MIT
// Package solver_test: benchmarks on fixed random instances.
// Inputs are built outside the timer; only the solver call is measured.
package solver_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/kisoext/solver"
)

func BenchmarkExact_n3_n5_k2(b *testing.B) {
	rng := rand.New(rand.NewSource(seedDet))
	g := randomGraph(b, rng, 3, 0.5, 2)
	h := randomGraph(b, rng, 5, 0.3, 2)
	opts := solver.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solver.Exact(context.Background(), g, h, 2, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkApprox_n5_n12_k4(b *testing.B) {
	rng := rand.New(rand.NewSource(seedDet))
	g := randomGraph(b, rng, 5, 0.4, 3)
	h := randomGraph(b, rng, 12, 0.2, 2)
	opts := approxOpts()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solver.Approx(context.Background(), g, h, 4, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkApprox_Workers(b *testing.B) {
	rng := rand.New(rand.NewSource(seedDet))
	g := randomGraph(b, rng, 6, 0.4, 3)
	h := randomGraph(b, rng, 16, 0.2, 2)

	for _, w := range []int{1, 4} {
		opts := approxOpts()
		opts.Workers = w
		b.Run(fmt.Sprintf("workers=%d", w), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := solver.Approx(context.Background(), g, h, 3, opts); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
