// SPDX-License-Identifier: MIT

// Package solver finds a minimum-cost extension of a host multigraph H so
// that H contains at least k distinct injective embeddings of a pattern G.
//
// Two algorithms share the data model of packages multigraph, mapping and
// cost:
//
//   - Exact: enumerate every injective mapping, evaluate every k-combination
//     of them in parallel and keep the cheapest. Provably optimal.
//     Complexity: O(C(P(n₂,n₁), k) · k · |E(G)|); exponential, use on small
//     instances only.
//
//   - Approx: sequential randomized greedy: k stages, each running
//     T = n₁·n₂·TrialsMultiplier greedy trials against a working copy H′ that
//     grows after every stage. Upper bound on the exact optimum.
//     Complexity: O(k · n₁·n₂ · n₁·n₂·n₁) worst case per call.
//
// Entry points: Exact, Approx and the Solve dispatcher. All accept a
// context.Context; cancellation is observed between combination batches
// (Exact) and between trials (Approx), never mid-evaluation.
//
// Determinism:
//   - Exact returns the cheapest combination with the lowest lexicographic
//     combination index, independent of worker scheduling.
//   - Approx draws every random choice from an explicit *rand.Rand
//     (Options.Rand, or a stream seeded from Options.Seed). Same seed ⇒ same
//     result, for any worker count.
//
// Progress is reported through an injected Observer (see events.go).
// Events of one call are delivered sequentially.
//
// Errors (errors.go): ErrNilGraph, ErrInvalidK and ErrInvalidOptions are
// rejected before any work starts; ErrInfeasible is a normal outcome meaning
// "no k distinct embeddings" (Exact) or "the heuristic could not construct k"
// (Approx); ErrSearchSpaceTooLarge guards the exact path.
package solver
