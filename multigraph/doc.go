// SPDX-License-Identifier: MIT

// Package multigraph provides the directed multigraph used by every solver in
// kisoext: an n×n matrix of non-negative integer edge multiplicities.
//
// Model:
//
//	adj[u][v] = number of parallel directed edges u→v   (u, v ∈ [0..n-1])
//
// Self-loop entries (u == v) are ordinary entries; nothing in this package
// treats the diagonal specially.
//
// Mutability:
//   - A Graph is immutable once built, with one exception: RaiseTo, the
//     monotone in-place update used by the approximate solver on its own
//     working copy (obtained via Clone). Never call RaiseTo on a Graph that
//     other goroutines read.
//
// Errors:
//
//	ErrBadShape               - negative vertex count.
//	ErrNonSquare              - ragged or non-square row set.
//	ErrNegativeMultiplicity   - an entry below zero.
//
// Indexing out of range in Edge/RaiseTo is a programmer error and panics,
// mirroring slice semantics.
package multigraph
