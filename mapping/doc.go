// SPDX-License-Identifier: MIT

// Package mapping defines injective vertex mappings from a pattern graph G
// into a host graph H, and the exhaustive enumerator used by the exact solver.
//
// A Mapping m has len(m) == |V(G)| and distinct values in [0..|V(H)|-1];
// m[u] is the host vertex assigned to pattern vertex u.
//
// FindAll enumerates every injective function, not only structure-preserving
// ones: structural fit is priced later by the cost package, since evaluating a
// mapping is O(n₁²) regardless and early pruning would complicate the search
// without an asymptotic gain.
//
// Enumeration order (deterministic):
//
//	slot 0 takes host 0,1,2,…; for each choice slot 1 takes the smallest unused
//	host first; … i.e. lexicographic order of the mapping sequences.
//
// Counting helpers:
//   - Count(n1, n2)          = P(n₂, n₁) = n₂!/(n₂−n₁)!  (saturating)
//   - NumCombinations(n, k)  = C(n, k)                    (saturating)
package mapping
