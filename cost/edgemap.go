// SPDX-License-Identifier: MIT

package cost

import (
	"sort"

	"github.com/katalvlaran/kisoext/multigraph"
)

// Pair is an ordered host vertex pair (X→Y).
type Pair struct {
	X int
	Y int
}

// Less orders pairs by X, then Y.
func (p Pair) Less(o Pair) bool {
	if p.X != o.X {
		return p.X < o.X
	}

	return p.Y < o.Y
}

// EdgeMap maps a host pair to the additional multiplicity it requires.
// Invariant: every stored value is > 0.
type EdgeMap map[Pair]int

// Total returns the sum of all values in em (the extension cost).
// Complexity: O(|em|).
func Total(em EdgeMap) int {
	var s int
	for _, w := range em {
		s += w
	}

	return s
}

// Merge folds src into dst by per-pair maximum. dst must be non-nil.
// Complexity: O(|src|).
func Merge(dst, src EdgeMap) {
	for p, w := range src {
		if w > dst[p] {
			dst[p] = w
		}
	}
}

// Clone returns an independent copy of em.
func (em EdgeMap) Clone() EdgeMap {
	cp := make(EdgeMap, len(em))
	for p, w := range em {
		cp[p] = w
	}

	return cp
}

// Pairs returns the keys of em sorted by (X, Y).
// Complexity: O(|em| log |em|).
func (em EdgeMap) Pairs() []Pair {
	out := make([]Pair, 0, len(em))
	for p := range em {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// Apply returns a new graph equal to h with em added on top
// (H'[x][y] = H[x][y] + em[(x,y)]). h is not modified.
// Pairs outside h's range panic (programmer error).
//
// Complexity: O(n² + |em|).
func Apply(h *multigraph.Graph, em EdgeMap) *multigraph.Graph {
	out := h.Clone()
	for p, w := range em {
		out.RaiseTo(p.X, p.Y, h.Edge(p.X, p.Y)+w)
	}

	return out
}
