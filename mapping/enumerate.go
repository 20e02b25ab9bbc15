// SPDX-License-Identifier: MIT

package mapping

import (
	"context"

	"github.com/katalvlaran/kisoext/multigraph"
)

const (
	// maxPrealloc caps the up-front capacity of FindAll's result slice.
	maxPrealloc = 1 << 16

	// ctxCheckEvery is the number of completed mappings between ctx polls.
	ctxCheckEvery = 1 << 12
)

// FindAll returns every injective mapping of g's vertices into h's vertices
// in lexicographic order. If g has more vertices than h the result is empty.
// A pattern with zero vertices has exactly one (empty) mapping.
//
// Only vertex counts are consulted; edge structure is ignored here.
//
// Complexity: O(P(n₂,n₁)·n₁) time; output size P(n₂,n₁)·n₁ ints.
func FindAll(g, h *multigraph.Graph) []Mapping {
	ms, _ := FindAllContext(context.Background(), g, h)

	return ms
}

// FindAllContext is FindAll with cancellation. ctx is polled every few
// thousand mappings; on cancellation it returns nil and ctx.Err().
func FindAllContext(ctx context.Context, g, h *multigraph.Graph) ([]Mapping, error) {
	var (
		n1 = g.N()
		n2 = h.N()
	)
	if n1 > n2 {
		return []Mapping{}, nil
	}

	e := enumerator{
		ctx:  ctx,
		n1:   n1,
		n2:   n2,
		cur:  make(Mapping, n1),
		used: make([]bool, n2),
		out:  make([]Mapping, 0, min(Count(n1, n2), maxPrealloc)),
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := e.backtrack(0); err != nil {
		return nil, err
	}

	return e.out, nil
}

// enumerator holds the backtracking state for FindAllContext.
type enumerator struct {
	ctx    context.Context
	n1, n2 int
	cur    Mapping // cur[0:slot] is the partial mapping
	used   []bool  // used[x] == true iff host x is taken in cur
	out    []Mapping
}

// backtrack assigns pattern vertex slot, then recurses on slot+1.
func (e *enumerator) backtrack(slot int) error {
	if slot == e.n1 {
		e.out = append(e.out, e.cur.Clone())
		if len(e.out)%ctxCheckEvery == 0 {
			return e.ctx.Err()
		}

		return nil
	}

	for x := 0; x < e.n2; x++ {
		if e.used[x] {
			continue
		}
		e.cur[slot] = x
		e.used[x] = true
		err := e.backtrack(slot + 1)
		e.used[x] = false
		if err != nil {
			return err
		}
	}

	return nil
}
