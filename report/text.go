// SPDX-License-Identifier: MIT

package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/pkg/errors"

	"github.com/katalvlaran/kisoext/cost"
	"github.com/katalvlaran/kisoext/mapping"
	"github.com/katalvlaran/kisoext/multigraph"
	"github.com/katalvlaran/kisoext/solver"
)

const (
	rule   = "------------------------------------------------------------"
	banner = "============================================================"
)

// Summary is everything Write puts in a report.
type Summary struct {
	G, H   *multigraph.Graph
	K      int
	Result solver.Result
}

// Matrix writes g as indexed rows: "  0: [  0,   1]".
func Matrix(w io.Writer, g *multigraph.Graph) error {
	bw := bufio.NewWriter(w)
	writeMatrix(bw, g)

	return errors.Wrap(bw.Flush(), "report: matrix")
}

// Extended writes h with the extension on top. Cells that gain edges read
// "orig+added".
func Extended(w io.Writer, h *multigraph.Graph, edges cost.EdgeMap) error {
	bw := bufio.NewWriter(w)
	writeExtended(bw, h, edges)

	return errors.Wrap(bw.Flush(), "report: extended matrix")
}

// Permutation writes m as a 0/1 grid: one row per pattern vertex, one column
// per host vertex, "◉" where the pattern vertex is placed.
func Permutation(w io.Writer, m mapping.Mapping, nHost int) error {
	bw := bufio.NewWriter(w)
	writePermutation(bw, m, nHost)

	return errors.Wrap(bw.Flush(), "report: permutation")
}

// Edges writes the extension one pair per line, ordered by (from, to).
func Edges(w io.Writer, edges cost.EdgeMap) error {
	bw := bufio.NewWriter(w)
	writeEdges(bw, edges)

	return errors.Wrap(bw.Flush(), "report: edges")
}

// Write renders the full text report.
func Write(w io.Writer, s Summary) error {
	bw := bufio.NewWriter(w)
	res := s.Result

	fmt.Fprintln(bw, banner)
	fmt.Fprintln(bw, "Minimal k-Isomorphic Subgraph Extension - Solution Report")
	fmt.Fprintln(bw, banner)
	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "Algorithm: %s\n", algorithmTitle(res.Algorithm))
	fmt.Fprintf(bw, "k (required mappings): %d\n", s.K)
	fmt.Fprintf(bw, "Time: %dms\n", res.Elapsed.Round(time.Millisecond).Milliseconds())
	fmt.Fprintf(bw, "Total Cost (edges added): %d\n", res.Cost)
	fmt.Fprintln(bw)

	section(bw, fmt.Sprintf("Graph G (pattern): %d vertices", s.G.N()))
	fmt.Fprintln(bw, "Adjacency Matrix:")
	writeMatrix(bw, s.G)
	fmt.Fprintln(bw)

	section(bw, fmt.Sprintf("Graph H (host): %d vertices", s.H.N()))
	fmt.Fprintln(bw, "Adjacency Matrix:")
	writeMatrix(bw, s.H)
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "Extended H Matrix (original + added):")
	writeExtended(bw, s.H, res.Edges)
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "Edges to add:")
	writeEdges(bw, res.Edges)
	fmt.Fprintln(bw)

	section(bw, "Mappings (Permutation Matrix Format)")
	for i, m := range res.Mappings {
		fmt.Fprintf(bw, "\nMapping %d of %d:\n\n", i+1, len(res.Mappings))
		writePermutation(bw, m, s.H.N())
		fmt.Fprintln(bw)
		fmt.Fprintln(bw, "  Mapping list: G[vertex] → H[vertex]")
		writeMappingList(bw, m)
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, banner)
	fmt.Fprintln(bw, "End of Report")
	fmt.Fprintln(bw, banner)

	return errors.Wrap(bw.Flush(), "report: write")
}

func algorithmTitle(a solver.Algorithm) string {
	switch a {
	case solver.ExactSearch:
		return "Exact"
	case solver.Approximate:
		return "Approximation"
	default:
		return a.String()
	}
}

func section(bw *bufio.Writer, title string) {
	fmt.Fprintln(bw, rule)
	fmt.Fprintln(bw, title)
	fmt.Fprintln(bw, rule)
}

func writeMatrix(bw *bufio.Writer, g *multigraph.Graph) {
	n := g.N()
	cells := make([]string, n)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			cells[v] = fmt.Sprintf("%3d", g.Edge(u, v))
		}
		fmt.Fprintf(bw, "  %d: [%s]\n", u, strings.Join(cells, ", "))
	}
}

func writeExtended(bw *bufio.Writer, h *multigraph.Graph, edges cost.EdgeMap) {
	n := h.N()
	cells := make([]string, n)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if add := edges[cost.Pair{X: u, Y: v}]; add > 0 {
				cells[v] = fmt.Sprintf("%3d+%d", h.Edge(u, v), add)
			} else {
				cells[v] = fmt.Sprintf("%5d", h.Edge(u, v))
			}
		}
		fmt.Fprintf(bw, "  %d: [%s]\n", u, strings.Join(cells, ", "))
	}
}

// writeEdges lists edges in (X, Y) order using a red-black tree keyed by
// pair, so the order does not depend on map iteration.
func writeEdges(bw *bufio.Writer, edges cost.EdgeMap) {
	if len(edges) == 0 {
		fmt.Fprintln(bw, "  (none)")
		return
	}
	tree := redblacktree.Tree{
		Comparator: func(a, b interface{}) int {
			pa, pb := a.(cost.Pair), b.(cost.Pair)
			switch {
			case pa.Less(pb):
				return -1
			case pb.Less(pa):
				return 1
			default:
				return 0
			}
		},
	}
	for p, add := range edges {
		tree.Put(p, add)
	}

	it := tree.Iterator()
	for it.Next() {
		p := it.Key().(cost.Pair)
		fmt.Fprintf(bw, "  %d → %d  +%d\n", p.X, p.Y, it.Value().(int))
	}
}

func writePermutation(bw *bufio.Writer, m mapping.Mapping, nHost int) {
	fmt.Fprint(bw, "  H vertices: ")
	for x := 0; x < nHost; x++ {
		fmt.Fprintf(bw, "%2d ", x)
	}
	fmt.Fprintln(bw)

	fmt.Fprintf(bw, "              ┌%s\n", strings.Repeat("───", nHost))
	for u, hx := range m {
		fmt.Fprintf(bw, "  G[%2d] → %2d  │", u, hx)
		for x := 0; x < nHost; x++ {
			if x == hx {
				fmt.Fprint(bw, "◉ ")
			} else {
				fmt.Fprint(bw, "· ")
			}
		}
		fmt.Fprintln(bw)
	}
	fmt.Fprintf(bw, "              └%s\n", strings.Repeat("───", nHost))
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "  ◉ = mapped    · = not mapped")
}

// writeMappingList prints "G[u]→H[x]" pairs, eight per line.
func writeMappingList(bw *bufio.Writer, m mapping.Mapping) {
	for u, hx := range m {
		fmt.Fprintf(bw, "    G[%d]→H[%d]", u, hx)
		if (u+1)%8 == 0 || u == len(m)-1 {
			fmt.Fprintln(bw)
		} else {
			fmt.Fprint(bw, "  ")
		}
	}
}
