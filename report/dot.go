// SPDX-License-Identifier: MIT

package report

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/multi"

	"github.com/katalvlaran/kisoext/cost"
	"github.com/katalvlaran/kisoext/multigraph"
)

// addedLine marks one unit of multiplicity contributed by the extension.
type addedLine struct {
	graph.Line
}

// ReversedLine keeps the marker on the reversed line.
func (l addedLine) ReversedLine() graph.Line {
	return addedLine{Line: l.Line.ReversedLine()}
}

// Attributes styles added lines in DOT output.
func (addedLine) Attributes() []encoding.Attribute {
	return []encoding.Attribute{
		{Key: "color", Value: "red"},
		{Key: "style", Value: "dashed"},
	}
}

// DOT renders h extended by edges as a Graphviz digraph. Existing edges are
// plain lines, one per unit of multiplicity; added units are red and dashed.
func DOT(h *multigraph.Graph, edges cost.EdgeMap) ([]byte, error) {
	dg := h.ToGonum()
	for _, p := range edges.Pairs() {
		for i := 0; i < edges[p]; i++ {
			dg.SetLine(addedLine{Line: dg.NewLine(multi.Node(p.X), multi.Node(p.Y))})
		}
	}

	b, err := dot.MarshalMulti(dg, "extended", "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "report: dot")
	}

	return b, nil
}
