// SPDX-License-Identifier: MIT
// Package multigraph_test verifies construction, accessors, the monotone
// RaiseTo update and the gonum export.
package multigraph_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kisoext/multigraph"
)

func TestNew_ZeroGraph(t *testing.T) {
	g, err := multigraph.New(3)
	require.NoError(t, err)
	require.Equal(t, 3, g.N())
	for u := 0; u < 3; u++ {
		for v := 0; v < 3; v++ {
			require.Zero(t, g.Edge(u, v))
		}
	}

	empty, err := multigraph.New(0)
	require.NoError(t, err)
	require.Zero(t, empty.N())

	_, err = multigraph.New(-1)
	require.True(t, errors.Is(err, multigraph.ErrBadShape))
}

func TestFromRows_Validation(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
		want error
	}{
		{"ragged", [][]int{{0, 1}, {0}}, multigraph.ErrNonSquare},
		{"wide", [][]int{{0, 1, 2}, {0, 0, 0}}, multigraph.ErrNonSquare},
		{"negative", [][]int{{0, -1}, {0, 0}}, multigraph.ErrNegativeMultiplicity},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := multigraph.FromRows(tc.rows)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestFromRows_CopiesInput(t *testing.T) {
	rows := [][]int{{0, 2}, {1, 3}}
	g, err := multigraph.FromRows(rows)
	require.NoError(t, err)

	rows[0][1] = 99
	require.Equal(t, 2, g.Edge(0, 1))
	require.Equal(t, 3, g.Edge(1, 1), "self-loop entries are ordinary entries")
	require.Equal(t, [][]int{{0, 2}, {1, 3}}, g.Rows())
}

func TestEdge_OutOfRangePanics(t *testing.T) {
	g := multigraph.MustFromRows([][]int{{0}})
	require.Panics(t, func() { g.Edge(1, 0) })
	require.Panics(t, func() { g.Edge(0, -1) })
	require.Panics(t, func() { g.RaiseTo(2, 2, 1) })
}

func TestRaiseTo_Monotone(t *testing.T) {
	g := multigraph.MustFromRows([][]int{{0, 2}, {0, 0}})
	g.RaiseTo(0, 1, 1)
	require.Equal(t, 2, g.Edge(0, 1), "lower value must not shrink the entry")
	g.RaiseTo(0, 1, 5)
	require.Equal(t, 5, g.Edge(0, 1))
	g.RaiseTo(1, 0, 0)
	require.Zero(t, g.Edge(1, 0))
}

func TestClone_Independent(t *testing.T) {
	g := multigraph.MustFromRows([][]int{{0, 1}, {0, 0}})
	c := g.Clone()
	require.True(t, g.Equal(c))

	c.RaiseTo(1, 0, 4)
	require.Zero(t, g.Edge(1, 0))
	require.False(t, g.Equal(c))
}

func TestCountsAndString(t *testing.T) {
	g := multigraph.MustFromRows([][]int{{0, 2, 0}, {1, 0, 0}, {0, 0, 1}})
	require.Equal(t, 3, g.EdgeCount())
	require.Equal(t, 4, g.Multiplicity())
	require.Equal(t, "[[0 2 0] [1 0 0] [0 0 1]]", g.String())
}

func TestToGonum_ParallelLines(t *testing.T) {
	g := multigraph.MustFromRows([][]int{{0, 2, 0}, {1, 0, 0}, {0, 0, 0}})
	dg := g.ToGonum()

	require.Equal(t, 3, dg.Nodes().Len())
	require.Equal(t, 2, dg.Lines(0, 1).Len())
	require.Equal(t, 1, dg.Lines(1, 0).Len())
	require.Equal(t, 0, dg.Lines(0, 2).Len())
}
