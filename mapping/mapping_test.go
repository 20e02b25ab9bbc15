// SPDX-License-Identifier: MIT
// Package mapping_test covers the enumerator, the counting helpers and the
// Mapping/Set utilities.
package mapping_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kisoext/mapping"
	"github.com/katalvlaran/kisoext/multigraph"
)

// zero returns an n-vertex graph without edges.
func zero(t *testing.T, n int) *multigraph.Graph {
	t.Helper()
	g, err := multigraph.New(n)
	require.NoError(t, err)

	return g
}

func TestFindAll_TwoIntoThree(t *testing.T) {
	g := multigraph.MustFromRows([][]int{{0, 1}, {0, 0}})
	ms := mapping.FindAll(g, zero(t, 3))

	require.Len(t, ms, 6) // P(3,2)
	want := []mapping.Mapping{{0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}}
	require.Equal(t, want, ms, "enumeration must be lexicographic")
}

func TestFindAll_CountMatchesFallingFactorial(t *testing.T) {
	for n1 := 0; n1 <= 4; n1++ {
		for n2 := 0; n2 <= 5; n2++ {
			ms := mapping.FindAll(zero(t, n1), zero(t, n2))
			require.Len(t, ms, mapping.Count(n1, n2), "n1=%d n2=%d", n1, n2)

			seen := make(map[string]bool, len(ms))
			for _, m := range ms {
				require.NoError(t, m.Validate(n1, n2))
				require.False(t, seen[m.Key()], "duplicate %v", m)
				seen[m.Key()] = true
			}
		}
	}
}

func TestFindAll_PatternLargerThanHost(t *testing.T) {
	ms := mapping.FindAll(zero(t, 3), zero(t, 2))
	require.NotNil(t, ms)
	require.Empty(t, ms)
}

func TestFindAll_EmptyPattern(t *testing.T) {
	ms := mapping.FindAll(zero(t, 0), zero(t, 3))
	require.Len(t, ms, 1)
	require.Empty(t, ms[0])
}

func TestFindAllContext(t *testing.T) {
	g := zero(t, 2)
	h := zero(t, 4)

	ms, err := mapping.FindAllContext(context.Background(), g, h)
	require.NoError(t, err)
	assert.Equal(t, mapping.FindAll(g, h), ms)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ms, err = mapping.FindAllContext(ctx, g, h)
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, ms)
}

// TestFindAllContext_StopsMidway: cancellation is noticed long before the
// P(200,3) ≈ 7.9e6 mappings are built.
func TestFindAllContext_StopsMidway(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := mapping.FindAllContext(ctx, zero(t, 3), zero(t, 200))
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestCount(t *testing.T) {
	assert.Equal(t, 6, mapping.Count(2, 3))
	assert.Equal(t, 1, mapping.Count(0, 7))
	assert.Equal(t, 120, mapping.Count(5, 5))
	assert.Equal(t, 0, mapping.Count(4, 3))
	assert.Equal(t, math.MaxInt, mapping.Count(60, 100))
}

func TestNumCombinations(t *testing.T) {
	tests := []struct {
		n, k, want int
	}{
		{5, 2, 10},
		{4, 4, 1},
		{3, 0, 1},
		{3, 4, 0},
		{6, 3, 20},
		{10, 7, 120},
		{1, 1, 1},
		{0, 0, 1},
		{52, 5, 2598960},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, mapping.NumCombinations(tc.n, tc.k), "C(%d,%d)", tc.n, tc.k)
	}
	assert.Equal(t, math.MaxInt, mapping.NumCombinations(200, 100))
}

func TestValidate(t *testing.T) {
	require.NoError(t, mapping.Mapping{2, 0}.Validate(2, 3))

	err := mapping.Mapping{0}.Validate(2, 3)
	require.True(t, errors.Is(err, mapping.ErrLength))

	err = mapping.Mapping{0, 3}.Validate(2, 3)
	require.True(t, errors.Is(err, mapping.ErrOutOfRange))

	err = mapping.Mapping{1, 1}.Validate(2, 3)
	require.True(t, errors.Is(err, mapping.ErrNotInjective))
}

func TestMappingHelpers(t *testing.T) {
	m := mapping.Mapping{3, 0, 2}
	require.Equal(t, "3,0,2", m.Key())
	require.Equal(t, "[3 0 2]", m.String())

	c := m.Clone()
	c[0] = 1
	require.Equal(t, 3, m[0])
	require.False(t, m.Equal(c))
	require.True(t, m.Equal(mapping.Mapping{3, 0, 2}))
}

func TestSet(t *testing.T) {
	var s mapping.Set
	require.False(t, s.Contains(mapping.Mapping{0, 1}))

	require.True(t, s.Add(mapping.Mapping{0, 1}))
	require.True(t, s.Add(mapping.Mapping{1, 0}))
	require.False(t, s.Add(mapping.Mapping{0, 1}))

	require.Equal(t, 2, s.Len())
	require.True(t, s.Contains(mapping.Mapping{1, 0}))
	require.Equal(t, []mapping.Mapping{{0, 1}, {1, 0}}, s.Slice())
}
