// SPDX-License-Identifier: MIT

package mapping

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Mapping assigns host vertex m[u] to pattern vertex u.
type Mapping []int

// Validate checks totality (len == nPattern), range and injectivity.
// Returns ErrLength, ErrOutOfRange or ErrNotInjective (wrapped with the
// offending position).
//
// Complexity: O(nPattern) time, O(nHost) extra space.
func (m Mapping) Validate(nPattern, nHost int) error {
	if len(m) != nPattern {
		return errors.Wrapf(ErrLength, "len=%d, want %d", len(m), nPattern)
	}
	seen := make([]bool, nHost)
	for u, x := range m {
		if x < 0 || x >= nHost {
			return errors.Wrapf(ErrOutOfRange, "m[%d]=%d, n2=%d", u, x, nHost)
		}
		if seen[x] {
			return errors.Wrapf(ErrNotInjective, "host vertex %d reused at m[%d]", x, u)
		}
		seen[x] = true
	}

	return nil
}

// Key returns a canonical string form ("3,0,2") suitable as a map key.
func (m Mapping) Key() string {
	var sb strings.Builder
	for i, x := range m {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(x))
	}

	return sb.String()
}

// String renders m as "[3 0 2]".
func (m Mapping) String() string {
	return "[" + strings.ReplaceAll(m.Key(), ",", " ") + "]"
}

// Clone returns an independent copy.
func (m Mapping) Clone() Mapping {
	if m == nil {
		return nil
	}
	cp := make(Mapping, len(m))
	copy(cp, m)

	return cp
}

// Equal reports element-wise equality.
func (m Mapping) Equal(o Mapping) bool {
	if len(m) != len(o) {
		return false
	}
	for i := range m {
		if m[i] != o[i] {
			return false
		}
	}

	return true
}

// Set is an insertion-ordered set of distinct mappings.
// The zero value is ready to use. Not safe for concurrent mutation.
type Set struct {
	index map[string]struct{}
	items []Mapping
}

// Add inserts a copy of m and reports whether it was not already present.
func (s *Set) Add(m Mapping) bool {
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	k := m.Key()
	if _, ok := s.index[k]; ok {
		return false
	}
	s.index[k] = struct{}{}
	s.items = append(s.items, m.Clone())

	return true
}

// Contains reports membership.
func (s *Set) Contains(m Mapping) bool {
	_, ok := s.index[m.Key()]

	return ok
}

// Len returns the number of distinct mappings.
func (s *Set) Len() int { return len(s.items) }

// Slice returns copies of the mappings in insertion order.
func (s *Set) Slice() []Mapping {
	out := make([]Mapping, len(s.items))
	for i, m := range s.items {
		out[i] = m.Clone()
	}

	return out
}
