// SPDX-License-Identifier: MIT

package mapping

import "github.com/pkg/errors"

var (
	// ErrLength indicates len(m) differs from the pattern vertex count.
	ErrLength = errors.New("mapping: length mismatch")

	// ErrOutOfRange indicates a host index outside [0..n2-1].
	ErrOutOfRange = errors.New("mapping: host vertex out of range")

	// ErrNotInjective indicates two pattern vertices share a host vertex.
	ErrNotInjective = errors.New("mapping: not injective")
)
