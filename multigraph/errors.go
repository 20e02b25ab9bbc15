// SPDX-License-Identifier: MIT
// Package multigraph: sentinel error set.
// Callers branch with errors.Is; constructors wrap these with row/column
// context via github.com/pkg/errors.

package multigraph

import "github.com/pkg/errors"

var (
	// ErrBadShape is returned when a requested vertex count is negative.
	ErrBadShape = errors.New("multigraph: invalid shape")

	// ErrNonSquare indicates that a row set is not n×n.
	ErrNonSquare = errors.New("multigraph: matrix is not square")

	// ErrNegativeMultiplicity indicates an entry below zero.
	ErrNegativeMultiplicity = errors.New("multigraph: negative edge multiplicity")
)
