// SPDX-License-Identifier: MIT

package instance

import "github.com/pkg/errors"

var (
	// ErrSyntax indicates a token that is not a non-negative integer, or a
	// header line that does not hold exactly one integer.
	ErrSyntax = errors.New("instance: syntax error")

	// ErrRowLength indicates a matrix row whose length differs from n.
	ErrRowLength = errors.New("instance: wrong row length")

	// ErrMissingRows indicates input ending (or a blank line) before all n
	// rows of a matrix were read, or a missing second graph.
	ErrMissingRows = errors.New("instance: missing rows")

	// ErrTrailingData indicates non-blank lines after the host matrix.
	ErrTrailingData = errors.New("instance: trailing data")
)
