// SPDX-License-Identifier: MIT

// Package history keeps a log of solver runs in a bolt database so
// benchmark sweeps can be compared across sessions and exported as CSV.
package history
