// SPDX-License-Identifier: MIT

// Package report renders graphs, mappings and solver results as text and
// DOT. Renderers are pure: they only write to the given io.Writer and return
// the first write error.
package report
