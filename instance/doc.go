// SPDX-License-Identifier: MIT

// Package instance reads and writes problem instances: a pattern graph G and
// a host graph H in one text file.
//
// Format:
//
//	n₁
//	n₁ rows of n₁ whitespace-separated non-negative integers (G)
//	zero or more blank lines
//	n₂
//	n₂ rows of n₂ integers (H)
//
// Lines end in "\n" or "\r\n"; the final newline is optional. Blank lines
// before the first header and after the last row are ignored. Anything else
// is rejected with a sentinel error carrying the offending line number; no
// partial instance is ever returned.
//
// Tokenizing is done by a participle lexer; the row structure is checked
// here because it depends on the header values.
package instance
