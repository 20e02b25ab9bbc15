// SPDX-License-Identifier: MIT

package instance

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// document is the token-level view of a file: a sequence of lines, each a
// (possibly empty) run of integers.
type document struct {
	Lines []*line `parser:"@@*"`
}

type line struct {
	Pos    lexer.Position
	Values []int `parser:"@Int* EOL"`
}

var instanceLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `\d+`},
	{Name: "EOL", Pattern: `\r?\n`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

var parseDocument = participle.MustBuild[document](
	participle.Lexer(instanceLexer),
	participle.Elide("Whitespace"),
)
