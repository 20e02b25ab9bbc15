// SPDX-License-Identifier: MIT

package cli

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// maxInlineVertices is the largest host printed as matrices on stdout;
// larger hosts only go to the report file.
const maxInlineVertices = 15

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// matricesFit reports whether n×n matrices of extended cells ("  0+1, ")
// fit on w. Non-terminal writers only get the vertex-count limit.
func matricesFit(w io.Writer, n int) bool {
	if n > maxInlineVertices {
		return false
	}
	if !isTerminal(w) {
		return true
	}
	width, _, err := term.GetSize(int(w.(*os.File).Fd()))
	if err != nil {
		return true
	}

	return width >= matrixWidth(n)
}

// matrixWidth is the printed width of one extended-matrix row.
func matrixWidth(n int) int {
	return 8 + 7*n
}
