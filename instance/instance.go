// SPDX-License-Identifier: MIT

package instance

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/pkg/errors"

	"github.com/katalvlaran/kisoext/multigraph"
)

// Instance is a parsed problem: pattern G and host H.
type Instance struct {
	G *multigraph.Graph
	H *multigraph.Graph
}

// Parse reads one instance from r.
func Parse(r io.Reader) (*Instance, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "instance: read")
	}

	return ParseString(string(b))
}

// ParseString parses one instance held in s.
func ParseString(s string) (*Instance, error) {
	if s != "" && !strings.HasSuffix(s, "\n") {
		s += "\n"
	}

	doc, err := parseDocument.ParseString("", s)
	if err != nil {
		var perr participle.Error
		if errors.As(err, &perr) {
			return nil, errors.Wrapf(ErrSyntax, "line %d: %s", perr.Position().Line, perr.Message())
		}

		return nil, errors.Wrap(ErrSyntax, err.Error())
	}

	sc := &scanner{lines: doc.Lines}
	sc.skipBlank()
	g, err := sc.graph("pattern")
	if err != nil {
		return nil, err
	}
	sc.skipBlank()
	h, err := sc.graph("host")
	if err != nil {
		return nil, err
	}
	sc.skipBlank()
	if !sc.done() {
		return nil, errors.Wrapf(ErrTrailingData, "line %d", sc.lineNo())
	}

	return &Instance{G: g, H: h}, nil
}

// ReadFile parses the instance stored at path.
func ReadFile(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "instance: open %s", path)
	}
	defer f.Close()

	inst, err := Parse(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}

	return inst, nil
}

// Write renders inst in the input format, with one blank line between G
// and H. Parse(Write(inst)) reproduces inst.
func Write(w io.Writer, inst *Instance) error {
	bw := bufio.NewWriter(w)
	writeGraph(bw, inst.G)
	bw.WriteByte('\n')
	writeGraph(bw, inst.H)

	return errors.Wrap(bw.Flush(), "instance: write")
}

func writeGraph(bw *bufio.Writer, g *multigraph.Graph) {
	n := g.N()
	bw.WriteString(strconv.Itoa(n))
	bw.WriteByte('\n')
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if v > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.Itoa(g.Edge(u, v)))
		}
		bw.WriteByte('\n')
	}
}

// scanner walks the parsed lines and checks the header/row structure.
type scanner struct {
	lines []*line
	pos   int
	last  int // line number of the last consumed line
}

func (s *scanner) done() bool { return s.pos >= len(s.lines) }

func (s *scanner) lineNo() int {
	if s.done() {
		return s.last + 1
	}

	return s.lines[s.pos].Pos.Line
}

func (s *scanner) skipBlank() {
	for !s.done() && len(s.lines[s.pos].Values) == 0 {
		s.next()
	}
}

func (s *scanner) next() *line {
	l := s.lines[s.pos]
	s.pos++
	s.last = l.Pos.Line

	return l
}

// graph reads a header line followed by n rows of n values.
func (s *scanner) graph(what string) (*multigraph.Graph, error) {
	if s.done() {
		return nil, errors.Wrapf(ErrMissingRows, "line %d: %s graph header expected", s.lineNo(), what)
	}
	hdr := s.next()
	if len(hdr.Values) != 1 {
		return nil, errors.Wrapf(ErrSyntax, "line %d: %s header must be a single vertex count, got %d values",
			hdr.Pos.Line, what, len(hdr.Values))
	}

	n := hdr.Values[0]
	rows := make([][]int, 0, min(n, len(s.lines)-s.pos))
	for i := 0; i < n; i++ {
		if s.done() || len(s.lines[s.pos].Values) == 0 {
			return nil, errors.Wrapf(ErrMissingRows, "line %d: %s row %d of %d expected", s.lineNo(), what, i+1, n)
		}
		l := s.next()
		if len(l.Values) != n {
			return nil, errors.Wrapf(ErrRowLength, "line %d: %s row %d has %d values, want %d",
				l.Pos.Line, what, i+1, len(l.Values), n)
		}
		rows = append(rows, l.Values)
	}

	g, err := multigraph.FromRows(rows)
	if err != nil {
		return nil, errors.Wrapf(err, "%s graph", what)
	}

	return g, nil
}
