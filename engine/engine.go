// Package engine implements the grammar-engine combinator runtime
// described in spec.md §4.2: sequence, ordered choice with
// backtracking, optional, repetition, delimited lists,
// forward-declared productions and tagged-group capture, run over a
// token stream produced by the lexer package.
package engine

import (
	"fmt"
	"strings"

	"github.com/go-asn1/asn1spec/asn1err"
	"github.com/go-asn1/asn1spec/lexer"
)

// Parse runs root against toks and returns the resulting parse tree.
// toks must end with a lexer.KindEOF token. On failure it returns a
// *asn1err.SyntaxError describing the farthest position any
// alternative reached and what was expected there, per spec.md §7.
func Parse(root Rule, toks []lexer.Token, src string) (*Node, error) {
	s := newState(toks)
	n, ok := root.match(s)
	if ok && s.pos == len(toks)-1 {
		return n, nil
	}

	// Either the grammar failed outright, or it matched a prefix
	// but left trailing tokens; both are reported at the farthest
	// position any alternative reached, which is at least as far as
	// where the top-level match stopped.
	failPos := s.pos
	expected := s.maxExpected
	if s.maxPos > failPos {
		failPos = s.maxPos
	} else if s.maxPos == failPos && len(s.maxExpected) > 0 {
		expected = s.maxExpected
	}
	if failPos >= len(toks) {
		failPos = len(toks) - 1
	}
	offender := toks[failPos]

	return nil, &asn1err.SyntaxError{
		Message:  fmt.Sprintf("unexpected token %s", offenderText(offender)),
		Line:     offender.Pos.Line,
		Column:   offender.Pos.Column,
		Token:    offender.Text,
		Expected: expected,
		Excerpt:  excerpt(src, offender.Pos),
	}
}

func offenderText(tok lexer.Token) string {
	if tok.Kind == lexer.KindEOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", tok.Text)
}

// excerpt renders the source line containing pos with a caret under
// the offending column, per spec.md §6's ParseError shape.
func excerpt(src string, pos lexer.Position) string {
	lines := strings.Split(src, "\n")
	if pos.Line < 1 || pos.Line > len(lines) {
		return ""
	}
	line := lines[pos.Line-1]
	caret := strings.Repeat(" ", pos.Column) + "^"
	return line + "\n" + caret
}
