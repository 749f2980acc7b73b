package engine

import "github.com/go-asn1/asn1spec/lexer"

// state is the mutable cursor a Rule advances while matching. It is
// created fresh for every top-level Parse call; Grammar and its
// Rules are immutable and may be shared across concurrent calls,
// per spec.md §5.
type state struct {
	toks []lexer.Token
	pos  int

	maxPos      int
	maxExpected []string
}

func newState(toks []lexer.Token) *state {
	return &state{toks: toks}
}

func (s *state) peek() lexer.Token {
	if s.pos < len(s.toks) {
		return s.toks[s.pos]
	}
	return lexer.Token{Kind: lexer.KindEOF}
}

func (s *state) advance() lexer.Token {
	tok := s.peek()
	if s.pos < len(s.toks) {
		s.pos++
	}
	return tok
}

// note records that some alternative tried and failed to match
// "what" at the current position. Only the farthest position reached
// across the whole parse is kept, per spec.md §4.2's error policy.
func (s *state) note(pos int, what string) {
	if pos > s.maxPos {
		s.maxPos = pos
		s.maxExpected = []string{what}
		return
	}
	if pos == s.maxPos {
		for _, e := range s.maxExpected {
			if e == what {
				return
			}
		}
		s.maxExpected = append(s.maxExpected, what)
	}
}
