package engine

import "github.com/go-asn1/asn1spec/lexer"

// Rule is the tagged-union interface every grammar-engine primitive
// implements. match attempts to consume tokens from s starting at
// its current position; on success it returns the resulting Node and
// true, having advanced s.pos. On failure it returns (nil, false)
// and must not have advanced s.pos.
type Rule interface {
	match(s *state) (*Node, bool)
	describe() string
}

// terminalKind matches a single token of a given lexer.Kind,
// regardless of its text.
type terminalKind struct {
	kind lexer.Kind
	name string
}

// Kind returns a Rule matching exactly one token of the given kind.
// name is used in "expected" diagnostics.
func Kind(k lexer.Kind, name string) Rule {
	return &terminalKind{kind: k, name: name}
}

func (r *terminalKind) match(s *state) (*Node, bool) {
	tok := s.peek()
	if tok.Kind == r.kind {
		s.advance()
		return leafNode(tok), true
	}
	s.note(s.pos, r.name)
	return nil, false
}

func (r *terminalKind) describe() string { return r.name }

// literal matches a single token whose Text equals an exact string,
// independent of Kind. This is how keywords and punctuation are
// recognized: the lexer never classifies "SEQUENCE" specially, so
// Grammar Rules match it by literal text against an identifier or
// type-reference token, per spec.md §4.1's reserved-word note.
type literal struct {
	text string
}

// Lit returns a Rule matching exactly one token whose text equals s.
func Lit(text string) Rule {
	return &literal{text: text}
}

func (r *literal) match(s *state) (*Node, bool) {
	tok := s.peek()
	if tok.Kind != lexer.KindEOF && tok.Text == r.text {
		s.advance()
		return leafNode(tok), true
	}
	s.note(s.pos, "'"+r.text+"'")
	return nil, false
}

func (r *literal) describe() string { return "'" + r.text + "'" }

// guardedKind matches a single token of a given Kind whose text also
// satisfies a predicate. It is how Grammar Rules implement the
// reserved-word guard: an identifier/type-reference token is only
// accepted as a reference when its text is not a keyword, per
// spec.md §4.3.
type guardedKind struct {
	kind lexer.Kind
	ok   func(text string) bool
	name string
}

// KindIf returns a Rule matching one token of kind k whose text
// satisfies ok. name is used in "expected" diagnostics.
func KindIf(k lexer.Kind, ok func(text string) bool, name string) Rule {
	return &guardedKind{kind: k, ok: ok, name: name}
}

func (r *guardedKind) match(s *state) (*Node, bool) {
	tok := s.peek()
	if tok.Kind == r.kind && r.ok(tok.Text) {
		s.advance()
		return leafNode(tok), true
	}
	s.note(s.pos, r.name)
	return nil, false
}

func (r *guardedKind) describe() string { return r.name }

// noMatchRule always fails without consuming. It is used for the
// X.681 productions the grammar deliberately does not reduce further
// (object-from-object, object-set-from-objects, defined-syntax),
// per spec.md §9's Open Question guidance: accept the syntactic
// form where possible elsewhere, and be explicit here that this
// branch is unreachable by construction.
type noMatchRule struct {
	name string
}

// NoMatch returns a Rule that never succeeds.
func NoMatch(name string) Rule {
	return &noMatchRule{name: name}
}

func (r *noMatchRule) match(s *state) (*Node, bool) {
	s.note(s.pos, r.name+" (not implemented)")
	return nil, false
}

func (r *noMatchRule) describe() string { return r.name }
