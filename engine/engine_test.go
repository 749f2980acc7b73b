package engine

import (
	"testing"

	"github.com/go-asn1/asn1spec/asn1err"
	"github.com/go-asn1/asn1spec/lexer"
)

func toks(src string) []lexer.Token {
	return lexer.New(src).All()
}

func TestSeqProducesPositionalChildren(t *testing.T) {
	rule := Seq(Lit("A"), Opt(Lit("B")), Lit("C"))

	n, err := Parse(rule, toks("A C"), "A C")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Kind() != NodeSequence {
		t.Fatalf("expected a sequence node")
	}
	if got := n.At(0).Text(); got != "A" {
		t.Fatalf("child 0: want A, got %q", got)
	}
	if !n.At(1).IsEmpty() {
		t.Fatalf("child 1: expected empty placeholder for the unmatched optional")
	}
	if got := n.At(2).Text(); got != "C" {
		t.Fatalf("child 2: want C, got %q", got)
	}
}

func TestChoicePrefersConsumingAlternative(t *testing.T) {
	// The epsilon alternative (Opt matching nothing, wrapped to
	// succeed without consuming) must not shadow the alternative that
	// actually consumes the "X" token.
	rule := Choice(Seq(Opt(Lit("Y"))), Seq(Lit("X")))

	n, err := Parse(rule, toks("X"), "X")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.At(0).Text() != "X" {
		t.Fatalf("expected the consuming alternative to win, got %+v", n)
	}
}

func TestChoiceFallsBackToEpsilon(t *testing.T) {
	rule := Choice(Seq(Opt(Lit("Y"))), Seq(Lit("X")))

	n, err := Parse(rule, toks(""), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.At(0).IsEmpty() != true {
		t.Fatalf("expected the epsilon alternative as fallback, got %+v", n)
	}
}

func TestDelimDropsSeparators(t *testing.T) {
	rule := Delim(Kind(lexer.KindIdentifier, "identifier"), Lit(","))

	n, err := Parse(rule, toks("a, b, c"), "a, b, c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(n.Children) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(n.Children))
	}
	for i, want := range []string{"a", "b", "c"} {
		if got := n.Children[i].Text(); got != want {
			t.Fatalf("element %d: want %s, got %s", i, want, got)
		}
	}
}

func TestNotRejectsReservedWord(t *testing.T) {
	reference := Seq(Not(Lit("END")), Kind(lexer.KindTypeRef, "type-reference"))

	if _, err := Parse(reference, toks("END"), "END"); err == nil {
		t.Fatal("expected the reserved-word guard to reject END")
	}
	n, err := Parse(reference, toks("Foo"), "Foo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.At(1).Text() != "Foo" {
		t.Fatalf("expected Foo to be consumed as a type reference")
	}
}

func TestParseReportsSyntaxErrorAtFarthestPosition(t *testing.T) {
	rule := Seq(Lit("A"), Lit("B"), Lit("C"))

	_, err := Parse(rule, toks("A B D"), "A B D")
	if err == nil {
		t.Fatal("expected a syntax error")
	}
	if err.Error() == "" {
		t.Fatal("expected a non-empty error message")
	}
	se, ok := err.(*asn1err.SyntaxError)
	if !ok {
		t.Fatalf("expected a *asn1err.SyntaxError, got %T", err)
	}
	if se.Token != "D" || se.Line != 1 || se.Column != 4 {
		t.Fatalf("expected the error at D (1:4), got %q at %d:%d", se.Token, se.Line, se.Column)
	}
}

func TestTagWrapsResult(t *testing.T) {
	rule := Tag("Letter", Lit("A"))

	n, err := Parse(rule, toks("A"), "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Kind() != NodeTagged || n.Tag != "Letter" {
		t.Fatalf("expected a Letter-tagged node, got %+v", n)
	}
	inner, ok := n.Untag("Letter")
	if !ok || inner.Text() != "A" {
		t.Fatalf("Untag failed to recover the wrapped leaf")
	}
	if _, ok := n.Untag("Other"); ok {
		t.Fatalf("Untag must not match an unrelated tag name")
	}
}

func TestNodeNilSafety(t *testing.T) {
	var n *Node
	if !n.IsEmpty() {
		t.Fatal("a nil node must report IsEmpty")
	}
	if n.Text() != "" {
		t.Fatal("a nil node's Text must be empty")
	}
	if n.At(0) != nil {
		t.Fatal("At on a nil node must return nil")
	}
}
