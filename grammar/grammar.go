// Package grammar implements the ASN.1 productions from X.680 §12-49,
// X.681 §7-15, X.682 §8-11 and X.683 §8-9 against the engine package's
// combinator runtime, per spec.md §4.3.
package grammar

import (
	"sync"

	"github.com/go-asn1/asn1spec/engine"
	"github.com/go-asn1/asn1spec/lexer"
)

// Grammar is the immutable, built-once root production. Construct it
// with New; it is safe for concurrent use by multiple Parse calls
// since nothing mutates a Rule after construction completes.
type Grammar struct {
	root engine.Rule
}

var (
	singleton     *Grammar
	singletonOnce sync.Once
)

// New builds the grammar, wiring every Forward exactly once. Repeated
// calls after the first return the same cached instance, the
// sync.Once-guarded singleton spec.md §5 calls for.
func New() *Grammar {
	singletonOnce.Do(func() {
		singleton = build()
	})
	return singleton
}

func build() *Grammar {
	definedObjectClass.Define(engine.Choice(
		keyword("TYPE-IDENTIFIER"),
		keyword("ABSTRACT-SYNTAX"),
		definedTypeRule(),
	))

	typeRule.Define(typeProduction())
	valueRule.Define(valueProduction())
	constraintRule.Define(constraintProduction())

	objectRule.Define(engine.Tag("Object", engine.Choice(objectDefnRule(), definedValueRule())))
	objectSetRule.Define(objectSetRuleDefn())

	syntaxGroup.Define(engine.Tag("SyntaxGroup", engine.Seq(
		punct("["), engine.Star(syntaxTokenRule()), punct("]"),
	)))

	return &Grammar{root: moduleFileRule()}
}

// Parse lexes src and runs the grammar against the resulting token
// stream, returning the raw parse tree for the transform package to
// reduce.
func (g *Grammar) Parse(src string) (*engine.Node, error) {
	toks := lexer.New(src).All()
	return engine.Parse(g.root, toks, src)
}
