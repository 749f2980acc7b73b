package grammar

import (
	"github.com/go-asn1/asn1spec/engine"
	"github.com/go-asn1/asn1spec/lexer"
)

// X.680 §11: ASN.1 lexical items. identifier and typeReference both
// guard against the reserved-word set; a bare keyword must never be
// consumed as a reference.
func identifierRule() engine.Rule {
	return engine.KindIf(lexer.KindIdentifier, func(t string) bool { return !isReserved(t) }, "identifier")
}

func typeReferenceRule() engine.Rule {
	return engine.KindIf(lexer.KindTypeRef, func(t string) bool { return !isReserved(t) }, "type reference")
}

// keyword matches a reserved word regardless of which lexer.Kind it
// was tokenized as (identifier or type-reference), since the lexer
// is keyword-agnostic per spec.md §4.1.
func keyword(word string) engine.Rule {
	return engine.Lit(word)
}

func punct(text string) engine.Rule {
	return engine.Lit(text)
}

var (
	numberRule     = engine.Kind(lexer.KindNumber, "number")
	cstringRule    = engine.Kind(lexer.KindCString, "quoted string")
	bstringRule    = engine.Kind(lexer.KindBString, "bstring")
	hstringRule    = engine.Kind(lexer.KindHString, "hstring")
	valueReference = identifierRule
	moduleReference = typeReferenceRule
)

// realNumberRule matches NUMBER '.' Optional(NUMBER), the X.680
// §11.6 real number lexical form, which the lexer leaves as three
// separate tokens rather than one.
func realNumberRule() engine.Rule {
	return engine.Seq(numberRule, punct("."), engine.Opt(numberRule))
}
