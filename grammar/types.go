package grammar

import "github.com/go-asn1/asn1spec/engine"

// simpleBuiltins is every built-in type keyword whose Type node is
// nothing more than the keyword itself, possibly with constraints
// attached afterward by typeRule. Grounded on the original's
// `builtin_type` alternation (asn1tools/parser.py, the keyword-only
// branches of convert_type).
var simpleBuiltinNames = []string{
	"BOOLEAN", "NULL", "REAL", "OBJECT IDENTIFIER", "RELATIVE-OID",
	"ObjectDescriptor", "EXTERNAL", "ANY", "TYPE-IDENTIFIER",
	"UTF8String", "NumericString", "PrintableString", "TeletexString",
	"T61String", "VideotexString", "IA5String", "GraphicString",
	"VisibleString", "GeneralString", "UniversalString", "BMPString",
	"ISO646String", "UTCTime", "GeneralizedTime", "CHARACTER STRING",
	"EMBEDDED PDV",
}

// simpleBuiltin recognizes a (possibly two-word) keyword type name by
// matching its constituent keyword literals in sequence, so "OBJECT
// IDENTIFIER" and "EMBEDDED PDV" are each a single Type node despite
// being two tokens.
func simpleBuiltin(name string) engine.Rule {
	return engine.Tag("BuiltinType", matchWords(name))
}

func matchWords(name string) engine.Rule {
	words := splitWords(name)
	if len(words) == 1 {
		return keyword(words[0])
	}
	rules := make([]engine.Rule, len(words))
	for i, w := range words {
		rules[i] = keyword(w)
	}
	return engine.Seq(rules...)
}

func splitWords(s string) []string {
	var words []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ' ' {
			if i > start {
				words = append(words, s[start:i])
			}
			start = i + 1
		}
	}
	return words
}

func anyOfSimpleBuiltins() engine.Rule {
	rules := make([]engine.Rule, len(simpleBuiltinNames))
	for i, n := range simpleBuiltinNames {
		rules[i] = simpleBuiltin(n)
	}
	return engine.Choice(rules...)
}

// namedNumber matches "identifier (SignedNumber | DefinedValue)", used
// by both INTEGER's NamedNumberList and BIT STRING's NamedBitList
// (X.680 §19.5, §22.3).
func namedNumberRule() engine.Rule {
	return engine.Tag("NamedNumber", engine.Seq(
		identifierRule(),
		punct("("),
		engine.Choice(
			engine.Seq(engine.Opt(punct("-")), numberRule),
			valueReference(),
		),
		punct(")"),
	))
}

func namedNumberListRule() engine.Rule {
	return engine.Seq(punct("{"), engine.Delim(namedNumberRule(), punct(",")), punct("}"))
}

// integerTypeRule: INTEGER NamedNumberList?
func integerTypeRule() engine.Rule {
	return engine.Tag("IntegerType", engine.Seq(
		keyword("INTEGER"), engine.Opt(namedNumberListRule()),
	))
}

// bitStringTypeRule: BIT STRING NamedBitList?
func bitStringTypeRule() engine.Rule {
	return engine.Tag("BitStringType", engine.Seq(
		keyword("BIT"), keyword("STRING"), engine.Opt(namedNumberListRule()),
	))
}

// octetStringTypeRule: OCTET STRING
func octetStringTypeRule() engine.Rule {
	return engine.Tag("BuiltinType", engine.Seq(keyword("OCTET"), keyword("STRING")))
}

// enumerationItem is a bare identifier (auto-numbered) or
// "identifier (SignedNumber|DefinedValue)" (explicit), per spec.md
// §4.3's ENUMERATED rule.
func enumerationItemRule() engine.Rule {
	return engine.Tag("EnumerationItem", engine.Choice(
		namedNumberRule(),
		identifierRule(),
	))
}

func enumerationRule() engine.Rule {
	return engine.Delim(enumerationItemRule(), punct(","))
}

// enumeratedTypeRule: ENUMERATED { Enumeration (, ... ExceptionSpec? (, Enumeration)? )? }
func enumeratedTypeRule() engine.Rule {
	return engine.Tag("EnumeratedType", engine.Seq(
		keyword("ENUMERATED"),
		punct("{"),
		enumerationRule(),
		engine.Opt(engine.Seq(
			punct(","),
			extensionMarkerRule(),
			engine.Opt(exceptionSpecRule()),
			engine.Opt(engine.Seq(punct(","), enumerationRule())),
		)),
		punct("}"),
	))
}

func extensionMarkerRule() engine.Rule {
	return engine.Tag("ExtensionMarker", punct("..."))
}

func exceptionSpecRule() engine.Rule {
	return engine.Seq(punct("!"), engine.Choice(
		engine.Seq(engine.Opt(punct("-")), numberRule),
		engine.Seq(definedObjectClass, punct(":"), valueRule),
		valueRule,
	))
}

// namedType: identifier Type
func namedTypeRule() engine.Rule {
	return engine.Seq(identifierRule(), typeRule)
}

// componentType: NamedType (OPTIONAL | DEFAULT Value)? | COMPONENTS OF Type
func componentTypeRule() engine.Rule {
	return engine.Tag("ComponentType", engine.Choice(
		engine.Seq(keyword("COMPONENTS"), keyword("OF"), typeRule),
		engine.Seq(
			namedTypeRule(),
			engine.Opt(engine.Choice(
				keyword("OPTIONAL"),
				engine.Seq(keyword("DEFAULT"), valueRule),
			)),
		),
	))
}

func componentTypeListRule() engine.Rule {
	return engine.Delim(componentTypeRule(), punct(","))
}

// extensionAdditionGroup: [[ VersionNumber? ComponentTypeList ]]
func extensionAdditionGroupRule() engine.Rule {
	return engine.Tag("ExtensionAdditionGroup", engine.Seq(
		punct("[["),
		engine.Opt(engine.Seq(numberRule, punct(":"))),
		componentTypeListRule(),
		punct("]]"),
	))
}

func extensionAdditionRule() engine.Rule {
	return engine.Choice(extensionAdditionGroupRule(), componentTypeRule())
}

func extensionAdditionListRule() engine.Rule {
	return engine.Delim(extensionAdditionRule(), punct(","))
}

// componentTypeLists is the interleaved root/extension/root shape
// spec.md §4.3 describes for SEQUENCE and SET: root components, an
// extension marker with optional exception, extension additions, an
// optional closing marker, then further root components.
func componentTypeListsRule() engine.Rule {
	return engine.Tag("ComponentTypeLists", engine.Choice(
		engine.Seq(
			componentTypeListRule(),
			engine.Opt(engine.Seq(
				punct(","),
				extensionMarkerRule(),
				engine.Opt(exceptionSpecRule()),
				engine.Opt(engine.Seq(punct(","), extensionAdditionListRule())),
				engine.Opt(engine.Seq(
					punct(","),
					extensionMarkerRule(),
					engine.Opt(engine.Seq(punct(","), componentTypeListRule())),
				)),
			)),
		),
		engine.Seq(
			extensionMarkerRule(),
			engine.Opt(exceptionSpecRule()),
			engine.Opt(engine.Seq(punct(","), extensionAdditionListRule())),
			engine.Opt(engine.Seq(
				punct(","),
				extensionMarkerRule(),
				engine.Opt(engine.Seq(punct(","), componentTypeListRule())),
			)),
		),
	))
}

func sequenceTypeRule() engine.Rule {
	return engine.Tag("SequenceType", engine.Seq(
		keyword("SEQUENCE"), punct("{"), engine.Opt(componentTypeListsRule()), punct("}"),
	))
}

func setTypeRule() engine.Rule {
	return engine.Tag("SetType", engine.Seq(
		keyword("SET"), punct("{"), engine.Opt(componentTypeListsRule()), punct("}"),
	))
}

// namedAlternative is CHOICE's analogue to NamedType (no OPTIONAL/DEFAULT).
func namedAlternativeRule() engine.Rule {
	return engine.Tag("ComponentType", namedTypeRule())
}

func alternativeTypeListRule() engine.Rule {
	return engine.Delim(namedAlternativeRule(), punct(","))
}

func extensionAdditionAlternativeRule() engine.Rule {
	return engine.Choice(
		engine.Tag("ExtensionAdditionGroup", engine.Seq(
			punct("[["), engine.Opt(engine.Seq(numberRule, punct(":"))), alternativeTypeListRule(), punct("]]"),
		)),
		namedAlternativeRule(),
	)
}

func extensionAdditionAlternativesListRule() engine.Rule {
	return engine.Delim(extensionAdditionAlternativeRule(), punct(","))
}

func alternativeTypeListsRule() engine.Rule {
	return engine.Tag("ComponentTypeLists", engine.Seq(
		alternativeTypeListRule(),
		engine.Opt(engine.Seq(
			punct(","),
			extensionMarkerRule(),
			engine.Opt(exceptionSpecRule()),
			engine.Opt(engine.Seq(punct(","), extensionAdditionAlternativesListRule())),
		)),
	))
}

func choiceTypeRule() engine.Rule {
	return engine.Tag("ChoiceType", engine.Seq(
		keyword("CHOICE"), punct("{"), alternativeTypeListsRule(), punct("}"),
	))
}

// sequenceOfTypeRule / setOfTypeRule: SEQUENCE/SET Constraint? OF
// (NamedType | Type). The optional Constraint between the keyword and
// OF is the common "SEQUENCE (SIZE(1..4)) OF INTEGER" sugar X.680
// §25.1/§26.1 permit in addition to constraining the whole type
// afterward; typeProduction's trailing-Constraint Star still covers
// the "SEQUENCE OF INTEGER (SIZE(1..4))" spelling.
func sequenceOfTypeRule() engine.Rule {
	return engine.Tag("SequenceOfType", engine.Seq(
		keyword("SEQUENCE"), engine.Opt(constraintRule), keyword("OF"), engine.Choice(namedTypeRule(), typeRule),
	))
}

func setOfTypeRule() engine.Rule {
	return engine.Tag("SetOfType", engine.Seq(
		keyword("SET"), engine.Opt(constraintRule), keyword("OF"), engine.Choice(namedTypeRule(), typeRule),
	))
}

// classNumber: number | DefinedValue
func classNumberRule() engine.Rule {
	return engine.Choice(numberRule, valueReference())
}

// tag: [ Class? ClassNumber ] (IMPLICIT|EXPLICIT)?
func tagRule() engine.Rule {
	return engine.Tag("Tag", engine.Seq(
		punct("["),
		engine.Opt(engine.Choice(keyword("UNIVERSAL"), keyword("APPLICATION"), keyword("PRIVATE"))),
		classNumberRule(),
		punct("]"),
		engine.Opt(engine.Choice(keyword("IMPLICIT"), keyword("EXPLICIT"))),
	))
}

func taggedTypeRule() engine.Rule {
	return engine.Tag("TaggedType", engine.Seq(tagRule(), typeRule))
}

// referencedType covers DefinedType (a module-qualified or bare type
// reference, optionally parameterized with actual parameters) and
// a SelectionType (identifier < Type).
func referencedTypeRule() engine.Rule {
	return engine.Choice(
		engine.Tag("SelectionType", engine.Seq(identifierRule(), punct("<"), typeRule)),
		engine.Tag("ParameterizedType", engine.Seq(definedTypeRule(), actualParameterListRule())),
		engine.Tag("DefinedType", definedTypeRule()),
	)
}

// definedType: (ModuleReference '.')? TypeReference
func definedTypeRule() engine.Rule {
	return engine.Seq(
		engine.Opt(engine.Seq(moduleReference(), punct("."))),
		typeReferenceRule(),
	)
}

func builtinTypeRule() engine.Rule {
	return engine.Choice(
		integerTypeRule(),
		bitStringTypeRule(),
		octetStringTypeRule(),
		enumeratedTypeRule(),
		sequenceOfTypeRule(),
		setOfTypeRule(),
		sequenceTypeRule(),
		setTypeRule(),
		choiceTypeRule(),
		anyOfSimpleBuiltins(),
		engine.Tag("ObjectClassFieldType", objectClassFieldTypeRule()),
	)
}

// typeProduction is the top-level Type rule: a tagged type, a
// built-in type, or a referenced type, each optionally followed by
// one or more Constraints (X.680 §49.2's "Type ::= ... | Type
// Constraint").
func typeProduction() engine.Rule {
	return engine.Tag("Type", engine.Seq(
		engine.Choice(taggedTypeRule(), builtinTypeRule(), referencedTypeRule()),
		engine.Star(constraintRule),
	))
}
