package grammar

import "github.com/go-asn1/asn1spec/engine"

// definedValueRule: (ModuleReference '.')? valuereference — mirrors
// definedTypeRule's module-qualification shape for values.
func definedValueRule() engine.Rule {
	return engine.Tag("DefinedValue", engine.Seq(
		engine.Opt(engine.Seq(moduleReference(), punct("."))),
		valueReference(),
	))
}

// objIdComponentRule: a single OBJECT IDENTIFIER / RELATIVE-OID
// component — a bare number, a bare identifier (a name bound
// elsewhere), or "identifier(number)" naming an arc, per X.680 §32.3.
func objIdComponentRule() engine.Rule {
	return engine.Tag("ObjIdComponent", engine.Choice(
		engine.Seq(identifierRule(), punct("("), numberRule, punct(")")),
		numberRule,
		identifierRule(),
	))
}

func objectIdentifierValueRule() engine.Rule {
	return engine.Tag("ObjectIdentifierValue", engine.Seq(
		punct("{"), engine.Plus(objIdComponentRule()), punct("}"),
	))
}

// namedBitListValueRule: '{' identifier (',' identifier)* '}' — the
// BIT STRING value form naming set bits by their NamedBitList name
// (X.680 §22.9), distinct from a bstring/hstring literal.
func namedBitListValueRule() engine.Rule {
	return engine.Tag("NamedBitListValue", engine.Seq(
		punct("{"), engine.Opt(engine.Delim(identifierRule(), punct(","))), punct("}"),
	))
}

// namedValueRule: identifier Value — SEQUENCE/SET value component.
func namedValueRule() engine.Rule {
	return engine.Tag("NamedValue", engine.Seq(identifierRule(), valueRule))
}

// structuredValueRule (SEQUENCE/SET value): '{' NamedValue (',' NamedValue)* '}' | '{' '}'
func structuredValueRule() engine.Rule {
	return engine.Tag("StructuredValue", engine.Seq(
		punct("{"), engine.Opt(engine.Delim(namedValueRule(), punct(","))), punct("}"),
	))
}

// choiceValueRule: identifier ':' Value
func choiceValueRule() engine.Rule {
	return engine.Tag("ChoiceValue", engine.Seq(identifierRule(), punct(":"), valueRule))
}

func specialRealValueRule() engine.Rule {
	return engine.Tag("SpecialRealValue", engine.Choice(keyword("PLUS-INFINITY"), keyword("MINUS-INFINITY")))
}

func numericRealValueRule() engine.Rule {
	return engine.Tag("NumericRealValue", engine.Seq(
		engine.Opt(punct("-")), realNumberRule(),
	))
}

// builtinValueRule covers every literal-shaped value alternative.
// Order matters: choiceValueRule (identifier ':' ...) and
// structuredValueRule (brace-delimited) must be tried before the
// bare referencedValue fallback so they are not shadowed.
func builtinValueRule() engine.Rule {
	return engine.Choice(
		engine.Tag("BooleanValue", engine.Choice(keyword("TRUE"), keyword("FALSE"))),
		engine.Tag("NullValue", keyword("NULL")),
		specialRealValueRule(),
		numericRealValueRule(),
		engine.Tag("IntegerValue", engine.Seq(engine.Opt(punct("-")), numberRule)),
		engine.Tag("BStringValue", bstringRule),
		engine.Tag("HStringValue", hstringRule),
		engine.Tag("CStringValue", cstringRule),
		objectIdentifierValueRule(),
		choiceValueRule(),
		structuredValueRule(),
		namedBitListValueRule(),
	)
}

// valueProduction: a literal builtinValue, or a referencedValue —
// either a parameterized value-to-object reference or a plain
// DefinedValue.
func valueProduction() engine.Rule {
	return engine.Tag("Value", engine.Choice(
		builtinValueRule(),
		engine.Tag("ParameterizedValue", engine.Seq(definedValueRule(), actualParameterListRule())),
		definedValueRule(),
	))
}
