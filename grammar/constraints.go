package grammar

import "github.com/go-asn1/asn1spec/engine"

// valueRangeRule: LowerEndpoint '<'? '..' '<'? UpperEndpoint. Each '<'
// marks its adjacent endpoint as excluded from the range (X.680 §49.6);
// transform.rangeFromNode reads them back off these same positions.
func valueRangeRule() engine.Rule {
	return engine.Tag("ValueRange", engine.Seq(
		engine.Choice(keyword("MIN"), valueRule),
		engine.Opt(punct("<")),
		punct(".."),
		engine.Opt(punct("<")),
		engine.Choice(keyword("MAX"), valueRule),
	))
}

func sizeConstraintRule() engine.Rule {
	return engine.Tag("SizeConstraint", engine.Seq(keyword("SIZE"), constraintRule))
}

func fromConstraintRule() engine.Rule {
	return engine.Tag("FromConstraint", engine.Seq(keyword("FROM"), constraintRule))
}

func patternConstraintRule() engine.Rule {
	return engine.Tag("PatternConstraint", engine.Seq(keyword("PATTERN"), valueRule))
}

// innerTypeConstraintsRule: WITH COMPONENT Constraint, or WITH
// COMPONENTS { ... } naming a subset of a structured type's members
// each with its own optional constraint and presence qualifier.
func innerTypeConstraintsRule() engine.Rule {
	return engine.Choice(
		engine.Tag("WithComponent", engine.Seq(keyword("WITH"), keyword("COMPONENT"), constraintRule)),
		engine.Tag("WithComponents", engine.Seq(
			keyword("WITH"), keyword("COMPONENTS"), punct("{"),
			engine.Opt(punct("...")),
			engine.Opt(engine.Seq(engine.Opt(punct(",")), engine.Delim(namedConstraintRule(), punct(",")))),
			punct("}"),
		)),
	)
}

func namedConstraintRule() engine.Rule {
	return engine.Tag("NamedConstraint", engine.Seq(
		identifierRule(),
		engine.Opt(constraintRule),
		engine.Opt(engine.Choice(keyword("PRESENT"), keyword("ABSENT"), keyword("OPTIONAL"))),
	))
}

// containedSubtypeRule: INCLUDES? Type — a bare Type used as a
// subtype constraint also matches this shape since INCLUDES is
// optional, per X.680 §49.6.
func containedSubtypeRule() engine.Rule {
	return engine.Tag("ContainedSubtype", engine.Seq(engine.Opt(keyword("INCLUDES")), typeRule))
}

// elementSetSpecElement is one term of a constraint set expression:
// every alternative that is not itself a union/intersection, tried in
// an order that lets the more specific shapes (SIZE, FROM, PATTERN,
// range) win before falling back to a bare contained-subtype/type.
func elementSetSpecElementRule() engine.Rule {
	return engine.Choice(
		sizeConstraintRule(),
		fromConstraintRule(),
		patternConstraintRule(),
		innerTypeConstraintsRule(),
		valueRangeRule(),
		engine.Tag("SingleValue", valueRule),
		containedSubtypeRule(),
	)
}

// intersectionElementsRule: Element (EXCEPT Element)?
func intersectionElementsRule() engine.Rule {
	return engine.Tag("IntersectionElements", engine.Seq(
		elementSetSpecElementRule(),
		engine.Opt(engine.Seq(keyword("EXCEPT"), elementSetSpecElementRule())),
	))
}

// intersectionsRule: IntersectionElements ((INTERSECTION|'^') IntersectionElements)*
func intersectionsRule() engine.Rule {
	return engine.Tag("Intersections", engine.Seq(
		intersectionElementsRule(),
		engine.Star(engine.Seq(
			engine.Choice(keyword("INTERSECTION"), punct("^")),
			intersectionElementsRule(),
		)),
	))
}

// unionsRule: Intersections ((UNION|'|') Intersections)*
func unionsRule() engine.Rule {
	return engine.Tag("Unions", engine.Seq(
		intersectionsRule(),
		engine.Star(engine.Seq(
			engine.Choice(keyword("UNION"), punct("|")),
			intersectionsRule(),
		)),
	))
}

// elementSetSpecRule: ALL EXCEPT Element, or an ordinary Unions set
// expression.
func elementSetSpecRule() engine.Rule {
	return engine.Choice(
		engine.Tag("AllExcept", engine.Seq(keyword("ALL"), keyword("EXCEPT"), elementSetSpecElementRule())),
		unionsRule(),
	)
}

// subtypeConstraintRule: ElementSetSpec, with an optional trailing
// ',...' marking the set itself as extensible (X.680 §49.4).
func subtypeConstraintRule() engine.Rule {
	return engine.Tag("SubtypeConstraint", engine.Seq(
		elementSetSpecRule(),
		engine.Opt(engine.Seq(punct(","), extensionMarkerRule())),
	))
}

// userDefinedConstraintRule: CONSTRAINED BY { UserDefinedConstraintParameter, ... }
func userDefinedConstraintRule() engine.Rule {
	return engine.Tag("UserDefinedConstraint", engine.Seq(
		keyword("CONSTRAINED"), keyword("BY"), punct("{"),
		engine.Opt(engine.Delim(valueRule, punct(","))),
		punct("}"),
	))
}

// atNotationRule: '@' ('.' '.')? identifier ('.' identifier)* — the
// component-relation constraint's reference to a sibling field
// (X.682 §8.4).
func atNotationRule() engine.Rule {
	return engine.Tag("AtNotation", engine.Seq(
		punct("@"),
		engine.Opt(engine.Seq(punct("."), punct("."))),
		engine.Delim(identifierRule(), punct(".")),
	))
}

// tableConstraintRule: ObjectSet ('{' AtNotation (',' AtNotation)* '}')?
// — the simple table constraint and component relation constraint
// from X.682 §8-9, unified into one production since both reference
// an ObjectSet and differ only in the optional '{@...}' suffix.
func tableConstraintRule() engine.Rule {
	return engine.Tag("TableConstraint", engine.Seq(
		objectSetRule,
		engine.Opt(engine.Seq(punct("{"), engine.Delim(atNotationRule(), punct(",")), punct("}"))),
	))
}

// contentsConstraintRule: (CONTAINING Type)? (ENCODED BY Value)? with
// at least one of the two present (X.682 §11).
func contentsConstraintRule() engine.Rule {
	return engine.Tag("ContentsConstraint", engine.Choice(
		engine.Seq(
			keyword("CONTAINING"), typeRule,
			engine.Opt(engine.Seq(keyword("ENCODED"), keyword("BY"), valueRule)),
		),
		engine.Seq(keyword("ENCODED"), keyword("BY"), valueRule),
	))
}

// generalConstraintRule distinguishes the X.682 general-constraint
// forms from an ordinary subtype constraint, per spec.md §4.3's
// "ConstraintSpec is either a general constraint ... or a subtype
// constraint" split.
func generalConstraintRule() engine.Rule {
	return engine.Tag("GeneralConstraint", engine.Choice(
		userDefinedConstraintRule(),
		contentsConstraintRule(),
		tableConstraintRule(),
	))
}

func constraintSpecRule() engine.Rule {
	return engine.Choice(generalConstraintRule(), subtypeConstraintRule())
}

// constraintProduction: '(' ConstraintSpec ExceptionSpec? ')'
func constraintProduction() engine.Rule {
	return engine.Tag("Constraint", engine.Seq(
		punct("("),
		constraintSpecRule(),
		engine.Opt(exceptionSpecRule()),
		punct(")"),
	))
}

// objectClassFieldTypeRule: DefinedObjectClass '.' &fieldName — an
// open-type reference into an information object class's field
// (X.681 §14.1), e.g. "TEST-CLASS.&Type".
func objectClassFieldTypeRule() engine.Rule {
	return engine.Seq(definedObjectClass, punct("."), fieldReferenceRule())
}
