package grammar

import "github.com/go-asn1/asn1spec/engine"

// dummyReferenceRule: a parameter's own name inside the parameter
// list — lexically a value- or type-reference, accepted either way
// since a governed parameter's kind follows the governor, not the
// reference's case (X.683 §8.1).
func dummyReferenceRule() engine.Rule {
	return engine.Choice(typeReferenceRule(), identifierRule())
}

// governorRule: Type | DefinedObjectClass — what a governed parameter
// ranges over.
func governorRule() engine.Rule {
	return engine.Choice(definedObjectClass, typeRule)
}

// parameterRule: (Governor ':')? DummyReference
func parameterRule() engine.Rule {
	return engine.Tag("Parameter", engine.Seq(
		engine.Opt(engine.Seq(governorRule(), punct(":"))),
		dummyReferenceRule(),
	))
}

// parameterListRule: '{' Parameter (',' Parameter)* '}'
func parameterListRule() engine.Rule {
	return engine.Tag("ParameterList", engine.Seq(
		punct("{"), engine.Delim(parameterRule(), punct(",")), punct("}"),
	))
}

// actualParameterRule: a supplied argument can be a Type, an
// ObjectSet, an Object, or a Value; tried in that order so a
// brace-delimited ObjectSet/Object is not mistaken for a structured
// Value.
func actualParameterRule() engine.Rule {
	return engine.Choice(objectSetRule, objectRule, typeRule, valueRule)
}

// actualParameterListRule: '{' ActualParameter (',' ActualParameter)* '}'
func actualParameterListRule() engine.Rule {
	return engine.Tag("ActualParameterList", engine.Seq(
		punct("{"), engine.Delim(actualParameterRule(), punct(",")), punct("}"),
	))
}
