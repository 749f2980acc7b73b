package grammar

import "github.com/go-asn1/asn1spec/engine"

func symbolRule() engine.Rule {
	return engine.Choice(typeReferenceRule(), identifierRule())
}

// exportsRule: EXPORTS ALL ';' | EXPORTS Symbol (',' Symbol)* ';' | EXPORTS ';'
func exportsRule() engine.Rule {
	return engine.Tag("Exports", engine.Seq(
		keyword("EXPORTS"),
		engine.Choice(
			engine.Tag("ExportsAll", keyword("ALL")),
			engine.Opt(engine.Delim(symbolRule(), punct(","))),
		),
		punct(";"),
	))
}

// symbolsFromModuleRule: Symbol (',' Symbol)* FROM ModuleReference ObjectIdentifierValue?
func symbolsFromModuleRule() engine.Rule {
	return engine.Tag("SymbolsFromModule", engine.Seq(
		engine.Delim(symbolRule(), punct(",")),
		keyword("FROM"),
		moduleReference(),
		engine.Opt(objectIdentifierValueRule()),
	))
}

// importsRule: IMPORTS SymbolsFromModule+ ';'
func importsRule() engine.Rule {
	return engine.Tag("Imports", engine.Seq(
		keyword("IMPORTS"), engine.Plus(symbolsFromModuleRule()), punct(";"),
	))
}

func tagDefaultRule() engine.Rule {
	return engine.Tag("TagDefault", engine.Seq(
		engine.Choice(keyword("EXPLICIT"), keyword("IMPLICIT"), keyword("AUTOMATIC")),
		keyword("TAGS"),
	))
}

func extensibilityImpliedRule() engine.Rule {
	return engine.Tag("ExtensibilityImplied", engine.Seq(keyword("EXTENSIBILITY"), keyword("IMPLIED")))
}

func typeAssignmentRule() engine.Rule {
	return engine.Tag("TypeAssignment", engine.Seq(typeReferenceRule(), punct("::="), typeRule))
}

func parameterizedTypeAssignmentRule() engine.Rule {
	return engine.Tag("ParameterizedTypeAssignment", engine.Seq(
		typeReferenceRule(), parameterListRule(), punct("::="), typeRule,
	))
}

func valueAssignmentRule() engine.Rule {
	return engine.Tag("ValueAssignment", engine.Seq(
		valueReference(), typeRule, punct("::="), valueRule,
	))
}

func parameterizedValueAssignmentRule() engine.Rule {
	return engine.Tag("ParameterizedValueAssignment", engine.Seq(
		valueReference(), parameterListRule(), typeRule, punct("::="), valueRule,
	))
}

func objectClassAssignmentRule() engine.Rule {
	return engine.Tag("ObjectClassAssignment", engine.Seq(
		typeReferenceRule(), punct("::="), classDefnRule(),
	))
}

func objectSetAssignmentRule() engine.Rule {
	return engine.Tag("ObjectSetAssignment", engine.Seq(
		typeReferenceRule(), definedObjectClass, punct("::="), objectSetRule,
	))
}

func objectAssignmentRule() engine.Rule {
	return engine.Tag("ObjectAssignment", engine.Seq(
		valueReference(), definedObjectClass, punct("::="), objectRule,
	))
}

// assignmentRule dispatches to one of seven assignment shapes. Order
// runs most-constrained-prefix first so ordered choice does not need
// to backtrack across an expensive partial match: both parameterized
// forms before their unparameterized counterparts, and the two
// object-class-governed forms before the plain value/type assignment
// they would otherwise be mistaken for a prefix of.
func assignmentRule() engine.Rule {
	return engine.Choice(
		parameterizedTypeAssignmentRule(),
		parameterizedValueAssignmentRule(),
		objectClassAssignmentRule(),
		objectSetAssignmentRule(),
		objectAssignmentRule(),
		valueAssignmentRule(),
		typeAssignmentRule(),
	)
}

func assignmentListRule() engine.Rule {
	return engine.Star(assignmentRule())
}

// moduleDefinitionRule: ModuleReference ObjectIdentifierValue?
// DEFINITIONS TagDefault? ExtensibilityImplied? '::=' BEGIN Exports?
// Imports? AssignmentList END, per spec.md §4.3.
func moduleDefinitionRule() engine.Rule {
	return engine.Tag("ModuleDefinition", engine.Seq(
		moduleReference(),
		engine.Opt(objectIdentifierValueRule()),
		keyword("DEFINITIONS"),
		engine.Opt(tagDefaultRule()),
		engine.Opt(extensibilityImpliedRule()),
		punct("::="),
		keyword("BEGIN"),
		engine.Opt(exportsRule()),
		engine.Opt(importsRule()),
		assignmentListRule(),
		keyword("END"),
	))
}

// moduleFileRule: one or more ModuleDefinitions, so parse_string can
// accept several concatenated module texts per spec.md §6.
func moduleFileRule() engine.Rule {
	return engine.Tag("ModuleFile", engine.Plus(moduleDefinitionRule()))
}
