package grammar

import "github.com/go-asn1/asn1spec/engine"

// Forward-declared productions, the arena of thunks spec.md §9 calls
// for: Type, Value and Constraint are mutually recursive (a Type
// carries Constraints that carry Values that can themselves carry a
// Type), so each gets a Forward handle here and a Define call in
// grammar.go once every production referring to it has been built.
var (
	typeRule           = engine.NewForward("Type")
	valueRule          = engine.NewForward("Value")
	constraintRule     = engine.NewForward("Constraint")
	objectRule         = engine.NewForward("Object")
	objectSetRule      = engine.NewForward("ObjectSet")
	definedObjectClass = engine.NewForward("DefinedObjectClass")
)
