// Package transform walks the engine package's parse tree and
// reduces it into the neutral ModuleTree shape spec.md §3 and §6
// describe, per spec.md §4.4.
package transform

// ExtensionMarker is the sentinel value standing in for "..." inside
// an ENUMERATED values list or a restricted-to constraint list.
// MarshalJSON renders it as the literal string "...", matching what a
// caller serializing a ModuleTree would expect to see at the position
// an extension marker occupies.
type ExtensionMarker struct{}

func (ExtensionMarker) MarshalJSON() ([]byte, error) {
	return []byte(`"..."`), nil
}

// Marker is the single shared ExtensionMarker value; compare against
// it with ==, since it carries no state.
var Marker = ExtensionMarker{}

// EnumValue is one (name, number) pair in an ENUMERATED type's values
// list. It marshals as a two-element JSON array, mirroring the
// original's Python tuple shape.
type EnumValue struct {
	Name   string
	Number int
}

func (v EnumValue) MarshalJSON() ([]byte, error) {
	return marshalPair(v.Name, v.Number)
}

// NamedNumber is one entry of an INTEGER or BIT STRING named-number /
// named-bit list.
type NamedNumber struct {
	Name   string
	Number int
}

func (v NamedNumber) MarshalJSON() ([]byte, error) {
	return marshalPair(v.Name, v.Number)
}

// Tag is the record a preceding [Class Number] IMPLICIT|EXPLICIT
// clause contributes to a TypeDescriptor, per spec.md §3's "tag
// record {number, class?, kind?}".
type Tag struct {
	Number int    `json:"number"`
	Class  string `json:"class,omitempty"`
	Kind   string `json:"kind,omitempty"`
}

// Range is an inclusive (or marked-exclusive) numeric or value range
// endpoint pair used inside a restricted-to or size constraint list.
// It marshals as a plain two-element [lower, upper] array, matching
// the original's tuple-shaped range rendering; the exclusivity flags
// are kept on the struct for callers that need them but are not part
// of the wire shape.
type Range struct {
	Lower        interface{}
	Upper        interface{}
	LowerExclude bool
	UpperExclude bool
}

func (r Range) MarshalJSON() ([]byte, error) {
	return jsonValuePairAny(r.Lower, r.Upper)
}

// ValueDescriptor is a value assignment's or a member's DEFAULT
// value's converted form: the value's own type name plus its
// canonicalized Go value, per spec.md §3.
type ValueDescriptor struct {
	Type  string      `json:"type"`
	Value interface{} `json:"value"`
}

// Member is a SEQUENCE/SET/CHOICE component: a TypeDescriptor
// augmented with the fields that only make sense attached to a named
// member, per spec.md §3's "each member is itself a TypeDescriptor
// augmented with name, optional, default, tag".
type Member struct {
	TypeDescriptor
	Name          string           `json:"name,omitempty"`
	Optional      bool             `json:"optional,omitempty"`
	Default       *ValueDescriptor `json:"default,omitempty"`
	ComponentsOf  string           `json:"components-of,omitempty"`
	ExtensionAdditionGroup []*Member `json:"extension-addition-group,omitempty"`
}

// TypeDescriptor is the record spec.md §3 names for every type shape:
// required Type plus a set of kind-dependent optional fields, all of
// which stay nil/zero unless the shape they describe is present.
type TypeDescriptor struct {
	Type string `json:"type"`

	// Structured kinds (SEQUENCE, SET, CHOICE).
	Members []*Member `json:"members,omitempty"`

	// SEQUENCE OF / SET OF.
	Element *TypeDescriptor `json:"element,omitempty"`

	// ENUMERATED: values interleaved with Marker at extension points.
	Values []interface{} `json:"values,omitempty"`

	// INTEGER / BIT STRING named-number or named-bit list.
	NamedNumbers []NamedNumber `json:"named-numbers,omitempty"`

	// String/octet types and SEQUENCE OF/SET OF: SIZE constraint.
	Size []interface{} `json:"size,omitempty"`

	// String types: FROM (permitted alphabet) constraint.
	From []interface{} `json:"from,omitempty"`

	// Any type: singleton/range/extension-marker subtype constraint.
	RestrictedTo []interface{} `json:"restricted-to,omitempty"`

	// Any type: a preceding tag.
	Tag *Tag `json:"tag,omitempty"`

	// Any type: WITH COMPONENT(S) inner-type constraint, kept as an
	// opaque rendering since substitution is out of scope.
	WithComponents interface{} `json:"with-components,omitempty"`

	// Parameterized type assignments: the assignment's own formal
	// parameter names, recorded without attempting substitution
	// (spec.md §1's "does not evaluate ... beyond syntactic capture").
	Parameters []string `json:"parameters,omitempty"`

	// X.682 general constraints (user-defined, table, contents),
	// kept as an opaque rendering distinct from RestrictedTo's
	// subtype-constraint elements, per SPEC_FULL.md §4.3.
	GeneralConstraints []interface{} `json:"general-constraints,omitempty"`
}

// ObjectClass is the reduced form of a CLASS {...} (WITH SYNTAX {...})?
// definition, per the X.681 supplement in SPEC_FULL.md §4.3.
type ObjectClass struct {
	Fields   []ClassField `json:"fields"`
	HasSyntax bool        `json:"has-syntax,omitempty"`
}

// ClassField is one FieldSpec reduction; Kind is "type" or "value".
// The remaining X.681 field-spec shapes (object, object-set,
// variable-type) are recognized syntactically by the grammar but
// rejected by the transformer with an asn1err.NotImplementedError.
type ClassField struct {
	Name     string          `json:"name"`
	Kind     string          `json:"kind"`
	Type     *TypeDescriptor `json:"type,omitempty"`
	Unique   bool            `json:"unique,omitempty"`
	Optional bool            `json:"optional,omitempty"`
}

// ObjectDescriptor is a reduced information object: its governing
// class reference plus its default-syntax field settings.
type ObjectDescriptor struct {
	Class    string                 `json:"class"`
	Settings map[string]interface{} `json:"settings"`
}

// ObjectSetDescriptor is a reduced object set: its governing class
// plus the member object references/definitions it lists.
type ObjectSetDescriptor struct {
	Class   string        `json:"class"`
	Members []interface{} `json:"members"`
}

// Module is one ModuleRef DEFINITIONS ... END block's reduced form.
type Module struct {
	ExtensibilityImplied bool                            `json:"extensibility-implied"`
	Tags                 string                          `json:"tags,omitempty"`
	Exports              []string                        `json:"exports,omitempty"`
	Imports              map[string][]string             `json:"imports"`
	Types                map[string]*TypeDescriptor       `json:"types"`
	Values               map[string]*ValueDescriptor      `json:"values"`
	ObjectClasses        map[string]*ObjectClass          `json:"object-classes"`
	ObjectSets           map[string]*ObjectSetDescriptor  `json:"object-sets"`
	Objects              map[string]*ObjectDescriptor     `json:"objects,omitempty"`
}

// ModuleTree is the Transformer's top-level output: a mapping from
// module name to its reduced Module, per spec.md §6.
type ModuleTree map[string]*Module

func marshalPair(name string, number int) ([]byte, error) {
	return jsonPair(name, number)
}
