package transform

import (
	"fmt"
	"strings"

	"github.com/go-asn1/asn1spec/asn1err"
	"github.com/go-asn1/asn1spec/engine"
)

// transformType reduces a "Type"-tagged parse node into a
// TypeDescriptor: the base type shape plus every trailing constraint
// lifted in per spec.md §4.4.
func (t *transformer) transformType(n *engine.Node) (*TypeDescriptor, error) {
	if n.Tag != "Type" {
		return nil, t.internal(fmt.Sprintf("expected Type node, got %q", n.Tag))
	}
	seq := n.Child
	td, err := t.transformBaseType(seq.At(0))
	if err != nil {
		return nil, err
	}
	t.applyConstraints(td, seq.At(1).Children)
	return td, nil
}

func (t *transformer) transformBaseType(n *engine.Node) (*TypeDescriptor, error) {
	switch n.Tag {
	case "TaggedType":
		return t.transformTaggedType(n)
	case "BuiltinType":
		return &TypeDescriptor{Type: keywordText(n.Child)}, nil
	case "IntegerType":
		return t.transformIntegerType(n)
	case "BitStringType":
		return t.transformBitStringType(n)
	case "EnumeratedType":
		return t.transformEnumeratedType(n)
	case "SequenceType":
		return t.transformStructuredType(n, "SEQUENCE")
	case "SetType":
		return t.transformStructuredType(n, "SET")
	case "ChoiceType":
		return t.transformChoiceType(n)
	case "SequenceOfType":
		return t.transformOfType(n, "SEQUENCE OF")
	case "SetOfType":
		return t.transformOfType(n, "SET OF")
	case "ObjectClassFieldType":
		return t.transformObjectClassFieldType(n)
	case "SelectionType":
		return t.transformType(n.Child.At(2))
	case "ParameterizedType":
		return &TypeDescriptor{Type: definedTypeText(n.Child.At(0))}, nil
	case "DefinedType":
		return &TypeDescriptor{Type: definedTypeText(n)}, nil
	default:
		t.warnf("unrecognized type shape %q; treated as an opaque reference", n.Tag)
		return &TypeDescriptor{Type: fmt.Sprintf("UNKNOWN(%s)", n.Tag)}, nil
	}
}

func (t *transformer) transformTaggedType(n *engine.Node) (*TypeDescriptor, error) {
	seq := n.Child
	tagNode := seq.At(0)
	td, err := t.transformType(seq.At(1))
	if err != nil {
		return nil, err
	}
	td.Tag = transformTagNode(tagNode)
	return td, nil
}

// transformTagNode reduces a "Tag"-tagged node into the {number,
// class?, kind?} record spec.md §4.4 describes; class defaults to
// context-specific (omitted) and kind is omitted unless IMPLICIT or
// EXPLICIT follows, per spec.md §3's invariant.
func transformTagNode(n *engine.Node) *Tag {
	seq := n.Child
	tag := &Tag{}
	classNode := seq.At(1)
	numberNode := seq.At(2)
	kindNode := seq.At(4)

	if !classNode.IsEmpty() {
		tag.Class = classNode.Text()
	}
	tag.Number = parseIntText(numberNode.Text())
	if !kindNode.IsEmpty() {
		tag.Kind = kindNode.Text()
	}
	return tag
}

func (t *transformer) transformIntegerType(n *engine.Node) (*TypeDescriptor, error) {
	seq := n.Child
	td := &TypeDescriptor{Type: "INTEGER"}
	if nn := seq.At(1); !nn.IsEmpty() {
		td.NamedNumbers = transformNamedNumberList(nn)
	}
	return td, nil
}

func (t *transformer) transformBitStringType(n *engine.Node) (*TypeDescriptor, error) {
	seq := n.Child
	td := &TypeDescriptor{Type: "BIT STRING"}
	if nn := seq.At(2); !nn.IsEmpty() {
		td.NamedNumbers = transformNamedNumberList(nn)
	}
	return td, nil
}

func transformNamedNumberList(n *engine.Node) []NamedNumber {
	// n is the '{' Delim '}' Seq produced by namedNumberListRule.
	list := n.At(1)
	out := make([]NamedNumber, 0, len(list.Children))
	for _, item := range list.Children {
		seq := item.Child // "NamedNumber" tag
		name := seq.At(0).Text()
		numText := seq.At(2)
		out = append(out, NamedNumber{Name: name, Number: signedNumberFromChoice(numText)})
	}
	return out
}

// signedNumberFromChoice reads the Choice(Seq(Opt('-'), number),
// valuereference) result namedNumberRule produces: a Sequence means a
// literal signed number, anything else (a bare leaf) is a defined
// value reference, recorded as 0 since its numeric value is not
// resolvable without cross-module evaluation (out of scope).
func signedNumberFromChoice(n *engine.Node) int {
	if n.Kind() == engine.NodeSequence {
		neg := !n.At(0).IsEmpty()
		v := parseIntText(n.At(1).Text())
		if neg {
			v = -v
		}
		return v
	}
	return 0
}

func (t *transformer) transformOfType(n *engine.Node, kind string) (*TypeDescriptor, error) {
	seq := n.Child
	td := &TypeDescriptor{Type: kind}
	if mid := seq.At(1); !mid.IsEmpty() {
		t.applyConstraints(td, []*engine.Node{mid})
	}

	elemNode := seq.At(3)
	// elemNode is Choice(NamedType, Type); NamedType is Seq(identifier, Type).
	var inner *engine.Node
	if elemNode.Kind() == engine.NodeSequence {
		inner = elemNode.At(1)
	} else {
		inner = elemNode
	}
	element, err := t.transformType(inner)
	if err != nil {
		return nil, err
	}
	td.Element = element
	return td, nil
}

func (t *transformer) transformObjectClassFieldType(n *engine.Node) (*TypeDescriptor, error) {
	seq := n.Child
	class := classRefText(seq.At(0))
	field := fieldReferenceText(seq.At(2))
	return &TypeDescriptor{Type: class + "." + field}, nil
}

// keywordText reconstructs a (possibly multi-word) builtin keyword's
// text from its matched leaf(s).
func keywordText(n *engine.Node) string {
	if n.Kind() == engine.NodeLeaf {
		return n.Text()
	}
	words := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		words = append(words, c.Text())
	}
	return strings.Join(words, " ")
}

func definedTypeText(n *engine.Node) string {
	if n.Tag == "DefinedType" {
		n = n.Child
	}
	modulePart := n.At(0)
	ref := n.At(1).Text()
	if !modulePart.IsEmpty() {
		return modulePart.At(0).Text() + "." + ref
	}
	return ref
}

func fieldReferenceText(n *engine.Node) string {
	seq := n.Child // "FieldReference"
	return "&" + seq.At(1).Text()
}

func parseIntText(s string) int {
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	v := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0
		}
		v = v*10 + int(c-'0')
	}
	if neg {
		v = -v
	}
	return v
}

func (t *transformer) internal(msg string) error {
	return &asn1err.InternalError{Module: t.module, Assignment: t.assign, Message: msg}
}

func (t *transformer) warnf(format string, args ...interface{}) {
	t.warn(fmt.Sprintf(format, args...), 0)
}
