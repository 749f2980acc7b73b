package transform

import (
	"strconv"
	"strings"

	"github.com/go-asn1/asn1spec/engine"
)

// ChoicePair is a CHOICE value's (alternative name, value) pair. It
// marshals as a two-element JSON array, matching EnumValue/NamedNumber's
// convention for name/value pairs elsewhere in this package.
type ChoicePair struct {
	Name  string
	Value interface{}
}

func (p ChoicePair) MarshalJSON() ([]byte, error) {
	return jsonValuePair(p.Name, p.Value)
}

// ObjIdArc is one arc of an OBJECT IDENTIFIER or RELATIVE-OID value: a
// bare number, a bare name (an arc bound elsewhere, kept as text since
// resolving it needs cross-module evaluation this module does not do),
// or a named arc with an explicit number.
type ObjIdArc struct {
	Name   string
	Number int
	Named  bool
}

func (a ObjIdArc) MarshalJSON() ([]byte, error) {
	if a.Named {
		return jsonPair(a.Name, a.Number)
	}
	if a.Name != "" {
		return []byte(strconv.Quote(a.Name)), nil
	}
	return []byte(strconv.Itoa(a.Number)), nil
}

// transformValue reduces a "Value"-tagged parse node into a
// ValueDescriptor. typeHint carries the governing type's name, when
// known, for the result's Type field; an empty hint falls back to a
// name derived from the matched value shape.
func (t *transformer) transformValue(n *engine.Node, typeHint string) (*ValueDescriptor, error) {
	if n.Tag != "Value" {
		return nil, t.internal("expected Value node, got " + n.Tag)
	}
	body := n.Child

	kind, val, err := t.reduceValueBody(body)
	if err != nil {
		return nil, err
	}
	vtype := typeHint
	if vtype == "" {
		vtype = kind
	}
	return &ValueDescriptor{Type: vtype, Value: val}, nil
}

func (t *transformer) reduceValueBody(body *engine.Node) (kind string, value interface{}, err error) {
	switch body.Tag {
	case "BooleanValue":
		return "BOOLEAN", body.Child.Text() == "TRUE", nil
	case "NullValue":
		return "NULL", nil, nil
	case "SpecialRealValue":
		return "REAL", body.Child.Text(), nil
	case "NumericRealValue":
		return "REAL", numericRealValue(body), nil
	case "IntegerValue":
		return "INTEGER", signedIntegerValue(body), nil
	case "BStringValue":
		return "BIT STRING", canonicalBitString(body.Child.Text()), nil
	case "HStringValue":
		return "OCTET STRING", canonicalHexString(body.Child.Text()), nil
	case "CStringValue":
		// The lexer already resolves the doubled-quote escape and
		// strips the surrounding quotes; the token text is the value.
		return "UTF8String", body.Child.Text(), nil
	case "ObjectIdentifierValue":
		return "OBJECT IDENTIFIER", objectIdentifierArcs(body), nil
	case "ChoiceValue":
		return t.reduceChoiceValue(body)
	case "StructuredValue":
		return t.reduceStructuredValue(body)
	case "NamedBitListValue":
		return "BIT STRING", namedBitListNames(body), nil
	case "ParameterizedValue":
		seq := body.Child
		return "", definedValueText(seq.At(0)), nil
	case "DefinedValue":
		return "", definedValueText(body), nil
	default:
		t.warnf("unrecognized value shape %q; rendered opaquely", body.Tag)
		return "", renderOpaque(body), nil
	}
}

func (t *transformer) reduceChoiceValue(body *engine.Node) (string, interface{}, error) {
	seq := body.Child
	name := seq.At(0).Text()
	vd, err := t.transformValue(seq.At(2), "")
	if err != nil {
		return "", nil, err
	}
	return "CHOICE", ChoicePair{Name: name, Value: vd.Value}, nil
}

func (t *transformer) reduceStructuredValue(body *engine.Node) (string, interface{}, error) {
	seq := body.Child
	list := seq.At(1)
	out := map[string]interface{}{}
	for _, nv := range list.Children {
		nvSeq := nv.Child // "NamedValue"
		name := nvSeq.At(0).Text()
		vd, err := t.transformValue(nvSeq.At(1), "")
		if err != nil {
			return "", nil, err
		}
		out[name] = vd.Value
	}
	return "SEQUENCE", out, nil
}

func definedValueText(n *engine.Node) string {
	if n.Tag == "DefinedValue" {
		n = n.Child
	}
	modulePart := n.At(0)
	ref := n.At(1).Text()
	if !modulePart.IsEmpty() {
		return modulePart.At(0).Text() + "." + ref
	}
	return ref
}

func numericRealValue(body *engine.Node) float64 {
	seq := body.Child // Seq(Opt('-'), realNumberRule())
	neg := !seq.At(0).IsEmpty()
	real := seq.At(1) // realNumberRule: Seq(number, '.', Opt(number))
	text := real.At(0).Text() + "."
	if frac := real.At(2); !frac.IsEmpty() {
		text += frac.Text()
	}
	f, convErr := strconv.ParseFloat(text, 64)
	if convErr != nil {
		f = 0
	}
	if neg {
		f = -f
	}
	return f
}

func signedIntegerValue(body *engine.Node) int {
	seq := body.Child // Seq(Opt('-'), number)
	v := parseIntText(seq.At(1).Text())
	if !seq.At(0).IsEmpty() {
		v = -v
	}
	return v
}

// canonicalBitString turns a bstring literal's token text (the lexer
// already strips the surrounding quotes and the B suffix; whitespace
// between digits is still allowed by X.680 §12.9) into the "0bNNNN"
// canonical spelling spec.md §4.4 calls for.
func canonicalBitString(raw string) string {
	return "0b" + stripWhitespace(raw)
}

// canonicalHexString mirrors canonicalBitString for 'AF01'H literals,
// lower-casing the digits for a stable canonical form.
func canonicalHexString(raw string) string {
	return "0x" + strings.ToLower(stripWhitespace(raw))
}

func stripWhitespace(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func objectIdentifierArcs(body *engine.Node) []ObjIdArc {
	seq := body.Child // Seq('{', Plus(objIdComponent), '}')
	comps := seq.At(1)
	out := make([]ObjIdArc, 0, len(comps.Children))
	for _, c := range comps.Children {
		choice := c.Child // "ObjIdComponent"
		out = append(out, objIdArcFromComponent(choice))
	}
	return out
}

func objIdArcFromComponent(n *engine.Node) ObjIdArc {
	if n.Kind() == engine.NodeSequence {
		name := n.At(0).Text()
		num := parseIntText(n.At(2).Text())
		return ObjIdArc{Name: name, Number: num, Named: true}
	}
	text := n.Text()
	if text != "" && text[0] >= '0' && text[0] <= '9' {
		return ObjIdArc{Number: parseIntText(text)}
	}
	return ObjIdArc{Name: text}
}

func namedBitListNames(body *engine.Node) []string {
	seq := body.Child // Seq('{', Opt(Delim(identifier, ',')), '}')
	list := seq.At(1)
	if list.IsEmpty() {
		return []string{}
	}
	out := make([]string, 0, len(list.Children))
	for _, c := range list.Children {
		out = append(out, c.Text())
	}
	return out
}
