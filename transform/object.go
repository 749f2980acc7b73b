package transform

import (
	"github.com/go-asn1/asn1spec/asn1err"
	"github.com/go-asn1/asn1spec/engine"
)

// objectClassAssignment reduces "TypeReference ::= ClassDefn" into an
// ObjectClass recorded under name, per the X.681 supplement in
// SPEC_FULL.md §4.3.
func (t *transformer) objectClassAssignment(seq *engine.Node, m *Module) error {
	name := seq.At(0).Text()
	t.assign = name
	oc, err := t.reduceObjectClassDefn(seq.At(2))
	if err != nil {
		return err
	}
	t.recordObjectClass(m, name, oc)
	return nil
}

func (t *transformer) reduceObjectClassDefn(n *engine.Node) (*ObjectClass, error) {
	body := n.Child // "ObjectClassDefn"
	fieldsNode := body.At(2)
	fields := make([]ClassField, 0, len(fieldsNode.Children))
	for _, f := range fieldsNode.Children {
		cf, err := t.reduceFieldSpec(f)
		if err != nil {
			return nil, err
		}
		fields = append(fields, cf)
	}
	return &ObjectClass{Fields: fields, HasSyntax: !body.At(4).IsEmpty()}, nil
}

func (t *transformer) reduceFieldSpec(n *engine.Node) (ClassField, error) {
	switch n.Tag {
	case "TypeFieldSpec":
		seq := n.Child
		cf := ClassField{Name: fieldReferenceText(seq.At(0)), Kind: "type"}
		if q := seq.At(1); !q.IsEmpty() {
			if q.Kind() == engine.NodeLeaf && q.Text() == "OPTIONAL" {
				cf.Optional = true
			} else {
				td, err := t.transformType(q.At(1))
				if err != nil {
					return ClassField{}, err
				}
				cf.Type = td
			}
		}
		return cf, nil
	case "FixedTypeValueFieldSpec":
		seq := n.Child
		td, err := t.transformType(seq.At(1))
		if err != nil {
			return ClassField{}, err
		}
		cf := ClassField{Name: fieldReferenceText(seq.At(0)), Kind: "value", Type: td}
		if !seq.At(2).IsEmpty() {
			cf.Unique = true
		}
		if q := seq.At(3); !q.IsEmpty() && q.Kind() == engine.NodeLeaf && q.Text() == "OPTIONAL" {
			cf.Optional = true
		}
		return cf, nil
	case "UnsupportedFieldSpec":
		seq := n.Child
		name := fieldReferenceText(seq.At(0))
		return ClassField{}, &asn1err.NotImplementedError{Construct: "information object class field " + name}
	default:
		return ClassField{}, t.internal("unrecognized field spec shape " + n.Tag)
	}
}

// classRefText reads a definedObjectClass node: either one of the two
// predefined class keywords (TYPE-IDENTIFIER, ABSTRACT-SYNTAX) or an
// ordinary module-qualifiable type reference.
func classRefText(n *engine.Node) string {
	if n.Kind() == engine.NodeLeaf {
		return n.Text()
	}
	return definedTypeText(n)
}

// objectSetAssignment reduces "TypeReference DefinedObjectClass ::=
// ObjectSet" into an ObjectSetDescriptor recorded under name.
func (t *transformer) objectSetAssignment(seq *engine.Node, m *Module) error {
	name := seq.At(0).Text()
	t.assign = name
	osd, err := t.reduceObjectSet(seq.At(3))
	if err != nil {
		return err
	}
	osd.Class = classRefText(seq.At(1))
	t.recordObjectSet(m, name, osd)
	return nil
}

func (t *transformer) reduceObjectSet(n *engine.Node) (*ObjectSetDescriptor, error) {
	seq := n.Child // "ObjectSet"
	elems := seq.At(1)
	members := make([]interface{}, 0, len(elems.Children))
	for _, e := range elems.Children {
		if e.Tag == "ExtensionMarker" {
			members = append(members, Marker)
			continue
		}
		val, err := t.reduceObjectValue(e)
		if err != nil {
			return nil, err
		}
		members = append(members, val)
	}
	return &ObjectSetDescriptor{Members: members}, nil
}

// objectAssignment reduces "valuereference DefinedObjectClass ::=
// Object" into an ObjectDescriptor recorded under name.
func (t *transformer) objectAssignment(seq *engine.Node, m *Module) error {
	name := seq.At(0).Text()
	t.assign = name
	class := classRefText(seq.At(1))
	val, err := t.reduceObjectValue(seq.At(3))
	if err != nil {
		return err
	}
	settings, ok := val.(map[string]interface{})
	if !ok {
		settings = map[string]interface{}{"$ref": val}
	}
	t.recordObject(m, name, &ObjectDescriptor{Class: class, Settings: settings})
	return nil
}

// reduceObjectValue reads an "Object"-tagged node: either a
// default-syntax field-setting block, reduced to a settings map, or a
// DefinedValue referring to another named object, kept as text since
// resolving it needs cross-assignment lookup this module does not do.
func (t *transformer) reduceObjectValue(n *engine.Node) (interface{}, error) {
	body := n.Child
	switch body.Tag {
	case "DefaultSyntaxObject":
		return t.reduceDefaultSyntaxObject(body)
	case "DefinedValue":
		return definedValueText(body), nil
	default:
		return renderOpaque(body), nil
	}
}

func (t *transformer) reduceDefaultSyntaxObject(body *engine.Node) (map[string]interface{}, error) {
	seq := body.Child // Seq('{', Opt(Delim(FieldSetting, ',')), '}')
	settings := map[string]interface{}{}
	list := seq.At(1)
	if list.IsEmpty() {
		return settings, nil
	}
	for _, fs := range list.Children {
		name, val, err := t.reduceFieldSetting(fs)
		if err != nil {
			return nil, err
		}
		settings[name] = val
	}
	return settings, nil
}

func (t *transformer) reduceFieldSetting(n *engine.Node) (string, interface{}, error) {
	seq := n.Child // "FieldSetting"
	name := fieldReferenceText(seq.At(0))
	v := seq.At(1)
	switch v.Tag {
	case "ObjectSet":
		osd, err := t.reduceObjectSet(v)
		if err != nil {
			return name, nil, err
		}
		return name, osd, nil
	case "Type":
		td, err := t.transformType(v)
		if err != nil {
			return name, nil, err
		}
		return name, td, nil
	case "Object":
		val, err := t.reduceObjectValue(v)
		if err != nil {
			return name, nil, err
		}
		return name, val, nil
	case "Value":
		vd, err := t.transformValue(v, "")
		if err != nil {
			return name, nil, err
		}
		return name, vd.Value, nil
	default:
		return name, renderOpaque(v), nil
	}
}
