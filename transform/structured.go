package transform

import "github.com/go-asn1/asn1spec/engine"

// transformEnumeratedType implements spec.md §4.4's numbering
// algorithm: root items first, then the marker (recorded in place),
// then additional items; each unnamed item gets the smallest
// non-negative integer not yet used, each named item reserves its
// explicit number, and a reused number is reported as a warning.
func (t *transformer) transformEnumeratedType(n *engine.Node) (*TypeDescriptor, error) {
	seq := n.Child
	used := map[int]bool{}
	var values []interface{}

	appendItems := func(itemsNode *engine.Node) {
		for _, item := range itemsNode.Children {
			values = append(values, t.reduceEnumerationItem(item, used))
		}
	}

	appendItems(seq.At(2))
	if ext := seq.At(3); !ext.IsEmpty() {
		values = append(values, Marker)
		if more := ext.At(3); !more.IsEmpty() {
			appendItems(more.At(1))
		}
	}

	return &TypeDescriptor{Type: "ENUMERATED", Values: values}, nil
}

func (t *transformer) reduceEnumerationItem(item *engine.Node, used map[int]bool) EnumValue {
	body := item.Child // "EnumerationItem" -> Choice(NamedNumber, identifier)
	if body.Tag == "NamedNumber" {
		seq := body.Child
		name := seq.At(0).Text()
		num := signedNumberFromChoice(seq.At(2))
		if used[num] {
			t.warn(nameDupMsg(name, num), 0)
		}
		used[num] = true
		return EnumValue{Name: name, Number: num}
	}
	name := body.Text()
	num := nextFree(used)
	used[num] = true
	return EnumValue{Name: name, Number: num}
}

func nameDupMsg(name string, num int) string {
	return "ENUMERATED item " + name + " reuses number already assigned in this type"
}

func nextFree(used map[int]bool) int {
	for i := 0; ; i++ {
		if !used[i] {
			return i
		}
	}
}

// transformStructuredType reduces SEQUENCE/SET's ComponentTypeLists
// into a flat Members slice; extension-addition groups nest as a
// Member's ExtensionAdditionGroup, per spec.md §4.4.
func (t *transformer) transformStructuredType(n *engine.Node, kind string) (*TypeDescriptor, error) {
	seq := n.Child
	td := &TypeDescriptor{Type: kind}
	listsNode := seq.At(2)
	if listsNode.IsEmpty() {
		return td, nil
	}

	members, err := t.transformComponentTypeLists(listsNode)
	if err != nil {
		return nil, err
	}
	td.Members = members
	return td, nil
}

func (t *transformer) transformComponentTypeLists(n *engine.Node) ([]*Member, error) {
	seq := n.Child // Choice branch: either [rootList, opt-ext] or [marker, ...]
	var out []*Member

	if seq.At(0).Tag == "ExtensionMarker" {
		out = append(out, markerMember())
		if additions := seq.At(2); !additions.IsEmpty() {
			ms, err := t.transformExtensionAdditionList(additions.At(1))
			if err != nil {
				return nil, err
			}
			out = append(out, ms...)
		}
		if closing := seq.At(3); !closing.IsEmpty() {
			out = append(out, markerMember())
			if tail := closing.At(2); !tail.IsEmpty() {
				ms, err := t.transformComponentTypeList(tail.At(1))
				if err != nil {
					return nil, err
				}
				out = append(out, ms...)
			}
		}
		return out, nil
	}

	root, err := t.transformComponentTypeList(seq.At(0))
	if err != nil {
		return nil, err
	}
	out = append(out, root...)

	ext := seq.At(1)
	if ext.IsEmpty() {
		return out, nil
	}
	out = append(out, markerMember())
	if additions := ext.At(3); !additions.IsEmpty() {
		ms, err := t.transformExtensionAdditionList(additions.At(1))
		if err != nil {
			return nil, err
		}
		out = append(out, ms...)
	}
	if closing := ext.At(4); !closing.IsEmpty() {
		out = append(out, markerMember())
		if tail := closing.At(2); !tail.IsEmpty() {
			ms, err := t.transformComponentTypeList(tail.At(1))
			if err != nil {
				return nil, err
			}
			out = append(out, ms...)
		}
	}
	return out, nil
}

// markerMember represents an extension marker occupying a position in
// a member list; transform.ModuleTree consumers recognize it by Name
// being empty and Type being the extension sentinel's type name.
func markerMember() *Member {
	return &Member{TypeDescriptor: TypeDescriptor{Type: "..."}}
}

func (t *transformer) transformComponentTypeList(n *engine.Node) ([]*Member, error) {
	out := make([]*Member, 0, len(n.Children))
	seen := map[string]bool{}
	for _, c := range n.Children {
		m, err := t.transformComponentType(c)
		if err != nil {
			return nil, err
		}
		if m.Name != "" {
			if seen[m.Name] {
				t.warn("duplicate member name "+m.Name, 0)
			}
			seen[m.Name] = true
		}
		out = append(out, m)
	}
	return out, nil
}

func (t *transformer) transformExtensionAdditionList(n *engine.Node) ([]*Member, error) {
	out := make([]*Member, 0, len(n.Children))
	for _, c := range n.Children {
		if c.Tag == "ExtensionAdditionGroup" {
			seq := c.Child
			group, err := t.transformComponentTypeList(seq.At(2))
			if err != nil {
				return nil, err
			}
			out = append(out, &Member{ExtensionAdditionGroup: group})
			continue
		}
		m, err := t.transformComponentType(c)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// transformComponentType reduces one ComponentType node: either a
// synthetic "COMPONENTS OF Type" member or an ordinary NamedType with
// its OPTIONAL/DEFAULT qualifier.
func (t *transformer) transformComponentType(n *engine.Node) (*Member, error) {
	seq := n.Child // "ComponentType"
	if seq.At(0).Kind() == engine.NodeLeaf && seq.At(0).Text() == "COMPONENTS" {
		td, err := t.transformType(seq.At(2))
		if err != nil {
			return nil, err
		}
		return &Member{TypeDescriptor: *td, ComponentsOf: td.Type}, nil
	}

	named := seq.At(0) // NamedType: Seq(identifier, Type)
	name := named.At(0).Text()
	td, err := t.transformType(named.At(1))
	if err != nil {
		return nil, err
	}
	m := &Member{TypeDescriptor: *td, Name: name}

	qualifier := seq.At(1)
	if qualifier.IsEmpty() {
		return m, nil
	}
	if qualifier.Kind() == engine.NodeLeaf && qualifier.Text() == "OPTIONAL" {
		m.Optional = true
		return m, nil
	}
	// DEFAULT Value
	vd, err := t.transformValue(qualifier.At(1), td.Type)
	if err != nil {
		return nil, err
	}
	m.Default = vd
	return m, nil
}

// transformChoiceType mirrors transformStructuredType for CHOICE,
// whose alternatives never carry OPTIONAL/DEFAULT.
func (t *transformer) transformChoiceType(n *engine.Node) (*TypeDescriptor, error) {
	seq := n.Child
	listsNode := seq.At(2) // "ComponentTypeLists"-tagged
	inner := listsNode.Child
	root, err := t.transformAlternativeList(inner.At(0))
	if err != nil {
		return nil, err
	}
	members := root

	ext := inner.At(1)
	if !ext.IsEmpty() {
		members = append(members, markerMember())
		if additions := ext.At(3); !additions.IsEmpty() {
			ms, err := t.transformAlternativeExtensionList(additions.At(1))
			if err != nil {
				return nil, err
			}
			members = append(members, ms...)
		}
	}
	return &TypeDescriptor{Type: "CHOICE", Members: members}, nil
}

func (t *transformer) transformAlternativeList(n *engine.Node) ([]*Member, error) {
	out := make([]*Member, 0, len(n.Children))
	for _, c := range n.Children {
		m, err := t.transformNamedAlternative(c)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (t *transformer) transformAlternativeExtensionList(n *engine.Node) ([]*Member, error) {
	out := make([]*Member, 0, len(n.Children))
	for _, c := range n.Children {
		if c.Tag == "ExtensionAdditionGroup" {
			seq := c.Child
			group, err := t.transformAlternativeList(seq.At(2))
			if err != nil {
				return nil, err
			}
			out = append(out, &Member{ExtensionAdditionGroup: group})
			continue
		}
		m, err := t.transformNamedAlternative(c)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// transformNamedAlternative reduces a CHOICE alternative: a
// "ComponentType"-tagged node wrapping a bare NamedType (identifier,
// Type), per grammar's namedAlternativeRule — distinct from a
// SEQUENCE/SET component, which additionally carries an
// OPTIONAL/DEFAULT qualifier slot.
func (t *transformer) transformNamedAlternative(n *engine.Node) (*Member, error) {
	seq := n.Child
	name := seq.At(0).Text()
	td, err := t.transformType(seq.At(1))
	if err != nil {
		return nil, err
	}
	return &Member{TypeDescriptor: *td, Name: name}, nil
}
