package transform

import (
	"fmt"

	"github.com/go-asn1/asn1spec/asn1err"
	"github.com/go-asn1/asn1spec/diag"
	"github.com/go-asn1/asn1spec/engine"
)

// transformer carries the state a single Transform call threads
// through its recursive reductions: the current module (for
// duplicate-name warnings) and the pluggable diagnostic sink.
type transformer struct {
	reporter diag.Reporter
	module   string
	assign   string
}

// Transform reduces a successfully parsed tree into a ModuleTree. The
// tree must be the root node engine.Parse returned for a grammar
// built from grammar.New(); reporter receives every SemanticWarning
// raised along the way.
func Transform(root *engine.Node, reporter diag.Reporter) (ModuleTree, error) {
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	file, ok := root.Untag("ModuleFile")
	if !ok {
		return nil, &asn1err.InternalError{Message: "root node is not a ModuleFile"}
	}

	tree := ModuleTree{}
	t := &transformer{reporter: reporter}
	for _, modNode := range file.Children {
		mod, ok := modNode.Untag("ModuleDefinition")
		if !ok {
			return nil, &asn1err.InternalError{Message: "ModuleFile child is not a ModuleDefinition"}
		}
		name, m, err := t.transformModule(mod)
		if err != nil {
			return nil, err
		}
		tree[name] = m
	}
	return tree, nil
}

func (t *transformer) transformModule(n *engine.Node) (string, *Module, error) {
	name := n.At(0).Text()
	t.module = name

	m := &Module{
		Imports:       map[string][]string{},
		Types:         map[string]*TypeDescriptor{},
		Values:        map[string]*ValueDescriptor{},
		ObjectClasses: map[string]*ObjectClass{},
		ObjectSets:    map[string]*ObjectSetDescriptor{},
		Objects:       map[string]*ObjectDescriptor{},
	}

	if tagDefault, ok := n.At(3).Untag("TagDefault"); ok {
		m.Tags = tagDefault.At(0).Text()
	}
	if _, ok := n.At(4).Untag("ExtensibilityImplied"); ok {
		m.ExtensibilityImplied = true
	}
	if exp, ok := n.At(7).Untag("Exports"); ok {
		m.Exports = t.transformExports(exp)
	}
	if imp, ok := n.At(8).Untag("Imports"); ok {
		m.Imports = t.transformImports(imp)
	}

	assignments := n.At(9)
	for _, a := range assignments.Children {
		if err := t.transformAssignment(a, m); err != nil {
			return "", nil, err
		}
	}

	return name, m, nil
}

// transformExports returns nil for "no EXPORTS clause" (export
// everything per X.680 §7.2.2), an empty non-nil slice for "EXPORTS
// ALL" or "EXPORTS;" with no symbols, and the listed symbol names
// otherwise. "EXPORTS ALL" and "EXPORTS;" therefore share one
// representation; see DESIGN.md's Open Question decision on EXPORTS.
func (t *transformer) transformExports(n *engine.Node) []string {
	body := n.At(1)
	if _, ok := body.Untag("ExportsAll"); ok {
		return []string{}
	}
	if body.IsEmpty() {
		return []string{}
	}
	syms := make([]string, 0, len(body.Children))
	for _, c := range body.Children {
		syms = append(syms, c.Text())
	}
	return syms
}

func (t *transformer) transformImports(n *engine.Node) map[string][]string {
	result := map[string][]string{}
	groups := n.At(1)
	for _, g := range groups.Children {
		sfm, ok := g.Untag("SymbolsFromModule")
		if !ok {
			continue
		}
		syms := sfm.At(0)
		names := make([]string, 0, len(syms.Children))
		for _, s := range syms.Children {
			names = append(names, s.Text())
		}
		module := sfm.At(2).Text()
		result[module] = append(result[module], names...)
	}
	return result
}

func (t *transformer) transformAssignment(n *engine.Node, m *Module) error {
	switch n.Kind() {
	case engine.NodeTagged:
	default:
		return &asn1err.InternalError{Module: t.module, Message: "assignment node is not Tagged"}
	}

	switch n.Tag {
	case "TypeAssignment":
		c := n.Child
		return t.typeAssignment(c.At(0).Text(), c.At(2), m, nil)
	case "ParameterizedTypeAssignment":
		c := n.Child
		params := t.transformParameterList(c.At(1))
		return t.typeAssignment(c.At(0).Text(), c.At(3), m, params)
	case "ValueAssignment":
		c := n.Child
		return t.valueAssignment(c.At(0).Text(), c.At(1), c.At(3), m)
	case "ParameterizedValueAssignment":
		c := n.Child
		return t.valueAssignment(c.At(0).Text(), c.At(2), c.At(4), m)
	case "ObjectClassAssignment":
		return t.objectClassAssignment(n.Child, m)
	case "ObjectSetAssignment":
		return t.objectSetAssignment(n.Child, m)
	case "ObjectAssignment":
		return t.objectAssignment(n.Child, m)
	default:
		t.warn(fmt.Sprintf("unrecognized assignment shape %q skipped", n.Tag), 0)
		return nil
	}
}

func (t *transformer) warn(message string, line int) {
	t.reporter.Warn(&asn1err.SemanticWarning{
		Message:    message,
		Module:     t.module,
		Assignment: t.assign,
		Line:       line,
	})
}

func (t *transformer) recordType(m *Module, name string, td *TypeDescriptor) {
	if _, dup := m.Types[name]; dup {
		t.warn(fmt.Sprintf("duplicate type assignment %q; last one wins", name), 0)
	}
	m.Types[name] = td
}

func (t *transformer) recordValue(m *Module, name string, vd *ValueDescriptor) {
	if _, dup := m.Values[name]; dup {
		t.warn(fmt.Sprintf("duplicate value assignment %q; last one wins", name), 0)
	}
	m.Values[name] = vd
}

func (t *transformer) recordObjectClass(m *Module, name string, oc *ObjectClass) {
	if _, dup := m.ObjectClasses[name]; dup {
		t.warn(fmt.Sprintf("duplicate object class assignment %q; last one wins", name), 0)
	}
	m.ObjectClasses[name] = oc
}

func (t *transformer) recordObjectSet(m *Module, name string, osd *ObjectSetDescriptor) {
	if _, dup := m.ObjectSets[name]; dup {
		t.warn(fmt.Sprintf("duplicate object set assignment %q; last one wins", name), 0)
	}
	m.ObjectSets[name] = osd
}

func (t *transformer) recordObject(m *Module, name string, od *ObjectDescriptor) {
	if _, dup := m.Objects[name]; dup {
		t.warn(fmt.Sprintf("duplicate object assignment %q; last one wins", name), 0)
	}
	m.Objects[name] = od
}

func (t *transformer) typeAssignment(name string, typeNode *engine.Node, m *Module, params []string) error {
	t.assign = name
	td, err := t.transformType(typeNode)
	if err != nil {
		return err
	}
	td.Parameters = params
	t.recordType(m, name, td)
	return nil
}

func (t *transformer) valueAssignment(name string, typeNode, valueNode *engine.Node, m *Module) error {
	t.assign = name
	td, err := t.transformType(typeNode)
	if err != nil {
		return err
	}
	vd, err := t.transformValue(valueNode, td.Type)
	if err != nil {
		return err
	}
	t.recordValue(m, name, vd)
	return nil
}

func (t *transformer) transformParameterList(n *engine.Node) []string {
	pl, ok := n.Untag("ParameterList")
	if !ok {
		return nil
	}
	names := make([]string, 0, len(pl.Children))
	// pl is Seq('{', Delim(Parameter, ','), '}').
	for _, p := range pl.At(1).Children {
		param, ok := p.Untag("Parameter")
		if !ok {
			continue
		}
		names = append(names, param.At(len(param.Children)-1).Text())
	}
	return names
}
