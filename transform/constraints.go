package transform

import "github.com/go-asn1/asn1spec/engine"

// renderOpaque turns an arbitrary parse subtree into a generic
// JSON-able value: a leaf becomes its text, a sequence becomes a
// list of its non-empty children's renderings, and a tagged node
// becomes a single-key map keyed by its tag. It is the fallback used
// for constructs this module intentionally does not resolve further
// (general constraints, WITH COMPONENT(S), parameterized actual
// arguments), per spec.md §1's "does not evaluate value expressions
// beyond syntactic capture".
func renderOpaque(n *engine.Node) interface{} {
	if n == nil || n.IsEmpty() {
		return nil
	}
	switch n.Kind() {
	case engine.NodeLeaf:
		return n.Text()
	case engine.NodeTagged:
		return map[string]interface{}{n.Tag: renderOpaque(n.Child)}
	case engine.NodeSequence:
		var out []interface{}
		for _, c := range n.Children {
			if v := renderOpaque(c); v != nil {
				out = append(out, v)
			}
		}
		return out
	default:
		return nil
	}
}

// elementSetSpecElements flattens a Unions/Intersections/EXCEPT tree
// into its leaf elements, discarding the union/intersection/exclusion
// boolean structure: downstream code (RestrictedTo, SIZE, FROM lists)
// treats a constraint as the flat set its elements denote, matching
// how the original's convert_size_constraint and friends operate on
// the parsed token list directly rather than evaluating set algebra.
func elementSetSpecElements(n *engine.Node) (elems []*engine.Node, allExcept bool) {
	if n.Tag == "AllExcept" {
		return []*engine.Node{n.Child.At(2)}, true
	}
	return flattenUnions(n), false
}

func flattenUnions(n *engine.Node) []*engine.Node {
	seq := n.Child
	out := flattenIntersections(seq.At(0))
	for _, pair := range seq.At(1).Children {
		out = append(out, flattenIntersections(pair.At(1))...)
	}
	return out
}

func flattenIntersections(n *engine.Node) []*engine.Node {
	seq := n.Child
	out := []*engine.Node{extractElement(seq.At(0))}
	for _, pair := range seq.At(1).Children {
		out = append(out, extractElement(pair.At(1)))
	}
	return out
}

func extractElement(ieNode *engine.Node) *engine.Node {
	return ieNode.Child.At(0)
}

// constraintElementsList reduces a nested Constraint node (as found
// inside a SizeConstraint's or FromConstraint's own argument) to a
// flat element list, for the "size constraint nested one level deep"
// lifting spec.md §4.4 describes.
func (t *transformer) constraintElementsList(constraintNode *engine.Node) []interface{} {
	if constraintNode == nil || constraintNode.Tag != "Constraint" {
		return nil
	}
	inner := constraintNode.Child
	spec := inner.At(1)
	if spec.Tag == "GeneralConstraint" {
		return []interface{}{renderOpaque(spec)}
	}
	seq := spec.Child
	elems, allExcept := elementSetSpecElements(seq.At(0))
	optExt := seq.At(1)

	var out []interface{}
	if allExcept {
		out = append(out, map[string]interface{}{"all-except": t.elementValue(elems[0])})
	} else {
		for _, e := range elems {
			out = append(out, t.elementValue(e))
		}
	}
	if !optExt.IsEmpty() {
		out = append(out, Marker)
	}
	return out
}

func (t *transformer) elementValue(e *engine.Node) interface{} {
	switch e.Tag {
	case "SizeConstraint":
		return map[string]interface{}{"size": t.constraintElementsList(e.Child.At(1))}
	case "FromConstraint":
		return map[string]interface{}{"from": t.constraintElementsList(e.Child.At(1))}
	case "PatternConstraint":
		vd, err := t.transformValue(e.Child.At(1), "")
		if err != nil {
			return nil
		}
		return map[string]interface{}{"pattern": vd.Value}
	case "WithComponent", "WithComponents":
		return renderOpaque(e)
	case "ValueRange":
		return t.rangeFromNode(e)
	case "SingleValue":
		vd, err := t.transformValue(e.Child, "")
		if err != nil {
			return nil
		}
		return vd.Value
	case "ContainedSubtype":
		seq := e.Child
		td, err := t.transformType(seq.At(1))
		if err != nil {
			return nil
		}
		return td.Type
	default:
		return renderOpaque(e)
	}
}

func (t *transformer) rangeFromNode(e *engine.Node) Range {
	seq := e.Child
	return Range{
		Lower:        t.endpointValue(seq.At(0)),
		LowerExclude: !seq.At(1).IsEmpty(),
		Upper:        t.endpointValue(seq.At(4)),
		UpperExclude: !seq.At(3).IsEmpty(),
	}
}

func (t *transformer) endpointValue(n *engine.Node) interface{} {
	if n.Kind() == engine.NodeLeaf {
		if txt := n.Text(); txt == "MIN" || txt == "MAX" {
			return txt
		}
	}
	vd, err := t.transformValue(n, "")
	if err != nil {
		return nil
	}
	return vd.Value
}

// applyConstraints lifts each parenthesized Constraint following a
// Type into the TypeDescriptor's size/from/with-components/
// restricted-to/general-constraints fields, per spec.md §4.4.
func (t *transformer) applyConstraints(td *TypeDescriptor, constraints []*engine.Node) {
	for _, c := range constraints {
		if c.Tag != "Constraint" {
			continue
		}
		inner := c.Child
		spec := inner.At(1)
		if spec.Tag == "GeneralConstraint" {
			td.GeneralConstraints = append(td.GeneralConstraints, renderOpaque(spec))
			continue
		}

		seq := spec.Child
		elems, allExcept := elementSetSpecElements(seq.At(0))
		optExt := seq.At(1)

		var sizeVal, fromVal []interface{}
		var withCompVal interface{}
		for _, e := range elems {
			switch e.Tag {
			case "SizeConstraint":
				sizeVal = t.constraintElementsList(e.Child.At(1))
			case "FromConstraint":
				fromVal = t.constraintElementsList(e.Child.At(1))
			case "WithComponent", "WithComponents":
				withCompVal = renderOpaque(e)
			default:
				td.RestrictedTo = append(td.RestrictedTo, t.elementValue(e))
			}
		}
		if allExcept {
			td.RestrictedTo = append(td.RestrictedTo, map[string]interface{}{"all-except": t.elementValue(elems[0])})
		}
		if sizeVal != nil {
			td.Size = sizeVal
		}
		if fromVal != nil {
			td.From = fromVal
		}
		if withCompVal != nil {
			td.WithComponents = withCompVal
		}
		if !optExt.IsEmpty() {
			td.RestrictedTo = append(td.RestrictedTo, Marker)
		}
	}
}
