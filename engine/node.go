package engine

import "github.com/go-asn1/asn1spec/lexer"

// Node is the read-only, built-once parse tree produced by a
// successful Parse. It is a discriminated union over three shapes,
// per spec.md §3: a single token leaf, an ordered sequence of
// children, or a named wrapper around one child that downstream
// lookup uses to discriminate alternatives (SizeConstraint,
// ValueRange, ChoiceType, ...).
type Node struct {
	kind NodeKind

	// Leaf
	Token lexer.Token

	// Sequence
	Children []*Node

	// Tagged
	Tag   string
	Child *Node
}

// NodeKind identifies which of Node's shapes is populated.
type NodeKind int

const (
	NodeLeaf NodeKind = iota
	NodeSequence
	NodeTagged
	// NodeEmpty marks the result of a matched Optional whose inner
	// rule did not match; it carries no data but still occupies a
	// position in a parent Sequence so positional indexing into a
	// production's children stays stable.
	NodeEmpty
)

func (n *Node) Kind() NodeKind { return n.kind }

func leafNode(tok lexer.Token) *Node {
	return &Node{kind: NodeLeaf, Token: tok}
}

func seqNode(children []*Node) *Node {
	return &Node{kind: NodeSequence, Children: children}
}

func taggedNode(tag string, child *Node) *Node {
	return &Node{kind: NodeTagged, Tag: tag, Child: child}
}

func emptyNode() *Node {
	return &Node{kind: NodeEmpty}
}

// IsEmpty reports whether n is the empty placeholder produced by an
// unmatched Optional.
func (n *Node) IsEmpty() bool {
	return n == nil || n.kind == NodeEmpty
}

// Text returns the token text of a leaf node, or "" otherwise. It is
// a convenience for grammar rules that only need a terminal's text.
func (n *Node) Text() string {
	if n == nil || n.kind != NodeLeaf {
		return ""
	}
	return n.Token.Text
}

// At returns the i'th child of a Sequence node, or nil if out of
// range. Grammar Rules index into Sequence results positionally,
// mirroring how the original pyparsing grammar indexes tokens[i].
func (n *Node) At(i int) *Node {
	if n == nil || n.kind != NodeSequence || i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// Untag unwraps a Tagged node if name matches, returning its child
// and true; otherwise returns n unchanged and false.
func (n *Node) Untag(name string) (*Node, bool) {
	if n != nil && n.kind == NodeTagged && n.Tag == name {
		return n.Child, true
	}
	return n, false
}
