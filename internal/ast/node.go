package ast

import (
	"pasfmt/internal/source"
)

// Node is the minimal read-only syntax-tree contract the section extractor
// depends on. Any parser able to produce typed, byte-spanned nodes with an
// error marker can sit behind it; the bundled parser is one such producer.
type Node interface {
	// Kind returns a stable lowercase tag ("uses", "ident", "clause", ...).
	Kind() string
	// Span returns the byte range the node covers in the original text.
	Span() source.Span
	// HasError reports whether this node or anything inside it failed to
	// parse cleanly.
	HasError() bool
	// Parent returns the enclosing node, or nil for the root.
	Parent() Node
	// Children returns the node's children in source order.
	Children() []Node
}

// Kind tags for interior nodes; leaf tags come from token.Kind.String().
const (
	KindFile   = "file"
	KindClause = "clause"
)

// BasicNode is the bundled Node implementation built by internal/parser.
type BasicNode struct {
	kind     string
	span     source.Span
	err      bool
	parent   *BasicNode
	children []*BasicNode
}

// NewNode creates a detached node.
func NewNode(kind string, span source.Span) *BasicNode {
	return &BasicNode{kind: kind, span: span}
}

func (n *BasicNode) Kind() string      { return n.kind }
func (n *BasicNode) Span() source.Span { return n.span }
func (n *BasicNode) HasError() bool    { return n.err }

func (n *BasicNode) Parent() Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *BasicNode) Children() []Node {
	out := make([]Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

// AddChild appends child, reparents it, and widens the receiver's span to
// cover it.
func (n *BasicNode) AddChild(child *BasicNode) {
	child.parent = n
	n.children = append(n.children, child)
	if n.span.Empty() {
		n.span = child.span
	} else {
		n.span = n.span.Cover(child.span)
	}
	if child.err {
		n.markUp()
	}
}

// MarkError flags the node and every ancestor: an error anywhere inside a
// subtree must be visible from its root.
func (n *BasicNode) MarkError() {
	n.err = true
	n.markUp()
}

func (n *BasicNode) markUp() {
	for p := n.parent; p != nil && !p.err; p = p.parent {
		p.err = true
	}
	n.err = true
}
