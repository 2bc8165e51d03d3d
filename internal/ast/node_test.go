package ast

import (
	"testing"

	"pasfmt/internal/source"
)

func TestAddChildWidensSpan(t *testing.T) {
	root := NewNode(KindClause, source.Span{})
	root.AddChild(NewNode("uses", source.Span{Start: 4, End: 8}))
	root.AddChild(NewNode("ident", source.Span{Start: 9, End: 14}))

	if sp := root.Span(); sp.Start != 4 || sp.End != 14 {
		t.Fatalf("clause span: got %s", sp)
	}
	if got := len(root.Children()); got != 2 {
		t.Fatalf("children: got %d", got)
	}
	if root.Children()[0].Parent() != Node(root) {
		t.Fatal("child parent not set")
	}
}

func TestMarkErrorBubbles(t *testing.T) {
	file := NewNode(KindFile, source.Span{})
	clause := NewNode(KindClause, source.Span{})
	file.AddChild(clause)
	leaf := NewNode("ident", source.Span{Start: 0, End: 1})
	clause.AddChild(leaf)

	leaf.MarkError()

	if !leaf.HasError() || !clause.HasError() || !file.HasError() {
		t.Fatal("error must be visible from every ancestor")
	}
}

func TestAddChildCarriesError(t *testing.T) {
	clause := NewNode(KindClause, source.Span{})
	bad := NewNode("invalid", source.Span{Start: 0, End: 1})
	bad.MarkError()
	clause.AddChild(bad)

	if !clause.HasError() {
		t.Fatal("adding an errored child must flag the parent")
	}
}
