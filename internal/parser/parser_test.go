package parser_test

import (
	"testing"

	"pasfmt/internal/ast"
	"pasfmt/internal/parser"
	"pasfmt/internal/source"
)

func parseString(t *testing.T, input string) ast.Node {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.pas", []byte(input))
	return parser.ParseFile(fs.Get(id), parser.Options{})
}

func clauses(root ast.Node) []ast.Node {
	out := make([]ast.Node, 0)
	for _, c := range root.Children() {
		if c.Kind() == ast.KindClause {
			out = append(out, c)
		}
	}
	return out
}

func childKinds(n ast.Node) []string {
	out := make([]string, 0, len(n.Children()))
	for _, c := range n.Children() {
		out = append(out, c.Kind())
	}
	return out
}

func sameKinds(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestParseUsesClause(t *testing.T) {
	root := parseString(t, "uses SysUtils, Classes;")
	cs := clauses(root)
	if len(cs) != 1 {
		t.Fatalf("clause count: got %d", len(cs))
	}

	want := []string{"uses", "ident", "comma", "ident", "semicolon"}
	if got := childKinds(cs[0]); !sameKinds(got, want) {
		t.Fatalf("clause children: want %v, got %v", want, got)
	}
	if cs[0].HasError() {
		t.Fatal("valid clause must not carry an error")
	}
}

func TestParseUnitHeader(t *testing.T) {
	root := parseString(t, "unit Foo.Bar;\ninterface\nimplementation\nend.")
	cs := clauses(root)
	if len(cs) != 3 {
		t.Fatalf("clause count: got %d", len(cs))
	}

	want := []string{"unit", "ident", "dot", "ident", "semicolon"}
	if got := childKinds(cs[0]); !sameKinds(got, want) {
		t.Fatalf("unit clause children: want %v, got %v", want, got)
	}
	if got := childKinds(cs[1]); !sameKinds(got, []string{"interface"}) {
		t.Fatalf("interface clause children: got %v", got)
	}
	if got := childKinds(cs[2]); !sameKinds(got, []string{"implementation"}) {
		t.Fatalf("implementation clause children: got %v", got)
	}
}

func TestParseUnterminatedUsesMarksError(t *testing.T) {
	root := parseString(t, "uses SysUtils, Classes")
	cs := clauses(root)
	if len(cs) != 1 {
		t.Fatalf("clause count: got %d", len(cs))
	}
	if !cs[0].HasError() {
		t.Fatal("clause without terminator must be error-flagged")
	}
}

func TestParseKeywordBeforeTerminatorMarksError(t *testing.T) {
	root := parseString(t, "uses SysUtils unit Foo;")
	cs := clauses(root)
	if !cs[0].HasError() {
		t.Fatal("uses clause interrupted by another keyword must be error-flagged")
	}
}

func TestParseProcedureHeader(t *testing.T) {
	root := parseString(t, "procedure DoThing;\nbegin\nend;")
	cs := clauses(root)
	if len(cs) != 1 {
		t.Fatalf("clause count: got %d", len(cs))
	}
	want := []string{"procedure", "ident", "semicolon"}
	if got := childKinds(cs[0]); !sameKinds(got, want) {
		t.Fatalf("procedure clause children: want %v, got %v", want, got)
	}
}

func TestParseInterfaceTypeIsNotASection(t *testing.T) {
	root := parseString(t, "IFoo = interface\nend;")
	if len(clauses(root)) != 0 {
		t.Fatal("interface in a type declaration must not open a clause")
	}
}

func TestParseCommentInsideClauseStaysChild(t *testing.T) {
	root := parseString(t, "uses {core} SysUtils;")
	cs := clauses(root)
	want := []string{"uses", "braceComment", "ident", "semicolon"}
	if got := childKinds(cs[0]); !sameKinds(got, want) {
		t.Fatalf("clause children: want %v, got %v", want, got)
	}
}

func TestParseClauseSpanCoversTerminator(t *testing.T) {
	input := "  uses A;"
	root := parseString(t, input)
	cs := clauses(root)
	sp := cs[0].Span()
	if got := input[sp.Start:sp.End]; got != "uses A;" {
		t.Fatalf("clause span covers %q", got)
	}
}
