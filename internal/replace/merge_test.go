package replace_test

import (
	"testing"

	"pasfmt/internal/replace"
	"pasfmt/internal/source"
)

func span(start, end uint32) source.Span {
	return source.Span{Start: start, End: end}
}

func TestMergeBasic(t *testing.T) {
	original := "uses B, A;"
	reps := []replace.TextReplacement{
		replace.NewLiteral(span(5, 6), "X"),
	}
	if got := replace.Merge(original, reps); got != "uses X, A;" {
		t.Fatalf("merge: %q", got)
	}
}

func TestMergeSortsByStart(t *testing.T) {
	original := "abcdef"
	reps := []replace.TextReplacement{
		replace.NewLiteral(span(4, 5), "E"),
		replace.NewLiteral(span(0, 1), "A"),
		replace.NewLiteral(span(2, 3), "C"),
	}
	if got := replace.Merge(original, reps); got != "AbCdEf" {
		t.Fatalf("merge: %q", got)
	}
}

func TestMergeInsertion(t *testing.T) {
	original := "procedure Foo;"
	reps := []replace.TextReplacement{
		replace.NewLiteral(span(13, 13), "()"),
	}
	if got := replace.Merge(original, reps); got != "procedure Foo();" {
		t.Fatalf("merge: %q", got)
	}
}

func TestMergeIdentityUsesOriginalSlice(t *testing.T) {
	original := "abcdef"
	reps := []replace.TextReplacement{
		replace.NewUnresolved(span(1, 4)),
	}
	if got := replace.Merge(original, reps); got != original {
		t.Fatalf("merge: %q", got)
	}
}

func TestMergeWholeText(t *testing.T) {
	original := "uses B, A;"
	reps := []replace.TextReplacement{
		replace.NewFinal(span(0, uint32(len(original))), "uses\n  A,\n  B;"),
	}
	if got := replace.Merge(original, reps); got != "uses\n  A,\n  B;" {
		t.Fatalf("merge: %q", got)
	}
}

func TestMergeNoReplacements(t *testing.T) {
	if got := replace.Merge("unchanged", nil); got != "unchanged" {
		t.Fatalf("merge: %q", got)
	}
}

func TestComputeSourceSectionsTiling(t *testing.T) {
	original := "0123456789"
	reps := []replace.TextReplacement{
		replace.NewLiteral(span(7, 9), "xx"),
		replace.NewLiteral(span(2, 4), "yy"),
	}

	gaps := replace.ComputeSourceSections(original, reps)
	want := []source.Span{span(0, 2), span(4, 7), span(9, 10)}
	if len(gaps) != len(want) {
		t.Fatalf("gap count: want %d, got %d", len(want), len(gaps))
	}
	for i, g := range gaps {
		if g.Span.Start != want[i].Start || g.Span.End != want[i].End {
			t.Fatalf("gap %d: want %s, got %s", i, want[i], g.Span)
		}
	}

	// диапазоны плюс замены покрывают [0, len) без дыр и пересечений
	covered := uint32(0)
	for _, g := range gaps {
		covered += g.Span.Len()
	}
	for _, r := range reps {
		covered += r.Span.Len()
	}
	if covered != uint32(len(original)) {
		t.Fatalf("coverage: %d of %d bytes", covered, len(original))
	}
}

func TestComputeSourceSectionsEmpty(t *testing.T) {
	gaps := replace.ComputeSourceSections("whole text", nil)
	if len(gaps) != 1 || gaps[0].Span.Start != 0 || gaps[0].Span.End != 10 {
		t.Fatalf("gaps: %+v", gaps)
	}
}

func TestComputeSourceSectionsFullCover(t *testing.T) {
	original := "covered"
	reps := []replace.TextReplacement{
		replace.NewLiteral(span(0, uint32(len(original))), "x"),
	}
	if gaps := replace.ComputeSourceSections(original, reps); len(gaps) != 0 {
		t.Fatalf("gaps: %+v", gaps)
	}
}

func TestOverlapping(t *testing.T) {
	a := replace.NewLiteral(span(0, 5), "")
	b := replace.NewLiteral(span(5, 8), "")
	c := replace.NewLiteral(span(4, 6), "")

	if replace.Overlapping([]replace.TextReplacement{a, b}) {
		t.Fatal("adjacent replacements do not overlap")
	}
	if !replace.Overlapping([]replace.TextReplacement{a, c}) {
		t.Fatal("intersecting replacements must overlap")
	}
}

func TestResolveTransition(t *testing.T) {
	r := replace.NewUnresolved(span(2, 5))
	if r.Resolved() {
		t.Fatal("fresh identity replacement must be unresolved")
	}
	if !r.NoOp("irrelevant") {
		t.Fatal("identity replacement is a no-op by definition")
	}

	resolved := r.Resolve("new")
	if text, ok := resolved.Text(); !ok || text != "new" {
		t.Fatalf("resolved text: %q, %v", text, ok)
	}
	if resolved.NoOp("0123456789") {
		t.Fatal("changed text must not be a no-op")
	}

	defer func() {
		if recover() == nil {
			t.Fatal("double resolve must panic")
		}
	}()
	resolved.Resolve("again")
}
