package format

import (
	"strings"

	"pasfmt/internal/options"
	"pasfmt/internal/replace"
	"pasfmt/internal/section"
	"pasfmt/internal/source"
)

// TransformRoutine inserts an empty "()" after the name of a procedure or
// function declared without a parameter list. The insertion is zero-width
// (start == end), so it never collides with the identity replacements tiling
// the rest of the text.
func TransformRoutine(file *source.File, original string, sec section.CodeSection, opts *options.Options) (replace.TextReplacement, bool) {
	if !sec.Kind.IsRoutine() {
		return replace.TextReplacement{}, false
	}

	var name section.Element
	for _, sib := range sec.Siblings {
		if sib.Kind == section.KindIdentifier {
			name = sib
			break
		}
	}
	if !name.Valid() {
		return replace.TextReplacement{}, false
	}

	i := int(name.Span.End)
	for i < len(original) && isSpace(original[i]) {
		i++
	}
	if i < len(original) && original[i] == '(' {
		// список параметров уже есть
		return replace.TextReplacement{}, false
	}

	at := source.Span{File: file.ID, Start: name.Span.End, End: name.Span.End}
	return replace.NewFinal(at, "()"), true
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// InheritedCall is one call-expansion candidate inside a method body: the
// byte offset right after the bare 'inherited' keyword, the routine name and
// the ordered parameter names of the enclosing method.
type InheritedCall struct {
	Offset uint32
	Name   string
	Args   []string
}

// ExpandInheritedCalls builds zero-width insertions turning each bare
// 'inherited' into an explicit call: " Name(arg1, arg2)" or " Name()" when
// the method has no parameters.
func ExpandInheritedCalls(fileID source.FileID, calls []InheritedCall) []replace.TextReplacement {
	reps := make([]replace.TextReplacement, 0, len(calls))
	for _, call := range calls {
		at := source.Span{File: fileID, Start: call.Offset, End: call.Offset}
		text := " " + call.Name + "(" + strings.Join(call.Args, ", ") + ")"
		reps = append(reps, replace.NewFinal(at, text))
	}
	return reps
}
