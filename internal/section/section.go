// Package section converts the parsed syntax tree into tree-independent
// section records the transformers consume.
//
// Назначение: распознать конструкции (uses, заголовки, маркеры блоков,
// заголовки процедур) и отсечь всё, что парсер понял не до конца.
// Не делает: никаких правок текста.
// Зависимости: internal/ast, internal/source.
package section

import (
	"pasfmt/internal/source"
)

// Element is one recognized piece of a section: a classification plus the
// byte span it covers, with redundant line/column for diagnostics.
type Element struct {
	Kind  Kind
	Span  source.Span
	Start source.LineCol
	End   source.LineCol
}

// Valid reports whether the element was actually populated.
func (e Element) Valid() bool { return e.Kind != KindNone }

// CodeSection is one recognized construct: the keyword element plus the
// ordered siblings lying between it and the terminator. Records are created
// once per traversal and are read-only afterwards; they are never merged or
// split.
type CodeSection struct {
	Kind     Kind // section kind (KindUses, KindUnit, KindProcedureDecl, ...)
	Keyword  Element
	Siblings []Element
	// Close is the terminator (';' or an 'end'-class token). Bare keyword
	// sections have none.
	Close Element
}

// Span returns the full byte range from the keyword to the terminator (or to
// the last sibling when there is no terminator).
func (s CodeSection) Span() source.Span {
	sp := s.Keyword.Span
	for _, sib := range s.Siblings {
		sp = sp.Cover(sib.Span)
	}
	if s.Close.Valid() {
		sp = sp.Cover(s.Close.Span)
	}
	return sp
}

// Modules returns the siblings of kind KindModule, in order.
func (s CodeSection) Modules() []Element {
	out := make([]Element, 0, len(s.Siblings))
	for _, sib := range s.Siblings {
		if sib.Kind == KindModule {
			out = append(out, sib)
		}
	}
	return out
}
