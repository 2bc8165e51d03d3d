// Package replace defines the edit representation and the merge engine that
// splices edits from multiple passes into the final document.
//
// Назначение: модель TextReplacement (literal/identity), вычисление
// непокрытых диапазонов и финальная склейка.
// Не делает: никаких решений о том, ЧТО переписывать.
// Зависимости: internal/source.
package replace

import (
	"fmt"

	"pasfmt/internal/source"
)

// TextReplacement is one edit against the original text: a byte span plus
// the text that replaces it. The text is a tagged variant, not an optional
// string: an unresolved (identity) replacement still derives its final text
// from the original slice and must be resolved by a later pass before merge.
type TextReplacement struct {
	Span source.Span
	// Final marks fully normalized text (full-section rewrites); generic
	// passes must pass it through untouched.
	Final bool

	text     string
	resolved bool
}

// NewLiteral creates a resolved replacement carrying its final text.
func NewLiteral(span source.Span, text string) TextReplacement {
	return TextReplacement{Span: span, text: text, resolved: true}
}

// NewFinal creates a resolved replacement later passes must not rescan.
func NewFinal(span source.Span, text string) TextReplacement {
	return TextReplacement{Span: span, text: text, resolved: true, Final: true}
}

// NewUnresolved creates an identity placeholder: the range may still need
// re-derivation from the original text by a later pass.
func NewUnresolved(span source.Span) TextReplacement {
	return TextReplacement{Span: span}
}

// Resolved reports whether the replacement carries literal text.
func (r TextReplacement) Resolved() bool { return r.resolved }

// Text returns the literal text; ok is false for identity replacements.
func (r TextReplacement) Text() (string, bool) {
	return r.text, r.resolved
}

// Resolve upgrades an identity replacement to carry literal text. The
// transition is one-way: resolving an already-resolved replacement is a
// programming error.
func (r TextReplacement) Resolve(text string) TextReplacement {
	if r.resolved {
		panic(fmt.Errorf("replace: resolve of resolved replacement %s", r.Span))
	}
	r.text = text
	r.resolved = true
	return r
}

// NoOp reports whether the replacement would reproduce the original slice.
// Unresolved replacements are no-ops by definition.
func (r TextReplacement) NoOp(original string) bool {
	if !r.resolved {
		return true
	}
	return r.text == original[r.Span.Start:r.Span.End]
}

// Overlapping reports whether any two replacements overlap in byte range.
// Overlap is a precondition violation for Merge, not a recovered case; this
// helper exists so pipelines and tests can assert the invariant.
func Overlapping(reps []TextReplacement) bool {
	for i := range reps {
		for j := i + 1; j < len(reps); j++ {
			if reps[i].Span.Overlaps(reps[j].Span) {
				return true
			}
		}
	}
	return false
}
