package format

import (
	"strings"

	"pasfmt/internal/options"
	"pasfmt/internal/replace"
	"pasfmt/internal/section"
	"pasfmt/internal/source"
)

// TransformHeader rewrites a unit/program/library header as a single
// "keyword Name;" line. The construct must be exactly keyword, name and
// semicolon: any extra sibling means it was not fully understood, and a
// half-understood header is never rewritten.
func TransformHeader(file *source.File, original string, sec section.CodeSection, opts *options.Options) (replace.TextReplacement, bool) {
	if !sec.Kind.IsHeader() {
		return replace.TextReplacement{}, false
	}
	if len(sec.Siblings) != 2 ||
		sec.Siblings[0].Kind != section.KindModule ||
		sec.Siblings[1].Kind != section.KindSemicolon {
		return replace.TextReplacement{}, false
	}

	kw := strings.ToLower(original[sec.Keyword.Span.Start:sec.Keyword.Span.End])
	name := original[sec.Siblings[0].Span.Start:sec.Siblings[0].Span.End]
	return finalize(file, original, sec.Span(), kw+" "+name+";", opts)
}

// TransformBareKeyword lowercases a standalone block marker (interface,
// implementation, initialization, finalization). Already-lowercase keywords
// produce nothing.
func TransformBareKeyword(file *source.File, original string, sec section.CodeSection, opts *options.Options) (replace.TextReplacement, bool) {
	if !sec.Kind.IsBareKeyword() {
		return replace.TextReplacement{}, false
	}

	kw := original[sec.Keyword.Span.Start:sec.Keyword.Span.End]
	lower := strings.ToLower(kw)
	if lower == kw {
		return replace.TextReplacement{}, false
	}
	return finalize(file, original, sec.Keyword.Span, lower, opts)
}
