package replace

import (
	"sort"
	"strings"

	"pasfmt/internal/source"
)

// SourceSection is a derived, read-only gap: a byte range of the original
// text not covered by any replacement, copied verbatim during merge.
type SourceSection struct {
	Span source.Span
}

// sortedCopy returns the replacements ordered by span start; the caller's
// slice is left untouched. Construction order of replacements never matters.
func sortedCopy(reps []TextReplacement) []TextReplacement {
	out := append([]TextReplacement(nil), reps...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Span.Start < out[j].Span.Start
	})
	return out
}

// ComputeSourceSections returns the gaps between replacements. With zero
// replacements the whole text is one gap; a replacement spanning the entire
// text collapses the list to empty. Gaps and replacement ranges together
// exactly tile [0, len(original)).
func ComputeSourceSections(original string, reps []TextReplacement) []SourceSection {
	length := uint32(len(original))
	out := make([]SourceSection, 0, len(reps)+1)

	var fileID source.FileID
	if len(reps) > 0 {
		fileID = reps[0].Span.File
	}

	pos := uint32(0)
	for _, rep := range sortedCopy(reps) {
		if rep.Span.Start > pos {
			out = append(out, SourceSection{Span: source.Span{
				File:  rep.Span.File,
				Start: pos,
				End:   rep.Span.Start,
			}})
		}
		if rep.Span.End > pos {
			pos = rep.Span.End
		}
	}
	if pos < length {
		out = append(out, SourceSection{Span: source.Span{
			File:  fileID,
			Start: pos,
			End:   length,
		}})
	}
	return out
}

// Merge splices the replacements into the original text: untouched gaps are
// copied verbatim, resolved replacements contribute their literal text, and
// identity replacements fall back to the original slice. Overlapping ranges
// are a precondition violation; the extractor's non-overlap guarantee is
// what makes the single sorted sweep safe.
func Merge(original string, reps []TextReplacement) string {
	if len(reps) == 0 {
		return original
	}

	var b strings.Builder
	b.Grow(len(original))

	pos := uint32(0)
	for _, rep := range sortedCopy(reps) {
		if rep.Span.Start > pos {
			b.WriteString(original[pos:rep.Span.Start])
		}
		if text, ok := rep.Text(); ok {
			b.WriteString(text)
		} else {
			b.WriteString(original[rep.Span.Start:rep.Span.End])
		}
		if rep.Span.End > pos {
			pos = rep.Span.End
		}
	}
	if pos < uint32(len(original)) {
		b.WriteString(original[pos:])
	}
	return b.String()
}
