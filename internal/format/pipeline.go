package format

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"pasfmt/internal/options"
	"pasfmt/internal/parser"
	"pasfmt/internal/replace"
	"pasfmt/internal/rewrite"
	"pasfmt/internal/section"
	"pasfmt/internal/source"
)

// transformSection dispatches one extracted section to its transformer.
func transformSection(file *source.File, original string, sec section.CodeSection, opts *options.Options) (replace.TextReplacement, bool) {
	switch {
	case sec.Kind == section.KindUses:
		return TransformUses(file, original, sec, opts)
	case sec.Kind.IsHeader():
		return TransformHeader(file, original, sec, opts)
	case sec.Kind.IsBareKeyword():
		return TransformBareKeyword(file, original, sec, opts)
	case sec.Kind.IsRoutine():
		return TransformRoutine(file, original, sec, opts)
	default:
		return replace.TextReplacement{}, false
	}
}

// ProduceReplacements runs the full pipeline for one file: parse, extract
// sections, run the transformers, tile the remaining gaps with identity
// replacements, refine operator spacing over everything non-final, and drop
// whatever ended up reproducing the original text. The returned list is the
// complete edit set; an empty list means the file is already formatted.
func ProduceReplacements(fs *source.FileSet, file *source.File, opts *options.Options) []replace.TextReplacement {
	return ProduceReplacementsReported(fs, file, opts, nil)
}

// ProduceReplacementsReported is ProduceReplacements with a reporter wired
// through the lexer and parser, so callers can surface the regions the
// formatter skipped.
func ProduceReplacementsReported(fs *source.FileSet, file *source.File, opts *options.Options, rep parser.Reporter) []replace.TextReplacement {
	original := string(file.Content)
	root := parser.ParseFile(file, parser.Options{Reporter: rep})
	secs := section.Extract(fs, root)

	// секции не пересекаются, поэтому трансформеры независимы
	reps := make([]replace.TextReplacement, len(secs))
	used := make([]bool, len(secs))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range secs {
		i := i
		g.Go(func() error {
			reps[i], used[i] = transformSection(file, original, secs[i], opts)
			return nil
		})
	}
	_ = g.Wait() // трансформеры ошибок не возвращают

	// Вставки нулевой ширины должны стоять в списке раньше identity-дыр,
	// начинающихся с того же смещения: стабильная сортировка merge сохранит
	// этот порядок.
	out := make([]replace.TextReplacement, 0, len(secs)+4)
	for i := range secs {
		if used[i] {
			out = append(out, reps[i])
		}
	}
	for _, gap := range replace.ComputeSourceSections(original, out) {
		sp := gap.Span
		sp.File = file.ID
		out = append(out, replace.NewUnresolved(sp))
	}

	out = RefineOperators(original, out, opts)

	final := out[:0]
	for _, rep := range out {
		if !rep.NoOp(original) {
			final = append(final, rep)
		}
	}
	return final
}

// RefineOperators rescans every non-final replacement with the spacing
// engine. Literal text is rewritten in place; identity replacements resolve
// to literal text only when the rescan actually changed something, otherwise
// they stay identity and are dropped later as no-ops. Identity spans carry
// the byte preceding them into the rescan: дыра, начинающаяся посреди
// строки, не должна вести себя как начало строки.
func RefineOperators(original string, reps []replace.TextReplacement, opts *options.Options) []replace.TextReplacement {
	out := make([]replace.TextReplacement, 0, len(reps))
	for _, rep := range reps {
		if rep.Final {
			out = append(out, rep)
			continue
		}
		if text, ok := rep.Text(); ok {
			out = append(out, replace.NewLiteral(rep.Span, rewrite.Rewrite(text, opts)))
			continue
		}
		var prev byte
		if rep.Span.Start > 0 {
			prev = original[rep.Span.Start-1]
		}
		slice := original[rep.Span.Start:rep.Span.End]
		if text := rewrite.RewriteFrom(prev, slice, opts); text != slice {
			rep = rep.Resolve(text)
		}
		out = append(out, rep)
	}
	return out
}

// RefineCommas is the comma-only variant of RefineOperators: every other
// operator class is forced to NoChange and trailing-whitespace trimming is
// suppressed, so the pass can run standalone without dragging in the rest of
// the spacing configuration.
func RefineCommas(original string, reps []replace.TextReplacement, opts *options.Options) []replace.TextReplacement {
	commaOnly := *opts
	commaOnly.Spacing = options.SpacingTable{}
	commaOnly.Spacing.Set(options.ClassComma, opts.Spacing.Get(options.ClassComma))
	commaOnly.TrimTrailingWhitespace = false
	return RefineOperators(original, reps, &commaOnly)
}

// FormatText runs the pipeline over standalone text (stdin, tests) and
// merges the result. The replacement list is returned alongside so callers
// can tell "already formatted" from "rewritten".
func FormatText(name, src string, opts *options.Options) (string, []replace.TextReplacement) {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, []byte(src))
	file := fs.Get(id)
	reps := ProduceReplacements(fs, file, opts)
	return replace.Merge(src, reps), reps
}
