package format

import (
	"sort"
	"strings"

	"pasfmt/internal/options"
	"pasfmt/internal/replace"
	"pasfmt/internal/section"
	"pasfmt/internal/source"
)

// TransformUses rewrites a uses clause as one module per line, renamed by the
// alias rules and sorted with namespace priority. Sections the extractor
// could not reduce to "modules plus terminating semicolon" are left alone, as
// is a clause terminated by an 'end' token: replacing up to the terminator
// would swallow the block end.
func TransformUses(file *source.File, original string, sec section.CodeSection, opts *options.Options) (replace.TextReplacement, bool) {
	if sec.Kind != section.KindUses || sec.Close.Kind != section.KindSemicolon {
		return replace.TextReplacement{}, false
	}
	for i, sib := range sec.Siblings {
		switch sib.Kind {
		case section.KindModule:
		case section.KindSemicolon:
			if i != len(sec.Siblings)-1 {
				return replace.TextReplacement{}, false
			}
		default:
			return replace.TextReplacement{}, false
		}
	}

	modules := sec.Modules()
	if len(modules) == 0 {
		return replace.TextReplacement{}, false
	}

	// переименование до сортировки, дубликаты сохраняются
	names := make([]string, 0, len(modules))
	for _, m := range modules {
		names = append(names, opts.Uses.ResolveAlias(original[m.Span.Start:m.Span.End]))
	}
	sortModules(names, opts.Uses.NamespacePriority)

	return finalize(file, original, sec.Span(), renderUses(names, opts), opts)
}

// sortModules orders unit names case-insensitively, with units from priority
// namespaces first in priority order. The sort is stable so duplicates keep
// their relative source order.
func sortModules(names []string, priority []string) {
	rank := func(name string) int {
		// приоритет только для "Ns.Unit"; голое имя, совпадающее с
		// пространством имён, не приоритетно
		ns, _, found := strings.Cut(name, ".")
		if found {
			for i, p := range priority {
				if strings.EqualFold(ns, p) {
					return i
				}
			}
		}
		return len(priority)
	}
	sort.SliceStable(names, func(i, j int) bool {
		ri, rj := rank(names[i]), rank(names[j])
		if ri != rj {
			return ri < rj
		}
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
}

func renderUses(names []string, opts *options.Options) string {
	var b strings.Builder
	nl, ind := opts.LineEnding, opts.Indentation

	b.WriteString("uses")
	if opts.Uses.Style == options.CommaAtTheBeginning {
		for i, name := range names {
			b.WriteString(nl)
			b.WriteString(ind)
			if i == 0 {
				// первая строка выравнивается под ", " продолжений
				b.WriteString("  ")
			} else {
				b.WriteString(", ")
			}
			b.WriteString(name)
		}
		b.WriteString(nl)
		b.WriteString(ind)
		b.WriteString(";")
		return b.String()
	}

	for i, name := range names {
		b.WriteString(nl)
		b.WriteString(ind)
		b.WriteString(name)
		if i == len(names)-1 {
			b.WriteString(";")
		} else {
			b.WriteString(",")
		}
	}
	return b.String()
}
