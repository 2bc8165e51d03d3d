package section

import (
	"pasfmt/internal/ast"
	"pasfmt/internal/source"
)

var keywordKinds = map[string]Kind{
	"uses":           KindUses,
	"unit":           KindUnit,
	"program":        KindProgram,
	"library":        KindLibrary,
	"interface":      KindInterface,
	"implementation": KindImplementation,
	"initialization": KindInitialization,
	"finalization":   KindFinalization,
	"procedure":      KindProcedureDecl,
	"function":       KindFunctionDecl,
}

// Extract walks the tree depth-first and builds one CodeSection per
// recognized keyword node. A clause's subtree is fully consumed by the first
// keyword inside it: the walk does not descend past it, and later keywords in
// the same clause (e.g. a 'function' parameter type in a routine header)
// never claim a section of their own. Sections the parser could not
// confidently understand are skipped, never guessed at.
func Extract(fs *source.FileSet, root ast.Node) []CodeSection {
	out := make([]CodeSection, 0)
	walk(fs, root, &out)
	return out
}

func walk(fs *source.FileSet, n ast.Node, out *[]CodeSection) {
	for _, child := range n.Children() {
		if child.Kind() == ast.KindClause {
			for _, c := range child.Children() {
				kind, ok := keywordKinds[c.Kind()]
				if !ok {
					continue
				}
				if sec, built := build(fs, kind, c); built {
					*out = append(*out, sec)
				}
				break // клауза потреблена целиком
			}
			continue
		}
		walk(fs, child, out)
	}
}

// build assembles a CodeSection for keyword node kw. The single most
// important rule lives here: if the keyword, its parent, or any sibling
// carries a parse-error marker, the whole section is rejected — text the
// parser could not confidently understand is never rewritten.
func build(fs *source.FileSet, kind Kind, kw ast.Node) (CodeSection, bool) {
	parent := kw.Parent()
	if parent == nil || kw.HasError() || parent.HasError() {
		return CodeSection{}, false
	}

	sec := CodeSection{
		Kind:    kind,
		Keyword: element(fs, kind, kw.Span()),
	}

	siblings := make([]ast.Node, 0)
	for _, c := range parent.Children() {
		if c == kw {
			continue
		}
		if c.HasError() {
			return CodeSection{}, false
		}
		siblings = append(siblings, c)
	}

	if kind.IsBareKeyword() {
		// маркер блока — сиблингов быть не должно
		if len(siblings) != 0 {
			return CodeSection{}, false
		}
		return sec, true
	}

	identKind := KindModule
	if kind.IsRoutine() {
		identKind = KindIdentifier
	}

	for i := 0; i < len(siblings); i++ {
		node := siblings[i]
		switch node.Kind() {
		case "ident":
			sp := node.Span()
			// точечные имена (System.SysUtils, TFoo.Bar) — один элемент
			for i+2 < len(siblings) &&
				siblings[i+1].Kind() == "dot" &&
				siblings[i+2].Kind() == "ident" {
				sp = sp.Cover(siblings[i+2].Span())
				i += 2
			}
			sec.Siblings = append(sec.Siblings, element(fs, identKind, sp))

		case "comma":
			// разделители не сохраняются

		case "semicolon":
			el := element(fs, KindSemicolon, node.Span())
			sec.Siblings = append(sec.Siblings, el)
			sec.Close = el

		case "end":
			sec.Close = element(fs, KindBlockEnd, node.Span())

		case "lineComment", "braceComment", "parenStarComment":
			// форматирование не вправе рисковать переякорением комментария
			return CodeSection{}, false

		case "preprocessor":
			return CodeSection{}, false

		default:
			if kind.IsRoutine() {
				// пунктуация заголовка (скобки, двоеточия, типы) не нужна
				continue
			}
			// uses/заголовки: незнакомый сиблинг — конструкцию не поняли
			return CodeSection{}, false
		}
	}

	if !sec.Close.Valid() {
		return CodeSection{}, false
	}
	return sec, true
}

func element(fs *source.FileSet, kind Kind, sp source.Span) Element {
	start, end := fs.Resolve(sp)
	return Element{Kind: kind, Span: sp, Start: start, End: end}
}
