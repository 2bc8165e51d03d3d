// Package parser groups the token stream into the section-level syntax tree
// the extractor walks. It is deliberately shallow: expressions and statement
// bodies stay flat token leaves, only recognized section constructs become
// clause nodes. Anything it cannot delimit is marked with the error flag and
// never rewritten downstream.
package parser

import (
	"pasfmt/internal/ast"
	"pasfmt/internal/lexer"
	"pasfmt/internal/source"
	"pasfmt/internal/token"
)

// Reporter получает сообщения о местах, которые парсер не смог разобрать.
type Reporter interface {
	Report(kind string, span source.Span, msg string)
}

type Options struct {
	Reporter Reporter // может быть nil
}

type parser struct {
	lx   *lexer.Lexer
	opts Options
	root *ast.BasicNode
}

// ParseFile builds the section tree for one file. It never fails: malformed
// regions become error-flagged nodes instead.
func ParseFile(file *source.File, opts Options) *ast.BasicNode {
	p := &parser{
		lx:   lexer.New(file, lexer.Options{Reporter: reporterAdapter{opts.Reporter}}),
		opts: opts,
		root: ast.NewNode(ast.KindFile, source.Span{File: file.ID}),
	}
	p.parse()
	return p.root
}

type reporterAdapter struct {
	r Reporter
}

func (a reporterAdapter) Report(kind string, span source.Span, msg string) {
	if a.r != nil {
		a.r.Report(kind, span, msg)
	}
}

func (p *parser) report(kind string, sp source.Span, msg string) {
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(kind, sp, msg)
	}
}

func (p *parser) parse() {
	var prev token.Token
	for {
		tok := p.lx.Next()
		if tok.Kind == token.EOF {
			return
		}

		// 'IFoo = interface' объявляет тип, а не секцию
		if tok.Kind == token.KwInterface && prev.Kind == token.Eq {
			p.root.AddChild(leaf(tok))
			prev = tok
			continue
		}
		prev = tok

		switch tok.Kind {
		case token.KwUses:
			p.parseClause(tok, false)

		case token.KwUnit, token.KwProgram, token.KwLibrary:
			p.parseClause(tok, false)

		case token.KwInterface, token.KwImplementation, token.KwInitialization, token.KwFinalization:
			// голое ключевое слово — клауза без сиблингов
			clause := ast.NewNode(ast.KindClause, source.Span{File: tok.Span.File})
			clause.AddChild(leaf(tok))
			p.root.AddChild(clause)

		case token.KwProcedure, token.KwFunction:
			p.parseClause(tok, true)

		case token.Invalid:
			bad := leaf(tok)
			bad.MarkError()
			p.root.AddChild(bad)

		default:
			p.root.AddChild(leaf(tok))
		}
	}
}

// parseClause collects tokens after the keyword up to and including the
// terminator (';', or 'end' closing the block the clause lives in). Hitting
// another section keyword or EOF first means the construct was not understood;
// the clause is error-flagged so the extractor skips it.
func (p *parser) parseClause(kw token.Token, allowNested bool) {
	clause := ast.NewNode(ast.KindClause, source.Span{File: kw.Span.File})
	clause.AddChild(leaf(kw))
	p.root.AddChild(clause)

	for {
		next := p.lx.Peek()
		if next.Kind == token.EOF {
			p.report("unterminatedSection", clause.Span(), "section has no terminator")
			clause.MarkError()
			return
		}
		if next.Kind.IsSectionKeyword() && !allowNested {
			// 'uses A unit B;' — конструкцию не поняли, не переписываем
			p.report("unexpectedKeyword", next.Span, "section keyword before terminator")
			clause.MarkError()
			return
		}

		tok := p.lx.Next()
		child := leaf(tok)
		if tok.Kind == token.Invalid {
			child.MarkError()
		}
		clause.AddChild(child)

		if tok.IsTerminator() {
			return
		}
	}
}

func leaf(tok token.Token) *ast.BasicNode {
	return ast.NewNode(tok.Kind.String(), tok.Span)
}
