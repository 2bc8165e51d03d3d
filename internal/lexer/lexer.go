package lexer

import (
	"pasfmt/internal/source"
	"pasfmt/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1 элементный буфер для токена
}

func New(file *source.File, opts Options) *Lexer {
	lx := &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
	// BOM остаётся в Content ради стабильных оффсетов; лексеру он не нужен.
	if source.HasUTF8BOM(file.Content) {
		lx.cursor.Off = 3
	}
	return lx
}

// Next возвращает следующий значимый токен. Пробелы и переводы строк
// пропускаются; комментарии и директивы препроцессора — полноценные токены.
// После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipWhitespace()

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	ch := lx.cursor.Peek()

	switch {
	case isIdentStartByte(ch):
		return lx.scanIdentOrKeyword()

	case isDec(ch):
		return lx.scanNumber()

	case ch == '$':
		return lx.scanNumber() // hex literal $FF

	case ch == '\'':
		return lx.scanString()

	case ch == '#':
		return lx.scanCharLiteral()

	case ch == '{':
		return lx.scanBraceCommentOrDirective()

	case ch == '(':
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '(' && b1 == '*' {
			return lx.scanParenStarComment()
		}
		return lx.scanOperatorOrPunct()

	case ch == '/':
		if _, b1, ok := lx.cursor.Peek2(); ok && b1 == '/' {
			return lx.scanLineComment()
		}
		return lx.scanOperatorOrPunct()

	default:
		return lx.scanOperatorOrPunct()
	}
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

func (lx *Lexer) skipWhitespace() {
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\n', '\r':
			lx.cursor.Bump()
		default:
			return
		}
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) tokenFrom(start Mark, kind token.Kind) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}
