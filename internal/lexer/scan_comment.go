package lexer

import (
	"pasfmt/internal/token"
)

// scanLineComment: '//' до конца строки (перевод строки не входит в токен).
func (lx *Lexer) scanLineComment() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '/'
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\n' || b == '\r' {
			break
		}
		lx.cursor.Bump()
	}
	return lx.tokenFrom(start, token.LineComment)
}

// scanBraceCommentOrDirective: '{ ... }', а '{$ ... }' — директива препроцессора.
func (lx *Lexer) scanBraceCommentOrDirective() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '{'
	kind := token.BraceComment
	if lx.cursor.Peek() == '$' {
		kind = token.Preprocessor
	}
	for !lx.cursor.EOF() {
		if lx.cursor.Bump() == '}' {
			return lx.tokenFrom(start, kind)
		}
	}
	sp := lx.cursor.SpanFrom(start)
	lx.report("unterminatedComment", sp, "unterminated { comment")
	return lx.tokenFrom(start, kind)
}

// scanParenStarComment: '(* ... *)'.
func (lx *Lexer) scanParenStarComment() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '('
	lx.cursor.Bump() // '*'
	for !lx.cursor.EOF() {
		if lx.try2('*', ')') {
			return lx.tokenFrom(start, token.ParenStarComment)
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.report("unterminatedComment", sp, "unterminated (* comment")
	return lx.tokenFrom(start, token.ParenStarComment)
}
