package lexer

import (
	"pasfmt/internal/token"
)

func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	tok := lx.tokenFrom(start, token.Ident)
	if kind, ok := token.LookupKeyword(tok.Text); ok {
		tok.Kind = kind
	}
	return tok
}

// scanNumber разбирает целые, вещественные и шестнадцатеричные ($FF) литералы.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if lx.cursor.Eat('$') {
		for !lx.cursor.EOF() && isHex(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return lx.tokenFrom(start, token.NumberLit)
	}

	for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// дробная часть: '.' с цифрой после (но не '..')
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		lx.cursor.Bump()
		for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	// экспонента: 1e9, 1.5E-3
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		if _, b1, ok := lx.cursor.Peek2(); ok && (isDec(b1) || b1 == '+' || b1 == '-') {
			lx.cursor.Bump()
			lx.cursor.Bump()
			for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		}
	}

	return lx.tokenFrom(start, token.NumberLit)
}

// scanCharLiteral разбирает #13 и #$0D; соседние строковые части ('a'#13'b')
// остаются отдельными токенами — для секционирования этого достаточно.
func (lx *Lexer) scanCharLiteral() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '#'
	if lx.cursor.Eat('$') {
		for !lx.cursor.EOF() && isHex(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	} else {
		for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}
	return lx.tokenFrom(start, token.StringLit)
}
