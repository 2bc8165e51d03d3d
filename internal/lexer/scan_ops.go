package lexer

import (
	"pasfmt/internal/token"
)

// Жадность: сначала 2-символьные (:=, +=, -=, *=, /=, <=, >=, <>),
// затем 1-символьные.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		return lx.tokenFrom(start, k)
	}

	switch {
	case lx.try2(':', '='):
		return emit(token.Assign)
	case lx.try2('+', '='):
		return emit(token.PlusAssign)
	case lx.try2('-', '='):
		return emit(token.MinusAssign)
	case lx.try2('*', '='):
		return emit(token.StarAssign)
	case lx.try2('/', '='):
		return emit(token.SlashAssign)
	case lx.try2('<', '='):
		return emit(token.LtEq)
	case lx.try2('>', '='):
		return emit(token.GtEq)
	case lx.try2('<', '>'):
		return emit(token.NotEq)
	}

	// односимвольные
	ch := lx.cursor.Bump()
	switch ch {
	case ';':
		return emit(token.Semicolon)
	case ',':
		return emit(token.Comma)
	case ':':
		return emit(token.Colon)
	case '.':
		return emit(token.Dot)
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '[':
		return emit(token.LBracket)
	case ']':
		return emit(token.RBracket)
	case '+':
		return emit(token.Plus)
	case '-':
		return emit(token.Minus)
	case '*':
		return emit(token.Star)
	case '/':
		return emit(token.Slash)
	case '=':
		return emit(token.Eq)
	case '<':
		return emit(token.Lt)
	case '>':
		return emit(token.Gt)
	case '@':
		return emit(token.At)
	case '^':
		return emit(token.Caret)
	default:
		tok := emit(token.Invalid)
		lx.report("invalidChar", tok.Span, "unexpected character")
		return tok
	}
}
