package lexer

import (
	"pasfmt/internal/token"
)

// scanString разбирает паскалевский строковый литерал: '...'.
// Удвоенная кавычка ('') внутри литерала — экранированная кавычка.
// Перевод строки внутри литерала закрывает его принудительно: это выбор
// живучести, а не синтаксическая ошибка (см. Reporter).
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '\''
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\'' {
			lx.cursor.Bump()
			if lx.cursor.Peek() == '\'' {
				// '' — экранированная кавычка, литерал продолжается
				lx.cursor.Bump()
				continue
			}
			return lx.tokenFrom(start, token.StringLit)
		}
		if b == '\n' || b == '\r' {
			sp := lx.cursor.SpanFrom(start)
			lx.report("unterminatedString", sp, "newline in string literal")
			return lx.tokenFrom(start, token.StringLit)
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.report("unterminatedString", sp, "unterminated string literal")
	return lx.tokenFrom(start, token.StringLit)
}
