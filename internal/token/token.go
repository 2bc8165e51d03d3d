package token

import (
	"pasfmt/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsComment reports whether the token is a comment of any style.
func (t Token) IsComment() bool { return t.Kind.IsComment() }

// IsTerminator reports whether the token closes a section (';' or 'end').
func (t Token) IsTerminator() bool {
	return t.Kind == Semicolon || t.Kind == KwEnd
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case Semicolon, Comma, Colon, Dot, LParen, RParen, LBracket, RBracket,
		Assign, PlusAssign, MinusAssign, StarAssign, SlashAssign,
		Plus, Minus, Star, Slash, Eq, Lt, Gt, LtEq, GtEq, NotEq, At, Caret:
		return true
	default:
		return false
	}
}
