package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// StringLit represents a quoted string literal (doubled-quote escapes).
	StringLit
	// NumberLit represents an integer or real literal.
	NumberLit

	// LineComment represents a '//' comment up to the line break.
	LineComment
	// BraceComment represents a '{ ... }' comment.
	BraceComment
	// ParenStarComment represents a '(* ... *)' comment.
	ParenStarComment
	// Preprocessor represents a '{$...}' compiler directive.
	Preprocessor

	// KwUses represents the 'uses' keyword.
	KwUses // uses
	// KwUnit represents the 'unit' keyword.
	KwUnit // unit
	// KwProgram represents the 'program' keyword.
	KwProgram // program
	// KwLibrary represents the 'library' keyword.
	KwLibrary // library
	// KwInterface represents the 'interface' keyword.
	KwInterface // interface
	// KwImplementation represents the 'implementation' keyword.
	KwImplementation // implementation
	// KwInitialization represents the 'initialization' keyword.
	KwInitialization // initialization
	// KwFinalization represents the 'finalization' keyword.
	KwFinalization // finalization
	// KwProcedure represents the 'procedure' keyword.
	KwProcedure // procedure
	// KwFunction represents the 'function' keyword.
	KwFunction // function
	// KwBegin represents the 'begin' keyword.
	KwBegin // begin
	// KwEnd represents the 'end' keyword.
	KwEnd // end
	// KwInherited represents the 'inherited' keyword.
	KwInherited // inherited

	// Semicolon represents ';'.
	Semicolon // ;
	// Comma represents ','.
	Comma // ,
	// Colon represents ':'.
	Colon // :
	// Dot represents '.'.
	Dot // .
	// LParen represents '('.
	LParen // (
	// RParen represents ')'.
	RParen // )
	// LBracket represents '['.
	LBracket // [
	// RBracket represents ']'.
	RBracket // ]

	// Assign represents ':='.
	Assign // :=
	// PlusAssign represents '+='.
	PlusAssign // +=
	// MinusAssign represents '-='.
	MinusAssign // -=
	// StarAssign represents '*='.
	StarAssign // *=
	// SlashAssign represents '/='.
	SlashAssign // /=
	// Plus represents '+'.
	Plus // +
	// Minus represents '-'.
	Minus // -
	// Star represents '*'.
	Star // *
	// Slash represents '/'.
	Slash // /
	// Eq represents '='.
	Eq // =
	// Lt represents '<'.
	Lt // <
	// Gt represents '>'.
	Gt // >
	// LtEq represents '<='.
	LtEq // <=
	// GtEq represents '>='.
	GtEq // >=
	// NotEq represents '<>'.
	NotEq // <>
	// At represents '@'.
	At // @
	// Caret represents '^'.
	Caret // ^
)

var kindNames = map[Kind]string{
	Invalid:          "invalid",
	EOF:              "eof",
	Ident:            "ident",
	StringLit:        "string",
	NumberLit:        "number",
	LineComment:      "lineComment",
	BraceComment:     "braceComment",
	ParenStarComment: "parenStarComment",
	Preprocessor:     "preprocessor",
	KwUses:           "uses",
	KwUnit:           "unit",
	KwProgram:        "program",
	KwLibrary:        "library",
	KwInterface:      "interface",
	KwImplementation: "implementation",
	KwInitialization: "initialization",
	KwFinalization:   "finalization",
	KwProcedure:      "procedure",
	KwFunction:       "function",
	KwBegin:          "begin",
	KwEnd:            "end",
	KwInherited:      "inherited",
	Semicolon:        "semicolon",
	Comma:            "comma",
	Colon:            "colon",
	Dot:              "dot",
	LParen:           "lparen",
	RParen:           "rparen",
	LBracket:         "lbracket",
	RBracket:         "rbracket",
	Assign:           "assign",
	PlusAssign:       "plusAssign",
	MinusAssign:      "minusAssign",
	StarAssign:       "starAssign",
	SlashAssign:      "slashAssign",
	Plus:             "plus",
	Minus:            "minus",
	Star:             "star",
	Slash:            "slash",
	Eq:               "eq",
	Lt:               "lt",
	Gt:               "gt",
	LtEq:             "ltEq",
	GtEq:             "gtEq",
	NotEq:            "notEq",
	At:               "at",
	Caret:            "caret",
}

// String returns a stable lowercase name used as the node kind tag.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsComment reports whether the token is any of the three comment styles.
func (k Kind) IsComment() bool {
	switch k {
	case LineComment, BraceComment, ParenStarComment:
		return true
	default:
		return false
	}
}

// IsSectionKeyword reports whether the token opens a recognized section.
func (k Kind) IsSectionKeyword() bool {
	switch k {
	case KwUses, KwUnit, KwProgram, KwLibrary, KwInterface, KwImplementation,
		KwInitialization, KwFinalization, KwProcedure, KwFunction:
		return true
	default:
		return false
	}
}
