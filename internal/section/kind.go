package section

// Kind classifies a recognized construct or one of its siblings. The set is
// closed: transformers dispatch on it and unknown constructs never become
// sections in the first place.
type Kind uint8

const (
	// KindNone is the zero value; it marks an absent element (e.g. no close).
	KindNone Kind = iota
	// KindUses is a 'uses' import clause.
	KindUses
	// KindUnit is a 'unit Name;' header.
	KindUnit
	// KindProgram is a 'program Name;' header.
	KindProgram
	// KindLibrary is a 'library Name;' header.
	KindLibrary
	// KindInterface is a bare 'interface' block marker.
	KindInterface
	// KindImplementation is a bare 'implementation' block marker.
	KindImplementation
	// KindInitialization is a bare 'initialization' block marker.
	KindInitialization
	// KindFinalization is a bare 'finalization' block marker.
	KindFinalization
	// KindModule is an identifier naming an imported unit (dotted names are
	// one element).
	KindModule
	// KindComment is any comment style.
	KindComment
	// KindPreprocessor is a '{$...}' directive.
	KindPreprocessor
	// KindSemicolon is a ';' separator or terminator.
	KindSemicolon
	// KindIdentifier is a plain identifier inside a routine header.
	KindIdentifier
	// KindProcedureDecl is a 'procedure' header section.
	KindProcedureDecl
	// KindFunctionDecl is a 'function' header section.
	KindFunctionDecl
	// KindBlockEnd is an 'end'-class token closing a section implicitly.
	KindBlockEnd
)

var kindNames = map[Kind]string{
	KindNone:           "none",
	KindUses:           "uses",
	KindUnit:           "unit",
	KindProgram:        "program",
	KindLibrary:        "library",
	KindInterface:      "interface",
	KindImplementation: "implementation",
	KindInitialization: "initialization",
	KindFinalization:   "finalization",
	KindModule:         "module",
	KindComment:        "comment",
	KindPreprocessor:   "preprocessor",
	KindSemicolon:      "semicolon",
	KindIdentifier:     "identifier",
	KindProcedureDecl:  "procedureDecl",
	KindFunctionDecl:   "functionDecl",
	KindBlockEnd:       "blockEnd",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsHeader reports whether the kind is a 'keyword Name;' header section.
func (k Kind) IsHeader() bool {
	return k == KindUnit || k == KindProgram || k == KindLibrary
}

// IsBareKeyword reports whether the kind is a standalone block marker.
func (k Kind) IsBareKeyword() bool {
	switch k {
	case KindInterface, KindImplementation, KindInitialization, KindFinalization:
		return true
	default:
		return false
	}
}

// IsRoutine reports whether the kind is a procedure or function header.
func (k Kind) IsRoutine() bool {
	return k == KindProcedureDecl || k == KindFunctionDecl
}
