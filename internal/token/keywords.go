package token

import "strings"

var keywords = map[string]Kind{
	"uses":           KwUses,
	"unit":           KwUnit,
	"program":        KwProgram,
	"library":        KwLibrary,
	"interface":      KwInterface,
	"implementation": KwImplementation,
	"initialization": KwInitialization,
	"finalization":   KwFinalization,
	"procedure":      KwProcedure,
	"function":       KwFunction,
	"begin":          KwBegin,
	"end":            KwEnd,
	"inherited":      KwInherited,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Pascal регистронезависим: Uses, USES и uses — одно и то же слово.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[strings.ToLower(ident)]
	return k, ok
}
