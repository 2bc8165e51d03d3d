// Package options holds the immutable formatting configuration consumed by
// every transformer and by the rewrite scanner.
//
// Назначение: значения по умолчанию, таблица пробельных политик по классам
// операторов, настройки uses-клаузы, загрузка/сохранение pasfmt.toml.
// Не делает: никакого форматирования.
// Зависимости: BurntSushi/toml.
package options

import (
	"fmt"
	"strings"
)

// SpaceOperation is the configured behavior for one operator class.
type SpaceOperation uint8

const (
	// NoChange leaves existing adjacent whitespace untouched.
	NoChange SpaceOperation = iota
	// Before ensures exactly one space before the operator.
	Before
	// After ensures exactly one space after the operator.
	After
	// BeforeAndAfter ensures exactly one space on both sides.
	BeforeAndAfter
)

var spaceOperationNames = map[SpaceOperation]string{
	NoChange:       "nochange",
	Before:         "before",
	After:          "after",
	BeforeAndAfter: "beforeandafter",
}

func (op SpaceOperation) String() string {
	if name, ok := spaceOperationNames[op]; ok {
		return name
	}
	return "unknown"
}

// ParseSpaceOperation parses the TOML spelling of a SpaceOperation.
func ParseSpaceOperation(s string) (SpaceOperation, error) {
	for op, name := range spaceOperationNames {
		if strings.EqualFold(s, name) {
			return op, nil
		}
	}
	return NoChange, fmt.Errorf("options: unknown space operation %q", s)
}

// Insertions reports which sides of the operator receive a space.
func (op SpaceOperation) Insertions() (before, after bool) {
	return op == Before || op == BeforeAndAfter,
		op == After || op == BeforeAndAfter
}

// OperatorClass keys the spacing table. The operator set is closed and known
// at design time, so the table is a fixed-size array, not a map.
type OperatorClass uint8

const (
	// ClassComma covers ','.
	ClassComma OperatorClass = iota
	// ClassSemicolon covers ';'.
	ClassSemicolon
	// ClassColon covers a lone ':' (see ColonNumericException).
	ClassColon
	// ClassRelational covers '=', '<', '>', '<=', '>=', '<>'.
	ClassRelational
	// ClassCompoundAssign covers '+=', '-=', '*=', '/='.
	ClassCompoundAssign
	// ClassArithmetic covers lone '+', '-', '*', '/'.
	ClassArithmetic
	// ClassAssignment covers ':='.
	ClassAssignment

	classCount
)

// SpacingTable maps every operator class to its configured behavior.
type SpacingTable [classCount]SpaceOperation

// Get returns the policy for the class.
func (t *SpacingTable) Get(class OperatorClass) SpaceOperation {
	return t[class]
}

// Set overrides the policy for the class.
func (t *SpacingTable) Set(class OperatorClass, op SpaceOperation) {
	t[class] = op
}

// UsesStyle selects the rendered layout of a uses clause.
type UsesStyle uint8

const (
	// CommaAtTheEnd renders one module per line with trailing commas.
	CommaAtTheEnd UsesStyle = iota
	// CommaAtTheBeginning renders leading ", " on continuation lines.
	CommaAtTheBeginning
)

func (s UsesStyle) String() string {
	if s == CommaAtTheBeginning {
		return "commaAtTheBeginning"
	}
	return "commaAtTheEnd"
}

// ParseUsesStyle parses the TOML spelling of a UsesStyle.
func ParseUsesStyle(s string) (UsesStyle, error) {
	switch {
	case strings.EqualFold(s, "commaAtTheEnd"):
		return CommaAtTheEnd, nil
	case strings.EqualFold(s, "commaAtTheBeginning"):
		return CommaAtTheBeginning, nil
	default:
		return CommaAtTheEnd, fmt.Errorf("options: unknown uses style %q", s)
	}
}

// UsesOptions configures the uses-clause transformer.
type UsesOptions struct {
	Style UsesStyle
	// NamespacePriority lists namespaces whose units sort before the rest.
	NamespacePriority []string
	// UnitAliases holds "Prefix:Name" rules rewriting a bare Name to
	// Prefix.Name before sorting.
	UnitAliases []string
}

// ResolveAlias applies the first matching rename rule to a bare unit name.
// Pascal unit names compare case-insensitively.
func (u UsesOptions) ResolveAlias(name string) string {
	for _, rule := range u.UnitAliases {
		prefix, bare, ok := strings.Cut(rule, ":")
		if !ok {
			continue // малформленное правило игнорируем
		}
		if strings.EqualFold(name, bare) {
			return prefix + "." + bare
		}
	}
	return name
}

// Options is the full immutable configuration for one formatting run.
type Options struct {
	Indentation            string
	LineEnding             string
	TrimTrailingWhitespace bool
	ColonNumericException  bool
	Spacing                SpacingTable
	Uses                   UsesOptions
}

// Default returns the configuration used when no pasfmt.toml is found.
func Default() Options {
	var spacing SpacingTable
	spacing.Set(ClassComma, After)
	spacing.Set(ClassSemicolon, After)
	spacing.Set(ClassColon, NoChange)
	spacing.Set(ClassRelational, NoChange)
	spacing.Set(ClassCompoundAssign, BeforeAndAfter)
	spacing.Set(ClassArithmetic, NoChange)
	spacing.Set(ClassAssignment, BeforeAndAfter)

	return Options{
		Indentation:            "  ",
		LineEnding:             "\n",
		TrimTrailingWhitespace: true,
		ColonNumericException:  true,
		Spacing:                spacing,
		Uses: UsesOptions{
			Style: CommaAtTheEnd,
		},
	}
}
