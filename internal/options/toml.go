package options

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ConfigFileName is the conventional options file name.
const ConfigFileName = "pasfmt.toml"

// tomlConfig mirrors the recognized file keys. Every field is optional:
// loading starts from Default() and overrides only what the file defines.
type tomlConfig struct {
	Indentation            string      `toml:"indentation"`
	LineEnding             string      `toml:"line_ending"`
	TrimTrailingWhitespace bool        `toml:"trim_trailing_whitespace"`
	ColonNumericException  bool        `toml:"colon_numeric_exception"`
	Spacing                tomlSpacing `toml:"spacing"`
	Uses                   tomlUses    `toml:"uses"`
}

type tomlSpacing struct {
	Comma          string `toml:"comma"`
	SemiColon      string `toml:"semi_colon"`
	Colon          string `toml:"colon"`
	Relational     string `toml:"relational"`
	CompoundAssign string `toml:"compound_assign"`
	Arithmetic     string `toml:"arithmetic"`
	Assignment     string `toml:"assignment"`
}

type tomlUses struct {
	Style             string   `toml:"style"`
	NamespacePriority []string `toml:"namespace_priority"`
	UnitAliases       []string `toml:"unit_aliases"`
}

// Find walks upward from startDir until a pasfmt.toml is found or the
// filesystem root is reached.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load reads one options file on top of the defaults. Unknown or malformed
// fields fall back to their default per field; only an unreadable file or
// broken TOML syntax is an error, and even then the defaults are returned so
// the caller can keep going.
func Load(path string) (Options, error) {
	opts := Default()

	var cfg tomlConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return opts, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	if meta.IsDefined("indentation") {
		opts.Indentation = cfg.Indentation
	}
	if meta.IsDefined("line_ending") {
		if le, ok := decodeLineEnding(cfg.LineEnding); ok {
			opts.LineEnding = le
		}
	}
	if meta.IsDefined("trim_trailing_whitespace") {
		opts.TrimTrailingWhitespace = cfg.TrimTrailingWhitespace
	}
	if meta.IsDefined("colon_numeric_exception") {
		opts.ColonNumericException = cfg.ColonNumericException
	}

	spacingKeys := []struct {
		key   string
		class OperatorClass
		value string
	}{
		{"comma", ClassComma, cfg.Spacing.Comma},
		{"semi_colon", ClassSemicolon, cfg.Spacing.SemiColon},
		{"colon", ClassColon, cfg.Spacing.Colon},
		{"relational", ClassRelational, cfg.Spacing.Relational},
		{"compound_assign", ClassCompoundAssign, cfg.Spacing.CompoundAssign},
		{"arithmetic", ClassArithmetic, cfg.Spacing.Arithmetic},
		{"assignment", ClassAssignment, cfg.Spacing.Assignment},
	}
	for _, entry := range spacingKeys {
		if !meta.IsDefined("spacing", entry.key) {
			continue
		}
		if op, parseErr := ParseSpaceOperation(entry.value); parseErr == nil {
			opts.Spacing.Set(entry.class, op)
		}
	}

	if meta.IsDefined("uses", "style") {
		if style, parseErr := ParseUsesStyle(cfg.Uses.Style); parseErr == nil {
			opts.Uses.Style = style
		}
	}
	if meta.IsDefined("uses", "namespace_priority") {
		opts.Uses.NamespacePriority = cfg.Uses.NamespacePriority
	}
	if meta.IsDefined("uses", "unit_aliases") {
		opts.Uses.UnitAliases = cfg.Uses.UnitAliases
	}

	return opts, nil
}

// LoadForFile discovers and loads the options governing the given source
// file. Without a config file the defaults apply.
func LoadForFile(path string) (Options, error) {
	cfgPath, found, err := Find(filepath.Dir(path))
	if err != nil || !found {
		return Default(), err
	}
	return Load(cfgPath)
}

func decodeLineEnding(s string) (string, bool) {
	switch strings.ToLower(s) {
	case "lf":
		return "\n", true
	case "crlf":
		return "\r\n", true
	default:
		return "", false
	}
}

func encodeLineEnding(le string) string {
	if le == "\r\n" {
		return "crlf"
	}
	return "lf"
}

// Save writes the options as a commented pasfmt.toml (used by 'pasfmt init').
func Save(path string, opts Options) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# pasfmt options; every key is optional.\n\n")
	fmt.Fprintf(&b, "indentation = %q\n", opts.Indentation)
	fmt.Fprintf(&b, "line_ending = %q # lf|crlf\n", encodeLineEnding(opts.LineEnding))
	fmt.Fprintf(&b, "trim_trailing_whitespace = %v\n", opts.TrimTrailingWhitespace)
	fmt.Fprintf(&b, "colon_numeric_exception = %v # keep 12:34:56 untouched\n", opts.ColonNumericException)

	fmt.Fprintf(&b, "\n[spacing] # nochange|before|after|beforeandafter\n")
	fmt.Fprintf(&b, "comma = %q\n", opts.Spacing.Get(ClassComma).String())
	fmt.Fprintf(&b, "semi_colon = %q\n", opts.Spacing.Get(ClassSemicolon).String())
	fmt.Fprintf(&b, "colon = %q\n", opts.Spacing.Get(ClassColon).String())
	fmt.Fprintf(&b, "relational = %q\n", opts.Spacing.Get(ClassRelational).String())
	fmt.Fprintf(&b, "compound_assign = %q\n", opts.Spacing.Get(ClassCompoundAssign).String())
	fmt.Fprintf(&b, "arithmetic = %q\n", opts.Spacing.Get(ClassArithmetic).String())
	fmt.Fprintf(&b, "assignment = %q\n", opts.Spacing.Get(ClassAssignment).String())

	fmt.Fprintf(&b, "\n[uses]\n")
	fmt.Fprintf(&b, "style = %q # commaAtTheEnd|commaAtTheBeginning\n", opts.Uses.Style.String())
	fmt.Fprintf(&b, "namespace_priority = %s\n", tomlStringArray(opts.Uses.NamespacePriority))
	fmt.Fprintf(&b, "unit_aliases = %s # \"Prefix:Name\" rules\n", tomlStringArray(opts.Uses.UnitAliases))

	return os.WriteFile(path, []byte(b.String()), 0o644)
}

func tomlStringArray(values []string) string {
	if len(values) == 0 {
		return "[]"
	}
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
