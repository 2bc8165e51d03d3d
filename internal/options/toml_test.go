package options_test

import (
	"os"
	"path/filepath"
	"testing"

	"pasfmt/internal/options"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, options.ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "[spacing]\ncomma = \"beforeandafter\"\n")

	opts, err := options.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := opts.Spacing.Get(options.ClassComma); got != options.BeforeAndAfter {
		t.Fatalf("comma policy: got %s", got)
	}

	def := options.Default()
	if opts.Indentation != def.Indentation {
		t.Fatalf("indentation must stay default, got %q", opts.Indentation)
	}
	if opts.Spacing.Get(options.ClassAssignment) != def.Spacing.Get(options.ClassAssignment) {
		t.Fatal("assignment policy must stay default")
	}
}

func TestLoadFullConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
indentation = "    "
line_ending = "crlf"
trim_trailing_whitespace = false
colon_numeric_exception = false

[spacing]
comma = "after"
semi_colon = "nochange"

[uses]
style = "commaAtTheBeginning"
namespace_priority = ["System", "Vcl"]
unit_aliases = ["System:Classes"]
`)

	opts, err := options.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if opts.Indentation != "    " {
		t.Fatalf("indentation: %q", opts.Indentation)
	}
	if opts.LineEnding != "\r\n" {
		t.Fatalf("line ending: %q", opts.LineEnding)
	}
	if opts.TrimTrailingWhitespace || opts.ColonNumericException {
		t.Fatal("boolean overrides not applied")
	}
	if opts.Uses.Style != options.CommaAtTheBeginning {
		t.Fatalf("uses style: %s", opts.Uses.Style)
	}
	if len(opts.Uses.NamespacePriority) != 2 || opts.Uses.NamespacePriority[0] != "System" {
		t.Fatalf("namespace priority: %v", opts.Uses.NamespacePriority)
	}
}

func TestLoadMalformedValueFallsBack(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "[spacing]\ncomma = \"sideways\"\n")

	opts, err := options.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	def := options.Default()
	if got := opts.Spacing.Get(options.ClassComma); got != def.Spacing.Get(options.ClassComma) {
		t.Fatalf("unknown value must keep default, got %s", got)
	}
}

func TestLoadBrokenTOMLReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "not [valid toml")

	opts, err := options.Load(path)
	if err == nil {
		t.Fatal("broken TOML must report an error")
	}
	def := options.Default()
	if opts.Indentation != def.Indentation || opts.Uses.Style != def.Uses.Style {
		t.Fatal("broken TOML must still return defaults")
	}
}

func TestFindWalksUpward(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	want := writeConfig(t, root, "")

	got, found, err := options.Find(nested)
	if err != nil {
		t.Fatal(err)
	}
	if !found || got != want {
		t.Fatalf("find: %q, %v", got, found)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, options.ConfigFileName)

	opts := options.Default()
	opts.LineEnding = "\r\n"
	opts.Uses.Style = options.CommaAtTheBeginning
	opts.Uses.NamespacePriority = []string{"System"}
	opts.Uses.UnitAliases = []string{"System:Classes"}
	opts.Spacing.Set(options.ClassColon, options.After)

	if err := options.Save(path, opts); err != nil {
		t.Fatal(err)
	}
	loaded, err := options.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.LineEnding != opts.LineEnding {
		t.Fatalf("line ending: %q", loaded.LineEnding)
	}
	if loaded.Uses.Style != opts.Uses.Style {
		t.Fatalf("uses style: %s", loaded.Uses.Style)
	}
	if loaded.Spacing.Get(options.ClassColon) != options.After {
		t.Fatalf("colon policy: %s", loaded.Spacing.Get(options.ClassColon))
	}
}

func TestResolveAlias(t *testing.T) {
	u := options.UsesOptions{UnitAliases: []string{"System:Classes", "Vcl:Forms"}}

	if got := u.ResolveAlias("Classes"); got != "System.Classes" {
		t.Fatalf("alias: %q", got)
	}
	if got := u.ResolveAlias("classes"); got != "System.Classes" {
		t.Fatalf("case-insensitive alias must use the rule spelling: %q", got)
	}
	if got := u.ResolveAlias("SysUtils"); got != "SysUtils" {
		t.Fatalf("unmatched name must pass through: %q", got)
	}
}
