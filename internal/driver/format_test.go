package driver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pasfmt/internal/diag"
	"pasfmt/internal/options"
	"pasfmt/internal/source"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFormatPathsUpdate(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.pas", "USES B, A;\n")

	results, err := FormatPaths(context.Background(), []string{dir}, FormatOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || !results[0].Changed || results[0].Err != nil {
		t.Fatalf("unexpected results: %+v", results)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "uses\n  A,\n  B;\n" {
		t.Fatalf("file content: %q", got)
	}
}

func TestFormatPathsCheckDoesNotWrite(t *testing.T) {
	dir := t.TempDir()
	src := "USES B, A;\n"
	path := writeFile(t, dir, "a.pas", src)

	results, err := FormatPaths(context.Background(), []string{path}, FormatOptions{Check: true})
	if err != nil {
		t.Fatal(err)
	}
	if !results[0].Changed {
		t.Fatalf("check must report a change")
	}
	got, _ := os.ReadFile(path)
	if string(got) != src {
		t.Fatalf("check must not modify the file: %q", got)
	}
}

func TestFormatPathsStdout(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.pas", "unit Foo;\n")

	results, err := FormatPaths(context.Background(), []string{path}, FormatOptions{Stdout: true})
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Changed {
		t.Fatalf("already formatted file reported as changed")
	}
	if string(results[0].Formatted) != "unit Foo;\n" {
		t.Fatalf("formatted: %q", results[0].Formatted)
	}
}

func TestCollectSourceFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "z.pas", "")
	writeFile(t, dir, "sub/a.dpr", "")
	writeFile(t, dir, "sub/b.PAS", "")
	writeFile(t, dir, "notes.txt", "")

	files, err := CollectSourceFiles(context.Background(), []string{dir})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 3 {
		t.Fatalf("files: %v", files)
	}
	// сортировка детерминирует порядок вывода и обхода
	for i := 1; i < len(files); i++ {
		if files[i-1] > files[i] {
			t.Fatalf("not sorted: %v", files)
		}
	}
}

func TestExplicitFileAnyExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "weird.inc", "USES A;")

	files, err := CollectSourceFiles(context.Background(), []string{path})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || files[0] != path {
		t.Fatalf("files: %v", files)
	}
}

// utf16le кодирует ASCII-текст в UTF-16LE с BOM, не полагаясь на source.
func utf16le(t *testing.T, s string) []byte {
	t.Helper()
	out := []byte{0xFF, 0xFE}
	for _, r := range s {
		out = append(out, byte(r), byte(r>>8))
	}
	return out
}

func TestFormatPathsWritesBackUTF16(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.pas")
	if err := os.WriteFile(path, utf16le(t, "USES B, A;\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	results, err := FormatPaths(context.Background(), []string{path}, FormatOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || !results[0].Changed || results[0].Err != nil {
		t.Fatalf("unexpected results: %+v", results)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := utf16le(t, "uses\n  A,\n  B;\n")
	if string(raw) != string(want) {
		t.Fatalf("write-back bytes:\ngot  % x\nwant % x", raw, want)
	}
}

func TestFormatCacheRoundTrip(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := OpenFormatCache("pasfmt-test")
	if err != nil {
		t.Fatal(err)
	}

	opts := options.Default()
	content := []byte("uses B, A;")
	if _, _, ok := cache.Get(content, &opts); ok {
		t.Fatalf("unexpected cache hit")
	}

	warn := []diag.Diagnostic{{
		Severity: diag.SevWarning,
		Kind:     "unterminatedString",
		Primary:  source.Span{Start: 1, End: 4},
		Message:  "string literal is not closed",
	}}
	cache.Put(content, &opts, []byte("uses\n  A,\n  B;"), warn)
	out, skipped, ok := cache.Get(content, &opts)
	if !ok || string(out) != "uses\n  A,\n  B;" {
		t.Fatalf("cache miss after put: %q %v", out, ok)
	}
	if len(skipped) != 1 || skipped[0].Kind != "unterminatedString" || skipped[0].Primary.End != 4 {
		t.Fatalf("diagnostics lost in the cache: %v", skipped)
	}

	// иная конфигурация — другой ключ
	other := options.Default()
	other.Indentation = "    "
	if _, _, ok := cache.Get(content, &other); ok {
		t.Fatalf("config change must invalidate the key")
	}

	var nilCache *FormatCache
	nilCache.Put(content, &opts, nil, nil)
	if _, _, ok := nilCache.Get(content, &opts); ok {
		t.Fatalf("nil cache must never hit")
	}
}

func TestRenderDiff(t *testing.T) {
	out := RenderDiff("a.pas", []byte("USES B, A;\nx := 1;\n"), []byte("uses\n  A,\n  B;\nx := 1;\n"))
	if !strings.Contains(out, "-USES B, A;") {
		t.Fatalf("missing deletion: %q", out)
	}
	if !strings.Contains(out, "+uses") {
		t.Fatalf("missing insertion: %q", out)
	}
}
