package rewrite

import (
	"testing"

	"pasfmt/internal/options"
)

func defaults() *options.Options {
	o := options.Default()
	return &o
}

// commaAfter: запятая After, точка с запятой не трогается
func commaAfter() *options.Options {
	o := defaults()
	o.Spacing.Set(options.ClassSemicolon, options.NoChange)
	return o
}

func TestCommaAfterSpacing(t *testing.T) {
	got := Rewrite("a,b;c,d", commaAfter())
	if got != "a, b;c, d" {
		t.Fatalf("comma spacing: got %q", got)
	}
}

func TestCommaBeforeExistingSpaceNormalized(t *testing.T) {
	got := Rewrite("a ,  b", commaAfter())
	if got != "a, b" {
		t.Fatalf("got %q", got)
	}
}

func TestCommaRunNotSpacedBetween(t *testing.T) {
	got := Rewrite("a,,b", commaAfter())
	if got != "a,, b" {
		t.Fatalf("got %q", got)
	}
}

func TestCommaThenSemicolonStillSpaced(t *testing.T) {
	got := Rewrite("a,;b", commaAfter())
	if got != "a, ;b" {
		t.Fatalf("got %q", got)
	}
	// активная политика точки с запятой не срезает пробел от запятой
	got = Rewrite("a,;b", defaults())
	if got != "a, ; b" {
		t.Fatalf("semicolon After must keep the comma space: got %q", got)
	}
}

func TestCommaAtLineEndNoTrailingSpace(t *testing.T) {
	got := Rewrite("a,\nb", commaAfter())
	if got != "a,\nb" {
		t.Fatalf("got %q", got)
	}
}

func TestOperatorFirstOnLineKeepsIndent(t *testing.T) {
	// ведущая ", " раскладка не дедентируется и не меняется повторным прогоном
	src := "uses\n    A\n  , B\n  ;\n"
	if got := Rewrite(src, defaults()); got != src {
		t.Fatalf("got %q", got)
	}
}

func TestRewriteFromMidLineCut(t *testing.T) {
	opts := defaults()
	opts.Spacing.Set(options.ClassCompoundAssign, options.BeforeAndAfter)

	// начало среза открывает текст: оператор стоит в начале строки
	if got := Rewrite("+=x", opts); got != "+= x" {
		t.Fatalf("text start: got %q", got)
	}
	// тот же срез, вырезанный посреди строки: слева был идентификатор
	if got := RewriteFrom('a', "+=x", opts); got != " += x" {
		t.Fatalf("mid-line cut: got %q", got)
	}
	// слева конец строки: поведение как в начале текста
	if got := RewriteFrom('\n', "+=x", opts); got != "+= x" {
		t.Fatalf("after newline: got %q", got)
	}
}

func TestRewriteFromKeepsIndentAfterNewline(t *testing.T) {
	got := RewriteFrom('\n', "  , B", commaAfter())
	if got != "  , B" {
		t.Fatalf("indent before leading comma must survive: got %q", got)
	}
}

func TestRewriteFromColonNumericException(t *testing.T) {
	opts := defaults()
	opts.Spacing.Set(options.ClassColon, options.After)

	// двоеточие на границе среза, слева цифра: исключение времени действует
	if got := RewriteFrom('2', ":34", opts); got != ":34" {
		t.Fatalf("time literal: got %q", got)
	}
	if got := RewriteFrom('x', ":34", opts); got != ": 34" {
		t.Fatalf("declaration colon: got %q", got)
	}
}

func TestStringLiteralUntouched(t *testing.T) {
	got := Rewrite("s := 'It''s a test',x", commaAfter())
	if got != "s := 'It''s a test', x" {
		t.Fatalf("got %q", got)
	}
}

func TestCommentsUntouched(t *testing.T) {
	opts := commaAfter()
	for _, src := range []string{
		"// a,b\nc,d",
		"{ a,b }c,d",
		"(* a,b *)c,d",
	} {
		got := Rewrite(src, opts)
		want := map[string]string{
			"// a,b\nc,d":  "// a,b\nc, d",
			"{ a,b }c,d":   "{ a,b }c, d",
			"(* a,b *)c,d": "(* a,b *)c, d",
		}[src]
		if got != want {
			t.Fatalf("src %q: got %q, want %q", src, got, want)
		}
	}
}

func TestPreprocessorDirectiveUntouched(t *testing.T) {
	got := Rewrite("{$IFDEF A,B}x,y", commaAfter())
	if got != "{$IFDEF A,B}x, y" {
		t.Fatalf("got %q", got)
	}
}

func TestUnterminatedStringClosedAtNewline(t *testing.T) {
	// после перевода строки сканер снова в коде
	got := Rewrite("s := 'oops\na,b", commaAfter())
	if got != "s := 'oops\na, b" {
		t.Fatalf("got %q", got)
	}
}

func TestColonNumericException(t *testing.T) {
	opts := defaults()
	opts.Spacing.Set(options.ClassColon, options.After)
	got := Rewrite("t := 12:34:56;", opts)
	if got != "t := 12:34:56;" {
		t.Fatalf("time literal must stay intact: got %q", got)
	}
	got = Rewrite("var x:Integer;", opts)
	if got != "var x: Integer;" {
		t.Fatalf("declaration colon: got %q", got)
	}
}

func TestColonExceptionDisabled(t *testing.T) {
	opts := defaults()
	opts.Spacing.Set(options.ClassColon, options.After)
	opts.ColonNumericException = false
	got := Rewrite("12:34", opts)
	if got != "12: 34" {
		t.Fatalf("got %q", got)
	}
}

func TestAssignmentBeforeAndAfter(t *testing.T) {
	got := Rewrite("x:=1;y  :=  2;", defaults())
	if got != "x := 1; y := 2;" {
		t.Fatalf("got %q", got)
	}
}

func TestCompoundAssign(t *testing.T) {
	got := Rewrite("x+=1", defaults())
	if got != "x += 1" {
		t.Fatalf("got %q", got)
	}
}

func TestTwoCharOperatorNotSplit(t *testing.T) {
	opts := defaults()
	opts.Spacing.Set(options.ClassRelational, options.BeforeAndAfter)
	got := Rewrite("if a<=b then", opts)
	if got != "if a <= b then" {
		t.Fatalf("got %q", got)
	}
	got = Rewrite("if a<>b then", opts)
	if got != "if a <> b then" {
		t.Fatalf("got %q", got)
	}
}

func TestNoSpaceAtLineBoundaries(t *testing.T) {
	opts := defaults()
	opts.Spacing.Set(options.ClassArithmetic, options.BeforeAndAfter)
	got := Rewrite("+a\nb+\n", opts)
	if got != "+ a\nb +\n" {
		t.Fatalf("operators at line edges: got %q", got)
	}
}

func TestTrailingWhitespaceTrimmedEverywhere(t *testing.T) {
	got := Rewrite("code  \n// comment  \n{ brace  \n}  \n's  \n", commaAfter())
	want := "code\n// comment\n{ brace\n}\n's\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestTrimDisabled(t *testing.T) {
	opts := defaults()
	opts.TrimTrailingWhitespace = false
	got := Rewrite("code  \n", opts)
	if got != "code  \n" {
		t.Fatalf("got %q", got)
	}
}

func TestCRLFPreserved(t *testing.T) {
	got := Rewrite("a,b  \r\nc,d", commaAfter())
	if got != "a, b\r\nc, d" {
		t.Fatalf("got %q", got)
	}
}

func TestIdempotent(t *testing.T) {
	opts := defaults()
	opts.Spacing.Set(options.ClassColon, options.After)
	opts.Spacing.Set(options.ClassRelational, options.BeforeAndAfter)
	src := "var x:Integer;\nbegin\n  x:=1,2;  \n  if x<=2 then s := 'a,b';\nend.\n"
	once := Rewrite(src, opts)
	twice := Rewrite(once, opts)
	if once != twice {
		t.Fatalf("not idempotent:\nonce:  %q\ntwice: %q", once, twice)
	}
}

func TestNoChangeLeavesTextAlone(t *testing.T) {
	opts := defaults()
	opts.Spacing.Set(options.ClassComma, options.NoChange)
	opts.Spacing.Set(options.ClassSemicolon, options.NoChange)
	opts.Spacing.Set(options.ClassAssignment, options.NoChange)
	opts.Spacing.Set(options.ClassCompoundAssign, options.NoChange)
	src := "a,b ;c:=1"
	if got := Rewrite(src, opts); got != src {
		t.Fatalf("got %q", got)
	}
}
