package fuzztests

import "testing"

const maxFuzzInput = 1 << 16 // 64 KiB

// addCorpusSeeds даёт fuzz-движку стартовые примеры: заголовки модулей,
// секции uses в обоих раскладках, операторы и незакрытые литералы.
func addCorpusSeeds(f *testing.F) {
	seeds := []string{
		"",
		"unit Foo;\n",
		"UNIT  Foo ;\ninterface\nimplementation\nend.\n",
		"uses A, B, C;\n",
		"uses\n  System.SysUtils\n  , Vcl.Forms\n  ;\n",
		"program Demo;\nbegin\n  x:=1;y:=2;\nend.\n",
		"procedure TForm1.Click;\nbegin\n  inherited;\nend;\n",
		"// comment ,;:=\n{ brace ,; }\n(* paren ,; *)\n",
		"s := 'unterminated\nuses A;",
		"\xef\xbb\xbfunit Bom;\n",
		"a,b;c,d",
		"if a<=b then c:=d;\r\n",
		// операторы вплотную к границам секций: заголовок, приклеенный к
		// коду, и имя процедуры, за которым сразу идёт оператор
		"Unit Foo;x:=1;",
		"procedure F;a<=b;",
		",+=1.:=procedure(<=function1<=;",
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) > maxFuzzInput {
		src = src[:maxFuzzInput]
	}
	return append([]byte(nil), src...)
}
