package fuzztests

import (
	"testing"

	"pasfmt/internal/format"
	"pasfmt/internal/options"
	"pasfmt/internal/replace"
	"pasfmt/internal/rewrite"
)

func fuzzOptions() *options.Options {
	opts := options.Default()
	return &opts
}

// FuzzFormatText прогоняет произвольные байты через полный конвейер и
// проверяет три инварианта: отсутствие паник, непересекающиеся замены и
// стабильность результата на втором прогоне.
func FuzzFormatText(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		src := string(clampSeed(input))
		opts := fuzzOptions()

		first, reps := format.FormatText("fuzz.pas", src, opts)
		if replace.Overlapping(reps) {
			t.Fatalf("overlapping replacements on %q", src)
		}
		second, _ := format.FormatText("fuzz.pas", first, opts)
		if second != first {
			t.Fatalf("not idempotent:\nfirst  %q\nsecond %q", first, second)
		}
	})
}

// FuzzRewrite smoke tests the spacing engine alone: it must never panic and
// a second pass over its own output must change nothing.
func FuzzRewrite(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		src := string(clampSeed(input))
		opts := fuzzOptions()

		first := rewrite.Rewrite(src, opts)
		if second := rewrite.Rewrite(first, opts); second != first {
			t.Fatalf("not idempotent:\nfirst  %q\nsecond %q", first, second)
		}
	})
}
