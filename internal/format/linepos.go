package format

import (
	"pasfmt/internal/options"
	"pasfmt/internal/replace"
	"pasfmt/internal/source"
)

// adjustLinePosition finalizes a full-section replacement against its
// physical line. When nothing but horizontal whitespace precedes the section
// on its line, the span is extended back to the line start so the new text
// re-supplies the indentation. When real content shares the line (a header
// glued after a statement), one line ending is prepended instead so the
// preceding code survives the rewrite.
func adjustLinePosition(file *source.File, sp source.Span, text string, opts *options.Options) (source.Span, string) {
	content := file.Content

	lineStart := int(sp.Start)
	for lineStart > 0 && content[lineStart-1] != '\n' && content[lineStart-1] != '\r' {
		lineStart--
	}

	// BOM прозрачен: секция сразу после него стоит в начале строки
	if lineStart == 0 && file.Flags&source.FileHasBOM != 0 && sp.Start >= 3 {
		lineStart = 3
	}

	for _, b := range content[lineStart:sp.Start] {
		if b != ' ' && b != '\t' {
			return sp, opts.LineEnding + text
		}
	}
	sp.Start = uint32(lineStart)
	return sp, text
}

// finalize applies line-position adjustment. A replacement reproducing the
// original slice byte for byte is still returned: its span has to shield the
// section from the operator pass exactly as on the run that rewrote it,
// иначе повторный прогон видит другие дыры. Бесполезные замены снимает
// общий фильтр в конце конвейера.
func finalize(file *source.File, original string, sp source.Span, text string, opts *options.Options) (replace.TextReplacement, bool) {
	sp, text = adjustLinePosition(file, sp, text, opts)
	return replace.NewFinal(sp, text), true
}
