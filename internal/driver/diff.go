package driver

import (
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// RenderDiff returns a colored line diff between the on-disk content and the
// formatted output, for check mode.
func RenderDiff(path string, original, formatted []byte) string {
	dmp := diffmatchpatch.New()
	a, b, lineIndex := dmp.DiffLinesToChars(string(original), string(formatted))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineIndex)

	var buf strings.Builder
	buf.WriteString(color.New(color.Bold).Sprintf("--- %s", path))
	buf.WriteByte('\n')

	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			writePrefixed(&buf, d.Text, "-", color.New(color.FgRed))
		case diffmatchpatch.DiffInsert:
			writePrefixed(&buf, d.Text, "+", color.New(color.FgGreen))
		default:
			writeContext(&buf, d.Text)
		}
	}
	return buf.String()
}

func writePrefixed(buf *strings.Builder, text, prefix string, c *color.Color) {
	for _, line := range splitLines(text) {
		buf.WriteString(c.Sprintf("%s%s", prefix, line))
		buf.WriteByte('\n')
	}
}

// writeContext prints at most two leading and trailing unchanged lines per
// block, folding the middle.
func writeContext(buf *strings.Builder, text string) {
	lines := splitLines(text)
	if len(lines) > 5 {
		for _, line := range lines[:2] {
			buf.WriteString(" " + line + "\n")
		}
		buf.WriteString(color.New(color.Faint).Sprint("..."))
		buf.WriteByte('\n')
		for _, line := range lines[len(lines)-2:] {
			buf.WriteString(" " + line + "\n")
		}
		return
	}
	for _, line := range lines {
		buf.WriteString(" " + line + "\n")
	}
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
