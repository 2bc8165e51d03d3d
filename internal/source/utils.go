package source

import (
	"bytes"
	"path/filepath"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// decodeContent normalizes raw file bytes into UTF-8 without losing
// information a formatter needs for write-back. UTF-16 input (Delphi saves
// these routinely) is transcoded; UTF-8 input is kept byte-for-byte, BOM
// included, so spans keep matching the on-disk file.
func decodeContent(raw []byte) ([]byte, FileFlags, error) {
	switch {
	case bytes.HasPrefix(raw, bomUTF16LE):
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		out, _, err := transform.Bytes(dec, raw)
		if err != nil {
			return nil, 0, err
		}
		return out, FileWasUTF16, nil
	case bytes.HasPrefix(raw, bomUTF16BE):
		dec := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
		out, _, err := transform.Bytes(dec, raw)
		if err != nil {
			return nil, 0, err
		}
		return out, FileWasUTF16 | FileUTF16BigEndian, nil
	case bytes.HasPrefix(raw, bomUTF8):
		return raw, FileHasBOM, nil
	default:
		return raw, 0, nil
	}
}

// EncodeContent is the inverse of the Load-time decoding: given formatted
// UTF-8 content and the file's flags, it produces the bytes to write back to
// disk in the file's original encoding.
func EncodeContent(content []byte, flags FileFlags) ([]byte, error) {
	if flags&FileWasUTF16 == 0 {
		return content, nil
	}
	endianness := unicode.LittleEndian
	if flags&FileUTF16BigEndian != 0 {
		endianness = unicode.BigEndian
	}
	enc := unicode.UTF16(endianness, unicode.UseBOM).NewEncoder()
	out, _, err := transform.Bytes(enc, content)
	return out, err
}

// HasUTF8BOM reports whether content starts with a UTF-8 byte-order mark.
func HasUTF8BOM(content []byte) bool {
	return bytes.HasPrefix(content, bomUTF8)
}

func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, len(content)/32)
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}

func toLineCol(lineIdx []uint32, off uint32) LineCol {
	// Если LineIdx пустой, то весь файл - одна строка
	if len(lineIdx) == 0 {
		return LineCol{Line: 1, Col: off + 1}
	}

	// бинпоиск: находим последний \n строго левее off
	lo, hi := 0, len(lineIdx)-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		if lineIdx[mid] < off {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}

	// Нет \n перед off — первая строка.
	if hi < 0 {
		return LineCol{Line: 1, Col: off + 1}
	}

	startOff := lineIdx[hi] + 1
	return LineCol{Line: uint32(hi + 2), Col: off - startOff + 1}
}

func normalizePath(p string) string {
	// единый вид в кроссплатформенных дифах
	return filepath.ToSlash(filepath.Clean(p))
}
