// Package fuzztests houses Go fuzz harnesses that hammer the formatting
// pipeline (source -> parser -> transformers -> merge) with arbitrary bytes.
// Its goal is to smoke test robustness: no panics, no overlapping
// replacements, and a stable result on the second pass.
//
// Назначение: запускать fuzz-обработчики, которые прогоняют произвольный
// вход через полный конвейер форматирования.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/format, internal/options, internal/replace,
// internal/rewrite.

package fuzztests
