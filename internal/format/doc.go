// Package format contains the per-section transformers and the pipeline that
// turns a parsed file into a list of byte-range replacements.
//
// Назначение: трансформеры секций (uses, заголовки, маркеры блоков,
// процедуры) и конвейер produce/merge поверх них.
// Не делает: IO, разбора текста (это parser/section), посимвольной
// перезаписи (это rewrite).
// Зависимости: internal/{parser,section,replace,rewrite,options,source},
// golang.org/x/sync/errgroup.
package format
