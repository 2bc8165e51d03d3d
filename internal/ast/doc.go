// Package ast defines the syntax-tree contract between the bundled parser
// and the section extractor.
//
// Назначение: минимальный read-only интерфейс узла (kind, span, error flag,
// навигация) плюс эталонная реализация BasicNode.
// Не делает: никакого разбора текста и никакой семантики.
// Зависимости: internal/source.
package ast
