// Package diag collects the notes the lexer and parser leave behind about
// text they could not fully understand. Формат никогда не падает на плохом
// входе, но места, которые он молча пропустил, должны быть видимы.
package diag

import (
	"fmt"
	"sort"

	"pasfmt/internal/source"
)

// Severity ranks a diagnostic.
type Severity uint8

const (
	SevNote Severity = iota
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevError:
		return "error"
	case SevWarning:
		return "warning"
	default:
		return "note"
	}
}

// Diagnostic is one structured note about the input.
type Diagnostic struct {
	Severity Severity
	// Kind is a short machine tag ("unterminatedString", "unexpectedEof").
	Kind    string
	Primary source.Span
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Severity, d.Kind, d.Message)
}

// Bag accumulates diagnostics up to a cap. It implements the Reporter
// contract of the lexer and parser, so a Bag can be passed straight into
// parse options.
type Bag struct {
	items []Diagnostic
	max   int
}

// NewBag returns a bag that keeps at most max diagnostics.
func NewBag(max int) *Bag {
	if max <= 0 {
		max = 64
	}
	return &Bag{items: make([]Diagnostic, 0, min(max, 16)), max: max}
}

// Report записывает сообщение лексера/парсера как предупреждение:
// непонятый кусок пропускается, а не ломает прогон.
func (b *Bag) Report(kind string, span source.Span, msg string) {
	b.Add(Diagnostic{Severity: SevWarning, Kind: kind, Primary: span, Message: msg})
}

// Add appends one diagnostic; false means the cap was hit.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= b.max {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Len() int { return len(b.items) }

// Items returns the collected diagnostics. Срез принадлежит Bag, не
// модифицируйте его.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// HasErrors reports whether anything at SevError was collected.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// Sort orders diagnostics by span then severity, for deterministic output.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Primary.End != dj.Primary.End {
			return di.Primary.End < dj.Primary.End
		}
		return di.Severity > dj.Severity
	})
}
