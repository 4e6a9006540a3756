package diag

import (
	"sort"

	"shard/internal/source"
)

// Bag is an append-only diagnostic log. Speculative parses can take a
// Suppression checkpoint and roll provisional entries back.
type Bag struct {
	items []Diagnostic
	max   uint16
}

// NewBag creates a bag holding at most max diagnostics (0 means unbounded).
func NewBag(max int) *Bag {
	hint := max
	if hint == 0 {
		hint = 16
	}
	return &Bag{
		items: make([]Diagnostic, 0, hint),
		max:   uint16(max),
	}
}

// Add appends a diagnostic, honoring the limit.
// Returns false if the diagnostic was dropped.
func (b *Bag) Add(d Diagnostic) bool {
	if b.max != 0 && len(b.items) >= int(b.max) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

// Error reports an error diagnostic at the given span.
func (b *Bag) Error(code Code, primary source.Span, msg string) bool {
	return b.Add(NewError(code, primary, msg))
}

// Warning reports a warning diagnostic at the given span.
func (b *Bag) Warning(code Code, primary source.Span, msg string) bool {
	return b.Add(NewWarning(code, primary, msg))
}

// HasErrors reports whether at least one SevError entry is present.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns a read-only view of the diagnostics.
// The slice aliases the bag's internal storage; do not modify it.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Suppression is a checkpoint over the bag, used to discard provisional
// diagnostics emitted during a speculative parse.
type Suppression struct {
	bag  *Bag
	mark int
}

// Suppress takes a checkpoint of the current log length.
func (b *Bag) Suppress() Suppression {
	return Suppression{bag: b, mark: len(b.items)}
}

// Restore truncates the log back to the checkpoint length.
// Restoring twice is harmless as long as nothing was re-reported in between.
func (s Suppression) Restore() {
	if s.bag == nil || s.mark > len(s.bag.items) {
		return
	}
	s.bag.items = s.bag.items[:s.mark]
}

// Sort orders diagnostics by file, start, end, then severity (errors first)
// for a stable, deterministic output order.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Primary.End != dj.Primary.End {
			return di.Primary.End < dj.Primary.End
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}
