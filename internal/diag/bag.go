package diag

import (
	"sort"
)

// Bag collects diagnostics for one run and remembers whether any error was seen.
type Bag struct {
	items   []Diagnostic
	max     int // 0 - без лимита
	dropped int
	failed  bool
}

// NewBag creates a bag keeping at most max diagnostics; max <= 0 keeps all.
func NewBag(max int) *Bag {
	if max < 0 {
		max = 0
	}
	return &Bag{
		items: make([]Diagnostic, 0, min(max, 64)),
		max:   max,
	}
}

// Add добавляет диагностику, учитывая лимит.
// Возвращает false, если диагностика не добавлена (достигнут лимит).
// Флаг ошибки выставляется в любом случае.
func (b *Bag) Add(d Diagnostic) bool {
	if d.Severity >= SevError {
		b.failed = true
	}
	if b.max > 0 && len(b.items) >= b.max {
		b.dropped++
		return false
	}
	b.items = append(b.items, d)
	return true
}

// HasErrors reports whether an Error-severity diagnostic was ever added,
// including ones dropped by the limit.
func (b *Bag) HasErrors() bool {
	return b.failed
}

// Dropped returns how many diagnostics the limit discarded.
func (b *Bag) Dropped() int {
	return b.dropped
}

// длина
func (b *Bag) Len() int {
	return len(b.items)
}

// Items возвращает read-only slice диагностик.
// ВАЖНО: не модифицируйте возвращаемый срез! (он указывает на внутренний массив Bag)
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Sort orders diagnostics by file and offset. The sort is stable, so
// diagnostics at the same offset keep the order they were reported in
// (e.g. a missing ';' stays ahead of the error on the reprocessed character).
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		return di.Primary.Off < dj.Primary.Off
	})
}
