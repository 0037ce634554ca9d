package diag

import (
	"cmp"
	"fmt"
	"slices"
)

// Bag collects diagnostics up to a limit; the rest are counted and dropped.
type Bag struct {
	items   []Diagnostic
	max     int
	dropped int
}

// NewBag creates a bag holding at most max diagnostics; max <= 0 means no limit.
func NewBag(max int) *Bag {
	return &Bag{max: max}
}

// Add возвращает false, если лимит исчерпан и диагностика отброшена.
func (b *Bag) Add(d Diagnostic) bool {
	if b.max > 0 && len(b.items) >= b.max {
		b.dropped++
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Len() int { return len(b.items) }

// Dropped reports how many diagnostics did not fit.
func (b *Bag) Dropped() int { return b.dropped }

// Items returns the stored diagnostics. The slice is shared with the bag.
func (b *Bag) Items() []Diagnostic { return b.items }

func (b *Bag) has(min Severity) bool {
	return slices.ContainsFunc(b.items, func(d Diagnostic) bool { return d.Severity >= min })
}

func (b *Bag) HasErrors() bool   { return b.has(SevError) }
func (b *Bag) HasWarnings() bool { return b.has(SevWarning) }

// Sort orders diagnostics by file, start, end, then severity (errors first), then code.
func (b *Bag) Sort() {
	slices.SortStableFunc(b.items, func(x, y Diagnostic) int {
		return cmp.Or(
			cmp.Compare(x.Primary.File, y.Primary.File),
			cmp.Compare(x.Primary.Start, y.Primary.Start),
			cmp.Compare(x.Primary.End, y.Primary.End),
			cmp.Compare(y.Severity, x.Severity),
			cmp.Compare(x.Code, y.Code),
		)
	})
}

// Err returns the first error diagnostic as an error, nil if there is none.
func (b *Bag) Err() error {
	for _, d := range b.items {
		if d.Severity >= SevError {
			return fmt.Errorf("%s %s", d.Code.ID(), d.Message)
		}
	}
	return nil
}
