package diag

import (
	"math"

	"fortio.org/safecast"
)

type Bag struct {
	items []Diagnostic
	max   uint16
}

// NewBag creates a bag holding at most max diagnostics. A non-positive max
// means no practical limit.
func NewBag(max int) *Bag {
	limit, err := safecast.Conv[uint16](max)
	if err != nil || limit == 0 {
		limit = math.MaxUint16
	}
	return &Bag{
		items: make([]Diagnostic, 0, min(int(limit), 64)),
		max:   limit,
	}
}

// Add appends d unless the limit is reached, in which case it reports false.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= int(b.max) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns the backing slice; callers must not modify it.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Count returns how many diagnostics have the given severity.
func (b *Bag) Count(sev Severity) int {
	n := 0
	for i := range b.items {
		if b.items[i].Severity == sev {
			n++
		}
	}
	return n
}

// Merge appends diagnostics from other until the limit is reached and
// reports how many were dropped.
func (b *Bag) Merge(other *Bag) int {
	if other == nil {
		return 0
	}
	room := max(int(b.max)-len(b.items), 0)
	n := min(room, len(other.items))
	b.items = append(b.items, other.items[:n]...)
	return len(other.items) - n
}
