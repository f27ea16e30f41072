// Package table holds the per-key lookup counts of a trace run.
package table

type (
	// Table maps live keys to the number of times they
	// have been drawn since insertion (including the insert itself).
	// Keys absent from the table are not live.
	// The zero value is not usable; see [New].
	Table struct {
		counts map[int]int
	}
	// Transition describes what a single [Table.Touch] did to a key.
	Transition uint8
)

const (
	// Inserted means the key was not live and now has a count of 1.
	Inserted Transition = iota
	// Incremented means the key was live below the cap and its count grew by 1.
	Incremented
	// Evicted means the key was live at the cap and has been removed.
	Evicted
)

// New creates an empty [Table].
func New() *Table {
	return &Table{counts: make(map[int]int)}
}

// Touch advances key through its lifecycle, given the cap
// at which a live key is removed instead of counted again.
func (t *Table) Touch(key, limit int) Transition {
	count, live := t.counts[key]
	switch {
	case !live:
		t.counts[key] = 1
		return Inserted
	case count == limit:
		delete(t.counts, key)
		return Evicted
	default:
		t.counts[key] = count + 1
		return Incremented
	}
}

// Count returns the count of key and whether it is live.
func (t *Table) Count(key int) (int, bool) {
	count, live := t.counts[key]
	return count, live
}

// Len returns the number of live keys.
func (t *Table) Len() int { return len(t.counts) }
