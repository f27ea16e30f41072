package hashtrace

import (
	"iter"

	"github.com/djdv/go-hashtrace/internal/table"
)

// Generator produces one trace record per call to [Generator.Next].
// Concurrent access must be guarded by the caller.
// Constructed by [New].
type Generator struct {
	source             Source
	live               *table.Table
	keyMax, lookupsCap int
}

// New creates a [Generator] drawing keys from [1, keyMax)
// and removing a live key once it has been drawn lookupsCap times.
// Arguments are not validated; see [Config.Validate].
// If source is nil, [DefaultSource] is used.
func New(keyMax, lookupsCap int, source Source) *Generator {
	if source == nil {
		source = DefaultSource()
	}
	return &Generator{
		source:     source,
		live:       table.New(),
		keyMax:     keyMax,
		lookupsCap: lookupsCap,
	}
}

// Generate returns a sequence of count records.
// Every iteration starts a new run with no live keys
// and draws fresh values from source.
func Generate(count, keyMax, lookupsCap int, source Source) iter.Seq[Op] {
	return func(yield func(Op) bool) {
		if count <= 0 {
			return
		}
		gen := New(keyMax, lookupsCap, source)
		for range count {
			if !yield(gen.Next()) {
				return
			}
		}
	}
}

// Next draws a key and advances it through its lifecycle.
func (g *Generator) Next() Op {
	key := g.draw()
	op := Op{Key: key}
	switch g.live.Touch(key, g.lookupsCap) {
	case table.Inserted:
		op.Kind = Insert
	case table.Incremented:
		op.Kind = Lookup
	case table.Evicted:
		op.Kind = Remove
	}
	if debugging {
		count, live := g.live.Count(key)
		assert(op.Kind == Remove && !live ||
			op.Kind != Remove && live && count >= 1 && count <= g.lookupsCap,
			"lookup count left its range")
	}
	return op
}

// draw returns a key in [1, keyMax).
// A range with fewer than one key collapses to key 1.
func (g *Generator) draw() int {
	span := max(g.keyMax-1, 1)
	return 1 + g.source.IntN(span)
}

// Live returns the number of keys that have been
// inserted and not yet removed.
func (g *Generator) Live() int { return g.live.Len() }

// Count returns how many times a live key has been drawn
// since its insertion (the insert included),
// and false if the key is not live.
func (g *Generator) Count(key int) (int, bool) {
	return g.live.Count(key)
}
