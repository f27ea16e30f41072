package hashtrace

import "math/rand/v2"

type (
	// Source supplies uniformly distributed integers in [0, n).
	// [*rand.Rand] satisfies this interface.
	Source interface {
		IntN(n int) int
	}
	globalSource struct{}
)

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// DefaultSource returns a [Source] backed by the
// process-wide, randomly seeded generator of [math/rand/v2].
func DefaultSource() Source { return globalSource{} }

// NewSeededSource returns a reproducible [Source].
// Runs using sources created with the same seed
// produce the same trace.
func NewSeededSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}
