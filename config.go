package hashtrace

import (
	"errors"
	"iter"
)

// Config holds the parameters of a trace run.
type Config struct {
	// Operations is the number of records to generate.
	Operations int
	// KeyMax is the exclusive upper bound of the key range [1, KeyMax).
	KeyMax int
	// MaxLookupsPerKey is the count at which
	// a live key is removed instead of looked up again.
	MaxLookupsPerKey int
	// Seed is the seed of the reproducible source used when Seeded is set.
	Seed uint64
	// Seeded selects a source created by [NewSeededSource]
	// instead of [DefaultSource]. Any Seed, including 0, may be used.
	Seeded bool
}

const (
	DefaultOperations       = 20_000_000
	DefaultKeyMax           = 250_000
	DefaultMaxLookupsPerKey = 30
	// MinimumKeyMax is the lowest KeyMax accepted by [Config.Validate],
	// which yields the single key 1.
	MinimumKeyMax = 2
)

// DefaultConfig returns a [Config] with the default
// operation count, key range, and lookup cap.
func DefaultConfig() Config {
	return Config{
		Operations:       DefaultOperations,
		KeyMax:           DefaultKeyMax,
		MaxLookupsPerKey: DefaultMaxLookupsPerKey,
	}
}

// Validate reports every field of cfg that is out of range.
func (cfg Config) Validate() error {
	var errs []error
	if cfg.Operations < 0 {
		errs = append(errs, boundError(ErrInvalidOperations, 0, cfg.Operations))
	}
	if cfg.KeyMax < MinimumKeyMax {
		errs = append(errs, boundError(ErrInvalidKeyMax, MinimumKeyMax, cfg.KeyMax))
	}
	if cfg.MaxLookupsPerKey < 1 {
		errs = append(errs, boundError(ErrInvalidLookupCap, 1, cfg.MaxLookupsPerKey))
	}
	return errors.Join(errs...)
}

// Source returns a source seeded with cfg.Seed if cfg.Seeded is set,
// otherwise [DefaultSource].
func (cfg Config) Source() Source {
	if cfg.Seeded {
		return NewSeededSource(cfg.Seed)
	}
	return DefaultSource()
}

// Trace is shorthand for calling [Generate] with the fields of cfg.
// It does not call [Config.Validate].
func (cfg Config) Trace() iter.Seq[Op] {
	return Generate(cfg.Operations, cfg.KeyMax, cfg.MaxLookupsPerKey, cfg.Source())
}
