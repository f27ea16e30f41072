package hashtrace_test

import (
	"errors"
	"slices"
	"testing"

	hashtrace "github.com/djdv/go-hashtrace"
)

func TestConfig(t *testing.T) {
	t.Run("defaults", defaultConfig)
	t.Run("invalid fields", invalidFields)
	t.Run("seeded trace", seededTrace)
	t.Run("zero seed", zeroSeed)
}

func defaultConfig(t *testing.T) {
	t.Parallel()
	cfg := hashtrace.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	want := hashtrace.Config{
		Operations:       20_000_000,
		KeyMax:           250_000,
		MaxLookupsPerKey: 30,
	}
	if cfg != want {
		t.Errorf(
			"unexpected defaults"+
				"\n\tgot: %+v"+
				"\n\twant: %+v",
			cfg, want)
	}
}

func invalidFields(t *testing.T) {
	valid := hashtrace.Config{Operations: 0, KeyMax: 2, MaxLookupsPerKey: 1}
	if err := valid.Validate(); err != nil {
		t.Fatalf("lowest accepted values were rejected: %v", err)
	}
	for _, test := range []struct {
		name string
		cfg  hashtrace.Config
		want []error
	}{
		{
			"operations",
			hashtrace.Config{Operations: -1, KeyMax: 2, MaxLookupsPerKey: 1},
			[]error{hashtrace.ErrInvalidOperations},
		},
		{
			"key max",
			hashtrace.Config{Operations: 1, KeyMax: 1, MaxLookupsPerKey: 1},
			[]error{hashtrace.ErrInvalidKeyMax},
		},
		{
			"lookup cap",
			hashtrace.Config{Operations: 1, KeyMax: 2, MaxLookupsPerKey: 0},
			[]error{hashtrace.ErrInvalidLookupCap},
		},
		{
			"all",
			hashtrace.Config{Operations: -1, KeyMax: 0, MaxLookupsPerKey: -1},
			[]error{
				hashtrace.ErrInvalidOperations,
				hashtrace.ErrInvalidKeyMax,
				hashtrace.ErrInvalidLookupCap,
			},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			err := test.cfg.Validate()
			if err == nil {
				t.Fatalf("expected error for %+v", test.cfg)
			}
			for _, want := range test.want {
				if !errors.Is(err, want) {
					t.Errorf("expected %v in: %v", want, err)
				}
			}
		})
	}
}

func seededTrace(t *testing.T) {
	t.Parallel()
	cfg := hashtrace.Config{
		Operations:       500,
		KeyMax:           20,
		MaxLookupsPerKey: 3,
		Seed:             7,
		Seeded:           true,
	}
	var (
		first  = slices.Collect(cfg.Trace())
		second = slices.Collect(cfg.Trace())
	)
	if len(first) != cfg.Operations {
		t.Fatalf(
			"expected specific record count"+
				"\n\tgot: %d"+
				"\n\twant: %d",
			len(first), cfg.Operations)
	}
	if !slices.Equal(first, second) {
		t.Fatal("seeded config produced different traces")
	}
}

func zeroSeed(t *testing.T) {
	t.Parallel()
	cfg := hashtrace.Config{
		Operations:       500,
		KeyMax:           20,
		MaxLookupsPerKey: 3,
		Seeded:           true,
	}
	var (
		got  = slices.Collect(cfg.Trace())
		want = slices.Collect(hashtrace.Generate(
			cfg.Operations, cfg.KeyMax, cfg.MaxLookupsPerKey,
			hashtrace.NewSeededSource(0),
		))
	)
	if !slices.Equal(got, want) {
		t.Fatal("seed 0 did not produce the trace of a source seeded with 0")
	}
}
