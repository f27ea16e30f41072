// Command hashtrace writes a hash table operation trace.
//
// Usage:
//
//	hashtrace [-num-operation N] [-key-max N] [-max-lookups-per-key N] [-seed N] [-o file] [-v]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"iter"
	"os"
	"time"

	hashtrace "github.com/djdv/go-hashtrace"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	exitFailure = 1
	exitUsage   = 2
)

type settings struct {
	hashtrace.Config
	output  string
	verbose bool
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.TimeOnly,
	})
	set, err := parseFlags(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Error().Err(err).Msg("invalid arguments")
		os.Exit(exitUsage)
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if set.verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if err := run(set); err != nil {
		log.Error().Err(err).Msg("trace generation failed")
		os.Exit(exitFailure)
	}
}

func parseFlags(name string, args []string, output io.Writer) (settings, error) {
	var (
		set   = settings{Config: hashtrace.DefaultConfig()}
		flags = flag.NewFlagSet(name, flag.ContinueOnError)
	)
	flags.SetOutput(output)
	flags.IntVar(&set.Operations, "num-operation", set.Operations,
		"number of hash table operations to generate")
	flags.IntVar(&set.KeyMax, "key-max", set.KeyMax,
		"generated keys are in the range of [1, key-max)")
	flags.IntVar(&set.MaxLookupsPerKey, "max-lookups-per-key", set.MaxLookupsPerKey,
		"after this number of lookups for a specific key is reached, the key is removed")
	flags.Uint64Var(&set.Seed, "seed", 0,
		"seed for a reproducible trace (a random seed is used if unset)")
	flags.StringVar(&set.output, "o", "",
		"write the trace to this file instead of stdout")
	flags.BoolVar(&set.verbose, "v", false, "enable debug logging")
	if err := flags.Parse(args); err != nil {
		return set, err
	}
	if flags.NArg() != 0 {
		return set, fmt.Errorf("unexpected arguments: %v", flags.Args())
	}
	flags.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			set.Seeded = true
		}
	})
	return set, set.Validate()
}

func run(set settings) error {
	log.Debug().
		Int("operations", set.Operations).
		Int("key_max", set.KeyMax).
		Int("max_lookups_per_key", set.MaxLookupsPerKey).
		Bool("seeded", set.Seeded).
		Uint64("seed", set.Seed).
		Str("output", set.output).
		Msg("generating trace")
	var (
		start = time.Now()
		stats hashtrace.Stats
		err   error
	)
	if set.output == "" {
		stats, err = hashtrace.Write(os.Stdout, set.Trace())
	} else {
		stats, err = writeFile(set.output, set.Trace())
	}
	if err != nil {
		return err
	}
	log.Info().
		Int("inserts", stats.Inserts).
		Int("lookups", stats.Lookups).
		Int("removes", stats.Removes).
		Int64("bytes", stats.Bytes).
		Dur("elapsed", time.Since(start)).
		Msg("trace written")
	return nil
}

// writeFile writes ops to a new file at path.
// The file is removed if the trace could not be written in full.
func writeFile(path string, ops iter.Seq[hashtrace.Op]) (hashtrace.Stats, error) {
	file, err := os.Create(path)
	if err != nil {
		return hashtrace.Stats{}, err
	}
	stats, err := hashtrace.Write(file, ops)
	if cErr := file.Close(); err == nil {
		err = cErr
	}
	if err != nil {
		if rErr := os.Remove(path); rErr != nil {
			err = errors.Join(err, rErr)
		}
		return stats, fmt.Errorf("writing %s: %w", path, err)
	}
	return stats, nil
}
