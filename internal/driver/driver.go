// Package driver orchestrates a single compile: cache lookup, lex,
// parse, emit, cache store. It is the "driver glue" component from the
// system overview — everything here is sequencing and observability
// around the pure internal/compiler core, never a semantic decision.
package driver

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/funvibe/nyxc/internal/cache"
	"github.com/funvibe/nyxc/internal/compiler"
	"github.com/funvibe/nyxc/internal/bytecode"
	"github.com/funvibe/nyxc/internal/lexer"
	"github.com/funvibe/nyxc/internal/parser"
)

// Options controls one Compile call.
type Options struct {
	// CachePath, when non-empty, enables the content-addressed compile
	// cache rooted at this directory.
	CachePath string

	// Logger receives one structured event per compile.
	Logger zerolog.Logger
}

// Compile runs source through the full pipeline and returns the
// finalized three-region program. A cache hit skips lexing, parsing, and
// emission entirely.
func Compile(source []byte, opts Options) (*bytecode.Program, error) {
	start := time.Now()
	log := opts.Logger

	var store *cache.Store
	var key string
	if opts.CachePath != "" {
		store = cache.New(opts.CachePath)
		key = cache.Key(source)
		if prog, ok := store.Get(key); ok {
			log.Info().
				Str("key", key).
				Dur("elapsed", time.Since(start)).
				Msg("compile cache hit")
			return prog, nil
		}
	}

	l := lexer.New(string(source))
	p := parser.New(l)
	astProgram, err := p.Parse()
	if err != nil {
		log.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("parse failed")
		return nil, err
	}

	prog, err := compiler.Compile(astProgram)
	if err != nil {
		log.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("compile failed")
		return nil, err
	}

	if store != nil {
		if err := store.Put(key, prog); err != nil {
			log.Error().Err(err).Msg("compile cache store failed")
		}
	}

	log.Info().
		Int("source_bytes", len(source)).
		Int("program_slots", prog.Program.Len()).
		Int("function_slots", prog.Functions.Len()).
		Dur("elapsed", time.Since(start)).
		Msg("compile succeeded")

	return prog, nil
}
