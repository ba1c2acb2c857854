// Package logging provides the structured logger the command hands to the
// driver, which logs compile outcomes and compile-cache hits through it —
// the "logger collaborator" the emitter itself never
// formats or transports diagnostics through directly.
package logging

import (
	"io"

	"github.com/rs/zerolog"
)

// New returns a zerolog.Logger writing to out with a timestamp on every
// event, mirroring the zerolog.New(...).With()...Logger() construction
// inoxlang-inox's cmd/inox/main.go uses for its own CLI logger.
func New(out io.Writer) zerolog.Logger {
	return zerolog.New(out).With().Timestamp().Logger()
}

// Component returns a child logger tagged with a "component" field, for
// distinguishing driver/cache/compiler log lines in shared output.
func Component(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}
