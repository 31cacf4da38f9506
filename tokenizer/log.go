package tokenizer

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the package-level structured logger used by the vocabulary
// loader (cache hits, downloads). The core split/merge/encode path never logs: it is a pure
// function per the tokenizer object's concurrency contract, and logging on
// that path would add shared-writer contention to calls that are otherwise
// free of shared mutable state.
var Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
	With().
	Timestamp().
	Str("component", "corebpe").
	Logger()
