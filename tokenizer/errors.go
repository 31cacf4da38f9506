package tokenizer

import "errors"

// ErrInvalidArgument is returned when an operation receives an argument that
// violates its contract, e.g. an empty piece handed to the merger.
var ErrInvalidArgument = errors.New("corebpe: invalid argument")

// ErrInvalidVocabulary is returned when the encoder table is not injective,
// or when a segment produced by the merger has no entry in the rank table.
var ErrInvalidVocabulary = errors.New("corebpe: invalid vocabulary")

// ErrInvalidRegex is returned when the caller-supplied word pattern or the
// assembled special-token union fails to compile.
var ErrInvalidRegex = errors.New("corebpe: invalid regex")
