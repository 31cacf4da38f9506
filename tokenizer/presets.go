package tokenizer

import "fmt"

// preset bundles everything needed to build a Tokenizer for one of the
// named public encodings: its word pattern, its special-token table, and
// the vocabulary file the loader fetches for it.
type preset struct {
	pattern   string
	specials  map[string]Rank
	vocabFile string
	sha256Hex string // empty means the loader skips digest verification
}

var presets = map[string]preset{
	"gpt2": {
		pattern:   PatternGPT2,
		specials:  specialsGPT2,
		vocabFile: "gpt2.tiktoken",
	},
	"cl100k_base": {
		pattern:   PatternCl100kBase,
		specials:  specialsCl100kBase,
		vocabFile: "cl100k_base.tiktoken",
	},
	"o200k_base": {
		pattern:   PatternO200kBase,
		specials:  specialsO200kBase,
		vocabFile: "o200k_base.tiktoken",
		sha256Hex: "446a9538cb6c348e3516120d7c08b09f57c36495e2acfffe59a5bf8b0cfb1a2d",
	},
}

// KnownEncodings lists the encoding names LoadEncoding accepts.
func KnownEncodings() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}

// LoadEncoding fetches (or serves from cache) the vocabulary for a bundled
// encoding and builds a Tokenizer from it — the loader and the tokenizer
// object wired together for the common case. Callers with their own
// vocabulary (e.g. from a custom training run, itself out of this core's
// scope) should call New directly instead.
func LoadEncoding(cfg Config, name string) (*Tokenizer, error) {
	p, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown encoding %q (known: %v)", ErrInvalidArgument, name, KnownEncodings())
	}
	encoder, err := loadVocab(cfg, p.vocabFile, p.sha256Hex)
	if err != nil {
		return nil, err
	}
	return New(encoder, p.specials, p.pattern)
}
