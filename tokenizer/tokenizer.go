// Package tokenizer implements the byte-pair-encoding core: a merge-by-rank
// algorithm over an immutable vocabulary, and a split/encode pipeline that
// interleaves ordinary word-splitting with caller-sanctioned special tokens.
//
// A *Tokenizer is built once and then only read; Encode and Decode may be
// called concurrently from any number of goroutines.
package tokenizer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dlclark/regexp2"
)

// Tokenizer is the BPE core described by the spec's tokenizer object: two
// immutable vocabulary tables, their inverses, and the two compiled regexes
// that drive the split pipeline. Nothing here changes after New returns.
type Tokenizer struct {
	encoder    map[string]Rank
	specialEnc map[string]Rank
	specialDec map[Rank][]byte
	decoder    tokenStore

	wordRegex    *regexp2.Regexp
	specialRegex *regexp2.Regexp // nil when there are no special tokens at all

	sortedVocab []string
}

// New builds a Tokenizer from an ordinary vocabulary, a special-token table,
// and a word-splitting pattern source.
//
// It fails with ErrInvalidVocabulary if encoder is not injective (two
// spellings sharing one id) or if any spelling in either table is empty,
// and with ErrInvalidRegex if pattern or the assembled special union does
// not compile.
func New(encoder map[string]Rank, specialEncoder map[string]Rank, pattern string) (*Tokenizer, error) {
	if err := validateSpellings(encoder); err != nil {
		return nil, err
	}
	if err := validateSpellings(specialEncoder); err != nil {
		return nil, err
	}

	dec, err := newTokenStore(encoder)
	if err != nil {
		return nil, err
	}

	wordRegex, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("%w: word pattern: %w", ErrInvalidRegex, err)
	}

	specialDec := make(map[Rank][]byte, len(specialEncoder))
	for spelling, id := range specialEncoder {
		specialDec[id] = []byte(spelling)
	}

	specialRegex, err := buildSpecialRegex(specialEncoder)
	if err != nil {
		return nil, err
	}

	sortedVocab := make([]string, 0, len(encoder))
	for spelling := range encoder {
		sortedVocab = append(sortedVocab, spelling)
	}
	sort.Strings(sortedVocab)

	return &Tokenizer{
		encoder:      encoder,
		specialEnc:   specialEncoder,
		specialDec:   specialDec,
		decoder:      dec,
		wordRegex:    wordRegex,
		specialRegex: specialRegex,
		sortedVocab:  sortedVocab,
	}, nil
}

func validateSpellings(table map[string]Rank) error {
	for spelling := range table {
		if spelling == "" {
			return fmt.Errorf("%w: empty spelling in vocabulary", ErrInvalidVocabulary)
		}
	}
	return nil
}

// buildSpecialRegex OR-joins the escaped special spellings into one union
// pattern, longest spelling first. Ordering longest-first resolves the
// spec's open question about overlapping special spellings: a backtracking
// engine trying alternatives in listed order returns the first one that
// matches at a given start, so the longest spelling wins there.
func buildSpecialRegex(specials map[string]Rank) (*regexp2.Regexp, error) {
	if len(specials) == 0 {
		return nil, nil
	}
	spellings := make([]string, 0, len(specials))
	for s := range specials {
		spellings = append(spellings, s)
	}
	sort.Slice(spellings, func(i, j int) bool { return len(spellings[i]) > len(spellings[j]) })

	escaped := make([]string, len(spellings))
	for i, s := range spellings {
		escaped[i] = escapeRegex(s)
	}
	pattern := strings.Join(escaped, "|")

	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("%w: special union: %w", ErrInvalidRegex, err)
	}
	return re, nil
}

// EncoderTable returns the ordinary vocabulary (spelling -> rank). The
// returned map is the tokenizer's own table; callers must not mutate it.
func (t *Tokenizer) EncoderTable() map[string]Rank { return t.encoder }

// DecoderTable returns the inverse of EncoderTable (rank -> spelling),
// rebuilt on each call since the core keeps its fast decode path in a
// separate token store.
func (t *Tokenizer) DecoderTable() map[Rank][]byte {
	out := make(map[Rank][]byte, len(t.encoder))
	for s, r := range t.encoder {
		out[r] = []byte(s)
	}
	return out
}

// SpecialEncoderTable returns the special-token vocabulary (spelling ->
// id). The returned map is the tokenizer's own table; callers must not
// mutate it.
func (t *Tokenizer) SpecialEncoderTable() map[string]Rank { return t.specialEnc }

// SpecialDecoderTable returns the inverse of SpecialEncoderTable. The
// returned map is the tokenizer's own table; callers must not mutate it.
func (t *Tokenizer) SpecialDecoderTable() map[Rank][]byte { return t.specialDec }

// SortedVocab returns every ordinary vocabulary spelling in lexicographic
// order, supporting downstream prefix queries (e.g. vocabulary inspection
// tools). The returned slice is the tokenizer's own and must not be mutated.
func (t *Tokenizer) SortedVocab() []string { return t.sortedVocab }

// IsSpecialToken reports whether id names one of the tokenizer's special
// tokens.
func (t *Tokenizer) IsSpecialToken(id Rank) bool {
	_, ok := t.specialDec[id]
	return ok
}

// DecodeBytes reconstructs the exact byte string a token sequence spells
// out, per the reconstruction invariant: decode(encode(t)) == t for any t
// encode could have produced. It fails if any id belongs to neither table.
func (t *Tokenizer) DecodeBytes(tokens []Rank) ([]byte, error) {
	var out []byte
	for _, id := range tokens {
		if t.decoder.AppendInto(&out, id) {
			continue
		}
		if spelling, ok := t.specialDec[id]; ok {
			out = append(out, spelling...)
			continue
		}
		return nil, fmt.Errorf("%w: token %d has no spelling", ErrInvalidVocabulary, id)
	}
	return out, nil
}

// Decode is DecodeBytes with the result converted to a string.
func (t *Tokenizer) Decode(tokens []Rank) (string, error) {
	b, err := t.DecodeBytes(tokens)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
