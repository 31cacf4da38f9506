package tokenizer

import (
	"fmt"
	"strings"
)

// Encode walks text left to right, alternating between matching the next
// allowed special token and word-splitting the ordinary region before it,
// and returns the concatenated token id sequence.
//
// allowedSpecial filters which recognized special spellings are honored on
// this call; a special the tokenizer knows about but that isn't in
// allowedSpecial is not short-circuited — it is tokenized as ordinary text,
// byte for byte, like anything else. A nil or empty allowedSpecial disables
// special-token recognition entirely.
//
// Encode is a pure function of the tokenizer and its arguments: it holds no
// locks and mutates no shared state, so concurrent calls from multiple
// goroutines against the same Tokenizer are safe.
func (t *Tokenizer) Encode(text string, allowedSpecial map[string]struct{}) ([]Rank, error) {
	if len(text) == 0 {
		return nil, nil
	}

	var out []Rank
	start := 0
	for {
		end, specialID, specialLen, err := t.nextAllowedSpecial(text, start, allowedSpecial)
		if err != nil {
			return nil, err
		}

		if end > start {
			if err := t.encodeOrdinaryInto(text[start:end], &out); err != nil {
				return nil, err
			}
		}

		if specialLen == 0 {
			return out, nil
		}
		out = append(out, specialID)
		start = end + specialLen
	}
}

// EncodeOrdinary encodes text with no special-token recognition at all: an
// allow-list-free call, equivalent to Encode(text, nil).
func (t *Tokenizer) EncodeOrdinary(text string) ([]Rank, error) {
	return t.Encode(text, nil)
}

// EncodeWithAllSpecials encodes text honoring every special token the
// tokenizer knows about.
func (t *Tokenizer) EncodeWithAllSpecials(text string) ([]Rank, error) {
	allowed := make(map[string]struct{}, len(t.specialEnc))
	for s := range t.specialEnc {
		allowed[s] = struct{}{}
	}
	return t.Encode(text, allowed)
}

// encodeOrdinaryInto word-splits region with the compiled word regex and
// appends each piece's ids to out.
func (t *Tokenizer) encodeOrdinaryInto(region string, out *[]Rank) error {
	m, err := t.wordRegex.FindStringMatch(region)
	if err != nil {
		return fmt.Errorf("%w: word regex: %v", ErrInvalidRegex, err)
	}
	for m != nil {
		ids, perr := t.encodePiece(m.String())
		if perr != nil {
			return perr
		}
		*out = append(*out, ids...)

		m, err = t.wordRegex.FindNextMatch(m)
		if err != nil {
			return fmt.Errorf("%w: word regex: %v", ErrInvalidRegex, err)
		}
	}
	return nil
}

// nextAllowedSpecial scans text from start for the next occurrence of an
// allowed special spelling, rejecting (and skipping one character past)
// every recognized-but-not-allowed match along the way. It returns the byte
// offset where the ordinary region ends, i.e. the start of the match (or
// len(text) if none was found), plus the matched id and spelling length
// (zero length means no match).
//
// When the longest special spelling at a match position is not allowed, the
// longest allowed spelling that starts at that same position is taken
// instead, if there is one.
//
// The per-character advance on a rejected match is deliberate: it is the
// only way to guarantee the scan terminates and still catches an allowed
// occurrence that overlaps a rejected one.
func (t *Tokenizer) nextAllowedSpecial(text string, start int, allowed map[string]struct{}) (end int, id Rank, matchLen int, err error) {
	if len(allowed) == 0 || t.specialRegex == nil {
		return len(text), 0, 0, nil
	}

	find := start
	for find <= len(text) {
		m, merr := t.specialRegex.FindStringMatch(text[find:])
		if merr != nil {
			return 0, 0, 0, fmt.Errorf("%w: special regex: %v", ErrInvalidRegex, merr)
		}
		if m == nil {
			break
		}
		spelling := m.String()
		// The special pattern is a pure literal alternation (no anchors or
		// quantifiers to make position context-sensitive), so the byte
		// offset of the match is exactly the first textual occurrence of
		// its spelling from find onward. This sidesteps regexp2's Match
		// offsets being expressed in runes rather than bytes.
		rel := strings.Index(text[find:], spelling)
		if rel < 0 {
			rel = 0
		}
		absStart := find + rel
		if _, ok := allowed[spelling]; ok {
			return absStart, t.specialEnc[spelling], len(spelling), nil
		}
		best := ""
		for s := range allowed {
			if _, known := t.specialEnc[s]; known && len(s) > len(best) && strings.HasPrefix(text[absStart:], s) {
				best = s
			}
		}
		if best != "" {
			return absStart, t.specialEnc[best], len(best), nil
		}
		find = absStart + 1
	}
	return len(text), 0, 0, nil
}
