package tokenizer

import "fmt"

// BytePairEncode applies the byte-pair merge to a single already-split piece
// and translates the result into vocabulary ids via ranks. It is exposed for
// callers who perform their own splitting and hand the core pre-cut pieces.
//
// It fails if piece is empty, or if any segment the merge produces (down to
// single bytes) has no entry in ranks — a malformed-vocabulary condition,
// since every byte actually reachable as a merge leftover must be rankable.
func BytePairEncode(piece string, ranks map[string]Rank) ([]Rank, error) {
	if len(piece) == 0 {
		return nil, fmt.Errorf("%w: empty piece passed to BytePairEncode", ErrInvalidArgument)
	}
	if r, ok := ranks[piece]; ok {
		return []Rank{r}, nil
	}
	parts := bytePairMerge(piece, ranks)
	out := make([]Rank, 0, len(parts)-1)
	for i := 0; i+1 < len(parts); i++ {
		seg := piece[parts[i].start:parts[i+1].start]
		r, ok := ranks[seg]
		if !ok {
			return nil, fmt.Errorf("%w: merge segment %q has no rank", ErrInvalidVocabulary, seg)
		}
		out = append(out, r)
	}
	return out, nil
}

// encodePiece is the tokenizer-bound form of BytePairEncode: it shortcuts on
// the whole-piece vocabulary hit using the tokenizer's own encoder, falling
// back to the shared merge otherwise. Piece must be non-empty; the driver
// never hands it an empty slice.
func (t *Tokenizer) encodePiece(piece string) ([]Rank, error) {
	return BytePairEncode(piece, t.encoder)
}
