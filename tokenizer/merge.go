package tokenizer

import "sync"

// Rank is both a vocabulary token id and, within the ordinary encoder, the
// merge priority for that token's spelling: lower ranks merge first.
type Rank = uint32

// noRank marks a window whose substring has no entry in the rank table, or
// whose window is not yet defined because too few parts remain.
const noRank = ^Rank(0)

// part is one boundary candidate in the byte-pair merge working set: the
// byte offset where it starts, and the rank cached for the two-part window
// that begins at this offset — i.e. the rank of folding this part together
// with its immediate right neighbor.
type part struct {
	start int
	rank  Rank
}

var partsPool = sync.Pool{
	New: func() any { b := make([]part, 0, 64); return &b },
}

func acquireParts(capHint int) *[]part {
	p := partsPool.Get().(*[]part)
	if cap(*p) < capHint {
		buf := make([]part, 0, capHint)
		return &buf
	}
	*p = (*p)[:0]
	return p
}

func releaseParts(p *[]part) {
	// Don't let one pathologically long piece pin a huge buffer in the pool.
	if cap(*p) > 1<<12 {
		return
	}
	partsPool.Put(p)
}

// rankOf reports the rank of piece[parts[i].start:parts[i+3].start], the
// window a merge at i would span once its right neighbor folds in. It is
// noRank both when that substring is absent from ranks and when fewer than
// three parts remain after i to define the window.
func rankOf(piece string, parts []part, ranks map[string]Rank, i int) Rank {
	if i+3 >= len(parts) {
		return noRank
	}
	if r, ok := ranks[piece[parts[i].start:parts[i+3].start]]; ok {
		return r
	}
	return noRank
}

// bytePairMerge runs the greedy rank-ordered merge: repeatedly fold the
// leftmost minimum-rank window until every remaining window is unranked,
// then return the surviving parts, sentinels included. Adjacent starts
// delimit one final token each; the last part's start always equals
// len(piece).
//
// piece must be non-empty — callers enforce this (see BytePairEncode).
func bytePairMerge(piece string, ranks map[string]Rank) []part {
	pp := acquireParts(len(piece) + 2)
	parts := *pp

	minRank, minIdx := noRank, -1
	for i := 0; i < len(piece)-1; i++ {
		r, ok := ranks[piece[i:i+2]]
		if !ok {
			r = noRank
		}
		if r < minRank {
			minRank, minIdx = r, i
		}
		parts = append(parts, part{start: i, rank: r})
	}
	parts = append(parts, part{start: len(piece) - 1, rank: noRank})
	parts = append(parts, part{start: len(piece), rank: noRank})

	for minRank != noRank {
		i := minIdx

		// Recompute the (at most two) windows that touch the part we are
		// about to remove, then splice it out. This is the whole algorithm:
		// one merge invalidates at most two cached ranks.
		if i > 0 {
			parts[i-1].rank = rankOf(piece, parts, ranks, i-1)
		}
		parts[i].rank = rankOf(piece, parts, ranks, i)
		parts = append(parts[:i+1], parts[i+2:]...)

		minRank, minIdx = noRank, -1
		for j := 0; j < len(parts)-1; j++ {
			if parts[j].rank < minRank {
				minRank, minIdx = parts[j].rank, j
			}
		}
	}

	out := make([]part, len(parts))
	copy(out, parts)
	*pp = parts
	releaseParts(pp)
	return out
}
