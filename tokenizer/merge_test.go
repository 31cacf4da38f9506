package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallRanks() map[string]Rank {
	return map[string]Rank{
		"a":  0,
		"b":  1,
		"ab": 2,
	}
}

func TestBytePairEncodeWholePieceShortcut(t *testing.T) {
	got, err := BytePairEncode("ab", smallRanks())
	require.NoError(t, err)
	assert.Equal(t, []Rank{2}, got)
}

func TestBytePairEncodeMultiMerge(t *testing.T) {
	got, err := BytePairEncode("aab", smallRanks())
	require.NoError(t, err)
	assert.Equal(t, []Rank{0, 2}, got)
}

func TestBytePairEncodeLeftmostMinimumRankTieBreak(t *testing.T) {
	// "aaa" has two equally-ranked "aa" windows, at index 0 and 1. The
	// leftmost one folds first -> ["aa","a"]; the remaining window "aaa" is
	// not in ranks, so no further merge happens. A rightmost tie-break would
	// give ["a","aa"] instead.
	ranks := map[string]Rank{
		"a":  0,
		"aa": 5,
	}
	got, err := BytePairEncode("aaa", ranks)
	require.NoError(t, err)
	assert.Equal(t, []Rank{5, 0}, got)
}

func TestBytePairEncodeUnknownSegmentFails(t *testing.T) {
	ranks := map[string]Rank{"a": 0}
	_, err := BytePairEncode("ab", ranks)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidVocabulary)
}

func TestBytePairEncodeRejectsEmptyPiece(t *testing.T) {
	_, err := BytePairEncode("", smallRanks())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestBytePairMergeSingleByteHasSentinelsOnly(t *testing.T) {
	parts := bytePairMerge("a", map[string]Rank{"a": 0})
	require.Len(t, parts, 2)
	assert.Equal(t, 0, parts[0].start)
	assert.Equal(t, 1, parts[1].start)
}

func TestBytePairMergeCanonicalOrderMatchesPreferredRank(t *testing.T) {
	// "abc" with "ab" ranked lower (merges first) than "bc": the result
	// must reflect the rank order, not left-to-right scan order.
	ranksABFirst := map[string]Rank{"a": 0, "b": 1, "c": 2, "ab": 10, "bc": 20}
	gotAB, err := BytePairEncode("abc", ranksABFirst)
	require.NoError(t, err)

	ranksBCFirst := map[string]Rank{"a": 0, "b": 1, "c": 2, "ab": 20, "bc": 10}
	gotBC, err := BytePairEncode("abc", ranksBCFirst)
	require.NoError(t, err)

	assert.Equal(t, []Rank{10, 2}, gotAB)
	assert.Equal(t, []Rank{0, 10}, gotBC)
}
