//go:build goexperiment.arenas

package tokenizer

import (
	"arena"
	"fmt"
)

// arenaStore is the decoder store used when built with
// GOEXPERIMENT=arenas: every spelling lives in one contiguous arena blob
// addressed by an offset table, instead of one heap slice per rank.
// AppendInto always copies out of the arena so no arena-backed slice ever
// escapes to the regular heap.
type arenaStore struct {
	a    *arena.Arena
	blob []byte
	off  []uint32
}

func newTokenStore(encoder map[string]Rank) (tokenStore, error) {
	maxID := Rank(0)
	for _, id := range encoder {
		if id > maxID {
			maxID = id
		}
	}
	size := int(maxID) + 1

	lens := make([]int, size)
	seen := make([]bool, size)
	spellingByID := make([]string, size)
	total := 0
	for spelling, id := range encoder {
		if seen[id] {
			return nil, fmt.Errorf("%w: id %d assigned to both %q and %q", ErrInvalidVocabulary, id, spellingByID[id], spelling)
		}
		seen[id] = true
		spellingByID[id] = spelling
		lens[id] = len(spelling)
		total += len(spelling)
	}

	a := arena.NewArena()
	blob := arena.MakeSlice[byte](a, total, total)
	off := arena.MakeSlice[uint32](a, size+1, size+1)
	pos := 0
	for i := 0; i < size; i++ {
		off[i] = uint32(pos)
		if n := lens[i]; n > 0 {
			copy(blob[pos:pos+n], spellingByID[i])
			pos += n
		}
	}
	off[size] = uint32(pos)

	return &arenaStore{a: a, blob: blob, off: off}, nil
}

func (s *arenaStore) AppendInto(dst *[]byte, id Rank) bool {
	if int(id) >= len(s.off)-1 {
		return false
	}
	a := s.off[id]
	b := s.off[id+1]
	if a == b {
		return false
	}
	*dst = append(*dst, s.blob[a:b]...)
	return true
}

// Close frees the arena backing this store. Not part of the tokenStore
// interface — a Tokenizer normally lives for the process lifetime, but a
// caller building short-lived tokenizers in a loop (e.g. in tests) can
// recover the arena early via a type assertion.
func (s *arenaStore) Close() { s.a.Free() }
