//go:build !goexperiment.arenas

package tokenizer

import "fmt"

// heapStore is a plain slice-of-slices decoder: one []byte per rank,
// indexed directly. It is the default store, used whenever the arena
// experiment isn't enabled at build time.
type heapStore struct {
	arr [][]byte
}

func newTokenStore(encoder map[string]Rank) (tokenStore, error) {
	maxID := Rank(0)
	for _, id := range encoder {
		if id > maxID {
			maxID = id
		}
	}
	size := int(maxID) + 1
	arr := make([][]byte, size)
	seen := make([]bool, size)
	for spelling, id := range encoder {
		if seen[id] {
			return nil, fmt.Errorf("%w: id %d assigned to both %q and %q", ErrInvalidVocabulary, id, string(arr[id]), spelling)
		}
		seen[id] = true
		arr[id] = []byte(spelling)
	}
	return &heapStore{arr: arr}, nil
}

func (s *heapStore) AppendInto(dst *[]byte, id Rank) bool {
	if int(id) >= len(s.arr) {
		return false
	}
	b := s.arr[id]
	if b == nil {
		return false
	}
	*dst = append(*dst, b...)
	return true
}
