package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// TestConcurrentEncodeIsSafe drives many goroutines through Encode and
// Decode against one shared Tokenizer, per the type's concurrency contract:
// built once, read many times, no locking required.
func TestConcurrentEncodeIsSafe(t *testing.T) {
	tok := newFixtureTokenizer(t)
	texts := []string{
		"aab hello<|end|>ab",
		"a b a b a",
		"hello hello hello",
		"<|end|>ab<|end|>",
	}
	allow := allowSet("<|end|>")

	var g errgroup.Group
	results := make([][]Rank, len(texts))
	for i, text := range texts {
		i, text := i, text
		g.Go(func() error {
			for n := 0; n < 200; n++ {
				got, err := tok.Encode(text, allow)
				if err != nil {
					return err
				}
				if n == 0 {
					results[i] = got
				} else if !equalRanks(results[i], got) {
					t.Errorf("nondeterministic encode for %q", text)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i, text := range texts {
		back, err := tok.Decode(results[i])
		require.NoError(t, err)
		assert.Equal(t, text, back)
	}
}

func equalRanks(a, b []Rank) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
