package tokenizer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnownEncodingsListsAllPresets(t *testing.T) {
	names := KnownEncodings()
	assert.ElementsMatch(t, []string{"gpt2", "cl100k_base", "o200k_base"}, names)
}

func TestLoadEncodingRejectsUnknownName(t *testing.T) {
	cfg := Config{CacheDir: t.TempDir(), Offline: true, HTTPTimeout: time.Second}
	_, err := LoadEncoding(cfg, "not-a-real-encoding")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSpecialTokensKnownAndUnknown(t *testing.T) {
	assert.Equal(t, map[string]Rank{"<|endoftext|>": 50256}, SpecialTokens("gpt2"))
	assert.Nil(t, SpecialTokens("not-a-real-encoding"))

	// Mutating the returned table must not affect the package's own copy.
	got := SpecialTokens("gpt2")
	got["<|endoftext|>"] = 0
	assert.Equal(t, Rank(50256), SpecialTokens("gpt2")["<|endoftext|>"])
}
