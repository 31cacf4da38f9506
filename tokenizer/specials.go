package tokenizer

// Special-token registries for the bundled encodings. Each is a concrete
// instance of spec.md §3's special_encoder table: literal spellings that
// must be emitted atomically when the caller allow-lists them.
var (
	specialsGPT2 = map[string]Rank{
		"<|endoftext|>": 50256,
	}

	specialsCl100kBase = map[string]Rank{
		"<|endoftext|>":   100257,
		"<|fim_prefix|>":  100258,
		"<|fim_middle|>":  100259,
		"<|fim_suffix|>":  100260,
		"<|endofprompt|>": 100276,
	}

	specialsO200kBase = map[string]Rank{
		"<|endoftext|>":   199999,
		"<|endofprompt|>": 200018,
	}
)

// SpecialTokens returns a copy of the special-token table bundled for the
// named encoding, or nil if name isn't one of the bundled encodings.
func SpecialTokens(name string) map[string]Rank {
	var src map[string]Rank
	switch name {
	case "gpt2":
		src = specialsGPT2
	case "cl100k_base":
		src = specialsCl100kBase
	case "o200k_base":
		src = specialsO200kBase
	default:
		return nil
	}
	out := make(map[string]Rank, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
