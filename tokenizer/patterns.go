package tokenizer

// Word-splitting patterns for the three public GPT-family encodings. These
// are handed to New/LoadEncoding verbatim as the pattern argument — the
// core itself treats pattern as opaque caller input (spec.md §4.1's escape
// helper and §4.2's merger never inspect it).
const (
	// PatternGPT2 is the original GPT-2 pre-tokenization pattern: ASCII
	// contractions, then runs of letters, digits, or other symbols, then
	// whitespace.
	PatternGPT2 = `'s|'t|'re|'ve|'m|'ll|'d| ?\p{L}+| ?\p{N}+| ?[^\s\p{L}\p{N}]+|\s+(?!\S)|\s+`

	// PatternCl100kBase adds case-insensitive contraction suffixes and caps
	// digit runs at three, relative to PatternGPT2.
	PatternCl100kBase = `(?i:'s|'t|'re|'ve|'m|'ll|'d)|[^\r\n\p{L}\p{N}]?\p{L}+|\p{N}{1,3}| ?[^\s\p{L}\p{N}]+[\r\n]*|\s*[\r\n]+|\s+(?!\S)|\s+`

	// PatternO200kBase further splits a letter run into an optional
	// uppercase/titlecase prefix and a lowercase tail, so CJK scripts and
	// capitalization boundaries segment the way o200k_base expects.
	PatternO200kBase = `[^\r\n\p{L}\p{N}]?[\p{Lu}\p{Lt}\p{Lm}\p{Lo}\p{M}]*[\p{Ll}\p{Lm}\p{Lo}\p{M}]+(?i:'s|'t|'re|'ve|'m|'ll|'d)?|[^\r\n\p{L}\p{N}]?[\p{Lu}\p{Lt}\p{Lm}\p{Lo}\p{M}]+[\p{Ll}\p{Lm}\p{Lo}\p{M}]*(?i:'s|'t|'re|'ve|'m|'ll|'d)?|\p{N}{1,3}| ?[^\s\p{L}\p{N}]+[\r\n/]*|\s*[\r\n]+|\s+(?!\S)|\s+`
)
