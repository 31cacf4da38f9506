package tokenizer

import "strings"

// regexSpecialChars are the characters a regex engine treats as
// metacharacters; escapeRegex backslashes each one so a literal spelling can
// be OR'd into a union pattern without being reinterpreted.
const regexSpecialChars = `.^$|()[]{}*+?\`

// escapeRegex returns s with every regex metacharacter preceded by a single
// backslash. It is pure and allocates only the escaped result.
func escapeRegex(s string) string {
	if strings.IndexAny(s, regexSpecialChars) == -1 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if strings.IndexByte(regexSpecialChars, c) >= 0 {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}
