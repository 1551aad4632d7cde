package field

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalize converts a candidate field name into the hyphenated word form
// conventional for header names. Underscores and hyphens are treated as word
// separators, the first letter of each word is upper-cased with the rest of
// the word left alone, and the words are joined back together with hyphens:
//
//	content_type       -> Content-Type
//	x-my_custom-header -> X-My-Custom-Header
//
// Normalize is idempotent.
func Normalize(name string) string {
	spaced := strings.Map(func(r rune) rune {
		if r == '_' || r == '-' {
			return ' '
		}
		return r
	}, name)

	words := strings.Split(spaced, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}

	return strings.Join(words, "-")
}
