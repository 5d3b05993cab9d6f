package domain

import (
	"strings"
	"unicode"
)

// NormalizeWord prepares a word for lookup and journaling:
//   - trims leading/trailing whitespace
//   - compresses runs of whitespace into a single space
//
// Case is preserved: WordsAPI has distinct entries such as "NASA" and "nasa".
// Diacritics, hyphens, and apostrophes are preserved too.
func NormalizeWord(word string) string {
	word = strings.TrimSpace(word)
	if word == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(word))
	prevSpace := false
	for _, r := range word {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteByte(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
