package summarizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize collapses whitespace runs to single spaces and drops every rune
// that is not a letter, a number, whitespace or one of ". , ! ? -".
// The result is NFC-composed and trimmed. Normalize is idempotent.
func Normalize(text string) string {
	text = norm.NFC.String(text)

	var b strings.Builder
	b.Grow(len(text))

	space := false
	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			if !space && b.Len() > 0 {
				b.WriteByte(' ')
				space = true
			}
		case keepRune(r):
			b.WriteRune(r)
			space = false
		}
		// dropped runes neither end nor start a whitespace run
	}

	// removing runes can leave composable neighbours (e.g. Hangul jamo)
	return strings.TrimSpace(norm.NFC.String(b.String()))
}

func keepRune(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsNumber(r) {
		return true
	}
	switch r {
	case '.', ',', '!', '?', '-':
		return true
	}
	return false
}
