package summarizer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// WordTokenizer splits text into word and punctuation tokens.
type WordTokenizer interface {
	Tokenize(text string) []string
}

// TreebankTokenizer is a small Penn Treebank style word tokenizer: it splits on
// whitespace, separates surrounding punctuation and splits English clitics
// ("don't" -> "do", "n't"). Tokens keep their inner hyphens and dots, so
// "well-known" and "3.5" stay single, non-alphanumeric tokens.
type TreebankTokenizer struct{}

func (TreebankTokenizer) Tokenize(text string) []string {
	fields := strings.Fields(text)
	out := make([]string, 0, len(fields)+len(fields)/4)
	for _, f := range fields {
		for _, piece := range splitPunct(f) {
			out = appendPiece(out, piece)
		}
	}
	return out
}

// splitPunct breaks a field at punctuation that never belongs inside a word.
// Separators are returned as their own pieces. A comma followed by a digit is
// kept ("3,000").
func splitPunct(f string) []string {
	var pieces []string
	start := 0
	for i, r := range f {
		sep := false
		switch r {
		case '!', '?', ';', ':', '"', '(', ')', '[', ']', '{', '}':
			sep = true
		case ',':
			next, _ := utf8.DecodeRuneInString(f[i+1:])
			sep = !unicode.IsDigit(next)
		}
		if !sep {
			continue
		}
		if start < i {
			pieces = append(pieces, f[start:i])
		}
		pieces = append(pieces, f[i:i+utf8.RuneLen(r)])
		start = i + utf8.RuneLen(r)
	}
	if start < len(f) {
		pieces = append(pieces, f[start:])
	}
	return pieces
}

// appendPiece peels leading and trailing non-word runes off piece, then splits
// clitics from what remains.
func appendPiece(out []string, piece string) []string {
	start := 0
	for start < len(piece) {
		r, size := utf8.DecodeRuneInString(piece[start:])
		if isWordRune(r) {
			break
		}
		out = append(out, piece[start:start+size])
		start += size
	}
	if start == len(piece) {
		return out
	}

	end := len(piece)
	var trailing []string
	for end > start {
		r, size := utf8.DecodeLastRuneInString(piece[start:end])
		if isWordRune(r) {
			break
		}
		trailing = append(trailing, piece[end-size:end])
		end -= size
	}

	out = append(out, splitClitic(piece[start:end])...)
	for i := len(trailing) - 1; i >= 0; i-- {
		out = append(out, trailing[i])
	}
	return out
}

var clitics = []string{"n't", "'s", "'re", "'ve", "'ll", "'d", "'m"}

func splitClitic(word string) []string {
	for _, c := range clitics {
		cut := len(word) - len(c)
		if cut > 0 && strings.EqualFold(word[cut:], c) {
			return []string{word[:cut], word[cut:]}
		}
	}
	return []string{word}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

// isAlnum reports whether tok is non-empty and made only of letters and numbers.
func isAlnum(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if !isWordRune(r) {
			return false
		}
	}
	return true
}

// alnumWords lowercases text, tokenizes it and keeps alphanumeric tokens.
func alnumWords(words WordTokenizer, text string) []string {
	tokens := words.Tokenize(strings.ToLower(text))
	out := tokens[:0]
	for _, t := range tokens {
		if isAlnum(t) {
			out = append(out, t)
		}
	}
	return out
}
