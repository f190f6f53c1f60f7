package summarizer

import (
	"articlesum/internal/stopwords"
)

// Frequencies maps a lowercase content word to its importance in (0, 1].
// The most frequent word(s) map to exactly 1.
type Frequencies map[string]float64

// Get returns the importance of word, or 0 when the word is not in the map.
func (f Frequencies) Get(word string) float64 {
	if v, ok := f[word]; ok {
		return v
	}
	return 0
}

// FrequencyScorer builds word-importance maps, ignoring stopwords.
type FrequencyScorer struct {
	stopwords stopwords.Set
	words     WordTokenizer
}

func NewFrequencyScorer(stop stopwords.Set, words WordTokenizer) *FrequencyScorer {
	if words == nil {
		words = TreebankTokenizer{}
	}
	return &FrequencyScorer{stopwords: stop, words: words}
}

// Build counts alphanumeric non-stopword tokens of text and divides every
// count by the highest one.
func (s *FrequencyScorer) Build(text string) Frequencies {
	counts := map[string]int{}
	for _, tok := range alnumWords(s.words, text) {
		if s.stopwords.Contains(tok) {
			continue
		}
		counts[tok]++
	}

	maxCount := 1
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	freq := make(Frequencies, len(counts))
	for tok, c := range counts {
		freq[tok] = float64(c) / float64(maxCount)
	}
	return freq
}
