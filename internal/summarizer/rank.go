package summarizer

import "sort"

// Ranker scores sentences against a frequency map.
type Ranker struct {
	words WordTokenizer
}

func NewRanker(words WordTokenizer) Ranker {
	if words == nil {
		words = TreebankTokenizer{}
	}
	return Ranker{words: words}
}

// Rank returns one score per sentence: the summed importance of the
// sentence's alphanumeric words divided by how many such words it has.
// Sentences without alphanumeric words score 0.
func (r Ranker) Rank(sentences []string, freq Frequencies) []float64 {
	scores := make([]float64, len(sentences))
	for i, sent := range sentences {
		words := alnumWords(r.words, sent)
		if len(words) == 0 {
			continue
		}
		sum := 0.0
		for _, w := range words {
			sum += freq.Get(w)
		}
		scores[i] = sum / float64(len(words))
	}
	return scores
}

// SelectTop picks the k best-scoring sentence indices and returns them in
// original order. Equal scores prefer the earlier sentence.
func SelectTop(scores []float64, k int) []int {
	idx := make([]int, len(scores))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return scores[idx[a]] > scores[idx[b]] })

	if k < 0 {
		k = 0
	}
	if k > len(idx) {
		k = len(idx)
	}
	selected := idx[:k]
	sort.Ints(selected)
	return selected
}
