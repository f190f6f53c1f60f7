package summarizer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"articlesum/internal/stopwords"
)

func TestFrequencyScorerSingleWord(t *testing.T) {
	s := NewFrequencyScorer(stopwords.New(), nil)
	assert.Equal(t, Frequencies{"a": 1.0}, s.Build("a a a"))
}

func TestFrequencyScorerFiltersStopwords(t *testing.T) {
	s := NewFrequencyScorer(stopwords.English(), TreebankTokenizer{})
	freq := s.Build("The cat sat. The cat sat on the mat.")

	assert.Equal(t, Frequencies{"cat": 1.0, "sat": 1.0, "mat": 0.5}, freq)
	assert.Zero(t, freq.Get("the"))
	assert.Zero(t, freq.Get("unseen"))
}

func TestFrequencyScorerEmpty(t *testing.T) {
	s := NewFrequencyScorer(stopwords.English(), nil)
	for _, text := range []string{"", "the and of", "!!! ... ---"} {
		freq := s.Build(text)
		assert.Empty(t, freq, text)
		assert.Zero(t, freq.Get("anything"))
	}
}

func TestFrequencyScorerIsCaseInsensitive(t *testing.T) {
	s := NewFrequencyScorer(stopwords.New(), nil)
	freq := s.Build("Go go GO rust")
	assert.Equal(t, 1.0, freq.Get("go"))
	assert.InDelta(t, 1.0/3.0, freq.Get("rust"), 1e-9)
	assert.Zero(t, freq.Get("Go"))
}

func TestFrequenciesBounds(t *testing.T) {
	s := NewFrequencyScorer(stopwords.English(), nil)
	freq := s.Build(sampleArticle)
	if assert.NotEmpty(t, freq) {
		maxV, minV := 0.0, 2.0
		for _, v := range freq {
			maxV = max(maxV, v)
			minV = min(minV, v)
		}
		assert.Equal(t, 1.0, maxV)
		assert.Greater(t, minV, 0.0)
	}
}

func TestNilFrequenciesGet(t *testing.T) {
	var f Frequencies
	assert.Zero(t, f.Get("x"))
}
