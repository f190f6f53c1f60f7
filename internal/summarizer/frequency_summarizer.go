// Package summarizer implements frequency-based extractive summarization:
// text is normalized, split into sentences, every sentence is scored by the
// average importance of its words and the best ones are kept in their
// original order.
//
// A FrequencySummarizer holds only read-only state and is safe for concurrent
// use by multiple goroutines.
package summarizer

import (
	"fmt"
	"strings"

	"articlesum/internal/stopwords"
)

// FrequencySummarizer ranks sentences by word frequency (stopwords filtered).
type FrequencySummarizer struct {
	splitter Splitter
	scorer   *FrequencyScorer
	ranker   Ranker
}

// Option customizes a FrequencySummarizer.
type Option func(*options)

type options struct {
	splitter Splitter
	words    WordTokenizer
}

// WithSplitter replaces the default punkt sentence splitter.
func WithSplitter(s Splitter) Option {
	return func(o *options) { o.splitter = s }
}

// WithWordTokenizer replaces the default treebank word tokenizer.
func WithWordTokenizer(w WordTokenizer) Option {
	return func(o *options) { o.words = w }
}

// NewFrequencySummarizer creates a summarizer that ignores the given stopwords.
// Without WithSplitter it loads the English punkt model.
func NewFrequencySummarizer(stop stopwords.Set, opts ...Option) (*FrequencySummarizer, error) {
	o := options{words: TreebankTokenizer{}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.splitter == nil {
		p, err := NewPunktSplitter()
		if err != nil {
			return nil, err
		}
		o.splitter = p
	}
	return &FrequencySummarizer{
		splitter: o.splitter,
		scorer:   NewFrequencyScorer(stop, o.words),
		ranker:   NewRanker(o.words),
	}, nil
}

// Summarize returns the maxSentences highest-ranked sentences of text joined
// by single spaces. When text has no more than maxSentences sentences the
// whole normalized text is returned.
func (s *FrequencySummarizer) Summarize(text string, maxSentences int) (string, error) {
	if maxSentences < 1 {
		return "", &Error{Kind: KindInvalidSentenceCount, Detail: fmt.Sprintf("got %d, need at least 1", maxSentences)}
	}

	text = Normalize(text)
	sentences := s.splitter.Split(text)
	if len(sentences) == 0 {
		return "", ErrEmptyDocument
	}
	if len(sentences) <= maxSentences {
		return text, nil
	}

	freq := s.scorer.Build(text)
	scores := s.ranker.Rank(sentences, freq)

	selected := SelectTop(scores, maxSentences)
	out := make([]string, len(selected))
	for i, idx := range selected {
		out[i] = sentences[idx]
	}
	return strings.Join(out, " "), nil
}
