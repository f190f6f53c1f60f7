package summarizer

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// Splitter segments text into sentences, preserving input order.
type Splitter interface {
	Split(text string) []string
}

// PunktSplitter uses the pre-trained English punkt model, which knows common
// abbreviations and does not break on decimal points.
type PunktSplitter struct {
	mu        sync.Mutex
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewPunktSplitter loads the English punkt model.
func NewPunktSplitter() (*PunktSplitter, error) {
	t, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("load punkt model: %w", err)
	}
	return &PunktSplitter{tokenizer: t}, nil
}

func (p *PunktSplitter) Split(text string) []string {
	// the punkt tokenizer makes no concurrency guarantees
	p.mu.Lock()
	tokens := p.tokenizer.Tokenize(text)
	p.mu.Unlock()

	out := make([]string, 0, len(tokens))
	for _, s := range tokens {
		if t := strings.TrimSpace(s.Text); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// RegexSplitter breaks after every run of terminal punctuation. It knows
// nothing about abbreviations; text after the last terminator becomes the
// final sentence.
type RegexSplitter struct {
	pattern *regexp.Regexp
}

func NewRegexSplitter() *RegexSplitter {
	return &RegexSplitter{pattern: regexp.MustCompile(`[^.!?]+[.!?]+`)}
}

func (s *RegexSplitter) Split(text string) []string {
	var out []string
	last := 0
	for _, loc := range s.pattern.FindAllStringIndex(text, -1) {
		if t := strings.TrimSpace(text[loc[0]:loc[1]]); t != "" {
			out = append(out, t)
		}
		last = loc[1]
	}
	if t := strings.TrimSpace(text[last:]); t != "" {
		out = append(out, t)
	}
	return out
}
