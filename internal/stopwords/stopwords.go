// Package stopwords provides immutable stopword sets for frequency scoring.
package stopwords

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed english.txt
var englishList string

// Set is a read-only set of lowercase stopwords. The zero value is an empty set.
type Set struct {
	words map[string]struct{}
}

// New builds a set from the given words. Words are lowercased and trimmed;
// blanks are skipped.
func New(words ...string) Set {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		m[w] = struct{}{}
	}
	return Set{words: m}
}

// English returns the standard English stopword list.
func English() Set {
	return mustParse(englishList)
}

func mustParse(list string) Set {
	s, err := Parse(strings.NewReader(list))
	if err != nil {
		panic("stopwords: " + err.Error())
	}
	return s
}

// Parse reads one word per line. Lines starting with '#' are comments.
func Parse(r io.Reader) (Set, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := sc.Err(); err != nil {
		return Set{}, err
	}
	return New(words...), nil
}

// Load reads a stopword file from disk.
func Load(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return Set{}, err
	}
	defer f.Close()
	s, err := Parse(f)
	if err != nil {
		return Set{}, fmt.Errorf("parse stopwords %s: %w", path, err)
	}
	return s, nil
}

// Contains reports whether word (already lowercased) is a stopword.
func (s Set) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Len returns the number of stopwords.
func (s Set) Len() int { return len(s.words) }
