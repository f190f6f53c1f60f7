package summarizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTreebankTokenizer(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", []string{}},
		{"punctuation split", "Hello, world! Don't stop.", []string{"Hello", ",", "world", "!", "Do", "n't", "stop", "."}},
		{"inner hyphen and decimal kept", "a well-known 3.5 rating", []string{"a", "well-known", "3.5", "rating"}},
		{"thousands comma kept", "3,000 people", []string{"3,000", "people"}},
		{"comma without space", "cats,dogs", []string{"cats", ",", "dogs"}},
		{"quotes and parens", `"(quoted)"`, []string{`"`, "(", "quoted", ")", `"`}},
		{"possessive", "John's book", []string{"John", "'s", "book"}},
		{"lone clitic untouched", "'s", []string{"'", "s"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TreebankTokenizer{}.Tokenize(tt.input))
		})
	}
}

func TestAlnumWords(t *testing.T) {
	got := alnumWords(TreebankTokenizer{}, "The well-known Cat, 42 times!")
	assert.Equal(t, []string{"the", "cat", "42", "times"}, got)
}

func TestIsAlnum(t *testing.T) {
	assert.True(t, isAlnum("abc123"))
	assert.True(t, isAlnum("über"))
	assert.False(t, isAlnum(""))
	assert.False(t, isAlnum("n't"))
	assert.False(t, isAlnum("3.5"))
}
