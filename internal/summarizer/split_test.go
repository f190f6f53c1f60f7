package summarizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPunktSplitter(t *testing.T) {
	p, err := NewPunktSplitter()
	require.NoError(t, err)

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", []string{}},
		{"no boundary", "just one clause without an ending", []string{"just one clause without an ending"}},
		{"three sentences", "The cat sat. The cat sat on the mat. Cats are great!", []string{
			"The cat sat.", "The cat sat on the mat.", "Cats are great!",
		}},
		{"decimal point", "The book cost 3.50 dollars. He paid in cash.", []string{
			"The book cost 3.50 dollars.", "He paid in cash.",
		}},
		{"abbreviation", "Mr. Smith bought the book. He was happy.", []string{
			"Mr. Smith bought the book.", "He was happy.",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Split(tt.input))
		})
	}
}

func TestRegexSplitter(t *testing.T) {
	s := NewRegexSplitter()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"no boundary", "no terminator here", []string{"no terminator here"}},
		{"terminator clusters", "What?! Really... Yes.", []string{"What?!", "Really...", "Yes."}},
		{"trailing text kept", "One. Two", []string{"One.", "Two"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Split(tt.input))
		})
	}
}
