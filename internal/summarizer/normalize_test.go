package summarizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"only whitespace", "  \n\t ", ""},
		{"only symbols", "  @@@ ### ", ""},
		{"collapse whitespace", "  hello \n\t world   ", "hello world"},
		{"keeps sentence punctuation", "Wait... what?! Yes, well-known.", "Wait... what?! Yes, well-known."},
		{"drops other punctuation", "Hello, world! (test) #1 — ok?", "Hello, world! test 1 ok?"},
		{"drops apostrophes and underscores", "it's a snake_case name", "its a snakecase name"},
		{"keeps unicode letters", "Zoë résumé über", "Zoë résumé über"},
		{"composes decomposed accents", "cafe\u0301", "caf\u00e9"},
		{"symbol between spaces", "a @ b", "a b"},
		{"digits", "Pi is 3.14", "Pi is 3.14"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"a @ b",
		" x  y ",
		"ᄀ$ᅡ",
		"The cat sat.\n\nThe cat sat on the mat.",
		"<p>Some &amp; HTML</p>",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func FuzzNormalize(f *testing.F) {
	f.Add("")
	f.Add("hello   world")
	f.Add("a @ b")
	f.Add("cafe\u0301")
	f.Add("ᄀ$ᅡ")
	f.Add("\xff\xfe")

	f.Fuzz(func(t *testing.T, s string) {
		once := Normalize(s)
		if twice := Normalize(once); twice != once {
			t.Errorf("not idempotent:\n  once  = %q\n  twice = %q", once, twice)
		}
	})
}
