package book_test

import (
	"testing"

	"github.com/arthur-debert/bookfmt/pkg/book"
	"github.com/stretchr/testify/assert"
)

func TestReverse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"single rune", "a", "a"},
		{"sample content", "This is some sample content.", ".tnetnoc elpmas emos si sihT"},
		{"multibyte runes", "héllo wörld", "dlröw olléh"},
		{"astral plane", "a😀b", "b😀a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, book.Reverse(tt.in))
		})
	}
}

func TestReverse_Involution(t *testing.T) {
	inputs := []string{
		"",
		"x",
		"This is some sample content.",
		"日本語のテキスト",
		"tabs\tand\nnewlines\r\n",
		"mixed 😀 emoji 🎉 and ascii",
	}
	for _, s := range inputs {
		assert.Equal(t, s, book.Reverse(book.Reverse(s)), "input %q", s)
	}
}

func TestDocument_Reversed(t *testing.T) {
	doc := book.New("Sample Book", "abc")

	assert.Equal(t, "cba", doc.Reversed())
	assert.Equal(t, "abc", doc.Content, "document must not be mutated")
	assert.Equal(t, "Sample Book", doc.Title)
}
