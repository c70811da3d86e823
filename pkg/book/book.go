// Package book holds the document being formatted: an immutable
// title/content pair, plus helpers to derive views of it and to load it
// from disk.
package book

// Document is the (title, content) pair a formatter works on. It is passed
// by value; derived views such as the reversed content are new strings.
type Document struct {
	Title   string `json:"title" toml:"title" yaml:"title" koanf:"title"`
	Content string `json:"content" toml:"content" yaml:"content" koanf:"content"`
}

// New creates a document from a title and content.
func New(title, content string) Document {
	return Document{Title: title, Content: content}
}

// Reversed returns the content reversed by code point.
func (d Document) Reversed() string {
	return Reverse(d.Content)
}

// Reverse reverses s by Unicode code point. Invalid UTF-8 bytes decode to
// U+FFFD, so the involution holds for valid UTF-8 only.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
