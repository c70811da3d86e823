package config

import (
	"github.com/arthur-debert/bookfmt/pkg/book"
	"github.com/arthur-debert/bookfmt/pkg/formatter"
)

// Config is the resolved bookfmt configuration
type Config struct {
	Book     Book     `koanf:"book"`
	Commands []string `koanf:"commands"`
	JSON     JSON     `koanf:"json"`
	XML      XML      `koanf:"xml"`
	Logging  Logging  `koanf:"logging"`
}

// Book describes the default document
type Book struct {
	Title   string `koanf:"title"`
	Content string `koanf:"content"`
	// File, when set, takes precedence over Title and Content
	File string `koanf:"file"`
}

// JSON holds JSON serializer settings
type JSON struct {
	ASCII bool `koanf:"ascii"`
}

// XML holds XML serializer settings
type XML struct {
	Declaration bool `koanf:"declaration"`
}

// Logging holds logger settings
type Logging struct {
	File      string `koanf:"file"`
	Verbosity int    `koanf:"verbosity"`
}

// Document returns the configured book, loading Book.File when set
func (c *Config) Document() (book.Document, error) {
	if c.Book.File != "" {
		return book.Load(c.Book.File)
	}
	return book.New(c.Book.Title, c.Book.Content), nil
}

// DefaultCommands parses the configured command sequence
func (c *Config) DefaultCommands() ([]formatter.Command, error) {
	return formatter.ParseCommands(c.Commands)
}

// FormatterOptions maps serializer settings onto formatter options
func (c *Config) FormatterOptions() formatter.Options {
	return formatter.Options{
		ASCII:          c.JSON.ASCII,
		XMLDeclaration: c.XML.Declaration,
	}
}
