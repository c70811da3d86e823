package formatter

import (
	"fmt"
	"io"

	"github.com/arthur-debert/bookfmt/pkg/book"
	"github.com/arthur-debert/bookfmt/pkg/errors"
)

// Display writes the document content as a single line
func Display(w io.Writer, doc book.Document, mode string) error {
	m, err := ParseConsoleMode(ActionDisplay, mode)
	if err != nil {
		return err
	}
	return writeLines(w, body(doc, m))
}

// Print writes a header naming the book followed by the content
func Print(w io.Writer, doc book.Document, mode string) error {
	m, err := ParseConsoleMode(ActionPrint, mode)
	if err != nil {
		return err
	}

	header := fmt.Sprintf("Printing the book: %s...", doc.Title)
	if m == ModeReverse {
		header = fmt.Sprintf("Printing the book in reverse: %s...", doc.Title)
	}
	return writeLines(w, header, body(doc, m))
}

func body(doc book.Document, m ConsoleMode) string {
	if m == ModeReverse {
		return doc.Reversed()
	}
	return doc.Content
}

func writeLines(w io.Writer, lines ...string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return errors.Wrap(err, errors.ErrOutput, "failed to write output")
		}
	}
	return nil
}
