package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/arthur-debert/bookfmt/pkg/book"
	"github.com/arthur-debert/bookfmt/pkg/errors"
	"github.com/beevik/etree"
)

// Serialize encodes doc in the format named by mode
func Serialize(doc book.Document, mode string, opts Options) (string, error) {
	enc, err := ParseEncoding(mode)
	if err != nil {
		return "", err
	}

	switch enc {
	case EncodingJSON:
		return SerializeJSON(doc, opts)
	case EncodingXML:
		return SerializeXML(doc, opts)
	default:
		return "", errors.Newf(errors.ErrInternal, "no serializer for %s", enc)
	}
}

// SerializeJSON renders {"title": ..., "content": ...} with title first
func SerializeJSON(doc book.Document, opts Options) (string, error) {
	title, err := quoteJSON(doc.Title, opts.ASCII)
	if err != nil {
		return "", err
	}
	content, err := quoteJSON(doc.Content, opts.ASCII)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`{"title": %s, "content": %s}`, title, content), nil
}

// quoteJSON returns s as a JSON string literal. HTML characters are left
// alone; with ascii set every rune above U+007F becomes a \u escape.
func quoteJSON(s string, ascii bool) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode JSON string")
	}
	quoted := strings.TrimSuffix(buf.String(), "\n")
	if !ascii {
		return quoted, nil
	}

	var b strings.Builder
	b.Grow(len(quoted))
	for _, r := range quoted {
		if r < utf8.RuneSelf {
			b.WriteRune(r)
			continue
		}
		for _, unit := range utf16.Encode([]rune{r}) {
			fmt.Fprintf(&b, `\u%04x`, unit)
		}
	}
	return b.String(), nil
}

// SerializeXML renders <book><title>..</title><content>..</content></book>
// without indentation
func SerializeXML(doc book.Document, opts Options) (string, error) {
	tree := etree.NewDocument()
	if opts.XMLDeclaration {
		tree.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	}
	// Canonical text escapes only &, < and > (and \r, so it survives parsing).
	tree.WriteSettings.CanonicalText = true

	root := tree.CreateElement("book")
	root.CreateElement("title").SetText(doc.Title)
	root.CreateElement("content").SetText(doc.Content)

	out, err := tree.WriteToString()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to write XML")
	}
	return out, nil
}
