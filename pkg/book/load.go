package book

import (
	"encoding/json"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/bookfmt/pkg/errors"
	"github.com/arthur-debert/bookfmt/pkg/logging"
	"github.com/beevik/etree"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Supported document file extensions
const (
	ExtTOML = ".toml"
	ExtYAML = ".yaml"
	ExtYML  = ".yml"
	ExtJSON = ".json"
	ExtXML  = ".xml"
)

// Load reads a document from path. The format is picked by extension.
func Load(path string) (Document, error) {
	log := logging.GetLogger("book.Load")

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ExtTOML, ExtYAML, ExtYML, ExtJSON, ExtXML:
	default:
		return Document{}, errors.Newf(errors.ErrInvalidInput, "unsupported book file extension %q", ext).
			WithDetail("path", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return Document{}, errors.Wrap(err, errors.ErrFileNotFound, "book file not found").
				WithDetail("path", path)
		}
		return Document{}, errors.Wrap(err, errors.ErrFileAccess, "failed to read book file").
			WithDetail("path", path)
	}

	doc, err := Parse(ext, data)
	if err != nil {
		return Document{}, errors.Wrapf(err, errors.ErrParse, "failed to parse %s", path).
			WithDetail("path", path)
	}

	log.Debug().
		Str("path", path).
		Str("title", doc.Title).
		Int("contentLength", len(doc.Content)).
		Msg("Loaded book")
	return doc, nil
}

// Parse decodes a document from data in the format named by ext.
func Parse(ext string, data []byte) (Document, error) {
	var doc Document
	switch strings.ToLower(ext) {
	case ExtTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return Document{}, err
		}
	case ExtYAML, ExtYML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Document{}, err
		}
	case ExtJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return Document{}, err
		}
	case ExtXML:
		return parseXML(data)
	default:
		return Document{}, errors.Newf(errors.ErrInvalidInput, "unsupported book format %q", ext)
	}
	return doc, nil
}

// parseXML reads the <book><title/><content/></book> shape written by the
// xml serializer.
func parseXML(data []byte) (Document, error) {
	tree := etree.NewDocument()
	if err := tree.ReadFromBytes(data); err != nil {
		return Document{}, err
	}
	root := tree.Root()
	if root == nil || root.Tag != "book" {
		return Document{}, errors.New(errors.ErrParse, "root element must be <book>")
	}

	var doc Document
	if el := root.SelectElement("title"); el != nil {
		doc.Title = el.Text()
	}
	if el := root.SelectElement("content"); el != nil {
		doc.Content = el.Text()
	}
	return doc, nil
}
