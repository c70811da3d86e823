package formatter

import "github.com/arthur-debert/bookfmt/pkg/errors"

// ConsoleMode selects how display and print write the content
type ConsoleMode int

const (
	// ModeConsole writes the content verbatim
	ModeConsole ConsoleMode = iota
	// ModeReverse writes the content reversed by code point
	ModeReverse
)

// String returns the mode name
func (m ConsoleMode) String() string {
	switch m {
	case ModeConsole:
		return "console"
	case ModeReverse:
		return "reverse"
	default:
		return "unknown"
	}
}

// ParseConsoleMode parses a display or print mode. category names the action
// in the error message.
func ParseConsoleMode(category Action, s string) (ConsoleMode, error) {
	switch s {
	case "console":
		return ModeConsole, nil
	case "reverse":
		return ModeReverse, nil
	default:
		return 0, errors.InvalidMode(string(category), s)
	}
}

// Encoding selects the serialization format
type Encoding int

const (
	// EncodingJSON serializes to a JSON object
	EncodingJSON Encoding = iota
	// EncodingXML serializes to a <book> element
	EncodingXML
)

// String returns the encoding name
func (e Encoding) String() string {
	switch e {
	case EncodingJSON:
		return "json"
	case EncodingXML:
		return "xml"
	default:
		return "unknown"
	}
}

// ParseEncoding parses a serialize mode
func ParseEncoding(s string) (Encoding, error) {
	switch s {
	case "json":
		return EncodingJSON, nil
	case "xml":
		return EncodingXML, nil
	default:
		return 0, errors.InvalidMode(string(ActionSerialize), s)
	}
}
