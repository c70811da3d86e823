package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort      = "Format a book for the console, JSON or XML"
	MsgRunShort       = "Run a sequence of action:mode commands"
	MsgDisplayShort   = "Write the book content (console or reverse)"
	MsgPrintShort     = "Write a header and the book content (console or reverse)"
	MsgSerializeShort = "Write the book as JSON or XML"
	MsgVersionShort   = "Print version information"

	// Example usages
	MsgDisplayExample   = "  bookfmt display reverse"
	MsgPrintExample     = "  bookfmt --title \"Notes\" print console"
	MsgSerializeExample = "  bookfmt --book novel.yaml serialize json"

	// Version output
	MsgVersionFormat = "bookfmt %s (commit %s, built %s)\n"

	// Error messages
	MsgErrLoadConfig    = "failed to load configuration: %w"
	MsgErrParseCommands = "failed to parse commands: %w"
	MsgErrLoadBook      = "failed to load book: %w"
	MsgErrColor         = "invalid --color value: %w"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Config file (.toml or .yaml)"
	MsgFlagTitle   = "Book title"
	MsgFlagContent = "Book content"
	MsgFlagBook    = "Load the book from a .toml, .yaml, .json or .xml file"
	MsgFlagLogFile = "Log file path, or \"none\" to disable file logging"
	MsgFlagColor   = "Color diagnostics: auto, always or never"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/run-long.txt
	msgRunLongRaw string
	MsgRunLong    = strings.TrimSpace(msgRunLongRaw)

	//go:embed msgs/run-example.txt
	msgRunExampleRaw string
	MsgRunExample    = strings.TrimRight(msgRunExampleRaw, "\n")
)
