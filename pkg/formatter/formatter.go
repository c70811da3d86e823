package formatter

import (
	"io"

	"github.com/arthur-debert/bookfmt/pkg/book"
	"github.com/arthur-debert/bookfmt/pkg/logging"
)

// Options tune serialization output
type Options struct {
	// ASCII escapes every non-ASCII code point in JSON strings as \uXXXX
	ASCII bool
	// XMLDeclaration prefixes XML output with an <?xml ...?> declaration
	XMLDeclaration bool
}

// DefaultOptions returns the options matching the stock output
func DefaultOptions() Options {
	return Options{ASCII: true}
}

// Formatter runs command sequences, writing console output to Out
type Formatter struct {
	Out     io.Writer
	Options Options
}

// New creates a Formatter writing console output to out
func New(out io.Writer, opts Options) *Formatter {
	return &Formatter{Out: out, Options: opts}
}

// Run executes cmds against doc in order. When a serialize command is
// reached its text is returned with ok set and the remaining commands are
// skipped. Without a serialize command ok is false.
func (f *Formatter) Run(doc book.Document, cmds []Command) (string, bool, error) {
	log := logging.GetLogger("formatter.Run")
	done := logging.LogOperationStart(log, "run")
	defer done()

	for i, cmd := range cmds {
		log.Debug().
			Int("index", i).
			Str("action", string(cmd.Action)).
			Str("mode", cmd.Mode).
			Msg("Dispatching command")

		switch cmd.Action {
		case ActionDisplay:
			if err := Display(f.Out, doc, cmd.Mode); err != nil {
				return "", false, err
			}
		case ActionPrint:
			if err := Print(f.Out, doc, cmd.Mode); err != nil {
				return "", false, err
			}
		case ActionSerialize:
			out, err := Serialize(doc, cmd.Mode, f.Options)
			if err != nil {
				return "", false, err
			}
			if skipped := len(cmds) - i - 1; skipped > 0 {
				log.Debug().Int("skipped", skipped).Msg("Serialize ends the run")
			}
			return out, true, nil
		default:
			log.Warn().
				Str("action", string(cmd.Action)).
				Msg("Ignoring unknown action")
		}
	}
	return "", false, nil
}

// Run executes cmds against doc with default options
func Run(out io.Writer, doc book.Document, cmds []Command) (string, bool, error) {
	return New(out, DefaultOptions()).Run(doc, cmds)
}
