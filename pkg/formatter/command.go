package formatter

import (
	"strings"

	"github.com/arthur-debert/bookfmt/pkg/errors"
)

// Action is the high-level operation a command requests
type Action string

// Known actions
const (
	ActionDisplay   Action = "display"
	ActionPrint     Action = "print"
	ActionSerialize Action = "serialize"
)

// Actions lists the known actions in help order
var Actions = []Action{ActionDisplay, ActionPrint, ActionSerialize}

// Command pairs an action with its mode. Mode stays a raw string until the
// command is dispatched.
type Command struct {
	Action Action
	Mode   string
}

// String returns the action:mode form
func (c Command) String() string {
	return string(c.Action) + commandSeparator + c.Mode
}

const commandSeparator = ":"

// ParseCommand parses "action:mode". The split happens on the first colon,
// so the mode may itself contain colons.
func ParseCommand(s string) (Command, error) {
	action, mode, ok := strings.Cut(s, commandSeparator)
	if !ok {
		return Command{}, errors.Newf(errors.ErrInvalidInput, "invalid command %q: expected action:mode", s)
	}
	action = strings.TrimSpace(action)
	if action == "" {
		return Command{}, errors.Newf(errors.ErrInvalidInput, "invalid command %q: missing action", s)
	}
	return Command{Action: Action(action), Mode: strings.TrimSpace(mode)}, nil
}

// ParseCommands parses each entry with ParseCommand, stopping at the first error
func ParseCommands(specs []string) ([]Command, error) {
	cmds := make([]Command, 0, len(specs))
	for _, s := range specs {
		cmd, err := ParseCommand(s)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}
