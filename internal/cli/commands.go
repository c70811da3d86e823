package cli

import (
	"fmt"

	"github.com/arthur-debert/bookfmt/internal/version"
	"github.com/arthur-debert/bookfmt/pkg/formatter"
	"github.com/arthur-debert/bookfmt/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	consoleModes   = []string{formatter.ModeConsole.String(), formatter.ModeReverse.String()}
	serializeModes = []string{formatter.EncodingJSON.String(), formatter.EncodingXML.String()}
)

func (a *app) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "run [action:mode...]",
		Short:   MsgRunShort,
		Long:    MsgRunLong,
		Example: MsgRunExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return a.runDefault(cmd)
			}
			cmds, err := formatter.ParseCommands(args)
			if err != nil {
				return fmt.Errorf(MsgErrParseCommands, err)
			}
			return a.execute(cmd, cmds)
		},
	}
}

func (a *app) newDisplayCmd() *cobra.Command {
	return a.newSingleCmd(formatter.ActionDisplay, MsgDisplayShort, MsgDisplayExample, consoleModes)
}

func (a *app) newPrintCmd() *cobra.Command {
	return a.newSingleCmd(formatter.ActionPrint, MsgPrintShort, MsgPrintExample, consoleModes)
}

func (a *app) newSerializeCmd() *cobra.Command {
	return a.newSingleCmd(formatter.ActionSerialize, MsgSerializeShort, MsgSerializeExample, serializeModes)
}

// newSingleCmd builds a subcommand that runs one action with the mode given
// as its only argument
func (a *app) newSingleCmd(action formatter.Action, short, example string, modes []string) *cobra.Command {
	return &cobra.Command{
		Use:       string(action) + " <mode>",
		Short:     short,
		Example:   example,
		Args:      cobra.ExactArgs(1),
		ValidArgs: modes,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.execute(cmd, []formatter.Command{{Action: action, Mode: args[0]}})
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			return err
		},
	}
}

func (a *app) runDefault(cmd *cobra.Command) error {
	cmds, err := a.cfg.DefaultCommands()
	if err != nil {
		return fmt.Errorf(MsgErrParseCommands, err)
	}
	return a.execute(cmd, cmds)
}

// execute runs cmds against the configured book. Console output and the
// serialize result both go to the command's stdout.
func (a *app) execute(cmd *cobra.Command, cmds []formatter.Command) error {
	specs := make([]string, len(cmds))
	for i, c := range cmds {
		specs[i] = c.String()
	}
	logging.LogCommand(cmd.Name(), specs)

	doc, err := a.cfg.Document()
	if err != nil {
		return fmt.Errorf(MsgErrLoadBook, err)
	}

	out := cmd.OutOrStdout()
	result, ok, err := formatter.New(out, a.cfg.FormatterOptions()).Run(doc, cmds)
	if err != nil {
		return err
	}
	if !ok {
		log.Debug().Msg("No serialize command, nothing to return")
		return nil
	}
	_, err = fmt.Fprintln(out, result)
	return err
}
