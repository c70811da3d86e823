package cli

import (
	"fmt"
	"os"

	"github.com/arthur-debert/bookfmt/internal/version"
	"github.com/arthur-debert/bookfmt/pkg/config"
	"github.com/arthur-debert/bookfmt/pkg/logging"
	"github.com/arthur-debert/bookfmt/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app carries flag values and the resolved configuration between the
// persistent pre-run and the command handlers
type app struct {
	root *cobra.Command
	cfg  *config.Config

	verbosity  int
	configFile string
	title      string
	content    string
	bookFile   string
	logFile    string
	color      string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newApp().root
}

// Execute runs the CLI against os.Args and returns the process exit code.
// Errors are written to stderr.
func Execute() int {
	a := newApp()
	if err := a.root.Execute(); err != nil {
		format, perr := ui.ParseFormat(a.color)
		if perr != nil {
			format = ui.FormatAuto
		}
		_ = ui.NewErrorRenderer(os.Stderr, format).Render(err)
		return 1
	}
	return 0
}

func newApp() *app {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "bookfmt",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDefault(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVar(&a.configFile, "config", "", MsgFlagConfig)
	flags.StringVar(&a.title, "title", "", MsgFlagTitle)
	flags.StringVar(&a.content, "content", "", MsgFlagContent)
	flags.StringVar(&a.bookFile, "book", "", MsgFlagBook)
	flags.StringVar(&a.logFile, "log-file", "", MsgFlagLogFile)
	flags.StringVar(&a.color, "color", "auto", MsgFlagColor)

	rootCmd.AddCommand(a.newRunCmd())
	rootCmd.AddCommand(a.newDisplayCmd())
	rootCmd.AddCommand(a.newPrintCmd())
	rootCmd.AddCommand(a.newSerializeCmd())
	rootCmd.AddCommand(newVersionCmd())

	a.root = rootCmd
	return a
}

// setup loads configuration, applies flag overrides and starts logging
func (a *app) setup(cmd *cobra.Command) error {
	colorFormat, err := ui.ParseFormat(a.color)
	if err != nil {
		return fmt.Errorf(MsgErrColor, err)
	}

	cfg, err := config.LoadConfiguration(config.LoadOptions{ConfigFile: a.configFile})
	if err != nil {
		return fmt.Errorf(MsgErrLoadConfig, err)
	}

	flags := cmd.Flags()
	if flags.Changed("title") || flags.Changed("content") {
		cfg.Book.File = ""
	}
	if flags.Changed("title") {
		cfg.Book.Title = a.title
	}
	if flags.Changed("content") {
		cfg.Book.Content = a.content
	}
	if flags.Changed("book") {
		cfg.Book.File = a.bookFile
	}
	if flags.Changed("log-file") {
		cfg.Logging.File = a.logFile
	}
	if flags.Changed("verbose") {
		cfg.Logging.Verbosity = a.verbosity
	}

	stderr := cmd.ErrOrStderr()
	logging.Setup(logging.Options{
		Verbosity: cfg.Logging.Verbosity,
		LogFile:   cfg.Logging.File,
		Console:   stderr,
		NoColor:   colorFormat.Resolve(stderr) != ui.FormatTerminal,
	})

	a.cfg = cfg
	return nil
}
