package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// NoLogFile disables file logging when passed as the log file path
const NoLogFile = "none"

// Options controls logger setup
type Options struct {
	// Verbosity maps 0=warn, 1=info, 2=debug, 3+=trace
	Verbosity int
	// LogFile is the append-mode log file. Empty means the XDG state
	// location, NoLogFile disables it.
	LogFile string
	// Console receives human readable output. Defaults to os.Stderr.
	Console io.Writer
	// NoColor disables colors in console output
	NoColor bool
}

// SetupLogger configures the global logger based on verbosity level
// It sets up dual output to both console and a log file
func SetupLogger(verbosity int, logFile string) {
	Setup(Options{Verbosity: verbosity, LogFile: logFile})
}

// Setup configures the global logger from opts
func Setup(opts Options) {
	zerolog.SetGlobalLevel(levelFor(opts.Verbosity))

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	// Configure console output with pretty printing
	consoleWriter := zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.Kitchen,
		NoColor:    opts.NoColor,
	}

	writers := []io.Writer{consoleWriter}

	var (
		logPath string
		err     error
	)
	if opts.LogFile != NoLogFile {
		logPath, err = resolveLogFilePath(opts.LogFile)
		if err == nil {
			var f *os.File
			if f, err = setupLogFile(logPath); err == nil {
				writers = append(writers, f)
			}
		}
	}

	multi := io.MultiWriter(writers...)
	log.Logger = zerolog.New(multi).With().Timestamp().Logger()

	// If we couldn't create the log file, log the error now with the new logger
	if err != nil {
		log.Warn().Err(err).Str("path", logPath).Msg("Failed to create log file, logging to console only")
	}

	// Add caller information for debug and trace levels
	if opts.Verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().
		Int("verbosity", opts.Verbosity).
		Str("logFile", logPath).
		Msg("Logger initialized")
}

func levelFor(verbosity int) zerolog.Level {
	switch verbosity {
	case 0:
		return zerolog.WarnLevel
	case 1:
		return zerolog.InfoLevel
	case 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// resolveLogFilePath returns the log file path, defaulting to
// $XDG_STATE_HOME/bookfmt/bookfmt.log
func resolveLogFilePath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	p, err := xdg.StateFile(filepath.Join("bookfmt", "bookfmt.log"))
	if err != nil {
		return "", fmt.Errorf("failed to resolve log file path: %w", err)
	}
	return p, nil
}

// setupLogFile creates the log file and its parent directories
func setupLogFile(logPath string) (*os.File, error) {
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return file, nil
}

// LogCommand logs a command execution with its arguments
func LogCommand(cmd string, args []string) {
	log.Debug().
		Str("command", cmd).
		Strs("args", args).
		Msg("Executing command")
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
