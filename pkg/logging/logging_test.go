package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logPath := filepath.Join(t.TempDir(), "state", "bookfmt.log")

			SetupLogger(tt.verbosity, logPath)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should be created")
		})
	}
}

func TestSetup_NoLogFile(t *testing.T) {
	var console bytes.Buffer

	Setup(Options{Verbosity: 1, LogFile: NoLogFile, Console: &console, NoColor: true})
	log.Info().Msg("hello from test")

	assert.Contains(t, console.String(), "hello from test")
	assert.NotContains(t, console.String(), "Failed to create log file")
}

func TestSetup_WritesToLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "bookfmt.log")
	var console bytes.Buffer

	Setup(Options{Verbosity: 1, LogFile: logPath, Console: &console, NoColor: true})
	log.Info().Str("book", "Sample Book").Msg("file entry")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"book":"Sample Book"`)
	assert.Contains(t, string(data), "file entry")
}

func TestResolveLogFilePath(t *testing.T) {
	got, err := resolveLogFilePath("/tmp/custom.log")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.log", got)
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	logger := GetLogger("test-component")
	logger.Info().Msg("test message")

	assert.Contains(t, buf.String(), `"component":"test-component"`)
}

func TestLogCommand(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	LogCommand("run", []string{"display:reverse", "serialize:xml"})

	output := buf.String()
	assert.Contains(t, output, "run")
	assert.Contains(t, output, "display:reverse")
	assert.Contains(t, output, "serialize:xml")
	assert.Contains(t, output, "Executing command")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logger := zerolog.New(&buf)

	done := LogOperationStart(logger, "format")
	time.Sleep(time.Millisecond)
	done()

	output := buf.String()
	assert.Contains(t, output, "Operation started")
	assert.Contains(t, output, "Operation completed")
	assert.Contains(t, output, "duration")
}
