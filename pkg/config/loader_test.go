package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/bookfmt/pkg/book"
	"github.com/arthur-debert/bookfmt/pkg/errors"
	"github.com/arthur-debert/bookfmt/pkg/formatter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfiguration_Defaults(t *testing.T) {
	cfg, err := LoadConfiguration(LoadOptions{SkipUserConfig: true})
	require.NoError(t, err)

	assert.Equal(t, "Sample Book", cfg.Book.Title)
	assert.Equal(t, "This is some sample content.", cfg.Book.Content)
	assert.Empty(t, cfg.Book.File)
	assert.Equal(t, []string{"display:reverse", "serialize:xml"}, cfg.Commands)
	assert.True(t, cfg.JSON.ASCII)
	assert.False(t, cfg.XML.Declaration)
	assert.Equal(t, 0, cfg.Logging.Verbosity)

	cmds, err := cfg.DefaultCommands()
	require.NoError(t, err)
	assert.Equal(t, []formatter.Command{
		{Action: formatter.ActionDisplay, Mode: "reverse"},
		{Action: formatter.ActionSerialize, Mode: "xml"},
	}, cmds)

	assert.Equal(t, formatter.DefaultOptions(), cfg.FormatterOptions())
}

func TestLoadConfiguration_TOMLFile(t *testing.T) {
	path := writeConfig(t, "bookfmt.toml", `
commands = ["print:console"]

[book]
title = "Other Book"

[xml]
declaration = true
`)

	cfg, err := LoadConfiguration(LoadOptions{ConfigFile: path})
	require.NoError(t, err)

	assert.Equal(t, "Other Book", cfg.Book.Title)
	assert.Equal(t, "This is some sample content.", cfg.Book.Content, "unset keys keep defaults")
	assert.Equal(t, []string{"print:console"}, cfg.Commands)
	assert.True(t, cfg.XML.Declaration)
	assert.True(t, cfg.JSON.ASCII)
}

func TestLoadConfiguration_YAMLFile(t *testing.T) {
	path := writeConfig(t, "bookfmt.yaml", `
book:
  content: yaml content
json:
  ascii: false
commands:
  - display:console
  - serialize:json
`)

	cfg, err := LoadConfiguration(LoadOptions{ConfigFile: path})
	require.NoError(t, err)

	assert.Equal(t, "yaml content", cfg.Book.Content)
	assert.False(t, cfg.JSON.ASCII)
	assert.Equal(t, []string{"display:console", "serialize:json"}, cfg.Commands)
}

func TestLoadConfiguration_Env(t *testing.T) {
	path := writeConfig(t, "bookfmt.toml", "[book]\ntitle = \"From File\"\n")
	t.Setenv("BOOKFMT_BOOK_TITLE", "From Env")
	t.Setenv("BOOKFMT_COMMANDS", "print:reverse,serialize:json")
	t.Setenv("BOOKFMT_JSON_ASCII", "false")
	t.Setenv("BOOKFMT_LOGGING_VERBOSITY", "2")

	cfg, err := LoadConfiguration(LoadOptions{ConfigFile: path})
	require.NoError(t, err)

	assert.Equal(t, "From Env", cfg.Book.Title, "env overrides file")
	assert.Equal(t, []string{"print:reverse", "serialize:json"}, cfg.Commands)
	assert.False(t, cfg.JSON.ASCII)
	assert.Equal(t, 2, cfg.Logging.Verbosity)
}

func TestLoadConfiguration_Errors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		_, err := LoadConfiguration(LoadOptions{ConfigFile: filepath.Join(t.TempDir(), "nope.toml")})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := LoadConfiguration(LoadOptions{ConfigFile: writeConfig(t, "bookfmt.ini", "x=1")})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("malformed toml", func(t *testing.T) {
		_, err := LoadConfiguration(LoadOptions{ConfigFile: writeConfig(t, "bookfmt.toml", "[book\n")})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("invalid command", func(t *testing.T) {
		_, err := LoadConfiguration(LoadOptions{ConfigFile: writeConfig(t, "bookfmt.toml", `commands = ["display"]`)})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})
}

func TestConfig_Document(t *testing.T) {
	t.Run("inline", func(t *testing.T) {
		cfg := &Config{Book: Book{Title: "T", Content: "C"}}
		doc, err := cfg.Document()
		require.NoError(t, err)
		assert.Equal(t, book.New("T", "C"), doc)
	})

	t.Run("from file", func(t *testing.T) {
		path := writeConfig(t, "book.json", `{"title": "File Book", "content": "file content"}`)
		cfg := &Config{Book: Book{Title: "ignored", File: path}}
		doc, err := cfg.Document()
		require.NoError(t, err)
		assert.Equal(t, book.New("File Book", "file content"), doc)
	})
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "json.ascii", envKey("BOOKFMT_JSON_ASCII"))
	assert.Equal(t, "commands", envKey("BOOKFMT_COMMANDS"))
	assert.Equal(t, "logging.file", envKey("BOOKFMT_LOGGING_FILE"))
}

func TestDefaultsContent(t *testing.T) {
	assert.Contains(t, DefaultsContent(), `commands = ["display:reverse", "serialize:xml"]`)
}
