package main

import (
	"encoding/json"
	"github.com/alecthomas/kong"
	"github.com/hauke96/sigolo/v2"
	"os"
	"path/filepath"
	ownIo "sqltok/io"
	"sqltok/util"
	"strings"
	"testing"
)

func parseArgs(t *testing.T, args ...string) (*CLI, *kong.Context) {
	t.Helper()
	var c CLI
	parser, err := kong.New(&c, kongOptions()...)
	util.AssertNil(t, err)

	ctx, err := parser.Parse(args)
	util.AssertNil(t, err)
	return &c, ctx
}

func TestCli_tokenizeCommand(t *testing.T) {
	// Arrange
	sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)

	// Act
	c, ctx := parseArgs(t, "--format", "json", "tokenize", "SELECT 1")

	// Assert
	util.AssertEqual(t, "tokenize <query>", ctx.Command())
	util.AssertEqual(t, "SELECT 1", c.Tokenize.Query)
	util.AssertEqual(t, "json", c.Format)
	util.AssertEqual(t, "info", c.Logging)
	util.AssertFalse(t, c.Strict)
}

func TestCli_environmentOverridesDefaults(t *testing.T) {
	// Arrange
	sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)
	t.Setenv("SQLTOK_FORMAT", "yaml")
	t.Setenv("SQLTOK_PORT", "9090")

	// Act
	c, ctx := parseArgs(t, "serve")

	// Assert
	util.AssertEqual(t, "serve", ctx.Command())
	util.AssertEqual(t, "yaml", c.Format)
	util.AssertEqual(t, "9090", c.Serve.Port)
}

func TestCli_fileCommand(t *testing.T) {
	// Arrange
	sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)
	filename := filepath.Join(t.TempDir(), "a.sql")
	util.AssertNil(t, os.WriteFile(filename, []byte("SELECT 1"), 0644))

	// Act
	c, ctx := parseArgs(t, "--strict", "file", filename)

	// Assert
	util.AssertEqual(t, "file <files>", ctx.Command())
	util.AssertEqual(t, []string{filename}, c.File.Files)
	util.AssertTrue(t, c.Strict)
}

func TestRunTokenize(t *testing.T) {
	// Arrange
	sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)
	var output strings.Builder

	// Act
	err := runTokenize("SELECT * FROM accounts WHERE id <= 10", nil, &output, ownIo.FormatText, false, false)

	// Assert
	util.AssertNil(t, err)
	util.AssertEqual(t, "select\n[illegal]\nfrom\naccounts\nwhere\nid\n<=\n10\n", output.String())
}

func TestRunTokenize_stdin(t *testing.T) {
	// Arrange
	sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)
	var output strings.Builder

	// Act
	err := runTokenize("-", strings.NewReader("COMMIT;"), &output, ownIo.FormatText, false, false)

	// Assert
	util.AssertNil(t, err)
	util.AssertEqual(t, "commit\n;\n", output.String())
}

func TestRunTokenize_strict(t *testing.T) {
	// Arrange
	sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)
	var output strings.Builder

	// Act
	err := runTokenize("SELECT * FROM accounts", nil, &output, ownIo.FormatText, false, true)

	// Assert
	util.AssertError(t, "Tokenizing query failed: Lexing error: Illegal token '*' at position 7.", err)
	util.AssertEqual(t, "", output.String())
}

func TestRunFiles(t *testing.T) {
	// Arrange
	sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)
	dir := t.TempDir()
	first := filepath.Join(dir, "first.sql")
	second := filepath.Join(dir, "second.sql")
	util.AssertNil(t, os.WriteFile(first, []byte("DROP TABLE a;"), 0644))
	util.AssertNil(t, os.WriteFile(second, []byte("x > 1"), 0644))
	var output strings.Builder

	// Act
	err := runFiles([]string{first, second}, &output, ownIo.FormatText, false, false)

	// Assert
	util.AssertNil(t, err)
	util.AssertEqual(t, "-- "+first+"\ndrop\ntable\na\n;\n-- "+second+"\nx\n>\n1\n", output.String())
}

func TestRunFiles_singleFileHasNoHeader(t *testing.T) {
	// Arrange
	sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)
	filename := filepath.Join(t.TempDir(), "a.sql")
	util.AssertNil(t, os.WriteFile(filename, []byte("a.b"), 0644))
	var output strings.Builder

	// Act
	err := runFiles([]string{filename}, &output, ownIo.FormatText, false, false)

	// Assert
	util.AssertNil(t, err)
	util.AssertEqual(t, "[illegal]\n", output.String())
}

func TestRunFiles_strict(t *testing.T) {
	// Arrange
	sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)
	filename := filepath.Join(t.TempDir(), "a.sql")
	util.AssertNil(t, os.WriteFile(filename, []byte("a.b"), 0644))
	var output strings.Builder

	// Act
	err := runFiles([]string{filename}, &output, ownIo.FormatText, false, true)

	// Assert
	util.AssertError(t, "Tokenizing "+filename+" failed: Lexing error: Illegal token 'a.b' at position 0.", err)
}

func TestRunKeywords(t *testing.T) {
	// Arrange
	sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)
	var output strings.Builder

	// Act
	err := runKeywords(&output)

	// Assert
	util.AssertNil(t, err)
	lines := strings.Split(strings.TrimSpace(output.String()), "\n")
	util.AssertEqual(t, 46, len(lines))
	util.AssertEqual(t, "create", lines[0])
	util.AssertEqual(t, "on", lines[45])
}

func TestRunFiles_jsonIsSourceListForSingleFile(t *testing.T) {
	// Arrange
	sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)
	filename := filepath.Join(t.TempDir(), "a.sql")
	util.AssertNil(t, os.WriteFile(filename, []byte("COMMIT"), 0644))
	var output strings.Builder

	// Act
	err := runFiles([]string{filename}, &output, ownIo.FormatJson, false, false)

	// Assert
	util.AssertNil(t, err)
	var records []ownIo.SourceRecord
	util.AssertNil(t, json.Unmarshal([]byte(output.String()), &records))
	util.AssertEqual(t, []ownIo.SourceRecord{{
		Source: filename,
		Tokens: []ownIo.TokenRecord{
			{Kind: "TokenKindCommit", Text: "commit", Lexeme: "COMMIT", Position: 0},
			{Kind: "TokenKindEof", Text: "[eof]", Lexeme: "", Position: 6},
		},
	}}, records)
}
