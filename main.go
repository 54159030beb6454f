package main

import (
	"fmt"
	"github.com/alecthomas/kong"
	"github.com/hauke96/sigolo/v2"
	"github.com/pkg/errors"
	"io"
	"os"
	ownIo "sqltok/io"
	"sqltok/lexer"
	"sqltok/util"
	"sqltok/web"
)

const VERSION = "v0.1.0"

type CLI struct {
	Logging string      `help:"Logging verbosity." enum:"info,debug,trace" short:"l" default:"info" env:"SQLTOK_LOGGING"`
	Version VersionFlag `help:"Print version information and quit" name:"version" short:"v"`
	Format  string      `help:"Output format of the tokens." enum:"text,json,yaml" short:"f" default:"text" env:"SQLTOK_FORMAT"`
	Color   bool        `help:"Colorize the text output by token category."`
	Strict  bool        `help:"Fail on the first illegal token instead of printing it."`

	Tokenize struct {
		Query string `help:"The SQL text. Use '-' to read it from stdin." placeholder:"<query>" arg:""`
	} `cmd:"" help:"Prints the tokens of the given SQL text."`
	File struct {
		Files []string `help:"The SQL files." placeholder:"<file>" arg:"" type:"existingfile"`
	} `cmd:"" help:"Prints the tokens of the given SQL files."`
	Keywords struct {
	} `cmd:"" help:"Prints all reserved words."`
	Serve struct {
		Port    string `help:"The port of the HTTP API." short:"p" default:"8080" env:"SQLTOK_PORT"`
		TlsCert string `help:"Certificate file, enables TLS together with --tls-key." type:"existingfile"`
		TlsKey  string `help:"Private key file of the certificate." type:"existingfile"`
	} `cmd:"" help:"Starts the HTTP API to tokenize queries."`
}

var cli CLI

type VersionFlag string

func (v VersionFlag) Decode(ctx *kong.DecodeContext) error { return nil }
func (v VersionFlag) IsBool() bool                         { return true }
func (v VersionFlag) BeforeApply(app *kong.Kong, vars kong.Vars) error {
	fmt.Println(vars["version"])
	app.Exit(0)
	return nil
}

func kongOptions() []kong.Option {
	return []kong.Option{
		kong.Name("sqltok"),
		kong.Description("A tokenizer for SQL statements."),
		kong.Vars{
			"version": VERSION,
		},
	}
}

func main() {
	ctx := kong.Parse(&cli, kongOptions()...)

	err := util.ConfigureLogging(cli.Logging)
	if err != nil {
		sigolo.SetDefaultFormatFunctionAll(sigolo.LogPlain)
		sigolo.FatalCheck(err)
	}

	format, err := ownIo.ParseFormat(cli.Format)
	sigolo.FatalCheck(err)

	switch ctx.Command() {
	case "tokenize <query>":
		err = runTokenize(cli.Tokenize.Query, os.Stdin, os.Stdout, format, cli.Color, cli.Strict)
		sigolo.FatalCheck(err)
	case "file <files>":
		err = runFiles(cli.File.Files, os.Stdout, format, cli.Color, cli.Strict)
		sigolo.FatalCheck(err)
	case "keywords":
		err = runKeywords(os.Stdout)
		sigolo.FatalCheck(err)
	case "serve":
		if cli.Serve.TlsCert != "" && cli.Serve.TlsKey != "" {
			web.StartServerTls(cli.Serve.Port, cli.Serve.TlsCert, cli.Serve.TlsKey)
		} else {
			web.StartServer(cli.Serve.Port)
		}
	default:
		sigolo.Errorf("Unknown command '%s'", ctx.Command())
	}
}

func runTokenize(query string, stdin io.Reader, writer io.Writer, format ownIo.Format, color bool, strict bool) error {
	source := ownIo.Source{Name: "query", Text: query}
	if query == "-" {
		var err error
		source, err = ownIo.ReadSourceFrom("stdin", stdin)
		if err != nil {
			return err
		}
	}

	tokenized := ownIo.TokenizeSource(source)
	sigolo.Debugf("Found %d token", len(tokenized.Tokens))

	if strict {
		err := lexer.CheckIllegal(tokenized.Tokens)
		if err != nil {
			return errors.Wrapf(err, "Tokenizing %s failed", source.Name)
		}
	}

	return ownIo.WriteTokens(writer, tokenized.Tokens, format, color)
}

func runFiles(filenames []string, writer io.Writer, format ownIo.Format, color bool, strict bool) error {
	sources, err := ownIo.TokenizeFiles(filenames)
	if err != nil {
		return err
	}

	if strict {
		for _, source := range sources {
			err = lexer.CheckIllegal(source.Tokens)
			if err != nil {
				return errors.Wrapf(err, "Tokenizing %s failed", source.Name)
			}
		}
	}

	// Structured output always is a list of sources, so its shape does not depend on the number of files.
	if format == ownIo.FormatText && len(sources) == 1 {
		return ownIo.WriteTokens(writer, sources[0].Tokens, format, color)
	}
	return ownIo.WriteSources(writer, sources, format, color)
}

func runKeywords(writer io.Writer) error {
	for _, keyword := range lexer.Keywords() {
		_, err := fmt.Fprintln(writer, keyword)
		if err != nil {
			return errors.Wrap(err, "Unable to write keyword list")
		}
	}
	return nil
}
