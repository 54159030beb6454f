package io

import (
	"encoding/json"
	"fmt"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"io"
	"sqltok/lexer"
	"sqltok/util"
	"strings"
)

type Format string

const (
	FormatText Format = "text"
	FormatJson Format = "json"
	FormatYaml Format = "yaml"
)

var (
	keywordStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
	operatorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8C00"))
	literalStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#02BA84"))
	identifierStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5A56E0"))
	illegalStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F56")).Bold(true)
	headerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#9B9B9B"))
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatText:
		return FormatText, nil
	case FormatJson:
		return FormatJson, nil
	case FormatYaml:
		return FormatYaml, nil
	}
	return "", errors.Errorf("Unknown output format '%s'", s)
}

// TokenRecord is the serialized form of a scanned token.
type TokenRecord struct {
	Kind     string `json:"kind" yaml:"kind"`
	Text     string `json:"text" yaml:"text"`
	Lexeme   string `json:"lexeme" yaml:"lexeme"`
	Position int    `json:"position" yaml:"position"`
}

type SourceRecord struct {
	Source string        `json:"source" yaml:"source"`
	Tokens []TokenRecord `json:"tokens" yaml:"tokens"`
}

func NewTokenRecords(tokens []lexer.ScannedToken) []TokenRecord {
	records := make([]TokenRecord, len(tokens))
	for i, token := range tokens {
		records[i] = TokenRecord{
			Kind:     token.Kind().String(),
			Text:     token.String(),
			Lexeme:   token.Lexeme,
			Position: token.Position,
		}
	}
	return records
}

// WriteTokens writes the tokens in the given format. The text format prints the display text of each token on its own
// line and leaves out the Eof token; the structured formats contain every token.
func WriteTokens(writer io.Writer, tokens []lexer.ScannedToken, format Format, color bool) error {
	switch format {
	case FormatText:
		return writeTokensAsText(writer, tokens, color)
	case FormatJson:
		return writeJson(writer, NewTokenRecords(tokens))
	case FormatYaml:
		return writeYaml(writer, NewTokenRecords(tokens))
	}

	util.LogFatalBug("Unsupported output format '%s'", format)
	return nil
}

// WriteSources writes the tokens of several sources. In text format each source is preceded by a header line with its
// name.
func WriteSources(writer io.Writer, sources []TokenizedSource, format Format, color bool) error {
	if format == FormatText {
		for _, source := range sources {
			header := fmt.Sprintf("-- %s", source.Name)
			if color {
				header = headerStyle.Render(header)
			}
			_, err := fmt.Fprintln(writer, header)
			if err != nil {
				return errors.Wrapf(err, "Unable to write header for %s", source.Name)
			}

			err = writeTokensAsText(writer, source.Tokens, color)
			if err != nil {
				return err
			}
		}
		return nil
	}

	records := make([]SourceRecord, len(sources))
	for i, source := range sources {
		records[i] = SourceRecord{
			Source: source.Name,
			Tokens: NewTokenRecords(source.Tokens),
		}
	}

	switch format {
	case FormatJson:
		return writeJson(writer, records)
	case FormatYaml:
		return writeYaml(writer, records)
	}

	util.LogFatalBug("Unsupported output format '%s'", format)
	return nil
}

func writeTokensAsText(writer io.Writer, tokens []lexer.ScannedToken, color bool) error {
	for _, token := range tokens {
		if token.Kind() == lexer.TokenKindEof {
			break
		}

		text := token.String()
		if color {
			text = styleFor(token.Kind()).Render(text)
		}

		_, err := fmt.Fprintln(writer, text)
		if err != nil {
			return errors.Wrapf(err, "Unable to write token at position %d", token.Position)
		}
	}
	return nil
}

func styleFor(kind lexer.TokenKind) lipgloss.Style {
	switch {
	case kind.IsKeyword():
		return keywordStyle
	case kind.IsOperator():
		return operatorStyle
	case kind.IsLiteral():
		return literalStyle
	case kind == lexer.TokenKindIdentifier:
		return identifierStyle
	}
	return illegalStyle
}

func writeJson(writer io.Writer, value any) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	err := encoder.Encode(value)
	if err != nil {
		return errors.Wrap(err, "Unable to write tokens as JSON")
	}
	return nil
}

func writeYaml(writer io.Writer, value any) error {
	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(2)
	err := encoder.Encode(value)
	if err != nil {
		return errors.Wrap(err, "Unable to write tokens as YAML")
	}
	return errors.Wrap(encoder.Close(), "Unable to finish YAML output")
}
