package lexer

import (
	"fmt"
	"github.com/hauke96/sigolo/v2"
	"iter"
)

// Lexer turns SQL text into tokens, one token per call of NextToken. Each lexer owns its cursor, so any number of
// lexers can work on different inputs at the same time. A lexer cannot be reset.
type Lexer struct {
	input []rune
	index int // Position in input.
}

// ScannedToken is a token together with the place it was found at.
type ScannedToken struct {
	Token
	Position int    // Rune offset of the first character of the lexeme.
	Lexeme   string // The raw characters the token was classified from.
}

func New(input string) *Lexer {
	return &Lexer{
		input: []rune(input),
		index: 0,
	}
}

// char returns the rune at the current location or the number 0 if there is no next char.
func (l *Lexer) char() rune {
	if l.atEnd() {
		return 0
	}
	return l.input[l.index]
}

// nextChar returns the next rune, so the one after the rune char() returns, or the number 0 if there is no next char.
func (l *Lexer) nextChar() rune {
	if l.index+1 >= len(l.input) {
		return 0
	}
	return l.input[l.index+1]
}

func (l *Lexer) atEnd() bool {
	return l.index >= len(l.input)
}

// advance moves the cursor by one character. At the end of the input the cursor stays where it is.
func (l *Lexer) advance() {
	if !l.atEnd() {
		l.index++
	}
}

// NextToken returns the next token of the input. After the end of the input has been reached, every call returns an
// Eof token.
func (l *Lexer) NextToken() Token {
	return l.Scan().Token
}

// Scan works like NextToken but additionally returns the position and raw text of the token.
func (l *Lexer) Scan() ScannedToken {
	l.skipWhitespace()

	start := l.index
	token := l.readToken()

	scanned := ScannedToken{
		Token:    token,
		Position: start,
		Lexeme:   string(l.input[start:l.index]),
	}
	l.tracef("Found token kind=%s, pos=%d, lexeme=%q", token.Kind(), scanned.Position, scanned.Lexeme)

	return scanned
}

// All returns the remaining tokens as sequence. The sequence ends after the Eof token.
func (l *Lexer) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			token := l.NextToken()
			if !yield(token) || token.Kind() == TokenKindEof {
				return
			}
		}
	}
}

// ReadAll collects all remaining tokens including the final Eof token.
func (l *Lexer) ReadAll() []Token {
	var tokens []Token
	for token := range l.All() {
		tokens = append(tokens, token)
	}
	return tokens
}

// ScanAll collects all remaining tokens with their positions including the final Eof token.
func (l *Lexer) ScanAll() []ScannedToken {
	var tokens []ScannedToken
	for {
		token := l.Scan()
		tokens = append(tokens, token)
		if token.Kind() == TokenKindEof {
			return tokens
		}
	}
}

func (l *Lexer) readToken() Token {
	/*
		Approach:

		Look at the current character l.char() and decide how many characters belong to the lexeme. Every branch
		advances the cursor by at least one character (except at the end of the input), so each call makes progress.
		The collected lexeme is classified afterward by Classify or ClassifyChar.
	*/

	if l.atEnd() {
		return ClassifyChar(0)
	}

	char := l.char()
	switch {
	case isLetter(char) || isDigit(char):
		return Classify(l.readValue())
	case char == '\'':
		return Classify(l.readQuotedValue())
	case char == '<' || char == '>':
		next := l.nextChar()
		if next == '=' || (char == '<' && next == '>') {
			l.advance()
			l.advance()
			return Classify(string([]rune{char, next}))
		}
		l.advance()
		return ClassifyChar(char)
	case char == 0:
		// A NUL character inside the text is not the end of the input.
		l.advance()
		return newToken(TokenKindIllegal)
	}

	l.advance()
	return ClassifyChar(char)
}

func (l *Lexer) skipWhitespace() {
	for isWhitespace(l.char()) {
		l.advance()
	}
}

func isWhitespace(char rune) bool {
	return char == ' ' || char == '\t' || char == '\n' || char == '\r'
}

// readValue collects letters, digits, underscores and dots until some other character comes.
func (l *Lexer) readValue() string {
	start := l.index
	for c := l.char(); !l.atEnd() && (isLetter(c) || isDigit(c) || c == '_' || c == '.'); c = l.char() {
		l.advance()
	}
	return string(l.input[start:l.index])
}

// readQuotedValue collects everything from the current quote up to and including the next quote. Without a closing
// quote the rest of the input is collected.
func (l *Lexer) readQuotedValue() string {
	start := l.index
	l.advance()
	for !l.atEnd() && l.char() != '\'' {
		l.advance()
	}
	l.advance()
	return string(l.input[start:l.index])
}

func (l *Lexer) tracef(format string, args ...any) {
	formattedMessage := format
	if len(args) > 0 {
		formattedMessage = fmt.Sprintf(format, args...)
	}
	sigolo.Traceb(1, "[%d, %q] %s", l.index, l.char(), formattedMessage)
}
