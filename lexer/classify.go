package lexer

import (
	"strings"
)

var (
	// keywords maps lower-cased reserved words to their kind.
	keywords map[string]TokenKind

	// operators maps the text of every operator and punctuation kind, single- and two-character ones, to its kind.
	operators map[string]TokenKind

	// singleCharOperators is the subset of operators consisting of exactly one character.
	singleCharOperators map[rune]TokenKind
)

func init() {
	keywords = make(map[string]TokenKind, keywordsEnd-keywordsBegin-1)
	for kind := keywordsBegin + 1; kind < keywordsEnd; kind++ {
		keywords[kind.Lexeme()] = kind
	}

	operators = make(map[string]TokenKind, operatorsEnd-operatorsBegin-1)
	singleCharOperators = make(map[rune]TokenKind)
	for kind := operatorsBegin + 1; kind < operatorsEnd; kind++ {
		lexeme := kind.Lexeme()
		operators[lexeme] = kind
		if runes := []rune(lexeme); len(runes) == 1 {
			singleCharOperators[runes[0]] = kind
		}
	}
}

// Keywords returns all reserved words in lower case in the order of their declaration.
func Keywords() []string {
	result := make([]string, 0, len(keywords))
	for kind := keywordsBegin + 1; kind < keywordsEnd; kind++ {
		result = append(result, kind.Lexeme())
	}
	return result
}

// Classify turns an accumulated lexeme into exactly one token. Checks happen in this order: quoted string literal,
// integer, float, keyword (case-insensitive), operator, identifier. Everything else is Illegal.
func Classify(lexeme string) Token {
	if len(lexeme) >= 2 && strings.HasPrefix(lexeme, "'") && strings.HasSuffix(lexeme, "'") {
		return NewString(lexeme[1 : len(lexeme)-1])
	}

	if isInteger(lexeme) {
		return NewNumber(lexeme)
	}

	if isFloat(lexeme) {
		return NewFloat(lexeme)
	}

	lowerLexeme := strings.ToLower(lexeme)
	if kind, ok := keywords[lowerLexeme]; ok {
		return newToken(kind)
	}

	if kind, ok := operators[lexeme]; ok {
		return newToken(kind)
	}

	if isIdentifier(lowerLexeme) {
		return NewIdentifier(lowerLexeme)
	}

	return newToken(TokenKindIllegal)
}

// ClassifyChar turns a single character into its operator or punctuation token. The NUL character is the end of
// input sentinel and results in Eof.
func ClassifyChar(char rune) Token {
	if char == 0 {
		return newToken(TokenKindEof)
	}

	if kind, ok := singleCharOperators[char]; ok {
		return newToken(kind)
	}

	return newToken(TokenKindIllegal)
}

func isDigit(char rune) bool {
	return '0' <= char && char <= '9'
}

func isLetter(char rune) bool {
	return ('a' <= char && char <= 'z') || ('A' <= char && char <= 'Z')
}

func isInteger(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if !isDigit(c) {
			return false
		}
	}
	return true
}

// isFloat is true for strings of digits with exactly one decimal point, e.g. "12.5" but also "12." since the point
// may be at either end.
func isFloat(s string) bool {
	containsDecimalPoint := false

	for _, c := range s {
		if c == '.' {
			if containsDecimalPoint {
				// Decimal point already found -> invalid since two decimal points do not make sense
				return false
			}
			containsDecimalPoint = true
		} else if !isDigit(c) {
			return false
		}
	}

	return containsDecimalPoint && len(s) > 1
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if !isLetter(c) && !isDigit(c) && c != '_' {
			return false
		}
	}
	return true
}
