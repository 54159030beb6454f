package lexer

import (
	"fmt"
	"strings"
)

type TokenKind int

const (
	TokenKindIllegal TokenKind = iota
	TokenKindEof

	TokenKindIdentifier
	TokenKindString
	TokenKindNumber
	TokenKindFloat

	keywordsBegin
	TokenKindCreate
	TokenKindDrop
	TokenKindAlter

	TokenKindTable
	TokenKindView
	TokenKindIndex

	TokenKindSelect
	TokenKindInsert
	TokenKindDelete
	TokenKindUpdate

	TokenKindWhere
	TokenKindFrom
	TokenKindSet
	TokenKindIs
	TokenKindGroup
	TokenKindHaving
	TokenKindOrder
	TokenKindBy

	TokenKindCommit
	TokenKindRollback

	TokenKindJoin
	TokenKindInner
	TokenKindLeft
	TokenKindRight
	TokenKindFull

	TokenKindPrimary
	TokenKindForeign
	TokenKindKey
	TokenKindReferences

	TokenKindUnique
	TokenKindCheck
	TokenKindConstraint
	TokenKindDefault

	TokenKindAnd
	TokenKindOr
	TokenKindNot
	TokenKindIn
	TokenKindBetween
	TokenKindLike
	TokenKindNull

	TokenKindCase
	TokenKindThen
	TokenKindElse
	TokenKindEnd
	TokenKindAs
	TokenKindOn
	keywordsEnd

	operatorsBegin
	TokenKindEqual
	TokenKindNotEqual
	TokenKindGreater
	TokenKindLess
	TokenKindGreaterEqual
	TokenKindLessEqual

	TokenKindPlus
	TokenKindMinus
	TokenKindSlash
	TokenKindPercent

	TokenKindDot
	TokenKindComma
	TokenKindSemicolon

	TokenKindOpeningParenthesis
	TokenKindClosingParenthesis
	operatorsEnd
)

var tokenKindNames = [...]string{
	TokenKindIllegal:    "TokenKindIllegal",
	TokenKindEof:        "TokenKindEof",
	TokenKindIdentifier: "TokenKindIdentifier",
	TokenKindString:     "TokenKindString",
	TokenKindNumber:     "TokenKindNumber",
	TokenKindFloat:      "TokenKindFloat",

	TokenKindCreate: "TokenKindCreate",
	TokenKindDrop:   "TokenKindDrop",
	TokenKindAlter:  "TokenKindAlter",

	TokenKindTable: "TokenKindTable",
	TokenKindView:  "TokenKindView",
	TokenKindIndex: "TokenKindIndex",

	TokenKindSelect: "TokenKindSelect",
	TokenKindInsert: "TokenKindInsert",
	TokenKindDelete: "TokenKindDelete",
	TokenKindUpdate: "TokenKindUpdate",

	TokenKindWhere:  "TokenKindWhere",
	TokenKindFrom:   "TokenKindFrom",
	TokenKindSet:    "TokenKindSet",
	TokenKindIs:     "TokenKindIs",
	TokenKindGroup:  "TokenKindGroup",
	TokenKindHaving: "TokenKindHaving",
	TokenKindOrder:  "TokenKindOrder",
	TokenKindBy:     "TokenKindBy",

	TokenKindCommit:   "TokenKindCommit",
	TokenKindRollback: "TokenKindRollback",

	TokenKindJoin:  "TokenKindJoin",
	TokenKindInner: "TokenKindInner",
	TokenKindLeft:  "TokenKindLeft",
	TokenKindRight: "TokenKindRight",
	TokenKindFull:  "TokenKindFull",

	TokenKindPrimary:    "TokenKindPrimary",
	TokenKindForeign:    "TokenKindForeign",
	TokenKindKey:        "TokenKindKey",
	TokenKindReferences: "TokenKindReferences",

	TokenKindUnique:     "TokenKindUnique",
	TokenKindCheck:      "TokenKindCheck",
	TokenKindConstraint: "TokenKindConstraint",
	TokenKindDefault:    "TokenKindDefault",

	TokenKindAnd:     "TokenKindAnd",
	TokenKindOr:      "TokenKindOr",
	TokenKindNot:     "TokenKindNot",
	TokenKindIn:      "TokenKindIn",
	TokenKindBetween: "TokenKindBetween",
	TokenKindLike:    "TokenKindLike",
	TokenKindNull:    "TokenKindNull",

	TokenKindCase: "TokenKindCase",
	TokenKindThen: "TokenKindThen",
	TokenKindElse: "TokenKindElse",
	TokenKindEnd:  "TokenKindEnd",
	TokenKindAs:   "TokenKindAs",
	TokenKindOn:   "TokenKindOn",

	TokenKindEqual:        "TokenKindEqual",
	TokenKindNotEqual:     "TokenKindNotEqual",
	TokenKindGreater:      "TokenKindGreater",
	TokenKindLess:         "TokenKindLess",
	TokenKindGreaterEqual: "TokenKindGreaterEqual",
	TokenKindLessEqual:    "TokenKindLessEqual",

	TokenKindPlus:    "TokenKindPlus",
	TokenKindMinus:   "TokenKindMinus",
	TokenKindSlash:   "TokenKindSlash",
	TokenKindPercent: "TokenKindPercent",

	TokenKindDot:       "TokenKindDot",
	TokenKindComma:     "TokenKindComma",
	TokenKindSemicolon: "TokenKindSemicolon",

	TokenKindOpeningParenthesis: "TokenKindOpeningParenthesis",
	TokenKindClosingParenthesis: "TokenKindClosingParenthesis",
}

// tokenKindLexemes holds the display text of every fixed-identity kind. The keyword and operator tables used for
// classification are derived from it, so a kind is added in exactly one place.
var tokenKindLexemes = [...]string{
	TokenKindIllegal:    "[illegal]",
	TokenKindEof:        "[eof]",
	TokenKindIdentifier: "identifier",
	TokenKindString:     "string",
	TokenKindNumber:     "number",
	TokenKindFloat:      "float",

	TokenKindCreate: "create",
	TokenKindDrop:   "drop",
	TokenKindAlter:  "alter",

	TokenKindTable: "table",
	TokenKindView:  "view",
	TokenKindIndex: "index",

	TokenKindSelect: "select",
	TokenKindInsert: "insert",
	TokenKindDelete: "delete",
	TokenKindUpdate: "update",

	TokenKindWhere:  "where",
	TokenKindFrom:   "from",
	TokenKindSet:    "set",
	TokenKindIs:     "is",
	TokenKindGroup:  "group",
	TokenKindHaving: "having",
	TokenKindOrder:  "order",
	TokenKindBy:     "by",

	TokenKindCommit:   "commit",
	TokenKindRollback: "rollback",

	TokenKindJoin:  "join",
	TokenKindInner: "inner",
	TokenKindLeft:  "left",
	TokenKindRight: "right",
	TokenKindFull:  "full",

	TokenKindPrimary:    "primary",
	TokenKindForeign:    "foreign",
	TokenKindKey:        "key",
	TokenKindReferences: "references",

	TokenKindUnique:     "unique",
	TokenKindCheck:      "check",
	TokenKindConstraint: "constraint",
	TokenKindDefault:    "default",

	TokenKindAnd:     "and",
	TokenKindOr:      "or",
	TokenKindNot:     "not",
	TokenKindIn:      "in",
	TokenKindBetween: "between",
	TokenKindLike:    "like",
	TokenKindNull:    "null",

	TokenKindCase: "case",
	TokenKindThen: "then",
	TokenKindElse: "else",
	TokenKindEnd:  "end",
	TokenKindAs:   "as",
	TokenKindOn:   "on",

	TokenKindEqual:        "=",
	TokenKindNotEqual:     "<>",
	TokenKindGreater:      ">",
	TokenKindLess:         "<",
	TokenKindGreaterEqual: ">=",
	TokenKindLessEqual:    "<=",

	TokenKindPlus:    "+",
	TokenKindMinus:   "-",
	TokenKindSlash:   "/",
	TokenKindPercent: "%",

	TokenKindDot:       ".",
	TokenKindComma:     ",",
	TokenKindSemicolon: ";",

	TokenKindOpeningParenthesis: "(",
	TokenKindClosingParenthesis: ")",
}

func (k TokenKind) isValid() bool {
	return k >= 0 && int(k) < len(tokenKindNames) && tokenKindNames[k] != ""
}

func (k TokenKind) String() string {
	if k.isValid() {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("!! INVALID TOKEN KIND %d !!", int(k))
}

// Lexeme returns the text of the kind as it appears in SQL, e.g. "select" or "<=". Payload-carrying kinds return a
// description of their family instead.
func (k TokenKind) Lexeme() string {
	if k.isValid() {
		return tokenKindLexemes[k]
	}
	return fmt.Sprintf("!! INVALID TOKEN KIND %d !!", int(k))
}

func (k TokenKind) IsKeyword() bool {
	return keywordsBegin < k && k < keywordsEnd
}

func (k TokenKind) IsOperator() bool {
	return operatorsBegin < k && k < operatorsEnd
}

func (k TokenKind) IsLiteral() bool {
	return k == TokenKindString || k == TokenKindNumber || k == TokenKindFloat
}

// carriesValue is true for kinds whose identity is not fully described by the kind itself.
func (k TokenKind) carriesValue() bool {
	return k == TokenKindIdentifier || k.IsLiteral()
}

// Token is one classified lexeme. Tokens are plain values and compare with ==.
type Token struct {
	kind  TokenKind
	value string
}

func newToken(kind TokenKind) Token {
	return Token{kind: kind}
}

func NewIdentifier(name string) Token {
	return Token{kind: TokenKindIdentifier, value: strings.ToLower(name)}
}

func NewString(content string) Token {
	return Token{kind: TokenKindString, value: content}
}

func NewNumber(digits string) Token {
	return Token{kind: TokenKindNumber, value: digits}
}

func NewFloat(text string) Token {
	return Token{kind: TokenKindFloat, value: text}
}

// NewFixed returns the token of a kind without payload. Payload-carrying kinds result in an Illegal token.
func NewFixed(kind TokenKind) Token {
	if kind.carriesValue() || !kind.isValid() {
		return newToken(TokenKindIllegal)
	}
	return newToken(kind)
}

func (t Token) Kind() TokenKind {
	return t.kind
}

// Value returns the payload of identifiers and literals and an empty string for all other tokens.
func (t Token) Value() string {
	return t.value
}

// String returns the display text: the payload for identifiers and literals, the lexeme for everything else.
func (t Token) String() string {
	if t.kind.carriesValue() {
		return t.value
	}
	return t.kind.Lexeme()
}
