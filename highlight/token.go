// Package highlight provides syntax tokens for the inline diff overlay.
// Tokenization runs asynchronously; consumers read whatever tokens are
// currently available and are notified through a completion event when more
// arrive.
package highlight

import (
	"github.com/dshills/inlinediff/style"
)

// TokenType represents the semantic type of a token.
type TokenType uint8

// Token types for syntax highlighting.
const (
	TokenNone TokenType = iota
	TokenComment
	TokenString
	TokenNumber
	TokenKeyword
	TokenOperator
	TokenPunctuation
	TokenIdentifier
	TokenFunction
	TokenTypeName
)

// String returns the string representation of a token type.
func (t TokenType) String() string {
	switch t {
	case TokenNone:
		return "none"
	case TokenComment:
		return "comment"
	case TokenString:
		return "string"
	case TokenNumber:
		return "number"
	case TokenKeyword:
		return "keyword"
	case TokenOperator:
		return "operator"
	case TokenPunctuation:
		return "punctuation"
	case TokenIdentifier:
		return "identifier"
	case TokenFunction:
		return "function"
	case TokenTypeName:
		return "type"
	default:
		return "unknown"
	}
}

// Token represents a highlighted token on a line.
type Token struct {
	// Type is the semantic type of the token.
	Type TokenType

	// StartCol is the starting column (0-indexed, in runes).
	StartCol int

	// EndCol is the ending column (exclusive).
	EndCol int
}

// Len returns the length of the token in columns.
func (t Token) Len() int {
	return t.EndCol - t.StartCol
}

// Contains returns true if the column is within the token.
func (t Token) Contains(col int) bool {
	return col >= t.StartCol && col < t.EndCol
}

// StyleSpan represents a styled range within a line.
// Offsets are 0-indexed line-local columns; the end is exclusive.
type StyleSpan struct {
	Start int
	End   int
	Style style.Style
}

// Len returns the length of the span in columns.
func (s StyleSpan) Len() int {
	return s.End - s.Start
}
