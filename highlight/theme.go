package highlight

import (
	"github.com/dshills/inlinediff/style"
)

// Theme maps token types to visual styles.
type Theme struct {
	styles map[TokenType]style.Style
	def    style.Style
}

// NewTheme creates a theme with the given default style.
func NewTheme(def style.Style) *Theme {
	return &Theme{
		styles: make(map[TokenType]style.Style),
		def:    def,
	}
}

// DefaultTheme returns a dark theme with conventional syntax colors.
func DefaultTheme() *Theme {
	t := NewTheme(style.New(style.ColorFromRGB(212, 212, 212)))
	t.Set(TokenComment, style.New(style.ColorFromRGB(106, 153, 85)).Italic())
	t.Set(TokenString, style.New(style.ColorFromRGB(206, 145, 120)))
	t.Set(TokenNumber, style.New(style.ColorFromRGB(181, 206, 168)))
	t.Set(TokenKeyword, style.New(style.ColorFromRGB(86, 156, 214)))
	t.Set(TokenOperator, style.New(style.ColorFromRGB(212, 212, 212)))
	t.Set(TokenPunctuation, style.New(style.ColorFromRGB(212, 212, 212)))
	t.Set(TokenIdentifier, style.New(style.ColorFromRGB(156, 220, 254)))
	t.Set(TokenFunction, style.New(style.ColorFromRGB(220, 220, 170)))
	t.Set(TokenTypeName, style.New(style.ColorFromRGB(78, 201, 176)))
	return t
}

// Set assigns a style to a token type.
func (t *Theme) Set(typ TokenType, s style.Style) {
	t.styles[typ] = s
}

// Default returns the theme's default style.
func (t *Theme) Default() style.Style {
	return t.def
}

// StyleForToken returns the style for a token type, falling back to the
// default style for unmapped types.
func (t *Theme) StyleForToken(typ TokenType) style.Style {
	if s, ok := t.styles[typ]; ok {
		return s
	}
	return t.def
}
