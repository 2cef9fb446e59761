package classify

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/dhamidi/robotlex/robot/lexer"
)

type ContextType int

const (
	ContextUnknown ContextType = iota

	// Escapes
	ContextEscapedCharacter
	ContextCharacterAsHexValue
	ContextUnicodeCharWithHexValue
	ContextLineFeedText
	ContextCarriageReturnText
	ContextTabulatorText

	// Separators
	ContextPipeSeparated
	ContextPrettyAlign
	ContextDoubleSpaceOrTabulatorSeparated

	// Comments
	ContextDeclaredComment
)

var contextTypeNames = map[ContextType]string{
	ContextUnknown:                         "unknown",
	ContextEscapedCharacter:                "escaped-character",
	ContextCharacterAsHexValue:             "character-as-hex-value",
	ContextUnicodeCharWithHexValue:         "unicode-char-with-hex-value",
	ContextLineFeedText:                    "line-feed-text",
	ContextCarriageReturnText:              "carriage-return-text",
	ContextTabulatorText:                   "tabulator-text",
	ContextPipeSeparated:                   "pipe-separated",
	ContextPrettyAlign:                     "pretty-align",
	ContextDoubleSpaceOrTabulatorSeparated: "double-space-or-tabulator-separated",
	ContextDeclaredComment:                 "declared-comment",
}

func (t ContextType) String() string {
	if name, ok := contextTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

func ParseContextType(name string) (ContextType, bool) {
	for t, n := range contextTypeNames {
		if n == name && t != ContextUnknown {
			return t, true
		}
	}
	return ContextUnknown, false
}

// ContextTypes lists every known context type in declaration order.
func ContextTypes() []ContextType {
	types := make([]ContextType, 0, len(contextTypeNames)-1)
	for t := ContextEscapedCharacter; t <= ContextDeclaredComment; t++ {
		types = append(types, t)
	}
	return types
}

func (t ContextType) IsEscape() bool {
	return t >= ContextEscapedCharacter && t <= ContextTabulatorText
}

func (t ContextType) IsSeparator() bool {
	return t >= ContextPipeSeparated && t <= ContextDoubleSpaceOrTabulatorSeparated
}

// Context is a classified run of tokens on one line. Offsets are 0-based
// byte offsets within the line, the end offset is exclusive.
type Context struct {
	typ    ContextType
	line   int
	first  int
	end    int
	tokens []lexer.Token
}

func newContext(s *lexer.Stream, typ ContextType, line int, first, end int) *Context {
	tokens := make([]lexer.Token, 0, end-first)
	for i := first; i < end; i++ {
		tokens = append(tokens, s.At(i))
	}
	return &Context{
		typ:    typ,
		line:   line,
		first:  first,
		end:    end,
		tokens: tokens,
	}
}

func (c *Context) Type() ContextType {
	return c.typ
}

// Tokens returns a copy of the claimed tokens.
func (c *Context) Tokens() []lexer.Token {
	out := make([]lexer.Token, len(c.tokens))
	copy(out, c.tokens)
	return out
}

func (c *Context) Kinds() []lexer.TokenKind {
	kinds := make([]lexer.TokenKind, len(c.tokens))
	for i, tok := range c.tokens {
		kinds[i] = tok.Kind
	}
	return kinds
}

func (c *Context) LineNumber() int {
	return c.line
}

// TokenRange returns the claimed stream indexes [first, end).
func (c *Context) TokenRange() (int, int) {
	return c.first, c.end
}

func (c *Context) StartOffset() int {
	return c.tokens[0].Span.Start.Column - 1
}

func (c *Context) EndOffset() int {
	return c.StartOffset() + c.Span().Len()
}

// StartColumn is the 1-based column of the first claimed byte.
func (c *Context) StartColumn() int {
	return c.tokens[0].Span.Start.Column
}

func (c *Context) Span() lexer.Span {
	return lexer.Span{
		Start: c.tokens[0].Span.Start,
		End:   c.tokens[len(c.tokens)-1].Span.End,
	}
}

func (c *Context) Text() string {
	var sb strings.Builder
	for _, tok := range c.tokens {
		sb.WriteString(tok.Literal)
	}
	return sb.String()
}

func (c *Context) String() string {
	return fmt.Sprintf("%s@%d:%d %q", c.typ, c.line, c.StartColumn(), c.Text())
}

// Compare orders contexts by line and then by column. Contexts starting at
// the same place are ordered by length and type.
func Compare(a, b *Context) int {
	switch {
	case a.line != b.line:
		return cmp.Compare(a.line, b.line)
	case a.StartOffset() != b.StartOffset():
		return cmp.Compare(a.StartOffset(), b.StartOffset())
	case a.EndOffset() != b.EndOffset():
		return cmp.Compare(a.EndOffset(), b.EndOffset())
	}
	return cmp.Compare(a.typ, b.typ)
}
