package lexer

// Position locates a byte in the input. Offset is 0-based, Line and Column
// are 1-based and Column counts bytes.
type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

// Span covers [Start, End) of the input.
type Span struct {
	Start Position
	End   Position
}

func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}

type TokenKind int

const (
	TokenEOF TokenKind = iota

	// Single characters
	TokenPipe
	TokenSpace
	TokenTab
	TokenBackslash
	TokenLineFeed
	TokenCarriageReturn
	TokenHash

	// Words
	TokenDoubleSpace
	TokenManyHashes
	TokenCommentWord
	TokenWord
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:            "EOF",
	TokenPipe:           "PIPE",
	TokenSpace:          "SPACE",
	TokenTab:            "TABULATOR",
	TokenBackslash:      "BACKSLASH",
	TokenLineFeed:       "LINE_FEED",
	TokenCarriageReturn: "CARRIAGE_RETURN",
	TokenHash:           "HASH",
	TokenDoubleSpace:    "DOUBLE_SPACE",
	TokenManyHashes:     "MANY_HASHES",
	TokenCommentWord:    "COMMENT_WORD",
	TokenWord:           "UNKNOWN_WORD",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsWhitespace reports whether k separates cells: a single space, a run of
// spaces or a tab.
func (k TokenKind) IsWhitespace() bool {
	return k == TokenSpace || k == TokenDoubleSpace || k == TokenTab
}

// IsWord reports whether k may span more than one byte.
func (k TokenKind) IsWord() bool {
	return k >= TokenDoubleSpace
}

// IsLineEnd reports whether k terminates a line.
func (k TokenKind) IsLineEnd() bool {
	return k == TokenLineFeed || k == TokenCarriageReturn
}

// ParseTokenKind is the inverse of TokenKind.String.
func ParseTokenKind(name string) (TokenKind, bool) {
	for k, n := range tokenKindNames {
		if n == name {
			return k, true
		}
	}
	return TokenEOF, false
}

type Token struct {
	Kind    TokenKind
	Span    Span
	Literal string
}

func (t Token) Line() int {
	return t.Span.Start.Line
}

func (t Token) Column() int {
	return t.Span.Start.Column
}
