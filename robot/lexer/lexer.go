package lexer

// CommentKeyword is the builtin keyword that opens a comment cell.
const CommentKeyword = "Comment"

type Lexer struct {
	input  []byte
	file   string
	pos    int
	line   int
	column int
}

func NewLexer(input []byte, file string) *Lexer {
	return &Lexer{
		input:  input,
		file:   file,
		pos:    0,
		line:   1,
		column: 1,
	}
}

func (l *Lexer) Position() Position {
	return Position{
		File:   l.file,
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.input)
}

// advance consumes one byte. A line feed, or a carriage return that is not
// part of a CRLF pair, ends the current line.
func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' || (ch == '\r' && !(l.pos < len(l.input) && l.input[l.pos] == '\n')) {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

// NextToken returns the next token and false once the input is exhausted.
func (l *Lexer) NextToken() (Token, bool) {
	startPos := l.Position()

	if l.atEnd() {
		return Token{Kind: TokenEOF, Span: Span{Start: startPos, End: startPos}}, false
	}

	switch ch := l.peek(); ch {
	case '|':
		return l.scanSingle(startPos, TokenPipe), true
	case '\t':
		return l.scanSingle(startPos, TokenTab), true
	case '\\':
		return l.scanSingle(startPos, TokenBackslash), true
	case '\n':
		return l.scanSingle(startPos, TokenLineFeed), true
	case '\r':
		return l.scanSingle(startPos, TokenCarriageReturn), true
	case ' ':
		if l.peekN(1) == ' ' {
			return l.scanRun(startPos, ' ', TokenDoubleSpace), true
		}
		return l.scanSingle(startPos, TokenSpace), true
	case '#':
		if l.peekN(1) == '#' {
			return l.scanRun(startPos, '#', TokenManyHashes), true
		}
		return l.scanSingle(startPos, TokenHash), true
	}

	return l.scanWord(startPos), true
}

func (l *Lexer) scanSingle(start Position, kind TokenKind) Token {
	l.advance()
	return l.token(start, kind)
}

func (l *Lexer) scanRun(start Position, ch byte, kind TokenKind) Token {
	for l.peek() == ch && !l.atEnd() {
		l.advance()
	}
	return l.token(start, kind)
}

func (l *Lexer) scanWord(start Position) Token {
	for !l.atEnd() && !isSpecial(l.peek()) {
		l.advance()
	}
	tok := l.token(start, TokenWord)
	if tok.Literal == CommentKeyword {
		tok.Kind = TokenCommentWord
	}
	return tok
}

func (l *Lexer) token(start Position, kind TokenKind) Token {
	end := l.Position()
	return Token{
		Kind:    kind,
		Span:    Span{Start: start, End: end},
		Literal: string(l.input[start.Offset:end.Offset]),
	}
}

func isSpecial(ch byte) bool {
	switch ch {
	case '|', ' ', '\t', '\\', '\n', '\r', '#':
		return true
	}
	return false
}

// Tokenize splits text into tokens and groups them by line. It never fails:
// every byte ends up in exactly one token.
func Tokenize(text []byte) *Stream {
	return TokenizeFile(text, "")
}

func TokenizeString(text string) *Stream {
	return Tokenize([]byte(text))
}

// TokenizeFile is Tokenize with positions tagged by file name.
func TokenizeFile(text []byte, file string) *Stream {
	l := NewLexer(text, file)
	var tokens []Token
	for {
		tok, ok := l.NextToken()
		if !ok {
			break
		}
		tokens = append(tokens, tok)
	}
	return newStream(file, tokens)
}
