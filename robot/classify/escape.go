package classify

import (
	"strconv"

	"github.com/dhamidi/robotlex/robot/lexer"
)

// MaxCodePoint is the largest code point a long unicode escape may name.
const MaxCodePoint = 0x10FFFF

// LongUnicodeEscapeName registers the \U recognizer apart from the \u one.
const LongUnicodeEscapeName = "unicode-long-char-with-hex-value"

// scanEscapes runs the shared backslash scan: every escaping backslash opens
// a candidate which is committed together with the next token when accept
// approves it and dropped otherwise. Either way scanning resumes after the
// escaped token.
func scanEscapes(out *Output, line lexer.LineTokenPosition, typ ContextType, accept func(lexer.Token) bool) []*Context {
	s := out.Stream()
	c := newCandidate(s, typ, line)
	var found []*Context

	for i := line.Start; i < line.End; i++ {
		if out.Claimed(i) || !IsEscaping(s, line, i) {
			continue
		}
		c.add(i)
		next := i + 1
		if next >= line.End || out.Claimed(next) {
			c.reset()
			continue
		}
		c.add(next)
		if accept(s.At(next)) {
			found = append(found, c.commit())
		} else {
			c.reset()
		}
		i = next
	}
	return found
}

// LetterEscape recognizes a backslash followed by a word that starts with
// one letter of a lower/upper case pair, such as \n or \N.
type LetterEscape struct {
	anyLine
	typ   ContextType
	lower byte
	upper byte
}

func NewLetterEscape(typ ContextType, lower, upper byte) *LetterEscape {
	return &LetterEscape{typ: typ, lower: lower, upper: upper}
}

func NewLineFeedEscape() *LetterEscape {
	return NewLetterEscape(ContextLineFeedText, 'n', 'N')
}

func NewCarriageReturnEscape() *LetterEscape {
	return NewLetterEscape(ContextCarriageReturnText, 'r', 'R')
}

func NewTabulatorEscape() *LetterEscape {
	return NewLetterEscape(ContextTabulatorText, 't', 'T')
}

func (r *LetterEscape) ContextType() ContextType { return r.typ }
func (r *LetterEscape) Name() string             { return r.typ.String() }

func (r *LetterEscape) Recognize(out *Output, line lexer.LineTokenPosition) []*Context {
	return scanEscapes(out, line, r.typ, func(tok lexer.Token) bool {
		return isTextWord(tok.Kind) && StartsWithLetter(tok.Literal, r.lower, r.upper)
	})
}

// StartsWithLetter reports whether text is non-empty and starts with lower
// or upper.
func StartsWithLetter(text string, lower, upper byte) bool {
	return len(text) > 0 && (text[0] == lower || text[0] == upper)
}

// HexEscape recognizes a backslash followed by a word made of a marker
// letter and a fixed number of hex digits, such as \x41 or \u00e9. Text
// after the digits stays part of the word and of the context.
type HexEscape struct {
	anyLine
	name   string
	typ    ContextType
	marker byte
	digits int
	max    uint64
}

func NewHexEscape(typ ContextType, marker byte, digits int) *HexEscape {
	return &HexEscape{name: typ.String(), typ: typ, marker: marker, digits: digits}
}

func NewByteHexEscape() *HexEscape {
	return NewHexEscape(ContextCharacterAsHexValue, 'x', 2)
}

func NewUnicodeEscape() *HexEscape {
	return NewHexEscape(ContextUnicodeCharWithHexValue, 'u', 4)
}

// NewLongUnicodeEscape recognizes \U with eight digits naming a code point
// no larger than MaxCodePoint. Its contexts share the type of \u escapes.
func NewLongUnicodeEscape() *HexEscape {
	r := NewHexEscape(ContextUnicodeCharWithHexValue, 'U', 8)
	r.name = LongUnicodeEscapeName
	r.max = MaxCodePoint
	return r
}

func (r *HexEscape) ContextType() ContextType { return r.typ }
func (r *HexEscape) Name() string             { return r.name }

func (r *HexEscape) Recognize(out *Output, line lexer.LineTokenPosition) []*Context {
	return scanEscapes(out, line, r.typ, func(tok lexer.Token) bool {
		return isTextWord(tok.Kind) && r.Matches(tok.Literal)
	})
}

// Matches applies the content rules to the word after the backslash.
func (r *HexEscape) Matches(text string) bool {
	if len(text) == 0 || text[0] != r.marker || !IsHex(text, r.digits) {
		return false
	}
	if r.max == 0 {
		return true
	}
	value, err := strconv.ParseUint(text[1:1+r.digits], 16, 64)
	return err == nil && value <= r.max
}

// IsHex reports whether the n characters after the first one are hex
// digits. text must hold at least n+1 characters.
func IsHex(text string, n int) bool {
	if n <= 0 || len(text) < n+1 {
		return false
	}
	for i := 1; i <= n; i++ {
		if !IsHexDigit(text[i]) {
			return false
		}
	}
	return true
}

func IsHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

// EscapedCharacter recognizes a backslash followed by a single special
// character: pipe, space, tab, hash or another backslash.
type EscapedCharacter struct {
	anyLine
}

func NewEscapedCharacter() *EscapedCharacter {
	return &EscapedCharacter{}
}

func (r *EscapedCharacter) ContextType() ContextType { return ContextEscapedCharacter }
func (r *EscapedCharacter) Name() string             { return ContextEscapedCharacter.String() }

func (r *EscapedCharacter) Recognize(out *Output, line lexer.LineTokenPosition) []*Context {
	return scanEscapes(out, line, ContextEscapedCharacter, func(tok lexer.Token) bool {
		switch tok.Kind {
		case lexer.TokenPipe, lexer.TokenSpace, lexer.TokenTab, lexer.TokenBackslash, lexer.TokenHash:
			return true
		}
		return false
	})
}

func isTextWord(k lexer.TokenKind) bool {
	return k == lexer.TokenWord || k == lexer.TokenCommentWord
}
