package classify

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/robotlex/robot/lexer"
)

func TestIsHex(t *testing.T) {
	tests := []struct {
		text   string
		digits int
		want   bool
	}{
		{"w0A", 2, true},
		{"w1A", 2, true},
		{"waf", 2, true},
		{"wG0", 2, false},
		{"w1G", 2, false},
		{"w1", 2, false},
		{"w", 2, false},
		{"", 2, false},
		{"x41BC", 2, true},
		{"u00e9", 4, true},
		{"u00g9", 4, false},
		{"U0010FFFF", 8, true},
		{"x41", 0, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%d", tt.text, tt.digits), func(t *testing.T) {
			assert.Equal(t, tt.want, IsHex(tt.text, tt.digits))
		})
	}
}

func TestIsHexAllCombinations(t *testing.T) {
	for a := 0; a < 128; a++ {
		for b := 0; b < 128; b++ {
			text := string([]byte{'w', byte(a), byte(b)})
			want := IsHexDigit(byte(a)) && IsHexDigit(byte(b))
			if IsHex(text, 2) != want {
				t.Fatalf("IsHex(%q, 2) = %v, want %v", text, !want, want)
			}
		}
	}
}

func TestStartsWithLetter(t *testing.T) {
	assert.True(t, StartsWithLetter("new", 'n', 'N'))
	assert.True(t, StartsWithLetter("Next", 'n', 'N'))
	assert.False(t, StartsWithLetter("", 'n', 'N'))
	assert.False(t, StartsWithLetter("mew", 'n', 'N'))
}

func TestHexEscapeCustomMarker(t *testing.T) {
	r := NewHexEscape(ContextCharacterAsHexValue, 'w', 2)

	assert.Empty(t, recognizeAll(r, `\w1G`))

	found := recognizeAll(r, `\w1A`)
	require.Len(t, found, 1)
	assert.Equal(t, ContextCharacterAsHexValue, found[0].Type())
	assert.Equal(t, `\w1A`, found[0].Text())
}

func TestHexEscapes(t *testing.T) {
	tests := []struct {
		name  string
		r     Recognizer
		input string
		want  []string
	}{
		{"byte", NewByteHexEscape(), `Log  \x41`, []string{`\x41`}},
		{"byte-with-tail", NewByteHexEscape(), `\x41BC`, []string{`\x41BC`}},
		{"byte-invalid", NewByteHexEscape(), `\x4G`, nil},
		{"byte-upper-marker", NewByteHexEscape(), `\X41`, nil},
		{"byte-twice", NewByteHexEscape(), `\x41\x42`, []string{`\x41`, `\x42`}},
		{"unicode", NewUnicodeEscape(), `caf\u00e9`, []string{`\u00e9`}},
		{"unicode-short", NewUnicodeEscape(), `\u00e`, nil},
		{"unicode-long", NewLongUnicodeEscape(), `\U0001F600`, []string{`\U0001F600`}},
		{"unicode-long-lower-marker", NewLongUnicodeEscape(), `\u0001F600`, nil},
		{"escaped-backslash", NewByteHexEscape(), `\\x41`, nil},
		{"double-escaped-backslash", NewByteHexEscape(), `\\\x41`, []string{`\x41`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, ctx := range recognizeAll(tt.r, tt.input) {
				assert.Equal(t, tt.r.ContextType(), ctx.Type())
				got = append(got, ctx.Text())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLongUnicodeBound(t *testing.T) {
	r := NewLongUnicodeEscape()
	accepted := []string{"00000000", "0000FFFF", "0001F600", "000FFFFF", "0010FFFF"}
	rejected := []string{"00110000", "7FFFFFFF", "FFFFFFFF", "0010FFFG"}

	for _, digits := range accepted {
		assert.True(t, r.Matches("U"+digits), digits)
		assert.Len(t, recognizeAll(r, `\U`+digits), 1, digits)
	}
	for _, digits := range rejected {
		assert.False(t, r.Matches("U"+digits), digits)
		assert.Empty(t, recognizeAll(r, `\U`+digits), digits)
	}
}

func TestLetterEscapes(t *testing.T) {
	tests := []struct {
		input string
		typ   ContextType
	}{
		{`\n`, ContextLineFeedText},
		{`\N`, ContextLineFeedText},
		{`\new`, ContextLineFeedText},
		{`\r`, ContextCarriageReturnText},
		{`\R`, ContextCarriageReturnText},
		{`\t`, ContextTabulatorText},
		{`\T`, ContextTabulatorText},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			out := build(tt.input)
			require.Equal(t, 1, out.Len())
			ctx := out.Contexts()[0]
			assert.Equal(t, tt.typ, ctx.Type())
			assert.Equal(t, []lexer.TokenKind{bs, word}, ctx.Kinds())
			assert.Equal(t, tt.input, ctx.Text())
		})
	}

	assert.Equal(t, 0, build(`\q`).Len())
}

func TestLineFeedEscapeInLine(t *testing.T) {
	out := build(`\n`)
	require.Equal(t, 1, out.Len())
	assert.Equal(t, ContextLineFeedText, out.Contexts()[0].Type())

	out = build("Log  first\\nsecond")
	found := out.OfType(ContextLineFeedText)
	require.Len(t, found, 1)
	assert.Equal(t, `\nsecond`, found[0].Text())
	assert.Equal(t, 11, found[0].StartColumn())
}

func TestEscapedBackslashIsNotALineFeed(t *testing.T) {
	out := build(`\\new`)
	assert.Empty(t, out.OfType(ContextLineFeedText))

	escaped := out.OfType(ContextEscapedCharacter)
	require.Len(t, escaped, 1)
	assert.Equal(t, `\\`, escaped[0].Text())

	out = build(`\\\new`)
	assert.Len(t, out.OfType(ContextLineFeedText), 1)
	assert.Len(t, out.OfType(ContextEscapedCharacter), 1)
}

func TestEscapedCharacter(t *testing.T) {
	tests := []struct {
		input string
		kinds []lexer.TokenKind
	}{
		{`\|`, []lexer.TokenKind{bs, pipe}},
		{`\ `, []lexer.TokenKind{bs, space}},
		{"\\\t", []lexer.TokenKind{bs, tab}},
		{`\\`, []lexer.TokenKind{bs, bs}},
		{`\#`, []lexer.TokenKind{bs, hash}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			found := recognizeAll(NewEscapedCharacter(), tt.input)
			require.Len(t, found, 1)
			assert.Equal(t, tt.kinds, found[0].Kinds())
		})
	}

	assert.Empty(t, recognizeAll(NewEscapedCharacter(), `\  `))
	assert.Empty(t, recognizeAll(NewEscapedCharacter(), `\word`))
}

func TestEscapeAtLineEnd(t *testing.T) {
	assert.Equal(t, 0, build(`foo\`).Len())
	assert.Equal(t, 0, build("foo\\\nbar").Len())
}

func TestIsEscaping(t *testing.T) {
	s := lexer.TokenizeString(`a\\\b`)
	line, ok := s.Line(1)
	require.True(t, ok)

	// a \ \ \ b
	assert.False(t, IsEscaping(s, line, 0))
	assert.True(t, IsEscaping(s, line, 1))
	assert.False(t, IsEscaping(s, line, 2))
	assert.True(t, IsEscaping(s, line, 3))

	assert.True(t, IsEscaped(s, line, 2))
	assert.False(t, IsEscaped(s, line, 3))
	assert.True(t, IsEscaped(s, line, 4))
}
