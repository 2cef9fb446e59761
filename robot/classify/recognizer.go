package classify

import (
	"errors"
	"fmt"

	"github.com/dhamidi/robotlex/robot/lexer"
)

var ErrUnknownRecognizer = errors.New("unknown recognizer")

// Recognizer scans one line window and returns the contexts it finds there.
// Tokens already claimed in out are never used. The set of recognizers is
// closed, see the New* constructors.
type Recognizer interface {
	ContextType() ContextType
	Name() string
	Recognize(out *Output, line lexer.LineTokenPosition) []*Context

	// appliesTo reports whether the builder should run the recognizer on
	// the given line.
	appliesTo(s *lexer.Stream, line lexer.LineTokenPosition) bool
}

// anyLine is embedded by recognizers that run on every line.
type anyLine struct{}

func (anyLine) appliesTo(*lexer.Stream, lexer.LineTokenPosition) bool {
	return true
}

var recognizerFactories = []struct {
	name string
	new  func() Recognizer
}{
	{"declared-comment", func() Recognizer { return NewDeclaredComment() }},
	{"escaped-character", func() Recognizer { return NewEscapedCharacter() }},
	{"character-as-hex-value", func() Recognizer { return NewByteHexEscape() }},
	{"unicode-char-with-hex-value", func() Recognizer { return NewUnicodeEscape() }},
	{LongUnicodeEscapeName, func() Recognizer { return NewLongUnicodeEscape() }},
	{"line-feed-text", func() Recognizer { return NewLineFeedEscape() }},
	{"carriage-return-text", func() Recognizer { return NewCarriageReturnEscape() }},
	{"tabulator-text", func() Recognizer { return NewTabulatorEscape() }},
	{"pipe-separated", func() Recognizer { return NewPipeSeparator() }},
	{"double-space-or-tabulator-separated", func() Recognizer { return NewSpaceSeparator() }},
}

// DefaultRecognizers returns the builtin recognizers in the order the
// builder runs them: comments, escapes, then separators.
func DefaultRecognizers() []Recognizer {
	rs := make([]Recognizer, len(recognizerFactories))
	for i, f := range recognizerFactories {
		rs[i] = f.new()
	}
	return rs
}

// RecognizerNames lists the builtin recognizer names in default order.
func RecognizerNames() []string {
	names := make([]string, len(recognizerFactories))
	for i, f := range recognizerFactories {
		names[i] = f.name
	}
	return names
}

func RecognizerByName(name string) (Recognizer, error) {
	for _, f := range recognizerFactories {
		if f.name == name {
			return f.new(), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownRecognizer, name)
}

// RecognizersByName resolves names in order.
func RecognizersByName(names []string) ([]Recognizer, error) {
	rs := make([]Recognizer, 0, len(names))
	for _, name := range names {
		r, err := RecognizerByName(name)
		if err != nil {
			return nil, err
		}
		rs = append(rs, r)
	}
	return rs, nil
}

// IsEscaping reports whether the token at index i is a backslash that
// escapes the token after it. A backslash escapes when the run of
// backslashes directly before it on the line has even length.
func IsEscaping(s *lexer.Stream, line lexer.LineTokenPosition, i int) bool {
	if !line.Contains(i) || s.At(i).Kind != lexer.TokenBackslash {
		return false
	}
	run := 0
	for j := i - 1; j >= line.Start && s.At(j).Kind == lexer.TokenBackslash; j-- {
		run++
	}
	return run%2 == 0
}

// IsEscaped reports whether the token at index i follows an escaping
// backslash.
func IsEscaped(s *lexer.Stream, line lexer.LineTokenPosition, i int) bool {
	return i > line.Start && IsEscaping(s, line, i-1)
}
