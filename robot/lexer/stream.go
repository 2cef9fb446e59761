package lexer

import (
	"fmt"
	"strings"
)

// LineTokenPosition is the half-open token index range [Start, End) of one
// line in a Stream.
type LineTokenPosition struct {
	LineNumber int
	Start      int
	End        int
}

func (p LineTokenPosition) Len() int {
	return p.End - p.Start
}

func (p LineTokenPosition) Contains(index int) bool {
	return index >= p.Start && index < p.End
}

func (p LineTokenPosition) String() string {
	return fmt.Sprintf("line %d [%d, %d)", p.LineNumber, p.Start, p.End)
}

// Stream holds every token of one input together with its line windows.
// It is read-only once built.
type Stream struct {
	file      string
	tokens    []Token
	lines     []LineTokenPosition
	positions map[TokenKind][]int
}

func newStream(file string, tokens []Token) *Stream {
	s := &Stream{
		file:      file,
		tokens:    tokens,
		positions: make(map[TokenKind][]int),
	}
	for i, tok := range tokens {
		s.positions[tok.Kind] = append(s.positions[tok.Kind], i)
		line := tok.Line()
		if n := len(s.lines); n > 0 && s.lines[n-1].LineNumber == line {
			s.lines[n-1].End = i + 1
			continue
		}
		s.lines = append(s.lines, LineTokenPosition{LineNumber: line, Start: i, End: i + 1})
	}
	return s
}

func (s *Stream) File() string {
	return s.file
}

func (s *Stream) Len() int {
	return len(s.tokens)
}

// At returns a copy of the token at index i.
func (s *Stream) At(i int) Token {
	return s.tokens[i]
}

// Tokens returns a copy of all tokens.
func (s *Stream) Tokens() []Token {
	out := make([]Token, len(s.tokens))
	copy(out, s.tokens)
	return out
}

// Window returns a copy of the tokens of one line window.
func (s *Stream) Window(p LineTokenPosition) []Token {
	out := make([]Token, p.Len())
	copy(out, s.tokens[p.Start:p.End])
	return out
}

func (s *Stream) Lines() []LineTokenPosition {
	out := make([]LineTokenPosition, len(s.lines))
	copy(out, s.lines)
	return out
}

// Line returns the window of the given 1-based line number.
func (s *Stream) Line(number int) (LineTokenPosition, bool) {
	if number < 1 || number > len(s.lines) {
		return LineTokenPosition{}, false
	}
	// Line numbers are dense, every line holds at least its terminator.
	p := s.lines[number-1]
	return p, p.LineNumber == number
}

// PositionsOf returns the indexes of every token of the given kind.
func (s *Stream) PositionsOf(kind TokenKind) []int {
	idx := s.positions[kind]
	out := make([]int, len(idx))
	copy(out, idx)
	return out
}

// Text reassembles the input from the token literals.
func (s *Stream) Text() string {
	var sb strings.Builder
	for _, tok := range s.tokens {
		sb.WriteString(tok.Literal)
	}
	return sb.String()
}

// LineText reassembles one line including its terminator.
func (s *Stream) LineText(p LineTokenPosition) string {
	var sb strings.Builder
	for _, tok := range s.tokens[p.Start:p.End] {
		sb.WriteString(tok.Literal)
	}
	return sb.String()
}

// Iterator walks the stream line by line.
func (s *Stream) Iterator() *LineIterator {
	return &LineIterator{lines: s.lines}
}

type LineIterator struct {
	lines []LineTokenPosition
	next  int
}

func (it *LineIterator) Next() (LineTokenPosition, bool) {
	if it.next >= len(it.lines) {
		return LineTokenPosition{}, false
	}
	p := it.lines[it.next]
	it.next++
	return p, true
}
