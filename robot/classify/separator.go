package classify

import "github.com/dhamidi/robotlex/robot/lexer"

// IsPipeLine reports whether a line uses the pipe separated format: its
// first token is a pipe followed by whitespace or the end of the line.
func IsPipeLine(s *lexer.Stream, line lexer.LineTokenPosition) bool {
	if line.Len() == 0 || s.At(line.Start).Kind != lexer.TokenPipe {
		return false
	}
	next := line.Start + 1
	if next == line.End {
		return true
	}
	k := s.At(next).Kind
	return k.IsWhitespace() || k.IsLineEnd()
}

// separatorRun returns the end of the run of unclaimed, unescaped tokens
// starting at i whose kinds satisfy member.
func separatorRun(out *Output, line lexer.LineTokenPosition, i int, member func(lexer.TokenKind) bool) int {
	s := out.Stream()
	j := i
	for j < line.End && !out.Claimed(j) && member(s.At(j).Kind) && !IsEscaped(s, line, j) {
		j++
	}
	return j
}

func isPipeOrWhitespace(k lexer.TokenKind) bool {
	return k == lexer.TokenPipe || k.IsWhitespace()
}

func isWide(k lexer.TokenKind) bool {
	return k == lexer.TokenDoubleSpace || k == lexer.TokenTab
}

// PipeSeparator recognizes cell separators of the pipe separated format.
// Each pipe takes at most one whitespace token on either side; a pipe
// without any adjacent whitespace is not a separator. Whitespace left over
// in a run becomes pretty-align when it is at least two columns wide or
// shares its run with a pipe.
type PipeSeparator struct{}

func NewPipeSeparator() *PipeSeparator {
	return &PipeSeparator{}
}

func (r *PipeSeparator) ContextType() ContextType { return ContextPipeSeparated }
func (r *PipeSeparator) Name() string             { return ContextPipeSeparated.String() }

func (r *PipeSeparator) appliesTo(s *lexer.Stream, line lexer.LineTokenPosition) bool {
	return IsPipeLine(s, line)
}

func (r *PipeSeparator) Recognize(out *Output, line lexer.LineTokenPosition) []*Context {
	var found []*Context
	for i := line.Start; i < line.End; {
		end := separatorRun(out, line, i, isPipeOrWhitespace)
		if end == i {
			i++
			continue
		}
		found = append(found, r.splitRun(out, line, i, end)...)
		i = end
	}
	return found
}

func (r *PipeSeparator) splitRun(out *Output, line lexer.LineTokenPosition, first, end int) []*Context {
	s := out.Stream()
	c := newCandidate(s, ContextPipeSeparated, line)
	align := newCandidate(s, ContextPrettyAlign, line)
	var found []*Context

	hasPipe, hasWide := false, false
	for j := first; j < end; j++ {
		hasPipe = hasPipe || s.At(j).Kind == lexer.TokenPipe
		hasWide = hasWide || isWide(s.At(j).Kind)
	}
	if !hasPipe && !hasWide {
		return nil
	}

	// flushAlign emits the pending leftover whitespace.
	flushAlign := func() {
		if !align.empty() {
			found = append(found, align.commit())
		}
	}

	used := first
	for j := first; j < end; j++ {
		if s.At(j).Kind != lexer.TokenPipe {
			continue
		}
		start, stop := j, j+1
		if j-1 >= used && s.At(j-1).Kind.IsWhitespace() {
			start = j - 1
		}
		if stop < end && s.At(stop).Kind.IsWhitespace() {
			stop++
		}
		if start == j && stop == j+1 {
			continue
		}
		for k := used; k < start; k++ {
			if s.At(k).Kind == lexer.TokenPipe {
				flushAlign()
				continue
			}
			align.add(k)
		}
		flushAlign()
		c.addRange(start, stop)
		found = append(found, c.commit())
		used = stop
		j = stop - 1
	}
	for k := used; k < end; k++ {
		if s.At(k).Kind == lexer.TokenPipe {
			flushAlign()
			continue
		}
		align.add(k)
	}
	flushAlign()
	return found
}

// SpaceSeparator recognizes cell separators of the space separated format:
// a run of whitespace at least two columns wide. The first token of the run
// is the separator, a leading single space is joined with the token after
// it, and the rest of the run is pretty-align.
type SpaceSeparator struct{}

func NewSpaceSeparator() *SpaceSeparator {
	return &SpaceSeparator{}
}

func (r *SpaceSeparator) ContextType() ContextType { return ContextDoubleSpaceOrTabulatorSeparated }
func (r *SpaceSeparator) Name() string {
	return ContextDoubleSpaceOrTabulatorSeparated.String()
}

func (r *SpaceSeparator) appliesTo(s *lexer.Stream, line lexer.LineTokenPosition) bool {
	return !IsPipeLine(s, line)
}

func (r *SpaceSeparator) Recognize(out *Output, line lexer.LineTokenPosition) []*Context {
	s := out.Stream()
	c := newCandidate(s, ContextDoubleSpaceOrTabulatorSeparated, line)
	var found []*Context

	for i := line.Start; i < line.End; {
		end := separatorRun(out, line, i, lexer.TokenKind.IsWhitespace)
		if end == i {
			i++
			continue
		}
		wide := false
		for j := i; j < end; j++ {
			wide = wide || isWide(s.At(j).Kind)
		}
		if !wide {
			i = end
			continue
		}

		split := i + 1
		if !isWide(s.At(i).Kind) {
			split++
		}
		c.addRange(i, split)
		found = append(found, c.commit())
		if split < end {
			c.addRange(split, end)
			found = append(found, c.commitAs(ContextPrettyAlign))
		}
		i = end
	}
	return found
}
