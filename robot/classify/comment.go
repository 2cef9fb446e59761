package classify

import "github.com/dhamidi/robotlex/robot/lexer"

// DeclaredComment recognizes a comment opened by an unescaped #, a run of
// hashes or the Comment keyword at the start of a cell. The comment runs to
// the end of the line, the line terminator excluded. On pipe-format lines a
// closing pipe separator is left out of the comment.
type DeclaredComment struct {
	anyLine
}

func NewDeclaredComment() *DeclaredComment {
	return &DeclaredComment{}
}

func (r *DeclaredComment) ContextType() ContextType { return ContextDeclaredComment }
func (r *DeclaredComment) Name() string             { return ContextDeclaredComment.String() }

func (r *DeclaredComment) Recognize(out *Output, line lexer.LineTokenPosition) []*Context {
	s := out.Stream()
	end := line.End
	for end > line.Start && s.At(end-1).Kind.IsLineEnd() {
		end--
	}
	if IsPipeLine(s, line) {
		end = closingSeparator(s, line, end)
	}

	for i := line.Start; i < end; i++ {
		if out.Claimed(i) || !r.opens(s, line, i) {
			continue
		}
		for j := i; j < end; j++ {
			if out.Claimed(j) {
				// An accepted context inside the comment ends it early.
				end = j
				break
			}
		}
		if end <= i {
			return nil
		}
		c := newCandidate(s, ContextDeclaredComment, line)
		c.addRange(i, end)
		return []*Context{c.commit()}
	}
	return nil
}

func (r *DeclaredComment) opens(s *lexer.Stream, line lexer.LineTokenPosition, i int) bool {
	switch s.At(i).Kind {
	case lexer.TokenHash, lexer.TokenManyHashes, lexer.TokenCommentWord:
	default:
		return false
	}
	if i == line.Start {
		return true
	}
	if IsEscaped(s, line, i) {
		return false
	}
	return isPipeOrWhitespace(s.At(i - 1).Kind)
}

// closingSeparator returns the index where a trailing "[ws] | [ws]" run
// starts, or end when the line does not close with a pipe separator.
func closingSeparator(s *lexer.Stream, line lexer.LineTokenPosition, end int) int {
	p := end
	for p > line.Start && s.At(p-1).Kind.IsWhitespace() {
		p--
	}
	trailing := p < end
	p--
	if p <= line.Start || s.At(p).Kind != lexer.TokenPipe || IsEscaped(s, line, p) {
		return end
	}
	if s.At(p - 1).Kind.IsWhitespace() {
		return p - 1
	}
	if trailing {
		return p
	}
	return end
}
