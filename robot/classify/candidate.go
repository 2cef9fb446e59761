package classify

import "github.com/dhamidi/robotlex/robot/lexer"

// candidate is a context under construction. Tokens are added in stream
// order and either committed as one context or dropped together.
type candidate struct {
	stream  *lexer.Stream
	typ     ContextType
	line    int
	indexes []int
}

func newCandidate(stream *lexer.Stream, typ ContextType, line lexer.LineTokenPosition) *candidate {
	return &candidate{stream: stream, typ: typ, line: line.LineNumber}
}

func (c *candidate) add(i int) {
	c.indexes = append(c.indexes, i)
}

func (c *candidate) addRange(first, end int) {
	for i := first; i < end; i++ {
		c.add(i)
	}
}

func (c *candidate) empty() bool {
	return len(c.indexes) == 0
}

func (c *candidate) reset() {
	c.indexes = c.indexes[:0]
}

// commit builds the context and resets the candidate.
func (c *candidate) commit() *Context {
	return c.commitAs(c.typ)
}

// commitAs is commit with a different context type.
func (c *candidate) commitAs(typ ContextType) *Context {
	ctx := newContext(c.stream, typ, c.line, c.indexes[0], c.indexes[len(c.indexes)-1]+1)
	c.reset()
	return ctx
}
