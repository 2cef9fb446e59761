package classify

import (
	"github.com/dhamidi/robotlex/robot/lexer"
)

const (
	pipe  = lexer.TokenPipe
	space = lexer.TokenSpace
	tab   = lexer.TokenTab
	bs    = lexer.TokenBackslash
	lf    = lexer.TokenLineFeed
	hash  = lexer.TokenHash
	ds    = lexer.TokenDoubleSpace
	word  = lexer.TokenWord
)

type shape struct {
	Type   ContextType
	Kinds  []lexer.TokenKind
	Column int
}

func shapesOf(cs []*Context) []shape {
	out := []shape{}
	for _, c := range cs {
		out = append(out, shape{Type: c.Type(), Kinds: c.Kinds(), Column: c.StartColumn()})
	}
	return out
}

// recognizeAll runs one recognizer directly over every line of input,
// accepting its contexts as it goes.
func recognizeAll(r Recognizer, input string) []*Context {
	s := lexer.TokenizeString(input)
	out := NewOutput(s)
	var all []*Context
	it := s.Iterator()
	for {
		line, ok := it.Next()
		if !ok {
			break
		}
		for _, ctx := range r.Recognize(out, line) {
			if err := out.Add(ctx); err != nil {
				panic(err)
			}
			all = append(all, ctx)
		}
	}
	return all
}

func build(input string) *Output {
	return BuildContexts(lexer.TokenizeString(input))
}
