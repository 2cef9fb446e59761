package classify

import (
	"errors"
	"fmt"
	"slices"

	"github.com/emirpasic/gods/v2/trees/redblacktree"

	"github.com/dhamidi/robotlex/robot/lexer"
)

var ErrOverlap = errors.New("context overlaps an accepted context")

// Output accumulates the accepted contexts of one stream, grouped by line.
type Output struct {
	stream  *lexer.Stream
	lines   *redblacktree.Tree[int, []*Context]
	claimed map[int]*Context
	count   int
}

func NewOutput(stream *lexer.Stream) *Output {
	return &Output{
		stream:  stream,
		lines:   redblacktree.New[int, []*Context](),
		claimed: make(map[int]*Context),
	}
}

func (o *Output) Stream() *lexer.Stream {
	return o.stream
}

// Add accepts ctx. It fails if any of its tokens already belongs to an
// accepted context.
func (o *Output) Add(ctx *Context) error {
	first, end := ctx.TokenRange()
	for i := first; i < end; i++ {
		if other, ok := o.claimed[i]; ok {
			return fmt.Errorf("%w: %s and %s", ErrOverlap, ctx, other)
		}
	}
	for i := first; i < end; i++ {
		o.claimed[i] = ctx
	}

	list, _ := o.lines.Get(ctx.LineNumber())
	pos, _ := slices.BinarySearchFunc(list, ctx, Compare)
	list = slices.Insert(list, pos, ctx)
	o.lines.Put(ctx.LineNumber(), list)
	o.count++
	return nil
}

// Claimed reports whether the token at stream index i belongs to an
// accepted context.
func (o *Output) Claimed(i int) bool {
	_, ok := o.claimed[i]
	return ok
}

func (o *Output) ContextOf(i int) (*Context, bool) {
	ctx, ok := o.claimed[i]
	return ctx, ok
}

// ContextsAt returns the contexts of one line ordered by offset.
func (o *Output) ContextsAt(line int) []*Context {
	list, _ := o.lines.Get(line)
	return slices.Clone(list)
}

// Contexts returns every context ordered by line and offset.
func (o *Output) Contexts() []*Context {
	out := make([]*Context, 0, o.count)
	it := o.lines.Iterator()
	for it.Next() {
		out = append(out, it.Value()...)
	}
	return out
}

// OfType returns the contexts of one type ordered by line and offset.
func (o *Output) OfType(typ ContextType) []*Context {
	var out []*Context
	for _, ctx := range o.Contexts() {
		if ctx.Type() == typ {
			out = append(out, ctx)
		}
	}
	return out
}

// Lines returns the numbers of lines holding at least one context.
func (o *Output) Lines() []int {
	return o.lines.Keys()
}

func (o *Output) Len() int {
	return o.count
}
