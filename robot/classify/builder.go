package classify

import (
	"github.com/tliron/commonlog"

	"github.com/dhamidi/robotlex/robot/lexer"
)

// Builder runs an ordered list of recognizers over every line of a stream.
// Each recognizer sees the contexts accepted by the ones before it, so the
// order decides which recognizer gets the first chance at a token.
type Builder struct {
	recognizers []Recognizer
	log         commonlog.Logger
}

type Option func(*Builder)

// WithRecognizers replaces the default recognizers.
func WithRecognizers(rs ...Recognizer) Option {
	return func(b *Builder) {
		b.recognizers = rs
	}
}

func WithLogger(log commonlog.Logger) Option {
	return func(b *Builder) {
		b.log = log
	}
}

func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		recognizers: DefaultRecognizers(),
		log:         commonlog.GetLogger("robotlex.classify"),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Builder) Recognizers() []Recognizer {
	out := make([]Recognizer, len(b.recognizers))
	copy(out, b.recognizers)
	return out
}

// Build classifies every line of s. It never fails: runs no recognizer
// accepts stay unclassified.
func (b *Builder) Build(s *lexer.Stream) *Output {
	out := NewOutput(s)
	it := s.Iterator()
	for {
		line, ok := it.Next()
		if !ok {
			break
		}
		b.buildLine(out, line)
	}
	if s.File() != "" {
		b.log.Debugf("%s: %d contexts on %d lines", s.File(), out.Len(), len(out.Lines()))
	}
	return out
}

func (b *Builder) buildLine(out *Output, line lexer.LineTokenPosition) {
	for _, r := range b.recognizers {
		if !r.appliesTo(out.Stream(), line) {
			continue
		}
		for _, ctx := range r.Recognize(out, line) {
			if err := out.Add(ctx); err != nil {
				b.log.Warningf("%s: line %d: %v", r.Name(), line.LineNumber, err)
			}
		}
	}
}

var defaultBuilder = NewBuilder()

// BuildContexts classifies s with the default recognizers.
func BuildContexts(s *lexer.Stream) *Output {
	return defaultBuilder.Build(s)
}
