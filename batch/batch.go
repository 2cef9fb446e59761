// Package batch classifies many inputs concurrently. Every input gets its
// own token stream and context output, so workers share nothing.
package batch

import (
	"context"
	"fmt"
	"time"

	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"

	"github.com/dhamidi/robotlex/robot/classify"
	"github.com/dhamidi/robotlex/robot/lexer"
)

type Result struct {
	Name     string
	Stream   *lexer.Stream
	Output   *classify.Output
	Err      error
	Duration time.Duration
}

type Processor struct {
	builder *classify.Builder
	workers int
	timeout time.Duration
	log     commonlog.Logger
}

type Option func(*Processor)

func WithBuilder(b *classify.Builder) Option {
	return func(p *Processor) {
		p.builder = b
	}
}

func WithWorkers(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithTimeout bounds the time spent on one input. Zero disables the limit.
func WithTimeout(d time.Duration) Option {
	return func(p *Processor) {
		p.timeout = d
	}
}

func WithLogger(log commonlog.Logger) Option {
	return func(p *Processor) {
		p.log = log
	}
}

func NewProcessor(opts ...Option) *Processor {
	p := &Processor{
		builder: classify.NewBuilder(),
		workers: 4,
		timeout: 10 * time.Second,
		log:     commonlog.GetLogger("robotlex.batch"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process classifies every source and returns one result per source, in
// input order. Failures are recorded per result; the returned error is
// only set when ctx ends before all sources were processed.
func (p *Processor) Process(ctx context.Context, sources []Source) ([]Result, error) {
	results := make([]Result, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for i, src := range sources {
		g.Go(func() error {
			results[i] = p.processOne(gctx, src)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}

func (p *Processor) processOne(ctx context.Context, src Source) Result {
	result := Result{Name: src.Name}
	if err := ctx.Err(); err != nil {
		result.Err = err
		return result
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	start := time.Now()
	done := make(chan struct{})
	var (
		stream  *lexer.Stream
		output  *classify.Output
		loadErr error
	)

	go func() {
		defer close(done)
		data, err := src.Load()
		if err != nil {
			loadErr = err
			return
		}
		stream = lexer.TokenizeFile(data, src.Name)
		output = p.builder.Build(stream)
	}()

	select {
	case <-done:
		result.Duration = time.Since(start)
		if loadErr != nil {
			result.Err = fmt.Errorf("read %s: %w", src.Name, loadErr)
			p.log.Errorf("%v", result.Err)
			return result
		}
		result.Stream = stream
		result.Output = output
		p.log.Infof("%s: %d contexts in %s", src.Name, output.Len(), result.Duration)
	case <-ctx.Done():
		result.Duration = time.Since(start)
		result.Err = fmt.Errorf("timeout classifying %s: %w", src.Name, ctx.Err())
		p.log.Warningf("%v", result.Err)
	}
	return result
}

type Summary struct {
	Files    int
	Failed   int
	Tokens   int
	Contexts int
	ByType   map[classify.ContextType]int
}

func Summarize(results []Result) Summary {
	s := Summary{ByType: make(map[classify.ContextType]int)}
	for _, r := range results {
		s.Files++
		if r.Err != nil {
			s.Failed++
			continue
		}
		s.Tokens += r.Stream.Len()
		s.Contexts += r.Output.Len()
		for _, ctx := range r.Output.Contexts() {
			s.ByType[ctx.Type()]++
		}
	}
	return s
}
