package poker

import (
	"context"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/handrank/internal/evaluator"
)

// Strength is the comparable value of a seven-card hand. Higher is stronger
// and equal strengths split the pot.
type Strength = evaluator.Strength

// Category enumerates the classes of poker hands ordered from weakest to strongest.
type Category = evaluator.Category

const (
	HighCard      = evaluator.HighCard
	Pair          = evaluator.Pair
	TwoPair       = evaluator.TwoPair
	ThreeOfAKind  = evaluator.ThreeOfAKind
	Straight      = evaluator.Straight
	Flush         = evaluator.Flush
	FullHouse     = evaluator.FullHouse
	FourOfAKind   = evaluator.FourOfAKind
	StraightFlush = evaluator.StraightFlush
)

// BuildStats summarises table construction.
type BuildStats = evaluator.BuildStats

// Option configures an Evaluator.
type Option = evaluator.Option

// WithLogger sets the logger used while building tables.
func WithLogger(logger *log.Logger) Option { return evaluator.WithLogger(logger) }

// WithWorkers sets the fan-out used to classify shapes.
func WithWorkers(n int) Option { return evaluator.WithWorkers(n) }

// WithClock sets the clock used to time construction.
func WithClock(clock quartz.Clock) Option { return evaluator.WithClock(clock) }

// Evaluator ranks seven-card hands in constant time. It is read-only after
// construction and safe for concurrent use.
type Evaluator struct {
	tables *evaluator.Tables
}

// NewEvaluator builds the lookup tables. Tables that fail their integrity
// checks would rank hands wrongly, so construction panics instead.
func NewEvaluator(opts ...Option) *Evaluator {
	e, err := NewEvaluatorContext(context.Background(), opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// NewEvaluatorContext is NewEvaluator with cancellation. Errors wrap
// evaluator.ErrIntegrity or the context's error.
func NewEvaluatorContext(ctx context.Context, opts ...Option) (*Evaluator, error) {
	tables, err := evaluator.Build(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &Evaluator{tables: tables}, nil
}

var defaultEvaluator = sync.OnceValue(func() *Evaluator {
	return NewEvaluator()
})

// Default returns a process-wide evaluator built on first use.
func Default() *Evaluator {
	return defaultEvaluator()
}

// Evaluate returns the strength of a seven-card hand. Hands not built by
// NewHand or ParseHand must still hold exactly seven cards; anything else
// panics with an integrity error.
func (e *Evaluator) Evaluate(h Hand) Strength {
	return e.tables.Evaluate(evaluator.Mask(h))
}

// Compare returns 1 if a beats b, -1 if b beats a and 0 for a split pot.
func (e *Evaluator) Compare(a, b Hand) int {
	return e.Evaluate(a).Compare(e.Evaluate(b))
}

const batchChunk = 4096

// EvaluateBatch evaluates hands in parallel and writes results into out.
// If out is smaller than hands, a new slice is allocated and returned.
func (e *Evaluator) EvaluateBatch(ctx context.Context, hands []Hand, out []Strength) ([]Strength, error) {
	if len(out) < len(hands) {
		out = make([]Strength, len(hands))
	} else {
		out = out[:len(hands)]
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for start := 0; start < len(hands); start += batchChunk {
		end := min(start+batchChunk, len(hands))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := start; i < end; i++ {
				out[i] = e.Evaluate(hands[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Stats returns construction statistics.
func (e *Evaluator) Stats() BuildStats {
	return e.tables.Stats()
}
