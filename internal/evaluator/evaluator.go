package evaluator

// Seven-card evaluator backed by two precomputed tables: one over 13-bit
// suit patterns for flushes, one over rank-count shapes for everything else.
// Higher strengths are better hands.

import (
	"context"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"
)

// Option configures table construction.
type Option func(*options)

type options struct {
	logger  *log.Logger
	workers int
	clock   quartz.Clock
}

// WithLogger sets the logger used to report construction.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithWorkers sets how many goroutines classify shapes. Values below one
// mean one.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = max(1, n)
	}
}

// WithClock sets the clock used to time construction.
func WithClock(clock quartz.Clock) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

func defaultOptions() options {
	workers := runtime.NumCPU()
	if workers > 8 {
		workers = 8 // Cap at 8 for diminishing returns
	}
	return options{
		logger:  log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel}),
		workers: workers,
		clock:   quartz.NewReal(),
	}
}

// BuildStats summarises a finished construction.
type BuildStats struct {
	Shapes         int
	FlushPatterns  int
	FlushClasses   int
	ShapesByClass  map[Category]int
	ClassesByClass map[Category]int
	Elapsed        time.Duration
}

// Tables holds the immutable lookup tables. It is safe for concurrent use.
type Tables struct {
	flush    *FlushTable
	nonFlush *NonFlushTable
	stats    BuildStats
}

// Build constructs both tables concurrently. A non-nil error always wraps
// ErrIntegrity or the context's error.
func Build(ctx context.Context, opts ...Option) (*Tables, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	start := o.clock.Now()
	o.logger.Debug("Building evaluator tables", "workers", o.workers)

	t := &Tables{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t.flush = BuildFlushTable()
		return nil
	})
	g.Go(func() error {
		nf, err := BuildNonFlushTable(gctx, o.workers)
		if err != nil {
			return err
		}
		t.nonFlush = nf
		return nil
	})
	if err := g.Wait(); err != nil {
		o.logger.Error("Failed to build evaluator tables", "error", err)
		return nil, err
	}

	t.stats = BuildStats{
		Shapes:         ExpectedShapes,
		FlushPatterns:  t.flush.Eligible(),
		FlushClasses:   t.flush.Groups(),
		ShapesByClass:  make(map[Category]int),
		ClassesByClass: make(map[Category]int),
		Elapsed:        o.clock.Since(start),
	}
	for _, c := range nonFlushOrder {
		t.stats.ShapesByClass[c] = t.nonFlush.Shapes(c)
		t.stats.ClassesByClass[c] = t.nonFlush.Classes(c)
	}

	o.logger.Debug("Built evaluator tables",
		"shapes", t.stats.Shapes,
		"flush_patterns", t.stats.FlushPatterns,
		"flush_classes", t.stats.FlushClasses,
		"elapsed", t.stats.Elapsed)

	return t, nil
}

// Evaluate returns the strength of a seven-card mask. A mask that does not
// hold exactly seven cards is an integrity failure and panics.
//
// Five cards of one suit leave two cards over, too few for a full house or
// quads, so a flush pattern settles the hand without the shape table.
func (t *Tables) Evaluate(m Mask) Strength {
	if n := m.Count(); n != HandSize {
		panic(integrityf("evaluate called with %d cards", n))
	}
	if pattern := m.FlushValue(); pattern != 0 {
		if StraightTop(pattern) >= 0 {
			return NewStrength(StraightFlush, t.flush.Rank(pattern))
		}
		return NewStrength(Flush, t.flush.Rank(pattern))
	}
	return t.nonFlush.Lookup(m.Shape())
}

// Flush returns the flush table.
func (t *Tables) Flush() *FlushTable {
	return t.flush
}

// NonFlush returns the shape table.
func (t *Tables) NonFlush() *NonFlushTable {
	return t.nonFlush
}

// Stats returns construction statistics.
func (t *Tables) Stats() BuildStats {
	return t.stats
}
