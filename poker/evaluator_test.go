package poker

import (
	"cmp"
	"context"
	"errors"
	"testing"

	phpoker "github.com/paulhankin/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/handrank/internal/evaluator"
	"github.com/lox/handrank/internal/randutil"
)

func TestEvaluateEndToEnd(t *testing.T) {
	t.Parallel()
	e := Default()

	straightFlush := MustParseHand("2c3c4c5c6c7d8d")
	fullHouse := MustParseHand("2c3c2d3d2h7h9s")
	straight := MustParseHand("2c3d4h5s6c7d8h")

	assert.Equal(t, StraightFlush, e.Evaluate(straightFlush).Category())
	assert.Equal(t, FullHouse, e.Evaluate(fullHouse).Category())
	assert.Equal(t, Straight, e.Evaluate(straight).Category())

	assert.Equal(t, 1, e.Compare(fullHouse, straight))
	assert.Equal(t, -1, e.Compare(straight, fullHouse))
	assert.Equal(t, 1, e.Compare(straightFlush, fullHouse))
	assert.Equal(t, 0, e.Compare(fullHouse, MustParseHand("2s3s2d3d2h7c9h")))
}

func TestEvaluatePanicsOnShortHand(t *testing.T) {
	t.Parallel()
	e := Default()

	var h Hand
	for _, c := range MustParseCards("AsKsQsJs") {
		h.AddCard(c)
	}
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, evaluator.ErrIntegrity))
	}()
	e.Evaluate(h)
}

func TestNewEvaluatorContextCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewEvaluatorContext(ctx, WithWorkers(1))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestEvaluateBatch(t *testing.T) {
	t.Parallel()
	e := Default()
	deck := NewDeck(randutil.New(17))

	hands := make([]Hand, 10_000)
	for i := range hands {
		hands[i] = deck.DealHand()
	}

	out, err := e.EvaluateBatch(context.Background(), hands, nil)
	require.NoError(t, err)
	require.Len(t, out, len(hands))
	for i, h := range hands {
		require.Equal(t, e.Evaluate(h), out[i])
	}

	// A large enough buffer is reused.
	buf := make([]Strength, len(hands)+5)
	out, err = e.EvaluateBatch(context.Background(), hands, buf)
	require.NoError(t, err)
	assert.Len(t, out, len(hands))
	assert.Same(t, &buf[0], &out[0])
}

func TestEvaluateBatchCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	hands := []Hand{MustParseHand("2c3c4c5c6c7d8d")}
	_, err := Default().EvaluateBatch(ctx, hands, nil)
	assert.True(t, errors.Is(err, context.Canceled))
}

func toOracle(t testing.TB, h Hand) *[7]phpoker.Card {
	t.Helper()
	suits := [4]phpoker.Suit{phpoker.Club, phpoker.Diamond, phpoker.Heart, phpoker.Spade}
	var out [7]phpoker.Card
	for i, c := range h.Cards() {
		// The oracle counts ranks 1..13 with the ace as 1.
		rank := phpoker.Rank(c.Rank() + 2)
		if c.Rank() == Ace {
			rank = phpoker.Rank(1)
		}
		card, err := phpoker.MakeCard(suits[c.Suit()], rank)
		require.NoError(t, err)
		out[i] = card
	}
	return &out
}

// Compares against an independent evaluator on random pairs, including
// flush-heavy deals where suits are drawn from only two suits.
func TestEvaluateMatchesReferenceEvaluator(t *testing.T) {
	t.Parallel()
	e := Default()
	rng := randutil.New(2024)
	deck := NewDeck(rng)

	flushHeavy := func() Hand {
		var h Hand
		for h.CountCards() < HandSize {
			h.AddCard(NewCard(uint8(rng.IntN(13)), uint8(rng.IntN(2))))
		}
		return h
	}

	for i := 0; i < 20_000; i++ {
		var a, b Hand
		if i%2 == 0 {
			deck.Reset()
			a, b = deck.DealHand(), deck.DealHand()
		} else {
			a, b = flushHeavy(), flushHeavy()
		}

		want := cmp.Compare(phpoker.Eval7(toOracle(t, a)), phpoker.Eval7(toOracle(t, b)))
		got := e.Compare(a, b)
		require.Equal(t, want, got, "%s vs %s (%s vs %s)", a, b, e.Evaluate(a), e.Evaluate(b))
	}
}

func TestEvaluatorStats(t *testing.T) {
	t.Parallel()
	stats := Default().Stats()
	assert.Equal(t, 49_205, stats.Shapes)
	assert.Equal(t, 1287, stats.FlushClasses)
}

func BenchmarkEvaluate(b *testing.B) {
	e := Default()
	deck := NewDeck(randutil.New(42))
	hands := make([]Hand, 1024)
	for i := range hands {
		hands[i] = deck.DealHand()
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Evaluate(hands[i%len(hands)])
	}
}

func BenchmarkEvaluateBatch(b *testing.B) {
	e := Default()
	deck := NewDeck(randutil.New(42))
	hands := make([]Hand, 100_000)
	for i := range hands {
		hands[i] = deck.DealHand()
	}
	out := make([]Strength, len(hands))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.EvaluateBatch(context.Background(), hands, out); err != nil {
			b.Fatal(err)
		}
	}
}
