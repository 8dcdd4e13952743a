package poker

import (
	"testing"

	"github.com/lox/handrank/internal/randutil"
)

func TestDeck(t *testing.T) {
	t.Parallel()
	deck := NewDeck(randutil.New(42))

	cards1 := deck.Deal(2)
	if len(cards1) != 2 {
		t.Errorf("Expected 2 cards, got %d", len(cards1))
	}

	cards2 := deck.Deal(3)
	if len(cards2) != 3 {
		t.Errorf("Expected 3 cards, got %d", len(cards2))
	}

	for _, c1 := range cards1 {
		for _, c2 := range cards2 {
			if c1 == c2 {
				t.Error("Dealt same card twice")
			}
		}
	}

	remaining := deck.Deal(47)
	if len(remaining) != 47 {
		t.Errorf("Expected 47 remaining cards, got %d", len(remaining))
	}

	if extra := deck.Deal(1); extra != nil {
		t.Error("Should not be able to deal from empty deck")
	}

	deck.Reset()
	if deck.CardsRemaining() != 52 {
		t.Errorf("Expected 52 cards after reset, got %d", deck.CardsRemaining())
	}
}

func TestDeckDeterministic(t *testing.T) {
	t.Parallel()
	a := NewDeck(randutil.New(7))
	b := NewDeck(randutil.New(7))
	for i := 0; i < 20; i++ {
		if ha, hb := a.DealHand(), b.DealHand(); ha != hb {
			t.Fatalf("hand %d differs: %s vs %s", i, ha, hb)
		}
	}
}

func TestDealHand(t *testing.T) {
	t.Parallel()
	deck := NewDeck(randutil.New(3))

	var seen Hand
	for i := 0; i < 7; i++ {
		h := deck.DealHand()
		if h.CountCards() != HandSize {
			t.Fatalf("hand %d has %d cards", i, h.CountCards())
		}
		if seen&h != 0 {
			t.Fatalf("hand %d shares cards with earlier hands", i)
		}
		seen |= h
	}
	if deck.CardsRemaining() != 3 {
		t.Errorf("Expected 3 cards left, got %d", deck.CardsRemaining())
	}

	// Too few left: the deck reshuffles.
	if h := deck.DealHand(); h.CountCards() != HandSize {
		t.Errorf("Expected a full hand after reshuffle, got %d cards", h.CountCards())
	}
	if deck.CardsRemaining() != 52-HandSize {
		t.Errorf("Expected %d cards left, got %d", 52-HandSize, deck.CardsRemaining())
	}
}

func TestNilRNGDeck(t *testing.T) {
	t.Parallel()
	deck := NewDeck(nil)
	if h := deck.DealHand(); h.CountCards() != HandSize {
		t.Errorf("Expected %d cards, got %d", HandSize, h.CountCards())
	}
}
