package poker

import (
	"errors"
	"math/bits"
	"testing"
)

func TestCardCreation(t *testing.T) {
	t.Parallel()
	aceSpades := NewCard(Ace, Spades)
	if aceSpades.Rank() != Ace {
		t.Errorf("Expected rank Ace, got %d", aceSpades.Rank())
	}
	if aceSpades.Suit() != Spades {
		t.Errorf("Expected suit Spades, got %d", aceSpades.Suit())
	}
	if aceSpades.String() != "As" {
		t.Errorf("Expected 'As', got %s", aceSpades.String())
	}

	// Two of clubs is bit zero
	twoClubs := NewCard(Two, Clubs)
	if twoClubs != 1 {
		t.Errorf("Expected bit 0, got %b", twoClubs)
	}
	if twoClubs.String() != "2c" {
		t.Errorf("Expected '2c', got %s", twoClubs.String())
	}
}

func TestInvalidCard(t *testing.T) {
	t.Parallel()
	for _, c := range []Card{0, 3, Card(1) << 52} {
		if c.Valid() {
			t.Errorf("Card %b should be invalid", uint64(c))
		}
		if c.String() != "??" {
			t.Errorf("Expected '??' for invalid card, got %s", c.String())
		}
		if c.Rank() != 255 || c.Suit() != 255 {
			t.Errorf("Invalid card %b should report rank and suit 255", uint64(c))
		}
	}
}

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		wantCard Card
		wantErr  bool
	}{
		{"ace of spades", "As", NewCard(12, 3), false},
		{"two of hearts", "2h", NewCard(0, 2), false},
		{"king of diamonds", "Kd", NewCard(11, 1), false},
		{"ten of clubs", "Tc", NewCard(8, 0), false},
		{"lowercase rank", "qs", NewCard(10, 3), false},
		{"uppercase suit", "9S", NewCard(7, 3), false},
		{"invalid rank", "Xs", 0, true},
		{"invalid suit", "Ax", 0, true},
		{"empty string", "", 0, true},
		{"too short", "A", 0, true},
		{"too long", "Asd", 0, true},
	}

	for _, testCase := range tests {
		tc := testCase
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			card, err := ParseCard(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseCard(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidCard) {
				t.Errorf("ParseCard(%q) error %v does not wrap ErrInvalidCard", tc.input, err)
			}
			if card != tc.wantCard {
				t.Errorf("ParseCard(%q) = %v, want %v", tc.input, card, tc.wantCard)
			}
		})
	}
}

func TestParseCards(t *testing.T) {
	t.Parallel()
	cards, err := ParseCards("As Kh,Qd")
	if err != nil {
		t.Fatalf("ParseCards failed: %v", err)
	}
	want := []Card{NewCard(Ace, Spades), NewCard(King, Hearts), NewCard(Queen, Diamonds)}
	if len(cards) != len(want) {
		t.Fatalf("Expected %d cards, got %d", len(want), len(cards))
	}
	for i := range want {
		if cards[i] != want[i] {
			t.Errorf("card %d = %s, want %s", i, cards[i], want[i])
		}
	}

	if _, err := ParseCards("AsK"); !errors.Is(err, ErrInvalidCard) {
		t.Errorf("Expected ErrInvalidCard for odd length, got %v", err)
	}
	if _, err := ParseCards("AsKx"); !errors.Is(err, ErrInvalidCard) {
		t.Errorf("Expected ErrInvalidCard for bad suit, got %v", err)
	}
}

func TestAll52Cards(t *testing.T) {
	t.Parallel()
	cards := make(map[string]bool)

	for suit := uint8(0); suit < 4; suit++ {
		for rank := uint8(0); rank < 13; rank++ {
			card := NewCard(rank, suit)
			str := card.String()

			if cards[str] {
				t.Errorf("Duplicate card: %s", str)
			}
			cards[str] = true

			parsed, err := ParseCard(str)
			if err != nil {
				t.Errorf("Failed to parse %s: %v", str, err)
			}
			if parsed != card {
				t.Errorf("Round-trip failed for %s", str)
			}
			if bits.OnesCount64(uint64(card)) != 1 {
				t.Errorf("Card %s should be a single bit", str)
			}
		}
	}

	if len(cards) != 52 {
		t.Errorf("Expected 52 unique cards, got %d", len(cards))
	}
}

func BenchmarkParseCard(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = ParseCard("As")
	}
}

func BenchmarkCardString(b *testing.B) {
	card := NewCard(Ace, Spades)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = card.String()
	}
}
