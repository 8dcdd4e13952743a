package poker

import (
	"fmt"
	"math/bits"
	"strings"
)

// Card represents a single card as a bit position in a uint64.
// Layout: [13 spades][13 hearts][13 diamonds][13 clubs], rank 0=2 ... 12=A.
type Card uint64

// Suit constants
const (
	Clubs    uint8 = 0
	Diamonds uint8 = 1
	Hearts   uint8 = 2
	Spades   uint8 = 3
)

// Rank constants (0-12 for 2-A)
const (
	Two   uint8 = 0
	Three uint8 = 1
	Four  uint8 = 2
	Five  uint8 = 3
	Six   uint8 = 4
	Seven uint8 = 5
	Eight uint8 = 6
	Nine  uint8 = 7
	Ten   uint8 = 8
	Jack  uint8 = 9
	Queen uint8 = 10
	King  uint8 = 11
	Ace   uint8 = 12
)

const (
	rankChars = "23456789TJQKA"
	suitChars = "cdhs"

	deckBits = (uint64(1) << 52) - 1
)

// NewCard creates a card from rank and suit
func NewCard(rank, suit uint8) Card {
	return Card(1) << (suit*13 + rank)
}

// Valid reports whether c is exactly one of the 52 cards.
func (c Card) Valid() bool {
	return c != 0 && uint64(c)&^deckBits == 0 && bits.OnesCount64(uint64(c)) == 1
}

// Rank returns the rank of the card (0-12), or 255 for an invalid card.
func (c Card) Rank() uint8 {
	if !c.Valid() {
		return 255
	}
	return uint8(bits.TrailingZeros64(uint64(c)) % 13)
}

// Suit returns the suit of the card (0-3), or 255 for an invalid card.
func (c Card) Suit() uint8 {
	if !c.Valid() {
		return 255
	}
	return uint8(bits.TrailingZeros64(uint64(c)) / 13)
}

// String returns the string representation (e.g., "As", "Kh")
func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	return string(rankChars[c.Rank()]) + string(suitChars[c.Suit()])
}

// ParseCard parses a string like "As" into a Card. Ranks and suits are
// case-insensitive.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}
	rank, err := parseRank(s[0])
	if err != nil {
		return 0, err
	}
	suit, err := parseSuit(s[1])
	if err != nil {
		return 0, err
	}
	return NewCard(rank, suit), nil
}

func parseRank(c byte) (uint8, error) {
	switch c {
	case 't':
		c = 'T'
	case 'j':
		c = 'J'
	case 'q':
		c = 'Q'
	case 'k':
		c = 'K'
	case 'a':
		c = 'A'
	}
	if i := strings.IndexByte(rankChars, c); i >= 0 {
		return uint8(i), nil
	}
	return 0, fmt.Errorf("%w: rank %q", ErrInvalidCard, c)
}

func parseSuit(c byte) (uint8, error) {
	if i := strings.IndexByte(suitChars, c|0x20); i >= 0 {
		return uint8(i), nil
	}
	return 0, fmt.Errorf("%w: suit %q", ErrInvalidCard, c)
}

// ParseCards parses concatenated card notation such as "AsKhQd" into cards.
// Spaces and commas between cards are ignored.
func ParseCards(s string) ([]Card, error) {
	s = strings.Map(func(r rune) rune {
		if r == ' ' || r == ',' {
			return -1
		}
		return r
	}, s)
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length card string %q", ErrInvalidCard, s)
	}

	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i/2+1, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards is like ParseCards but panics on error.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

func cardsString(cards []Card) string {
	var sb strings.Builder
	for i, c := range cards {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}
