package poker

import (
	"math/bits"
	"strings"
)

// HandSize is the number of cards an evaluable hand holds.
const HandSize = 7

// Hand is a set of cards, one bit per card, using the Card layout.
type Hand uint64

// NewHand builds an evaluable hand from exactly seven distinct cards.
func NewHand(cards ...Card) (Hand, error) {
	var h Hand
	for _, c := range cards {
		if !c.Valid() {
			return 0, &ValidationError{Reason: ErrInvalidCard, Cards: cards}
		}
		if h.HasCard(c) {
			return 0, &ValidationError{Reason: ErrDuplicateCard, Cards: cards}
		}
		h.AddCard(c)
	}
	if len(cards) != HandSize {
		return 0, &ValidationError{Reason: ErrWrongCardCount, Cards: cards}
	}
	return h, nil
}

// ParseHand parses seven cards in ParseCards notation, e.g. "2c3c4c5c6c7d8d".
func ParseHand(s string) (Hand, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return 0, err
	}
	return NewHand(cards...)
}

// MustParseHand is like ParseHand but panics on error.
func MustParseHand(s string) Hand {
	h, err := ParseHand(s)
	if err != nil {
		panic(err)
	}
	return h
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(c Card) {
	*h |= Hand(c)
}

// HasCard checks if the hand contains a specific card
func (h Hand) HasCard(c Card) bool {
	return (h & Hand(c)) != 0
}

// CountCards returns the number of cards in the hand
func (h Hand) CountCards() int {
	return bits.OnesCount64(uint64(h))
}

// GetSuitMask returns the ranks held in one suit as a 13-bit mask
func (h Hand) GetSuitMask(suit uint8) uint16 {
	return uint16(h>>(suit*13)) & 0x1FFF
}

// Cards returns the cards of the hand, lowest bit first.
func (h Hand) Cards() []Card {
	cards := make([]Card, 0, h.CountCards())
	for m := uint64(h); m != 0; m &= m - 1 {
		cards = append(cards, Card(m&-m))
	}
	return cards
}

// Mask returns the raw 52-bit encoding: bit 13*suit + rank.
func (h Hand) Mask() uint64 {
	return uint64(h)
}

// String lists the cards, highest rank first, e.g. "Ah Kd 9c 7s 4h 3c 2d".
func (h Hand) String() string {
	parts := make([]string, 0, h.CountCards())
	for rank := int(Ace); rank >= 0; rank-- {
		for suit := Spades; ; suit-- {
			c := NewCard(uint8(rank), suit)
			if h.HasCard(c) {
				parts = append(parts, c.String())
			}
			if suit == Clubs {
				break
			}
		}
	}
	return strings.Join(parts, " ")
}
