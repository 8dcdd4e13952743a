package evaluator

import (
	"cmp"
	"fmt"
)

// Category enumerates the classes of poker hands ordered from weakest to strongest.
type Category uint8

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// NumCategories is the number of distinct hand categories.
const NumCategories = int(StraightFlush) + 1

// String returns the readable name of the category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// Strength is the comparable value of a seven-card hand. Higher is stronger.
//
// The category occupies the high 32 bits and the rank index within the
// category's lookup table the low 32 bits, so plain integer comparison gives
// the full poker ordering. Hands that tie at showdown share a Strength.
type Strength uint64

const indexBits = 32

// NewStrength packs a category and a table rank index.
func NewStrength(c Category, index uint32) Strength {
	return Strength(c)<<indexBits | Strength(index)
}

// Category returns the hand category.
func (s Strength) Category() Category {
	return Category(s >> indexBits)
}

// Index returns the rank index within the category's table.
func (s Strength) Index() uint32 {
	return uint32(s)
}

// Compare returns -1 if s is weaker, 0 if equal, 1 if s is stronger
func (s Strength) Compare(other Strength) int {
	return cmp.Compare(s, other)
}

// String returns the category name and index, e.g. "Full House #34177".
func (s Strength) String() string {
	return fmt.Sprintf("%s #%d", s.Category(), s.Index())
}
