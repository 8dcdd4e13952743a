package poker

import (
	"fmt"
	"math/bits"

	"github.com/lox/handrank/internal/evaluator"
)

var rankNames = [13]string{
	"Two", "Three", "Four", "Five", "Six", "Seven", "Eight",
	"Nine", "Ten", "Jack", "Queen", "King", "Ace",
}

func rankName(r int) string {
	return rankNames[r]
}

func rankPlural(r int) string {
	if r == int(Six) {
		return "Sixes"
	}
	return rankNames[r] + "s"
}

// Describe names the hand the way a dealer would call it, e.g.
// "Full House, Twos full of Threes" or "Straight, Eight high".
func (e *Evaluator) Describe(h Hand) string {
	m := evaluator.Mask(h)
	if pattern := m.FlushValue(); pattern != 0 {
		if top := evaluator.StraightTop(pattern); top >= 0 {
			if top == int(Ace) {
				return "Royal Flush"
			}
			return fmt.Sprintf("Straight Flush, %s high", rankName(top))
		}
		return fmt.Sprintf("Flush, %s high", rankName(bits.Len16(pattern)-1))
	}

	c, ok := evaluator.Classify(m.Shape())
	if !ok {
		return "Invalid Hand"
	}
	switch c := c.(type) {
	case evaluator.FourOfAKindHand:
		return fmt.Sprintf("Four of a Kind, %s", rankPlural(c.Value))
	case evaluator.FullHouseHand:
		return fmt.Sprintf("Full House, %s full of %s", rankPlural(c.ValueThree), rankPlural(c.ValuePair))
	case evaluator.StraightHand:
		return fmt.Sprintf("Straight, %s high", rankName(c.ValueEnd))
	case evaluator.ThreeOfAKindHand:
		return fmt.Sprintf("Three of a Kind, %s", rankPlural(c.Value))
	case evaluator.TwoPairHand:
		return fmt.Sprintf("Two Pair, %s and %s", rankPlural(c.Value1), rankPlural(c.Value2))
	case evaluator.PairHand:
		return fmt.Sprintf("Pair of %s", rankPlural(c.Value))
	case evaluator.HighCardHand:
		return fmt.Sprintf("High Card, %s", rankName(c.Value))
	}
	return c.Category().String()
}
