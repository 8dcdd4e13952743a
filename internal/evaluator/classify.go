package evaluator

import "slices"

// tieKey lists the ranks that decide a showdown within one category, most
// significant first. Unused slots hold -1.
type tieKey [5]int8

func makeTieKey(ranks ...int) tieKey {
	k := tieKey{-1, -1, -1, -1, -1}
	for i, r := range ranks {
		k[i] = int8(r)
	}
	return k
}

func (k tieKey) compare(o tieKey) int {
	return slices.Compare(k[:], o[:])
}

// Classification is the category record produced for one shape.
type Classification interface {
	Category() Category
	Source() Shape
	key() tieKey
}

// FourOfAKindHand is four cards of Value with the best other rank as HighCard.
type FourOfAKindHand struct {
	Shape    Shape
	Value    int
	HighCard int
}

func (h FourOfAKindHand) Category() Category { return FourOfAKind }
func (h FourOfAKindHand) Source() Shape      { return h.Shape }
func (h FourOfAKindHand) key() tieKey        { return makeTieKey(h.Value, h.HighCard) }

// FullHouseHand is three of ValueThree and two of ValuePair. HighCard is
// recorded but never splits a showdown.
type FullHouseHand struct {
	Shape      Shape
	ValueThree int
	ValuePair  int
	HighCard   int
}

func (h FullHouseHand) Category() Category { return FullHouse }
func (h FullHouseHand) Source() Shape      { return h.Shape }
func (h FullHouseHand) key() tieKey        { return makeTieKey(h.ValueThree, h.ValuePair) }

// StraightHand is five consecutive ranks ending at ValueEnd (3 for the wheel).
type StraightHand struct {
	Shape    Shape
	ValueEnd int
	HighCard int
}

func (h StraightHand) Category() Category { return Straight }
func (h StraightHand) Source() Shape      { return h.Shape }
func (h StraightHand) key() tieKey        { return makeTieKey(h.ValueEnd) }

// ThreeOfAKindHand is three cards of Value plus the two best single ranks.
type ThreeOfAKindHand struct {
	Shape    Shape
	Value    int
	HighCard int
	Kickers  [2]int
}

func (h ThreeOfAKindHand) Category() Category { return ThreeOfAKind }
func (h ThreeOfAKindHand) Source() Shape      { return h.Shape }
func (h ThreeOfAKindHand) key() tieKey {
	return makeTieKey(h.Value, h.Kickers[0], h.Kickers[1])
}

// TwoPairHand is pairs of Value1 > Value2 and the best remaining rank.
type TwoPairHand struct {
	Shape    Shape
	Value1   int
	Value2   int
	HighCard int
}

func (h TwoPairHand) Category() Category { return TwoPair }
func (h TwoPairHand) Source() Shape      { return h.Shape }
func (h TwoPairHand) key() tieKey        { return makeTieKey(h.Value1, h.Value2, h.HighCard) }

// PairHand is two cards of Value plus the three best single ranks.
type PairHand struct {
	Shape    Shape
	Value    int
	HighCard int
	Kickers  [3]int
}

func (h PairHand) Category() Category { return Pair }
func (h PairHand) Source() Shape      { return h.Shape }
func (h PairHand) key() tieKey {
	return makeTieKey(h.Value, h.Kickers[0], h.Kickers[1], h.Kickers[2])
}

// HighCardHand is five unrelated ranks, Value being the highest.
type HighCardHand struct {
	Shape   Shape
	Value   int
	Kickers [4]int
}

func (h HighCardHand) Category() Category { return HighCard }
func (h HighCardHand) Source() Shape      { return h.Shape }
func (h HighCardHand) key() tieKey {
	return makeTieKey(h.Value, h.Kickers[0], h.Kickers[1], h.Kickers[2], h.Kickers[3])
}

// highestAbove scans low to high and returns the last rank whose count
// exceeds threshold.
func highestAbove(s Shape, threshold uint8) (int, bool) {
	best := -1
	for r := 0; r < NumRanks; r++ {
		if s[r] > threshold {
			best = r
		}
	}
	return best, best >= 0
}

// topSingles fills out with the highest ranks still present, best first.
func topSingles(s Shape, out []int) {
	i := 0
	for r := NumRanks - 1; r >= 0 && i < len(out); r-- {
		if s[r] > 0 {
			out[i] = r
			i++
		}
	}
}

type classifier func(Shape) (Classification, bool)

// classifiers are tried in order and the first match wins.
var classifiers = []classifier{
	classifyFourOfAKind,
	classifyFullHouse,
	classifyStraight,
	classifyThreeOfAKind,
	classifyTwoPair,
	classifyPair,
	classifyHighCard,
}

// Classify assigns a valid shape to exactly one category record.
func Classify(s Shape) (Classification, bool) {
	for _, c := range classifiers {
		if h, ok := c(s); ok {
			return h, true
		}
	}
	return nil, false
}

func classifyFourOfAKind(s Shape) (Classification, bool) {
	v, ok := highestAbove(s, 3)
	if !ok {
		return nil, false
	}
	hc, ok := highestAbove(s.without(v, 4), 0)
	if !ok {
		return nil, false
	}
	return FourOfAKindHand{Shape: s, Value: v, HighCard: hc}, true
}

func classifyFullHouse(s Shape) (Classification, bool) {
	three, ok := highestAbove(s, 2)
	if !ok {
		return nil, false
	}
	rest := s.without(three, 3)
	pair, ok := highestAbove(rest, 1)
	if !ok {
		return nil, false
	}
	hc, ok := highestAbove(rest.without(pair, 2), 0)
	if !ok {
		return nil, false
	}
	return FullHouseHand{Shape: s, ValueThree: three, ValuePair: pair, HighCard: hc}, true
}

func classifyStraight(s Shape) (Classification, bool) {
	top := StraightTop(s.rankPattern())
	if top < 0 {
		return nil, false
	}
	rest := s
	for _, r := range straightRanks(top) {
		rest[r]--
	}
	hc, ok := highestAbove(rest, 0)
	if !ok {
		return nil, false
	}
	return StraightHand{Shape: s, ValueEnd: top, HighCard: hc}, true
}

func classifyThreeOfAKind(s Shape) (Classification, bool) {
	v, ok := highestAbove(s, 2)
	if !ok {
		return nil, false
	}
	h := ThreeOfAKindHand{Shape: s, Value: v}
	topSingles(s.without(v, 3), h.Kickers[:])
	h.HighCard = h.Kickers[0]
	return h, true
}

func classifyTwoPair(s Shape) (Classification, bool) {
	first, ok := highestAbove(s, 1)
	if !ok {
		return nil, false
	}
	rest := s.without(first, 2)
	second, ok := highestAbove(rest, 1)
	if !ok {
		return nil, false
	}
	hc, ok := highestAbove(rest.without(second, 2), 0)
	if !ok {
		return nil, false
	}
	return TwoPairHand{Shape: s, Value1: first, Value2: second, HighCard: hc}, true
}

func classifyPair(s Shape) (Classification, bool) {
	v, ok := highestAbove(s, 1)
	if !ok {
		return nil, false
	}
	h := PairHand{Shape: s, Value: v}
	topSingles(s.without(v, 2), h.Kickers[:])
	h.HighCard = h.Kickers[0]
	return h, true
}

func classifyHighCard(s Shape) (Classification, bool) {
	v, ok := highestAbove(s, 0)
	if !ok {
		return nil, false
	}
	h := HighCardHand{Shape: s, Value: v}
	topSingles(s.without(v, 1), h.Kickers[:])
	return h, true
}
