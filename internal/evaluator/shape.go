package evaluator

import (
	"fmt"
	"strings"
)

// ExpectedShapes is the number of ways to spread seven cards over 13 ranks
// with at most four cards per rank.
const ExpectedShapes = 49_205

// Shape counts how many cards of each rank a hand holds, ignoring suits.
// It decides pairs, trips, quads, full houses and straights but not flushes.
type Shape [NumRanks]uint8

// Sum returns the number of cards described by the shape.
func (s Shape) Sum() int {
	total := 0
	for _, c := range s {
		total += int(c)
	}
	return total
}

// Valid reports whether the shape describes seven cards with no rank held
// more than four times.
func (s Shape) Valid() bool {
	for _, c := range s {
		if c > NumSuits {
			return false
		}
	}
	return s.Sum() == HandSize
}

// String renders the counts low rank first, e.g. "[3 2 0 0 0 1 0 1 0 0 0 0 0]".
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = fmt.Sprint(c)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// without returns a copy of the shape with n cards of rank removed.
func (s Shape) without(rank int, n uint8) Shape {
	s[rank] -= n
	return s
}

// rankPattern returns a 13-bit pattern of the ranks present at least once.
func (s Shape) rankPattern() uint16 {
	var p uint16
	for r, c := range s {
		if c > 0 {
			p |= 1 << r
		}
	}
	return p
}

// EnumerateShapes generates every valid shape by backtracking over the 13
// ranks, choosing 0-4 cards at each rank without exceeding the remaining
// budget. Shapes come out in ascending lexicographic order, which ShapeHash
// relies on.
func EnumerateShapes() []Shape {
	shapes := make([]Shape, 0, ExpectedShapes)
	var current Shape

	var walk func(pos, remaining int)
	walk = func(pos, remaining int) {
		if pos == NumRanks {
			if remaining == 0 {
				shapes = append(shapes, current)
			}
			return
		}
		for c := 0; c < min(remaining+1, NumSuits+1); c++ {
			current[pos] = uint8(c)
			walk(pos+1, remaining-c)
		}
		current[pos] = 0
	}
	walk(0, HandSize)

	return shapes
}

// shapeWays[pos][rem] counts the ways to fill ranks pos..12 with rem cards.
var shapeWays = func() [NumRanks + 1][HandSize + 1]int {
	var ways [NumRanks + 1][HandSize + 1]int
	ways[NumRanks][0] = 1
	for pos := NumRanks - 1; pos >= 0; pos-- {
		for rem := 0; rem <= HandSize; rem++ {
			for c := 0; c <= min(rem, NumSuits); c++ {
				ways[pos][rem] += ways[pos+1][rem-c]
			}
		}
	}
	return ways
}()

// ShapeHash returns the shape's position in EnumerateShapes order. It is a
// minimal perfect hash over all valid shapes; ok is false for anything else.
func ShapeHash(s Shape) (slot int, ok bool) {
	remaining := HandSize
	for pos, c := range s {
		if int(c) > remaining || c > NumSuits {
			return 0, false
		}
		for k := 0; k < int(c); k++ {
			slot += shapeWays[pos+1][remaining-k]
		}
		remaining -= int(c)
	}
	if remaining != 0 {
		return 0, false
	}
	return slot, true
}
