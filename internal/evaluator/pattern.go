package evaluator

import "math/bits"

const (
	straightWindow = 0b1_1111
	wheelMask      = 0x100F // A-2-3-4-5
	wheelTop       = 3      // the five plays as the top card of the wheel
)

// IsStraight reports whether any five consecutive rank bits are set in the
// pattern. The nine windows do not wrap, so the ace-low wheel is not a match
// here; see StraightTop.
func IsStraight(pattern uint16) bool {
	for i := 0; i <= NumRanks-5; i++ {
		if bits.OnesCount16(pattern&(straightWindow<<i)) == 5 {
			return true
		}
	}
	return false
}

// StraightTop returns the top rank of the best straight in the pattern,
// counting the wheel as five-high, or -1 when there is none.
func StraightTop(pattern uint16) int {
	pattern &= suitBits

	// Bitwise cascade identifies consecutive sequences in one pass.
	seq := pattern & (pattern >> 1) & (pattern >> 2) & (pattern >> 3) & (pattern >> 4)
	if seq != 0 {
		return bits.Len16(seq) - 1 + 4
	}
	if pattern&wheelMask == wheelMask {
		return wheelTop
	}
	return -1
}

// straightRanks returns the five ranks of the straight topped by top.
func straightRanks(top int) [5]int {
	if top == wheelTop {
		return [5]int{12, 0, 1, 2, 3}
	}
	return [5]int{top - 4, top - 3, top - 2, top - 1, top}
}

// TopRanks keeps the n highest set bits of the pattern.
func TopRanks(pattern uint16, n int) uint16 {
	var out uint16
	for ; n > 0 && pattern != 0; n-- {
		high := uint16(1) << (bits.Len16(pattern) - 1)
		out |= high
		pattern &^= high
	}
	return out
}

// IsFlushEligible reports whether the pattern holds five or more ranks.
func IsFlushEligible(pattern uint16) bool {
	return bits.OnesCount16(pattern) >= 5
}
