package evaluator

import "math/bits"

const (
	NumRanks = 13
	NumSuits = 4
	HandSize = 7

	// suitBits masks the 13 rank bits of one suit
	suitBits = 0x1FFF
)

// Mask is a set of cards encoded as a bitfield.
// Bit position = suit*13 + rank, rank 0=2 ... 12=A.
type Mask uint64

// CardBit returns the mask holding the single card (suit, rank).
func CardBit(suit, rank int) Mask {
	return Mask(1) << (suit*NumRanks + rank)
}

// Has reports whether the card (suit, rank) is in the mask.
func (m Mask) Has(suit, rank int) bool {
	return m&CardBit(suit, rank) != 0
}

// Count returns the number of cards in the mask.
func (m Mask) Count() int {
	return bits.OnesCount64(uint64(m))
}

// SuitPattern returns the 13-bit rank pattern of one suit.
func (m Mask) SuitPattern(suit int) uint16 {
	return uint16(uint64(m)>>(suit*NumRanks)) & suitBits
}

// FlushValue returns the rank pattern of the first suit holding five or
// more cards, or 0 when no suit qualifies. Seven cards can hold at most one
// such suit.
func (m Mask) FlushValue() uint16 {
	for suit := 0; suit < NumSuits; suit++ {
		if p := m.SuitPattern(suit); bits.OnesCount16(p) >= 5 {
			return p
		}
	}
	return 0
}

// Shape counts, for each rank, how many suits hold it.
func (m Mask) Shape() Shape {
	var s Shape
	for suit := 0; suit < NumSuits; suit++ {
		p := m.SuitPattern(suit)
		for p != 0 {
			s[bits.TrailingZeros16(p)]++
			p &= p - 1
		}
	}
	return s
}
