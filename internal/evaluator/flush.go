package evaluator

import (
	"cmp"
	"slices"
)

// NumPatterns is the number of 13-bit suit patterns.
const NumPatterns = 1 << NumRanks

// flushKey holds the parts of a suit pattern that decide a flush showdown.
type flushKey struct {
	eligible bool
	straight int    // top rank of the best straight, -1 if none
	five     uint16 // top five ranks for plain flushes; the raw pattern when ineligible
}

func flushKeyOf(pattern uint16) flushKey {
	if !IsFlushEligible(pattern) {
		return flushKey{straight: -1, five: pattern}
	}
	if top := StraightTop(pattern); top >= 0 {
		return flushKey{eligible: true, straight: top}
	}
	return flushKey{eligible: true, straight: -1, five: TopRanks(pattern, 5)}
}

func (k flushKey) compare(o flushKey) int {
	if k.eligible != o.eligible {
		if k.eligible {
			return 1
		}
		return -1
	}
	if c := cmp.Compare(k.straight, o.straight); c != 0 {
		return c
	}
	return cmp.Compare(k.five, o.five)
}

// FlushTable maps a suit pattern to its rank index among all patterns.
// Entries for patterns with fewer than five ranks are 0 and never read.
type FlushTable struct {
	index    [NumPatterns]uint32
	eligible int
	groups   int
}

// BuildFlushTable orders every 13-bit pattern by (flush eligible, straight,
// top five ranks, numeric value) and records each eligible pattern's
// position. Patterns that play the same five cards share the position of the
// first of them.
func BuildFlushTable() *FlushTable {
	keys := make([]flushKey, NumPatterns)
	order := make([]uint16, NumPatterns)
	for p := range order {
		order[p] = uint16(p)
		keys[p] = flushKeyOf(uint16(p))
	}

	slices.SortStableFunc(order, func(a, b uint16) int {
		if c := keys[a].compare(keys[b]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	t := &FlushTable{}
	group := 0
	for pos, p := range order {
		newGroup := pos == 0 || keys[order[pos-1]] != keys[p]
		if newGroup {
			group = pos
		}
		if !keys[p].eligible {
			continue
		}
		if newGroup {
			t.groups++
		}
		t.index[p] = uint32(group)
		t.eligible++
	}
	return t
}

// Rank returns the rank index of a flush-eligible pattern. Asking for any
// other pattern is an integrity failure: the evaluator only consults this
// table once FlushValue is non-zero.
func (t *FlushTable) Rank(pattern uint16) uint32 {
	if pattern >= NumPatterns || !IsFlushEligible(pattern) {
		panic(integrityf("flush lookup for ineligible pattern %013b", pattern))
	}
	return t.index[pattern]
}

// Raw returns the stored entry for any pattern, including the 0 held by
// ineligible ones.
func (t *FlushTable) Raw(pattern uint16) uint32 {
	return t.index[pattern&suitBits]
}

// Eligible returns the number of patterns holding five or more ranks.
func (t *FlushTable) Eligible() int {
	return t.eligible
}

// Groups returns the number of distinct flush and straight flush strengths.
func (t *FlushTable) Groups() int {
	return t.groups
}
