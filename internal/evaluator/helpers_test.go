package evaluator

import (
	"context"
	"strings"
	"sync"
	"testing"
)

var (
	sharedTables     *Tables
	sharedTablesErr  error
	sharedTablesOnce sync.Once
)

// testTables builds the tables once for the whole package.
func testTables(t testing.TB) *Tables {
	t.Helper()
	sharedTablesOnce.Do(func() {
		sharedTables, sharedTablesErr = Build(context.Background())
	})
	if sharedTablesErr != nil {
		t.Fatalf("Build failed: %v", sharedTablesErr)
	}
	return sharedTables
}

// mustMask parses notation like "2c3c4c5c6c7d8d" into a mask.
func mustMask(t testing.TB, s string) Mask {
	t.Helper()
	s = strings.ReplaceAll(s, " ", "")
	if len(s)%2 != 0 {
		t.Fatalf("invalid card string %q", s)
	}
	var m Mask
	for i := 0; i < len(s); i += 2 {
		rank := strings.IndexByte("23456789TJQKA", s[i])
		suit := strings.IndexByte("cdhs", s[i+1])
		if rank < 0 || suit < 0 {
			t.Fatalf("invalid card %q in %q", s[i:i+2], s)
		}
		if m.Has(suit, rank) {
			t.Fatalf("duplicate card %q in %q", s[i:i+2], s)
		}
		m |= CardBit(suit, rank)
	}
	return m
}

// shapeOf builds a shape from rank counts listed low rank first.
func shapeOf(counts ...uint8) Shape {
	var s Shape
	copy(s[:], counts)
	return s
}
