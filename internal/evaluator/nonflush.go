package evaluator

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"
)

// nonFlushOrder lists the categories a shape can reach, weakest first.
var nonFlushOrder = [...]Category{
	HighCard,
	Pair,
	TwoPair,
	ThreeOfAKind,
	Straight,
	FullHouse,
	FourOfAKind,
}

// NonFlushTable maps every shape, through ShapeHash, to its strength.
type NonFlushTable struct {
	strengths []Strength
	shapes    [NumCategories]int
	classes   [NumCategories]int
}

// BuildNonFlushTable classifies every enumerated shape, sorts each category
// by its tie-break ranks, concatenates the categories weakest first and
// records each shape's position. Shapes with equal tie-break ranks share the
// position of the first of them. Classification fans out over workers.
func BuildNonFlushTable(ctx context.Context, workers int) (*NonFlushTable, error) {
	shapes := EnumerateShapes()
	if len(shapes) != ExpectedShapes {
		return nil, integrityf("enumerated %d shapes, want %d", len(shapes), ExpectedShapes)
	}

	records, err := classifyAll(ctx, shapes, workers)
	if err != nil {
		return nil, err
	}

	var buckets [NumCategories][]Classification
	for _, r := range records {
		buckets[r.Category()] = append(buckets[r.Category()], r)
	}

	t := &NonFlushTable{strengths: make([]Strength, ExpectedShapes)}
	filled := make([]bool, ExpectedShapes)
	pos := 0
	for _, cat := range nonFlushOrder {
		bucket := buckets[cat]
		slices.SortStableFunc(bucket, func(a, b Classification) int {
			return a.key().compare(b.key())
		})

		group := pos
		for i, r := range bucket {
			if i == 0 || bucket[i-1].key() != r.key() {
				group = pos
				t.classes[cat]++
			}
			slot, ok := ShapeHash(r.Source())
			if !ok || filled[slot] {
				return nil, integrityf("shape %s has no free slot", r.Source())
			}
			filled[slot] = true
			t.strengths[slot] = NewStrength(cat, uint32(group))
			pos++
		}
		t.shapes[cat] = len(bucket)
	}

	if pos != ExpectedShapes {
		return nil, integrityf("ranked %d shapes, want %d", pos, ExpectedShapes)
	}
	return t, nil
}

// classifyAll classifies shapes in parallel; results keep the input order.
func classifyAll(ctx context.Context, shapes []Shape, workers int) ([]Classification, error) {
	workers = max(1, workers)
	records := make([]Classification, len(shapes))
	chunk := (len(shapes) + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < len(shapes); start += chunk {
		end := min(start+chunk, len(shapes))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if i%1024 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				r, ok := Classify(shapes[i])
				if !ok {
					return integrityf("shape %s matched no category", shapes[i])
				}
				records[i] = r
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

// Lookup returns the strength of a shape. Any shape outside the enumerated
// universe is an integrity failure.
func (t *NonFlushTable) Lookup(s Shape) Strength {
	slot, ok := ShapeHash(s)
	if !ok {
		panic(integrityf("no non-flush entry for shape %s", s))
	}
	return t.strengths[slot]
}

// Index returns the rank index of a shape within the concatenated order.
func (t *NonFlushTable) Index(s Shape) (uint32, bool) {
	slot, ok := ShapeHash(s)
	if !ok {
		return 0, false
	}
	return t.strengths[slot].Index(), true
}

// Shapes returns how many shapes fell into the category.
func (t *NonFlushTable) Shapes(c Category) int {
	if int(c) >= NumCategories {
		return 0
	}
	return t.shapes[c]
}

// Classes returns how many distinct showdown strengths the category holds.
func (t *NonFlushTable) Classes(c Category) int {
	if int(c) >= NumCategories {
		return 0
	}
	return t.classes[c]
}
