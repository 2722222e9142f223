package knapsack

import "math/bits"

// Split returns the bundle sequence for a count-bounded item: sizes
// 1, 2, 4, … while the remainder exceeds the next size, then the remainder.
// Every quantity in [0, count] is a subset sum of the returned scales.
// count ≤ 0 yields nil.
//
// Example: Split(10) → scales 1, 2, 4, 3.
//
// Complexity: O(log count).
func Split(count int) []Bundle {
	if count <= 0 {
		return nil
	}

	var (
		out       = make([]Bundle, 0, bits.Len(uint(count))+1)
		remaining = count
		size      = 1
	)
	for remaining > size {
		out = append(out, Bundle{Scale: size, Label: size})
		remaining -= size
		size *= 2
	}
	if remaining > 0 {
		out = append(out, Bundle{Scale: remaining, Label: remaining})
	}

	return out
}

// Bounded runs one 0/1 pass per bundle of Split(item.MaxCount) and returns
// the item's quantity table: taken[i] units of item sit on the best path to
// state i.
//
// Errors: ErrDimensionMismatch when len(item.Cost) differs from the table's
// dimensions, ErrNegativeCost, ErrNegativeCount, ErrInvalidValue. The table
// is untouched on error.
//
// Complexity: O(Len() · n · log MaxCount).
func (t *Table) Bounded(item Item) ([]int, error) {
	if err := validateItem(0, item, len(t.bounds)); err != nil {
		return nil, err
	}

	return t.bounded(item, nil), nil
}

// bounded is Bounded with a per-pass callback. item must be validated.
func (t *Table) bounded(item Item, onPass func(Bundle)) []int {
	taken := make([]int, len(t.values))
	for _, b := range Split(item.MaxCount) {
		t.scaleCost(item.Cost, b.Scale)
		t.ZeroOne(t.scaled, float64(b.Scale)*item.Value, b.Label, taken)
		if onPass != nil {
			onPass(b)
		}
	}

	return taken
}

// scaleCost writes cost·scale into t.scaled. Components that would exceed
// their bound are saturated at bound+1, which no state can afford; this keeps
// the product from overflowing without changing feasibility.
func (t *Table) scaleCost(cost []int, scale int) {
	for d, c := range cost {
		if c != 0 && c > t.bounds[d]/scale {
			t.scaled[d] = t.bounds[d] + 1
			continue
		}
		t.scaled[d] = c * scale
	}
}
