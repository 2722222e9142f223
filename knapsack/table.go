package knapsack

import "github.com/katalvlaran/lvpack/capacity"

// Table is the rolling value table of one solve: Values[i] is the best total
// value reachable within the usage vector decoded from index i, using every
// item processed so far. It starts at zero and is only ever raised.
//
// A Table is not safe for concurrent use.
type Table struct {
	index  *capacity.Index
	bounds []int
	values []float64

	budget []int // decode scratch
	scaled []int // scaled cost scratch
}

// NewTable allocates a zeroed table over index.
//
// Complexity: O(Size()) time and memory.
func NewTable(index *capacity.Index) *Table {
	return &Table{
		index:  index,
		bounds: index.Bounds(),
		values: make([]float64, index.Size()),
		budget: make([]int, index.Dims()),
		scaled: make([]int, index.Dims()),
	}
}

// Index returns the capacity index the table is addressed by.
func (t *Table) Index() *capacity.Index { return t.index }

// Len returns the number of states.
func (t *Table) Len() int { return len(t.values) }

// At returns the value at state i.
func (t *Table) At(i int) float64 { return t.values[i] }

// Snapshot returns a copy of the values.
func (t *Table) Snapshot() []float64 {
	out := make([]float64, len(t.values))
	copy(out, t.values)

	return out
}

// ZeroOne applies one indivisible bundle: for every state c from Max() down
// to 0, if cost fits in c and value[c−cost]+gain beats value[c], it writes
// the improvement and sets taken[c] = taken[c−cost] + label.
//
// taken must have Len() entries. cost must be non-negative.
//
// Complexity: O(Len() · n), no allocations.
func (t *Table) ZeroOne(cost []int, gain float64, label int, taken []int) {
	var (
		c  int
		p  int
		ok bool
		v  float64
	)
	for c = t.index.Max(); c >= 0; c-- {
		t.index.DecodeInto(c, t.budget)
		if p, ok = t.index.Spend(t.budget, cost); !ok {
			continue
		}
		if v = t.values[p] + gain; v > t.values[c] {
			t.values[c] = v
			taken[c] = taken[p] + label
		}
	}
}
