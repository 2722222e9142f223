package capacity

import (
	"fmt"
	"math"
)

// Index is an immutable mixed-radix mapping between usage vectors bounded by
// a fixed bound vector and the dense range [0..Size()).
//
// Index holds no mutable state; one value may be shared freely.
type Index struct {
	bounds []int // b[d], copied at construction
	radix  []int // b[d]+1
	size   int   // Π radix[d]
}

// New builds an Index over bounds. The slice is copied.
//
// Errors:
//   - ErrNoDimensions  if len(bounds) == 0.
//   - ErrNegativeBound if any bounds[d] < 0.
//   - ErrOverflow      if the product of (bounds[d]+1) exceeds math.MaxInt.
//
// Complexity: O(n).
func New(bounds []int) (*Index, error) {
	if len(bounds) == 0 {
		return nil, ErrNoDimensions
	}

	var (
		n     = len(bounds)
		b     = make([]int, n)
		radix = make([]int, n)
		size  = 1
		d     int
	)
	for d = 0; d < n; d++ {
		if bounds[d] < 0 {
			return nil, fmt.Errorf("%w: bounds[%d]=%d", ErrNegativeBound, d, bounds[d])
		}
		b[d] = bounds[d]
		radix[d] = bounds[d] + 1
		if radix[d] <= 0 || size > math.MaxInt/radix[d] {
			return nil, ErrOverflow
		}
		size *= radix[d]
	}

	return &Index{bounds: b, radix: radix, size: size}, nil
}

// Dims returns the number of dimensions.
func (x *Index) Dims() int { return len(x.bounds) }

// Size returns the number of addressable states, Π(bound_d+1).
func (x *Index) Size() int { return x.size }

// Max returns the index of the bound vector itself (Size()-1).
func (x *Index) Max() int { return x.size - 1 }

// Bounds returns a copy of the bound vector.
func (x *Index) Bounds() []int {
	out := make([]int, len(x.bounds))
	copy(out, x.bounds)

	return out
}

// Encode maps a usage vector to its index. v must have Dims() entries, each
// within [0, bound_d]; no validation is performed.
//
// Complexity: O(n).
func (x *Index) Encode(v []int) int {
	var (
		idx int
		d   int
	)
	for d = 0; d < len(x.radix); d++ {
		idx = idx*x.radix[d] + v[d]
	}

	return idx
}

// Decode is the inverse of Encode. i must lie in [0, Size()).
//
// Complexity: O(n) time, one allocation.
func (x *Index) Decode(i int) []int {
	return x.DecodeInto(i, make([]int, len(x.radix)))
}

// DecodeInto writes the digits of i into dst and returns dst.
// len(dst) must be at least Dims().
//
// Digits are peeled from the least significant (last) dimension upwards.
//
// Complexity: O(n), no allocations.
func (x *Index) DecodeInto(i int, dst []int) []int {
	var d int
	for d = len(x.radix) - 1; d >= 0; d-- {
		dst[d] = i % x.radix[d]
		i /= x.radix[d]
	}

	return dst[:len(x.radix)]
}

// Spend returns the index of budget−cost, or ok=false when cost exceeds the
// budget in any dimension. budget must be a valid decoded vector; cost must be
// non-negative. Feasibility and the predecessor index are computed in a
// single pass without materializing the difference.
//
// The returned index is never greater than Encode(budget).
//
// Complexity: O(n), no allocations.
func (x *Index) Spend(budget, cost []int) (int, bool) {
	var (
		idx int
		d   int
	)
	for d = 0; d < len(x.radix); d++ {
		if cost[d] > budget[d] {
			return 0, false
		}
		idx = idx*x.radix[d] + (budget[d] - cost[d])
	}

	return idx, true
}
