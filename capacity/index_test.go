package capacity_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpack/capacity"
)

// TestNew_Errors verifies the construction sentinels.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name   string
		bounds []int
		want   error
	}{
		{"nil bounds", nil, capacity.ErrNoDimensions},
		{"empty bounds", []int{}, capacity.ErrNoDimensions},
		{"negative bound", []int{3, -1}, capacity.ErrNegativeBound},
		{"product overflow", []int{math.MaxInt32, math.MaxInt32, math.MaxInt32}, capacity.ErrOverflow},
		{"radix overflow", []int{math.MaxInt}, capacity.ErrOverflow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := capacity.New(tc.bounds)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestIndex_SizeAndMax checks Size = Π(b+1) and Max = Encode(bounds) = Size-1.
func TestIndex_SizeAndMax(t *testing.T) {
	cases := []struct {
		bounds []int
		size   int
	}{
		{[]int{0}, 1},
		{[]int{10}, 11},
		{[]int{2, 2}, 9},
		{[]int{3, 0, 4}, 20},
		{[]int{1, 1, 1, 1}, 16},
	}
	for _, tc := range cases {
		idx, err := capacity.New(tc.bounds)
		require.NoError(t, err)
		assert.Equal(t, tc.size, idx.Size(), "bounds=%v", tc.bounds)
		assert.Equal(t, tc.size-1, idx.Max(), "bounds=%v", tc.bounds)
		assert.Equal(t, idx.Max(), idx.Encode(tc.bounds), "bounds=%v", tc.bounds)
		assert.Equal(t, len(tc.bounds), idx.Dims())
	}
}

// TestIndex_EncodeLayout pins dimension 0 as the most significant digit.
func TestIndex_EncodeLayout(t *testing.T) {
	idx, err := capacity.New([]int{10, 4})
	require.NoError(t, err)

	assert.Equal(t, 0, idx.Encode([]int{0, 0}))
	assert.Equal(t, 1, idx.Encode([]int{0, 1}))
	assert.Equal(t, 5, idx.Encode([]int{1, 0}))
	assert.Equal(t, 17, idx.Encode([]int{3, 2}))
	assert.Equal(t, 54, idx.Encode([]int{10, 4}))
}

// TestIndex_RoundTrip walks the whole index space in both directions.
func TestIndex_RoundTrip(t *testing.T) {
	for _, bounds := range [][]int{{0}, {7}, {2, 3}, {3, 0, 2}, {1, 2, 1, 3}} {
		idx, err := capacity.New(bounds)
		require.NoError(t, err)

		buf := make([]int, idx.Dims())
		for i := 0; i < idx.Size(); i++ {
			v := idx.Decode(i)
			require.Equal(t, i, idx.Encode(v), "bounds=%v i=%d", bounds, i)
			require.Equal(t, v, idx.DecodeInto(i, buf), "DecodeInto must agree with Decode")
			for d := range v {
				require.GreaterOrEqual(t, v[d], 0)
				require.LessOrEqual(t, v[d], bounds[d])
			}
		}
	}
}

// TestIndex_DecodeEncodeVectors enumerates every coordinate vector explicitly.
func TestIndex_DecodeEncodeVectors(t *testing.T) {
	bounds := []int{2, 1, 3}
	idx, err := capacity.New(bounds)
	require.NoError(t, err)

	seen := make(map[int]bool, idx.Size())
	for a := 0; a <= bounds[0]; a++ {
		for b := 0; b <= bounds[1]; b++ {
			for c := 0; c <= bounds[2]; c++ {
				v := []int{a, b, c}
				i := idx.Encode(v)
				require.Equal(t, v, idx.Decode(i))
				require.False(t, seen[i], "index %d produced twice", i)
				seen[i] = true
			}
		}
	}
	assert.Len(t, seen, idx.Size())
}

// TestIndex_Spend covers feasibility and agreement with Encode(budget-cost).
func TestIndex_Spend(t *testing.T) {
	idx, err := capacity.New([]int{5, 3})
	require.NoError(t, err)

	p, ok := idx.Spend([]int{4, 2}, []int{1, 2})
	require.True(t, ok)
	assert.Equal(t, idx.Encode([]int{3, 0}), p)

	_, ok = idx.Spend([]int{4, 2}, []int{0, 3})
	assert.False(t, ok, "cost above budget in the last dimension")

	_, ok = idx.Spend([]int{0, 3}, []int{1, 0})
	assert.False(t, ok, "cost above budget in the first dimension")

	p, ok = idx.Spend([]int{2, 1}, []int{0, 0})
	require.True(t, ok)
	assert.Equal(t, idx.Encode([]int{2, 1}), p, "zero cost is the identity")
}

// TestIndex_SpendNeverIncreases checks, for every state and every cost in the
// box, that a feasible Spend lands on an index no greater than the state.
func TestIndex_SpendNeverIncreases(t *testing.T) {
	idx, err := capacity.New([]int{3, 2, 2})
	require.NoError(t, err)

	var budget, cost, diff []int
	diff = make([]int, idx.Dims())
	for c := 0; c < idx.Size(); c++ {
		budget = idx.Decode(c)
		for k := 0; k < idx.Size(); k++ {
			cost = idx.Decode(k)
			p, ok := idx.Spend(budget, cost)

			feasible := true
			for d := range budget {
				diff[d] = budget[d] - cost[d]
				if diff[d] < 0 {
					feasible = false
				}
			}
			require.Equal(t, feasible, ok, "budget=%v cost=%v", budget, cost)
			if ok {
				require.LessOrEqual(t, p, c)
				require.Equal(t, idx.Encode(diff), p)
			}
		}
	}
}

// TestIndex_BoundsIsCopy ensures callers cannot mutate the index.
func TestIndex_BoundsIsCopy(t *testing.T) {
	in := []int{4, 4}
	idx, err := capacity.New(in)
	require.NoError(t, err)

	in[0] = 100
	out := idx.Bounds()
	out[1] = 100
	assert.Equal(t, []int{4, 4}, idx.Bounds())
	assert.Equal(t, 25, idx.Size())
}
