// Package knapsack_test holds helpers shared by the knapsack tests: a brute
// force reference solver and a feasibility assertion.
package knapsack_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpack/knapsack"
)

const (
	// epsValue is the tolerance for comparing optimal values computed in a
	// different summation order.
	epsValue = 1e-9

	// seedDet is the canonical deterministic seed.
	seedDet = int64(42)
)

// smallRandomConfig keeps brute force enumeration under a few thousand leaves.
var smallRandomConfig = knapsack.RandomConfig{
	Dims:     2,
	Items:    4,
	MaxBound: 8,
	MaxCost:  4,
	MaxCount: 4,
	MaxValue: 50,
}

// bruteForce enumerates every quantity vector and returns the best value.
func bruteForce(p knapsack.Problem) float64 {
	var (
		usage = make([]int, len(p.Bounds))
		best  float64
		walk  func(i int, acc float64)
	)
	walk = func(i int, acc float64) {
		if i == len(p.Items) {
			if acc > best {
				best = acc
			}
			return
		}
		it := p.Items[i]
		for q := 0; q <= it.MaxCount; q++ {
			fits := true
			for d := range usage {
				if usage[d]+q*it.Cost[d] > p.Bounds[d] {
					fits = false
					break
				}
			}
			if !fits {
				break
			}
			for d := range usage {
				usage[d] += q * it.Cost[d]
			}
			walk(i+1, acc+float64(q)*it.Value)
			for d := range usage {
				usage[d] -= q * it.Cost[d]
			}
		}
	}
	walk(0, 0)

	return best
}

// requireFeasible asserts count and capacity limits and that the reported
// value matches an independent decimal re-evaluation.
func requireFeasible(t *testing.T, p knapsack.Problem, sol knapsack.Solution) {
	t.Helper()

	require.Len(t, sol.Quantities, len(p.Items))
	for i, it := range p.Items {
		require.GreaterOrEqual(t, sol.Quantities[i], 0, "item %d", i)
		require.LessOrEqual(t, sol.Quantities[i], it.MaxCount, "item %d", i)
	}

	rep, err := knapsack.Evaluate(p, sol.Quantities)
	require.NoError(t, err)
	require.True(t, rep.Feasible, "usage %v exceeds bounds %v", rep.Usage, p.Bounds)
	require.InDelta(t, rep.Value.InexactFloat64(), sol.Value, epsValue)
}

// bundle builds the bundle Split emits for scale n.
func bundle(n int) knapsack.Bundle { return knapsack.Bundle{Scale: n, Label: n} }

func nan() float64 { return math.NaN() }
