package knapsack

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/lvpack/capacity"
	"github.com/katalvlaran/lvpack/internal/logging"
)

// Solve computes the quantity of each item type that maximizes total value
// without exceeding any bound.
//
// Stages:
//  1. Validate p and the state-space ceiling (see WithMaxStates).
//  2. Build the capacity index and a zeroed value table.
//  3. Feed items in input order through Table.Bounded, keeping each
//     returned quantity table. ctx is checked before every item; the table is
//     consistent at those points and nowhere else.
//  4. Read the optimum at the full state and backtrack through the quantity
//     tables in reverse input order.
//
// The logger is taken from ctx (logr.FromContextOrDiscard).
//
// Errors: ErrNoDimensions, ErrDimensionMismatch, ErrNegativeBound,
// ErrNegativeCost, ErrNegativeCount, ErrInvalidValue, ErrCapacityTooLarge,
// or the context error (wrapped) when ctx is done between items.
//
// Complexity: O(S · n · Σ log mᵢ) time, O(S · (items+1)) memory.
func Solve(ctx context.Context, p Problem, opts ...Option) (Solution, error) {
	o := gatherOptions(opts...)
	states, err := validateAll(p, o)
	if err != nil {
		return Solution{}, err
	}

	log := logr.FromContextOrDiscard(ctx)
	log.V(logging.DEBUG).Info("Solving knapsack",
		"dimensions", len(p.Bounds), "items", len(p.Items), "states", states)

	idx, err := capacity.New(p.Bounds)
	if err != nil {
		return Solution{}, fmt.Errorf("%w: %v", ErrCapacityTooLarge, err)
	}

	var (
		start  = time.Now()
		table  = NewTable(idx)
		taken  = make([][]int, len(p.Items))
		passes int
	)
	for i, it := range p.Items {
		if err = ctx.Err(); err != nil {
			return Solution{}, fmt.Errorf("knapsack: interrupted before item %d: %w", i, err)
		}
		taken[i] = table.bounded(it, func(b Bundle) {
			passes++
			o.observer.OnPass(i, b)
		})
		log.V(logging.TRACE).Info("Item processed",
			"item", i, "name", it.Name, "bundles", len(Split(it.MaxCount)), "best", table.At(idx.Max()))
	}

	quantities, err := backtrack(idx, p.Items, taken)
	if err != nil {
		return Solution{}, err
	}

	sol := Solution{
		Value:      table.At(idx.Max()),
		Chosen:     make(map[string]int, len(p.Items)),
		Quantities: quantities,
	}
	for i, it := range p.Items {
		sol.Chosen[it.Name] = quantities[i]
	}

	stats := Stats{
		States:  states,
		Items:   len(p.Items),
		Passes:  passes,
		Value:   sol.Value,
		Elapsed: time.Since(start),
	}
	o.observer.OnSolved(stats)
	log.V(logging.DEBUG).Info("Solved knapsack",
		"value", stats.Value, "passes", stats.Passes, "elapsed", stats.Elapsed)

	return sol, nil
}

// backtrack recovers per-item quantities. Starting at the full state it
// reads quantity q for the last item, removes q·cost from the decoded state
// and continues with the previous item on the re-encoded remainder.
func backtrack(idx *capacity.Index, items []Item, taken [][]int) ([]int, error) {
	var (
		quantities = make([]int, len(items))
		budget     = make([]int, idx.Dims())
		state      = idx.Max()
		k, d, q    int
	)
	for k = len(items) - 1; k >= 0; k-- {
		q = taken[k][state]
		idx.DecodeInto(state, budget)
		for d = range budget {
			budget[d] -= items[k].Cost[d] * q
			if budget[d] < 0 {
				return nil, fmt.Errorf("%w: item %d leaves dimension %d at %d",
					ErrInconsistentTable, k, d, budget[d])
			}
		}
		quantities[k] = q
		state = idx.Encode(budget)
	}

	return quantities, nil
}
