// SPDX-License-Identifier: MIT

// Package knapsack - input validation shared by Solve, Evaluate and callers
// that decode problems from external documents.
//
// Validation order (first failure wins):
//  1. bound vector: non-empty, non-negative;
//  2. items in input order: cost length, non-negative cost, non-negative
//     count, finite value;
//  3. state space: Π(bound_d+1) within the configured ceiling.
package knapsack

import (
	"fmt"
	"math"
)

// Validate checks the structural preconditions of p. It does not enforce a
// state-space ceiling; Solve does that with its configured limit.
//
// Duplicate item names and negative finite values are accepted.
//
// Complexity: O(n · items).
func Validate(p Problem) error {
	if err := validateBounds(p.Bounds); err != nil {
		return err
	}

	var (
		n   = len(p.Bounds)
		i   int
		it  Item
		err error
	)
	for i = 0; i < len(p.Items); i++ {
		it = p.Items[i]
		if err = validateItem(i, it, n); err != nil {
			return err
		}
	}

	return nil
}

// validateAll runs Validate and then the state-space ceiling.
// It returns the state count on success.
func validateAll(p Problem, o Options) (int, error) {
	if err := Validate(p); err != nil {
		return 0, err
	}

	return stateCount(p.Bounds, o.maxStates)
}

func validateBounds(bounds []int) error {
	if len(bounds) == 0 {
		return ErrNoDimensions
	}
	for d, b := range bounds {
		if b < 0 {
			return fmt.Errorf("%w: bounds[%d]=%d", ErrNegativeBound, d, b)
		}
	}

	return nil
}

func validateItem(i int, it Item, n int) error {
	if len(it.Cost) != n {
		return fmt.Errorf("%w: item %d (%q) has %d cost entries, want %d",
			ErrDimensionMismatch, i, it.Name, len(it.Cost), n)
	}
	for d, c := range it.Cost {
		if c < 0 {
			return fmt.Errorf("%w: item %d (%q) cost[%d]=%d", ErrNegativeCost, i, it.Name, d, c)
		}
	}
	if it.MaxCount < 0 {
		return fmt.Errorf("%w: item %d (%q) max count %d", ErrNegativeCount, i, it.Name, it.MaxCount)
	}
	if math.IsNaN(it.Value) || math.IsInf(it.Value, 0) {
		return fmt.Errorf("%w: item %d (%q)", ErrInvalidValue, i, it.Name)
	}

	return nil
}

// stateCount returns Π(bound_d+1), or ErrCapacityTooLarge as soon as the
// running product passes limit. Bounds must already be validated.
func stateCount(bounds []int, limit int) (int, error) {
	var (
		size = 1
		r    int
	)
	for _, b := range bounds {
		r = b + 1
		if r <= 0 || size > limit/r {
			return 0, fmt.Errorf("%w: more than %d states", ErrCapacityTooLarge, limit)
		}
		size *= r
	}

	return size, nil
}
