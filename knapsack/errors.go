// SPDX-License-Identifier: MIT

package knapsack

import "errors"

// Sentinel errors. All of them are detected during setup, before the value
// table is allocated, except ErrInconsistentTable which guards backtracking.
var (
	// ErrNoDimensions indicates an empty bound vector.
	ErrNoDimensions = errors.New("knapsack: bound vector must have at least one dimension")

	// ErrDimensionMismatch indicates an item cost vector whose length differs
	// from the bound vector, or a quantity vector of the wrong length.
	ErrDimensionMismatch = errors.New("knapsack: dimension mismatch")

	// ErrCapacityTooLarge indicates Π(bound_d+1) above the configured ceiling.
	ErrCapacityTooLarge = errors.New("knapsack: state space exceeds limit")

	// ErrNegativeBound indicates a bound component below zero.
	ErrNegativeBound = errors.New("knapsack: negative bound")

	// ErrNegativeCost indicates a cost component below zero.
	ErrNegativeCost = errors.New("knapsack: negative cost")

	// ErrNegativeCount indicates an item max count below zero.
	ErrNegativeCount = errors.New("knapsack: negative max count")

	// ErrInvalidValue indicates a NaN or ±Inf item value.
	ErrInvalidValue = errors.New("knapsack: item value must be finite")

	// ErrInconsistentTable indicates that backtracking produced a negative
	// residual capacity. It signals a corrupted quantity table.
	ErrInconsistentTable = errors.New("knapsack: inconsistent quantity table")

	// ErrInvalidRandomConfig indicates nonsensical generator parameters.
	ErrInvalidRandomConfig = errors.New("knapsack: invalid random config")
)
