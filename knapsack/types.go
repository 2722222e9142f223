package knapsack

import "time"

// Item is one item type.
type Item struct {
	// Name labels the item in Solution.Chosen. Names need not be unique.
	Name string

	// Value is gained per unit taken. Optimality assumes Value ≥ 0.
	Value float64

	// MaxCount bounds the quantity taken; 0 means the item is never taken.
	MaxCount int

	// Cost is the per-unit cost in each dimension; len(Cost) == len(Bounds).
	Cost []int
}

// Problem is a bound vector plus the item list, both read-only during Solve.
type Problem struct {
	Bounds []int
	Items  []Item
}

// Solution is the result of Solve.
type Solution struct {
	// Value is the optimal total value.
	Value float64

	// Chosen maps item name to quantity for every input item, zero included.
	// When names repeat, the later item's quantity overwrites the earlier one.
	Chosen map[string]int

	// Quantities holds the chosen quantity per item, in input order.
	Quantities []int
}

// Bundle is one indivisible take-or-leave unit produced by Split:
// Scale copies of an item (cost and value multiplied by Scale) recorded in
// the quantity table as Label units.
type Bundle struct {
	Scale int
	Label int
}

// Stats summarizes one finished solve for observers and logs.
type Stats struct {
	States  int           // index-space size
	Items   int           // number of item types
	Passes  int           // 0/1 passes executed (Σ len(Split(MaxCount)))
	Value   float64       // optimal value
	Elapsed time.Duration // wall time of Solve
}
