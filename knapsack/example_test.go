package knapsack_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvpack/knapsack"
)

// ExampleSolve loads a van limited by weight (10) and volume (4).
//
// Crates are light and small; one barrel fills most of the volume but is worth
// more than two crates. The optimum mixes both.
func ExampleSolve() {
	p := knapsack.Problem{
		Bounds: []int{10, 4},
		Items: []knapsack.Item{
			{Name: "crate", Value: 6, MaxCount: 5, Cost: []int{2, 1}},
			{Name: "barrel", Value: 20, MaxCount: 2, Cost: []int{4, 3}},
		},
	}

	sol, err := knapsack.Solve(context.Background(), p)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("value=%.1f\n", sol.Value)
	fmt.Println("chosen:", sol.Chosen)
	// Output:
	// value=26.0
	// chosen: map[barrel:1 crate:1]
}

// ExampleSplit shows the bundles a count of 10 is reduced to.
func ExampleSplit() {
	for _, b := range knapsack.Split(10) {
		fmt.Print(b.Scale, " ")
	}
	fmt.Println()
	// Output:
	// 1 2 4 3
}
