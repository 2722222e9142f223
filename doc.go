// Package lvpack solves multi-dimensional bounded knapsack problems: a bound
// vector over D resource dimensions and a list of item types, each with a
// value, a maximum count and a per-unit cost vector. The answer is the
// quantity of each item type that maximizes total value while every
// dimension stays within its bound.
//
// 🚀 What is inside?
//
//	capacity/  — mixed-radix index over the capacity hyper-rectangle
//	             (Encode, Decode, Spend)
//	knapsack/  — value table, descending 0/1 pass, binary splitting of
//	             bounded counts, Solve with backtracking, Evaluate, Random
//	codec/     — TOML / YAML / JSON problem and solution documents
//	cmd/lvpack — command-line front end (solve, generate)
//
// Quick example:
//
//	p := knapsack.Problem{
//		Bounds: []int{10, 4},
//		Items: []knapsack.Item{
//			{Name: "crate", Value: 6, MaxCount: 5, Cost: []int{2, 1}},
//			{Name: "barrel", Value: 20, MaxCount: 2, Cost: []int{4, 3}},
//		},
//	}
//	sol, err := knapsack.Solve(ctx, p)
//	// sol.Value == 26, sol.Chosen == map[barrel:1 crate:1]
//
// Complexity: O(Π(bound_d+1) · D · Σ log₂(count_i+1)) time and
// O(Π(bound_d+1) · N) memory for the per-item backtracking tables.
//
//	go install github.com/katalvlaran/lvpack/cmd/lvpack@latest
package lvpack
