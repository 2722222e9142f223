// Package knapsack solves the multi-dimensional bounded knapsack problem.
//
// 🚀 Problem:
//
//	Given a bound vector B over n independent resource dimensions and item
//	types (value vᵢ, cost vector cᵢ, max count mᵢ), choose quantities
//	0 ≤ qᵢ ≤ mᵢ maximizing Σ qᵢ·vᵢ subject to Σ qᵢ·cᵢ[d] ≤ B[d] for every d.
//
// ✨ How it works:
//   - capacity.Index flattens every usage vector in the box [0..B] to a dense
//     index; a single []float64 value table is addressed by it.
//   - Each bounded item is split into O(log m) indivisible bundles of sizes
//     1, 2, 4, …, remainder (Split). Any quantity in [0..m] is a subset sum of
//     those sizes, so a 0/1 pass per bundle reproduces every choice.
//   - A 0/1 pass (Table.ZeroOne) walks indices from Max() down to 0 and
//     relaxes value[c] from value[c−cost]. Spend never increases an index,
//     so the predecessor still holds the pre-pass value: each bundle is
//     used at most once per pass.
//   - A per-item quantity table records how many units of that item sit on
//     the best path to every state; Solve backtracks from the full state
//     through those tables in reverse item order.
//
// ⚙️ Usage:
//
//	p := knapsack.Problem{
//	  Bounds: []int{10, 4},
//	  Items: []knapsack.Item{
//	    {Name: "crate", Value: 6, MaxCount: 5, Cost: []int{2, 1}},
//	  },
//	}
//	sol, err := knapsack.Solve(ctx, p, knapsack.WithMaxStates(1<<20))
//
// Performance:
//
//   - Time:   O(S · n · Σᵢ log mᵢ), S = Π(B[d]+1)
//   - Memory: O(S · (1 + items)); one float table plus one int table per item
//
// A Table is owned by exactly one solve; Solve allocates its own and may be
// called concurrently on independent problems.
package knapsack
