package knapsack

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// roundPlaces is the number of decimal places kept by Round.
const roundPlaces = 9

// Report is an exact re-evaluation of a quantity vector.
type Report struct {
	// Value is Σ qᵢ·vᵢ in decimal arithmetic.
	Value decimal.Decimal

	// Usage is Σ qᵢ·cᵢ[d] per dimension.
	Usage []int

	// Feasible reports Usage[d] ≤ Bounds[d] for all d and 0 ≤ qᵢ ≤ MaxCount.
	Feasible bool
}

// Evaluate recomputes value and usage of quantities (input order) against p
// independently of the solver tables.
//
// Errors: those of Validate, or ErrDimensionMismatch when
// len(quantities) != len(p.Items).
//
// Complexity: O(n · items).
func Evaluate(p Problem, quantities []int) (Report, error) {
	if err := Validate(p); err != nil {
		return Report{}, err
	}
	if len(quantities) != len(p.Items) {
		return Report{}, fmt.Errorf("%w: %d quantities for %d items",
			ErrDimensionMismatch, len(quantities), len(p.Items))
	}

	rep := Report{
		Value:    decimal.Zero,
		Usage:    make([]int, len(p.Bounds)),
		Feasible: true,
	}
	for i, it := range p.Items {
		q := quantities[i]
		if q < 0 || q > it.MaxCount {
			rep.Feasible = false
		}
		rep.Value = rep.Value.Add(decimal.NewFromFloat(it.Value).Mul(decimal.NewFromInt(int64(q))))
		for d, c := range it.Cost {
			rep.Usage[d] += c * q
		}
	}
	for d, u := range rep.Usage {
		if u > p.Bounds[d] {
			rep.Feasible = false
		}
	}

	return rep, nil
}

// Round rounds v to 1e-9 so that accumulated floating-point drift does not
// leak into printed results. NaN and ±Inf are returned unchanged.
func Round(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r, _ := decimal.NewFromFloat(v).Round(roundPlaces).Float64()

	return r
}
