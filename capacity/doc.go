// Package capacity flattens bounded multi-dimensional resource-usage vectors
// into dense integer indices.
//
// 🚀 What is a capacity index?
//
//	Given a bound vector B = (b₀, b₁, …, bₙ₋₁), every usage vector v with
//	0 ≤ v[d] ≤ b[d] is a number written in a mixed radix whose d-th digit
//	has radix (b[d]+1). Dimension 0 is the most significant digit:
//
//	  index(v) = (…((v₀·r₁ + v₁)·r₂ + v₂)…)·rₙ₋₁ + vₙ₋₁,   r_d = b_d + 1
//
//	The mapping is a bijection between the box [0..B] and [0..Size()).
//
// ✨ Key properties:
//   - Encode(Bounds()) == Max() == Size()-1
//   - Decode(Encode(v)) == v and Encode(Decode(i)) == i
//   - Spend never increases an index: subtracting a non-negative cost from
//     any digit lowers (or keeps) the encoded value. Dynamic programs that
//     iterate indices in descending order rely on this.
//
// ⚙️ Usage:
//
//	idx, err := capacity.New([]int{10, 4})
//	if err != nil {
//	  // ErrNoDimensions, ErrNegativeBound or ErrOverflow
//	}
//	i := idx.Encode([]int{3, 2})        // 3·5 + 2 = 17
//	v := idx.Decode(i)                  // [3 2]
//	p, ok := idx.Spend(v, []int{1, 1})  // 12, true
//
// Performance:
//
//   - Encode/Decode/Spend: O(n) time, where n is the number of dimensions
//   - DecodeInto and Spend do not allocate
package capacity
