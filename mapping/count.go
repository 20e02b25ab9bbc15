// SPDX-License-Identifier: MIT

package mapping

import "math"

// Count returns the number of injective mappings from an n1-vertex pattern
// into an n2-vertex host, i.e. the falling factorial P(n2, n1).
// Returns 0 when n1 > n2 or either argument is negative; saturates at
// math.MaxInt instead of overflowing.
//
// Complexity: O(n1).
func Count(n1, n2 int) int {
	if n1 < 0 || n2 < 0 || n1 > n2 {
		return 0
	}
	r := 1
	for i := 0; i < n1; i++ {
		f := n2 - i
		if r > math.MaxInt/f {
			return math.MaxInt
		}
		r *= f
	}

	return r
}

// NumCombinations returns the binomial coefficient C(n, k).
//
// Policy:
//   - k > n (or negative input)  ⇒ 0
//   - k == 0 or k == n            ⇒ 1
//   - uses C(n,k) == C(n,n-k) and the multiplicative formula; saturates at
//     math.MaxInt when an intermediate product would overflow.
//
// Each step r·(n−i)/(i+1) is exact because r·(n−i) is a product of i+1
// consecutive integers divided by i! and hence divisible by (i+1).
//
// Complexity: O(min(k, n−k)).
func NumCombinations(n, k int) int {
	if n < 0 || k < 0 || k > n {
		return 0
	}
	if k == 0 || k == n {
		return 1
	}
	if n-k < k {
		k = n - k
	}

	r := 1
	for i := 0; i < k; i++ {
		f := n - i
		if r > math.MaxInt/f {
			return math.MaxInt
		}
		r = r * f / (i + 1)
	}

	return r
}
