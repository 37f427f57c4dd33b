// SPDX-License-Identifier: MIT
// Package density: the recursive moment function M behind every log-density.

package density

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// sqrt2Pi = √(2π), the normalizing constant of the standard normal density.
var sqrt2Pi = math.Sqrt(2 * math.Pi)

// mValue — the moment recursion M(α, i)
//
// Description:
//
//	The projected-normal log-density reduces to quadratic forms plus one
//	scalar family M(α, i), defined by
//
//	    M(α, 1) = √(2π)·Φ(α)
//	    M(α, 2) = exp(−α²/2) + α·M(α, 1)
//	    M(α, i) = (i−2)·M(α, i−2) + α·M(α, i−1),   i ≥ 3,
//
//	where Φ is the standard normal CDF. mValue returns M(α, n) for the
//	distribution dimension n.
//
// Numerical notes:
//
//	Only the two most recent terms are kept, so the recursion runs in
//	O(n) time and O(1) space. The (i−2) factor makes M grow roughly
//	factorially in i; around n≈300 (sooner for extreme α) the terms
//	overflow float64, after which the value degenerates to ±Inf, or to
//	NaN once the arithmetic forms 0·Inf or Inf−Inf. Overflow stays
//	visible rather than being masked.
//
// Complexity: O(n) time, O(1) space.
func mValue(alpha float64, n int) float64 {
	m1 := sqrt2Pi * distuv.UnitNormal.CDF(alpha)
	if n == 1 {
		return m1
	}
	m2 := math.Exp(-0.5*alpha*alpha) + alpha*m1
	for i := 3; i <= n; i++ {
		m1, m2 = m2, float64(i-2)*m1+alpha*m2
	}
	return m2
}
