// SPDX-License-Identifier: MIT
// Package density: evaluator construction and the per-distribution state
// (precision matrix, log-determinant, mean quadratic form) factored once.

package density

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Evaluator holds everything about one projected normal distribution that
// does not depend on the query point: the dimension, a private copy of the
// mean, the precision matrix P = Σ⁻¹, ln det Σ and q₁ = μᵀ·P·μ.
//
// An Evaluator is immutable after New and therefore safe for concurrent
// readers.
type Evaluator struct {
	dim       int
	mu        []float64
	precision *mat.Dense
	logDetCov float64
	muQuad    float64 // q₁ = μᵀ·P·μ
}

// New — build an Evaluator for the projected normal PN(μ, Σ)
//
// Description:
//
//	The distribution of Y = X/‖X‖₂ for X ~ N(μ, Σ) in ℝⁿ has a
//	closed-form density on 𝕊ⁿ⁻¹. Everything point-independent is
//	factored here exactly once:
//
//	  1. P = Σ⁻¹ via LU decomposition with partial pivoting.
//	  2. ln det Σ from the same family of factorizations (mat.LogDet).
//	  3. q₁ = μᵀ·P·μ.
//
// Singularity policy:
//
//	Inversion is rejected only when the LU condition estimate is
//	infinite, i.e. Σ is exactly singular. A finite yet huge condition
//	number keeps the evaluator usable and lets the densities degrade
//	gracefully instead of failing hard.
//
// Determinant sign:
//
//	A covariance with negative determinant is not rejected either: its
//	log-determinant is NaN, which flows through every density exactly
//	like the logarithm of a negative number would.
//
// Errors:
//   - ErrNilInput          — nil Σ.
//   - ErrDimensionMismatch — empty μ, non-square Σ, or order(Σ) ≠ len(μ).
//   - ErrSingularMatrix    — exactly singular Σ.
//
// Complexity: O(n³) time, O(n²) space.
func New(mu []float64, covariance mat.Matrix) (*Evaluator, error) {
	dim, err := validateMean(mu)
	if err != nil {
		return nil, err
	}
	if err = validateCovariance(covariance, dim); err != nil {
		return nil, err
	}

	precision := mat.NewDense(dim, dim, nil)
	if err = precision.Inverse(covariance); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
			return nil, ErrSingularMatrix
		}
		// Finite condition estimate: ill-conditioned but invertible.
	}

	logDet, sign := mat.LogDet(covariance)
	if sign < 0 {
		logDet = math.NaN() // ln of a negative determinant
	}

	meanCopy := make([]float64, dim)
	copy(meanCopy, mu)

	var muQuad float64
	for i := 0; i < dim; i++ {
		muQuad += meanCopy[i] * floats.Dot(precision.RawRowView(i), meanCopy)
	}

	return &Evaluator{
		dim:       dim,
		mu:        meanCopy,
		precision: precision,
		logDetCov: logDet,
		muQuad:    muQuad,
	}, nil
}

// Dim returns the ambient dimension n: the density lives on the sphere
// 𝕊ⁿ⁻¹ embedded in ℝⁿ, so every query point carries n coordinates.
func (e *Evaluator) Dim() int { return e.dim }
