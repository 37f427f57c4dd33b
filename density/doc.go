// Package density evaluates the probability density of the general
// projected normal distribution PN(μ, Σ): take X ~ N(μ, Σ) in ℝⁿ and
// push it onto the unit sphere as Y = X/‖X‖₂.
//
// 🚀 What is the projected normal?
//
//	A flexible family of distributions over directions.  Projecting an
//	anisotropic Gaussian yields spherical densities with one or two
//	modes, skew and sharp concentration — far beyond the symmetric
//	von Mises–Fisher family.  It shows up in:
//	  • Directional statistics & circular data
//	  • Neural population geometry
//	  • Wind, orientation and compass models
//	  • Any pipeline that L2-normalizes feature vectors
//
// ✨ Key features:
//   - closed-form PDF & log-PDF for every dimension n ≥ 1
//   - batch evaluation: one factorization, thousands of points
//   - log-space arithmetic end to end; overflow stays visible, never masked
//   - strict sentinel errors (ErrSingularMatrix, ErrDimensionMismatch, …)
//
// ⚙️ Usage:
//
//	import (
//	  "gonum.org/v1/gonum/mat"
//
//	  "github.com/katalvlaran/projnorm/density"
//	)
//
//	mu := []float64{0, 0}
//	sigma := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
//	y := mat.NewDense(1, 2, []float64{1, 0})
//
//	logp, err := density.LogPDF(mu, sigma, y) // [−ln(2π)]
//
//	// Scoring many batches? Factor once, reuse everywhere:
//	eval, err := density.New(mu, sigma)
//	logp, err = eval.LogPDFBatch(y)
//
// Performance:
//
//   - New:         O(n³) — one LU factorization
//   - LogPDF:      O(n²) per point
//   - LogPDFBatch: O(p·n²) for p points, a single dense multiply
//
// See examples in example_test.go and the normalization checks in
// normalization_test.go for quadrature-backed correctness evidence.
package density
