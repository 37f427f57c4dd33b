// SPDX-License-Identifier: MIT
// Package density: PDF and log-PDF evaluation for single points and batches.

package density

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// log2Pi = ln(2π), shared by every log-density term.
var log2Pi = math.Log(2 * math.Pi)

// LogPDF — log-density of the projected normal at one unit point
//
// Description:
//
//	For y ∈ 𝕊ⁿ⁻¹ the log-density splits into five additive terms built
//	from three quadratic forms against the precision matrix P:
//
//	    q₁ = μᵀ·P·μ        (precomputed in New)
//	    q₂ = μᵀ·P·y
//	    q₃ = yᵀ·P·y
//	    α  = q₂ / √q₃
//
//	    ln f(y) = −(n/2)·ln(2π) − ½·ln det Σ − (n/2)·ln q₃
//	              + ½·(α² − q₁) + ln M(α, n)
//
// The point is trusted to lie on the unit sphere; callers holding raw
// vectors normalize first via sphere.Project. Off-sphere inputs produce
// numbers that are not densities of anything, without an error.
//
// Errors:
//   - ErrDimensionMismatch — len(y) ≠ Dim().
//
// Complexity: O(n²) time, O(1) extra space.
func (e *Evaluator) LogPDF(y []float64) (float64, error) {
	if err := validatePoint(y, e.dim); err != nil {
		return 0, err
	}
	var q2, q3 float64
	for i := 0; i < e.dim; i++ {
		pyi := floats.Dot(e.precision.RawRowView(i), y)
		q2 += e.mu[i] * pyi
		q3 += y[i] * pyi
	}
	return e.logTerms(q2, q3), nil
}

// PDF returns exp(LogPDF(y)).
//
// Errors:
//   - ErrDimensionMismatch — len(y) ≠ Dim().
func (e *Evaluator) PDF(y []float64) (float64, error) {
	logPDF, err := e.LogPDF(y)
	if err != nil {
		return 0, err
	}
	return math.Exp(logPDF), nil
}

// LogPDFBatch evaluates the log-density at every row of y, a points×n
// matrix of unit vectors.
//
// All quadratic forms are produced by one matrix product V = y·Pᵀ (row k
// of V is P·y_k) and then folded per row. A *mat.Dense query matrix is
// scanned through zero-copy row views; any other mat.Matrix implementation
// falls back to row extraction.
//
// A batch with zero rows yields an empty, non-nil slice.
//
// Errors:
//   - ErrNilInput          — nil y.
//   - ErrDimensionMismatch — cols(y) ≠ Dim().
//
// Complexity: O(p·n²) time, O(p·n) space for p points.
func (e *Evaluator) LogPDFBatch(y mat.Matrix) ([]float64, error) {
	points, err := validatePoints(y, e.dim)
	if err != nil {
		return nil, err
	}
	out := make([]float64, points)
	if points == 0 {
		return out, nil
	}

	var v mat.Dense
	v.Mul(y, e.precision.T())

	yd, fast := y.(*mat.Dense)
	var row []float64
	if !fast {
		row = make([]float64, e.dim)
	}
	for k := 0; k < points; k++ {
		if fast {
			row = yd.RawRowView(k)
		} else {
			mat.Row(row, k, y)
		}
		vk := v.RawRowView(k)
		q2 := floats.Dot(e.mu, vk)
		q3 := floats.Dot(row, vk)
		out[k] = e.logTerms(q2, q3)
	}
	return out, nil
}

// PDFBatch returns exp of every LogPDFBatch entry.
//
// Errors:
//   - ErrNilInput          — nil y.
//   - ErrDimensionMismatch — cols(y) ≠ Dim().
func (e *Evaluator) PDFBatch(y mat.Matrix) ([]float64, error) {
	out, err := e.LogPDFBatch(y)
	if err != nil {
		return nil, err
	}
	for k, logPDF := range out {
		out[k] = math.Exp(logPDF)
	}
	return out, nil
}

// logTerms assembles the five log-density terms from the two
// point-dependent quadratic forms.
func (e *Evaluator) logTerms(q2, q3 float64) float64 {
	halfDim := 0.5 * float64(e.dim)
	alpha := q2 / math.Sqrt(q3)
	term1 := -halfDim * log2Pi
	term2 := -0.5 * e.logDetCov
	term3 := -halfDim * math.Log(q3)
	term4 := 0.5 * (alpha*alpha - e.muQuad)
	term5 := math.Log(mValue(alpha, e.dim))
	return term1 + term2 + term3 + term4 + term5
}

// LogPDF evaluates the projected-normal log-density at every row of y
// without keeping an Evaluator around. Equivalent to New followed by
// LogPDFBatch.
func LogPDF(mu []float64, covariance mat.Matrix, y mat.Matrix) ([]float64, error) {
	e, err := New(mu, covariance)
	if err != nil {
		return nil, err
	}
	return e.LogPDFBatch(y)
}

// PDF evaluates the projected-normal density at every row of y. Equivalent
// to New followed by PDFBatch.
func PDF(mu []float64, covariance mat.Matrix, y mat.Matrix) ([]float64, error) {
	e, err := New(mu, covariance)
	if err != nil {
		return nil, err
	}
	return e.PDFBatch(y)
}
