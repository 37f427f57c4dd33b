// SPDX-License-Identifier: MIT
// Package sphere: surface areas, uniform densities and radial projection
// for the unit sphere 𝕊ⁿ⁻¹ embedded in ℝⁿ.

package sphere

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// SurfaceArea — total surface area of 𝕊ⁿ⁻¹
//
// Description:
//
//	The unit sphere embedded in ℝⁿ has surface area
//
//	    A(n) = 2·π^(n/2) / Γ(n/2),
//
//	which reproduces the familiar values A(1)=2 (two points), A(2)=2π
//	(circle circumference), A(3)=4π and A(4)=2π².
//
// Numerical notes:
//
//	The quotient is evaluated as exp(LogSurfaceArea(n)) so that large n
//	never overflows Γ(n/2) on the way to a perfectly representable
//	(and rapidly shrinking) area.
//
// Errors:
//   - ErrBadDimension — if n < 1.
//
// Complexity: O(1).
func SurfaceArea(n int) (float64, error) {
	logArea, err := LogSurfaceArea(n)
	if err != nil {
		return 0, err
	}
	return math.Exp(logArea), nil
}

// LogSurfaceArea returns ln A(n) = ln 2 + (n/2)·ln π − ln Γ(n/2).
// It stays finite for every n ≥ 1 and is the preferred form whenever the
// area only ever appears inside a logarithm.
//
// Errors:
//   - ErrBadDimension — if n < 1.
func LogSurfaceArea(n int) (float64, error) {
	if n < 1 {
		return 0, ErrBadDimension
	}
	half := float64(n) / 2
	lg, _ := math.Lgamma(half) // sign is +1 for every positive argument
	return math.Ln2 + half*math.Log(math.Pi) - lg, nil
}

// UniformPDF returns the density of the uniform distribution on 𝕊ⁿ⁻¹,
// the constant 1/A(n).
//
// Errors:
//   - ErrBadDimension — if n < 1.
func UniformPDF(n int) (float64, error) {
	logPDF, err := UniformLogPDF(n)
	if err != nil {
		return 0, err
	}
	return math.Exp(logPDF), nil
}

// UniformLogPDF returns −ln A(n), the log-density of the uniform
// distribution on 𝕊ⁿ⁻¹.
//
// Errors:
//   - ErrBadDimension — if n < 1.
func UniformLogPDF(n int) (float64, error) {
	logArea, err := LogSurfaceArea(n)
	if err != nil {
		return 0, err
	}
	return -logArea, nil
}

// Project maps x ∈ ℝⁿ radially onto 𝕊ⁿ⁻¹, returning the fresh unit
// vector x/‖x‖₂. The input slice is never modified.
//
// Errors:
//   - ErrBadDimension — if x is empty.
//   - ErrZeroVector   — if ‖x‖₂ == 0.
//   - ErrNaNInf       — if ‖x‖₂ is NaN or infinite.
//
// Complexity: O(n) time, one O(n) allocation.
func Project(x []float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, ErrBadDimension
	}
	norm := floats.Norm(x, 2)
	switch {
	case norm == 0:
		return nil, ErrZeroVector
	case math.IsNaN(norm) || math.IsInf(norm, 0):
		return nil, ErrNaNInf
	}
	unit := make([]float64, len(x))
	copy(unit, x)
	floats.Scale(1/norm, unit)
	return unit, nil
}

// IsUnit reports whether ‖x‖₂ is within tol of one. Empty vectors are
// never unit vectors.
func IsUnit(x []float64, tol float64) bool {
	if len(x) == 0 {
		return false
	}
	return scalar.EqualWithinAbs(floats.Norm(x, 2), 1, tol)
}
