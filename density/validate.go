// SPDX-License-Identifier: MIT
// Package density: staged input validation shared by every operation.
// Validators return sentinel errors from errors.go and never panic. Shape
// checks run before any numeric work so failures stay cheap and deterministic.

package density

import "gonum.org/v1/gonum/mat"

// validateMean checks the mean vector and returns the distribution dimension.
func validateMean(mu []float64) (int, error) {
	if len(mu) == 0 {
		return 0, ErrDimensionMismatch
	}
	return len(mu), nil
}

// validateCovariance checks that covariance is a non-nil dim×dim matrix.
func validateCovariance(covariance mat.Matrix, dim int) error {
	if covariance == nil {
		return ErrNilInput
	}
	r, c := covariance.Dims()
	if r != c || r != dim {
		return ErrDimensionMismatch
	}
	return nil
}

// validatePoints checks that y is a non-nil points×dim matrix and returns
// the number of points.
func validatePoints(y mat.Matrix, dim int) (int, error) {
	if y == nil {
		return 0, ErrNilInput
	}
	rows, cols := y.Dims()
	if cols != dim {
		return 0, ErrDimensionMismatch
	}
	return rows, nil
}

// validatePoint checks a single query point against the distribution dimension.
func validatePoint(y []float64, dim int) error {
	if len(y) != dim {
		return ErrDimensionMismatch
	}
	return nil
}
