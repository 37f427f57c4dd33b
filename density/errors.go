// SPDX-License-Identifier: MIT
// Package density: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the density
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation panics on user-triggered error conditions.

package density

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "density: ..." for consistency and to allow
// easy grepping across logs. Sentinels are returned directly, never %w-wrapped
// inside this package; callers match them via errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// mean shape -> covariance NotNil -> covariance shape -> invertibility;
// query batches: NotNil -> shape. The first failed stage wins.

var (
	// ErrNilInput indicates a nil covariance or query matrix.
	ErrNilInput = errors.New("density: nil matrix input")

	// ErrDimensionMismatch indicates inputs whose shapes disagree with the
	// distribution dimension: an empty mean, a non-square covariance, a
	// covariance whose order differs from len(mu), or query points whose
	// column count differs from len(mu).
	ErrDimensionMismatch = errors.New("density: dimension mismatch")

	// ErrSingularMatrix indicates a covariance with no usable inverse, i.e.
	// the condition number estimate of the LU factorization is infinite.
	ErrSingularMatrix = errors.New("density: singular covariance matrix")
)
