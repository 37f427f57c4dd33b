// SPDX-License-Identifier: MIT
// Package sphere: sentinel error set.
// Every routine reports user-triggered failures through these sentinels and
// callers match them via errors.Is. No routine in this package panics.

package sphere

import "errors"

var (
	// ErrBadDimension indicates a sphere dimension below one.
	ErrBadDimension = errors.New("sphere: dimension must be at least one")

	// ErrZeroVector indicates an input vector with zero Euclidean norm.
	ErrZeroVector = errors.New("sphere: cannot project a zero vector")

	// ErrNaNInf indicates an input vector whose norm is NaN or infinite.
	ErrNaNInf = errors.New("sphere: input vector has a non-finite norm")
)
