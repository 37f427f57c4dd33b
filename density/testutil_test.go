// Package density_test provides shared fixtures and helpers for the
// *_test.go files in this package: deterministic covariance fixtures,
// unit-point generators, and thin mat.Matrix wrappers that force the
// generic evaluation paths.
package density_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/projnorm/sphere"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// epsTight accepts only closed-form identities evaluated in a handful of flops.
	epsTight = 1e-12

	// epsCross tolerates the reordering between the single-point loop and the
	// batched matrix product when both are applied to identical inputs.
	epsCross = 1e-13

	// epsQuad bounds the Gauss–Legendre quadrature residual of the
	// normalization integrals; the integrands are analytic, so the rule
	// converges far below this threshold.
	epsQuad = 1e-6

	// epsMC bounds the Monte-Carlo normalization estimate. With mcSamples
	// draws the standard error sits near 1e-3, so this is a wide margin.
	epsMC = 2e-2

	// seedDet is the deterministic seed for every randomized fixture.
	seedDet = int64(7)

	// quadNodes is the per-angle Gauss–Legendre order for sphere quadrature.
	quadNodes = 64

	// mcSamples is the draw count for the five-dimensional normalization check.
	mcSamples = 100_000
)

// -----------------------------------------------------------------------------
// Distribution fixtures (hand-picked, strictly diagonally dominant ⇒ SPD)
// -----------------------------------------------------------------------------

// anisotropic returns a non-zero mean and a symmetric positive definite
// covariance for dimensions 2..4. Every matrix is strictly diagonally
// dominant with a positive diagonal, so positive definiteness holds by
// inspection.
func anisotropic(dim int) (mu []float64, cov *mat.Dense) {
	switch dim {
	case 2:
		return []float64{0.8, -0.3}, mat.NewDense(2, 2, []float64{
			1.5, 0.4,
			0.4, 0.9,
		})
	case 3:
		return []float64{0.5, 0.2, -0.4}, mat.NewDense(3, 3, []float64{
			1.2, 0.3, 0.0,
			0.3, 1.0, 0.2,
			0.0, 0.2, 0.8,
		})
	case 4:
		return []float64{0.3, -0.2, 0.1, 0.4}, mat.NewDense(4, 4, []float64{
			1.3, 0.2, 0.1, 0.0,
			0.2, 1.1, 0.0, 0.1,
			0.1, 0.0, 0.9, 0.2,
			0.0, 0.1, 0.2, 1.2,
		})
	}
	panic("density_test: no anisotropic fixture for this dimension")
}

// identity returns the dim×dim identity matrix.
func identity(dim int) *mat.Dense {
	out := mat.NewDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		out.Set(i, i, 1)
	}

	return out
}

// basis returns the canonical basis vector e_axis scaled by sign.
func basis(dim, axis int, sign float64) []float64 {
	v := make([]float64, dim)
	v[axis] = sign

	return v
}

// -----------------------------------------------------------------------------
// Query-point generators
// -----------------------------------------------------------------------------

// unitRows stacks the given points as the rows of a fresh dense matrix.
func unitRows(rows ...[]float64) *mat.Dense {
	out := mat.NewDense(len(rows), len(rows[0]), nil)
	for k, r := range rows {
		out.SetRow(k, r)
	}

	return out
}

// randomUnitRows draws `points` standard normal vectors of length dim and
// radially projects each onto the unit sphere.
func randomUnitRows(tb testing.TB, rng *rand.Rand, points, dim int) *mat.Dense {
	tb.Helper()
	out := mat.NewDense(points, dim, nil)
	raw := make([]float64, dim)
	for k := 0; k < points; k++ {
		for i := range raw {
			raw[i] = rng.NormFloat64()
		}
		unit, err := sphere.Project(raw)
		require.NoError(tb, err)
		out.SetRow(k, unit)
	}

	return out
}

// -----------------------------------------------------------------------------
// Opaque mat.Matrix wrappers (force the generic, non-*Dense code paths)
// -----------------------------------------------------------------------------

// opaqueMatrix hides the concrete type of a query matrix so batch
// evaluation exercises generic row extraction instead of the *mat.Dense
// fast path.
type opaqueMatrix struct{ inner mat.Matrix }

func (m opaqueMatrix) Dims() (int, int)    { return m.inner.Dims() }
func (m opaqueMatrix) At(i, j int) float64 { return m.inner.At(i, j) }
func (m opaqueMatrix) T() mat.Matrix       { return mat.Transpose{Matrix: m} }

// zeroRowMatrix reports a 0×cols shape; reading any element is a test bug.
type zeroRowMatrix struct{ cols int }

func (m zeroRowMatrix) Dims() (int, int)    { return 0, m.cols }
func (m zeroRowMatrix) At(i, j int) float64 { panic("density_test: read from an empty batch") }
func (m zeroRowMatrix) T() mat.Matrix       { return mat.Transpose{Matrix: m} }
