// Package sphere provides unit-sphere geometry shared by the density
// routines: surface areas, the uniform density, and radial projection.
//
// 🚀 What is sphere?
//
//	The unit sphere 𝕊ⁿ⁻¹ = {x ∈ ℝⁿ : ‖x‖₂ = 1} is the sample space of
//	every projected distribution.  This package answers the recurring
//	geometric questions around it:
//	  • How large is 𝕊ⁿ⁻¹?                → SurfaceArea, LogSurfaceArea
//	  • What does "perfectly flat" mean?   → UniformPDF, UniformLogPDF
//	  • How do I land on the sphere?       → Project
//	  • Am I already on it?                → IsUnit
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/projnorm/sphere"
//
//	y, err := sphere.Project([]float64{3, 4}) // [0.6 0.8]
//	a, err := sphere.SurfaceArea(3)           // 4π ≈ 12.5664
//
// Performance:
//
//   - Every routine is O(n) or O(1); Project's output slice is the only allocation.
//
// See examples in example_test.go.
package sphere
