// Package projnorm is your in-memory toolkit for projected normal
// distributions — Gaussian vectors pushed onto the unit sphere, from
// closed-form densities to the spherical geometry around them.
//
// 🚀 What is projnorm?
//
//	A compact numerical library that brings together:
//		• Density evaluation: PDF & log-PDF of the general projected normal on 𝕊ⁿ⁻¹
//		• Batch scoring: evaluate many unit points against one distribution
//		• Spherical geometry: surface areas, uniform densities, radial projection
//
// ✨ Why choose projnorm?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid numerics – dense linear algebra via gonum, log-space accumulation
//   - Deterministic – no hidden state; evaluators are safe for concurrent readers
//   - Efficient – precision matrix & log-determinant factored once, reused everywhere
//
// Under the hood, everything is organized under two subpackages:
//
//	density/ — projected-normal PDF, log-PDF and the recursive moment function
//	sphere/  — unit-sphere geometry: surface areas, uniform density, projection
//
// Quick sketch:
//
//	    X ~ N(μ, Σ) in ℝⁿ   ──▶   Y = X/‖X‖ on 𝕊ⁿ⁻¹
//
//	projnorm computes the exact density of Y at any unit point.
//
// Next up: sampling, moment matching and fitting — evaluation lands first.
//
//	go get github.com/katalvlaran/projnorm/density
package projnorm
