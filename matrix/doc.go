// Package matrix offers the float64 Dense matrix used for approximate views
// of exact coordinate matrices.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set.
//   - Mul, Transpose, Gram: the few kernels needed to look at M·Mᵀ numerically.
//   - AllClose / MaxAbsDiff: tolerance comparisons for cross-checks and tests.
//
// Nothing in this package takes part in an exact decision. Package eigenspace
// realizes vectors exactly and only converts to Dense on request (Approx),
// typically to print or eyeball a Gram matrix.
//
// See the eigenspace package examples for usage patterns.
package matrix
