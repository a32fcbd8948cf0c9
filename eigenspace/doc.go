// Package eigenspace realizes prescribed cosine tables as explicit, exact
// coordinates of unit vectors.
//
// 🚀 What does it do?
//
//	Given a dimension d and target inner products T[i,j] between n unit
//	vectors, Vectors builds an n×d matrix M, row by row, such that
//	M[i]·M[j] == T[i,j] and M[i]·M[i] == 1 exactly. It is an on-line
//	Cholesky factorization of the Gram matrix T carried out in exact
//	arithmetic: every new independent direction costs one fresh square root,
//	represented by package sqrtext.
//
// Algorithm outline (row i):
//  1. Back-substitute against rows 0..i-1: for each reference row k, the
//     residual target[k] - Σ_{l<j} M[k,l]·v[l] is divided by the pivot
//     M[k,j] (j = pivots used so far). A zero pivot with a non-zero residual
//     means the targets contradict the basis: ErrInconsistentTarget.
//  2. d = 1 - Σ v[l]²:
//     d < 0 → ErrNormExceedsUnit;
//     d = 0 → the row lies in the span of earlier pivots;
//     d > 0 → a new pivot √d is appended, or ErrDimensionExhausted when all
//     d coordinates are already in use.
//
// Failures are reported as *VectorError[E] carrying the partial matrix, the
// row/column, the residual, the in-progress vector and the targets; the
// sentinel cause is reachable with errors.Is.
//
// ⚙️ Usage:
//
//	half := big.NewRat(1, 2)
//	es, _ := eigenspace.NewRational(3, []*big.Rat{half, half, half})
//	m, err := es.Vectors(eigenspace.PairIndex(3))
//	// m.Row(2) == [1/2, 1/6*sqrt(3), 1/3*sqrt(6)]
//
// Concurrency: an Eigenspace is read-only after construction; concurrent
// Vectors/Vector calls on the same instance are safe.
package eigenspace
