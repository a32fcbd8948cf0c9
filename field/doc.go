// SPDX-License-Identifier: MIT

// Package field defines the exact base-field contract consumed by the
// single-radical extension (package sqrtext) and by the Gram realization
// engine (package eigenspace), together with its canonical implementation
// over the rationals.
//
// What lives here:
//
//   - Field[E]  - an exact, totally ordered field over elements of type E.
//     Add and Inv return errors because some fields in this module (the
//     single-radical extension) are only partially closed.
//   - Base[E]   - Field[E] plus the hooks the extension needs: a perfect-square
//     test, denominator/content extraction and rational scaling.
//   - Rationals - Base[*big.Rat] on top of math/big (exported as Q).
//   - SquareFree, Pow, Sub, Quo, ParseRat - small helpers shared by callers.
//
// Determinism:
//
//	Every operation is exact. Nothing in this package rounds, and Approx is
//	the only entry point that produces an approximation (*big.Float) for
//	display and cross-checks.
//
// Usage:
//
//	half, _ := field.ParseRat("1/2")
//	q, _ := field.Q.Add(half, field.Q.One())   // 3/2
//	r, ok := field.Q.SquareRoot(big.NewRat(9, 4)) // 3/2, true
package field
