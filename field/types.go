// SPDX-License-Identifier: MIT

// Package field: the Field / Base contracts.
package field

import "math/big"

// Field is an exact field over elements of type E with a total order.
//
// Contract:
//   - Elements are treated as immutable values: no method mutates its
//     arguments and every result is a fresh value.
//   - Add may fail for partially closed fields (see sqrtext); exact fields
//     such as Q never return an error from Add.
//   - Cmp is a total order compatible with the field operations.
//   - Sqrt returns the exact root or an error; it never approximates.
type Field[E any] interface {
	// Zero returns the additive identity.
	Zero() E
	// One returns the multiplicative identity.
	One() E
	// FromRat embeds a rational number.
	FromRat(q *big.Rat) E

	// Add returns a+b or an error when the sum is not representable.
	Add(a, b E) (E, error)
	// Mul returns a·b.
	Mul(a, b E) E
	// Neg returns -a.
	Neg(a E) E
	// Inv returns 1/a or ErrDivisionByZero-compatible error for a == 0.
	Inv(a E) (E, error)
	// Sqrt returns the exact non-negative square root of a, or an error.
	Sqrt(a E) (E, error)

	// Cmp returns -1, 0, +1 as a <, ==, > b.
	Cmp(a, b E) int
	// Sign returns -1, 0, +1.
	Sign(a E) int
	// IsZero reports a == 0.
	IsZero(a E) bool
	// IsOne reports a == 1.
	IsOne(a E) bool
	// Equal reports a == b.
	Equal(a, b E) bool

	// Approx converts a to a binary float with prec mantissa bits.
	// It exists for display and cross-checks only.
	Approx(a E, prec uint) *big.Float
	// Format renders a as plain text.
	Format(a E) string
}

// Base is the contract the single-radical extension consumes from its base
// field: exact arithmetic plus a perfect-square test and the coefficient
// hooks used by canonicalization.
type Base[E any] interface {
	Field[E]

	// SquareRoot returns (√a, true) when a is a perfect square in the field,
	// and (zero, false) otherwise. Negative elements are never squares.
	SquareRoot(a E) (E, bool)

	// Denominator returns the positive lcm of the coefficient denominators of a.
	Denominator(a E) *big.Int

	// Content returns the non-negative gcd of the coefficients of a
	// (|a| for rationals).
	Content(a E) *big.Rat

	// Scale returns q·a.
	Scale(a E, q *big.Rat) E
}
