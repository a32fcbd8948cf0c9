// SPDX-License-Identifier: MIT

// Package field - exact rationals (Base[*big.Rat]).
//
// Purpose:
//   - Provide the default base field of the module on top of math/big.
//   - Keep every result freshly allocated so *big.Rat values can be shared
//     freely between matrices, vectors and extension values.
//
// AI-Hints:
//   - Use the package-level Q value; Rationals is stateless.
//   - SquareRoot is the perfect-square test the extension folds radicands with.

package field

import (
	"math/big"
)

// Rationals is the field of exact rationals. The zero value is ready to use.
type Rationals struct{}

// Q is the shared rational field.
var Q Rationals

// Compile-time conformance.
var _ Base[*big.Rat] = Rationals{}

// Zero returns 0.
func (Rationals) Zero() *big.Rat { return new(big.Rat) }

// One returns 1.
func (Rationals) One() *big.Rat { return big.NewRat(1, 1) }

// FromRat returns a copy of q.
func (Rationals) FromRat(q *big.Rat) *big.Rat { return new(big.Rat).Set(q) }

// Add returns a+b. The error is always nil.
func (Rationals) Add(a, b *big.Rat) (*big.Rat, error) { return new(big.Rat).Add(a, b), nil }

// Mul returns a·b.
func (Rationals) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }

// Neg returns -a.
func (Rationals) Neg(a *big.Rat) *big.Rat { return new(big.Rat).Neg(a) }

// Inv returns 1/a or ErrDivisionByZero.
func (Rationals) Inv(a *big.Rat) (*big.Rat, error) {
	if a.Sign() == 0 {
		return nil, fieldErrorf("Q.Inv", ErrDivisionByZero)
	}

	return new(big.Rat).Inv(a), nil
}

// Sqrt returns the exact non-negative root of a.
// Errors: ErrNegativeRoot for a < 0, ErrNotSquare when a is not a square in Q.
func (q Rationals) Sqrt(a *big.Rat) (*big.Rat, error) {
	if a.Sign() < 0 {
		return nil, fieldErrorf("Q.Sqrt", ErrNegativeRoot)
	}
	root, ok := q.SquareRoot(a)
	if !ok {
		return nil, fieldErrorf("Q.Sqrt", ErrNotSquare)
	}

	return root, nil
}

// Cmp compares a and b.
func (Rationals) Cmp(a, b *big.Rat) int { return a.Cmp(b) }

// Sign returns the sign of a.
func (Rationals) Sign(a *big.Rat) int { return a.Sign() }

// IsZero reports a == 0.
func (Rationals) IsZero(a *big.Rat) bool { return a.Sign() == 0 }

// IsOne reports a == 1.
func (Rationals) IsOne(a *big.Rat) bool {
	return a.IsInt() && a.Num().IsInt64() && a.Num().Int64() == 1
}

// Equal reports a == b.
func (Rationals) Equal(a, b *big.Rat) bool { return a.Cmp(b) == 0 }

// Approx converts a to a *big.Float with prec bits of mantissa.
func (Rationals) Approx(a *big.Rat, prec uint) *big.Float {
	return new(big.Float).SetPrec(prec).SetRat(a)
}

// Format renders a as "p" or "p/q".
func (Rationals) Format(a *big.Rat) string { return a.RatString() }

// SquareRoot reports whether a is the square of a rational and returns the
// non-negative root. Both the reduced numerator and denominator must be
// perfect squares.
// Complexity: two integer square roots.
func (Rationals) SquareRoot(a *big.Rat) (*big.Rat, bool) {
	if a.Sign() < 0 {
		return new(big.Rat), false
	}
	num, okNum := exactSqrt(a.Num())
	if !okNum {
		return new(big.Rat), false
	}
	den, okDen := exactSqrt(a.Denom())
	if !okDen {
		return new(big.Rat), false
	}

	return new(big.Rat).SetFrac(num, den), true
}

// Denominator returns the reduced denominator of a (always positive).
func (Rationals) Denominator(a *big.Rat) *big.Int { return new(big.Int).Set(a.Denom()) }

// Content returns |a|.
func (Rationals) Content(a *big.Rat) *big.Rat { return new(big.Rat).Abs(a) }

// Scale returns q·a.
func (Rationals) Scale(a *big.Rat, q *big.Rat) *big.Rat { return new(big.Rat).Mul(a, q) }

// exactSqrt returns (√n, true) when n >= 0 is a perfect square.
func exactSqrt(n *big.Int) (*big.Int, bool) {
	if n.Sign() < 0 {
		return nil, false
	}
	r := new(big.Int).Sqrt(n)    // floor(√n)
	sq := new(big.Int).Mul(r, r) // r²
	return r, sq.Cmp(n) == 0
}
