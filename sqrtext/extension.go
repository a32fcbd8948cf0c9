// SPDX-License-Identifier: MIT

// Package sqrtext - the parent structure.
//
// Purpose:
//   - Own the base field and expose the extension as a field.Field over
//     *Value[B], so generic consumers (eigenspace) can run on it unchanged.
//   - Act as a simple algebraic structure with one logical generator: One.

package sqrtext

import (
	"math/big"

	"github.com/katalvlaran/eigenspace/field"
)

// Extension is the single-radical extension of a base field B.
type Extension[B any] struct {
	base field.Base[B]
}

// Compile-time conformance: the extension over Q is a field over *Value.
var _ field.Field[*Value[*big.Rat]] = (*Extension[*big.Rat])(nil)

// New wraps base into its single-radical extension.
func New[B any](base field.Base[B]) *Extension[B] {
	return &Extension[B]{base: base}
}

// Rational returns the extension of the exact rationals.
func Rational() *Extension[*big.Rat] { return New[*big.Rat](field.Q) }

// BaseField returns the wrapped base field.
func (e *Extension[B]) BaseField() field.Base[B] { return e.base }

// Gens returns the sole logical generator, One.
func (e *Extension[B]) Gens() []*Value[B] { return []*Value[B]{e.One()} }

// FromBase embeds a base element.
func (e *Extension[B]) FromBase(x B) *Value[B] { return FromBase(e.base, x) }

// Element builds m·√r (see Combine).
func (e *Extension[B]) Element(m, r B) (*Value[B], error) { return Combine(e.base, m, r) }

// Zero returns 0.
func (e *Extension[B]) Zero() *Value[B] { return zeroValue(e.base) }

// One returns 1.
func (e *Extension[B]) One() *Value[B] { return FromBase(e.base, e.base.One()) }

// FromRat embeds a rational.
func (e *Extension[B]) FromRat(q *big.Rat) *Value[B] { return FromBase(e.base, e.base.FromRat(q)) }

// Add returns a+b (ErrIncompatibleRadical on independent radicals).
func (e *Extension[B]) Add(a, b *Value[B]) (*Value[B], error) { return a.Add(b) }

// Mul returns a·b.
func (e *Extension[B]) Mul(a, b *Value[B]) *Value[B] { return a.Mul(b) }

// Neg returns -a.
func (e *Extension[B]) Neg(a *Value[B]) *Value[B] { return a.Neg() }

// Inv returns 1/a.
func (e *Extension[B]) Inv(a *Value[B]) (*Value[B], error) { return a.Inv() }

// Sqrt returns √a for rational a >= 0.
func (e *Extension[B]) Sqrt(a *Value[B]) (*Value[B], error) { return a.Sqrt() }

// Cmp compares through signed squares.
func (e *Extension[B]) Cmp(a, b *Value[B]) int { return a.Cmp(b) }

// Sign returns the sign of a.
func (e *Extension[B]) Sign(a *Value[B]) int { return a.Sign() }

// IsZero reports a == 0.
func (e *Extension[B]) IsZero(a *Value[B]) bool { return a.IsZero() }

// IsOne reports a == 1.
func (e *Extension[B]) IsOne(a *Value[B]) bool { return a.IsOne() }

// Equal reports a == b.
func (e *Extension[B]) Equal(a, b *Value[B]) bool { return a.Equal(b) }

// Approx converts a to a binary float.
func (e *Extension[B]) Approx(a *Value[B], prec uint) *big.Float { return a.Approx(prec) }

// Format renders a through its canonical form.
func (e *Extension[B]) Format(a *Value[B]) string { return a.String() }
