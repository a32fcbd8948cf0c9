// SPDX-License-Identifier: MIT

package sqrtext

// SignedSquare returns sign(m)·m²·r, an element of the base field.
// Because r >= 0 and x ↦ sign(x)·x² is strictly increasing on the reals,
// comparing signed squares compares the values themselves.
func (v *Value[B]) SignedSquare() B {
	b := v.base
	if v.IsZero() {
		return b.Zero()
	}
	m, r := v.parts()
	sq := b.Mul(b.Mul(m, m), r)
	if b.Sign(m) < 0 {
		return b.Neg(sq)
	}

	return sq
}

// Sign returns -1, 0 or +1. The radical is positive, so the mantissa decides.
func (v *Value[B]) Sign() int { return v.base.Sign(v.m) }

// Cmp returns -1, 0, +1 as v <, ==, > o. Exact; never approximates.
func (v *Value[B]) Cmp(o *Value[B]) int {
	return v.base.Cmp(v.SignedSquare(), o.SignedSquare())
}

// Equal reports v == o (as real numbers, whatever their stored form).
func (v *Value[B]) Equal(o *Value[B]) bool { return v.Cmp(o) == 0 }
