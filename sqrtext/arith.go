// SPDX-License-Identifier: MIT

// Package sqrtext - field operations.
//
// Determinism & Policy:
//   - Every operation returns a fresh Value; operands are never touched.
//   - Partial operations (Add, Inv, Pow, Sqrt) return sentinel errors instead
//     of panicking; callers must handle the failure branch.

package sqrtext

import (
	"math/big"

	"github.com/katalvlaran/eigenspace/field"
)

// Add returns v + o.
//
// Implementation:
//   - Stage 1: zero operands short-circuit.
//   - Stage 2: equal radicands add mantissas directly.
//   - Stage 3: otherwise the ratio r_o / r_v must be a perfect square q²;
//     o is rewritten as (m_o·q)·√r_v before adding.
//
// Errors: ErrIncompatibleRadical (√2 + √3 has no single-radical form).
func (v *Value[B]) Add(o *Value[B]) (*Value[B], error) {
	if v.IsZero() {
		return o, nil
	}
	if o.IsZero() {
		return v, nil
	}
	b := v.base
	vm, vr := v.parts()
	om, or := o.parts()

	u := om
	if !b.Equal(vr, or) {
		ratio, err := field.Quo[B](b, or, vr)
		if err != nil {
			return nil, extErrorf(opAdd, err)
		}
		q, ok := b.SquareRoot(ratio)
		if !ok {
			return nil, extErrorf(opAdd, ErrIncompatibleRadical)
		}
		u = b.Mul(om, q) // m_o·√r_o = (m_o·q)·√r_v
	}
	sum, err := b.Add(vm, u)
	if err != nil {
		return nil, extErrorf(opAdd, err)
	}

	return Combine(b, sum, vr)
}

// Sub returns v - o. Same failure modes as Add.
func (v *Value[B]) Sub(o *Value[B]) (*Value[B], error) {
	return v.Add(o.Neg())
}

// Mul returns v · o. Equal radicands fold (√r·√r = r); otherwise the
// radicands multiply and Combine folds any square that appears.
func (v *Value[B]) Mul(o *Value[B]) *Value[B] {
	b := v.base
	if v.IsZero() || o.IsZero() {
		return zeroValue(b)
	}
	vm, vr := v.parts()
	om, or := o.parts()

	m := b.Mul(vm, om)
	if b.Equal(vr, or) {
		m = b.Mul(m, vr)
		return &Value[B]{base: b, m: m, r: b.One()}
	}
	out, err := Combine(b, m, b.Mul(vr, or))
	if err != nil {
		// both radicands are non-negative, so their product is too
		panic(err)
	}

	return out
}

// Neg returns -v. The radicand is unchanged.
func (v *Value[B]) Neg() *Value[B] {
	if v.IsZero() {
		return v
	}
	m, r := v.parts()

	return &Value[B]{base: v.base, m: v.base.Neg(m), r: r}
}

// Inv returns 1/v, rationalized by the radicand: 1/(m·√r) = (1/(m·r))·√r.
// Errors: field.ErrDivisionByZero for v == 0.
func (v *Value[B]) Inv() (*Value[B], error) {
	if v.IsZero() {
		return nil, extErrorf(opInv, field.ErrDivisionByZero)
	}
	b := v.base
	m, r := v.parts()
	inv, err := b.Inv(b.Mul(m, r))
	if err != nil {
		return nil, extErrorf(opInv, err)
	}

	return &Value[B]{base: b, m: inv, r: r}, nil
}

// Quo returns v / o.
func (v *Value[B]) Quo(o *Value[B]) (*Value[B], error) {
	inv, err := o.Inv()
	if err != nil {
		return nil, err
	}

	return v.Mul(inv), nil
}

// Pow raises v to a rational exponent e = num/den.
//
// Supported shapes:
//   - den == 1: v^k = m^k · r^⌊k/2⌋ · √(r^(k mod 2)); odd powers keep one √r.
//   - den == 2 and v rational (radicand one): v^((2k+1)/2) = m^k · √m,
//     requires m >= 0.
//
// Errors: ErrUnsupportedPower for any other exponent, field.ErrNegativeRoot
// for a half-integer power of a negative value, field.ErrDivisionByZero for
// negative powers of zero.
func (v *Value[B]) Pow(e *big.Rat) (*Value[B], error) {
	b := v.base
	num := e.Num()
	if !num.IsInt64() {
		return nil, extErrorf(opPow, ErrUnsupportedPower)
	}
	k := num.Int64()

	switch {
	case e.IsInt():
		m, r := v.parts()
		if v.IsZero() {
			r = b.One() // 0^k only depends on the mantissa
		}
		mk, err := field.Pow[B](b, m, k)
		if err != nil {
			return nil, extErrorf(opPow, err)
		}
		half, odd := floorDivMod2(k)
		rk, err := field.Pow[B](b, r, half)
		if err != nil {
			return nil, extErrorf(opPow, err)
		}
		rad := b.One()
		if odd == 1 {
			rad = r
		}
		return Combine(b, b.Mul(mk, rk), rad)

	case e.Denom().IsInt64() && e.Denom().Int64() == 2 && v.IsRational():
		if v.IsZero() {
			if k > 0 {
				return v, nil
			}
			return nil, extErrorf(opPow, field.ErrDivisionByZero)
		}
		m := v.m
		if b.Sign(m) < 0 {
			return nil, extErrorf(opPow, field.ErrNegativeRoot)
		}
		half, _ := floorDivMod2(k) // k odd: (k-1)/2
		mk, err := field.Pow[B](b, m, half)
		if err != nil {
			return nil, extErrorf(opPow, err)
		}
		return Combine(b, mk, m)
	}

	return nil, extErrorf(opPow, ErrUnsupportedPower)
}

// Sqrt returns the non-negative square root of a rational value: √x is the
// value 1·√x. Values that already carry a radical have no single-radical root.
//
// Errors: ErrUnsupportedRoot (radicand not one), field.ErrNegativeRoot (v < 0).
func (v *Value[B]) Sqrt() (*Value[B], error) {
	if v.IsZero() {
		return v, nil
	}
	b := v.base
	m, r := v.parts()
	if !b.IsOne(r) {
		return nil, extErrorf(opSqrt, ErrUnsupportedRoot)
	}
	if b.Sign(m) < 0 {
		return nil, extErrorf(opSqrt, field.ErrNegativeRoot)
	}

	return Combine(b, b.One(), m)
}

// Abs returns |v|.
func (v *Value[B]) Abs() *Value[B] {
	if v.Sign() < 0 {
		return v.Neg()
	}

	return v
}

// floorDivMod2 returns (⌊k/2⌋, k mod 2) with the remainder in {0, 1}.
func floorDivMod2(k int64) (q, r int64) {
	q, r = k/2, k%2
	if r < 0 {
		q--
		r += 2
	}

	return q, r
}
