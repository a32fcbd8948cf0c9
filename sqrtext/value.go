// SPDX-License-Identifier: MIT

// Package sqrtext - the Value type and its two constructors.
//
// Purpose:
//   - Hold m·√r over a Base[B] with the folding invariants enforced once at
//     construction, so every operation can assume them.
//   - Keep construction explicit: FromBase for base elements, Combine for a
//     (mantissa, radicand) pair. There is no "maybe already a Value" dispatch.

package sqrtext

import (
	"math/big"
	"sync/atomic"

	"github.com/katalvlaran/eigenspace/field"
)

// Value is an immutable element m·√r of the single-radical extension.
//   - m, r are base-field elements; r >= 0.
//   - r is never a non-zero perfect square (folded into m at construction).
//   - zero is represented as m = r = 0.
//
// Values are always handled through pointers; the only field ever written
// after construction is canon, and only from nil to a computed form.
type Value[B any] struct {
	base  field.Base[B]
	m     B                            // mantissa
	r     B                            // radicand
	canon atomic.Pointer[Canonical[B]] // write-once presentation cache
}

// Canonical is the normalized presentation (m', r', d) of a value:
// m·√r == (m'/d)·√r' with m' integral, r' square-free (within SquareFree's
// reach) and d > 0.
type Canonical[B any] struct {
	Mantissa B        // m', integral coefficients
	Radicand B        // r'
	Denom    *big.Int // d > 0
}

// FromBase embeds x as x·√1.
// Complexity: O(1).
func FromBase[B any](base field.Base[B], x B) *Value[B] {
	if base.IsZero(x) {
		return zeroValue(base)
	}

	return &Value[B]{base: base, m: x, r: base.One()}
}

// Combine builds m·√r and normalizes it.
//
// Implementation:
//   - Stage 1: m == 0 or r == 0 collapses to the canonical zero.
//   - Stage 2: reject r < 0 (ErrNegativeRadicand).
//   - Stage 3: a perfect-square radicand is folded into the mantissa.
//
// Errors: ErrNegativeRadicand.
// Complexity: one perfect-square test in B.
func Combine[B any](base field.Base[B], m, r B) (*Value[B], error) {
	if base.IsZero(m) || base.IsZero(r) {
		return zeroValue(base), nil
	}
	if base.Sign(r) < 0 {
		return nil, extErrorf(opCombine, ErrNegativeRadicand)
	}
	if root, ok := base.SquareRoot(r); ok {
		return &Value[B]{base: base, m: base.Mul(m, root), r: base.One()}, nil
	}

	return &Value[B]{base: base, m: m, r: r}, nil
}

// zeroValue returns the canonical zero with its presentation precomputed.
func zeroValue[B any](base field.Base[B]) *Value[B] {
	v := &Value[B]{base: base, m: base.Zero(), r: base.Zero()}
	v.canon.Store(&Canonical[B]{Mantissa: base.Zero(), Radicand: base.Zero(), Denom: big.NewInt(1)})

	return v
}

// Mantissa returns m as stored at construction.
func (v *Value[B]) Mantissa() B { return v.m }

// Radicand returns r as stored at construction.
func (v *Value[B]) Radicand() B { return v.r }

// Base returns the base field the value lives over.
func (v *Value[B]) Base() field.Base[B] { return v.base }

// IsZero reports v == 0.
func (v *Value[B]) IsZero() bool { return v.base.IsZero(v.m) }

// IsOne reports v == 1.
func (v *Value[B]) IsOne() bool { return v.base.IsOne(v.r) && v.base.IsOne(v.m) }

// IsRational reports whether v lies in the base field (radicand one, or zero).
func (v *Value[B]) IsRational() bool { return v.IsZero() || v.base.IsOne(v.r) }

// ToBase converts a rational value back to the base field.
// Errors: ErrNotRational when v carries a radical.
func (v *Value[B]) ToBase() (B, error) {
	if v.IsZero() {
		return v.base.Zero(), nil
	}
	if !v.base.IsOne(v.r) {
		var zero B
		return zero, extErrorf(opToBase, ErrNotRational)
	}

	return v.m, nil
}

// parts returns the (mantissa, radicand) pair used by arithmetic: the
// canonical form when it has already been computed, otherwise the stored one.
// Both describe the same number.
func (v *Value[B]) parts() (m, r B) {
	c := v.canon.Load()
	if c == nil || v.IsZero() {
		return v.m, v.r
	}
	d := new(big.Rat).SetFrac(big.NewInt(1), c.Denom)

	return v.base.Scale(c.Mantissa, d), c.Radicand
}
