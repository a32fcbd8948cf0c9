// SPDX-License-Identifier: MIT

// Package sqrtext - write-once canonical form.
//
// Purpose:
//   - Produce (m', r', d) with m·√r == (m'/d)·√r', integral m', square-free r'.
//   - Memoize it in an atomic pointer: the first caller computes and stores,
//     later callers load. Concurrent first calls may compute twice; both
//     results are equal, so whichever CompareAndSwap wins is fine.
//
// AI-Hints:
//   - Call Canonical before printing; arithmetic picks the cached form up
//     automatically through parts().

package sqrtext

import (
	"math/big"

	"github.com/katalvlaran/eigenspace/field"
)

// Canonical returns the memoized canonical form of v, computing it on first use.
// Complexity: one SquareFree split of the radicand denominator and content on
// the first call, O(1) afterwards.
func (v *Value[B]) Canonical() Canonical[B] {
	c := v.canon.Load()
	if c == nil {
		v.canon.CompareAndSwap(nil, v.canonicalize())
		c = v.canon.Load()
	}

	return Canonical[B]{Mantissa: c.Mantissa, Radicand: c.Radicand, Denom: new(big.Int).Set(c.Denom)}
}

// canonicalize computes the canonical form from the stored (m, r).
//
// Implementation:
//   - Stage 1: clear radicand denominators. With s = den(r) = sf·k², the factor
//     a = s·sf = (sf·k)² makes r·a integral; m is divided by √a = sf·k.
//   - Stage 2: pull the largest square q² out of the radicand content into m.
//   - Stage 3: d = den(m); m' = m·d.
func (v *Value[B]) canonicalize() *Canonical[B] {
	b := v.base
	m, r := v.m, v.r

	// Stage 1: integral radicand.
	s := b.Denominator(r)
	sf, k := field.SquareFree(s)
	root := new(big.Int).Mul(sf, k)   // √(s·sf)
	a := new(big.Int).Mul(root, root) // s·sf
	m = b.Scale(m, new(big.Rat).SetFrac(big.NewInt(1), root))
	r = b.Scale(r, new(big.Rat).SetInt(a))

	// Stage 2: square part of the content moves into the mantissa.
	content := b.Content(r)
	if content.Sign() > 0 && content.IsInt() {
		q := field.LargestSquareDivisor(content.Num())
		if q.Cmp(big.NewInt(1)) > 0 {
			m = b.Scale(m, new(big.Rat).SetInt(q))
			r = b.Scale(r, new(big.Rat).SetFrac(big.NewInt(1), new(big.Int).Mul(q, q)))
		}
	}

	// Stage 3: integral mantissa over a positive denominator.
	d := b.Denominator(m)
	m = b.Scale(m, new(big.Rat).SetInt(d))

	return &Canonical[B]{Mantissa: m, Radicand: r, Denom: d}
}
