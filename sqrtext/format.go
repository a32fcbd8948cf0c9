// SPDX-License-Identifier: MIT

package sqrtext

import (
	"fmt"
	"math/big"
	"strings"
)

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Value[*big.Rat])(nil)

// String renders the canonical form as plain text:
// "3/2", "sqrt(3)", "-sqrt(3)", "1/2 * sqrt(3)".
func (v *Value[B]) String() string {
	b := v.base
	c := v.Canonical()

	var sb strings.Builder
	u := b.Format(c.Mantissa)
	plain := c.Denom.Cmp(big.NewInt(1)) == 0
	if b.IsZero(c.Radicand) || b.IsOne(c.Radicand) {
		sb.WriteString(u)
		if !plain {
			sb.WriteString("/" + c.Denom.String())
		}
		return sb.String()
	}
	switch {
	case plain && b.IsOne(c.Mantissa):
		// bare radical
	case plain && b.IsOne(b.Neg(c.Mantissa)):
		sb.WriteString("-")
	default:
		sb.WriteString(u)
		if !plain {
			sb.WriteString("/" + c.Denom.String())
		}
		sb.WriteString(" * ")
	}
	sb.WriteString("sqrt(" + b.Format(c.Radicand) + ")")

	return sb.String()
}

// Approx returns m·√r as a *big.Float with prec mantissa bits.
// It is a display/cross-check helper only: ordering and every feasibility
// decision stay exact.
func (v *Value[B]) Approx(prec uint) *big.Float {
	b := v.base
	m := b.Approx(v.m, prec)
	root := new(big.Float).SetPrec(prec).Sqrt(b.Approx(v.r, prec))

	return new(big.Float).SetPrec(prec).Mul(m, root)
}
