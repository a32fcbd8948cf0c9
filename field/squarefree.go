// SPDX-License-Identifier: MIT

package field

import "math/big"

// trialLimit bounds the trial-division sweep in SquareFree.
const trialLimit = 1 << 16

// SquareFree splits n into n = s·k² with k > 0 and s carrying the sign of n.
//
// Implementation:
//   - Stage 1: trial-divide |n| by 2 and odd d up to trialLimit (or √rest).
//   - Stage 2: the cofactor left over is folded into k if it is a perfect
//     square, otherwise into s.
//
// Behavior highlights:
//   - s is square-free whenever every prime above trialLimit occurs at most
//     once or as an exact square cofactor. Otherwise s keeps a square factor;
//     callers only use the split to simplify presentation, so the identity
//     n = s·k² is the one guarantee relied upon.
//   - SquareFree(0) = (0, 1).
//
// Complexity: O(min(trialLimit, √|n|)) big-integer divisions.
func SquareFree(n *big.Int) (s, k *big.Int) {
	s, k = big.NewInt(1), big.NewInt(1)
	if n.Sign() == 0 {
		return new(big.Int), k
	}
	rest := new(big.Int).Abs(n)

	var (
		d    = new(big.Int)
		quo  = new(big.Int)
		rem  = new(big.Int)
		dd   = new(big.Int)
		step int64
	)
	for p := int64(2); p <= trialLimit; p += step {
		d.SetInt64(p)
		if dd.Mul(d, d).Cmp(rest) > 0 {
			break // rest is 1 or prime
		}
		e := 0
		for {
			quo.QuoRem(rest, d, rem)
			if rem.Sign() != 0 {
				break
			}
			rest.Set(quo)
			e++
		}
		for i := 0; i < e/2; i++ {
			k.Mul(k, d)
		}
		if e%2 == 1 {
			s.Mul(s, d)
		}
		if p == 2 {
			step = 1 // 2 -> 3
		} else {
			step = 2 // odd candidates only
		}
	}
	if rest.Cmp(big.NewInt(1)) > 0 {
		if r, ok := exactSqrt(rest); ok {
			k.Mul(k, r)
		} else {
			s.Mul(s, rest)
		}
	}
	if n.Sign() < 0 {
		s.Neg(s)
	}

	return s, k
}

// LargestSquareDivisor returns k such that k² divides n maximally in the
// SquareFree sense (n = s·k²).
func LargestSquareDivisor(n *big.Int) *big.Int {
	_, k := SquareFree(n)
	return k
}
