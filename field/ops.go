// SPDX-License-Identifier: MIT

// Package field - generic helpers composed from Field primitives.
package field

import (
	"math/big"
	"strings"
)

// Sub returns a-b.
func Sub[E any](f Field[E], a, b E) (E, error) {
	return f.Add(a, f.Neg(b))
}

// Quo returns a/b or ErrDivisionByZero.
func Quo[E any](f Field[E], a, b E) (E, error) {
	inv, err := f.Inv(b)
	if err != nil {
		var zero E
		return zero, err
	}

	return f.Mul(a, inv), nil
}

// Pow returns a^k by binary exponentiation; negative k inverts first.
// 0^0 is 1; 0^k for k < 0 fails with ErrDivisionByZero.
// Complexity: O(log|k|) multiplications.
func Pow[E any](f Field[E], a E, k int64) (E, error) {
	base := a
	if k < 0 {
		inv, err := f.Inv(a)
		if err != nil {
			var zero E
			return zero, err
		}
		base = inv
		k = -k
	}
	acc := f.One()
	for k > 0 {
		if k&1 == 1 {
			acc = f.Mul(acc, base)
		}
		k >>= 1
		if k > 0 {
			base = f.Mul(base, base)
		}
	}

	return acc, nil
}

// ParseRat parses "p", "p/q" or a decimal literal into an exact rational.
func ParseRat(s string) (*big.Rat, error) {
	q, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok {
		return nil, fieldErrorf("ParseRat("+s+")", ErrParse)
	}

	return q, nil
}

// MustRat is ParseRat for literals known to be valid; it panics otherwise.
func MustRat(s string) *big.Rat {
	q, err := ParseRat(s)
	if err != nil {
		panic(err)
	}

	return q
}
