// SPDX-License-Identifier: MIT
// Package sqrtext: sentinel errors of the single-radical extension.
// Division by zero and negative roots reuse the field sentinels so callers can
// match them uniformly with errors.Is across base and extension.

package sqrtext

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompatibleRadical is returned by Add when the ratio of the two
	// radicands is not a perfect square of the base field.
	ErrIncompatibleRadical = errors.New("sqrtext: radicands are not compatible")

	// ErrUnsupportedPower is returned by Pow for exponents outside the
	// single-radical closure (denominator other than 1 or 2, or a half-integer
	// exponent on a value that is not rational).
	ErrUnsupportedPower = errors.New("sqrtext: unsupported exponent")

	// ErrUnsupportedRoot is returned by Sqrt when the value is not rational.
	ErrUnsupportedRoot = errors.New("sqrtext: unsupported square root")

	// ErrNegativeRadicand is returned by Element/Combine for r < 0.
	ErrNegativeRadicand = errors.New("sqrtext: negative radicand")

	// ErrNotRational is returned by ToBase when the value carries a radical.
	ErrNotRational = errors.New("sqrtext: value is not in the base field")
)

// Operation tags for uniform wrapping.
const (
	opCombine = "Combine"
	opAdd     = "Add"
	opInv     = "Inv"
	opPow     = "Pow"
	opSqrt    = "Sqrt"
	opToBase  = "ToBase"
)

// extErrorf wraps err with an operation tag. Call only with a non-nil err.
func extErrorf(tag string, err error) error {
	return fmt.Errorf("sqrtext.%s: %w", tag, err)
}
