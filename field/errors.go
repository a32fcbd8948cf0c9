// SPDX-License-Identifier: MIT
// Package field: sentinel error set.
// All helpers return these sentinels (optionally wrapped via fieldErrorf) and
// tests match them with errors.Is.

package field

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned by Inv/Quo/Pow when the divisor is zero.
	ErrDivisionByZero = errors.New("field: division by zero")

	// ErrNotSquare is returned by Sqrt when the argument has no root in the field.
	ErrNotSquare = errors.New("field: element is not a perfect square")

	// ErrNegativeRoot is returned by Sqrt for negative arguments.
	ErrNegativeRoot = errors.New("field: square root of a negative element")

	// ErrParse indicates a textual element could not be parsed.
	ErrParse = errors.New("field: cannot parse element")
)

// fieldErrorf wraps err with an operation tag, keeping errors.Is intact.
// Call only with a non-nil err.
func fieldErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
