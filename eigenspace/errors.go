// SPDX-License-Identifier: MIT
// Package eigenspace: sentinel errors and the VectorError diagnostic.
//
// ERROR PRIORITY (documented, enforced in tests):
// construction (dimension/table) -> index shape/range -> arithmetic ->
// geometric causes (inconsistent target, norm > 1, dimension exhausted).

package eigenspace

import (
	"errors"
	"fmt"
)

var (
	// ErrBadDimension is returned for a non-positive dimension.
	ErrBadDimension = errors.New("eigenspace: dimension must be > 0")

	// ErrEmptyTable is returned when no cosines are given.
	ErrEmptyTable = errors.New("eigenspace: cosine table is empty")

	// ErrCosineRange is returned under WithStrictCosines for |cos| > 1.
	ErrCosineRange = errors.New("eigenspace: cosine outside [-1, 1]")

	// ErrIndexOutOfRange indicates an index into the cosine table is invalid.
	ErrIndexOutOfRange = errors.New("eigenspace: cosine index out of range")

	// ErrIndexShape indicates an index row is too short, or a reference matrix
	// does not match the dimension / number of targets.
	ErrIndexShape = errors.New("eigenspace: index shape mismatch")

	// ErrOutOfRange indicates a matrix coordinate is outside valid bounds.
	ErrOutOfRange = errors.New("eigenspace: index out of range")

	// ErrMismatch is returned by Verify when a realized inner product differs
	// from its target.
	ErrMismatch = errors.New("eigenspace: inner product differs from target")

	// ErrInconsistentTarget: a non-zero residual met a missing (or zero) pivot.
	ErrInconsistentTarget = errors.New("eigenspace: cannot obtain the specified inner products")

	// ErrNormExceedsUnit: the realized prefix already has norm larger than one.
	ErrNormExceedsUnit = errors.New("eigenspace: the norm of the obtained vector is larger than one")

	// ErrDimensionExhausted: a new direction is needed but no coordinate is left.
	ErrDimensionExhausted = errors.New("eigenspace: the norm of the obtained vector is smaller than one")
)

// Operation tags for uniform wrapping.
const (
	opNew     = "New"
	opVector  = "Vector"
	opVectors = "Vectors"
	opVerify  = "Verify"
	opDot     = "Dot"
	opRows    = "MatrixFromRows"
)

// esErrorf wraps err with an operation tag. Call only with a non-nil err.
func esErrorf(tag string, err error) error {
	return fmt.Errorf("eigenspace.%s: %w", tag, err)
}

// VectorError is the diagnostic returned when a row cannot be realized.
//
// Fields:
//   - Cause    - ErrInconsistentTarget, ErrNormExceedsUnit or ErrDimensionExhausted.
//   - Matrix   - copy of the coordinate matrix built so far.
//   - Row      - reference row exposing the contradiction (row solve), or the
//     row whose norm failed.
//   - Col      - pivot column at the time of failure.
//   - Solving  - row being realized; -1 for single-vector queries.
//   - Residual - the offending residual (target difference, or 1 - ‖v‖²).
//   - Vector   - the in-progress coordinate vector.
//   - Targets  - the inner products the vector was asked to match.
type VectorError[E any] struct {
	Cause    error
	Matrix   *Matrix[E]
	Row      int
	Col      int
	Solving  int
	Residual E
	Vector   []E
	Targets  []E

	residual string // Residual pre-rendered by the owning field
}

// Error implements error.
func (e *VectorError[E]) Error() string {
	return fmt.Sprintf("%v (row %d, col %d, residual %s)", e.Cause, e.Row, e.Col, e.residual)
}

// Unwrap exposes the sentinel cause to errors.Is.
func (e *VectorError[E]) Unwrap() error { return e.Cause }
