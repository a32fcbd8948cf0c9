// SPDX-License-Identifier: MIT

// Package eigenspace: row solving, realization and verification.
package eigenspace

import (
	"fmt"

	"github.com/katalvlaran/eigenspace/field"
)

// Vector solves for the coordinates of a single vector whose inner products
// with the first len(targets) rows of ref are the cosines named by targets.
// Only pivots of ref are filled; no norm condition is imposed, so the result
// need not be a unit vector.
//
// Errors:
//   - ErrIndexShape when ref is nil, ref.Cols() != Dimension(), or targets
//     names more rows than ref has.
//   - ErrIndexOutOfRange for a bad table index.
//   - *VectorError with Cause ErrInconsistentTarget and Solving == -1.
//   - Arithmetic errors of the field, wrapped.
func (es *Eigenspace[E]) Vector(ref *Matrix[E], targets []int) ([]E, error) {
	if ref == nil {
		return nil, fmt.Errorf("eigenspace.%s: nil reference: %w", opVector, ErrIndexShape)
	}
	if ref.Cols() != es.dim {
		return nil, fmt.Errorf("eigenspace.%s: reference has %d columns, dimension is %d: %w",
			opVector, ref.Cols(), es.dim, ErrIndexShape)
	}
	if len(targets) > ref.Rows() {
		return nil, fmt.Errorf("eigenspace.%s: %d targets for %d reference rows: %w",
			opVector, len(targets), ref.Rows(), ErrIndexShape)
	}
	tv, err := es.lookup(targets)
	if err != nil {
		return nil, esErrorf(opVector, err)
	}
	v, _, err := es.solveRow(opVector, ref, tv, -1)

	return v, err
}

// Vectors realizes one unit vector per index row. Row i consumes the first i
// entries of index[i]: the cosines between vector i and vectors 0..i-1.
// Extra entries are ignored, so a full symmetric index also works.
//
// Implementation:
//   - Stage 1: validate the index (shape, then table range, lazily per row).
//   - Stage 2: solve row i against rows 0..i-1 (see solveRow).
//   - Stage 3: d = 1 - ‖v‖²; d < 0 fails, d > 0 takes a new pivot √d.
//
// Complexity: O(n²·dim) field operations.
func (es *Eigenspace[E]) Vectors(index [][]int) (*Matrix[E], error) {
	n := len(index)
	if n == 0 {
		return nil, fmt.Errorf("eigenspace.%s: no rows requested: %w", opVectors, ErrIndexShape)
	}
	for i, row := range index {
		if len(row) < i {
			return nil, fmt.Errorf("eigenspace.%s: index row %d has %d entries, want %d: %w",
				opVectors, i, len(row), i, ErrIndexShape)
		}
	}
	a, err := NewMatrix(es.f, n, es.dim)
	if err != nil {
		return nil, err
	}
	log := es.opts.logger

	for i := 0; i < n; i++ {
		targets, err := es.lookup(index[i][:i])
		if err != nil {
			return nil, fmt.Errorf("eigenspace.%s: row %d: %w", opVectors, i, err)
		}
		v, j, err := es.solveRow(opVectors, a, targets, i)
		if err != nil {
			return nil, err
		}
		for k := range v {
			a.set(i, k, v[k])
		}

		d, err := es.unitDefect(v[:j])
		if err != nil {
			return nil, fmt.Errorf("eigenspace.%s: row %d: %w", opVectors, i, err)
		}
		switch es.f.Sign(d) {
		case -1:
			return nil, es.vectorError(ErrNormExceedsUnit, a, i, j, i, d, v, targets)
		case 1:
			if j == es.dim {
				return nil, es.vectorError(ErrDimensionExhausted, a, i, j, i, d, v, targets)
			}
			root, err := es.f.Sqrt(d)
			if err != nil {
				return nil, fmt.Errorf("eigenspace.%s: row %d: pivot sqrt(%s): %w",
					opVectors, i, es.f.Format(d), err)
			}
			a.set(i, j, root)
			log.Debug().Int("row", i).Int("pivot", j).Str("value", es.f.Format(root)).Msg("new pivot")
		default:
			log.Debug().Int("row", i).Int("pivots", j).Msg("row in span of previous pivots")
		}
	}

	return a, nil
}

// solveRow performs the forward substitution shared by Vector and Vectors.
// Reference row k pivots at column j (pivots used so far) when a[k][j] != 0;
// otherwise its residual must vanish. Returns the vector and the number of
// pivots used.
func (es *Eigenspace[E]) solveRow(tag string, a *Matrix[E], targets []E, solving int) ([]E, int, error) {
	f := es.f
	v := make([]E, es.dim)
	for k := range v {
		v[k] = f.Zero()
	}

	j := 0
	for k, c := range targets {
		acc := c
		var err error
		for l := 0; l < j; l++ {
			if acc, err = f.Add(acc, f.Neg(f.Mul(a.at(k, l), v[l]))); err != nil {
				return nil, 0, fmt.Errorf("eigenspace.%s: row %d against row %d: %w", tag, solving, k, err)
			}
		}

		if j < es.dim && !f.IsZero(a.at(k, j)) {
			if v[j], err = field.Quo(f, acc, a.at(k, j)); err != nil {
				return nil, 0, fmt.Errorf("eigenspace.%s: row %d against row %d: %w", tag, solving, k, err)
			}
			j++
			continue
		}
		if !f.IsZero(acc) {
			return nil, 0, es.vectorError(ErrInconsistentTarget, a, k, j, solving, acc, v, targets)
		}
	}

	return v, j, nil
}

// unitDefect returns 1 - Σ v[k]².
func (es *Eigenspace[E]) unitDefect(v []E) (E, error) {
	f := es.f
	d := f.One()
	var err error
	for _, x := range v {
		if d, err = f.Add(d, f.Neg(f.Mul(x, x))); err != nil {
			return d, err
		}
	}

	return d, nil
}

// vectorError snapshots the failure state.
func (es *Eigenspace[E]) vectorError(cause error, a *Matrix[E], row, col, solving int, residual E, v, targets []E) *VectorError[E] {
	vc := make([]E, len(v))
	copy(vc, v)
	tc := make([]E, len(targets))
	copy(tc, targets)
	es.opts.logger.Debug().
		Err(cause).
		Int("row", row).
		Int("col", col).
		Int("solving", solving).
		Str("residual", es.f.Format(residual)).
		Msg("realization failed")

	return &VectorError[E]{
		Cause:    cause,
		Matrix:   a.Clone(),
		Row:      row,
		Col:      col,
		Solving:  solving,
		Residual: residual,
		Vector:   vc,
		Targets:  tc,
		residual: es.f.Format(residual),
	}
}

// Verify checks exactly that every row of m is a unit vector and that
// m[i]·m[j] equals the cosine index[i][j] for all j < i.
//
// Errors: ErrIndexShape (index too short), ErrIndexOutOfRange, ErrMismatch
// (wrapped with the offending pair and both values), arithmetic errors.
func (es *Eigenspace[E]) Verify(m *Matrix[E], index [][]int) error {
	if m == nil || len(index) < m.Rows() {
		return fmt.Errorf("eigenspace.%s: index does not cover the matrix: %w", opVerify, ErrIndexShape)
	}
	f := es.f
	for i := 0; i < m.Rows(); i++ {
		if len(index[i]) < i {
			return fmt.Errorf("eigenspace.%s: index row %d too short: %w", opVerify, i, ErrIndexShape)
		}
		norm, err := m.Dot(i, i)
		if err != nil {
			return esErrorf(opVerify, err)
		}
		if !f.IsOne(norm) {
			return fmt.Errorf("eigenspace.%s: |v%d|² = %s, want 1: %w", opVerify, i, f.Format(norm), ErrMismatch)
		}
		for j := 0; j < i; j++ {
			want, err := es.Cosine(index[i][j])
			if err != nil {
				return fmt.Errorf("eigenspace.%s: (%d,%d): %w", opVerify, i, j, err)
			}
			got, err := m.Dot(i, j)
			if err != nil {
				return esErrorf(opVerify, err)
			}
			if !f.Equal(got, want) {
				return fmt.Errorf("eigenspace.%s: v%d·v%d = %s, want %s: %w",
					opVerify, i, j, f.Format(got), f.Format(want), ErrMismatch)
			}
		}
	}

	return nil
}
