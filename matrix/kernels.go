// SPDX-License-Identifier: MIT
// Package matrix - the small set of kernels behind approximate Gram views.
//
// Determinism & Policy:
//   - Fixed loop orders (i→k→j for Mul) so results are bit-reproducible.
//   - *Dense operands take a flat-slice fast path; other Matrix values fall
//     back to At/Set with identical semantics.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial accumulator value of the fallback loops.
const ZeroSum = 0.0

// validateNotNil returns ErrNilMatrix for a nil Matrix.
func validateNotNil(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return ErrNilMatrix
	}

	return nil
}

// Mul returns the matrix product a × b.
//
// Implementation:
//   - Stage 1: validate non-nil operands and a.Cols == b.Rows.
//   - Stage 2: Dense fast path (i→k→j over flat slices, zero skip).
//   - Stage 3: generic fallback through At/Set.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with opMul).
// Complexity: O(r·n·c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := validateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := validateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int // loop iterators
		av, bv, current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}
			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv // accumulate product
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Errors: ErrNilMatrix.
// Complexity: O(r·c).
func Transpose(m Matrix) (Matrix, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	if d, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				res.data[j*rows+i] = d.data[i*cols+j]
			}
		}
		return res, nil
	}
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
		}
	}

	return res, nil
}

// Gram returns m·mᵀ, the matrix of pairwise row inner products.
// Complexity: O(r²·c).
func Gram(m Matrix) (Matrix, error) {
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf(opGram, err)
	}
	g, err := Mul(m, mt)
	if err != nil {
		return nil, matrixErrorf(opGram, err)
	}

	return g, nil
}

// MaxAbsDiff returns max |a[i,j] - b[i,j]| over identically shaped matrices.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func MaxAbsDiff(a, b Matrix) (float64, error) {
	if err := validateNotNil(a); err != nil {
		return 0, matrixErrorf(opAllClose, err)
	}
	if err := validateNotNil(b); err != nil {
		return 0, matrixErrorf(opAllClose, err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return 0, matrixErrorf(opAllClose, ErrDimensionMismatch)
	}
	worst := 0.0
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, _ := a.At(i, j) // indices are in range by construction
			bv, _ := b.At(i, j)
			worst = math.Max(worst, math.Abs(av-bv))
		}
	}

	return worst, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Negative tolerances are normalized; NaN/Inf tolerances are rejected.
// Errors: ErrNaNInf, ErrNilMatrix, ErrDimensionMismatch.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := validateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := validateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, matrixErrorf(opAllClose, ErrDimensionMismatch)
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, _ := a.At(i, j)
			bv, _ := b.At(i, j)
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil // early-exit on first violation
			}
		}
	}

	return true, nil
}
