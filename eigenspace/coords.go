// SPDX-License-Identifier: MIT

// Package eigenspace: the exact coordinate matrix.
package eigenspace

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/eigenspace/field"
	"github.com/katalvlaran/eigenspace/matrix"
)

// Matrix is a rows×cols matrix of exact field elements, stored row-major.
// Row i holds the coordinates of vector i. Values returned by accessors are
// shared immutable field elements; slices are fresh copies.
type Matrix[E any] struct {
	f    field.Field[E]
	r, c int
	data []E
}

// NewMatrix returns a rows×cols zero matrix over f.
func NewMatrix[E any](f field.Field[E], rows, cols int) (*Matrix[E], error) {
	if rows < 0 || cols <= 0 {
		return nil, fmt.Errorf("eigenspace.NewMatrix(%d,%d): %w", rows, cols, ErrBadDimension)
	}
	m := &Matrix[E]{f: f, r: rows, c: cols, data: make([]E, rows*cols)}
	for i := range m.data {
		m.data[i] = f.Zero()
	}

	return m, nil
}

// MatrixFromRows builds a matrix from equal-length rows (deep copy of the
// outer slices). Use it to supply reference vectors to Eigenspace.Vector.
func MatrixFromRows[E any](f field.Field[E], rows [][]E) (*Matrix[E], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, esErrorf(opRows, ErrBadDimension)
	}
	m, err := NewMatrix(f, len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, fmt.Errorf("eigenspace.%s: row %d has %d entries, want %d: %w",
				opRows, i, len(row), m.c, ErrIndexShape)
		}
		copy(m.data[i*m.c:(i+1)*m.c], row)
	}

	return m, nil
}

// Rows returns the number of vectors.
func (m *Matrix[E]) Rows() int { return m.r }

// Cols returns the ambient dimension.
func (m *Matrix[E]) Cols() int { return m.c }

// Field returns the element field.
func (m *Matrix[E]) Field() field.Field[E] { return m.f }

// At returns the element at (i, j).
func (m *Matrix[E]) At(i, j int) (E, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		var zero E
		return zero, fmt.Errorf("eigenspace.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return m.data[i*m.c+j], nil
}

// at is the unchecked accessor for in-package loops.
func (m *Matrix[E]) at(i, j int) E { return m.data[i*m.c+j] }

// set is the unchecked writer for in-package loops.
func (m *Matrix[E]) set(i, j int, v E) { m.data[i*m.c+j] = v }

// Row returns a copy of row i, or nil when i is out of range.
func (m *Matrix[E]) Row(i int) []E {
	if i < 0 || i >= m.r {
		return nil
	}
	out := make([]E, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out
}

// Head returns a copy of the first k rows. Fewer rows are returned when the
// matrix is shorter.
func (m *Matrix[E]) Head(k int) *Matrix[E] {
	if k > m.r {
		k = m.r
	}
	if k < 0 {
		k = 0
	}
	out := &Matrix[E]{f: m.f, r: k, c: m.c, data: make([]E, k*m.c)}
	copy(out.data, m.data[:k*m.c])

	return out
}

// Clone returns a copy of m. Elements are shared; they are immutable.
func (m *Matrix[E]) Clone() *Matrix[E] { return m.Head(m.r) }

// Dot returns the exact inner product of rows i and j.
func (m *Matrix[E]) Dot(i, j int) (E, error) {
	var zero E
	if i < 0 || i >= m.r || j < 0 || j >= m.r {
		return zero, fmt.Errorf("eigenspace.%s(%d,%d): %w", opDot, i, j, ErrOutOfRange)
	}
	acc := m.f.Zero()
	var err error
	for k := 0; k < m.c; k++ {
		if acc, err = m.f.Add(acc, m.f.Mul(m.at(i, k), m.at(j, k))); err != nil {
			return zero, fmt.Errorf("eigenspace.%s(%d,%d): %w", opDot, i, j, err)
		}
	}

	return acc, nil
}

// Gram returns the exact rows×rows matrix of pairwise inner products.
// Symmetric entries are computed once.
func (m *Matrix[E]) Gram() ([][]E, error) {
	g := make([][]E, m.r)
	for i := range g {
		g[i] = make([]E, m.r)
	}
	for i := 0; i < m.r; i++ {
		for j := 0; j <= i; j++ {
			v, err := m.Dot(i, j)
			if err != nil {
				return nil, err
			}
			g[i][j], g[j][i] = v, v
		}
	}

	return g, nil
}

// Approx converts m to a float64 Dense via prec-bit intermediate rounding.
// The result is for display and numerical cross-checks only.
func (m *Matrix[E]) Approx(prec uint) (*matrix.Dense, error) {
	d, err := matrix.NewDense(m.r, m.c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			x, _ := m.f.Approx(m.at(i, j), prec).Float64()
			if err = d.Set(i, j, x); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}

// String renders one bracketed row per line using the field's formatting.
func (m *Matrix[E]) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(m.f.Format(m.at(i, j)))
		}
		sb.WriteByte(']')
		if i+1 < m.r {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
