// SPDX-License-Identifier: MIT

// Package eigenspace: engine construction and accessors.
package eigenspace

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/eigenspace/field"
	"github.com/katalvlaran/eigenspace/sqrtext"
)

// Eigenspace holds a target dimension, a cosine table and the field in which
// all coordinates are computed. It is immutable after construction.
type Eigenspace[E any] struct {
	dim     int
	cosines []E
	f       field.Field[E]
	opts    Options
}

// Rational is the engine over Q(√r), the usual instantiation.
type Rational = Eigenspace[*sqrtext.Value[*big.Rat]]

// New builds an engine whose coordinates live directly in f. No square-root
// extension is added: realizations needing irrational pivots fail unless f
// already supports them.
//
// Errors: ErrBadDimension (dim <= 0), ErrEmptyTable, ErrCosineRange (only
// with WithStrictCosines).
func New[E any](dim int, cosines []E, f field.Field[E], opts ...Option) (*Eigenspace[E], error) {
	if dim <= 0 {
		return nil, fmt.Errorf("eigenspace.%s(dim=%d): %w", opNew, dim, ErrBadDimension)
	}
	if len(cosines) == 0 {
		return nil, esErrorf(opNew, ErrEmptyTable)
	}
	o := gatherOptions(opts...)
	if o.strictCosines {
		one := f.One()
		for k, c := range cosines {
			if f.Cmp(c, one) > 0 || f.Cmp(f.Neg(c), one) > 0 {
				return nil, fmt.Errorf("eigenspace.%s: cosine %d = %s: %w",
					opNew, k, f.Format(c), ErrCosineRange)
			}
		}
	}
	table := make([]E, len(cosines))
	copy(table, cosines)

	return &Eigenspace[E]{dim: dim, cosines: table, f: f, opts: o}, nil
}

// NewExtended converts the cosines into the single-radical extension of base
// and builds the engine there. This is the default way to realize tables
// whose Gram factorization needs square roots.
func NewExtended[B any](dim int, cosines []B, base field.Base[B], opts ...Option) (*Eigenspace[*sqrtext.Value[B]], error) {
	ext := sqrtext.New(base)
	vals := make([]*sqrtext.Value[B], len(cosines))
	for k, c := range cosines {
		vals[k] = ext.FromBase(c)
	}

	return New[*sqrtext.Value[B]](dim, vals, ext, opts...)
}

// NewRational is NewExtended over Q.
func NewRational(dim int, cosines []*big.Rat, opts ...Option) (*Rational, error) {
	return NewExtended[*big.Rat](dim, cosines, field.Q, opts...)
}

// Dimension returns the ambient dimension.
func (es *Eigenspace[E]) Dimension() int { return es.dim }

// Field returns the coordinate field.
func (es *Eigenspace[E]) Field() field.Field[E] { return es.f }

// Len returns the number of cosines in the table.
func (es *Eigenspace[E]) Len() int { return len(es.cosines) }

// Cosine returns table entry k.
func (es *Eigenspace[E]) Cosine(k int) (E, error) {
	if k < 0 || k >= len(es.cosines) {
		var zero E
		return zero, fmt.Errorf("eigenspace.Cosine(%d): %w", k, ErrIndexOutOfRange)
	}

	return es.cosines[k], nil
}

// lookup maps table indices to cosines.
func (es *Eigenspace[E]) lookup(idx []int) ([]E, error) {
	out := make([]E, len(idx))
	for k, t := range idx {
		c, err := es.Cosine(t)
		if err != nil {
			return nil, err
		}
		out[k] = c
	}

	return out, nil
}

// PairCount returns n(n-1)/2, the table length PairIndex(n) expects.
func PairCount(n int) int {
	if n < 2 {
		return 0
	}

	return n * (n - 1) / 2
}

// PairIndex returns index rows for a cosine table listing the strictly lower
// triangle in row-major order: (1,0), (2,0), (2,1), (3,0), ...
// Row i has exactly i entries; row 0 is empty.
func PairIndex(n int) [][]int {
	if n <= 0 {
		return nil
	}
	idx := make([][]int, n)
	next := 0
	for i := 0; i < n; i++ {
		idx[i] = make([]int, i)
		for j := 0; j < i; j++ {
			idx[i][j] = next
			next++
		}
	}

	return idx
}
