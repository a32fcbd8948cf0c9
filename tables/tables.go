// SPDX-License-Identifier: MIT
// Package: tables
//
// tables.go - the Table type, the Build orchestrator and cosine interning.

package tables

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/eigenspace/eigenspace"
)

// Table is a generated problem: a dimension, the distinct cosines, and one
// index row per vector (row i lists the cosines with vectors 0..i-1).
type Table struct {
	Name      string
	Dimension int
	Cosines   []*big.Rat
	Index     [][]int
}

// Vectors returns the number of vectors in the configuration.
func (t *Table) Vectors() int { return len(t.Index) }

// Cosine returns the cosine between vectors i and j (i != j).
func (t *Table) Cosine(i, j int) (*big.Rat, error) {
	if i < j {
		i, j = j, i
	}
	if j < 0 || i >= len(t.Index) || i == j {
		return nil, fmt.Errorf("tables: Cosine(%d,%d): %w", i, j, ErrConstructFailed)
	}

	return new(big.Rat).Set(t.Cosines[t.Index[i][j]]), nil
}

// Engine builds the Q(√r) realization engine for the table.
func (t *Table) Engine(opts ...eigenspace.Option) (*eigenspace.Rational, error) {
	return eigenspace.NewRational(t.Dimension, t.Cosines, opts...)
}

// Family generates a table from the resolved configuration.
type Family func(cfg config) (*Table, error)

// Build resolves opts and runs the family. Dimension and name overrides are
// applied after generation.
//
// Errors: ErrConstructFailed for a nil family; family errors wrapped as
// "Build: %w".
func Build(f Family, opts ...Option) (*Table, error) {
	if f == nil {
		return nil, fmt.Errorf("Build: nil family: %w", ErrConstructFailed)
	}
	cfg := newConfig(opts...)
	t, err := f(cfg)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	if cfg.dim > 0 {
		t.Dimension = cfg.dim
	}
	if cfg.name != "" {
		t.Name = cfg.name
	}

	return t, nil
}

// interner assigns table slots to distinct cosines in first-seen order.
type interner struct {
	slot    map[string]int
	cosines []*big.Rat
}

func newInterner() *interner {
	return &interner{slot: make(map[string]int)}
}

// id returns the slot of q, adding it on first use.
func (in *interner) id(q *big.Rat) int {
	key := q.RatString()
	if k, ok := in.slot[key]; ok {
		return k
	}
	k := len(in.cosines)
	in.slot[key] = k
	in.cosines = append(in.cosines, new(big.Rat).Set(q))

	return k
}

// pairTable fills index rows for n vectors from a pairwise cosine function.
func pairTable(name string, dim, n int, cos func(i, j int) *big.Rat) *Table {
	in := newInterner()
	idx := make([][]int, n)
	for i := 0; i < n; i++ {
		idx[i] = make([]int, i)
		for j := 0; j < i; j++ {
			idx[i][j] = in.id(cos(i, j))
		}
	}
	if len(in.cosines) == 0 {
		// a single vector still needs a non-empty table
		in.id(new(big.Rat))
	}

	return &Table{Name: name, Dimension: dim, Cosines: in.cosines, Index: idx}
}
