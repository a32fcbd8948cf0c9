// SPDX-License-Identifier: MIT

// Package problem loads Gram realization problems from YAML files.
//
// A problem names the ambient dimension, the cosine table as exact rational
// literals, and optionally the index rows mapping vector pairs to cosines:
//
//	name: triangle
//	dimension: 2
//	cosines: ["1/2", "-1/2", "1/2"]
//	# vectors: 3          (inferred from the table when index is absent)
//	# index: [[], [0], [1, 2]]
package problem

import (
	"errors"
	"fmt"
	"math/big"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/eigenspace/eigenspace"
	"github.com/katalvlaran/eigenspace/field"
)

// ErrInvalidProblem marks every validation failure of a problem file.
var ErrInvalidProblem = errors.New("problem: invalid problem")

// Problem is the decoded problem file.
type Problem struct {
	Name      string   `yaml:"name"`
	Dimension int      `yaml:"dimension"`
	Vectors   int      `yaml:"vectors"` // number of vectors; 0 infers it
	Cosines   []string `yaml:"cosines"` // exact rationals, e.g. "-1/3"
	IndexRows [][]int  `yaml:"index"`   // row i lists the cosines with vectors 0..i-1
	Strict    bool     `yaml:"strict"`  // reject |cos| > 1 up front

	rats []*big.Rat
}

// Load reads, parses and validates a problem file.
func Load(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read problem file: %w", err)
	}

	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// Parse decodes and validates a problem from YAML bytes.
func Parse(data []byte) (*Problem, error) {
	var p Problem
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse problem file: %w", err)
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid problem file: %w", err)
	}

	return &p, nil
}

// Validate checks the problem and caches the parsed cosines.
func (p *Problem) Validate() error {
	if p.Dimension <= 0 {
		return fmt.Errorf("dimension must be positive, got %d: %w", p.Dimension, ErrInvalidProblem)
	}
	if len(p.Cosines) == 0 {
		return fmt.Errorf("cosines cannot be empty: %w", ErrInvalidProblem)
	}
	if p.Vectors < 0 {
		return fmt.Errorf("vectors cannot be negative, got %d: %w", p.Vectors, ErrInvalidProblem)
	}

	rats := make([]*big.Rat, len(p.Cosines))
	for k, s := range p.Cosines {
		q, err := field.ParseRat(s)
		if err != nil {
			return fmt.Errorf("cosine %d: %v: %w", k, err, ErrInvalidProblem)
		}
		rats[k] = q
	}

	if len(p.IndexRows) == 0 {
		if p.Vectors == 0 {
			n, ok := pairsToVectors(len(p.Cosines))
			if !ok {
				return fmt.Errorf("%d cosines do not form a pair table; set vectors or index: %w",
					len(p.Cosines), ErrInvalidProblem)
			}
			p.Vectors = n
		}
		if eigenspace.PairCount(p.Vectors) > len(p.Cosines) {
			return fmt.Errorf("%d vectors need %d cosines, got %d: %w",
				p.Vectors, eigenspace.PairCount(p.Vectors), len(p.Cosines), ErrInvalidProblem)
		}
	} else {
		if p.Vectors == 0 {
			p.Vectors = len(p.IndexRows)
		}
		if p.Vectors > len(p.IndexRows) {
			return fmt.Errorf("vectors (%d) exceeds index rows (%d): %w",
				p.Vectors, len(p.IndexRows), ErrInvalidProblem)
		}
		for i, row := range p.IndexRows[:p.Vectors] {
			if len(row) < i {
				return fmt.Errorf("index row %d has %d entries, want %d: %w", i, len(row), i, ErrInvalidProblem)
			}
			for j, k := range row[:i] {
				if k < 0 || k >= len(p.Cosines) {
					return fmt.Errorf("index[%d][%d] = %d out of range [0,%d): %w",
						i, j, k, len(p.Cosines), ErrInvalidProblem)
				}
			}
		}
	}
	p.rats = rats

	return nil
}

// Rats returns the cosines as fresh rationals. Validate must have succeeded.
func (p *Problem) Rats() []*big.Rat {
	out := make([]*big.Rat, len(p.rats))
	for k, q := range p.rats {
		out[k] = new(big.Rat).Set(q)
	}

	return out
}

// Index returns the index rows for the first Vectors vectors.
func (p *Problem) Index() [][]int {
	if len(p.IndexRows) == 0 {
		return eigenspace.PairIndex(p.Vectors)
	}
	out := make([][]int, p.Vectors)
	for i := range out {
		out[i] = make([]int, len(p.IndexRows[i]))
		copy(out[i], p.IndexRows[i])
	}

	return out
}

// Engine builds the Q(√r) engine for the problem.
func (p *Problem) Engine(opts ...eigenspace.Option) (*eigenspace.Rational, error) {
	if p.Strict {
		opts = append(opts, eigenspace.WithStrictCosines())
	}

	return eigenspace.NewRational(p.Dimension, p.Rats(), opts...)
}

// pairsToVectors inverts n(n-1)/2.
func pairsToVectors(pairs int) (int, bool) {
	n := 1
	for eigenspace.PairCount(n) < pairs {
		n++
	}

	return n, eigenspace.PairCount(n) == pairs
}
