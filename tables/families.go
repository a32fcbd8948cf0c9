// SPDX-License-Identifier: MIT
// Package: tables
//
// families.go - the built-in configuration families.
//
// Contract:
//   • Sizes are validated first (ErrTooFewVectors / ErrTooLarge).
//   • Vector order is fixed and documented per family.
//   • The natural dimension is the rank of the Gram matrix, so every family
//     realizes without error unless WithDimension lowers it.

package tables

import (
	"fmt"
	"math/big"
	"math/bits"
	"strings"
)

// Family tags used in error context.
const (
	familySimplex       = "Simplex"
	familyCrossPolytope = "CrossPolytope"
	familyHypercube     = "Hypercube"
	familyEquiangular   = "Equiangular"
	familyOrthonormal   = "Orthonormal"
	familyPlatonic      = "Platonic"
)

// MaxHypercubeDim bounds Hypercube(d): 2^d vectors and 4^d/2 pairs.
const MaxHypercubeDim = 8

// Simplex returns the n vertices of the regular simplex centred at the
// origin: pairwise cosine -1/(n-1), natural dimension n-1. Requires n >= 2.
func Simplex(n int) Family {
	return func(cfg config) (*Table, error) {
		if n < 2 {
			return nil, tablesErrorf(familySimplex, fmt.Sprintf("n=%d < 2", n), ErrTooFewVectors)
		}
		c := big.NewRat(-1, int64(n-1))

		return pairTable(fmt.Sprintf("simplex-%d", n), n-1, n, func(int, int) *big.Rat { return c }), nil
	}
}

// CrossPolytope returns ±e_1, ..., ±e_d in the order +e_1, -e_1, +e_2, ...
// Antipodal pairs have cosine -1, all others 0. Requires d >= 1.
func CrossPolytope(d int) Family {
	return func(cfg config) (*Table, error) {
		if d < 1 {
			return nil, tablesErrorf(familyCrossPolytope, fmt.Sprintf("d=%d < 1", d), ErrTooFewVectors)
		}
		zero, minusOne := new(big.Rat), big.NewRat(-1, 1)
		cos := func(i, j int) *big.Rat {
			if i/2 == j/2 {
				return minusOne
			}
			return zero
		}

		return pairTable(fmt.Sprintf("cross-polytope-%d", d), d, 2*d, cos), nil
	}
}

// Hypercube returns the 2^d vertices (±1, ..., ±1)/√d; vertex k has a minus
// sign in coordinate b when bit b of k is set. Vertices at Hamming distance h
// have cosine (d-2h)/d. Requires 1 <= d <= MaxHypercubeDim.
func Hypercube(d int) Family {
	return func(cfg config) (*Table, error) {
		if d < 1 {
			return nil, tablesErrorf(familyHypercube, fmt.Sprintf("d=%d < 1", d), ErrTooFewVectors)
		}
		if d > MaxHypercubeDim {
			return nil, tablesErrorf(familyHypercube, fmt.Sprintf("d=%d > %d", d, MaxHypercubeDim), ErrTooLarge)
		}
		byDistance := make([]*big.Rat, d+1)
		for h := range byDistance {
			byDistance[h] = big.NewRat(int64(d-2*h), int64(d))
		}
		cos := func(i, j int) *big.Rat { return byDistance[bits.OnesCount(uint(i^j))] }

		return pairTable(fmt.Sprintf("hypercube-%d", d), d, 1<<d, cos), nil
	}
}

// Equiangular returns n unit vectors pairwise at cosine c. The natural
// dimension is the Gram rank: 1 for c = 1, n-1 for c = -1/(n-1), else n.
// Tables with c < -1/(n-1) are generated but have no realization.
// Requires n >= 2 and -1 <= c <= 1.
func Equiangular(n int, c *big.Rat) Family {
	return func(cfg config) (*Table, error) {
		if n < 2 {
			return nil, tablesErrorf(familyEquiangular, fmt.Sprintf("n=%d < 2", n), ErrTooFewVectors)
		}
		if c == nil || c.Cmp(big.NewRat(1, 1)) > 0 || c.Cmp(big.NewRat(-1, 1)) < 0 {
			return nil, tablesErrorf(familyEquiangular, fmt.Sprintf("c=%v", c), ErrCosineRange)
		}
		dim := n
		switch {
		case c.Cmp(big.NewRat(1, 1)) == 0:
			dim = 1
		case c.Cmp(big.NewRat(-1, int64(n-1))) == 0:
			dim = n - 1
		}
		cc := new(big.Rat).Set(c)

		return pairTable(fmt.Sprintf("equiangular-%d", n), dim, n, func(int, int) *big.Rat { return cc }), nil
	}
}

// Orthonormal returns the standard basis e_1, ..., e_n. Requires n >= 1.
func Orthonormal(n int) Family {
	return func(cfg config) (*Table, error) {
		if n < 1 {
			return nil, tablesErrorf(familyOrthonormal, fmt.Sprintf("n=%d < 1", n), ErrTooFewVectors)
		}
		zero := new(big.Rat)

		return pairTable(fmt.Sprintf("orthonormal-%d", n), n, n, func(int, int) *big.Rat { return zero }), nil
	}
}

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

// Enum values (stable ordering).
const (
	Tetrahedron  PlatonicName = iota // V=4
	Cube                             // V=8
	Octahedron                       // V=6
	Dodecahedron                     // V=20, cosines involve √5
	Icosahedron                      // V=12, cosines ±1/√5
)

// String returns the lower-case solid name.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "tetrahedron"
	case Cube:
		return "cube"
	case Octahedron:
		return "octahedron"
	case Dodecahedron:
		return "dodecahedron"
	case Icosahedron:
		return "icosahedron"
	default:
		return "unknown"
	}
}

// ParsePlatonic maps a case-insensitive name to a PlatonicName.
func ParsePlatonic(s string) (PlatonicName, error) {
	for p := Tetrahedron; p <= Icosahedron; p++ {
		if strings.EqualFold(s, p.String()) {
			return p, nil
		}
	}

	return 0, tablesErrorf(familyPlatonic, fmt.Sprintf("name %q", s), ErrUnsupportedSolid)
}

// Platonic returns the vertex directions of a Platonic solid. Only the solids
// with rational vertex cosines are supported: the tetrahedron (Simplex(4)),
// the cube (Hypercube(3)) and the octahedron (CrossPolytope(3)).
func Platonic(name PlatonicName) Family {
	return func(cfg config) (*Table, error) {
		var f Family
		switch name {
		case Tetrahedron:
			f = Simplex(4)
		case Cube:
			f = Hypercube(3)
		case Octahedron:
			f = CrossPolytope(3)
		default:
			return nil, tablesErrorf(familyPlatonic, name.String()+" has irrational vertex cosines", ErrUnsupportedSolid)
		}
		t, err := f(cfg)
		if err != nil {
			return nil, err
		}
		t.Name = name.String()

		return t, nil
	}
}

// Named resolves the size-parameterized families by name: "simplex",
// "cross-polytope", "hypercube", "orthonormal", and the supported Platonic
// solids (n is ignored for those).
func Named(name string, n int) (Family, error) {
	switch strings.ToLower(name) {
	case "simplex":
		return Simplex(n), nil
	case "cross-polytope", "cross":
		return CrossPolytope(n), nil
	case "hypercube", "cube-d":
		return Hypercube(n), nil
	case "orthonormal":
		return Orthonormal(n), nil
	}
	if p, err := ParsePlatonic(name); err == nil {
		return Platonic(p), nil
	}

	return nil, fmt.Errorf("Named(%q): %w", name, ErrUnknownFamily)
}
