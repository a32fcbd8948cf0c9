// SPDX-License-Identifier: MIT

// Package sqrtext implements the single-radical ("incomplete square-root")
// extension of an exact ordered base field: numbers of the form
//
//	m · √r      m, r ∈ B,  r ≥ 0,  r never a non-zero perfect square of B
//
// The extension is closed under multiplication, negation and inversion, but
// only partially closed under addition: two values can be added when their
// radicands differ by a square factor of B (√8 + √2 = 3√2). The sum of two
// genuinely independent radicals (√2 + √3) has no representation here and
// Add reports ErrIncompatibleRadical. This is exactly enough for the on-line
// Cholesky realization in package eigenspace, where every new pivot
// introduces one fresh radical.
//
// ✨ Key features:
//   - exact total order through the signed square sign(m)·m²·r ∈ B
//   - restricted powers (integer, and half-integer on rational values) and
//     square roots of rational values
//   - write-once canonical form (m', r', d) with integral m', square-free r'
//     and positive d, memoized in an atomic pointer (no locks, idempotent)
//   - explicit approximation (Approx) kept apart from every exact decision
//
// ⚙️ Usage:
//
//	ext := sqrtext.New[*big.Rat](field.Q)
//	x, _ := ext.Element(big.NewRat(1, 2), big.NewRat(3, 1)) // √3/2
//	y, _ := x.Mul(x)                                       // 3/4
//	fmt.Println(x, y)                                      // 1/2 * sqrt(3) 3/4
//
// Concurrency: values are immutable; they may be shared across goroutines.
package sqrtext
