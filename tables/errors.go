// SPDX-License-Identifier: MIT
// Package: tables
//
// errors.go - sentinel errors for the tables package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Context is attached with %w at the call site (tablesErrorf).
//   • Families never panic; validation panics are confined to option
//     constructors (WithX...).

package tables

import (
	"errors"
	"fmt"
)

// ErrTooFewVectors indicates a size parameter below the family minimum.
var ErrTooFewVectors = errors.New("tables: parameter too small")

// ErrTooLarge indicates a size parameter above the supported maximum.
var ErrTooLarge = errors.New("tables: parameter too large")

// ErrCosineRange indicates a requested cosine outside [-1, 1].
var ErrCosineRange = errors.New("tables: cosine outside [-1, 1]")

// ErrUnsupportedSolid indicates a Platonic solid whose vertex cosines are
// irrational, or an unknown solid name.
var ErrUnsupportedSolid = errors.New("tables: unsupported solid")

// ErrUnknownFamily indicates an unknown family name in Lookup.
var ErrUnknownFamily = errors.New("tables: unknown family")

// ErrConstructFailed indicates a nil family or an internally inconsistent table.
var ErrConstructFailed = errors.New("tables: construction failed")

// tablesErrorf wraps err with the family tag: "<Family>: <msg>: <err>".
func tablesErrorf(family, msg string, err error) error {
	return fmt.Errorf("%s: %s: %w", family, msg, err)
}
