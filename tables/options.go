// SPDX-License-Identifier: MIT
// Package: tables
//
// options.go - functional options and the resolved configuration.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Later options override earlier ones.
//   • Defaults: the family's natural dimension and name.

package tables

// Option customizes a Build call.
type Option func(*config)

// config is passed by value to families.
type config struct {
	dim  int    // 0 keeps the family's natural dimension
	name string // "" keeps the family's name
}

// WithDimension overrides the ambient dimension of the generated problem,
// e.g. to ask for a realization in fewer dimensions than the family spans.
// Panics if d <= 0.
func WithDimension(d int) Option {
	if d <= 0 {
		panic("tables: WithDimension(d<=0)")
	}
	return func(c *config) { c.dim = d }
}

// WithName overrides the problem name.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// newConfig applies opts in order over the defaults.
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
