// SPDX-License-Identifier: MIT

// Package eigenspace: functional configuration.
//
// Design goals:
//   - Deterministic behavior: options never change the arithmetic or the
//     row order, only validation strictness and observability.
//   - No dead switches: each option is exercised by tests.
package eigenspace

import "github.com/rs/zerolog"

// DefaultStrictCosines leaves cosine range checks to the realization itself.
const DefaultStrictCosines = false

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options holds the resolved configuration of an Eigenspace.
type Options struct {
	logger        zerolog.Logger
	strictCosines bool
}

// WithLogger routes per-row debug events (pivots, residuals) to l.
// The default logger discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithStrictCosines rejects tables containing a cosine outside [-1, 1] at
// construction time (ErrCosineRange) instead of failing later in Vectors.
func WithStrictCosines() Option {
	return func(o *Options) { o.strictCosines = true }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		logger:        zerolog.Nop(),
		strictCosines: DefaultStrictCosines,
	}
}

// gatherOptions applies user options over the defaults, in order.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
