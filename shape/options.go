// SPDX-License-Identifier: MIT
// Package: awgwave/shape
//
// options.go - functional options for Catalog.
//
// Contract:
//   - Options are functional (type Option func(*catalogConfig)).
//   - Option constructors validate and panic on meaningless inputs.
//     Generation itself never panics.
//   - newCatalogConfig applies options in order; later ones override earlier.

package shape

import "github.com/katalvlaran/awgwave/axis"

// DefaultSampleRate is used by Generate when a descriptor leaves
// SampleRate at zero: 1 GS/s, the common AWG rate.
const DefaultSampleRate = 1e9

// Option customizes a Catalog at construction time.
type Option func(*catalogConfig)

// catalogConfig holds the resolved knobs of a Catalog.
type catalogConfig struct {
	prec     axis.Precision
	rate     float64 // default sample rate, > 0
	builtins bool    // register the built-in shapes
}

// newCatalogConfig returns deterministic defaults with opts applied.
func newCatalogConfig(opts ...Option) catalogConfig {
	cfg := catalogConfig{
		prec:     axis.DefaultPrecision(),
		rate:     DefaultSampleRate,
		builtins: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithPrecision sets the rounding policy applied to generated time axes.
// Panics if p is not Valid.
func WithPrecision(p axis.Precision) Option {
	if !p.Valid() {
		panic("shape: WithPrecision(invalid precision)")
	}
	return func(c *catalogConfig) {
		c.prec = p
	}
}

// WithDefaultSampleRate overrides DefaultSampleRate for descriptors that
// omit a rate. Panics if rate <= 0.
func WithDefaultSampleRate(rate float64) Option {
	if !(rate > 0) {
		panic("shape: WithDefaultSampleRate(rate<=0)")
	}
	return func(c *catalogConfig) {
		c.rate = rate
	}
}

// WithoutBuiltins creates an empty catalog; only Register-ed shapes exist.
func WithoutBuiltins() Option {
	return func(c *catalogConfig) {
		c.builtins = false
	}
}
