// SPDX-License-Identifier: MIT
// Package: awgwave/wave
//
// options.go - functional options shared by Wave, Waveform and QubitChannel.
//
// Derived values (arithmetic results, padded or concatenated waveforms,
// aligned channels) inherit the precision of the receiver, so an option is
// only needed where a value is first created.

package wave

import "github.com/katalvlaran/awgwave/axis"

// Option customizes a newly constructed value.
type Option func(*config)

type config struct {
	prec axis.Precision
}

func newConfig(opts ...Option) config {
	cfg := config{prec: axis.DefaultPrecision()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithPrecision sets the time rounding policy. Panics if p is not Valid.
func WithPrecision(p axis.Precision) Option {
	if !p.Valid() {
		panic("wave: WithPrecision(invalid precision)")
	}
	return func(c *config) {
		c.prec = p
	}
}
