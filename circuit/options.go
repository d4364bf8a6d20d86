// SPDX-License-Identifier: MIT
// Package: awgwave/circuit
//
// options.go - functional options for Circuit.

package circuit

import (
	"github.com/katalvlaran/awgwave/axis"
	"github.com/rs/zerolog"
)

// Option customizes a Circuit at construction time.
type Option func(*config)

type config struct {
	log  zerolog.Logger
	prec axis.Precision
	name string
}

func newConfig(opts ...Option) config {
	cfg := config{
		log:  zerolog.Nop(),
		prec: axis.DefaultPrecision(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger routes compile diagnostics to log. The default discards them.
func WithLogger(log zerolog.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

// WithPrecision sets the rounding policy of the null channels Compile
// creates for empty cells. Panics if p is not Valid.
func WithPrecision(p axis.Precision) Option {
	if !p.Valid() {
		panic("circuit: WithPrecision(invalid precision)")
	}
	return func(c *config) {
		c.prec = p
	}
}

// WithName sets the circuit name used by store.Save.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}
