// SPDX-License-Identifier: MIT
// Package: awgwave/store
//
// options.go - functional options for Store.

package store

import "github.com/rs/zerolog"

// Namer supplies a name for an object saved without one.
type Namer func(kind Kind) (string, error)

// Option customizes a Store.
type Option func(*Store)

// WithNamer installs the fallback used for unnamed objects.
func WithNamer(n Namer) Option {
	return func(s *Store) {
		s.namer = n
	}
}

// WithLogger routes save and load diagnostics to log.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) {
		s.log = log
	}
}
