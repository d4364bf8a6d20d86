// SPDX-License-Identifier: MIT
// Package: awgwave/store
//
// errors.go - sentinel errors for the store package.

package store

import "errors"

// ErrEmptyName indicates an object without a name and no Namer to ask.
var ErrEmptyName = errors.New("store: object has no name")

// ErrBadName indicates a name that cannot be used as a file name.
var ErrBadName = errors.New("store: invalid object name")

// ErrUnknownKind indicates a value or envelope kind the store cannot handle.
var ErrUnknownKind = errors.New("store: unknown object kind")

// ErrKindMismatch indicates a typed load of a file holding another kind.
var ErrKindMismatch = errors.New("store: object kind mismatch")

// ErrVersion indicates an envelope written by an unsupported format version.
var ErrVersion = errors.New("store: unsupported format version")

// ErrCorrupt indicates a payload that does not match its envelope.
var ErrCorrupt = errors.New("store: corrupt document")
