// SPDX-License-Identifier: MIT
// Package: awgwave/circuit
//
// errors.go - sentinel errors for gates and circuits.
//
// Error policy:
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Compile failures wrap ErrCompile together with the underlying cause,
//     so both errors.Is(err, ErrCompile) and errors.Is(err, cause) hold.

package circuit

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange indicates a row, slot or channel index outside the
// diagram.
var ErrIndexOutOfRange = errors.New("circuit: index out of range")

// ErrUnknownChannel indicates a channel name the circuit or gate does not
// know.
var ErrUnknownChannel = errors.New("circuit: unknown channel")

// ErrDuplicateName indicates a channel name used more than once in a
// circuit layout.
var ErrDuplicateName = errors.New("circuit: duplicate channel name")

// ErrDuplicateIndex indicates two channel names mapped to the same row.
var ErrDuplicateIndex = errors.New("circuit: duplicate channel index")

// ErrBadSize indicates a diagram without rows or time slots.
var ErrBadSize = errors.New("circuit: diagram needs at least one row and one slot")

// ErrNilChannel indicates a nil QubitChannel or Gate argument.
var ErrNilChannel = errors.New("circuit: nil channel")

// ErrUnassignedChannel indicates a row without any assigned cell at compile
// time.
var ErrUnassignedChannel = errors.New("circuit: unassigned channel")

// ErrCompile indicates a failure while aligning or concatenating cells.
var ErrCompile = errors.New("circuit: compile failed")

// ErrNotCompiled indicates a query for compiled output before a successful
// Compile.
var ErrNotCompiled = errors.New("circuit: not compiled")

// ErrNoChannels indicates a gate built without channels.
var ErrNoChannels = errors.New("circuit: gate has no channels")

// ErrUnnamedChannel indicates a gate or circuit channel with an empty name.
var ErrUnnamedChannel = errors.New("circuit: channel has no name")

// ErrDuplicateChannel indicates two gate channels with the same name.
var ErrDuplicateChannel = errors.New("circuit: duplicate gate channel")

// circuitErrorf wraps err with the method name and formatted context.
func circuitErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}

// compileError joins ErrCompile and the cause.
func compileError(cause error, format string, args ...interface{}) error {
	return fmt.Errorf("Compile: %s: %w: %w", fmt.Sprintf(format, args...), ErrCompile, cause)
}
