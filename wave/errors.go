// SPDX-License-Identifier: MIT
// Package: awgwave/wave
//
// errors.go - sentinel errors for the wave package.
//
// Error policy:
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Methods wrap with their own name: fmt.Errorf("Method: %w", err).
//   - A failing mutator leaves its receiver unchanged.

package wave

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch indicates x and y arrays of different lengths.
var ErrLengthMismatch = errors.New("wave: x and y lengths differ")

// ErrInvalidDivisor indicates a zero, NaN or infinite scalar divisor.
var ErrInvalidDivisor = errors.New("wave: invalid divisor")

// ErrEmptyWaveList indicates an operation that would leave a Waveform
// without segments.
var ErrEmptyWaveList = errors.New("wave: wave list cannot be empty")

// ErrIndexOutOfRange indicates a segment or wire index outside the list.
var ErrIndexOutOfRange = errors.New("wave: index out of range")

// ErrBadPermutation indicates an order that is not a permutation of the
// segment indices.
var ErrBadPermutation = errors.New("wave: invalid permutation")

// ErrNilSegment indicates a nil *Wave, *Waveform or *QubitChannel input.
var ErrNilSegment = errors.New("wave: nil segment")

// ErrNoSampleRate indicates padding was requested for a value whose sample
// period is unknown (fewer than two samples and no reference).
var ErrNoSampleRate = errors.New("wave: sample rate unknown")

// ErrInvalidSpan indicates a NaN or infinite duration.
var ErrInvalidSpan = errors.New("wave: invalid span")

// ErrNoSamples indicates an operation that needs at least one sample.
var ErrNoSamples = errors.New("wave: no samples")

// ErrAlignment indicates that padding could not reach the requested sample
// count.
var ErrAlignment = errors.New("wave: alignment failed")

// ErrNoWires indicates a QubitChannel built from zero wires.
var ErrNoWires = errors.New("wave: qubit channel needs at least one wire")

// ErrWireCountMismatch indicates two channels with different wire counts.
var ErrWireCountMismatch = errors.New("wave: wire count mismatch")

// ErrSampleRateMismatch indicates wires or channels with different sample
// periods.
var ErrSampleRateMismatch = errors.New("wave: sample rate mismatch")

// ErrAxisMismatch indicates wires whose time axes differ after alignment,
// e.g. wires starting at different times.
var ErrAxisMismatch = errors.New("wave: wire time axes differ")

// ErrUnknownWire indicates a wire name that the channel does not carry.
var ErrUnknownWire = errors.New("wave: unknown wire")

// ErrBadCount indicates a non-positive repeat count or sample count.
var ErrBadCount = errors.New("wave: count must be positive")

// waveErrorf prefixes err with method and optional detail, keeping err in
// the chain.
func waveErrorf(method string, err error, format string, args ...interface{}) error {
	if format == "" {
		return fmt.Errorf("%s: %w", method, err)
	}

	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
