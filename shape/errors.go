// SPDX-License-Identifier: MIT
// Package: awgwave/shape
//
// errors.go - sentinel errors for the shape package.
//
// Error policy:
//   - Only package-level sentinels are exposed.
//   - Callers branch with errors.Is(err, ErrX); never compare strings.
//   - Call sites attach context with %w via shapeErrorf.
//   - Generation never panics; option constructors do, on programmer error.

package shape

import (
	"errors"
	"fmt"
)

// ErrUnknownShape indicates that no generator is registered under the name.
var ErrUnknownShape = errors.New("shape: unknown shape")

// ErrMissingArg indicates that a keyword invocation lacks one of the
// generator's declared argument names.
var ErrMissingArg = errors.New("shape: missing argument")

// ErrArgCount indicates a positional invocation with the wrong number of
// values, or a descriptor that mixes keyword and positional arguments.
var ErrArgCount = errors.New("shape: wrong argument count")

// ErrBadTimeline indicates a span or sample rate that cannot describe a
// timeline (negative span, non-positive rate, NaN or Inf).
var ErrBadTimeline = errors.New("shape: invalid timeline")

// ErrDuplicateShape indicates Register was called with a taken name.
var ErrDuplicateShape = errors.New("shape: duplicate shape name")

// ErrBadShapeFunc indicates Register was called with an empty name, a nil
// generator or repeated argument names.
var ErrBadShapeFunc = errors.New("shape: invalid generator")

// ErrBadOutput indicates that a generator returned the wrong number of
// samples or a non-finite value.
var ErrBadOutput = errors.New("shape: generator output invalid")

// shapeErrorf prefixes err with the method name, keeping err in the chain.
func shapeErrorf(method string, err error, format string, args ...interface{}) error {
	if format == "" {
		return fmt.Errorf("%s: %w", method, err)
	}

	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
