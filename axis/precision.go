// SPDX-License-Identifier: MIT
// Package: awgwave/axis
//
// precision.go - time/frequency rounding policy and axis helpers.
//
// Contract:
//   - Precision is a small value type; copy it freely.
//   - All helpers are pure and allocation-free except RoundTimes/Timeline.
//   - Degenerate axes (0 or 1 sample) have dx == 0 and rate == 0.

package axis

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Default rounding digits. TimeDigits keeps nanosecond-scale steps exact at
// GHz sample rates; FreqDigits is applied to derived sample rates.
const (
	DefaultTimeDigits = 9
	DefaultFreqDigits = 5
)

// maxDigits bounds the rounding scale so 10^digits stays finite and exact.
const maxDigits = 15

// Precision is the rounding policy applied to every computed time value.
type Precision struct {
	TimeDigits int // decimal digits kept on time values (x, dx, span)
	FreqDigits int // decimal digits kept on frequency values (sample rate)
}

// DefaultPrecision returns the policy used when no option overrides it.
func DefaultPrecision() Precision {
	return Precision{TimeDigits: DefaultTimeDigits, FreqDigits: DefaultFreqDigits}
}

// Valid reports whether both digit counts are inside [0, 15].
func (p Precision) Valid() bool {
	return p.TimeDigits >= 0 && p.TimeDigits <= maxDigits &&
		p.FreqDigits >= 0 && p.FreqDigits <= maxDigits
}

// RoundTime rounds v to TimeDigits decimals.
func (p Precision) RoundTime(v float64) float64 {
	return roundTo(v, p.TimeDigits)
}

// RoundFreq rounds v to FreqDigits decimals.
func (p Precision) RoundFreq(v float64) float64 {
	return roundTo(v, p.FreqDigits)
}

// RoundTimes rounds every element of xs in place and returns xs.
func (p Precision) RoundTimes(xs []float64) []float64 {
	for i, v := range xs {
		xs[i] = roundTo(v, p.TimeDigits)
	}

	return xs
}

// Step returns the rounded sample period of x, or 0 when x has fewer than
// two samples.
func (p Precision) Step(x []float64) float64 {
	if len(x) < 2 {
		return 0
	}

	return p.RoundTime(x[1] - x[0])
}

// Rate returns the rounded sample rate 1/dx, or 0 when dx == 0.
func (p Precision) Rate(dx float64) float64 {
	if dx == 0 {
		return 0
	}

	return p.RoundFreq(1 / dx)
}

// Span returns the rounded duration covered by x including one trailing
// sample period: x[last] - x[0] + dx. Empty axes have zero span.
func (p Precision) Span(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	return p.RoundTime(x[len(x)-1] - x[0] + p.Step(x))
}

// Timeline returns n samples starting at 0 spaced by dx, rounded.
// n <= 0 yields an empty (non-nil) slice.
func (p Precision) Timeline(n int, dx float64) []float64 {
	if n <= 0 {
		return []float64{}
	}
	x := make([]float64, n)
	if n == 1 {
		return x
	}
	// floats.Span fills x with n evenly spaced values covering [0, (n-1)dx].
	floats.Span(x, 0, float64(n-1)*dx)

	return p.RoundTimes(x)
}

// EqualTimes reports whether a and b have the same length and agree at every
// sample after rounding.
func (p Precision) EqualTimes(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	tol := math.Pow10(-p.TimeDigits) / 2

	return floats.EqualApprox(a, b, tol)
}

// roundTo rounds v half away from zero to the given decimal digits.
func roundTo(v float64, digits int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	if digits > maxDigits {
		digits = maxDigits
	}
	scale := math.Pow10(digits)

	return math.Round(v*scale) / scale
}
