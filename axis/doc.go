// SPDX-License-Identifier: MIT

// Package axis owns the numeric policy for sampled time axes.
//
// Every waveform-bearing value in awgwave carries a uniformly spaced time
// axis x (fixed step dx) and an amplitude array y of the same length.
// Repeated concatenation accumulates floating-point drift on x, so all time
// values are rounded to a fixed number of decimal digits. That rounding is
// not a package constant: it is the Precision value held by each wave,
// waveform and channel, threaded through every axis computation.
//
//	p := axis.DefaultPrecision()   // TimeDigits=9, FreqDigits=5
//	dx := p.Step(x)                // rounded x[1]-x[0], 0 for < 2 samples
//	rate := p.Rate(dx)             // rounded 1/dx, 0 when dx == 0
//	span := p.Span(x)              // rounded x[last]-x[0]+dx
//
// Two axes are considered equal when they agree sample by sample after
// rounding (EqualTimes); alignment decisions elsewhere rely on this.
package axis
