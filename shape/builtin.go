// SPDX-License-Identifier: MIT
// Package: awgwave/shape
//
// builtin.go - the built-in unit-amplitude pulse shapes.
//
// Every generator takes the timeline x (seconds, starting at 0) and returns
// one value per sample. Piecewise shapes split x by comparison against their
// breakpoints; samples exactly on a breakpoint follow the documented side.
//
// Invalid parameters (sigma = 0, tau = 0, period = 0) produce NaN/Inf, which
// Catalog.Generate reports as ErrBadOutput.

package shape

import "math"

const twoPi = 2.0 * math.Pi

// builtin is one entry of the default catalog.
type builtin struct {
	name string
	args []string
	fn   Func
}

// builtins lists the shapes registered by NewCatalog.
func builtins() []builtin {
	return []builtin{
		{"gaussian", []string{"peak_x", "sigma"}, gaussianFn},
		{"const", []string{"lv"}, constFn},
		{"exp_rising", []string{"peak_x", "tau"}, expRisingFn},
		{"exp_falling", []string{"peak_x", "tau"}, expFallingFn},
		{"gaussian_square", []string{"first_peak_x", "flat", "sigma"}, gaussianSquareFn},
		{"exp_square", []string{"first_peak_x", "flat", "tau"}, expSquareFn},
		{"sine", []string{"period", "start_phase"}, periodic(math.Sin, true)},
		{"sine2", []string{"frequency", "start_phase"}, periodic(math.Sin, false)},
		{"cosine", []string{"period", "start_phase"}, periodic(math.Cos, true)},
		{"cosine2", []string{"frequency", "start_phase"}, periodic(math.Cos, false)},
		{"square", []string{"start", "flat"}, squareFn},
		{"drag", []string{"peak_x", "sigma", "beta"}, dragFn},
		{"chirp", []string{"f0", "f1", "start_phase"}, chirpFn},
		{"pulse_train", []string{"period", "duty"}, pulseTrainFn},
		{"triangle", []string{"period"}, triangleFn},
	}
}

// gaussian returns exp(-(t-peak)^2 / (2 sigma^2)).
func gaussian(t, peak, sigma float64) float64 {
	d := t - peak
	return math.Exp(-d * d / (2 * sigma * sigma))
}

func gaussianFn(x, a []float64) []float64 {
	peak, sigma := a[0], a[1]
	y := make([]float64, len(x))
	for i, t := range x {
		y[i] = gaussian(t, peak, sigma)
	}

	return y
}

func constFn(x, a []float64) []float64 {
	y := make([]float64, len(x))
	for i := range y {
		y[i] = a[0]
	}

	return y
}

// expRisingFn: exp((t-peak)/tau) up to and including peak, 0 after.
func expRisingFn(x, a []float64) []float64 {
	peak, tau := a[0], a[1]
	y := make([]float64, len(x))
	for i, t := range x {
		if t <= peak {
			y[i] = math.Exp((t - peak) / tau)
		}
	}

	return y
}

// expFallingFn: 0 before peak, exp((peak-t)/tau) from peak on.
func expFallingFn(x, a []float64) []float64 {
	peak, tau := a[0], a[1]
	y := make([]float64, len(x))
	for i, t := range x {
		if t >= peak {
			y[i] = math.Exp((peak - t) / tau)
		}
	}

	return y
}

// squareEdges fills a unit flat top on (first, first+flat] and delegates the
// rising edge (t <= first) to rise and the falling edge (t > first+flat)
// to fall.
// The falling edge peaks at the first sample past the flat top.
func squareEdges(x []float64, first, flat float64, rise, fall func(t, peak float64) float64) []float64 {
	y := make([]float64, len(x))
	end := first + flat
	fallPeak := math.NaN()
	for i, t := range x {
		switch {
		case t <= first:
			y[i] = rise(t, first)
		case t <= end:
			y[i] = 1
		default:
			if math.IsNaN(fallPeak) {
				fallPeak = t
			}
			y[i] = fall(t, fallPeak)
		}
	}

	return y
}

func gaussianSquareFn(x, a []float64) []float64 {
	sigma := a[2]
	edge := func(t, peak float64) float64 { return gaussian(t, peak, sigma) }

	return squareEdges(x, a[0], a[1], edge, edge)
}

func expSquareFn(x, a []float64) []float64 {
	tau := a[2]

	return squareEdges(x, a[0], a[1],
		func(t, peak float64) float64 { return math.Exp((t - peak) / tau) },
		func(t, peak float64) float64 { return math.Exp((peak - t) / tau) },
	)
}

// periodic builds sine/cosine generators. byPeriod selects whether the first
// argument is a period (seconds) or a frequency (Hz).
func periodic(f func(float64) float64, byPeriod bool) Func {
	return func(x, a []float64) []float64 {
		freq := a[0]
		if byPeriod {
			freq = 1 / a[0]
		}
		phase := a[1]
		y := make([]float64, len(x))
		for i, t := range x {
			y[i] = f(twoPi*freq*t + phase)
		}

		return y
	}
}

// squareFn: 1 on [start, start+flat], 0 elsewhere.
func squareFn(x, a []float64) []float64 {
	start, end := a[0], a[0]+a[1]
	y := make([]float64, len(x))
	for i, t := range x {
		if t >= start && t <= end {
			y[i] = 1
		}
	}

	return y
}

// dragFn is the derivative-of-Gaussian quadrature component used for DRAG
// correction: -beta * (t-peak)/sigma^2 * gaussian(t).
func dragFn(x, a []float64) []float64 {
	peak, sigma, beta := a[0], a[1], a[2]
	y := make([]float64, len(x))
	for i, t := range x {
		y[i] = -beta * (t - peak) / (sigma * sigma) * gaussian(t, peak, sigma)
	}

	return y
}

// chirpFn sweeps linearly from f0 at t=0 to f1 at the last sample:
// sin(2pi(f0 t + (f1-f0) t^2 / 2T) + phase).
func chirpFn(x, a []float64) []float64 {
	f0, f1, phase := a[0], a[1], a[2]
	y := make([]float64, len(x))
	if len(x) == 0 {
		return y
	}
	T := x[len(x)-1]
	k := 0.0
	if T > 0 {
		k = (f1 - f0) / T
	}
	for i, t := range x {
		y[i] = math.Sin(twoPi*(f0*t+k*t*t/2) + phase)
	}

	return y
}

// phaseFrac returns (t/period) mod 1 in [0, 1).
func phaseFrac(t, period float64) float64 {
	f := math.Mod(t/period, 1)
	if f < 0 {
		f++
	}

	return f
}

// pulseTrainFn: 1 while the phase fraction is below duty, 0 otherwise.
func pulseTrainFn(x, a []float64) []float64 {
	period, duty := a[0], a[1]
	if !(period > 0) {
		return nanFill(len(x))
	}
	y := make([]float64, len(x))
	for i, t := range x {
		if phaseFrac(t, period) < duty {
			y[i] = 1
		}
	}

	return y
}

// triangleFn: 1 - |2 frac - 1|, rising from 0 to 1 and back each period.
func triangleFn(x, a []float64) []float64 {
	period := a[0]
	if !(period > 0) {
		return nanFill(len(x))
	}
	y := make([]float64, len(x))
	for i, t := range x {
		y[i] = 1 - math.Abs(2*phaseFrac(t, period)-1)
	}

	return y
}

// nanFill marks a whole output invalid.
func nanFill(n int) []float64 {
	y := make([]float64, n)
	for i := range y {
		y[i] = math.NaN()
	}

	return y
}
