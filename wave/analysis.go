// SPDX-License-Identifier: MIT
// Package: awgwave/wave
//
// analysis.go - sampling at arbitrary times, the one-sided spectrum, the
// power spectral density and spectral derivatives.
//
// Every frequency-domain method needs a known sample rate (ErrNoSampleRate
// otherwise) and reads the synthesized samples only.

package wave

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

// sampleAt linearly interpolates (x, y) at xs, clamping outside the axis.
func sampleAt(x, y, xs []float64) ([]float64, error) {
	out := make([]float64, len(xs))
	switch len(x) {
	case 0:
		return nil, ErrNoSamples
	case 1:
		for i := range out {
			out[i] = y[0]
		}
		return out, nil
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(x, y); err != nil {
		return nil, err
	}
	for i, t := range xs {
		out[i] = pl.Predict(t)
	}

	return out, nil
}

// Sample returns the wave's value at each time in xs by linear
// interpolation; times outside the axis take the nearest end value.
func (w *Wave) Sample(xs []float64) ([]float64, error) {
	ys, err := sampleAt(w.x, w.y, xs)
	if err != nil {
		return nil, fmt.Errorf("Sample: %w", err)
	}

	return ys, nil
}

// Sample returns the waveform's value at each time in xs by linear
// interpolation; times outside the axis take the nearest end value.
func (wf *Waveform) Sample(xs []float64) ([]float64, error) {
	ys, err := sampleAt(wf.x, wf.y, xs)
	if err != nil {
		return nil, fmt.Errorf("Sample: %w", err)
	}

	return ys, nil
}

// Spectrum is the one-sided discrete Fourier transform of a waveform.
type Spectrum struct {
	Freq  []float64    // Hz, from 0 to the Nyquist frequency
	Coeff []complex128 // unnormalized DFT coefficients
}

// Spectrum returns the one-sided DFT of the synthesized samples. The
// waveform needs a known sample rate.
func (wf *Waveform) Spectrum() (Spectrum, error) {
	rate := wf.SampleRate()
	if rate == 0 {
		return Spectrum{}, fmt.Errorf("Spectrum: %w", ErrNoSampleRate)
	}
	fft := fourier.NewFFT(len(wf.y))
	coeff := fft.Coefficients(nil, wf.y)
	freq := make([]float64, len(coeff))
	for i := range freq {
		freq[i] = wf.prec.RoundFreq(fft.Freq(i) * rate)
	}

	return Spectrum{Freq: freq, Coeff: coeff}, nil
}

// PowerSpectrum is a one-sided power spectral density.
type PowerSpectrum struct {
	Freq    []float64 // Hz, from 0 to the Nyquist frequency
	Density []float64 // squared sample units per Hz, or dB when requested
}

// PSD returns the one-sided power spectral density of the synthesized
// samples: a single rectangular-window segment spanning the whole waveform,
// with the mean removed first. With dB set each density is 10*log10 of the
// linear value, so an empty bin maps to -Inf.
//
// Bins other than DC and (for even lengths) Nyquist are doubled to fold in
// the negative frequencies, so the densities integrate to the variance.
func (wf *Waveform) PSD(dB bool) (PowerSpectrum, error) {
	rate := wf.SampleRate()
	if rate == 0 {
		return PowerSpectrum{}, fmt.Errorf("PSD: %w", ErrNoSampleRate)
	}
	n := len(wf.y)
	y := append([]float64(nil), wf.y...)
	floats.AddConst(-floats.Sum(y)/float64(n), y)

	fft := fourier.NewFFT(n)
	coeff := fft.Coefficients(nil, y)
	ps := PowerSpectrum{
		Freq:    make([]float64, len(coeff)),
		Density: make([]float64, len(coeff)),
	}
	scale := 1 / (rate * float64(n))
	for k, c := range coeff {
		ps.Freq[k] = wf.prec.RoundFreq(fft.Freq(k) * rate)
		d := (real(c)*real(c) + imag(c)*imag(c)) * scale
		if k > 0 && !(n%2 == 0 && k == n/2) {
			d *= 2
		}
		if dB {
			d = 10 * math.Log10(d)
		}
		ps.Density[k] = d
	}

	return ps, nil
}

// Diff returns the n-th time derivative of the synthesized samples,
// computed in the frequency domain: each coefficient is multiplied by
// (i*2*pi*f)^n and the real part of the inverse transform is kept. The
// samples are treated as one period of a periodic signal. n == 0 returns a
// copy of the samples.
//
// Complexity: O(N log N) for N samples.
func (wf *Waveform) Diff(n int) ([]float64, error) {
	if n < 0 {
		return nil, waveErrorf("Diff", ErrBadCount, "order %d", n)
	}
	if n == 0 {
		return wf.Y(), nil
	}
	rate := wf.SampleRate()
	if rate == 0 {
		return nil, fmt.Errorf("Diff: %w", ErrNoSampleRate)
	}

	size := len(wf.y)
	seq := make([]complex128, size)
	for i, v := range wf.y {
		seq[i] = complex(v, 0)
	}
	fft := fourier.NewCmplxFFT(size)
	coeff := fft.Coefficients(nil, seq)
	for k := range coeff {
		iw := complex(0, 2*math.Pi*fft.Freq(k)*rate)
		factor := complex(1, 0)
		for j := 0; j < n; j++ {
			factor *= iw
		}
		coeff[k] *= factor
	}
	back := fft.Sequence(nil, coeff)

	out := make([]float64, size)
	for i, c := range back {
		out[i] = real(c) / float64(size)
	}

	return out, nil
}
