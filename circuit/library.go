// SPDX-License-Identifier: MIT
// Package: awgwave/circuit
//
// library.go - ready-made gates built from gaussian_square pulses.
//
// Every pulse is a flat top with Gaussian edges: EdgeSigmas*Sigma of rise,
// Flat seconds at Amplitude, EdgeSigmas*Sigma of fall. Drive gates carry
// two wires named I and Q; the readout gate carries M (marker) and R.

package circuit

import (
	"fmt"

	"github.com/katalvlaran/awgwave/shape"
	"github.com/katalvlaran/awgwave/wave"
)

// EdgeSigmas is the width of each pulse edge in units of Sigma.
const EdgeSigmas = 2

// Wire names used by the gate library.
const (
	WireI      = "I"
	WireQ      = "Q"
	WireMarker = "M"
	WireRead   = "R"
)

// Pulse parameterizes a gaussian_square pulse.
type Pulse struct {
	Sigma      float64 // edge standard deviation, seconds
	Flat       float64 // flat-top length, seconds
	Amplitude  float64 // 0 means 1
	SampleRate float64 // 0 means the catalog default
}

// Span returns the pulse duration.
func (p Pulse) Span() float64 { return 2*EdgeSigmas*p.Sigma + p.Flat }

// Descriptor returns the shape description of the pulse.
func (p Pulse) Descriptor(name string) shape.Descriptor {
	return shape.SetFunc("gaussian_square", map[string]float64{
		"first_peak_x": EdgeSigmas * p.Sigma,
		"flat":         p.Flat,
		"sigma":        p.Sigma,
	}, p.Span(), p.SampleRate, name)
}

// wave samples the pulse through cat and applies the amplitude.
func (p Pulse) wave(cat *shape.Catalog, name string) (*wave.Wave, error) {
	if !(p.Sigma > 0) || p.Flat < 0 {
		return nil, fmt.Errorf("sigma=%g flat=%g: %w", p.Sigma, p.Flat, shape.ErrBadTimeline)
	}
	w, err := wave.FromShape(cat, p.Descriptor(name), wave.WithPrecision(cat.Precision()))
	if err != nil {
		return nil, err
	}
	if p.Amplitude != 0 {
		w = w.Scale(p.Amplitude)
	}

	return w, nil
}

// pair builds a two-wire channel named channel.
func pair(channel string, a, b *wave.Wave, names ...string) (*wave.QubitChannel, error) {
	qc, err := wave.NewQubitChannel(a.ToWaveform(), b.ToWaveform())
	if err != nil {
		return nil, err
	}
	qc.SetWireNames(names...)
	qc.SetName(channel)

	return qc, nil
}

// driveGate puts pulse on the I wire (onI) or the Q wire.
func driveGate(method, gate string, cat *shape.Catalog, p Pulse, channel string, onI bool) (*Gate, error) {
	pulse, err := p.wave(cat, gate)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	null := pulse.Scale(0).WithName("null")
	i, q := pulse, null
	if !onI {
		i, q = null, pulse
	}
	qc, err := pair(channel, i, q, WireI, WireQ)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	g, err := NewGate(gate, qc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return g, nil
}

// XGate drives channel with p on the I wire and silence on Q.
func XGate(cat *shape.Catalog, p Pulse, channel string) (*Gate, error) {
	return driveGate("XGate", "X", cat, p, channel, true)
}

// YGate drives channel with p on the Q wire and silence on I.
func YGate(cat *shape.Catalog, p Pulse, channel string) (*Gate, error) {
	return driveGate("YGate", "Y", cat, p, channel, false)
}

// ReadoutGate pairs a marker pulse with a readout pulse on channel. The
// shorter wire is padded to the longer.
func ReadoutGate(cat *shape.Catalog, readout, marker Pulse, channel string) (*Gate, error) {
	r, err := readout.wave(cat, "readout")
	if err != nil {
		return nil, fmt.Errorf("ReadoutGate: readout: %w", err)
	}
	m, err := marker.wave(cat, "marker")
	if err != nil {
		return nil, fmt.Errorf("ReadoutGate: marker: %w", err)
	}
	qc, err := pair(channel, m, r, WireMarker, WireRead)
	if err != nil {
		return nil, fmt.Errorf("ReadoutGate: %w", err)
	}
	g, err := NewGate("READOUT", qc)
	if err != nil {
		return nil, fmt.Errorf("ReadoutGate: %w", err)
	}

	return g, nil
}
