// SPDX-License-Identifier: MIT
// Package: awgwave/wave
//
// channel.go - QubitChannel: parallel wires kept on one time axis.
//
// Contract:
//   - A channel owns its wires: constructors clone their inputs, accessors
//     hand out clones.
//   - Every wire has the same sample count. Constructors enforce this by
//     padding shorter wires at the tail to the longest one.
//   - Wires must share a sample period; a wire with an unknown period
//     (fewer than two samples) is compatible with any.
//   - After alignment every wire carries the same time axis, within the
//     precision's time tolerance; wires starting at different times are
//     rejected with ErrAxisMismatch.
//   - Concat, Repeat, AddWire and AddNullWire return new channels; the
//     Align* family mutates in place.

package wave

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/awgwave/axis"
)

// QubitChannel is a group of aligned wires for one logical channel, e.g.
// I, Q and a marker.
type QubitChannel struct {
	wires     []*Waveform
	wireNames []string
	name      string
	prec      axis.Precision
}

// NewQubitChannel clones wires into a channel and aligns them. Wire names
// default to the waveform names.
func NewQubitChannel(wires ...*Waveform) (*QubitChannel, error) {
	names := make([]string, len(wires))
	for i, w := range wires {
		if w == nil {
			return nil, waveErrorf("NewQubitChannel", ErrNilSegment, "wire %d", i)
		}
		names[i] = w.name
	}
	qc, err := newQubitChannel(wires, names)
	if err != nil {
		return nil, fmt.Errorf("NewQubitChannel: %w", err)
	}

	return qc, nil
}

// newQubitChannel clones wires, checks their periods and aligns them to the
// longest, then requires one shared axis. names is copied and fitted to the
// wire count.
func newQubitChannel(wires []*Waveform, names []string) (*QubitChannel, error) {
	if len(wires) == 0 {
		return nil, ErrNoWires
	}
	qc := &QubitChannel{
		wires: make([]*Waveform, len(wires)),
		prec:  wires[0].prec,
	}
	for i, w := range wires {
		qc.wires[i] = w.Clone()
	}
	if _, err := commonDx(qc.wires); err != nil {
		return nil, err
	}
	qc.SetWireNames(names...)

	longest := qc.wires[0]
	for _, w := range qc.wires[1:] {
		if w.Len() > longest.Len() {
			longest = w
		}
	}
	if err := qc.alignTo(longest.Len(), AppendRule{Head: true, Tail: longest.Rule().Tail}, longest); err != nil {
		return nil, err
	}
	ref := qc.wires[0].x
	for i, w := range qc.wires[1:] {
		if !qc.prec.EqualTimes(ref, w.x) {
			return nil, fmt.Errorf("wire %d starts at %g, wire 0 at %g: %w", i+1, w.x[0], ref[0], ErrAxisMismatch)
		}
	}

	return qc, nil
}

// commonDx returns the shared sample period of wires (0 if none is known).
func commonDx(wires []*Waveform) (float64, error) {
	var dx float64
	for _, w := range wires {
		d := w.Dx()
		if !sameRate(dx, d) {
			return 0, fmt.Errorf("%g vs %g: %w", dx, d, ErrSampleRateMismatch)
		}
		if d != 0 {
			dx = d
		}
	}

	return dx, nil
}

// alignTo pads every wire shorter than n at the tail with rule. ref supplies
// the period when the wires have none. All wires are updated or none.
func (qc *QubitChannel) alignTo(n int, rule AppendRule, ref Sized) error {
	dx, err := commonDx(qc.wires)
	if err != nil {
		return err
	}
	if dx == 0 && ref != nil {
		dx = ref.Dx()
	}
	next := make([][]*Wave, len(qc.wires))
	for i, w := range qc.wires {
		if w.Len() >= n {
			continue
		}
		segs, err := w.padded(n, false, rule, dx)
		if err != nil {
			return fmt.Errorf("wire %d: %w", i, err)
		}
		next[i] = segs
	}
	for i, segs := range next {
		if segs != nil {
			qc.wires[i].setWaves(segs)
		}
	}

	return nil
}

// Name returns the channel name.
func (qc *QubitChannel) Name() string { return qc.name }

// SetName renames the channel.
func (qc *QubitChannel) SetName(name string) { qc.name = name }

// Precision returns the rounding policy of the channel.
func (qc *QubitChannel) Precision() axis.Precision { return qc.prec }

// NumWires returns the number of wires.
func (qc *QubitChannel) NumWires() int { return len(qc.wires) }

// Len returns the common sample count of the wires.
func (qc *QubitChannel) Len() int { return qc.wires[0].Len() }

// Dx returns the common sample period.
func (qc *QubitChannel) Dx() float64 {
	dx, _ := commonDx(qc.wires)

	return dx
}

// SampleRate returns 1/Dx rounded, 0 when Dx is 0.
func (qc *QubitChannel) SampleRate() float64 { return qc.prec.Rate(qc.Dx()) }

// Span returns the duration of the shared axis.
func (qc *QubitChannel) Span() float64 { return qc.wires[0].Span() }

// X returns the shared time axis.
func (qc *QubitChannel) X() []float64 { return qc.wires[0].X() }

// Y returns one sample array per wire, in wire order.
func (qc *QubitChannel) Y() [][]float64 {
	out := make([][]float64, len(qc.wires))
	for i, w := range qc.wires {
		out[i] = w.Y()
	}

	return out
}

// Wires returns clones of the wires.
func (qc *QubitChannel) Wires() []*Waveform {
	out := make([]*Waveform, len(qc.wires))
	for i, w := range qc.wires {
		out[i] = w.Clone()
	}

	return out
}

// WireAt returns a clone of wire i.
func (qc *QubitChannel) WireAt(i int) (*Waveform, error) {
	if i < 0 || i >= len(qc.wires) {
		return nil, waveErrorf("WireAt", ErrIndexOutOfRange, "wire %d", i)
	}

	return qc.wires[i].Clone(), nil
}

// Wire returns a clone of the first wire called name.
func (qc *QubitChannel) Wire(name string) (*Waveform, error) {
	for i, n := range qc.wireNames {
		if n == name {
			return qc.wires[i].Clone(), nil
		}
	}

	return nil, waveErrorf("Wire", ErrUnknownWire, "%q", name)
}

// WireNames returns a copy of the wire names.
func (qc *QubitChannel) WireNames() []string {
	return append([]string(nil), qc.wireNames...)
}

// SetWireNames assigns names in wire order. Missing names become empty;
// extra names are ignored.
func (qc *QubitChannel) SetWireNames(names ...string) {
	out := make([]string, len(qc.wires))
	copy(out, names)
	qc.wireNames = out
}

// String summarizes the channel.
func (qc *QubitChannel) String() string {
	return fmt.Sprintf("name: %s\nwire names: [%s]\npoint number: %d\nspan: %g",
		qc.name, strings.Join(qc.wireNames, " "), qc.Len(), qc.Span())
}

func (qc *QubitChannel) wireList() ([]*Waveform, []string, error) {
	if qc == nil {
		return nil, nil, ErrNilSegment
	}

	return qc.wires, qc.WireNames(), nil
}
