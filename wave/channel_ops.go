// SPDX-License-Identifier: MIT
// Package: awgwave/wave
//
// channel_ops.go - combining, null filling and alignment of channels.

package wave

import (
	"fmt"
	"math"
	"sort"
)

// Concat returns a channel whose wire i is qc's wire i followed by other's
// wire i. Wire names are taken from qc.
func (qc *QubitChannel) Concat(other *QubitChannel) (*QubitChannel, error) {
	if other == nil {
		return nil, fmt.Errorf("Concat: %w", ErrNilSegment)
	}
	if len(qc.wires) != len(other.wires) {
		return nil, waveErrorf("Concat", ErrWireCountMismatch, "%d vs %d", len(qc.wires), len(other.wires))
	}
	if !sameRate(qc.Dx(), other.Dx()) {
		return nil, waveErrorf("Concat", ErrSampleRateMismatch, "%g vs %g", qc.Dx(), other.Dx())
	}
	wires := make([]*Waveform, len(qc.wires))
	for i, w := range qc.wires {
		joined, err := w.Append(other.wires[i])
		if err != nil {
			return nil, waveErrorf("Concat", err, "wire %d", i)
		}
		wires[i] = joined
	}
	out, err := newQubitChannel(wires, qc.wireNames)
	if err != nil {
		return nil, fmt.Errorf("Concat: %w", err)
	}
	out.name = qc.name

	return out, nil
}

// Repeat returns a channel with every wire's segment list repeated n times.
func (qc *QubitChannel) Repeat(n int) (*QubitChannel, error) {
	if n < 1 {
		return nil, waveErrorf("Repeat", ErrBadCount, "n=%d", n)
	}
	wires := make([]*Waveform, len(qc.wires))
	for i, w := range qc.wires {
		wires[i], _ = w.Repeat(n)
	}
	out, err := newQubitChannel(wires, qc.wireNames)
	if err != nil {
		return nil, fmt.Errorf("Repeat: %w", err)
	}
	out.name = qc.name

	return out, nil
}

// AddWire returns a channel with src's wires appended after qc's and the
// whole set re-aligned.
func (qc *QubitChannel) AddWire(src WireSource) (*QubitChannel, error) {
	if src == nil {
		return nil, fmt.Errorf("AddWire: %w", ErrNilSegment)
	}
	add, addNames, err := src.wireList()
	if err != nil {
		return nil, fmt.Errorf("AddWire: %w", err)
	}
	wires := append(append([]*Waveform(nil), qc.wires...), add...)
	names := append(qc.WireNames(), addNames...)
	out, err := newQubitChannel(wires, names)
	if err != nil {
		return nil, fmt.Errorf("AddWire: %w", err)
	}
	out.name = qc.name

	return out, nil
}

// AddNullWire returns a channel with an all-zero wire inserted before each
// of the given positions (positions refer to the current wire order;
// NumWires() appends). Null wires have empty names.
func (qc *QubitChannel) AddNullWire(indices ...int) (*QubitChannel, error) {
	pos := append([]int(nil), indices...)
	for _, p := range pos {
		if p < 0 || p > len(qc.wires) {
			return nil, waveErrorf("AddNullWire", ErrIndexOutOfRange, "index %d", p)
		}
	}
	sort.Ints(pos)

	null := nullWaveform(qc.Len(), qc.Dx(), qc.prec)
	wires := make([]*Waveform, 0, len(qc.wires)+len(pos))
	names := make([]string, 0, len(qc.wires)+len(pos))
	k := 0
	for i := 0; i <= len(qc.wires); i++ {
		for k < len(pos) && pos[k] == i {
			wires = append(wires, null)
			names = append(names, "")
			k++
		}
		if i < len(qc.wires) {
			wires = append(wires, qc.wires[i])
			names = append(names, qc.wireNames[i])
		}
	}
	out, err := newQubitChannel(wires, names)
	if err != nil {
		return nil, fmt.Errorf("AddNullWire: %w", err)
	}
	out.name = qc.name

	return out, nil
}

// Sample evaluates every wire at xs, see Waveform.Sample.
func (qc *QubitChannel) Sample(xs []float64) ([][]float64, error) {
	out := make([][]float64, len(qc.wires))
	for i, w := range qc.wires {
		ys, err := w.Sample(xs)
		if err != nil {
			return nil, waveErrorf("Sample", err, "wire %d", i)
		}
		out[i] = ys
	}

	return out, nil
}

// -----------------------------------------------------------------------------
// Null channels
// -----------------------------------------------------------------------------

// NullChannel returns an all-zero channel of wires wires, each with samples
// samples spaced dx.
func NullChannel(samples int, dx float64, wires int, opts ...Option) (*QubitChannel, error) {
	if samples < 1 || wires < 1 {
		return nil, waveErrorf("NullChannel", ErrBadCount, "samples=%d wires=%d", samples, wires)
	}
	if samples > 1 && !(dx > 0) {
		return nil, waveErrorf("NullChannel", ErrNoSampleRate, "dx=%g", dx)
	}
	prec := newConfig(opts...).prec
	null := nullWaveform(samples, dx, prec)
	ws := make([]*Waveform, wires)
	for i := range ws {
		ws[i] = null
	}

	return newQubitChannel(ws, nil)
}

// NullLike returns an all-zero channel with spanRef's sample count and
// period and wires wires. The precision is spanRef's when it is a channel.
func NullLike(spanRef Sized, wires int, opts ...Option) (*QubitChannel, error) {
	if spanRef == nil {
		return nil, fmt.Errorf("NullLike: %w", ErrNilSegment)
	}
	if qc, ok := spanRef.(*QubitChannel); ok && len(opts) == 0 {
		opts = []Option{WithPrecision(qc.prec)}
	}
	out, err := NullChannel(spanRef.Len(), spanRef.Dx(), wires, opts...)
	if err != nil {
		return nil, fmt.Errorf("NullLike: %w", err)
	}

	return out, nil
}

// -----------------------------------------------------------------------------
// In-place alignment
// -----------------------------------------------------------------------------

// alignRule is the rule of blocks that extend a channel to a reference.
var alignRule = AppendRule{Head: true}

// AlignTo pads every wire at the tail to n samples. Channels already at
// least n long are unchanged.
func (qc *QubitChannel) AlignTo(n int) error {
	if err := qc.alignTo(n, alignRule, nil); err != nil {
		return fmt.Errorf("AlignTo: %w", err)
	}

	return nil
}

// AlignToSpan pads every wire at the tail to cover span seconds.
func (qc *QubitChannel) AlignToSpan(span float64) error {
	if math.IsNaN(span) || math.IsInf(span, 0) || span < 0 {
		return waveErrorf("AlignToSpan", ErrInvalidSpan, "%g", span)
	}
	dx := qc.Dx()
	if dx == 0 {
		return fmt.Errorf("AlignToSpan: %w", ErrNoSampleRate)
	}
	n := int(math.Round(qc.prec.RoundTime(span) / dx))
	if err := qc.alignTo(n, alignRule, nil); err != nil {
		return fmt.Errorf("AlignToSpan: %w", err)
	}

	return nil
}

// AlignToRef pads every wire at the tail to ref's sample count.
func (qc *QubitChannel) AlignToRef(ref Sized) error {
	if ref == nil {
		return fmt.Errorf("AlignToRef: %w", ErrNilSegment)
	}
	if !sameRate(qc.Dx(), ref.Dx()) {
		return waveErrorf("AlignToRef", ErrSampleRateMismatch, "%g vs %g", qc.Dx(), ref.Dx())
	}
	if err := qc.alignTo(ref.Len(), alignRule, ref); err != nil {
		return fmt.Errorf("AlignToRef: %w", err)
	}

	return nil
}

// AlignQubitChannels pads every channel to the sample count of the longest.
// Channels are checked first; on error none is modified.
func AlignQubitChannels(chs ...*QubitChannel) error {
	if len(chs) == 0 {
		return nil
	}
	var (
		longest *QubitChannel
		dx      float64
	)
	for i, qc := range chs {
		if qc == nil {
			return waveErrorf("AlignQubitChannels", ErrNilSegment, "channel %d", i)
		}
		if !sameRate(dx, qc.Dx()) {
			return waveErrorf("AlignQubitChannels", ErrSampleRateMismatch, "channel %d", i)
		}
		if qc.Dx() != 0 {
			dx = qc.Dx()
		}
		if longest == nil || qc.Len() > longest.Len() {
			longest = qc
		}
	}

	// Stage on clones so a failure part way leaves every channel intact.
	staged := make([]*QubitChannel, len(chs))
	for i, qc := range chs {
		c := qc.clone()
		if err := c.alignTo(longest.Len(), alignRule, longest); err != nil {
			return waveErrorf("AlignQubitChannels", err, "channel %d", i)
		}
		staged[i] = c
	}
	for i, qc := range chs {
		qc.wires = staged[i].wires
	}

	return nil
}

// Clone returns an independent copy of the channel.
func (qc *QubitChannel) Clone() *QubitChannel { return qc.clone() }

func (qc *QubitChannel) clone() *QubitChannel {
	out := &QubitChannel{
		wires:     make([]*Waveform, len(qc.wires)),
		wireNames: append([]string(nil), qc.wireNames...),
		name:      qc.name,
		prec:      qc.prec,
	}
	for i, w := range qc.wires {
		out.wires[i] = w.Clone()
	}

	return out
}
