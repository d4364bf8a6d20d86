// SPDX-License-Identifier: MIT
// Package: awgwave/wave
//
// types.go - append rules and the sealed input variants.

package wave

import "fmt"

// AppendRule is the boundary policy of a segment. A hard end (true) keeps
// its boundary sample verbatim; a soft end (false) overlaps the neighbour
// by one sample, averaged when both ends are soft.
type AppendRule struct {
	Head bool
	Tail bool
}

// Hard is the default rule of generated shapes: both ends hard.
var Hard = AppendRule{Head: true, Tail: true}

// Soft overlaps and averages at both ends.
var Soft = AppendRule{}

// Or combines two rules end by end; a hard end stays hard.
func (r AppendRule) Or(o AppendRule) AppendRule {
	return AppendRule{Head: r.Head || o.Head, Tail: r.Tail || o.Tail}
}

// String renders the rule as [head tail].
func (r AppendRule) String() string {
	return fmt.Sprintf("[%t %t]", r.Head, r.Tail)
}

// Segment is anything that can be appended to a Waveform: a *Wave, a
// *Waveform (its segments are used) or Waves. The set is closed.
type Segment interface {
	segments() ([]*Wave, error)
}

// Waves is an ordered list of waves usable as a Segment.
type Waves []*Wave

func (ws Waves) segments() ([]*Wave, error) {
	for _, w := range ws {
		if w == nil {
			return nil, ErrNilSegment
		}
	}

	return append([]*Wave(nil), ws...), nil
}

// WireSource is anything that can be added as wires to a QubitChannel: a
// *Waveform, a *QubitChannel (all its wires) or Wires. The set is closed.
type WireSource interface {
	wireList() ([]*Waveform, []string, error)
}

// Wires is an ordered list of waveforms usable as a WireSource.
type Wires []*Waveform

func (ws Wires) wireList() ([]*Waveform, []string, error) {
	names := make([]string, len(ws))
	for i, w := range ws {
		if w == nil {
			return nil, nil, ErrNilSegment
		}
		names[i] = w.name
	}

	return append([]*Waveform(nil), ws...), names, nil
}

// Sized is a sampled value with a known sample count and period. Wave,
// Waveform and QubitChannel implement it; it is the reference type for
// channel alignment.
type Sized interface {
	Len() int
	Dx() float64
}
