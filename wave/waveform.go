// SPDX-License-Identifier: MIT
// Package: awgwave/wave
//
// waveform.go - Waveform: an ordered, stitched list of Wave segments.
//
// Contract:
//   - The segment list is never empty.
//   - (x, y) is re-synthesized eagerly on every list change; a failing
//     mutator leaves the Waveform untouched.
//   - Segments are immutable *Wave values and may be shared between
//     waveforms; the list itself is owned by the Waveform.
//   - Rule() is (first segment head, last segment tail).
//   - Every segment with a known period shares it; a list mixing periods is
//     rejected with ErrSampleRateMismatch.

package wave

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/awgwave/axis"
)

// Waveform is one wire's full time series built from segments.
type Waveform struct {
	waves []*Wave
	name  string
	x, y  []float64
	prec  axis.Precision
}

// NewWaveform stitches waves into a Waveform.
func NewWaveform(waves []*Wave, name string, opts ...Option) (*Waveform, error) {
	segs, err := Waves(waves).segments()
	if err != nil {
		return nil, fmt.Errorf("NewWaveform: %w", err)
	}
	wf, err := newWaveform(segs, name, newConfig(opts...).prec)
	if err != nil {
		return nil, fmt.Errorf("NewWaveform: %w", err)
	}

	return wf, nil
}

// newWaveform takes ownership of segs.
func newWaveform(segs []*Wave, name string, prec axis.Precision) (*Waveform, error) {
	if len(segs) == 0 {
		return nil, ErrEmptyWaveList
	}
	if _, err := segmentDx(segs); err != nil {
		return nil, err
	}
	wf := &Waveform{waves: segs, name: name, prec: prec}
	wf.x, wf.y = synthesize(segs, prec)

	return wf, nil
}

// segmentDx returns the period shared by segs, skipping segments with fewer
// than two samples (0 if none is known).
func segmentDx(segs []*Wave) (float64, error) {
	var dx float64
	for i, s := range segs {
		d := s.Dx()
		if !sameRate(dx, d) {
			return 0, fmt.Errorf("segment %d: %g vs %g: %w", i, d, dx, ErrSampleRateMismatch)
		}
		if d != 0 {
			dx = d
		}
	}

	return dx, nil
}

// nullWaveform is a single soft zero segment of n samples.
func nullWaveform(n int, dx float64, prec axis.Precision) *Waveform {
	wf, _ := newWaveform([]*Wave{zeros(n, dx, nullName, Soft, prec)}, nullName, prec)

	return wf
}

// X returns a copy of the synthesized time axis.
func (wf *Waveform) X() []float64 { return append([]float64{}, wf.x...) }

// Y returns a copy of the synthesized samples.
func (wf *Waveform) Y() []float64 { return append([]float64{}, wf.y...) }

// Len returns the synthesized sample count.
func (wf *Waveform) Len() int { return len(wf.x) }

// Dx returns the rounded sample period, 0 for fewer than two samples.
func (wf *Waveform) Dx() float64 { return wf.prec.Step(wf.x) }

// SampleRate returns 1/Dx rounded, 0 when Dx is 0.
func (wf *Waveform) SampleRate() float64 { return wf.prec.Rate(wf.Dx()) }

// Span returns the synthesized duration x[last]-x[0]+dx.
func (wf *Waveform) Span() float64 { return wf.prec.Span(wf.x) }

// Name returns the waveform's name.
func (wf *Waveform) Name() string { return wf.name }

// SetName renames the waveform.
func (wf *Waveform) SetName(name string) { wf.name = name }

// Precision returns the rounding policy of the waveform.
func (wf *Waveform) Precision() axis.Precision { return wf.prec }

// Rule returns the effective append rule: first head, last tail.
func (wf *Waveform) Rule() AppendRule {
	return AppendRule{Head: wf.waves[0].rule.Head, Tail: wf.waves[len(wf.waves)-1].rule.Tail}
}

// Waves returns a copy of the segment list.
func (wf *Waveform) Waves() []*Wave { return append([]*Wave(nil), wf.waves...) }

// NumWaves returns the number of segments.
func (wf *Waveform) NumWaves() int { return len(wf.waves) }

// String summarizes the waveform.
func (wf *Waveform) String() string {
	names := make([]string, len(wf.waves))
	for i, w := range wf.waves {
		names[i] = w.name
	}

	return fmt.Sprintf("name: %s\nwave list: [%s]\nlen: %d\ndx: %g",
		wf.name, strings.Join(names, " "), wf.Len(), wf.Dx())
}

func (wf *Waveform) segments() ([]*Wave, error) {
	if wf == nil {
		return nil, ErrNilSegment
	}

	return wf.Waves(), nil
}

func (wf *Waveform) wireList() ([]*Waveform, []string, error) {
	if wf == nil {
		return nil, nil, ErrNilSegment
	}

	return []*Waveform{wf}, []string{wf.name}, nil
}

// setWaves replaces the list and re-synthesizes. segs must be non-empty.
func (wf *Waveform) setWaves(segs []*Wave) {
	wf.waves = segs
	wf.x, wf.y = synthesize(segs, wf.prec)
}

// -----------------------------------------------------------------------------
// In-place list edits
// -----------------------------------------------------------------------------

// SetWaves replaces the segment list.
func (wf *Waveform) SetWaves(waves []*Wave) error {
	segs, err := Waves(waves).segments()
	if err != nil {
		return fmt.Errorf("SetWaves: %w", err)
	}
	if len(segs) == 0 {
		return fmt.Errorf("SetWaves: %w", ErrEmptyWaveList)
	}
	if _, err := segmentDx(segs); err != nil {
		return fmt.Errorf("SetWaves: %w", err)
	}
	wf.setWaves(segs)

	return nil
}

// Permute reorders the segments: new[i] = old[order[i]]. order must be a
// permutation of 0..NumWaves()-1.
func (wf *Waveform) Permute(order []int) error {
	n := len(wf.waves)
	if len(order) != n {
		return waveErrorf("Permute", ErrBadPermutation, "got %d indices for %d waves", len(order), n)
	}
	seen := make([]bool, n)
	segs := make([]*Wave, n)
	for i, j := range order {
		if j < 0 || j >= n || seen[j] {
			return waveErrorf("Permute", ErrBadPermutation, "index %d", j)
		}
		seen[j] = true
		segs[i] = wf.waves[j]
	}
	wf.setWaves(segs)

	return nil
}

// Remove deletes the segments at indices. Duplicate indices are ignored.
func (wf *Waveform) Remove(indices ...int) error {
	drop := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(wf.waves) {
			return waveErrorf("Remove", ErrIndexOutOfRange, "index %d", i)
		}
		drop[i] = true
	}
	segs := make([]*Wave, 0, len(wf.waves))
	for i, w := range wf.waves {
		if !drop[i] {
			segs = append(segs, w)
		}
	}
	if len(segs) == 0 {
		return fmt.Errorf("Remove: %w", ErrEmptyWaveList)
	}
	wf.setWaves(segs)

	return nil
}

// Insert places seg's waves before position at (at == NumWaves appends).
func (wf *Waveform) Insert(at int, seg Segment) error {
	if at < 0 || at > len(wf.waves) {
		return waveErrorf("Insert", ErrIndexOutOfRange, "index %d", at)
	}
	add, err := segmentsOf(seg)
	if err != nil {
		return fmt.Errorf("Insert: %w", err)
	}
	segs := make([]*Wave, 0, len(wf.waves)+len(add))
	segs = append(segs, wf.waves[:at]...)
	segs = append(segs, add...)
	segs = append(segs, wf.waves[at:]...)
	if _, err := segmentDx(segs); err != nil {
		return fmt.Errorf("Insert: %w", err)
	}
	wf.setWaves(segs)

	return nil
}

// Replace overwrites consecutive segments starting at position at with
// seg's waves; waves past the end of the list are appended.
func (wf *Waveform) Replace(at int, seg Segment) error {
	if at < 0 || at > len(wf.waves) {
		return waveErrorf("Replace", ErrIndexOutOfRange, "index %d", at)
	}
	add, err := segmentsOf(seg)
	if err != nil {
		return fmt.Errorf("Replace: %w", err)
	}
	segs := append([]*Wave(nil), wf.waves...)
	for k, w := range add {
		if at+k < len(segs) {
			segs[at+k] = w
		} else {
			segs = append(segs, w)
		}
	}
	if _, err := segmentDx(segs); err != nil {
		return fmt.Errorf("Replace: %w", err)
	}
	wf.setWaves(segs)

	return nil
}

// segmentsOf resolves the Segment variant.
func segmentsOf(seg Segment) ([]*Wave, error) {
	if seg == nil {
		return nil, ErrNilSegment
	}

	return seg.segments()
}

// -----------------------------------------------------------------------------
// Constructors of new waveforms
// -----------------------------------------------------------------------------

// Append returns a new Waveform with seg's waves after the receiver's. The
// name is the receiver's.
func (wf *Waveform) Append(seg Segment) (*Waveform, error) {
	add, err := segmentsOf(seg)
	if err != nil {
		return nil, fmt.Errorf("Append: %w", err)
	}
	segs := make([]*Wave, 0, len(wf.waves)+len(add))
	segs = append(segs, wf.waves...)
	segs = append(segs, add...)
	out, err := newWaveform(segs, wf.name, wf.prec)
	if err != nil {
		return nil, fmt.Errorf("Append: %w", err)
	}

	return out, nil
}

// Repeat returns a new Waveform whose segment list is the receiver's
// repeated n times.
func (wf *Waveform) Repeat(n int) (*Waveform, error) {
	if n < 1 {
		return nil, waveErrorf("Repeat", ErrBadCount, "n=%d", n)
	}
	segs := make([]*Wave, 0, n*len(wf.waves))
	for i := 0; i < n; i++ {
		segs = append(segs, wf.waves...)
	}

	return newWaveform(segs, wf.name, wf.prec)
}

// Clone returns an independent copy.
func (wf *Waveform) Clone() *Waveform {
	return &Waveform{
		waves: append([]*Wave(nil), wf.waves...),
		name:  wf.name,
		x:     append([]float64{}, wf.x...),
		y:     append([]float64{}, wf.y...),
		prec:  wf.prec,
	}
}

// Split returns one single-segment Waveform per segment.
func (wf *Waveform) Split() []*Waveform {
	out := make([]*Waveform, len(wf.waves))
	for i, w := range wf.waves {
		out[i], _ = newWaveform([]*Wave{w}, w.name, wf.prec)
	}

	return out
}

// ToQubitChannel wraps the waveform as a single-wire channel.
func (wf *Waveform) ToQubitChannel() *QubitChannel {
	qc, _ := NewQubitChannel(wf)

	return qc
}
