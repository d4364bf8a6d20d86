// SPDX-License-Identifier: MIT
// Package: awgwave/wave
//
// align.go - zero padding, offsets and pairwise alignment of waveforms.
//
// All padding is computed in samples. A zero block of m samples changes a
// waveform's length by m+c, where c in {-1, 0} depends only on the junction
// the block creates, so padded synthesizes once with m=1 and then solves
// for m exactly.
//
// Contract (strict):
//   - Padding blocks are zeros on the receiver's period, else the
//     reference's; with neither known the call fails with ErrNoSampleRate.
//   - Operands with different known periods fail with
//     ErrSampleRateMismatch.
//   - Offset and FillTotalPoints return new values;
//     AlignWith mutates both operands or neither.

package wave

import (
	"fmt"
	"math"
)

// nullName labels zero blocks.
const nullName = "null"

// padded returns wf's segment list with a zero block of rule at the head or
// tail, sized so that the synthesized length is exactly target.
func (wf *Waveform) padded(target int, atHead bool, rule AppendRule, dx float64) ([]*Wave, error) {
	if target == wf.Len() {
		return wf.Waves(), nil
	}
	if dx == 0 {
		return nil, ErrNoSampleRate
	}
	build := func(m int) []*Wave {
		blk := zeros(m, dx, nullName, rule, wf.prec)
		segs := make([]*Wave, 0, len(wf.waves)+1)
		if atHead {
			segs = append(segs, blk)
			return append(segs, wf.waves...)
		}
		segs = append(segs, wf.waves...)

		return append(segs, blk)
	}

	trial, _ := synthesize(build(1), wf.prec)
	m := target - len(trial) + 1
	if m < 1 {
		return nil, fmt.Errorf("cannot pad %d samples to %d: %w", wf.Len(), target, ErrAlignment)
	}
	segs := build(m)
	if got, _ := synthesize(segs, wf.prec); len(got) != target {
		return nil, fmt.Errorf("padded to %d samples, want %d: %w", len(got), target, ErrAlignment)
	}

	return segs, nil
}

// padDx picks the period for a padding block: the receiver's, else ref's.
func padDx(wf *Waveform, ref Sized) float64 {
	if dx := wf.Dx(); dx != 0 {
		return dx
	}
	if ref != nil {
		return ref.Dx()
	}

	return 0
}

// sameRate reports whether two periods agree; an unknown period (0) agrees
// with anything.
func sameRate(a, b float64) bool {
	return a == 0 || b == 0 || a == b
}

// Offset returns a copy of wf shifted by span seconds: a positive span pads
// zeros at the head with rule (own head, soft), a negative span pads the
// tail with rule (soft, own tail). |span| below one sample period returns an
// unchanged copy.
func (wf *Waveform) Offset(span float64) (*Waveform, error) {
	if math.IsNaN(span) || math.IsInf(span, 0) {
		return nil, waveErrorf("Offset", ErrInvalidSpan, "%g", span)
	}
	span = wf.prec.RoundTime(span)
	dx := wf.Dx()
	if span == 0 || math.Abs(span) < dx {
		return wf.Clone(), nil
	}
	if dx == 0 {
		return nil, fmt.Errorf("Offset: %w", ErrNoSampleRate)
	}

	rule := wf.Rule()
	m := int(math.Round(math.Abs(span)/dx)) + 1
	segs := make([]*Wave, 0, len(wf.waves)+1)
	if span > 0 {
		segs = append(segs, zeros(m, dx, nullName, AppendRule{Head: rule.Head}, wf.prec))
		segs = append(segs, wf.waves...)
	} else {
		segs = append(segs, wf.waves...)
		segs = append(segs, zeros(m, dx, nullName, AppendRule{Tail: rule.Tail}, wf.prec))
	}

	return newWaveform(segs, wf.name, wf.prec)
}

// FillTotalPoints returns a copy of wf zero-padded at the tail to exactly n
// samples; n <= Len() returns an unchanged copy.
func (wf *Waveform) FillTotalPoints(n int) (*Waveform, error) {
	if n <= wf.Len() {
		return wf.Clone(), nil
	}
	segs, err := wf.padded(n, false, AppendRule{Tail: wf.Rule().Tail}, wf.Dx())
	if err != nil {
		return nil, fmt.Errorf("FillTotalPoints: %w", err)
	}

	return newWaveform(segs, wf.name, wf.prec)
}

// AlignWith pads wf and other to a common sample count, updating BOTH in
// place. Either both are updated or, on error, neither is.
//
//	(true,  false): wf gets a head block, other a tail block; both end up
//	                Len(wf)+Len(other) long.
//	(false, true):  mirror image: wf gets a tail block, other a head block.
//	(true,  true):  the shorter one is padded at its tail with rule
//	                (hard, longer tail).
//	(false, false): the shorter one is padded at its head with rule
//	                (longer head, hard).
//
// The two mixed modes always place the operands one after the other, so
// equal lengths are padded too. In the two matching modes equal lengths are
// left untouched. Aligning a waveform with itself is a no-op.
//
// Complexity: O(N) for N = Len(wf)+Len(other), two synthesis passes per
// padded operand.
func (wf *Waveform) AlignWith(other *Waveform, useFirstHead, alignSecondHead bool) error {
	if other == nil {
		return fmt.Errorf("AlignWith: %w", ErrNilSegment)
	}
	mixed := useFirstHead != alignSecondHead
	if other == wf || (!mixed && wf.Len() == other.Len()) {
		return nil
	}
	if !sameRate(wf.Dx(), other.Dx()) {
		return waveErrorf("AlignWith", ErrSampleRateMismatch, "%g vs %g", wf.Dx(), other.Dx())
	}
	dx := padDx(wf, other)

	if mixed {
		target := wf.Len() + other.Len()
		a, err := wf.padded(target, useFirstHead, other.Rule(), dx)
		if err != nil {
			return fmt.Errorf("AlignWith: %w", err)
		}
		b, err := other.padded(target, alignSecondHead, wf.Rule(), dx)
		if err != nil {
			return fmt.Errorf("AlignWith: %w", err)
		}
		wf.setWaves(a)
		other.setWaves(b)

		return nil
	}

	longer, shorter := wf, other
	if other.Len() > wf.Len() {
		longer, shorter = other, wf
	}
	var (
		segs []*Wave
		err  error
	)
	if useFirstHead {
		segs, err = shorter.padded(longer.Len(), false, AppendRule{Head: true, Tail: longer.Rule().Tail}, dx)
	} else {
		segs, err = shorter.padded(longer.Len(), true, AppendRule{Head: longer.Rule().Head, Tail: true}, dx)
	}
	if err != nil {
		return fmt.Errorf("AlignWith: %w", err)
	}
	shorter.setWaves(segs)

	return nil
}
