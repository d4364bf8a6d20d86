// SPDX-License-Identifier: MIT
// Package: awgwave/wave
//
// synthesize.go - stitching an ordered segment list into one axis.
//
// Junction policy, by (previous tail, next head):
//   - soft/soft: one-sample overlap; the shared sample is the mean of the
//     two boundary values.
//   - hard/soft: one-sample overlap; the previous boundary value is kept.
//   - soft/hard: one-sample overlap; the next boundary value is kept.
//   - hard/hard: no overlap; the next segment is appended in full, starting
//     one sample period after the previous last sample. When a segment sits
//     between two hard/hard junctions its final sample is dropped, so a run
//     of k hard-joined segments loses k-2 samples. A one-sample segment in
//     that position vanishes from (x, y) while staying in the list.
//
// Contract (strict):
//   - Zero-length segments are skipped and do not become the "previous"
//     segment.
//   - The first non-empty segment keeps its absolute axis; every other
//     segment contributes its local axis (x - x[0]) shifted by the running
//     offset, the last emitted time.
//   - The final axis is rounded once, with the caller's precision.
//   - Callers validate the list (non-empty, one shared period) beforehand.
//
// Complexity: O(N) time and memory for N total samples.

package wave

import "github.com/katalvlaran/awgwave/axis"

// synthesize returns the stitched (x, y) of segs. The result never aliases
// any segment's arrays.
func synthesize(segs []*Wave, prec axis.Precision) (x, y []float64) {
	live := make([]*Wave, 0, len(segs))
	total := 0
	for _, s := range segs {
		if s.Len() > 0 {
			live = append(live, s)
			total += s.Len()
		}
	}
	if len(live) == 0 {
		return []float64{}, []float64{}
	}

	// Period used for the hard/hard gap: the first known segment step.
	var step float64
	for _, s := range live {
		if d := s.Dx(); d != 0 {
			step = d
			break
		}
	}

	hardJoin := func(i int) bool {
		return live[i-1].rule.Tail && live[i].rule.Head
	}

	x = make([]float64, 0, total)
	y = make([]float64, 0, total)
	x = append(x, live[0].x...)
	y = append(y, live[0].y...)

	for i := 1; i < len(live); i++ {
		prev, next := live[i-1], live[i]
		offset := x[len(x)-1]
		origin := next.x[0]
		last := len(y) - 1

		switch {
		case hardJoin(i):
			for _, t := range next.x {
				x = append(x, offset+step+(t-origin))
			}
			y = append(y, next.y...)
		case prev.rule.Tail:
			y = append(y, next.y[1:]...)
		case next.rule.Head:
			y[last] = next.y[0]
			y = append(y, next.y[1:]...)
		default:
			y[last] = (y[last] + next.y[0]) / 2
			y = append(y, next.y[1:]...)
		}
		if !hardJoin(i) {
			for _, t := range next.x[1:] {
				x = append(x, offset+(t-origin))
			}
		}

		// Interior segment of a hard/hard run loses its last sample; a
		// one-sample segment here is dropped entirely.
		if hardJoin(i) && i+1 < len(live) && hardJoin(i+1) {
			x = x[:len(x)-1]
			y = y[:len(y)-1]
		}
	}

	return prec.RoundTimes(x), y
}
