// SPDX-License-Identifier: MIT

package wave_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/awgwave/wave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWaveform_Offset pads zeros at the head or tail.
func TestWaveform_Offset(t *testing.T) {
	wf := flat(t, "w", wave.Hard, 1, 3).ToWaveform()

	right, err := wf.Offset(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 1, 1, 1}, right.Y())
	assert.Equal(t, unitAxis(5), right.X())
	assert.Equal(t, wave.Hard, right.Rule())
	assert.Equal(t, "w", right.Name())

	left, err := wf.Offset(-2)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1, 0, 0}, left.Y())

	same, err := wf.Offset(0.4)
	require.NoError(t, err)
	assert.Equal(t, wf.Y(), same.Y())

	_, err = wf.Offset(math.NaN())
	assert.ErrorIs(t, err, wave.ErrInvalidSpan)

	_, err = mk(t, "one", wave.Hard, 1).ToWaveform().Offset(5)
	assert.ErrorIs(t, err, wave.ErrNoSampleRate)

	assert.Equal(t, 3, wf.Len(), "receiver unchanged")
}

// TestWaveform_FillTotalPoints reaches the exact sample count.
func TestWaveform_FillTotalPoints(t *testing.T) {
	hard := flat(t, "h", wave.Hard, 1, 3).ToWaveform()
	got, err := hard.FillTotalPoints(7)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1, 0, 0, 0, 0}, got.Y())

	soft := flat(t, "s", wave.Soft, 1, 3).ToWaveform()
	got, err = soft.FillTotalPoints(5)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 0.5, 0, 0}, got.Y())

	for n := 4; n < 12; n++ {
		got, err := soft.FillTotalPoints(n)
		require.NoError(t, err)
		assert.Equal(t, n, got.Len())
	}

	same, err := hard.FillTotalPoints(2)
	require.NoError(t, err)
	assert.Equal(t, 3, same.Len())
}

// TestWaveform_AlignWithModes covers the four flag combinations.
func TestWaveform_AlignWithModes(t *testing.T) {
	cases := []struct {
		name          string
		first, second bool
		wantA, wantB  []float64
	}{
		{"TailPadShorter", true, true,
			[]float64{1, 1, 1, 0, 0}, []float64{2, 2, 2, 2, 2}},
		{"HeadPadShorter", false, false,
			[]float64{0, 0, 1, 1, 1}, []float64{2, 2, 2, 2, 2}},
		{"FirstHeadSecondTail", true, false,
			[]float64{0, 0, 0, 0, 0, 1, 1, 1}, []float64{2, 2, 2, 2, 2, 0, 0, 0}},
		{"FirstTailSecondHead", false, true,
			[]float64{1, 1, 1, 0, 0, 0, 0, 0}, []float64{0, 0, 0, 2, 2, 2, 2, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := flat(t, "a", wave.Hard, 1, 3).ToWaveform()
			b := flat(t, "b", wave.Hard, 2, 5).ToWaveform()

			require.NoError(t, a.AlignWith(b, tc.first, tc.second))
			assert.Equal(t, tc.wantA, a.Y())
			assert.Equal(t, tc.wantB, b.Y())
			assert.Equal(t, a.X(), b.X())
		})
	}
}

// TestWaveform_AlignWithSoftRules equalizes lengths whatever the junction.
func TestWaveform_AlignWithSoftRules(t *testing.T) {
	rules := []wave.AppendRule{wave.Soft, wave.Hard, {Head: true}, {Tail: true}}
	modes := [][2]bool{{true, true}, {false, false}, {true, false}, {false, true}}
	for _, ra := range rules {
		for _, rb := range rules {
			for _, m := range modes {
				a := flat(t, "a", ra, 1, 4).ToWaveform()
				b := flat(t, "b", rb, 2, 9).ToWaveform()
				require.NoError(t, a.AlignWith(b, m[0], m[1]))
				assert.Equal(t, a.Len(), b.Len(), "rules %v/%v mode %v", ra, rb, m)
			}
		}
	}
}

// TestWaveform_AlignWithNoop leaves equal lengths alone in the matching
// modes, and self in every mode.
func TestWaveform_AlignWithNoop(t *testing.T) {
	for _, m := range [][2]bool{{true, true}, {false, false}} {
		a := flat(t, "a", wave.Hard, 1, 3).ToWaveform()
		b := flat(t, "b", wave.Hard, 2, 3).ToWaveform()
		require.NoError(t, a.AlignWith(b, m[0], m[1]))
		assert.Equal(t, []float64{1, 1, 1}, a.Y())
		assert.Equal(t, []float64{2, 2, 2}, b.Y())
	}
	a := flat(t, "a", wave.Hard, 1, 3).ToWaveform()
	require.NoError(t, a.AlignWith(a, true, false))
	assert.Equal(t, 3, a.Len())
	assert.ErrorIs(t, a.AlignWith(nil, true, true), wave.ErrNilSegment)
}

// TestWaveform_AlignWithMixedEqualLengths still sequences equal operands.
func TestWaveform_AlignWithMixedEqualLengths(t *testing.T) {
	a := flat(t, "a", wave.Hard, 1, 4).ToWaveform()
	b := flat(t, "b", wave.Hard, 2, 4).ToWaveform()
	require.NoError(t, a.AlignWith(b, true, false))
	assert.Equal(t, []float64{0, 0, 0, 0, 1, 1, 1, 1}, a.Y())
	assert.Equal(t, []float64{2, 2, 2, 2, 0, 0, 0, 0}, b.Y())
	assert.Equal(t, a.X(), b.X())

	c := flat(t, "c", wave.Hard, 1, 4).ToWaveform()
	d := flat(t, "d", wave.Hard, 2, 4).ToWaveform()
	require.NoError(t, c.AlignWith(d, false, true))
	assert.Equal(t, []float64{1, 1, 1, 1, 0, 0, 0, 0}, c.Y())
	assert.Equal(t, []float64{0, 0, 0, 0, 2, 2, 2, 2}, d.Y())
}

// TestWaveform_AlignWithRateMismatch updates neither operand.
func TestWaveform_AlignWithRateMismatch(t *testing.T) {
	a := flat(t, "a", wave.Hard, 1, 3).ToWaveform()
	w, err := wave.New([]float64{0, 2, 4, 6, 8}, []float64{2, 2, 2, 2, 2}, "b", wave.Hard)
	require.NoError(t, err)
	b := w.ToWaveform()

	assert.ErrorIs(t, a.AlignWith(b, true, true), wave.ErrSampleRateMismatch)
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, 5, b.Len())
}
