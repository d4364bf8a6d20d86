// SPDX-License-Identifier: MIT

package wave_test

import (
	"testing"

	"github.com/katalvlaran/awgwave/wave"
	"github.com/stretchr/testify/require"
)

// mk builds a wave on the unit axis 0, 1, ..., len(ys)-1.
func mk(t testing.TB, name string, rule wave.AppendRule, ys ...float64) *wave.Wave {
	t.Helper()
	x := make([]float64, len(ys))
	for i := range x {
		x[i] = float64(i)
	}
	w, err := wave.New(x, ys, name, rule)
	require.NoError(t, err)

	return w
}

// flat builds n samples of value v on the unit axis.
func flat(t testing.TB, name string, rule wave.AppendRule, v float64, n int) *wave.Wave {
	t.Helper()
	ys := make([]float64, n)
	for i := range ys {
		ys[i] = v
	}

	return mk(t, name, rule, ys...)
}

// wfOf stitches waves into a waveform, failing the test on error.
func wfOf(t testing.TB, name string, ws ...*wave.Wave) *wave.Waveform {
	t.Helper()
	wf, err := wave.NewWaveform(ws, name)
	require.NoError(t, err)

	return wf
}

// unitAxis returns 0..n-1.
func unitAxis(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i)
	}

	return x
}
