// SPDX-License-Identifier: MIT

package circuit_test

import (
	"testing"

	"github.com/katalvlaran/awgwave/wave"
	"github.com/stretchr/testify/require"
)

// flatWire builds a hard waveform of n samples of v on the unit axis.
func flatWire(t testing.TB, name string, v float64, n int) *wave.Waveform {
	t.Helper()
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = float64(i)
		y[i] = v
	}
	w, err := wave.New(x, y, name, wave.Hard)
	require.NoError(t, err)

	return w.ToWaveform()
}

// channel builds a named channel with one flat wire per value, all n long.
func channel(t testing.TB, name string, n int, vs ...float64) *wave.QubitChannel {
	t.Helper()
	wires := make([]*wave.Waveform, len(vs))
	for i, v := range vs {
		wires[i] = flatWire(t, "w", v, n)
	}
	qc, err := wave.NewQubitChannel(wires...)
	require.NoError(t, err)
	qc.SetName(name)

	return qc
}
