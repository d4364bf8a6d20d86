// SPDX-License-Identifier: MIT

package circuit_test

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/katalvlaran/awgwave/circuit"
	"github.com/katalvlaran/awgwave/shape"
	"github.com/katalvlaran/awgwave/wave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGate(t *testing.T) {
	a := channel(t, "q0", 3, 1, 1)
	b := channel(t, "q1", 5, 2)
	g, err := circuit.NewGate("CX", a, b)
	require.NoError(t, err)

	assert.Equal(t, "CX", g.Name())
	assert.NotEqual(t, uuid.Nil, g.ID())
	assert.Equal(t, 2, g.NumQubits())
	assert.Equal(t, []string{"q0", "q1"}, g.Channels())
	assert.Equal(t, 5, g.Len())
	assert.Equal(t, "Gate[CX](q0:2 wires, q1:1 wires)", g.String())

	ch, err := g.Channel("q0")
	require.NoError(t, err)
	assert.Equal(t, 5, ch.Len(), "channels are aligned to the longest")
	assert.Equal(t, 3, a.Len(), "inputs untouched")

	ch.SetName("other")
	again, err := g.Channel("q0")
	require.NoError(t, err)
	assert.Equal(t, "q0", again.Name())

	_, err = g.Channel("q2")
	assert.ErrorIs(t, err, circuit.ErrUnknownChannel)

	other, err := circuit.NewGate("CX", a)
	require.NoError(t, err)
	assert.NotEqual(t, g.ID(), other.ID())

	id := uuid.New()
	restored, err := circuit.NewGateWithID(id, "CX", a)
	require.NoError(t, err)
	assert.Equal(t, id, restored.ID())
}

func TestNewGate_Errors(t *testing.T) {
	_, err := circuit.NewGate("g")
	assert.ErrorIs(t, err, circuit.ErrNoChannels)
	_, err = circuit.NewGate("g", nil)
	assert.ErrorIs(t, err, circuit.ErrNilChannel)
	_, err = circuit.NewGate("g", channel(t, "", 3, 1))
	assert.ErrorIs(t, err, circuit.ErrUnnamedChannel)
	_, err = circuit.NewGate("g", channel(t, "q0", 3, 1), channel(t, "q0", 3, 1))
	assert.ErrorIs(t, err, circuit.ErrDuplicateChannel)

	slow, err := wave.New([]float64{0, 2}, []float64{1, 1}, "slow", wave.Hard)
	require.NoError(t, err)
	s := slow.ToWaveform().ToQubitChannel()
	s.SetName("q1")
	_, err = circuit.NewGate("g", channel(t, "q0", 3, 1), s)
	assert.ErrorIs(t, err, wave.ErrSampleRateMismatch)
}

func TestLibrary_DriveGates(t *testing.T) {
	cat := shape.NewCatalog()
	p := circuit.Pulse{Sigma: 1, Flat: 2, SampleRate: 1}
	assert.Equal(t, 6.0, p.Span())

	x, err := circuit.XGate(cat, p, "q0")
	require.NoError(t, err)
	assert.Equal(t, "X", x.Name())
	ch, err := x.Channel("q0")
	require.NoError(t, err)
	assert.Equal(t, []string{circuit.WireI, circuit.WireQ}, ch.WireNames())
	assert.Equal(t, 7, ch.Len())

	e2, e05 := math.Exp(-2), math.Exp(-0.5)
	assert.InDeltaSlice(t, []float64{e2, e05, 1, 1, 1, 1, e05}, ch.Y()[0], 1e-12)
	assert.Equal(t, make([]float64, 7), ch.Y()[1])

	y, err := circuit.YGate(cat, circuit.Pulse{Sigma: 1, Flat: 2, Amplitude: 0.5, SampleRate: 1}, "q1")
	require.NoError(t, err)
	ch, err = y.Channel("q1")
	require.NoError(t, err)
	assert.Equal(t, make([]float64, 7), ch.Y()[0])
	assert.Equal(t, 0.5, ch.Y()[1][3])

	_, err = circuit.XGate(cat, circuit.Pulse{Sigma: 0, Flat: 2}, "q0")
	assert.ErrorIs(t, err, shape.ErrBadTimeline)
}

func TestLibrary_ReadoutGate(t *testing.T) {
	cat := shape.NewCatalog()
	g, err := circuit.ReadoutGate(cat,
		circuit.Pulse{Sigma: 1, Flat: 4, SampleRate: 1},
		circuit.Pulse{Sigma: 1, SampleRate: 1}, "ro")
	require.NoError(t, err)
	assert.Equal(t, "READOUT", g.Name())

	ch, err := g.Channel("ro")
	require.NoError(t, err)
	assert.Equal(t, []string{circuit.WireMarker, circuit.WireRead}, ch.WireNames())
	assert.Equal(t, 9, ch.Len())
	assert.Equal(t, []float64{0, 0, 0, 0}, ch.Y()[0][5:], "marker padded at the tail")
	assert.Equal(t, 1.0, ch.Y()[1][4])
}
