// SPDX-License-Identifier: MIT

package circuit_test

import (
	"testing"

	"github.com/katalvlaran/awgwave/circuit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Layout(t *testing.T) {
	c, err := circuit.New([]string{"q0", "q1"}, 3, []string{"ro"}, circuit.WithName("bell"))
	require.NoError(t, err)
	assert.Equal(t, "bell", c.Name())
	assert.Equal(t, 3, c.Rows())
	assert.Equal(t, 3, c.Slots())
	assert.Equal(t, []string{"q0", "q1", "ro"}, c.ChannelNames())
	assert.Equal(t, map[string]int{"q0": 0, "q1": 1}, c.Qubits())
	assert.Equal(t, map[string]int{"ro": 2}, c.Auxiliary())

	row, err := c.Index("ro")
	require.NoError(t, err)
	assert.Equal(t, 2, row)
	_, err = c.Index("q9")
	assert.ErrorIs(t, err, circuit.ErrUnknownChannel)
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name string
		q    []string
		n    int
		aux  []string
		want error
	}{
		{"no rows", nil, 1, nil, circuit.ErrBadSize},
		{"no slots", []string{"q0"}, 0, nil, circuit.ErrBadSize},
		{"duplicate qubit", []string{"q0", "q0"}, 1, nil, circuit.ErrDuplicateName},
		{"qubit and auxiliary", []string{"q0"}, 1, []string{"q0"}, circuit.ErrDuplicateName},
		{"empty name", []string{""}, 1, nil, circuit.ErrUnnamedChannel},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := circuit.New(tc.q, tc.n, tc.aux)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewIndexed(t *testing.T) {
	c, err := circuit.NewIndexed(map[string]int{"q1": 0, "q0": 2}, 1, map[string]int{"ro": 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"q1", "ro", "q0"}, c.ChannelNames())

	_, err = circuit.NewIndexed(map[string]int{"q0": 0, "q1": 2}, 1, nil)
	assert.ErrorIs(t, err, circuit.ErrIndexOutOfRange)
	_, err = circuit.NewIndexed(map[string]int{"q0": -1}, 1, nil)
	assert.ErrorIs(t, err, circuit.ErrIndexOutOfRange)
	_, err = circuit.NewIndexed(map[string]int{"q0": 0}, 1, map[string]int{"ro": 0})
	assert.ErrorIs(t, err, circuit.ErrDuplicateIndex)
}

func TestCircuit_AssignAndAt(t *testing.T) {
	c, err := circuit.New([]string{"q0", "q1"}, 2, nil)
	require.NoError(t, err)

	a := channel(t, "a", 3, 1)
	require.NoError(t, c.Assign(a, circuit.Pos("q0", 0)))
	require.NoError(t, c.Place(a, circuit.Position{Row: 1, Time: 4}, "H"))
	assert.Equal(t, 5, c.Slots(), "time axis grows on demand")

	got, label, err := c.At(circuit.Position{Row: 1, Time: 4})
	require.NoError(t, err)
	assert.Equal(t, "H", label)
	assert.Equal(t, a.Y(), got.Y())

	got.SetName("changed")
	again, _, err := c.At(circuit.Position{Row: 1, Time: 4})
	require.NoError(t, err)
	assert.Equal(t, "a", again.Name(), "cells hold clones")

	empty, label, err := c.At(circuit.Pos("q1", 0))
	require.NoError(t, err)
	assert.Nil(t, empty)
	assert.Empty(t, label)

	require.NoError(t, c.Clear(circuit.Position{Row: 1, Time: 4}))
	empty, _, err = c.At(circuit.Position{Row: 1, Time: 4})
	require.NoError(t, err)
	assert.Nil(t, empty)
	assert.Equal(t, 5, c.Slots(), "never shrinks")

	assert.Len(t, c.Cells(), 1)
}

func TestCircuit_AssignErrors(t *testing.T) {
	c, err := circuit.New([]string{"q0"}, 1, nil)
	require.NoError(t, err)
	a := channel(t, "a", 3, 1)

	assert.ErrorIs(t, c.Assign(nil, circuit.Pos("q0", 0)), circuit.ErrNilChannel)
	assert.ErrorIs(t, c.Assign(a, circuit.Pos("nope", 0)), circuit.ErrUnknownChannel)
	assert.ErrorIs(t, c.Assign(a, circuit.Position{Row: 1}), circuit.ErrIndexOutOfRange)
	assert.ErrorIs(t, c.Assign(a, circuit.Pos("q0", -1)), circuit.ErrIndexOutOfRange)
	_, _, err = c.At(circuit.Pos("q0", 3))
	assert.ErrorIs(t, err, circuit.ErrIndexOutOfRange)
	assert.Equal(t, 1, c.Slots())
}

func TestCircuit_AssignGateIsAtomic(t *testing.T) {
	c, err := circuit.New([]string{"q0", "q1"}, 1, nil)
	require.NoError(t, err)
	g, err := circuit.NewGate("CZ", channel(t, "a", 3, 1), channel(t, "b", 3, 2))
	require.NoError(t, err)

	err = c.AssignGate(g, map[string]circuit.Position{
		"a": circuit.Pos("q0", 0),
		"b": circuit.Pos("q9", 0),
	})
	assert.ErrorIs(t, err, circuit.ErrUnknownChannel)
	assert.Empty(t, c.Cells())

	err = c.AssignGate(g, map[string]circuit.Position{"z": circuit.Pos("q0", 0)})
	assert.ErrorIs(t, err, circuit.ErrUnknownChannel)

	require.NoError(t, c.AssignGate(g, map[string]circuit.Position{
		"a": circuit.Pos("q0", 0),
		"b": circuit.Pos("q1", 0),
	}))
	cells := c.Cells()
	require.Len(t, cells, 2)
	assert.Equal(t, "CZ", cells[0].Label)
	assert.Equal(t, "a", cells[0].Channel.Name())
	assert.Equal(t, 1, cells[1].Row)
}
