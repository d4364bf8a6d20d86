// SPDX-License-Identifier: MIT

package circuit_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/katalvlaran/awgwave/circuit"
	"github.com/katalvlaran/awgwave/shape"
	"github.com/katalvlaran/awgwave/wave"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCompile_NullFillAndDroppedSlot checks steps 2, 4 and 5 on a staircase.
func TestCompile_NullFillAndDroppedSlot(t *testing.T) {
	c, err := circuit.New([]string{"q0", "q1"}, 3, nil)
	require.NoError(t, err)
	require.NoError(t, c.Assign(channel(t, "a", 3, 1), circuit.Pos("q0", 0)))
	require.NoError(t, c.Assign(channel(t, "b", 3, 2), circuit.Pos("q1", 2)))

	require.NoError(t, c.Compile())
	assert.True(t, c.IsCompiled())

	q0, err := c.Output("q0")
	require.NoError(t, err)
	q1, err := c.Output("q1")
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 1, 1, 0, 0}}, q0, "hard tail keeps its value at the shared sample")
	assert.Equal(t, [][]float64{{0, 0, 2, 2, 2}}, q1, "hard head keeps its value at the shared sample")

	diagram, err := c.CompiledDiagram()
	require.NoError(t, err)
	require.Len(t, diagram, 2)
	assert.Len(t, diagram[0], 2, "empty slot 1 dropped")
	assert.Equal(t, "null", diagram[1][0].Name())

	chs, err := c.Compiled()
	require.NoError(t, err)
	assert.Equal(t, "q0", chs[0].Name())
	assert.Equal(t, []float64{0, 1, 2, 3, 4}, chs[0].X())
}

// TestCompile_AlignsSlot pads the shorter cells of one slot.
func TestCompile_AlignsSlot(t *testing.T) {
	c, err := circuit.New([]string{"q0", "q1"}, 1, nil)
	require.NoError(t, err)
	require.NoError(t, c.Assign(channel(t, "a", 3, 1), circuit.Pos("q0", 0)))
	require.NoError(t, c.Assign(channel(t, "b", 5, 2), circuit.Pos("q1", 0)))

	require.NoError(t, c.Compile())
	q0, err := c.Output("q0")
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 1, 1, 0, 0}}, q0)

	cell, _, err := c.At(circuit.Pos("q0", 0))
	require.NoError(t, err)
	assert.Equal(t, 3, cell.Len(), "the diagram itself is not aligned")
}

func TestCompile_Deterministic(t *testing.T) {
	c, err := circuit.New([]string{"q0", "q1"}, 2, nil)
	require.NoError(t, err)
	require.NoError(t, c.Assign(channel(t, "a", 4, 1, -1), circuit.Pos("q0", 0)))
	require.NoError(t, c.Assign(channel(t, "b", 6, 2, 3), circuit.Pos("q1", 1)))
	require.NoError(t, c.Assign(channel(t, "c", 2, 5, 5), circuit.Pos("q0", 1)))

	require.NoError(t, c.Compile())
	first, err := c.Compiled()
	require.NoError(t, err)
	require.NoError(t, c.Compile())
	second, err := c.Compiled()
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].X(), second[i].X())
		assert.Equal(t, first[i].Y(), second[i].Y())
	}
}

// TestCompile_Unassigned fails before any synthesis and clears old output.
func TestCompile_Unassigned(t *testing.T) {
	c, err := circuit.New([]string{"q0", "q1"}, 1, nil)
	require.NoError(t, err)
	require.NoError(t, c.Assign(channel(t, "a", 3, 1), circuit.Pos("q0", 0)))
	require.NoError(t, c.Assign(channel(t, "b", 3, 1), circuit.Pos("q1", 0)))
	require.NoError(t, c.Compile())

	require.NoError(t, c.Clear(circuit.Pos("q1", 0)))
	err = c.Compile()
	assert.ErrorIs(t, err, circuit.ErrUnassignedChannel)
	assert.Contains(t, err.Error(), "q1")
	assert.False(t, c.IsCompiled())

	_, err = c.Compiled()
	assert.ErrorIs(t, err, circuit.ErrNotCompiled)
	_, err = c.Output("q0")
	assert.ErrorIs(t, err, circuit.ErrNotCompiled)
	_, err = c.CompiledDiagram()
	assert.ErrorIs(t, err, circuit.ErrNotCompiled)
}

func TestCompile_WireCountMismatch(t *testing.T) {
	c, err := circuit.New([]string{"q0"}, 2, nil)
	require.NoError(t, err)
	require.NoError(t, c.Assign(channel(t, "a", 3, 1), circuit.Pos("q0", 0)))
	require.NoError(t, c.Assign(channel(t, "b", 3, 1, 2), circuit.Pos("q0", 1)))

	err = c.Compile()
	assert.ErrorIs(t, err, circuit.ErrCompile)
	assert.ErrorIs(t, err, wave.ErrWireCountMismatch)
	assert.False(t, c.IsCompiled())
}

// TestCompile_Gates runs the gate library through a two-row circuit.
func TestCompile_Gates(t *testing.T) {
	cat := shape.NewCatalog()
	x, err := circuit.XGate(cat, circuit.Pulse{Sigma: 1, Flat: 2, SampleRate: 1}, "q0")
	require.NoError(t, err)
	ro, err := circuit.ReadoutGate(cat,
		circuit.Pulse{Sigma: 1, Flat: 4, SampleRate: 1},
		circuit.Pulse{Sigma: 1, SampleRate: 1}, "ro")
	require.NoError(t, err)

	var buf bytes.Buffer
	c, err := circuit.New([]string{"q0"}, 2, []string{"ro"},
		circuit.WithLogger(zerolog.New(&buf)), circuit.WithName("x-then-read"))
	require.NoError(t, err)
	require.NoError(t, c.AssignGate(x, map[string]circuit.Position{"q0": circuit.Pos("q0", 0)}))
	require.NoError(t, c.AssignGate(ro, map[string]circuit.Position{"ro": circuit.Pos("ro", 1)}))
	require.NoError(t, c.Compile())

	chs, err := c.Compiled()
	require.NoError(t, err)
	// 7 samples of X and 9 of readout share one sample per row.
	assert.Equal(t, 15, chs[0].Len())
	assert.Equal(t, 15, chs[1].Len())
	assert.Equal(t, []string{"I", "Q"}, chs[0].WireNames())
	assert.Equal(t, []string{"M", "R"}, chs[1].WireNames())

	q0, err := c.Output("q0")
	require.NoError(t, err)
	assert.InDelta(t, math.Exp(-2), q0[0][0], 1e-12)
	assert.Equal(t, 1.0, q0[0][3])
	assert.Equal(t, 0.0, q0[0][14])
	assert.Equal(t, make([]float64, 15), q0[1])

	out, err := c.Output("ro")
	require.NoError(t, err)
	assert.Equal(t, 0.0, out[1][0])
	assert.InDelta(t, math.Exp(-0.5), out[1][14], 1e-12)

	assert.Contains(t, buf.String(), `"component":"circuit"`)
	assert.Contains(t, buf.String(), "compile finished")
}
