// SPDX-License-Identifier: MIT

package circuit_test

import (
	"testing"

	"github.com/katalvlaran/awgwave/circuit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircuit_View(t *testing.T) {
	c, err := circuit.New([]string{"q0"}, 2, []string{"ro"}, circuit.WithName("demo"))
	require.NoError(t, err)
	g, err := circuit.NewGate("H", channel(t, "q0", 3, 1))
	require.NoError(t, err)
	require.NoError(t, c.AssignGate(g, map[string]circuit.Position{"q0": circuit.Pos("q0", 0)}))
	require.NoError(t, c.Assign(channel(t, "r", 5, 1), circuit.Pos("ro", 1)))

	v := c.View(false)
	for _, want := range []string{"demo", "q0", "ro", "H", "QC", "─"} {
		assert.Contains(t, v, want)
	}

	require.NoError(t, c.Compile())
	v = c.View(true)
	assert.Contains(t, v, "compiled")
	assert.Contains(t, v, "[3]")
	assert.Contains(t, v, "[5]")
	assert.Contains(t, v, "(3)", "ro filled in slot 0")
	assert.Contains(t, v, "(5)", "q0 filled in slot 1")
	assert.Contains(t, v, "= 7")

	assert.Equal(t, "Circuit[demo](q0 ro; 2 slots, compiled=true)", c.String())
}

// TestCircuit_ViewNamedNull renders an assigned channel called "null" as an
// assigned cell.
func TestCircuit_ViewNamedNull(t *testing.T) {
	c, err := circuit.New([]string{"q0"}, 1, nil)
	require.NoError(t, err)
	require.NoError(t, c.Assign(channel(t, "null", 3, 1), circuit.Pos("q0", 0)))
	require.NoError(t, c.Compile())

	v := c.View(true)
	assert.Contains(t, v, "[3]")
	assert.NotContains(t, v, "(3)")
}
