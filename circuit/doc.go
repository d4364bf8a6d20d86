// SPDX-License-Identifier: MIT

// Package circuit arranges qubit channels on a channel x time-slot diagram
// and compiles each channel row into one continuous QubitChannel for an
// AWG.
//
// A Circuit has one row per named channel (qubits, then auxiliary channels
// such as readout) and a growing number of time slots. Cells are assigned
// with Assign, Place or AssignGate; a Gate bundles aligned channels built
// elsewhere, and XGate, YGate and ReadoutGate build the common ones from
// gaussian_square pulses.
//
// Compile aligns the cells of every slot, fills empty cells with zeros of
// the right size and concatenates each row:
//
//	c, _ := circuit.New([]string{"q0", "q1"}, 2, []string{"ro"})
//	x, _ := circuit.XGate(cat, circuit.Pulse{Sigma: 4e-9, Flat: 20e-9}, "q0")
//	_ = c.AssignGate(x, map[string]circuit.Position{"q0": circuit.Pos("q0", 0)})
//	...
//	if err := c.Compile(); err != nil { ... }
//	iq, _ := c.Output("q0") // [I samples, Q samples]
//
// Compile logs through zerolog when WithLogger is given.
package circuit
