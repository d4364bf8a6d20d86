// SPDX-License-Identifier: MIT

// Package wave holds the waveform data model: Wave, Waveform and
// QubitChannel.
//
// A Wave is one sampled segment (x, y) with a name and an AppendRule. It is
// immutable; arithmetic returns new waves. Binary operations use the axis
// of the longer operand and pass its extra samples through unchanged. Note
// that Neg reverses a wave in time rather than negating it.
//
// A Waveform stitches an ordered list of waves into one continuous (x, y).
// At every junction the previous tail rule and the next head rule decide
// the splice:
//
//	soft + soft  -> one shared sample, the mean of both boundary values
//	hard + soft  -> one shared sample, the previous value
//	soft + hard  -> one shared sample, the next value
//	hard + hard  -> no sharing, the next segment starts one period later
//
// For example [1 1 1] + [2 2 2], both soft, gives [1 1 1.5 2 2].
//
// A QubitChannel bundles parallel waveforms ("wires", e.g. I, Q and a
// marker) that always share one sample count. Channels concatenate wire by
// wire and are padded with zero blocks to line up with each other.
//
// Time values are rounded with an axis.Precision (WithPrecision). Derived
// values inherit the precision of the value they come from.
//
//	cat := shape.NewCatalog()
//	g, _ := wave.FromShape(cat, shape.SetFunc("gaussian",
//		map[string]float64{"peak_x": 20e-9, "sigma": 5e-9}, 40e-9, 1e9, "g"))
//	idle, _ := wave.FromShape(cat, shape.SetFunc("const",
//		map[string]float64{"lv": 0}, 10e-9, 1e9, "idle"))
//	wf, _ := wave.NewWaveform([]*wave.Wave{g, idle, g}, "xy")
//	qc, _ := wave.NewQubitChannel(wf, wf.Clone())
//	qc.SetWireNames("I", "Q")
package wave
