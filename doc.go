// Package awgwave builds arbitrary-waveform-generator (AWG) sample streams
// for superconducting-qubit experiments, from pulse shapes up to whole
// multi-channel circuits.
//
// 🚀 What is awgwave?
//
//	A small, deterministic library that brings together:
//		• Shapes: a catalog of parametric pulses (gaussian, flat-top, DRAG, chirp…)
//		• Waves: immutable sampled segments with element-wise arithmetic
//		• Waveforms: segment lists stitched by soft / hard junction rules
//		• Qubit channels: parallel wires (I, Q, marker) kept on one time axis
//		• Circuits: a channel × time-slot diagram compiled into AWG outputs
//		• Store: msgpack persistence of every object above
//
// ✨ Why choose awgwave?
//
//   - Exact lengths: padding and alignment are computed in samples
//   - Reproducible: compiling the same diagram twice gives identical output
//   - Explicit precision: one axis.Precision rounds every time axis
//   - Declarative: pulses can be described in TOML files
//
// Packages, leaf first:
//
//	axis/     time/frequency rounding policy (Precision)
//	shape/    shape catalog, descriptors, TOML descriptor files
//	wave/     Wave, Waveform, QubitChannel, alignment, sampling, spectrum
//	circuit/  Gate, gate library, Circuit, Compile, text view
//	store/    .wtobj / .gate / .qckt files
//
// Junctions at a glance (previous tail + next head):
//
//	soft + soft  [1 1 1] + [2 2 2] → [1 1 1.5 2 2]
//	hard + hard  [1 1 1] + [2 2 2] → [1 1 1 2 2 2]
//
//	go get github.com/katalvlaran/awgwave
package awgwave
