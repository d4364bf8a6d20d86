// SPDX-License-Identifier: MIT

// Package store persists waves, waveforms, qubit channels, gates and
// circuits as msgpack files, one file per named object.
//
// Files are named after the object: <name>.wtobj for Wave, Waveform and
// QubitChannel, <name>.gate for gates and <name>.qckt for circuits. Each
// file starts with an envelope carrying the kind and format version, so
// Load can return the right type and the typed loaders can refuse a file
// of another kind.
//
//	s := store.New("pulses", store.WithNamer(askUser))
//	path, err := s.Save(gate)
//	g, err := s.LoadGate(path)
//
// Encode and Decode work on any io.Writer / io.Reader for callers that
// keep objects elsewhere.
package store
