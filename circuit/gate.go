// SPDX-License-Identifier: MIT
// Package: awgwave/circuit
//
// gate.go - Gate: a named bundle of aligned qubit channels.
//
// Contract:
//   - A gate owns clones of its channels; all of them have the same sample
//     count after construction.
//   - Channels are keyed by their QubitChannel name and keep insertion
//     order.
//   - Every gate has a random UUID unless restored with NewGateWithID.

package circuit

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/katalvlaran/awgwave/wave"
)

// Gate groups the channel waveforms that implement one operation, e.g. the
// I/Q drive of an X rotation or a readout pulse with its marker.
type Gate struct {
	id       uuid.UUID
	name     string
	order    []string
	channels map[string]*wave.QubitChannel
}

// NewGate clones channels, aligns them to the longest and keys them by
// name.
func NewGate(name string, channels ...*wave.QubitChannel) (*Gate, error) {
	g, err := newGate(uuid.New(), name, channels)
	if err != nil {
		return nil, fmt.Errorf("NewGate: %w", err)
	}

	return g, nil
}

// NewGateWithID is NewGate with a known identity, for decoders.
func NewGateWithID(id uuid.UUID, name string, channels ...*wave.QubitChannel) (*Gate, error) {
	g, err := newGate(id, name, channels)
	if err != nil {
		return nil, fmt.Errorf("NewGateWithID: %w", err)
	}

	return g, nil
}

func newGate(id uuid.UUID, name string, channels []*wave.QubitChannel) (*Gate, error) {
	if len(channels) == 0 {
		return nil, ErrNoChannels
	}
	g := &Gate{
		id:       id,
		name:     name,
		order:    make([]string, 0, len(channels)),
		channels: make(map[string]*wave.QubitChannel, len(channels)),
	}
	clones := make([]*wave.QubitChannel, len(channels))
	for i, ch := range channels {
		if ch == nil {
			return nil, fmt.Errorf("channel %d: %w", i, ErrNilChannel)
		}
		key := ch.Name()
		if key == "" {
			return nil, fmt.Errorf("channel %d: %w", i, ErrUnnamedChannel)
		}
		if _, dup := g.channels[key]; dup {
			return nil, fmt.Errorf("%q: %w", key, ErrDuplicateChannel)
		}
		clones[i] = ch.Clone()
		g.channels[key] = clones[i]
		g.order = append(g.order, key)
	}
	if err := wave.AlignQubitChannels(clones...); err != nil {
		return nil, err
	}

	return g, nil
}

// ID returns the gate identity.
func (g *Gate) ID() uuid.UUID { return g.id }

// Name returns the gate name.
func (g *Gate) Name() string { return g.name }

// SetName renames the gate.
func (g *Gate) SetName(name string) { g.name = name }

// NumQubits returns the number of channels the gate drives.
func (g *Gate) NumQubits() int { return len(g.order) }

// Channels returns the channel names in insertion order.
func (g *Gate) Channels() []string { return append([]string(nil), g.order...) }

// Channel returns a clone of the channel stored under name.
func (g *Gate) Channel(name string) (*wave.QubitChannel, error) {
	ch, ok := g.channels[name]
	if !ok {
		return nil, fmt.Errorf("Channel: %q: %w", name, ErrUnknownChannel)
	}

	return ch.Clone(), nil
}

// Len returns the aligned sample count of the gate's channels.
func (g *Gate) Len() int { return g.channels[g.order[0]].Len() }

// String renders the gate as Gate[name](I:2 wires, Q:2 wires).
func (g *Gate) String() string {
	parts := make([]string, len(g.order))
	for i, key := range g.order {
		parts[i] = fmt.Sprintf("%s:%d wires", key, g.channels[key].NumWires())
	}

	return fmt.Sprintf("Gate[%s](%s)", g.name, strings.Join(parts, ", "))
}
