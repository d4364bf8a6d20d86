// SPDX-License-Identifier: MIT
// Package: awgwave/circuit
//
// circuit.go - Circuit: a channel x time-slot grid of QubitChannels.
//
// Contract:
//   - Rows are named channels: qubits first, then auxiliary channels
//     (readout, markers), unless NewIndexed places them explicitly.
//   - Cells hold clones; At hands out clones. Empty cells are nil.
//   - The time axis grows when a cell past the last slot is assigned and
//     never shrinks.
//   - Assigning does not touch compiled output; call Compile again.

package circuit

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/awgwave/axis"
	"github.com/katalvlaran/awgwave/wave"
	"github.com/rs/zerolog"
)

// Position addresses one cell. Channel selects the row by name; when it is
// empty Row is used. Time is the zero-based slot.
type Position struct {
	Channel string
	Row     int
	Time    int
}

// Pos is shorthand for a named-channel position.
func Pos(channel string, time int) Position {
	return Position{Channel: channel, Time: time}
}

// Cell is one assigned diagram entry, as reported by Cells.
type Cell struct {
	Row     int
	Time    int
	Label   string // gate name, empty for a bare channel
	Channel *wave.QubitChannel
}

type cell struct {
	ch    *wave.QubitChannel
	label string
}

// Circuit arranges QubitChannels on a grid and compiles each row into one
// channel.
type Circuit struct {
	name  string
	names []string // row -> channel name
	aux   []bool   // row -> auxiliary channel
	index map[string]int
	grid  [][]cell // [row][slot]

	compiled []*wave.QubitChannel
	diagram  [][]*wave.QubitChannel // post-fill grid of the last compile
	filled   [][]bool              // diagram cells created by the null fill

	log  zerolog.Logger
	prec axis.Precision
}

// New lays out qubits on rows 0..len(qubits)-1 followed by auxiliary
// channels, with slots empty time slots.
func New(qubits []string, slots int, auxiliary []string, opts ...Option) (*Circuit, error) {
	q := make(map[string]int, len(qubits))
	for i, name := range qubits {
		if _, dup := q[name]; dup {
			return nil, circuitErrorf("New", ErrDuplicateName, "%q", name)
		}
		q[name] = i
	}
	a := make(map[string]int, len(auxiliary))
	for i, name := range auxiliary {
		if _, dup := a[name]; dup {
			return nil, circuitErrorf("New", ErrDuplicateName, "%q", name)
		}
		a[name] = len(qubits) + i
	}
	c, err := newCircuit(q, a, slots, newConfig(opts...))
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	return c, nil
}

// NewIndexed places every channel on an explicit row. Rows must cover
// 0..n-1 exactly, where n is the total channel count.
func NewIndexed(qubits map[string]int, slots int, auxiliary map[string]int, opts ...Option) (*Circuit, error) {
	c, err := newCircuit(qubits, auxiliary, slots, newConfig(opts...))
	if err != nil {
		return nil, fmt.Errorf("NewIndexed: %w", err)
	}

	return c, nil
}

func newCircuit(qubits, auxiliary map[string]int, slots int, cfg config) (*Circuit, error) {
	rows := len(qubits) + len(auxiliary)
	if rows == 0 || slots < 1 {
		return nil, fmt.Errorf("rows=%d slots=%d: %w", rows, slots, ErrBadSize)
	}
	c := &Circuit{
		name:  cfg.name,
		names: make([]string, rows),
		aux:   make([]bool, rows),
		index: make(map[string]int, rows),
		grid:  make([][]cell, rows),
		log:   cfg.log.With().Str("component", "circuit").Logger(),
		prec:  cfg.prec,
	}
	taken := make([]bool, rows)
	place := func(m map[string]int, aux bool) error {
		for _, name := range sortedKeys(m) {
			row := m[name]
			if name == "" {
				return fmt.Errorf("row %d: %w", row, ErrUnnamedChannel)
			}
			if _, dup := c.index[name]; dup {
				return fmt.Errorf("%q: %w", name, ErrDuplicateName)
			}
			if row < 0 || row >= rows {
				return fmt.Errorf("%q at row %d of %d: %w", name, row, rows, ErrIndexOutOfRange)
			}
			if taken[row] {
				return fmt.Errorf("%q at row %d: %w", name, row, ErrDuplicateIndex)
			}
			taken[row] = true
			c.index[name] = row
			c.names[row] = name
			c.aux[row] = aux
		}
		return nil
	}
	if err := place(qubits, false); err != nil {
		return nil, err
	}
	if err := place(auxiliary, true); err != nil {
		return nil, err
	}
	for r := range c.grid {
		c.grid[r] = make([]cell, slots)
	}

	return c, nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Name returns the circuit name.
func (c *Circuit) Name() string { return c.name }

// SetName renames the circuit.
func (c *Circuit) SetName(name string) { c.name = name }

// Precision returns the rounding policy of null cells.
func (c *Circuit) Precision() axis.Precision { return c.prec }

// Rows returns the number of channels.
func (c *Circuit) Rows() int { return len(c.names) }

// Slots returns the current number of time slots.
func (c *Circuit) Slots() int { return len(c.grid[0]) }

// ChannelNames returns the channel names in row order.
func (c *Circuit) ChannelNames() []string { return append([]string(nil), c.names...) }

// Qubits returns the qubit channels with their rows.
func (c *Circuit) Qubits() map[string]int { return c.layout(false) }

// Auxiliary returns the auxiliary channels with their rows.
func (c *Circuit) Auxiliary() map[string]int { return c.layout(true) }

func (c *Circuit) layout(aux bool) map[string]int {
	out := make(map[string]int)
	for r, name := range c.names {
		if c.aux[r] == aux {
			out[name] = r
		}
	}

	return out
}

// Index returns the row of the named channel.
func (c *Circuit) Index(name string) (int, error) {
	row, ok := c.index[name]
	if !ok {
		return 0, fmt.Errorf("Index: %q: %w", name, ErrUnknownChannel)
	}

	return row, nil
}

// resolve maps pos to (row, slot) without growing the grid.
func (c *Circuit) resolve(pos Position) (int, int, error) {
	row := pos.Row
	if pos.Channel != "" {
		r, ok := c.index[pos.Channel]
		if !ok {
			return 0, 0, fmt.Errorf("%q: %w", pos.Channel, ErrUnknownChannel)
		}
		row = r
	}
	if row < 0 || row >= len(c.names) {
		return 0, 0, fmt.Errorf("row %d of %d: %w", row, len(c.names), ErrIndexOutOfRange)
	}
	if pos.Time < 0 {
		return 0, 0, fmt.Errorf("slot %d: %w", pos.Time, ErrIndexOutOfRange)
	}

	return row, pos.Time, nil
}

// grow extends every row to at least slots slots.
func (c *Circuit) grow(slots int) {
	for r := range c.grid {
		for len(c.grid[r]) < slots {
			c.grid[r] = append(c.grid[r], cell{})
		}
	}
}

func (c *Circuit) set(row, slot int, ch *wave.QubitChannel, label string) {
	c.grow(slot + 1)
	c.grid[row][slot] = cell{ch: ch.Clone(), label: label}
}

// Assign stores a clone of ch at pos.
func (c *Circuit) Assign(ch *wave.QubitChannel, pos Position) error {
	return c.place("Assign", ch, pos, "")
}

// Place stores a clone of ch at pos and tags the cell with label, the
// name shown by View.
func (c *Circuit) Place(ch *wave.QubitChannel, pos Position, label string) error {
	return c.place("Place", ch, pos, label)
}

func (c *Circuit) place(method string, ch *wave.QubitChannel, pos Position, label string) error {
	if ch == nil {
		return fmt.Errorf("%s: %w", method, ErrNilChannel)
	}
	row, slot, err := c.resolve(pos)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	c.set(row, slot, ch, label)

	return nil
}

// AssignGate places each gate channel named in mapping at its position.
// Gate channels left out of mapping are not placed. Nothing is assigned
// unless every entry resolves.
func (c *Circuit) AssignGate(g *Gate, mapping map[string]Position) error {
	if g == nil {
		return fmt.Errorf("AssignGate: %w", ErrNilChannel)
	}
	type target struct {
		row, slot int
		ch        *wave.QubitChannel
	}
	keys := make([]string, 0, len(mapping))
	for k := range mapping {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	targets := make([]target, 0, len(keys))
	for _, key := range keys {
		ch, ok := g.channels[key]
		if !ok {
			return circuitErrorf("AssignGate", ErrUnknownChannel, "gate %s has no channel %q", g.name, key)
		}
		row, slot, err := c.resolve(mapping[key])
		if err != nil {
			return circuitErrorf("AssignGate", err, "gate channel %q", key)
		}
		targets = append(targets, target{row: row, slot: slot, ch: ch})
	}
	for _, t := range targets {
		c.set(t.row, t.slot, t.ch, g.name)
	}

	return nil
}

// At returns a clone of the channel at pos and its label. An empty cell
// yields a nil channel.
func (c *Circuit) At(pos Position) (*wave.QubitChannel, string, error) {
	row, slot, err := c.resolve(pos)
	if err != nil {
		return nil, "", fmt.Errorf("At: %w", err)
	}
	if slot >= c.Slots() {
		return nil, "", circuitErrorf("At", ErrIndexOutOfRange, "slot %d of %d", slot, c.Slots())
	}
	cl := c.grid[row][slot]
	if cl.ch == nil {
		return nil, "", nil
	}

	return cl.ch.Clone(), cl.label, nil
}

// Clear empties the cell at pos.
func (c *Circuit) Clear(pos Position) error {
	row, slot, err := c.resolve(pos)
	if err != nil {
		return fmt.Errorf("Clear: %w", err)
	}
	if slot < c.Slots() {
		c.grid[row][slot] = cell{}
	}

	return nil
}

// Cells returns clones of every assigned cell, row by row.
func (c *Circuit) Cells() []Cell {
	var out []Cell
	for r, row := range c.grid {
		for t, cl := range row {
			if cl.ch != nil {
				out = append(out, Cell{Row: r, Time: t, Label: cl.label, Channel: cl.ch.Clone()})
			}
		}
	}

	return out
}
