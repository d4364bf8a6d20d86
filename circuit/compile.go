// SPDX-License-Identifier: MIT
// Package: awgwave/circuit
//
// compile.go - turning the diagram into one QubitChannel per row.
//
// Steps:
//  1. Every row needs at least one assigned cell (ErrUnassignedChannel).
//  2. Time slots with no assigned cell at all are dropped.
//  3. The assigned cells of each slot are aligned to the longest one.
//  4. Empty cells become null channels: sample count of the slot's first
//     assigned cell, wire count and wire names of the row's first assigned
//     cell.
//  5. Each row is concatenated left to right.
//
// Contract (strict):
//   - Compile works on clones, so the diagram is untouched and repeated
//     calls give identical output.
//   - A failed Compile leaves no compiled state.
//   - Null cells are tracked by position, never by channel name; a user
//     channel called "null" is still an assigned cell.
//
// Complexity: O(R*T*N) for R rows, T kept slots and N samples per cell;
// each row concatenation re-synthesizes its growing accumulator.

package circuit

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/awgwave/wave"
)

// Compile synthesizes the diagram. See the file comment for the steps.
func (c *Circuit) Compile() error {
	c.compiled, c.diagram, c.filled = nil, nil, nil
	log := c.log.With().Str("circuit", c.name).Logger()
	log.Debug().Int("rows", c.Rows()).Int("slots", c.Slots()).Msg("compile started")

	var missing []string
	for r, row := range c.grid {
		if !anyAssigned(row) {
			missing = append(missing, c.names[r])
		}
	}
	if len(missing) > 0 {
		log.Warn().Strs("channels", missing).Msg("unassigned channels")
		return circuitErrorf("Compile", ErrUnassignedChannel, "%s", strings.Join(missing, ", "))
	}

	var cols []int
	for t := 0; t < c.Slots(); t++ {
		for r := range c.grid {
			if c.grid[r][t].ch != nil {
				cols = append(cols, t)
				break
			}
		}
	}

	grid := make([][]*wave.QubitChannel, c.Rows())
	for r := range grid {
		grid[r] = make([]*wave.QubitChannel, len(cols))
	}
	for j, t := range cols {
		var assigned []*wave.QubitChannel
		for r := range c.grid {
			if ch := c.grid[r][t].ch; ch != nil {
				grid[r][j] = ch.Clone()
				assigned = append(assigned, grid[r][j])
			}
		}
		if err := wave.AlignQubitChannels(assigned...); err != nil {
			log.Error().Err(err).Int("slot", t).Msg("slot alignment failed")
			return compileError(err, "slot %d", t)
		}
	}

	filled, err := c.fill(grid)
	if err != nil {
		log.Error().Err(err).Msg("null fill failed")
		return err
	}

	out := make([]*wave.QubitChannel, c.Rows())
	for r, row := range grid {
		acc := row[0].Clone()
		for j := 1; j < len(row); j++ {
			next, err := acc.Concat(row[j])
			if err != nil {
				log.Error().Err(err).Str("channel", c.names[r]).Int("slot", cols[j]).Msg("concatenation failed")
				return compileError(err, "channel %q slot %d", c.names[r], cols[j])
			}
			acc = next
		}
		acc.SetName(c.names[r])
		out[r] = acc
	}

	c.compiled, c.diagram, c.filled = out, grid, filled
	log.Info().
		Int("rows", len(out)).
		Int("slots", len(cols)).
		Int("dropped_slots", c.Slots()-len(cols)).
		Msg("compile finished")

	return nil
}

// fill replaces the nil cells of grid with null channels and reports which
// cells it filled.
func (c *Circuit) fill(grid [][]*wave.QubitChannel) ([][]bool, error) {
	filled := make([][]bool, len(grid))
	for r := range grid {
		filled[r] = make([]bool, len(grid[r]))
	}
	rowRefs := make([]*wave.QubitChannel, len(grid))
	for r, row := range grid {
		for _, ch := range row {
			if ch != nil {
				rowRefs[r] = ch
				break
			}
		}
	}
	for j := range grid[0] {
		var spanRef *wave.QubitChannel
		for r := range grid {
			if grid[r][j] != nil {
				spanRef = grid[r][j]
				break
			}
		}
		for r := range grid {
			if grid[r][j] != nil {
				continue
			}
			null, err := wave.NullLike(spanRef, rowRefs[r].NumWires(), wave.WithPrecision(c.prec))
			if err != nil {
				return nil, compileError(err, "null cell for %q", c.names[r])
			}
			null.SetWireNames(rowRefs[r].WireNames()...)
			null.SetName("null")
			grid[r][j] = null
			filled[r][j] = true
		}
	}

	return filled, nil
}

func anyAssigned(row []cell) bool {
	for _, cl := range row {
		if cl.ch != nil {
			return true
		}
	}

	return false
}

// IsCompiled reports whether the last Compile succeeded.
func (c *Circuit) IsCompiled() bool { return c.compiled != nil }

// Compiled returns clones of the compiled channels in row order.
func (c *Circuit) Compiled() ([]*wave.QubitChannel, error) {
	if c.compiled == nil {
		return nil, fmt.Errorf("Compiled: %w", ErrNotCompiled)
	}
	out := make([]*wave.QubitChannel, len(c.compiled))
	for i, ch := range c.compiled {
		out[i] = ch.Clone()
	}

	return out, nil
}

// Output returns the per-wire sample arrays of the named compiled channel.
func (c *Circuit) Output(channel string) ([][]float64, error) {
	if c.compiled == nil {
		return nil, fmt.Errorf("Output: %w", ErrNotCompiled)
	}
	row, ok := c.index[channel]
	if !ok {
		return nil, fmt.Errorf("Output: %q: %w", channel, ErrUnknownChannel)
	}

	return c.compiled[row].Y(), nil
}

// CompiledDiagram returns clones of the aligned, null-filled grid the last
// Compile concatenated, indexed [row][kept slot].
func (c *Circuit) CompiledDiagram() ([][]*wave.QubitChannel, error) {
	if c.diagram == nil {
		return nil, fmt.Errorf("CompiledDiagram: %w", ErrNotCompiled)
	}
	out := make([][]*wave.QubitChannel, len(c.diagram))
	for r, row := range c.diagram {
		out[r] = make([]*wave.QubitChannel, len(row))
		for j, ch := range row {
			out[r][j] = ch.Clone()
		}
	}

	return out, nil
}
