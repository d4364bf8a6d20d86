// SPDX-License-Identifier: MIT
// Package: awgwave/circuit
//
// view.go - text rendering of the diagram with lipgloss.

package circuit

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	labelW = 10 // channel label column
	cellW  = 11 // one time slot
)

var (
	qubitLabelStyle = lipgloss.NewStyle().
			Width(labelW).
			Foreground(lipgloss.Color("#7dcfff"))

	auxLabelStyle = lipgloss.NewStyle().
			Width(labelW).
			Foreground(lipgloss.Color("#e0af68"))

	gateStyle = lipgloss.NewStyle().
			Width(cellW).
			Align(lipgloss.Center).
			Bold(true).
			Foreground(lipgloss.Color("#73daca"))

	emptyStyle = lipgloss.NewStyle().
			Width(cellW).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("#565f89"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff9e64"))

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7aa2f7")).
			Padding(0, 1)
)

// bareLabel marks a cell holding a channel that did not come from a gate.
const bareLabel = "QC"

// View renders the diagram, one line per channel. With compiled set and a
// successful Compile behind it, cells show the sample count of each
// aligned slot, "[n]" for assigned cells and "(n)" for null-filled ones,
// and rows end with the compiled length.
func (c *Circuit) View(compiled bool) string {
	title := fmt.Sprintf("circuit %s (%d x %d)", c.name, c.Rows(), c.Slots())
	if compiled && c.diagram != nil {
		title = fmt.Sprintf("circuit %s compiled", c.name)
	}
	lines := []string{headerStyle.Render(title)}
	for r, name := range c.names {
		style := qubitLabelStyle
		if c.aux[r] {
			style = auxLabelStyle
		}
		parts := []string{style.Render(truncate(name, labelW-1))}
		if compiled && c.diagram != nil {
			for j, ch := range c.diagram[r] {
				if c.filled[r][j] {
					parts = append(parts, emptyStyle.Render(fmt.Sprintf("(%d)", ch.Len())))
					continue
				}
				parts = append(parts, gateStyle.Render(fmt.Sprintf("[%d]", ch.Len())))
			}
			parts = append(parts, emptyStyle.Render(fmt.Sprintf("= %d", c.compiled[r].Len())))
		} else {
			for _, cl := range c.grid[r] {
				switch {
				case cl.ch == nil:
					parts = append(parts, emptyStyle.Render("─"))
				case cl.label == "":
					parts = append(parts, gateStyle.Render(bareLabel))
				default:
					parts = append(parts, gateStyle.Render(truncate(cl.label, cellW-2)))
				}
			}
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}

	return frameStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func truncate(s string, n int) string {
	if len([]rune(s)) <= n {
		return s
	}

	return string([]rune(s)[:n-1]) + "…"
}

// String returns a one-line summary.
func (c *Circuit) String() string {
	return fmt.Sprintf("Circuit[%s](%s; %d slots, compiled=%t)",
		c.name, strings.Join(c.names, " "), c.Slots(), c.IsCompiled())
}
