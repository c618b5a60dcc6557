package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"gitlab.com/tinyland/lab/autogrid/pkg/layout"
)

// View implements tea.Model. The grid occupies everything above the
// status area; cells are drawn as bordered boxes at the exact positions
// the partition assigned them.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	avail := m.height - m.statusHeight()
	lines := m.gridLines()
	for len(lines) < avail {
		lines = append(lines, "")
	}
	if len(lines) > avail {
		lines = lines[:avail]
	}

	return strings.Join(lines, "\n") + "\n" + m.statusView()
}

// gridLines renders the partition into terminal lines. Cells are walked
// in row-major order; within a band every cell shares Y and height, so
// a band renders as one horizontal join padded out to its X offsets.
func (m Model) gridLines() []string {
	var lines []string
	y := 0

	for start := 0; start < len(m.grid); {
		end := start
		for end < len(m.grid) && m.grid[end].Y == m.grid[start].Y {
			end++
		}
		band := m.grid[start:end]

		for y < band[0].Y {
			lines = append(lines, "")
			y++
		}

		parts := make([]string, 0, 2*len(band))
		x := 0
		for i, cell := range band {
			if cell.X > x {
				parts = append(parts, strings.Repeat(" ", cell.X-x))
			}
			parts = append(parts, m.renderCell(start+i, cell))
			x = cell.Right()
		}
		joined := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
		lines = append(lines, strings.Split(joined, "\n")...)

		y = band[0].Y + band[0].Height
		start = end
	}

	return lines
}

// renderCell draws one cell as a bordered box showing its ordinal and
// dimensions. Cells too small for a border degrade to a shaded block.
func (m Model) renderCell(i int, cell layout.Rect) string {
	color := m.th.CellColor(i)
	if i == m.selected {
		color = m.th.Selected
	}

	if cell.Width < 2 || cell.Height < 2 {
		block := strings.Repeat("░", nonNegative(cell.Width))
		rows := make([]string, nonNegative(cell.Height))
		for r := range rows {
			rows[r] = block
		}
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(color)).
			Render(strings.Join(rows, "\n"))
	}

	innerW := cell.Width - 2
	innerH := cell.Height - 2

	label := fmt.Sprintf("%d", i+1)
	dims := fmt.Sprintf("%dx%d", cell.Width, cell.Height)

	var content string
	if innerH >= 1 && innerW >= ansi.StringWidth(label) {
		content = lipgloss.NewStyle().
			Bold(i == m.selected).
			Foreground(lipgloss.Color(m.th.Text)).
			Render(label)
	}
	if innerH >= 2 && innerW >= ansi.StringWidth(dims) {
		content += "\n" + lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.th.Dim)).
			Render(dims)
	}

	return lipgloss.NewStyle().
		Border(borderFor(m.border)).
		BorderForeground(lipgloss.Color(color)).
		Width(innerW).
		Height(innerH).
		MaxWidth(cell.Width).
		MaxHeight(cell.Height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// statusView renders the bottom status area: a one-line summary with the
// short help, or the expanded help view when toggled open. The inline
// short help is suppressed when ui.show_help is off; the explicit help
// toggle still works.
func (m Model) statusView() string {
	if m.help.ShowAll {
		return m.help.View(m.keys)
	}

	cols, rows := layout.GridShape(m.cells)
	summary := fmt.Sprintf("%d cells  %dx%d  gap %d  margin %d  %s",
		m.cells, cols, rows, m.spacing, m.margin, m.th.Name)

	line := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.th.Dim)).
		Render(summary)
	if m.showHelp {
		line += "  " + m.help.View(m.keys)
	}

	return ansi.Truncate(line, m.width, "…")
}

func borderFor(name string) lipgloss.Border {
	switch name {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	case "hidden":
		return lipgloss.HiddenBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
