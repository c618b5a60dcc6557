// Package app is the interactive autogrid demo: a bubbletea program
// that partitions the terminal into an automatic grid and lets the user
// vary the cell count, spacing, and margin while watching the partition
// react. It doubles as a visual workbench for the layout package.
package app

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/autogrid/pkg/config"
	"gitlab.com/tinyland/lab/autogrid/pkg/layout"
	"gitlab.com/tinyland/lab/autogrid/pkg/theme"
)

// maxCells bounds the interactive cell count so a keyboard autorepeat
// cannot degrade the frame into confetti.
const maxCells = 400

// Model is the bubbletea model for the grid demo.
type Model struct {
	width  int
	height int

	cells    int
	spacing  int
	margin   int
	selected int

	grid   []layout.Rect // current partition, in row-major order
	canvas layout.Rect   // area the grid occupies (above the status bar)

	th     theme.Theme
	border string

	keys     keyMap
	help     help.Model
	showHelp bool
}

// New builds a Model from the loaded configuration. The grid itself is
// computed on the first WindowSizeMsg.
func New(cfg *config.Config) Model {
	return Model{
		cells:    cfg.Grid.Cells,
		spacing:  cfg.Grid.Spacing,
		margin:   cfg.Grid.Margin,
		th:       theme.Get(cfg.UI.Theme),
		border:   cfg.UI.Border,
		keys:     defaultKeyMap(),
		help:     help.New(),
		showHelp: cfg.UI.ShowHelp,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.recompute()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			for i, cell := range m.grid {
				if cell.Contains(msg.X, msg.Y) {
					m.selected = i
					break
				}
			}
		}
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.AddCell):
		if m.cells < maxCells {
			m.cells++
			m.recompute()
		}
	case key.Matches(msg, m.keys.RemoveCell):
		if m.cells > 1 {
			m.cells--
			m.recompute()
		}
	case key.Matches(msg, m.keys.MoreGap):
		m.spacing++
		m.recompute()
	case key.Matches(msg, m.keys.LessGap):
		if m.spacing > 0 {
			m.spacing--
			m.recompute()
		}
	case key.Matches(msg, m.keys.MoreMargin):
		m.margin++
		m.recompute()
	case key.Matches(msg, m.keys.LessMargin):
		if m.margin > 0 {
			m.margin--
			m.recompute()
		}
	case key.Matches(msg, m.keys.NextCell):
		if len(m.grid) > 0 {
			m.selected = (m.selected + 1) % len(m.grid)
		}
	case key.Matches(msg, m.keys.PrevCell):
		if len(m.grid) > 0 {
			m.selected = (m.selected + len(m.grid) - 1) % len(m.grid)
		}
	case key.Matches(msg, m.keys.Theme):
		m.th = theme.Next(m.th.Name)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.recompute()
	}
	return m, nil
}

// recompute rebuilds the grid for the current terminal size and
// settings. The bottom line is reserved for the status bar; the grid
// fills everything above it.
func (m *Model) recompute() {
	if m.width <= 0 || m.height <= 0 {
		m.grid = nil
		return
	}

	window := layout.Rect{Width: m.width, Height: m.height}
	regions := layout.SplitVertical(window,
		layout.Fill{Weight: 1},
		layout.Length{Value: m.statusHeight()},
	)
	m.canvas = regions[0].Inner(m.margin)

	m.grid = layout.AutoGrid(m.canvas, m.cells, m.spacing)
	if m.selected >= len(m.grid) {
		m.selected = len(m.grid) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// statusHeight returns the number of lines the status area needs, which
// grows when the expanded help view is open.
func (m Model) statusHeight() int {
	if m.help.ShowAll {
		return 4
	}
	return 1
}

// Cells exposes the current partition for tests and the snapshot path.
func (m Model) Cells() []layout.Rect {
	return m.grid
}

// Selected returns the index of the highlighted cell.
func (m Model) Selected() int {
	return m.selected
}
