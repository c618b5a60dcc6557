package app

import (
	"strconv"
	"strings"

	"gitlab.com/tinyland/lab/autogrid/pkg/config"
	"gitlab.com/tinyland/lab/autogrid/pkg/layout"
)

// Snapshot renders one frame of the grid as plain text, for piping to a
// file or a non-terminal stdout. No ANSI sequences are emitted; each of
// the returned lines is exactly width characters wide.
func Snapshot(cfg *config.Config, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	area := layout.Rect{Width: width, Height: height}.Inner(cfg.Grid.Margin)
	cells := layout.AutoGrid(area, cfg.Grid.Cells, cfg.Grid.Spacing)

	canvas := newCanvas(width, height)
	set := borderRunesFor(cfg.UI.Border)
	for i, cell := range cells {
		canvas.stampBox(cell, set, strconv.Itoa(i+1))
	}
	return canvas.String()
}

// borderRunes is the character set a snapshot box is drawn with.
type borderRunes struct {
	tl, tr, bl, br rune
	h, v           rune
}

func borderRunesFor(name string) borderRunes {
	switch name {
	case "normal":
		return borderRunes{'┌', '┐', '└', '┘', '─', '│'}
	case "thick":
		return borderRunes{'┏', '┓', '┗', '┛', '━', '┃'}
	case "double":
		return borderRunes{'╔', '╗', '╚', '╝', '═', '║'}
	case "hidden":
		return borderRunes{' ', ' ', ' ', ' ', ' ', ' '}
	default:
		return borderRunes{'╭', '╮', '╰', '╯', '─', '│'}
	}
}

// canvas is a fixed-size rune grid that boxes are stamped onto. Later
// stamps overwrite earlier ones; everything is clipped to the bounds.
type canvas struct {
	width  int
	height int
	rows   [][]rune
}

func newCanvas(width, height int) *canvas {
	rows := make([][]rune, height)
	for i := range rows {
		rows[i] = []rune(strings.Repeat(" ", width))
	}
	return &canvas{width: width, height: height, rows: rows}
}

func (c *canvas) set(x, y int, r rune) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.rows[y][x] = r
}

// stampBox draws a bordered rectangle with a centered label. Rectangles
// too small for a border are filled with a shade block instead.
func (c *canvas) stampBox(r layout.Rect, set borderRunes, label string) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}

	if r.Width < 2 || r.Height < 2 {
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				c.set(x, y, '░')
			}
		}
		return
	}

	c.set(r.X, r.Y, set.tl)
	c.set(r.Right()-1, r.Y, set.tr)
	c.set(r.X, r.Bottom()-1, set.bl)
	c.set(r.Right()-1, r.Bottom()-1, set.br)
	for x := r.X + 1; x < r.Right()-1; x++ {
		c.set(x, r.Y, set.h)
		c.set(x, r.Bottom()-1, set.h)
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		c.set(r.X, y, set.v)
		c.set(r.Right()-1, y, set.v)
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		for x := r.X + 1; x < r.Right()-1; x++ {
			c.set(x, y, ' ')
		}
	}

	runes := []rune(label)
	if len(runes) <= r.Width-2 && r.Height >= 3 {
		lx := r.X + (r.Width-len(runes))/2
		ly := r.Y + r.Height/2
		for i, ch := range runes {
			c.set(lx+i, ly, ch)
		}
	}
}

func (c *canvas) String() string {
	lines := make([]string, c.height)
	for i, row := range c.rows {
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n")
}
