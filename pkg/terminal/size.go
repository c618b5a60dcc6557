// Package terminal queries the terminal for its dimensions, falling
// back through progressively less direct strategies.
package terminal

import (
	"os"
	"strconv"

	"github.com/charmbracelet/x/term"
	"golang.org/x/sys/unix"
)

// Size holds terminal dimensions in character cells.
type Size struct {
	Cols int
	Rows int
}

// Detect returns the current terminal size. Strategies, in order:
//  1. TIOCGWINSZ ioctl on stdout, then stderr (stdout may be redirected)
//  2. term.GetSize on stdout
//  3. COLUMNS/LINES environment variables
//  4. 80x24
func Detect() Size {
	for _, f := range []*os.File{os.Stdout, os.Stderr} {
		if s, ok := ioctlSize(f.Fd()); ok {
			return s
		}
	}
	if w, h, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 && h > 0 {
		return Size{Cols: w, Rows: h}
	}
	return envSize()
}

// ioctlSize queries the size via the TIOCGWINSZ ioctl.
func ioctlSize(fd uintptr) (Size, bool) {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return Size{}, false
	}
	return Size{Cols: int(ws.Col), Rows: int(ws.Row)}, true
}

// envSize reads COLUMNS/LINES, defaulting to 80x24.
func envSize() Size {
	return Size{
		Cols: envInt("COLUMNS", 80),
		Rows: envInt("LINES", 24),
	}
}

// envInt reads a positive integer from the named environment variable,
// returning fallback when unset or invalid.
func envInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
