// autogrid partitions the terminal into an automatic grid.
//
// Given a cell count it picks the closest-to-square column/row shape,
// splits the terminal proportionally with configurable spacing, and
// renders the resulting cells. Interactive by default; with -snapshot
// (or when stdout is not a terminal) it prints one plain-text frame
// and exits.
//
// Usage:
//
//	autogrid [flags]
//
// Flags:
//
//	-cells int        Number of grid cells (overrides config)
//	-spacing int      Gap between cells in character cells (overrides config)
//	-margin int       Margin around the grid (overrides config)
//	-theme string     Color theme name (overrides config)
//	-config string    Path to configuration file (default: XDG search)
//	-snapshot         Print one plain-text frame and exit
//	-term-width int   Terminal width override (0 = auto-detect)
//	-term-height int  Terminal height override (0 = auto-detect)
//	-verbose          Enable verbose logging
//	-version          Print version and exit
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"gitlab.com/tinyland/lab/autogrid/pkg/app"
	"gitlab.com/tinyland/lab/autogrid/pkg/config"
	"gitlab.com/tinyland/lab/autogrid/pkg/terminal"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		cells       = flag.Int("cells", 0, "Number of grid cells (overrides config)")
		spacing     = flag.Int("spacing", -1, "Gap between cells (overrides config)")
		margin      = flag.Int("margin", -1, "Margin around the grid (overrides config)")
		themeName   = flag.String("theme", "", "Color theme name (overrides config)")
		snapshot    = flag.Bool("snapshot", false, "Print one plain-text frame and exit")
		termWidth   = flag.Int("term-width", 0, "Terminal width override (0 = auto-detect)")
		termHeight  = flag.Int("term-height", 0, "Terminal height override (0 = auto-detect)")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("autogrid %s (%s)\n", version, commit)
		os.Exit(0)
	}

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFromFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Flag overrides win over config file and environment.
	if *cells > 0 {
		cfg.Grid.Cells = *cells
	}
	if *spacing >= 0 {
		cfg.Grid.Spacing = *spacing
	}
	if *margin >= 0 {
		cfg.Grid.Margin = *margin
	}
	if *themeName != "" {
		cfg.UI.Theme = *themeName
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger.Debug("configuration resolved",
		"cells", cfg.Grid.Cells,
		"spacing", cfg.Grid.Spacing,
		"margin", cfg.Grid.Margin,
		"theme", cfg.UI.Theme,
	)

	if *snapshot || !isatty.IsTerminal(os.Stdout.Fd()) {
		size := resolveSize(*termWidth, *termHeight)
		logger.Debug("rendering snapshot", "cols", size.Cols, "rows", size.Rows)
		fmt.Println(app.Snapshot(cfg, size.Cols, size.Rows))
		return
	}

	opts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
	if *termWidth > 0 || *termHeight > 0 {
		size := resolveSize(*termWidth, *termHeight)
		opts = append(opts, tea.WithWindowSize(size.Cols, size.Rows))
	}

	p := tea.NewProgram(app.New(cfg), opts...)
	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		os.Exit(1)
	}
}

// resolveSize combines the -term-width/-term-height overrides with the
// detected terminal size; a zero override keeps the detected value.
func resolveSize(width, height int) terminal.Size {
	size := terminal.Detect()
	if width > 0 {
		size.Cols = width
	}
	if height > 0 {
		size.Rows = height
	}
	return size
}
