// Package config loads the autogrid demo configuration. Configuration
// lives in a TOML file resolved through the XDG search path, with a few
// environment variable overrides on top.
package config

import "fmt"

// Config is the root configuration document.
type Config struct {
	Grid GridConfig `toml:"grid"`
	UI   UIConfig   `toml:"ui"`
}

// GridConfig controls the initial grid the demo starts with.
type GridConfig struct {
	Cells   int `toml:"cells"`
	Spacing int `toml:"spacing"`
	Margin  int `toml:"margin"`
}

// UIConfig controls presentation.
type UIConfig struct {
	Theme    string `toml:"theme"`
	Border   string `toml:"border"`
	ShowHelp bool   `toml:"show_help"`
}

// validBorders lists the accepted UI border names.
var validBorders = map[string]bool{
	"normal":  true,
	"rounded": true,
	"thick":   true,
	"double":  true,
	"hidden":  true,
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			Cells:   6,
			Spacing: 1,
			Margin:  0,
		},
		UI: UIConfig{
			Theme:    "default",
			Border:   "rounded",
			ShowHelp: true,
		},
	}
}

// Validate checks the configuration for values the demo cannot use.
func (c *Config) Validate() error {
	if c.Grid.Cells < 0 {
		return fmt.Errorf("grid.cells must not be negative, got %d", c.Grid.Cells)
	}
	if c.Grid.Spacing < 0 {
		return fmt.Errorf("grid.spacing must not be negative, got %d", c.Grid.Spacing)
	}
	if c.Grid.Margin < 0 {
		return fmt.Errorf("grid.margin must not be negative, got %d", c.Grid.Margin)
	}
	if !validBorders[c.UI.Border] {
		return fmt.Errorf("ui.border %q is not one of normal, rounded, thick, double, hidden", c.UI.Border)
	}
	return nil
}
