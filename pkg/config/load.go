package config

import (
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Load reads configuration from the standard config path. Search order:
//  1. $XDG_CONFIG_HOME/autogrid/config.toml
//  2. ~/.config/autogrid/config.toml
//
// If no file exists, Default() is returned.
func Load() (*Config, error) {
	for _, p := range searchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	cfg := Default()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromFile reads configuration from a specific file path. A missing
// file falls back to Default().
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, err
	}
	defer f.Close()
	return LoadFromReader(f)
}

// LoadFromReader decodes TOML configuration from r on top of the
// defaults, then applies environment overrides.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, err
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// applyEnvOverrides lets the environment win over the file.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("AUTOGRID_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("AUTOGRID_BORDER"); v != "" {
		cfg.UI.Border = v
	}
	if n, ok := envInt("AUTOGRID_CELLS"); ok {
		cfg.Grid.Cells = n
	}
	if n, ok := envInt("AUTOGRID_SPACING"); ok {
		cfg.Grid.Spacing = n
	}
}

// envInt reads a non-negative integer from the named environment
// variable.
func envInt(name string) (int, bool) {
	v := os.Getenv(name)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// searchPaths returns the ordered list of config file paths to try.
func searchPaths() []string {
	home, _ := os.UserHomeDir()
	var paths []string

	xdg := xdgConfigHome(home)
	paths = append(paths, filepath.Join(xdg, "autogrid", "config.toml"))

	// If XDG_CONFIG_HOME was explicitly set, also try the usual default.
	defaultXDG := filepath.Join(home, ".config")
	if xdg != defaultXDG {
		paths = append(paths, filepath.Join(defaultXDG, "autogrid", "config.toml"))
	}
	return paths
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}
