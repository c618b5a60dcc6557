// Package theme defines the color palettes available to the autogrid
// demo. Colors are stored as hex strings and converted to lipgloss
// colors at the rendering edge.
package theme

import "sort"

// Theme is a named palette for the grid view.
type Theme struct {
	Name string

	// Cells holds the accent colors cycled across grid cells.
	Cells []string

	Border   string // border color for unselected cells
	Selected string // border color for the selected cell
	Text     string // primary text color
	Dim      string // subdued text (status bar, dimensions)
}

// CellColor returns the accent color for cell index i, cycling through
// the palette.
func (t Theme) CellColor(i int) string {
	if len(t.Cells) == 0 {
		return t.Text
	}
	if i < 0 {
		i = -i
	}
	return t.Cells[i%len(t.Cells)]
}

// builtins maps theme names to their definitions.
var builtins = map[string]Theme{
	"default": {
		Name:     "default",
		Cells:    []string{"#7C3AED", "#2563EB", "#059669", "#D97706", "#DC2626", "#DB2777"},
		Border:   "#6B7280",
		Selected: "#7C3AED",
		Text:     "#E5E7EB",
		Dim:      "#6B7280",
	},
	"mono": {
		Name:     "mono",
		Cells:    []string{"#9CA3AF"},
		Border:   "#4B5563",
		Selected: "#F9FAFB",
		Text:     "#D1D5DB",
		Dim:      "#6B7280",
	},
	"pastel": {
		Name:     "pastel",
		Cells:    []string{"#C4B5FD", "#93C5FD", "#6EE7B7", "#FCD34D", "#FCA5A5", "#F9A8D4"},
		Border:   "#9CA3AF",
		Selected: "#FDE68A",
		Text:     "#F3F4F6",
		Dim:      "#9CA3AF",
	},
}

// Get returns a named theme, falling back to the default palette for
// unknown names.
func Get(name string) Theme {
	if t, ok := builtins[name]; ok {
		return t
	}
	return builtins["default"]
}

// Names returns all builtin theme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for k := range builtins {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Next returns the theme that follows name in sorted order, wrapping
// around at the end. It backs the theme-cycling key in the demo.
func Next(name string) Theme {
	names := Names()
	for i, n := range names {
		if n == name {
			return Get(names[(i+1)%len(names)])
		}
	}
	return Get(names[0])
}
