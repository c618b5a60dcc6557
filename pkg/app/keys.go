package app

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the demo's key bindings. It satisfies help.KeyMap so the
// help bubble can render it directly.
type keyMap struct {
	AddCell    key.Binding
	RemoveCell key.Binding
	MoreGap    key.Binding
	LessGap    key.Binding
	MoreMargin key.Binding
	LessMargin key.Binding
	NextCell   key.Binding
	PrevCell   key.Binding
	Theme      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		AddCell: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "add cell"),
		),
		RemoveCell: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "remove cell"),
		),
		MoreGap: key.NewBinding(
			key.WithKeys(">", "."),
			key.WithHelp(">", "more spacing"),
		),
		LessGap: key.NewBinding(
			key.WithKeys("<", ","),
			key.WithHelp("<", "less spacing"),
		),
		MoreMargin: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "more margin"),
		),
		LessMargin: key.NewBinding(
			key.WithKeys("M"),
			key.WithHelp("M", "less margin"),
		),
		NextCell: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next cell"),
		),
		PrevCell: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab", "previous cell"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "cycle theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the collapsed help line.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AddCell, k.RemoveCell, k.MoreGap, k.LessGap, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the expanded help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.AddCell, k.RemoveCell, k.NextCell, k.PrevCell},
		{k.MoreGap, k.LessGap, k.MoreMargin, k.LessMargin},
		{k.Theme, k.Help, k.Quit},
	}
}
