package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts
type KeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Inc      key.Binding
	Dec      key.Binding
	IncFast  key.Binding
	DecFast  key.Binding
	Apply    key.Binding
	CopyHex  key.Binding
	CopyRGB  key.Binding
	Help     key.Binding
	Quit     key.Binding
	QuitText key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("down", "tab"),
			key.WithHelp("↓/tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("up", "shift+tab"),
			key.WithHelp("↑/S-tab", "prev field"),
		),
		Inc: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "increase"),
		),
		Dec: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "decrease"),
		),
		IncFast: key.NewBinding(
			key.WithKeys("shift+right", "L"),
			key.WithHelp("L", "+10"),
		),
		DecFast: key.NewBinding(
			key.WithKeys("shift+left", "H"),
			key.WithHelp("H", "-10"),
		),
		Apply: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("↵", "apply preset"),
		),
		CopyHex: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("^x", "copy hex"),
		),
		CopyRGB: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("^r", "copy rgb"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		// text fields consume letters, so only these quit from there
		QuitText: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Inc, k.Apply, k.CopyHex, k.CopyRGB, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Inc, k.Dec, k.IncFast, k.DecFast},
		{k.Apply, k.CopyHex, k.CopyRGB},
		{k.Help, k.Quit},
	}
}
